package service

import (
	"context"
	"time"

	"trackshop/models"

	"github.com/rs/zerolog"
)

//go:generate mockgen -destination=./mocks/mock_repository.go -package=mocks trackshop/service Repository

type Repository interface {
	GetUserByUsername(ctx context.Context, username string) (models.User, error)
	GetUserByID(ctx context.Context, id int) (models.User, error)
	CreateUser(ctx context.Context, username, password, role string) (int, error)
	DebitUserTokens(ctx context.Context, id, amount int) error
	CreditUserTokens(ctx context.Context, id, amount int) error
	SetUserTokens(ctx context.Context, id, amount int) error
	GrantDailyBonus(ctx context.Context, id int, day string, amount int) (bool, error)
	GetTrackByID(ctx context.Context, id int) (models.Track, error)
	ListTracks(ctx context.Context) ([]models.Track, error)
	GetActiveDownload(ctx context.Context, userID, trackID int, now time.Time) (models.Download, error)
	GetDownloadByToken(ctx context.Context, token string) (models.Download, error)
	CreateDownload(ctx context.Context, d models.Download) (int, error)
	ConsumeDownload(ctx context.Context, token string, now time.Time) error
	ExpireStaleDownloads(ctx context.Context, userID, trackID int, now time.Time) error
	ListActiveDownloads(ctx context.Context, userID int, now time.Time) ([]models.Download, error)
	GetRequestByID(ctx context.Context, id int) (models.Request, error)
	FindRequestStatuses(ctx context.Context, title, artist string) ([]string, error)
	CreateRequest(ctx context.Context, requesterID int, title, artist string) (int, error)
	ListWaitingRequests(ctx context.Context, viewerID int) ([]models.RequestView, error)
	CloseRequest(ctx context.Context, id int, status string, reward int) error
	AddVote(ctx context.Context, userID, requestID int) error
	RemoveVote(ctx context.Context, userID, requestID int) error
	GetRequestVoters(ctx context.Context, requestID int) ([]int, error)
	AddNotification(ctx context.Context, userID int, message string) error
	ListNotifications(ctx context.Context, userID int) ([]models.Notification, error)
	MarkNotificationSeen(ctx context.Context, id, userID int) error
	CountUnseenNotifications(ctx context.Context, userID int) (int, error)
}

type Service struct {
	repo        Repository
	jwtSecret   string
	downloadTTL time.Duration
	requestFee  int
	bonusLoc    *time.Location
	log         zerolog.Logger
}

func NewService(
	repo Repository,
	jwtSecret string,
	downloadTTL time.Duration,
	requestFee int,
	bonusLoc *time.Location,
	log zerolog.Logger,
) Service {
	return Service{
		repo:        repo,
		jwtSecret:   jwtSecret,
		downloadTTL: downloadTTL,
		requestFee:  requestFee,
		bonusLoc:    bonusLoc,
		log:         log,
	}
}
