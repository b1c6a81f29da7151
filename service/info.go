package service

import (
	"context"
	"time"
)

type InfoResponse struct {
	Tokens              int            `json:"tokens"`
	Downloads           []DownloadItem `json:"downloads"`
	UnseenNotifications int            `json:"unseenNotifications"`
}

type DownloadItem struct {
	TrackID    int       `json:"trackId"`
	Title      string    `json:"title"`
	Artist     string    `json:"artist"`
	Token      string    `json:"token"`
	ValidUntil time.Time `json:"validUntil"`
}

func (s Service) GetInfo(
	ctx context.Context,
	userID int,
) (InfoResponse, error) {
	user, err := s.repo.GetUserByID(ctx, userID)
	if err != nil {
		return InfoResponse{}, err
	}
	downloads, err := s.repo.ListActiveDownloads(ctx, userID, time.Now())
	if err != nil {
		return InfoResponse{}, err
	}
	unseen, err := s.repo.CountUnseenNotifications(ctx, userID)
	if err != nil {
		return InfoResponse{}, err
	}

	var items []DownloadItem
	for _, d := range downloads {
		track, err := s.repo.GetTrackByID(ctx, d.TrackID)
		if err != nil {
			return InfoResponse{}, err
		}
		items = append(
			items,
			DownloadItem{
				TrackID:    d.TrackID,
				Title:      track.Title,
				Artist:     track.Artist,
				Token:      d.Token,
				ValidUntil: d.ValidUntil,
			},
		)
	}

	return InfoResponse{
		Tokens:              user.Tokens,
		Downloads:           items,
		UnseenNotifications: unseen,
	}, nil
}
