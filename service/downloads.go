package service

import (
	"context"
	"errors"
	"time"

	"trackshop/models"

	"github.com/google/uuid"
)

type DownloadInfo struct {
	Track      models.Track `json:"track"`
	CanRedeem  bool         `json:"canRedeem"`
	ValidUntil time.Time    `json:"validUntil"`
}

func (s Service) BuyTrack(
	ctx context.Context,
	userID, trackID int,
) (models.Download, bool, error) {
	now := time.Now()

	existing, err := s.repo.GetActiveDownload(ctx, userID, trackID, now)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, models.ErrNotFound) {
		return models.Download{}, false, err
	}

	track, err := s.repo.GetTrackByID(ctx, trackID)
	if err != nil {
		return models.Download{}, false, err
	}

	if err := s.repo.ExpireStaleDownloads(ctx, userID, trackID, now); err != nil {
		return models.Download{}, false, err
	}

	if err := s.repo.DebitUserTokens(ctx, userID, track.Price); err != nil {
		return models.Download{}, false, err
	}

	d := models.Download{
		UserID:     userID,
		TrackID:    trackID,
		Cost:       track.Price,
		Token:      uuid.NewString(),
		IssuedAt:   now,
		ValidUntil: now.Add(s.downloadTTL),
	}
	id, err := s.repo.CreateDownload(ctx, d)
	if err != nil {
		if creditErr := s.repo.CreditUserTokens(ctx, userID, track.Price); creditErr != nil {
			s.log.Error().
				Err(creditErr).
				Int("user_id", userID).
				Int("amount", track.Price).
				Msg("не удалось вернуть токены после неудачной покупки")
		}
		if errors.Is(err, models.ErrDownloadExists) {
			winner, err := s.repo.GetActiveDownload(ctx, userID, trackID, now)
			return winner, false, err
		}
		return models.Download{}, false, err
	}
	d.ID = id
	return d, true, nil
}

func (s Service) RedeemDownload(
	ctx context.Context,
	token string,
) (models.Track, error) {
	now := time.Now()
	d, err := s.repo.GetDownloadByToken(ctx, token)
	if err != nil {
		return models.Track{}, err
	}
	if d.Consumed {
		return models.Track{}, models.ErrAlreadyConsumed
	}
	if !d.ValidUntil.After(now) {
		return models.Track{}, models.ErrExpired
	}
	track, err := s.repo.GetTrackByID(ctx, d.TrackID)
	if err != nil {
		return models.Track{}, err
	}
	if err := s.repo.ConsumeDownload(ctx, token, now); err != nil {
		return models.Track{}, err
	}
	return track, nil
}

func (s Service) DescribeDownload(
	ctx context.Context,
	token string,
) (DownloadInfo, error) {
	now := time.Now()
	d, err := s.repo.GetDownloadByToken(ctx, token)
	if err != nil {
		return DownloadInfo{}, err
	}
	track, err := s.repo.GetTrackByID(ctx, d.TrackID)
	if err != nil {
		return DownloadInfo{}, err
	}
	return DownloadInfo{
		Track:      track,
		CanRedeem:  d.Redeemable(now),
		ValidUntil: d.ValidUntil,
	}, nil
}

func (s Service) ListTracks(ctx context.Context) ([]models.Track, error) {
	return s.repo.ListTracks(ctx)
}
