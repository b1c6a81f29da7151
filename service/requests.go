package service

import (
	"context"

	"trackshop/models"
)

func (s Service) OpenRequest(
	ctx context.Context,
	userID int,
	title, artist string,
) (models.Request, error) {
	statuses, err := s.repo.FindRequestStatuses(ctx, title, artist)
	if err != nil {
		return models.Request{}, err
	}
	for _, status := range statuses {
		if status == models.RequestWaiting {
			return models.Request{}, models.ErrDuplicateRequest
		}
	}
	for _, status := range statuses {
		if status == models.RequestSatisfied {
			return models.Request{}, models.ErrAlreadySatisfied
		}
	}

	if err := s.repo.DebitUserTokens(ctx, userID, s.requestFee); err != nil {
		return models.Request{}, err
	}

	id, err := s.repo.CreateRequest(ctx, userID, title, artist)
	if err != nil {
		if creditErr := s.repo.CreditUserTokens(ctx, userID, s.requestFee); creditErr != nil {
			s.log.Error().
				Err(creditErr).
				Int("user_id", userID).
				Int("amount", s.requestFee).
				Msg("не удалось вернуть токены после неудачной заявки")
		}
		return models.Request{}, err
	}
	return s.repo.GetRequestByID(ctx, id)
}

func (s Service) Vote(
	ctx context.Context,
	userID, requestID int,
) error {
	req, err := s.repo.GetRequestByID(ctx, requestID)
	if err != nil {
		return err
	}
	if req.Status != models.RequestWaiting {
		return models.ErrNotEditable
	}
	return s.repo.AddVote(ctx, userID, requestID)
}

func (s Service) Unvote(
	ctx context.Context,
	userID, requestID int,
) error {
	return s.repo.RemoveVote(ctx, userID, requestID)
}

func (s Service) ListRequests(
	ctx context.Context,
	viewerID int,
) ([]models.RequestView, error) {
	return s.repo.ListWaitingRequests(ctx, viewerID)
}
