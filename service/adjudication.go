package service

import (
	"context"
	"fmt"

	"trackshop/models"
)

func (s Service) ApproveRequest(
	ctx context.Context,
	requestID, reward int,
) error {
	if reward < 0 {
		return models.ErrInvalidAmount
	}
	req, err := s.repo.GetRequestByID(ctx, requestID)
	if err != nil {
		return err
	}
	if err := s.repo.CloseRequest(ctx, requestID, models.RequestSatisfied, reward); err != nil {
		return err
	}
	if err := s.repo.CreditUserTokens(ctx, req.RequesterID, reward); err != nil {
		s.log.Error().
			Err(err).
			Int("request_id", requestID).
			Int("user_id", req.RequesterID).
			Int("amount", reward).
			Msg("не удалось начислить награду за заявку")
		return err
	}
	s.notifyRequestApproved(ctx, req, reward)
	return nil
}

func (s Service) RejectRequest(
	ctx context.Context,
	requestID int,
) error {
	return s.repo.CloseRequest(ctx, requestID, models.RequestRejected, 0)
}

func (s Service) notifyRequestApproved(
	ctx context.Context,
	req models.Request,
	reward int,
) {
	msg := fmt.Sprintf(
		"Заявка «%s — %s» одобрена, начислено %d токенов",
		req.Artist, req.Title, reward,
	)
	if err := s.repo.AddNotification(ctx, req.RequesterID, msg); err != nil {
		s.log.Warn().
			Err(err).
			Int("request_id", req.ID).
			Int("user_id", req.RequesterID).
			Msg("не удалось создать уведомление")
	}

	voters, err := s.repo.GetRequestVoters(ctx, req.ID)
	if err != nil {
		s.log.Warn().
			Err(err).
			Int("request_id", req.ID).
			Msg("не удалось получить список проголосовавших")
		return
	}
	voterMsg := fmt.Sprintf(
		"Трек «%s — %s» добавлен в каталог",
		req.Artist, req.Title,
	)
	for _, voterID := range voters {
		if voterID == req.RequesterID {
			continue
		}
		if err := s.repo.AddNotification(ctx, voterID, voterMsg); err != nil {
			s.log.Warn().
				Err(err).
				Int("request_id", req.ID).
				Int("user_id", voterID).
				Msg("не удалось создать уведомление")
		}
	}
}
