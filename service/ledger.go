package service

import (
	"context"
	"time"

	"trackshop/models"
)

const bonusAmount = 1

func (s Service) GrantDailyBonus(
	ctx context.Context,
	userID int,
) (bool, error) {
	day := time.Now().In(s.bonusLoc).Format("2006-01-02")
	return s.repo.GrantDailyBonus(ctx, userID, day, bonusAmount)
}

func (s Service) RechargeUser(
	ctx context.Context,
	username string,
	amount int,
) error {
	if amount < 0 {
		return models.ErrInvalidAmount
	}
	user, err := s.repo.GetUserByUsername(ctx, username)
	if err != nil {
		return err
	}
	return s.repo.SetUserTokens(ctx, user.ID, amount)
}
