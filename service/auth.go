package service

import (
	"context"
	"errors"
	"time"

	"trackshop/models"

	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
)

func (s Service) Authenticate(
	ctx context.Context,
	username, password string,
) (string, error) {
	user, err := s.repo.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			hashed, err := bcryptHash(password)
			if err != nil {
				return "", err
			}
			userID, err := s.repo.CreateUser(ctx, username, hashed, models.RoleUser)
			if err != nil {
				return "", err
			}
			user = models.User{
				ID:       userID,
				Username: username,
				Password: hashed,
				Role:     models.RoleUser,
			}
		} else {
			return "", err
		}
	} else {
		if !bcryptCompare(user.Password, password) {
			return "", errors.New("неверные учетные данные")
		}
	}

	token, err := generateJWT(user, s.jwtSecret)
	if err != nil {
		return "", err
	}
	return token, nil
}

func bcryptHash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword(
		[]byte(password),
		bcrypt.DefaultCost,
	)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func bcryptCompare(hashed, password string) bool {
	err := bcrypt.CompareHashAndPassword(
		[]byte(hashed),
		[]byte(password),
	)
	return err == nil
}

func generateJWT(
	user models.User,
	secret string,
) (string, error) {
	token := jwt.NewWithClaims(
		jwt.SigningMethodHS256,
		jwt.MapClaims{
			"user_id":  user.ID,
			"username": user.Username,
			"role":     user.Role,
			"exp":      time.Now().Add(24 * time.Hour).Unix(),
		},
	)
	tokenStr, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", err
	}
	return tokenStr, nil
}
