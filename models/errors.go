package models

import "errors"

var (
	ErrNotFound           = errors.New("запись не найдена")
	ErrInsufficientTokens = errors.New("недостаточно токенов")
	ErrAlreadyConsumed    = errors.New("ссылка уже использована")
	ErrExpired            = errors.New("срок действия ссылки истёк")
	ErrDuplicateRequest   = errors.New("такая заявка уже на голосовании")
	ErrAlreadySatisfied   = errors.New("этот трек уже добавлен")
	ErrAlreadyVoted       = errors.New("голос уже учтён")
	ErrNotVoted           = errors.New("голос не найден")
	ErrNotEditable        = errors.New("заявка уже закрыта")
	ErrInvalidAmount      = errors.New("неверная сумма")

	ErrDownloadExists = errors.New("активная ссылка уже существует")
)
