package repository

import (
	"context"
	"database/sql"
	"errors"

	"trackshop/models"

	"github.com/lib/pq"
)

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) PostgresRepository {
	return PostgresRepository{db: db}
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}

func isForeignKeyViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23503"
}

func (r PostgresRepository) GetUserByUsername(
	ctx context.Context,
	username string,
) (models.User, error) {
	row := r.db.QueryRowContext(
		ctx,
		"SELECT id, username, password, role, tokens, last_bonus_day FROM users WHERE username=$1",
		username,
	)
	return scanUser(row)
}

func (r PostgresRepository) GetUserByID(
	ctx context.Context,
	id int,
) (models.User, error) {
	row := r.db.QueryRowContext(
		ctx,
		"SELECT id, username, password, role, tokens, last_bonus_day FROM users WHERE id=$1",
		id,
	)
	return scanUser(row)
}

func scanUser(row *sql.Row) (models.User, error) {
	var u models.User
	err := row.Scan(&u.ID, &u.Username, &u.Password, &u.Role, &u.Tokens, &u.LastBonusDay)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, models.ErrNotFound
		}
		return models.User{}, err
	}
	return u, nil
}

func (r PostgresRepository) CreateUser(
	ctx context.Context,
	username, password, role string,
) (int, error) {
	var id int
	err := r.db.QueryRowContext(
		ctx,
		"INSERT INTO users (username, password, role, tokens) VALUES ($1, $2, $3, 0) RETURNING id",
		username, password, role,
	).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (r PostgresRepository) DebitUserTokens(
	ctx context.Context,
	id, amount int,
) error {
	res, err := r.db.ExecContext(
		ctx,
		"UPDATE users SET tokens = tokens - $2 WHERE id=$1 AND tokens >= $2",
		id, amount,
	)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		if _, err := r.GetUserByID(ctx, id); err != nil {
			return err
		}
		return models.ErrInsufficientTokens
	}
	return nil
}

func (r PostgresRepository) CreditUserTokens(
	ctx context.Context,
	id, amount int,
) error {
	if amount < 0 {
		return models.ErrInvalidAmount
	}
	res, err := r.db.ExecContext(
		ctx,
		"UPDATE users SET tokens = tokens + $2 WHERE id=$1",
		id, amount,
	)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return models.ErrNotFound
	}
	return nil
}

func (r PostgresRepository) SetUserTokens(
	ctx context.Context,
	id, amount int,
) error {
	res, err := r.db.ExecContext(
		ctx,
		"UPDATE users SET tokens = $2 WHERE id=$1",
		id, amount,
	)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return models.ErrNotFound
	}
	return nil
}

func (r PostgresRepository) GrantDailyBonus(
	ctx context.Context,
	id int,
	day string,
	amount int,
) (bool, error) {
	res, err := r.db.ExecContext(
		ctx,
		`UPDATE users SET tokens = tokens + $3, last_bonus_day = $2::date
		 WHERE id=$1 AND (last_bonus_day IS NULL OR last_bonus_day <> $2::date)`,
		id, day, amount,
	)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	if n == 0 {
		if _, err := r.GetUserByID(ctx, id); err != nil {
			return false, err
		}
		return false, nil
	}
	return true, nil
}

func (r PostgresRepository) GetTrackByID(
	ctx context.Context,
	id int,
) (models.Track, error) {
	row := r.db.QueryRowContext(
		ctx,
		"SELECT id, title, artist, price FROM tracks WHERE id=$1",
		id,
	)
	var t models.Track
	err := row.Scan(&t.ID, &t.Title, &t.Artist, &t.Price)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Track{}, models.ErrNotFound
		}
		return models.Track{}, err
	}
	return t, nil
}

func (r PostgresRepository) ListTracks(
	ctx context.Context,
) ([]models.Track, error) {
	rows, err := r.db.QueryContext(
		ctx,
		"SELECT id, title, artist, price FROM tracks ORDER BY artist, title",
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tracks []models.Track
	for rows.Next() {
		var t models.Track
		if err := rows.Scan(&t.ID, &t.Title, &t.Artist, &t.Price); err != nil {
			return nil, err
		}
		tracks = append(tracks, t)
	}
	return tracks, rows.Err()
}
