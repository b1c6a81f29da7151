package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"trackshop/models"
)

const downloadColumns = "id, user_id, track_id, cost, token, issued_at, valid_until, consumed"

func scanDownload(row *sql.Row) (models.Download, error) {
	var d models.Download
	err := row.Scan(
		&d.ID,
		&d.UserID,
		&d.TrackID,
		&d.Cost,
		&d.Token,
		&d.IssuedAt,
		&d.ValidUntil,
		&d.Consumed,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Download{}, models.ErrNotFound
		}
		return models.Download{}, err
	}
	return d, nil
}

func (r PostgresRepository) GetActiveDownload(
	ctx context.Context,
	userID, trackID int,
	now time.Time,
) (models.Download, error) {
	row := r.db.QueryRowContext(
		ctx,
		"SELECT "+downloadColumns+" FROM downloads "+
			"WHERE user_id=$1 AND track_id=$2 AND NOT consumed AND valid_until > $3",
		userID, trackID, now,
	)
	return scanDownload(row)
}

func (r PostgresRepository) GetDownloadByToken(
	ctx context.Context,
	token string,
) (models.Download, error) {
	row := r.db.QueryRowContext(
		ctx,
		"SELECT "+downloadColumns+" FROM downloads WHERE token=$1",
		token,
	)
	return scanDownload(row)
}

func (r PostgresRepository) CreateDownload(
	ctx context.Context,
	d models.Download,
) (int, error) {
	var id int
	err := r.db.QueryRowContext(
		ctx,
		`INSERT INTO downloads (user_id, track_id, cost, token, issued_at, valid_until, consumed)
		 VALUES ($1, $2, $3, $4, $5, $6, FALSE) RETURNING id`,
		d.UserID, d.TrackID, d.Cost, d.Token, d.IssuedAt, d.ValidUntil,
	).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, models.ErrDownloadExists
		}
		return 0, err
	}
	return id, nil
}

func (r PostgresRepository) ConsumeDownload(
	ctx context.Context,
	token string,
	now time.Time,
) error {
	res, err := r.db.ExecContext(
		ctx,
		"UPDATE downloads SET consumed = TRUE WHERE token=$1 AND NOT consumed AND valid_until > $2",
		token, now,
	)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		d, err := r.GetDownloadByToken(ctx, token)
		if err != nil {
			return err
		}
		if d.Consumed {
			return models.ErrAlreadyConsumed
		}
		return models.ErrExpired
	}
	return nil
}

func (r PostgresRepository) ExpireStaleDownloads(
	ctx context.Context,
	userID, trackID int,
	now time.Time,
) error {
	_, err := r.db.ExecContext(
		ctx,
		"UPDATE downloads SET consumed = TRUE "+
			"WHERE user_id=$1 AND track_id=$2 AND NOT consumed AND valid_until <= $3",
		userID, trackID, now,
	)
	return err
}

func (r PostgresRepository) ListActiveDownloads(
	ctx context.Context,
	userID int,
	now time.Time,
) ([]models.Download, error) {
	rows, err := r.db.QueryContext(
		ctx,
		"SELECT "+downloadColumns+" FROM downloads "+
			"WHERE user_id=$1 AND NOT consumed AND valid_until > $2 ORDER BY issued_at DESC",
		userID, now,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var downloads []models.Download
	for rows.Next() {
		var d models.Download
		if err := rows.Scan(
			&d.ID,
			&d.UserID,
			&d.TrackID,
			&d.Cost,
			&d.Token,
			&d.IssuedAt,
			&d.ValidUntil,
			&d.Consumed,
		); err != nil {
			return nil, err
		}
		downloads = append(downloads, d)
	}
	return downloads, rows.Err()
}
