package repository

import (
	"context"
	"database/sql"
	"errors"

	"trackshop/models"
)

func (r PostgresRepository) GetRequestByID(
	ctx context.Context,
	id int,
) (models.Request, error) {
	row := r.db.QueryRowContext(
		ctx,
		`SELECT id, title, artist, requester_id, status, reward_pool, created_at, updated_at
		 FROM requests WHERE id=$1`,
		id,
	)
	var req models.Request
	err := row.Scan(
		&req.ID,
		&req.Title,
		&req.Artist,
		&req.RequesterID,
		&req.Status,
		&req.RewardPool,
		&req.CreatedAt,
		&req.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Request{}, models.ErrNotFound
		}
		return models.Request{}, err
	}
	return req, nil
}

func (r PostgresRepository) FindRequestStatuses(
	ctx context.Context,
	title, artist string,
) ([]string, error) {
	rows, err := r.db.QueryContext(
		ctx,
		`SELECT status FROM requests
		 WHERE lower(btrim(title)) = lower(btrim($1))
		   AND lower(btrim(artist)) = lower(btrim($2))`,
		title, artist,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var statuses []string
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return nil, err
		}
		statuses = append(statuses, s)
	}
	return statuses, rows.Err()
}

func (r PostgresRepository) CreateRequest(
	ctx context.Context,
	requesterID int,
	title, artist string,
) (int, error) {
	var id int
	err := r.db.QueryRowContext(
		ctx,
		`INSERT INTO requests (title, artist, requester_id, status)
		 VALUES ($1, $2, $3, 'waiting') RETURNING id`,
		title, artist, requesterID,
	).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, models.ErrDuplicateRequest
		}
		return 0, err
	}
	return id, nil
}

func (r PostgresRepository) ListWaitingRequests(
	ctx context.Context,
	viewerID int,
) ([]models.RequestView, error) {
	rows, err := r.db.QueryContext(
		ctx,
		`SELECT r.id, r.title, r.artist, r.requester_id, r.status, r.reward_pool,
		        r.created_at, r.updated_at,
		        (SELECT count(*) FROM votes v WHERE v.request_id = r.id) AS votes,
		        EXISTS(SELECT 1 FROM votes v WHERE v.request_id = r.id AND v.user_id = $1) AS voted
		 FROM requests r
		 WHERE r.status = 'waiting'
		 ORDER BY votes DESC, r.id ASC`,
		viewerID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var views []models.RequestView
	for rows.Next() {
		var v models.RequestView
		if err := rows.Scan(
			&v.ID,
			&v.Title,
			&v.Artist,
			&v.RequesterID,
			&v.Status,
			&v.RewardPool,
			&v.CreatedAt,
			&v.UpdatedAt,
			&v.Votes,
			&v.Voted,
		); err != nil {
			return nil, err
		}
		views = append(views, v)
	}
	return views, rows.Err()
}

func (r PostgresRepository) CloseRequest(
	ctx context.Context,
	id int,
	status string,
	reward int,
) error {
	res, err := r.db.ExecContext(
		ctx,
		`UPDATE requests SET status=$2, reward_pool=$3, updated_at=now()
		 WHERE id=$1 AND status='waiting'`,
		id, status, reward,
	)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		if _, err := r.GetRequestByID(ctx, id); err != nil {
			return err
		}
		return models.ErrNotEditable
	}
	return nil
}

func (r PostgresRepository) AddVote(
	ctx context.Context,
	userID, requestID int,
) error {
	_, err := r.db.ExecContext(
		ctx,
		"INSERT INTO votes (user_id, request_id) VALUES ($1, $2)",
		userID, requestID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return models.ErrAlreadyVoted
		}
		if isForeignKeyViolation(err) {
			return models.ErrNotFound
		}
		return err
	}
	return nil
}

func (r PostgresRepository) RemoveVote(
	ctx context.Context,
	userID, requestID int,
) error {
	res, err := r.db.ExecContext(
		ctx,
		"DELETE FROM votes WHERE user_id=$1 AND request_id=$2",
		userID, requestID,
	)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return models.ErrNotVoted
	}
	return nil
}

func (r PostgresRepository) GetRequestVoters(
	ctx context.Context,
	requestID int,
) ([]int, error) {
	rows, err := r.db.QueryContext(
		ctx,
		"SELECT DISTINCT user_id FROM votes WHERE request_id=$1 ORDER BY user_id",
		requestID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var voters []int
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		voters = append(voters, id)
	}
	return voters, rows.Err()
}
