package repository_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"trackshop/models"
	"trackshop/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/require"
)

var userColumns = []string{"id", "username", "password", "role", "tokens", "last_bonus_day"}

func TestDebitUserTokens(t *testing.T) {
	t.Run("Successful debit is a single conditional update", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectExec(regexp.QuoteMeta(
			"UPDATE users SET tokens = tokens - $2 WHERE id=$1 AND tokens >= $2",
		)).
			WithArgs(1, 5).
			WillReturnResult(sqlmock.NewResult(0, 1))

		repo := repository.NewPostgresRepository(db)
		require.NoError(t, repo.DebitUserTokens(context.Background(), 1, 5))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Insufficient tokens when no row is updated", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectExec(regexp.QuoteMeta(
			"UPDATE users SET tokens = tokens - $2 WHERE id=$1 AND tokens >= $2",
		)).
			WithArgs(1, 5).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery("SELECT id, username, password, role, tokens, last_bonus_day FROM users").
			WithArgs(1).
			WillReturnRows(sqlmock.NewRows(userColumns).
				AddRow(1, "user", "hash", "user", 2, nil))

		repo := repository.NewPostgresRepository(db)
		err = repo.DebitUserTokens(context.Background(), 1, 5)
		require.ErrorIs(t, err, models.ErrInsufficientTokens)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Missing user", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectExec(regexp.QuoteMeta(
			"UPDATE users SET tokens = tokens - $2 WHERE id=$1 AND tokens >= $2",
		)).
			WithArgs(99, 5).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery("SELECT id, username, password, role, tokens, last_bonus_day FROM users").
			WithArgs(99).
			WillReturnRows(sqlmock.NewRows(userColumns))

		repo := repository.NewPostgresRepository(db)
		err = repo.DebitUserTokens(context.Background(), 99, 5)
		require.ErrorIs(t, err, models.ErrNotFound)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGrantDailyBonus(t *testing.T) {
	t.Run("First call of the day grants", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectExec("UPDATE users SET tokens = tokens \\+ \\$3, last_bonus_day").
			WithArgs(1, "2026-09-01", 1).
			WillReturnResult(sqlmock.NewResult(0, 1))

		repo := repository.NewPostgresRepository(db)
		granted, err := repo.GrantDailyBonus(context.Background(), 1, "2026-09-01", 1)
		require.NoError(t, err)
		require.True(t, granted)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Repeat call the same day is a no-op", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		day := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
		mock.ExpectExec("UPDATE users SET tokens = tokens \\+ \\$3, last_bonus_day").
			WithArgs(1, "2026-09-01", 1).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery("SELECT id, username, password, role, tokens, last_bonus_day FROM users").
			WithArgs(1).
			WillReturnRows(sqlmock.NewRows(userColumns).
				AddRow(1, "user", "hash", "user", 3, day))

		repo := repository.NewPostgresRepository(db)
		granted, err := repo.GrantDailyBonus(context.Background(), 1, "2026-09-01", 1)
		require.NoError(t, err)
		require.False(t, granted)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestConsumeDownload(t *testing.T) {
	downloadColumns := []string{
		"id", "user_id", "track_id", "cost", "token", "issued_at", "valid_until", "consumed",
	}
	now := time.Now()

	t.Run("Consumes only an unconsumed unexpired row", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectExec("UPDATE downloads SET consumed = TRUE").
			WithArgs("tok", sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(0, 1))

		repo := repository.NewPostgresRepository(db)
		require.NoError(t, repo.ConsumeDownload(context.Background(), "tok", now))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Already consumed row is reported distinctly", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectExec("UPDATE downloads SET consumed = TRUE").
			WithArgs("tok", sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery("SELECT (.+) FROM downloads WHERE token").
			WithArgs("tok").
			WillReturnRows(sqlmock.NewRows(downloadColumns).
				AddRow(1, 1, 2, 5, "tok", now.Add(-time.Minute), now.Add(9*time.Minute), true))

		repo := repository.NewPostgresRepository(db)
		err = repo.ConsumeDownload(context.Background(), "tok", now)
		require.ErrorIs(t, err, models.ErrAlreadyConsumed)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Expired row is reported distinctly", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectExec("UPDATE downloads SET consumed = TRUE").
			WithArgs("tok", sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery("SELECT (.+) FROM downloads WHERE token").
			WithArgs("tok").
			WillReturnRows(sqlmock.NewRows(downloadColumns).
				AddRow(1, 1, 2, 5, "tok", now.Add(-time.Hour), now.Add(-50*time.Minute), false))

		repo := repository.NewPostgresRepository(db)
		err = repo.ConsumeDownload(context.Background(), "tok", now)
		require.ErrorIs(t, err, models.ErrExpired)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Unknown token", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectExec("UPDATE downloads SET consumed = TRUE").
			WithArgs("tok", sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery("SELECT (.+) FROM downloads WHERE token").
			WithArgs("tok").
			WillReturnRows(sqlmock.NewRows(downloadColumns))

		repo := repository.NewPostgresRepository(db)
		err = repo.ConsumeDownload(context.Background(), "tok", now)
		require.ErrorIs(t, err, models.ErrNotFound)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestCreateDownload_UniqueViolation(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("INSERT INTO downloads").
		WillReturnError(&pq.Error{Code: "23505"})

	repo := repository.NewPostgresRepository(db)
	_, err = repo.CreateDownload(context.Background(), models.Download{
		UserID:     1,
		TrackID:    2,
		Cost:       5,
		Token:      "tok",
		IssuedAt:   time.Now(),
		ValidUntil: time.Now().Add(10 * time.Minute),
	})
	require.ErrorIs(t, err, models.ErrDownloadExists)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateRequest_UniqueViolation(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("INSERT INTO requests").
		WillReturnError(&pq.Error{Code: "23505"})

	repo := repository.NewPostgresRepository(db)
	_, err = repo.CreateRequest(context.Background(), 1, "Song", "Band")
	require.ErrorIs(t, err, models.ErrDuplicateRequest)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreditUserTokens_NegativeAmount(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := repository.NewPostgresRepository(db)
	err = repo.CreditUserTokens(context.Background(), 1, -5)
	require.ErrorIs(t, err, models.ErrInvalidAmount)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAddVote(t *testing.T) {
	t.Run("Duplicate vote maps the unique violation", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectExec("INSERT INTO votes").
			WithArgs(1, 4).
			WillReturnError(&pq.Error{Code: "23505"})

		repo := repository.NewPostgresRepository(db)
		err = repo.AddVote(context.Background(), 1, 4)
		require.ErrorIs(t, err, models.ErrAlreadyVoted)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Unknown request maps the foreign key violation", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectExec("INSERT INTO votes").
			WithArgs(1, 99).
			WillReturnError(&pq.Error{Code: "23503"})

		repo := repository.NewPostgresRepository(db)
		err = repo.AddVote(context.Background(), 1, 99)
		require.ErrorIs(t, err, models.ErrNotFound)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestCloseRequest(t *testing.T) {
	requestColumns := []string{
		"id", "title", "artist", "requester_id", "status", "reward_pool", "created_at", "updated_at",
	}

	t.Run("Waiting request is closed", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectExec("UPDATE requests SET status").
			WithArgs(4, models.RequestSatisfied, 10).
			WillReturnResult(sqlmock.NewResult(0, 1))

		repo := repository.NewPostgresRepository(db)
		require.NoError(t, repo.CloseRequest(context.Background(), 4, models.RequestSatisfied, 10))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Closed request is not editable", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		now := time.Now()
		mock.ExpectExec("UPDATE requests SET status").
			WithArgs(4, models.RequestSatisfied, 10).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery("SELECT (.+) FROM requests WHERE id").
			WithArgs(4).
			WillReturnRows(sqlmock.NewRows(requestColumns).
				AddRow(4, "Song", "Band", 1, models.RequestRejected, 0, now, now))

		repo := repository.NewPostgresRepository(db)
		err = repo.CloseRequest(context.Background(), 4, models.RequestSatisfied, 10)
		require.ErrorIs(t, err, models.ErrNotEditable)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}
