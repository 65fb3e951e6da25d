package repository

import (
	apperrors "VCS_SMS_Fleet/internal/fleet/errors"
	"VCS_SMS_Fleet/internal/fleet/model"
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestGetRenewalById_NotFound(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewRenewalRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "renewals" WHERE id = $1 ORDER BY "renewals"."id" LIMIT $2`)).
		WithArgs("ren-x", 1).
		WillReturnError(gorm.ErrRecordNotFound)

	_, err := repo.GetRenewalById(context.Background(), "ren-x")

	assert.ErrorIs(t, err, apperrors.ErrRenewalNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetDueRenewals(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewRenewalRepository(db)
	now := time.Date(2026, 5, 5, 0, 0, 0, 0, time.UTC)

	rows := sqlmock.NewRows([]string{"id", "server_id", "schedule", "status", "next_execution_at"}).
		AddRow("ren-1", "srv-1", "daily", "success", now.Add(-time.Hour)).
		AddRow("ren-2", "srv-1", "weekly", "failed", now)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "renewals" WHERE next_execution_at <= $1 AND status <> $2 ORDER BY next_execution_at asc LIMIT $3`)).
		WithArgs(now, "running", 100).
		WillReturnRows(rows)

	renewals, err := repo.GetDueRenewals(context.Background(), now, 100)

	require.NoError(t, err)
	require.Len(t, renewals, 2)
	for _, r := range renewals {
		assert.True(t, r.IsOverdue(now))
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApplyRenewalTransition(t *testing.T) {
	executedAt := time.Date(2026, 5, 5, 1, 0, 0, 0, time.UTC)
	next := executedAt.Add(7 * 24 * time.Hour)

	tests := []struct {
		name       string
		transition model.RenewalTransition
		mockSetup  func(mock sqlmock.Sqlmock)
	}{
		{
			name:       "Running Writes Status Only",
			transition: model.RenewalStarted(),
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec(regexp.QuoteMeta(`UPDATE "renewals" SET "status"=$1,"updated_at"=$2 WHERE id = $3`)).
					WithArgs("running", sqlmock.AnyArg(), "ren-1").
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit()
			},
		},
		{
			name:       "Success Writes Next Execution",
			transition: model.RenewalSucceeded(executedAt, "renewed\n", &next),
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec(regexp.QuoteMeta(`UPDATE "renewals" SET "last_executed_at"=$1,"last_output"=$2,"next_execution_at"=$3,"status"=$4,"updated_at"=$5 WHERE id = $6`)).
					WithArgs(executedAt, "renewed", next, "success", sqlmock.AnyArg(), "ren-1").
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit()
			},
		},
		{
			name:       "Success Without Schedule Clears Next Execution",
			transition: model.RenewalSucceeded(executedAt, "renewed", nil),
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec(regexp.QuoteMeta(`UPDATE "renewals" SET "last_executed_at"=$1,"last_output"=$2,"next_execution_at"=$3,"status"=$4,"updated_at"=$5 WHERE id = $6`)).
					WithArgs(executedAt, "renewed", nil, "success", sqlmock.AnyArg(), "ren-1").
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit()
			},
		},
		{
			name:       "Failed Keeps Next Execution",
			transition: model.RenewalFailed(executedAt, "exit status 1"),
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec(regexp.QuoteMeta(`UPDATE "renewals" SET "last_executed_at"=$1,"last_output"=$2,"status"=$3,"updated_at"=$4 WHERE id = $5`)).
					WithArgs(executedAt, "exit status 1", "failed", sqlmock.AnyArg(), "ren-1").
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit()
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			db, mock := setupTestDB(t)
			repo := NewRenewalRepository(db)

			tc.mockSetup(mock)

			err := repo.ApplyRenewalTransition(context.Background(), "ren-1", tc.transition)

			require.NoError(t, err)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestFailStaleRenewals(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewRenewalRepository(db)
	cutoff := time.Date(2026, 5, 5, 0, 0, 0, 0, time.UTC)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "renewals" SET "last_executed_at"=$1,"last_output"=$2,"status"=$3,"updated_at"=$4 WHERE status = $5 AND updated_at < $6`)).
		WithArgs(sqlmock.AnyArg(), "interrupted", "failed", sqlmock.AnyArg(), "running", cutoff).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit()

	n, err := repo.FailStaleRenewals(context.Background(), cutoff, "interrupted")

	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteRenewalById(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewRenewalRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "renewals" WHERE id = $1`)).
		WithArgs("ren-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.DeleteRenewalById(context.Background(), "ren-1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}
