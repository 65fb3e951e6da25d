package repository_test

import (
	apperrors "VCS_SMS_Fleet/internal/fleet/errors"
	mockrepository "VCS_SMS_Fleet/internal/fleet/mocks/repository"
	"VCS_SMS_Fleet/internal/fleet/model"
	"VCS_SMS_Fleet/internal/fleet/repository"
	"bytes"
	"context"
	"encoding/gob"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func encodeServer(t *testing.T, server model.Server) []byte {
	var buf bytes.Buffer
	require.NoError(t, gob.NewEncoder(&buf).Encode(server))
	return buf.Bytes()
}

func TestCachedServerRepository_GetServerById(t *testing.T) {
	server := model.Server{ID: "srv-1", Name: "web-1", Hostname: "10.0.0.5", Port: 22, Status: model.ConnectionStatusOnline}
	ttl := 5 * time.Minute

	tests := []struct {
		name        string
		setupMocks  func(rm redismock.ClientMock, repo *mockrepository.MockServerRepository)
		expectedErr error
	}{
		{
			name: "Cache Hit",
			setupMocks: func(rm redismock.ClientMock, repo *mockrepository.MockServerRepository) {
				rm.ExpectGet("server:srv-1").SetVal(string(encodeServer(t, server)))
			},
		},
		{
			name: "Cache Miss Loads And Stores",
			setupMocks: func(rm redismock.ClientMock, repo *mockrepository.MockServerRepository) {
				rm.ExpectGet("server:srv-1").RedisNil()
				repo.EXPECT().GetServerById(gomock.Any(), "srv-1").Return(server, nil)
				rm.ExpectSet("server:srv-1", encodeServer(t, server), ttl).SetVal("OK")
			},
		},
		{
			name: "Cache Unavailable Falls Back",
			setupMocks: func(rm redismock.ClientMock, repo *mockrepository.MockServerRepository) {
				rm.ExpectGet("server:srv-1").SetErr(errors.New("connection refused"))
				repo.EXPECT().GetServerById(gomock.Any(), "srv-1").Return(server, nil)
				rm.ExpectSet("server:srv-1", encodeServer(t, server), ttl).SetErr(errors.New("connection refused"))
			},
		},
		{
			name: "Not Found Is Not Cached",
			setupMocks: func(rm redismock.ClientMock, repo *mockrepository.MockServerRepository) {
				rm.ExpectGet("server:srv-1").RedisNil()
				repo.EXPECT().GetServerById(gomock.Any(), "srv-1").
					Return(model.Server{}, fmt.Errorf("ServerRepository.GetServerById: %w", apperrors.ErrServerNotFound))
			},
			expectedErr: apperrors.ErrServerNotFound,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			db, rm := redismock.NewClientMock()
			inner := mockrepository.NewMockServerRepository(ctrl)
			tc.setupMocks(rm, inner)

			repo := repository.NewCachedServerRepository(db, inner, ttl, zap.NewNop())
			got, err := repo.GetServerById(context.Background(), "srv-1")

			if tc.expectedErr != nil {
				assert.ErrorIs(t, err, tc.expectedErr)
			} else {
				require.NoError(t, err)
				assert.Equal(t, server, got)
			}
			assert.NoError(t, rm.ExpectationsWereMet())
		})
	}
}

func TestCachedServerRepository_ApplyServerTransitionInvalidates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	db, rm := redismock.NewClientMock()
	inner := mockrepository.NewMockServerRepository(ctrl)
	transition := model.ServerTransition{Status: model.ConnectionStatusOffline, CheckedAt: time.Now().UTC()}

	rm.ExpectDel("server:srv-1").SetVal(1)
	inner.EXPECT().ApplyServerTransition(gomock.Any(), "srv-1", transition).Return(nil)

	repo := repository.NewCachedServerRepository(db, inner, time.Minute, zap.NewNop())
	require.NoError(t, repo.ApplyServerTransition(context.Background(), "srv-1", transition))
	assert.NoError(t, rm.ExpectationsWereMet())
}

func TestCachedServerRepository_DeleteInvalidateFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	db, rm := redismock.NewClientMock()
	inner := mockrepository.NewMockServerRepository(ctrl)
	rm.ExpectDel("server:srv-1").SetErr(errors.New("readonly replica"))

	repo := repository.NewCachedServerRepository(db, inner, time.Minute, zap.NewNop())
	assert.Error(t, repo.DeleteServerById(context.Background(), "srv-1"))
}
