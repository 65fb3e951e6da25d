package renewal

import (
	apperrors "VCS_SMS_Fleet/internal/fleet/errors"
	"VCS_SMS_Fleet/internal/fleet/executor"
	"VCS_SMS_Fleet/internal/fleet/model"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

var fixedNow = time.Date(2026, 4, 10, 3, 0, 0, 0, time.UTC)

func newTestRunner(exec executor.Executor, store RenewalStore) *runner {
	return &runner{
		executor: exec,
		store:    store,
		now:      func() time.Time { return fixedNow },
		logger:   zap.NewNop(),
	}
}

type recordingStore struct {
	transitions []model.RenewalTransition
	failOn      map[model.RenewalStatus]error
	panicOn     map[model.RenewalStatus]string
}

func (s *recordingStore) ApplyRenewalTransition(_ context.Context, _ string, tr model.RenewalTransition) error {
	if msg, ok := s.panicOn[tr.Status]; ok {
		panic(msg)
	}
	if err := s.failOn[tr.Status]; err != nil {
		return err
	}
	s.transitions = append(s.transitions, tr)
	return nil
}

func (s *recordingStore) statuses() []model.RenewalStatus {
	out := make([]model.RenewalStatus, 0, len(s.transitions))
	for _, tr := range s.transitions {
		out = append(out, tr.Status)
	}
	return out
}

type panickingExecutor struct{}

func (panickingExecutor) Execute(context.Context, model.Server, string) (string, error) {
	panic("nil session")
}

func TestRunner_Execute(t *testing.T) {
	server := model.Server{ID: "srv-1"}
	renewal := model.Renewal{ID: "ren-1", Script: "certbot renew", Schedule: "every_7_days"}

	testCases := []struct {
		name             string
		renewal          model.Renewal
		setupMocks       func(exec *executor.MockExecutor)
		failOn           map[model.RenewalStatus]error
		expectedStatuses []model.RenewalStatus
		expectedStatus   model.RenewalStatus
		expectedOutput   string
		expectedNext     *time.Time
		expectedError    bool
	}{
		{
			name:    "Success Schedules Next Run",
			renewal: renewal,
			setupMocks: func(exec *executor.MockExecutor) {
				exec.EXPECT().Execute(gomock.Any(), server, "certbot renew").Return("Congratulations, all renewals succeeded\n", nil)
			},
			expectedStatuses: []model.RenewalStatus{model.RenewalStatusRunning, model.RenewalStatusSuccess},
			expectedStatus:   model.RenewalStatusSuccess,
			expectedOutput:   "Congratulations, all renewals succeeded",
			expectedNext:     ptr(fixedNow.Add(7 * 24 * time.Hour)),
		},
		{
			name:    "Success Unknown Schedule Leaves No Next Run",
			renewal: model.Renewal{ID: "ren-1", Script: "certbot renew", Schedule: "sometimes"},
			setupMocks: func(exec *executor.MockExecutor) {
				exec.EXPECT().Execute(gomock.Any(), server, "certbot renew").Return("ok", nil)
			},
			expectedStatuses: []model.RenewalStatus{model.RenewalStatusRunning, model.RenewalStatusSuccess},
			expectedStatus:   model.RenewalStatusSuccess,
			expectedOutput:   "ok",
		},
		{
			name:    "Executor Failure Records Failed",
			renewal: renewal,
			setupMocks: func(exec *executor.MockExecutor) {
				exec.EXPECT().Execute(gomock.Any(), server, "certbot renew").
					Return("", &executor.ExecError{Kind: apperrors.ErrConnectivity, Reason: "connection refused"})
			},
			expectedStatuses: []model.RenewalStatus{model.RenewalStatusRunning, model.RenewalStatusFailed},
			expectedStatus:   model.RenewalStatusFailed,
			expectedOutput:   "connection refused",
			expectedError:    true,
		},
		{
			name:             "Empty Script Records Failed",
			renewal:          model.Renewal{ID: "ren-1", Script: "  ", Schedule: "daily"},
			setupMocks:       func(exec *executor.MockExecutor) {},
			expectedStatuses: []model.RenewalStatus{model.RenewalStatusRunning, model.RenewalStatusFailed},
			expectedStatus:   model.RenewalStatusFailed,
			expectedOutput:   apperrors.ErrScriptRequired.Error(),
			expectedError:    true,
		},
		{
			name:    "Success Write Fails Falls Back To Failed",
			renewal: renewal,
			setupMocks: func(exec *executor.MockExecutor) {
				exec.EXPECT().Execute(gomock.Any(), server, "certbot renew").Return("ok", nil)
			},
			failOn:           map[model.RenewalStatus]error{model.RenewalStatusSuccess: errors.New("value too long")},
			expectedStatuses: []model.RenewalStatus{model.RenewalStatusRunning, model.RenewalStatusFailed},
			expectedStatus:   model.RenewalStatusFailed,
			expectedOutput:   "record result: value too long",
			expectedError:    true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			exec := executor.NewMockExecutor(ctrl)
			tc.setupMocks(exec)
			store := &recordingStore{failOn: tc.failOn}

			r := newTestRunner(exec, store)
			result, err := r.Execute(context.Background(), server, tc.renewal)

			if tc.expectedError {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tc.expectedStatuses, store.statuses())
			assert.Equal(t, tc.expectedStatus, result.Status)
			assert.Equal(t, tc.expectedOutput, result.Output)
			assert.Equal(t, fixedNow, result.ExecutedAt)
			if tc.expectedNext == nil {
				assert.Nil(t, result.NextExecutionAt)
			} else {
				require.NotNil(t, result.NextExecutionAt)
				assert.True(t, tc.expectedNext.Equal(*result.NextExecutionAt))
			}

			final := store.transitions[len(store.transitions)-1]
			assert.NotEqual(t, model.RenewalStatusRunning, final.Status)
		})
	}
}

func TestRunner_Execute_PanicRecordsFailed(t *testing.T) {
	store := &recordingStore{}
	r := newTestRunner(panickingExecutor{}, store)

	result, err := r.Execute(context.Background(), model.Server{}, model.Renewal{ID: "ren-1", Script: "renew.sh", Schedule: "daily"})

	require.Error(t, err)
	assert.Equal(t, model.RenewalStatusFailed, result.Status)
	assert.Contains(t, result.Output, "nil session")
	assert.Equal(t, []model.RenewalStatus{model.RenewalStatusRunning, model.RenewalStatusFailed}, store.statuses())
}

func TestRunner_Execute_SuccessWritePanics(t *testing.T) {
	store := &recordingStore{panicOn: map[model.RenewalStatus]string{model.RenewalStatusSuccess: "driver panic"}}
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	exec := executor.NewMockExecutor(ctrl)
	exec.EXPECT().Execute(gomock.Any(), gomock.Any(), "certbot renew").Return("renewed", nil)

	r := newTestRunner(exec, store)
	result, err := r.Execute(context.Background(), model.Server{}, model.Renewal{ID: "ren-1", Script: "certbot renew", Schedule: "daily"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "driver panic")
	assert.Equal(t, model.RenewalStatusFailed, result.Status)
	assert.Equal(t, fixedNow, result.ExecutedAt)
	assert.Equal(t, []model.RenewalStatus{model.RenewalStatusRunning, model.RenewalStatusFailed}, store.statuses())
}

func TestRunner_Execute_StoreKeepsPanicking(t *testing.T) {
	store := &recordingStore{panicOn: map[model.RenewalStatus]string{
		model.RenewalStatusSuccess: "driver panic",
		model.RenewalStatusFailed:  "driver panic",
	}}
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	exec := executor.NewMockExecutor(ctrl)
	exec.EXPECT().Execute(gomock.Any(), gomock.Any(), gomock.Any()).Return("renewed", nil)

	r := newTestRunner(exec, store)
	assert.NotPanics(t, func() {
		result, err := r.Execute(context.Background(), model.Server{}, model.Renewal{ID: "ren-1", Script: "renew.sh"})
		require.Error(t, err)
		assert.Equal(t, model.RenewalStatusFailed, result.Status)
	})
}

func TestRunner_Execute_StartWriteFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := NewMockRenewalStore(ctrl)
	store.EXPECT().ApplyRenewalTransition(gomock.Any(), "ren-1", model.RenewalStarted()).Return(apperrors.ErrRenewalNotFound)

	r := newTestRunner(executor.NewMockExecutor(ctrl), store)
	_, err := r.Execute(context.Background(), model.Server{}, model.Renewal{ID: "ren-1", Script: "renew.sh"})

	require.ErrorIs(t, err, apperrors.ErrRenewalNotFound)
}

func TestRunner_Execute_CancelledContextStillFinishes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx, cancel := context.WithCancel(context.Background())
	exec := executor.NewMockExecutor(ctrl)
	exec.EXPECT().Execute(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, model.Server, string) (string, error) {
			cancel()
			return "", &executor.ExecError{Kind: apperrors.ErrConnectivity, Reason: "context canceled"}
		})

	store := NewMockRenewalStore(ctrl)
	gomock.InOrder(
		store.EXPECT().ApplyRenewalTransition(gomock.Any(), "ren-1", model.RenewalStarted()).Return(nil),
		store.EXPECT().ApplyRenewalTransition(gomock.Any(), "ren-1", gomock.Any()).
			DoAndReturn(func(ctx context.Context, _ string, tr model.RenewalTransition) error {
				require.NoError(t, ctx.Err())
				assert.Equal(t, model.RenewalStatusFailed, tr.Status)
				return nil
			}),
	)

	r := newTestRunner(exec, store)
	result, err := r.Execute(ctx, model.Server{}, model.Renewal{ID: "ren-1", Script: "renew.sh"})

	require.ErrorIs(t, err, apperrors.ErrConnectivity)
	assert.Equal(t, model.RenewalStatusFailed, result.Status)
}

func TestRunner_Test(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	exec := executor.NewMockExecutor(ctrl)
	exec.EXPECT().Execute(gomock.Any(), gomock.Any(), "openssl x509 -enddate -noout -in /etc/ssl/site.pem").Return("notAfter=Jun  1 00:00:00 2027 GMT\n", nil)

	// no store expectations: Test never persists
	r := newTestRunner(exec, NewMockRenewalStore(ctrl))
	out, err := r.Test(context.Background(), model.Server{}, model.Renewal{ID: "ren-1", Script: "openssl x509 -enddate -noout -in /etc/ssl/site.pem"})

	require.NoError(t, err)
	assert.Equal(t, "notAfter=Jun  1 00:00:00 2027 GMT", out)

	_, err = r.Test(context.Background(), model.Server{}, model.Renewal{ID: "ren-1"})
	require.ErrorIs(t, err, apperrors.ErrScriptRequired)
}
