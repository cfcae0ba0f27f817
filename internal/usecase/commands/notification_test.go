//go:build unit

package commands_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"meeting-scheduler/internal/pkg/clock"
	"meeting-scheduler/internal/pkg/config"
	"meeting-scheduler/internal/usecase/commands"
	"meeting-scheduler/internal/usecase/shared"
	"meeting-scheduler/tests/common/builder"
	sharedmock "meeting-scheduler/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestNotificationCommands_DispatchDue(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	link, err := builder.NewLinkBuilder().BuildDomain()
	require.NoError(t, err)
	store := newMemoryStore(link)

	job := func(attempts int32, runAt time.Time) shared.QueuedNotification {
		return shared.QueuedNotification{ID: uuid.New(), Kind: "email", Topic: "booking_confirmed", RunAt: runAt, Attempts: attempts}
	}
	delivered := job(0, testNow.Add(-time.Minute))
	firstFailure := job(0, testNow)
	secondFailure := job(1, testNow.Add(-time.Hour))
	exhausted := job(2, testNow.Add(-time.Hour))
	notYetDue := job(0, testNow.Add(time.Minute))
	store.due = []shared.QueuedNotification{delivered, firstFailure, secondFailure, exhausted, notYetDue}

	publisher := sharedmock.NewMockNotificationPublisher(ctrl)
	publisher.EXPECT().Publish(gomock.Any(), delivered).Return(nil)
	publisher.EXPECT().Publish(gomock.Any(), firstFailure).Return(errors.New("channel closed"))
	publisher.EXPECT().Publish(gomock.Any(), secondFailure).Return(errors.New("channel closed"))
	publisher.EXPECT().Publish(gomock.Any(), exhausted).Return(errors.New("channel closed"))

	cmds := commands.NewNotificationCommands(&memoryUoW{store: store}, publisher, clock.NewMockClock(testNow), config.NewTestConfig(), slog.Default())

	sent, err := cmds.DispatchDue(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, sent)
	assert.Equal(t, []uuid.UUID{delivered.ID}, store.sent)

	require.Len(t, store.failed, 3)
	retries := map[uuid.UUID]*time.Time{}
	for _, f := range store.failed {
		assert.Equal(t, "channel closed", f.reason)
		retries[f.id] = f.retryAt
	}

	require.NotNil(t, retries[firstFailure.ID])
	assert.Equal(t, testNow.Add(30*time.Second), *retries[firstFailure.ID])
	require.NotNil(t, retries[secondFailure.ID])
	assert.Equal(t, testNow.Add(time.Minute), *retries[secondFailure.ID])
	assert.Nil(t, retries[exhausted.ID], "the last allowed attempt fails the job for good")
}

func TestNotificationCommands_BatchSize(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	link, err := builder.NewLinkBuilder().BuildDomain()
	require.NoError(t, err)
	store := newMemoryStore(link)
	for range 15 {
		store.due = append(store.due, shared.QueuedNotification{ID: uuid.New(), RunAt: testNow})
	}

	publisher := sharedmock.NewMockNotificationPublisher(ctrl)
	publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil).Times(10)

	cfg := config.NewTestConfig()
	cmds := commands.NewNotificationCommands(&memoryUoW{store: store}, publisher, clock.NewMockClock(testNow), cfg, slog.Default())

	sent, err := cmds.DispatchDue(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int(cfg.AMQP.BatchSize), sent)
}
