package services

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/davidotu-spec/AegisFlow-AI/internal/assistant"
	"github.com/davidotu-spec/AegisFlow-AI/internal/domain/alert"
	"github.com/davidotu-spec/AegisFlow-AI/internal/domain/chat"
	"github.com/davidotu-spec/AegisFlow-AI/internal/domain/resource"
	"github.com/davidotu-spec/AegisFlow-AI/internal/pkg/errors"
	"github.com/davidotu-spec/AegisFlow-AI/internal/repository/memory"
	"github.com/davidotu-spec/AegisFlow-AI/internal/testutil"
)

var _ chat.Service = (*ChatService)(nil)

func newChatService(a Assistant) (*ChatService, *memory.ResourceRepository) {
	resources := memory.NewResourceRepository(resource.Seed())
	alerts := memory.NewAlertRepository(alert.Seed())
	return NewChatService(memory.NewChatRepository(), resources, alerts, a, testutil.NewTestLogger()), resources
}

func TestChatService_StartsWithGreeting(t *testing.T) {
	service, _ := newChatService(new(testutil.MockAssistant))

	msgs, err := service.History(context.Background())
	require.NoError(t, err)
	require.Len(t, msgs, 1)
	assert.Equal(t, chat.RoleAssistant, msgs[0].Role)
	assert.Equal(t, chat.Greeting, msgs[0].Content)
}

func TestChatService_Send(t *testing.T) {
	a := new(testutil.MockAssistant)
	service, resources := newChatService(a)
	ctx := context.Background()

	// the snapshot reflects the store at send time
	_, err := resources.Remove(ctx, "v-11223344")
	require.NoError(t, err)

	a.On("Query", mock.Anything, "How much am I wasting?", mock.MatchedBy(func(s assistant.Snapshot) bool {
		return len(s.ActiveResources) == 4 && len(s.RecentAlerts) == 3 && s.CloudStatus == "Healthy"
	})).Return("About $120 per month.").Once()

	reply, err := service.Send(ctx, "How much am I wasting?")
	require.NoError(t, err)
	assert.Equal(t, chat.RoleAssistant, reply.Role)
	assert.Equal(t, "About $120 per month.", reply.Content)
	assert.NotEmpty(t, reply.ID)

	msgs, _ := service.History(ctx)
	require.Len(t, msgs, 3)
	assert.Equal(t, chat.RoleUser, msgs[1].Role)
	assert.Equal(t, "How much am I wasting?", msgs[1].Content)
	assert.Equal(t, reply.ID, msgs[2].ID)
	a.AssertExpectations(t)
}

func TestChatService_SendRejectsBlank(t *testing.T) {
	a := new(testutil.MockAssistant)
	service, _ := newChatService(a)

	for _, in := range []string{"", "   ", "\n\t"} {
		_, err := service.Send(context.Background(), in)
		assert.True(t, errors.IsCode(err, errors.ErrCodeBadRequest))
	}
	msgs, _ := service.History(context.Background())
	assert.Len(t, msgs, 1)
	a.AssertNotCalled(t, "Query", mock.Anything, mock.Anything, mock.Anything)
}

func TestChatService_OneSendInFlight(t *testing.T) {
	release := make(chan struct{})
	entered := make(chan struct{})

	a := new(testutil.MockAssistant)
	a.On("Query", mock.Anything, "first", mock.Anything).Run(func(mock.Arguments) {
		close(entered)
		<-release
	}).Return("done").Once()

	service, _ := newChatService(a)
	ctx := context.Background()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, err := service.Send(ctx, "first")
		assert.NoError(t, err)
	}()
	<-entered

	assert.True(t, service.Busy())
	_, err := service.Send(ctx, "second")
	assert.True(t, errors.IsCode(err, errors.ErrCodeConflict))

	close(release)
	wg.Wait()
	assert.False(t, service.Busy())

	msgs, _ := service.History(ctx)
	assert.Len(t, msgs, 3)
}

func TestChatService_SnapshotFailureLeavesHistoryUntouched(t *testing.T) {
	tests := []struct {
		name      string
		resources *testutil.MockResourceRepository
		alerts    *testutil.MockAlertRepository
	}{
		{
			name:      "resources unavailable",
			resources: &testutil.MockResourceRepository{ListError: fmt.Errorf("store offline")},
			alerts:    testutil.NewMockAlertRepository(alert.Seed()...),
		},
		{
			name:      "alerts unavailable",
			resources: testutil.NewMockResourceRepository(resource.Seed()...),
			alerts:    &testutil.MockAlertRepository{ListError: fmt.Errorf("store offline")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := new(testutil.MockAssistant)
			service := NewChatService(memory.NewChatRepository(), tt.resources, tt.alerts, a, testutil.NewTestLogger())
			ctx := context.Background()

			_, err := service.Send(ctx, "hello")
			assert.True(t, errors.IsCode(err, errors.ErrCodeInternal))

			msgs, err := service.History(ctx)
			require.NoError(t, err)
			require.Len(t, msgs, 1)
			assert.Equal(t, chat.Greeting, msgs[0].Content)
			a.AssertNotCalled(t, "Query", mock.Anything, mock.Anything, mock.Anything)
			assert.False(t, service.Busy())
		})
	}
}

func TestChatService_Reset(t *testing.T) {
	a := new(testutil.MockAssistant)
	a.On("Query", mock.Anything, mock.Anything, mock.Anything).Return("ok")
	service, _ := newChatService(a)
	ctx := context.Background()

	_, err := service.Send(ctx, "hello")
	require.NoError(t, err)
	require.NoError(t, service.Reset(ctx))

	msgs, _ := service.History(ctx)
	require.Len(t, msgs, 1)
	assert.Equal(t, chat.Greeting, msgs[0].Content)
}
