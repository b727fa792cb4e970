package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davidotu-spec/AegisFlow-AI/internal/domain/alert"
	"github.com/davidotu-spec/AegisFlow-AI/internal/domain/chat"
	"github.com/davidotu-spec/AegisFlow-AI/internal/pkg/errors"
)

var (
	_ alert.Repository = (*AlertRepository)(nil)
	_ chat.Repository  = (*ChatRepository)(nil)
)

func TestAlertRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewAlertRepository(alert.Seed())

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "sec-001", list[0].ID)

	list[0].Status = alert.StatusOpen
	a, err := repo.Get(ctx, "sec-001")
	require.NoError(t, err)
	assert.Equal(t, alert.StatusFixed, a.Status)

	_, err = repo.Get(ctx, "sec-404")
	assert.True(t, errors.IsCode(err, errors.ErrCodeNotFound))
}

func TestChatRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewChatRepository()

	require.NoError(t, repo.Reset(ctx, &chat.Message{ID: "1", Role: chat.RoleAssistant, Content: chat.Greeting}))
	require.NoError(t, repo.Append(ctx,
		&chat.Message{ID: "2", Role: chat.RoleUser, Content: "hi"},
		&chat.Message{ID: "3", Role: chat.RoleAssistant, Content: "hello"},
	))

	msgs, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, msgs, 3)
	assert.Equal(t, chat.RoleUser, msgs[1].Role)

	require.NoError(t, repo.Reset(ctx))
	msgs, _ = repo.List(ctx)
	assert.Empty(t, msgs)
}
