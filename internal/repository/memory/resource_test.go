package memory

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davidotu-spec/AegisFlow-AI/internal/domain/resource"
	"github.com/davidotu-spec/AegisFlow-AI/internal/pkg/errors"
)

var _ resource.Repository = (*ResourceRepository)(nil)

func ids(rs []*resource.Resource) []string {
	out := make([]string, len(rs))
	for i, r := range rs {
		out[i] = r.ID
	}
	return out
}

func TestResourceRepository_Append(t *testing.T) {
	ctx := context.Background()
	repo := NewResourceRepository(resource.Seed())

	require.NoError(t, repo.Append(ctx, resource.Discovered()...))

	got, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"i-09f1234a", "i-98b7654c", "v-11223344", "az-vm-99", "gcp-bq-01",
		"i-af559922", "db-temp-bench", "v-99881122",
	}, ids(got))
}

func TestResourceRepository_AppendKeepsDuplicates(t *testing.T) {
	ctx := context.Background()
	repo := NewResourceRepository(nil)

	require.NoError(t, repo.Append(ctx, resource.Discovered()...))
	require.NoError(t, repo.Append(ctx, resource.Discovered()...))

	got, _ := repo.List(ctx)
	assert.Len(t, got, 6)

	n, err := repo.Remove(ctx, "i-af559922")
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	got, _ = repo.List(ctx)
	assert.Equal(t, []string{"db-temp-bench", "v-99881122", "db-temp-bench", "v-99881122"}, ids(got))
}

func TestResourceRepository_Remove(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		id      string
		removed int
		wantLen int
	}{
		{"existing", "v-11223344", 1, 4},
		{"absent is a no-op", "does-not-exist", 0, 5},
		{"empty id", "", 0, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := NewResourceRepository(resource.Seed())
			n, err := repo.Remove(ctx, tt.id)
			require.NoError(t, err)
			assert.Equal(t, tt.removed, n)

			got, _ := repo.List(ctx)
			assert.Len(t, got, tt.wantLen)
		})
	}
}

func TestResourceRepository_RemovePreservesOrder(t *testing.T) {
	ctx := context.Background()
	repo := NewResourceRepository(resource.Seed())

	_, err := repo.Remove(ctx, "i-98b7654c")
	require.NoError(t, err)

	got, _ := repo.List(ctx)
	assert.Equal(t, []string{"i-09f1234a", "v-11223344", "az-vm-99", "gcp-bq-01"}, ids(got))
}

func TestResourceRepository_Get(t *testing.T) {
	ctx := context.Background()
	repo := NewResourceRepository(resource.Seed())

	r, err := repo.Get(ctx, "gcp-bq-01")
	require.NoError(t, err)
	assert.Equal(t, "analytics-warehouse", r.Name)

	_, err = repo.Get(ctx, "missing")
	assert.True(t, errors.IsCode(err, errors.ErrCodeNotFound))
}

func TestResourceRepository_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	seed := resource.Seed()
	repo := NewResourceRepository(seed)

	seed[0].Name = "mutated"
	got, _ := repo.List(ctx)
	got[1].WasteScore = 0

	again, _ := repo.List(ctx)
	assert.Equal(t, "prod-api-gw", again[0].Name)
	assert.Equal(t, 85, again[1].WasteScore)
}

func TestResourceRepository_Reset(t *testing.T) {
	ctx := context.Background()
	repo := NewResourceRepository(resource.Seed())

	require.NoError(t, repo.Append(ctx, resource.Discovered()...))
	_, _ = repo.Remove(ctx, "i-09f1234a")
	require.NoError(t, repo.Reset(ctx, resource.Seed()))

	got, _ := repo.List(ctx)
	assert.Equal(t, ids(resource.Seed()), ids(got))
}

func TestResourceRepository_Concurrent(t *testing.T) {
	ctx := context.Background()
	repo := NewResourceRepository(nil)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_ = repo.Append(ctx, resource.Discovered()...)
		}()
		go func() {
			defer wg.Done()
			_, _ = repo.List(ctx)
		}()
	}
	wg.Wait()

	got, _ := repo.List(ctx)
	assert.Len(t, got, 150)
}
