package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_CreateAndFind(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository()

	created := repo.Create(ctx, "alice", "alice@example.com")
	require.NotNil(t, created)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "alice", created.Username)
	assert.Equal(t, "alice@example.com", created.Email)
	assert.False(t, created.CreatedAt.IsZero())

	byID, ok := repo.FindByID(ctx, created.ID)
	require.True(t, ok)
	assert.Equal(t, *created, *byID)

	byEmail, ok := repo.FindByEmail(ctx, "alice@example.com")
	require.True(t, ok)
	assert.Equal(t, created.ID, byEmail.ID)
}

func TestUserRepository_FindAbsent(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository()
	repo.Create(ctx, "alice", "alice@example.com")

	u, ok := repo.FindByID(ctx, "missing")
	assert.False(t, ok)
	assert.Nil(t, u)

	u, ok = repo.FindByEmail(ctx, "ALICE@example.com")
	assert.False(t, ok, "email match is exact")
	assert.Nil(t, u)
}

func TestUserRepository_CreateDoesNotEnforceUniqueEmail(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository()

	a := repo.Create(ctx, "a", "same@example.com")
	b := repo.Create(ctx, "b", "same@example.com")

	assert.NotEqual(t, a.ID, b.ID)
	assert.Equal(t, 2, repo.Count(ctx))
}

func TestUserRepository_RetriesOnIDCollision(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository()
	ids := []string{"dup", "dup", "fresh"}
	repo.newID = func() string {
		id := ids[0]
		ids = ids[1:]
		return id
	}

	first := repo.Create(ctx, "a", "a@example.com")
	second := repo.Create(ctx, "b", "b@example.com")

	assert.Equal(t, "dup", first.ID)
	assert.Equal(t, "fresh", second.ID)
}

func TestUserRepository_ListKeepsInsertionOrder(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository()

	empty := repo.List(ctx)
	require.NotNil(t, empty)
	assert.Empty(t, empty)

	var want []string
	for i := range 5 {
		u := repo.Create(ctx, fmt.Sprintf("user%d", i), fmt.Sprintf("user%d@example.com", i))
		want = append(want, u.ID)
	}

	got := repo.List(ctx)
	require.Len(t, got, 5)
	for i, u := range got {
		assert.Equal(t, want[i], u.ID)
	}
}

func TestUserRepository_Delete(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository()
	a := repo.Create(ctx, "a", "a@example.com")
	b := repo.Create(ctx, "b", "b@example.com")

	assert.True(t, repo.Delete(ctx, a.ID))
	assert.False(t, repo.Delete(ctx, a.ID), "second delete removes nothing")

	_, ok := repo.FindByID(ctx, a.ID)
	assert.False(t, ok)

	list := repo.List(ctx)
	require.Len(t, list, 1)
	assert.Equal(t, b.ID, list[0].ID)
}

func TestUserRepository_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository()
	created := repo.Create(ctx, "a", "a@example.com")

	created.Email = "mutated@example.com"
	list := repo.List(ctx)
	list[0].Username = "mutated"

	stored, ok := repo.FindByID(ctx, created.ID)
	require.True(t, ok)
	assert.Equal(t, "a", stored.Username)
	assert.Equal(t, "a@example.com", stored.Email)
}

func TestUserRepository_UsesClock(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository()
	fixed := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	repo.now = func() time.Time { return fixed }

	u := repo.Create(ctx, "a", "a@example.com")
	assert.True(t, u.CreatedAt.Equal(fixed))
}

func TestUserRepository_CreatedAtMillisecondPrecision(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository()
	repo.now = func() time.Time { return time.Date(2026, 3, 1, 12, 0, 0, 123456789, time.UTC) }

	u := repo.Create(ctx, "a", "a@example.com")
	assert.Equal(t, 123000000, u.CreatedAt.Nanosecond())

	raw, err := json.Marshal(u)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"createdAt":"2026-03-01T12:00:00.123Z"`)
}

func TestUserRepository_ConcurrentWrites(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository()

	const n = 100
	var wg sync.WaitGroup
	for i := range n {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			u := repo.Create(ctx, "u", fmt.Sprintf("u%d@example.com", i))
			if i%2 == 0 {
				repo.Delete(ctx, u.ID)
			}
			repo.List(ctx)
		}(i)
	}
	wg.Wait()

	assert.Equal(t, n/2, repo.Count(ctx))
	assert.Len(t, repo.List(ctx), n/2)
}
