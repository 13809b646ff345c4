package repository

import (
	"context"
	"testing"

	"github.com/alexanderramin/tt/internal/domain"
	"github.com/alexanderramin/tt/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCustomerRepo_AddAndList(t *testing.T) {
	repo := NewSQLiteCustomerRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	created, err := repo.Add(ctx, "Zeta")
	require.NoError(t, err)
	assert.True(t, created)
	created, err = repo.Add(ctx, "Acme")
	require.NoError(t, err)
	assert.True(t, created)

	created, err = repo.Add(ctx, "Zeta")
	require.NoError(t, err)
	assert.False(t, created, "duplicate add is a no-op")

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Zeta", list[0].Name, "insertion order is kept")
	assert.Equal(t, "Acme", list[1].Name)
	assert.Empty(t, list[0].Projects)
}

func TestCustomerRepo_AddProject(t *testing.T) {
	repo := NewSQLiteCustomerRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	_, err := repo.Add(ctx, "Acme")
	require.NoError(t, err)

	for _, p := range []string{"Web", "Mobile"} {
		added, err := repo.AddProject(ctx, "Acme", p)
		require.NoError(t, err)
		assert.True(t, added)
	}
	added, err := repo.AddProject(ctx, "Acme", "Web")
	require.NoError(t, err)
	assert.False(t, added)

	c, err := repo.Get(ctx, "Acme")
	require.NoError(t, err)
	assert.Equal(t, []string{"Web", "Mobile"}, c.Projects)
}

func TestCustomerRepo_NotFound(t *testing.T) {
	repo := NewSQLiteCustomerRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	_, err := repo.Get(ctx, "Nobody")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = repo.AddProject(ctx, "Nobody", "Web")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestShortcutRepo_PutGetDelete(t *testing.T) {
	repo := NewSQLiteShortcutRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	replaced, err := repo.Put(ctx, domain.Shortcut{Name: "@Standup", Customer: "Acme", Project: "Internal", Note: "daily"})
	require.NoError(t, err)
	assert.False(t, replaced)

	sc, err := repo.Get(ctx, "STANDUP")
	require.NoError(t, err)
	assert.Equal(t, domain.Shortcut{Name: "standup", Customer: "Acme", Project: "Internal", Note: "daily"}, *sc)

	replaced, err = repo.Put(ctx, domain.Shortcut{Name: "standup", Customer: "Acme", Project: "Ops"})
	require.NoError(t, err)
	assert.True(t, replaced)

	sc, err = repo.Get(ctx, "@standup")
	require.NoError(t, err)
	assert.Equal(t, "Ops", sc.Project)
	assert.Empty(t, sc.Note)

	require.NoError(t, repo.Delete(ctx, "standup"))
	_, err = repo.Get(ctx, "standup")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, "standup"), ErrNotFound)
}

func TestShortcutRepo_ListSortedByName(t *testing.T) {
	repo := NewSQLiteShortcutRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	for _, name := range []string{"zz", "aa", "mm"} {
		_, err := repo.Put(ctx, domain.Shortcut{Name: name, Customer: "C", Project: "P"})
		require.NoError(t, err)
	}

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "aa", list[0].Name)
	assert.Equal(t, "mm", list[1].Name)
	assert.Equal(t, "zz", list[2].Name)
}

func TestShortcutRepo_PutRejectsInvalid(t *testing.T) {
	repo := NewSQLiteShortcutRepo(testutil.NewTestDB(t))

	_, err := repo.Put(context.Background(), domain.Shortcut{Name: "x", Customer: "Acme"})
	assert.Error(t, err)
}
