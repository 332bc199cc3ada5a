package repositories_test

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"testing"

	"todoapi/internal/database"
	"todoapi/internal/models"
	"todoapi/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// setupDB opens a seeded, shared-cache in-memory store private to the test.
func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.ReplaceAll(t.Name(), "/", "_")
	db, err := database.Open(database.DSN(fmt.Sprintf("file:%s?mode=memory&cache=shared", name), false), false)
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close(db) })
	require.NoError(t, database.Initialize(db))
	return db
}

func TestGORMUserRepository_List(t *testing.T) {
	repo := repositories.NewGORMUserRepository(setupDB(t))
	ctx := context.Background()

	page, err := repo.List(ctx, repositories.ParseUserListQuery(url.Values{}))
	require.NoError(t, err)
	assert.EqualValues(t, 3, page.Total)
	assert.Len(t, page.Users, 3)

	page, err = repo.List(ctx, repositories.ParseUserListQuery(url.Values{
		"age_min": {"26"},
		"sort":    {"age"},
		"order":   {"desc"},
	}))
	require.NoError(t, err)
	assert.EqualValues(t, 2, page.Total)
	require.Len(t, page.Users, 2)
	assert.Equal(t, "Anna Nowak", page.Users[0].Name)
	assert.Equal(t, "Piotr Wiśniewski", page.Users[1].Name)

	page, err = repo.List(ctx, repositories.ParseUserListQuery(url.Values{"city": {"Warszawa"}}))
	require.NoError(t, err)
	assert.EqualValues(t, 1, page.Total)
	require.Len(t, page.Users, 1)
	assert.Equal(t, "jan@example.com", page.Users[0].Email)

	page, err = repo.List(ctx, repositories.ParseUserListQuery(url.Values{"page": {"2"}, "limit": {"2"}}))
	require.NoError(t, err)
	assert.EqualValues(t, 3, page.Total)
	require.Len(t, page.Users, 1)

	page, err = repo.List(ctx, repositories.ParseUserListQuery(url.Values{"city": {"Poznań"}}))
	require.NoError(t, err)
	assert.Zero(t, page.Total)
	assert.NotNil(t, page.Users)
	assert.Empty(t, page.Users)
}

func TestGORMUserRepository_CreateAndGet(t *testing.T) {
	repo := repositories.NewGORMUserRepository(setupDB(t))
	ctx := context.Background()

	age := 41
	user := &models.User{Name: "Ewa Zielińska", Email: "ewa@example.com", Age: &age}
	require.NoError(t, repo.Create(ctx, user))
	assert.NotZero(t, user.ID)

	got, err := repo.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ewa Zielińska", got.Name)
	assert.Equal(t, 41, *got.Age)
	assert.Nil(t, got.City)
	assert.False(t, got.CreatedAt.IsZero())

	err = repo.Create(ctx, &models.User{Name: "Other", Email: "ewa@example.com"})
	assert.ErrorIs(t, err, repositories.ErrEmailTaken)

	_, err = repo.GetByID(ctx, 999)
	assert.ErrorIs(t, err, repositories.ErrUserNotFound)
}

func TestGORMUserRepository_Update(t *testing.T) {
	repo := repositories.NewGORMUserRepository(setupDB(t))
	ctx := context.Background()

	before, err := repo.GetByID(ctx, 1)
	require.NoError(t, err)

	updated, err := repo.Update(ctx, 1, func(u *models.User) error {
		city := "Łódź"
		u.City = &city
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, "Łódź", *updated.City)
	assert.Equal(t, before.Name, updated.Name)
	assert.Equal(t, before.Email, updated.Email)
	assert.Equal(t, *before.Age, *updated.Age)
	assert.True(t, before.CreatedAt.Equal(updated.CreatedAt))

	_, err = repo.Update(ctx, 1, func(u *models.User) error {
		u.Email = "anna@example.com"
		return nil
	})
	assert.ErrorIs(t, err, repositories.ErrEmailTaken)

	rejected := errors.New("rejected")
	_, err = repo.Update(ctx, 1, func(u *models.User) error {
		u.Name = "Should Not Persist"
		return rejected
	})
	assert.ErrorIs(t, err, rejected)
	after, err := repo.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, before.Name, after.Name)

	_, err = repo.Update(ctx, 404, func(u *models.User) error { return nil })
	assert.ErrorIs(t, err, repositories.ErrUserNotFound)
}

func TestGORMUserRepository_DeleteCascades(t *testing.T) {
	db := setupDB(t)
	users := repositories.NewGORMUserRepository(db)
	todos := repositories.NewGORMTodoRepository(db)
	ctx := context.Background()

	owned, err := todos.ListByUser(ctx, 1)
	require.NoError(t, err)
	require.Len(t, owned, 2)

	require.NoError(t, users.Delete(ctx, 1))

	owned, err = todos.ListByUser(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, owned)

	all, err := todos.ListWithOwners(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	err = users.Delete(ctx, 1)
	assert.ErrorIs(t, err, repositories.ErrUserNotFound)
}

func TestGORMTodoRepository_ListWithOwners(t *testing.T) {
	db := setupDB(t)
	require.NoError(t, db.Exec("INSERT INTO todos (title) VALUES (?)", "Unowned").Error)
	repo := repositories.NewGORMTodoRepository(db)

	todos, err := repo.ListWithOwners(context.Background())
	require.NoError(t, err)
	require.Len(t, todos, 4)

	byTitle := map[string]models.TodoWithOwner{}
	for _, todo := range todos {
		byTitle[todo.Title] = todo
	}
	assert.Equal(t, "Anna Nowak", *byTitle["Nauka SQLite"].UserName)
	assert.Equal(t, "jan@example.com", *byTitle["Nauka REST API"].UserEmail)
	assert.Nil(t, byTitle["Unowned"].UserName)
	assert.Nil(t, byTitle["Unowned"].UserID)
	assert.True(t, byTitle["Projekt w Postmanie"].Completed)
}

func TestGORMStatsRepository_Stats(t *testing.T) {
	repo := repositories.NewGORMStatsRepository(setupDB(t))

	stats, err := repo.Stats(context.Background())
	require.NoError(t, err)

	assert.EqualValues(t, 3, stats.Users.Total)
	assert.EqualValues(t, 28, stats.Users.AverageAge) // (25+30+28)/3 = 27.67
	assert.Equal(t, 25, *stats.Users.Youngest)
	assert.Equal(t, 30, *stats.Users.Oldest)
	assert.Len(t, stats.Cities, 3)
	assert.EqualValues(t, 3, stats.Todos.TotalTodos)
	assert.EqualValues(t, 1, stats.Todos.Completed)
	assert.EqualValues(t, 2, stats.Todos.Pending)
}

func TestGORMStatsRepository_EmptyStore(t *testing.T) {
	db := setupDB(t)
	require.NoError(t, db.Exec("DELETE FROM users").Error)
	repo := repositories.NewGORMStatsRepository(db)

	stats, err := repo.Stats(context.Background())
	require.NoError(t, err)
	assert.Zero(t, stats.Users.Total)
	assert.Zero(t, stats.Users.AverageAge)
	assert.Nil(t, stats.Users.Youngest)
	assert.Empty(t, stats.Cities)
	assert.Zero(t, stats.Todos.TotalTodos)
	assert.Zero(t, stats.Todos.Pending)
}
