package gorm

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openshelf/sharegate/pkg/model"
)

func TestFetchResource(t *testing.T) {
	now := time.Date(2026, 1, 15, 8, 0, 0, 0, time.UTC)

	t.Run("returns the resource", func(t *testing.T) {
		mockDB := NewMockDB(t)
		mockDB.Mock.ExpectQuery(`SELECT \* FROM "resources"`).
			WillReturnRows(sqlmock.NewRows(resourceColumns()).
				AddRow("note-1", "note", "owner-1", "Design notes", "", "private", now, now))

		resource, err := NewResourcesStore(mockDB.GormDB).FetchResource(model.KindNote, "note-1")

		require.NoError(t, err)
		require.NotNil(t, resource)
		assert.Equal(t, model.KindNote, resource.Kind)
		assert.Equal(t, model.VisibilityPrivate, resource.Visibility)
		mockDB.VerifyExpectations(t)
	})

	t.Run("missing resource is nil without error", func(t *testing.T) {
		mockDB := NewMockDB(t)
		mockDB.Mock.ExpectQuery(`SELECT \* FROM "resources"`).
			WillReturnRows(sqlmock.NewRows(resourceColumns()))

		resource, err := NewResourcesStore(mockDB.GormDB).FetchResource(model.KindNote, "ghost")

		require.NoError(t, err)
		assert.Nil(t, resource)
	})
}

func TestToggleVisibilityStatement(t *testing.T) {
	now := time.Date(2026, 1, 15, 8, 0, 0, 0, time.UTC)

	t.Run("returns the flipped row", func(t *testing.T) {
		mockDB := NewMockDB(t)
		mockDB.Mock.ExpectQuery(`UPDATE resources`).
			WithArgs("agent", "agent-1").
			WillReturnRows(sqlmock.NewRows(resourceColumns()).
				AddRow("agent-1", "agent", "owner-1", "Research agent", "", "public", now, now))

		resource, err := NewResourcesStore(mockDB.GormDB).ToggleVisibility(model.KindAgent, "agent-1")

		require.NoError(t, err)
		require.NotNil(t, resource)
		assert.Equal(t, model.VisibilityPublic, resource.Visibility)
		mockDB.VerifyExpectations(t)
	})

	t.Run("missing resource is nil without error", func(t *testing.T) {
		mockDB := NewMockDB(t)
		mockDB.Mock.ExpectQuery(`UPDATE resources`).
			WithArgs("agent", "ghost").
			WillReturnRows(sqlmock.NewRows(resourceColumns()))

		resource, err := NewResourcesStore(mockDB.GormDB).ToggleVisibility(model.KindAgent, "ghost")

		require.NoError(t, err)
		assert.Nil(t, resource)
	})
}

func TestListPublicByOwner(t *testing.T) {
	now := time.Date(2026, 1, 15, 8, 0, 0, 0, time.UTC)
	columns := append(resourceColumns(), "owner_name")

	mockDB := NewMockDB(t)
	mockDB.Mock.ExpectQuery(`SELECT r\.resource_id`).
		WithArgs("user-2", 50).
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow("team-1", "team", "user-2", "Platform team", "", "public", now, now, "Ada Lovelace"))

	resources, err := NewResourcesStore(mockDB.GormDB).ListPublicByOwner("user-2", 50)

	require.NoError(t, err)
	require.Len(t, resources, 1)
	assert.Equal(t, "Platform team", resources[0].Name)
	assert.Equal(t, "Ada Lovelace", resources[0].OwnerName)
	mockDB.VerifyExpectations(t)
}

func TestSearchPublic(t *testing.T) {
	now := time.Date(2026, 1, 15, 8, 0, 0, 0, time.UTC)
	columns := append(resourceColumns(), "owner_name")

	mockDB := NewMockDB(t)
	mockDB.Mock.ExpectQuery(`SELECT r\.resource_id`).
		WithArgs("%research%", "%research%", 50).
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow("agent-1", "agent", "user-2", "Research agent", "", "public", now, now, "Ada Lovelace"))

	resources, err := NewResourcesStore(mockDB.GormDB).SearchPublic("research", 50)

	require.NoError(t, err)
	require.Len(t, resources, 1)
	assert.Equal(t, model.KindAgent, resources[0].Kind)
	mockDB.VerifyExpectations(t)
}

func TestSharedWith(t *testing.T) {
	now := time.Date(2026, 1, 15, 8, 0, 0, 0, time.UTC)

	mockDB := NewMockDB(t)
	mockDB.Mock.ExpectQuery(`SELECT DISTINCT r\.resource_id`).
		WithArgs("requester-1").
		WillReturnRows(sqlmock.NewRows(resourceColumns()).
			AddRow("note-1", "note", "owner-1", "Design notes", "", "private", now, now))

	resources, err := NewResourcesStore(mockDB.GormDB).SharedWith("requester-1")

	require.NoError(t, err)
	require.Len(t, resources, 1)
	assert.Equal(t, "note-1", resources[0].ResourceID)
	mockDB.VerifyExpectations(t)
}
