// Copyright (c) 2025-2026 Alqudimi Technology
// SPDX-License-Identifier: GPL-3.0-or-later

package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Both backends must be observably interchangeable for the entities the
// memory store fully implements: same defaults, same missing-id answers,
// same list shapes. Handlers never know which one they talk to.
func forEachBackend(t *testing.T, fn func(t *testing.T, store Storage)) {
	t.Helper()

	t.Run("memory", func(t *testing.T) {
		fn(t, setupMemoryStore(t))
	})
	t.Run("database", func(t *testing.T) {
		fn(t, setupTestDB(t))
	})
}

func TestBackends_CreateDefaults(t *testing.T) {
	forEachBackend(t, func(t *testing.T, store Storage) {
		ctx := context.Background()

		svc, err := store.CreateService(ctx, CreateServiceParams{
			Title:       "عنوان",
			Description: "وصف",
			Icon:        "Star",
			Color:       "purple",
		})
		require.NoError(t, err)

		assert.NotEmpty(t, svc.ID)
		assert.True(t, svc.IsActive, "IsActive defaults to true")
		assert.Equal(t, 0, svc.Order, "Order defaults to 0")
		assert.NotNil(t, svc.Features, "Features is an empty list, not nil")
		assert.NotNil(t, svc.FeaturesEn, "FeaturesEn is an empty list, not nil")
		assert.Nil(t, svc.TitleEn, "optional fields stay nil")
		assert.False(t, svc.CreatedAt.IsZero())
		assert.False(t, svc.UpdatedAt.IsZero())
	})
}

func TestBackends_RoundTrip(t *testing.T) {
	forEachBackend(t, func(t *testing.T, store Storage) {
		ctx := context.Background()

		created, err := store.CreateProject(ctx, CreateProjectParams{
			Title:        "مشروع",
			TitleEn:      strPtr("Project"),
			Description:  "وصف المشروع",
			Technologies: []string{"Go", "React"},
			Category:     "web",
			LiveURL:      strPtr("https://example.com"),
			Order:        intPtr(3),
		})
		require.NoError(t, err)

		got, err := store.GetProject(ctx, created.ID)
		require.NoError(t, err)
		require.NotNil(t, got)

		assert.Equal(t, created.ID, got.ID)
		assert.Equal(t, "مشروع", got.Title)
		require.NotNil(t, got.TitleEn)
		assert.Equal(t, "Project", *got.TitleEn)
		assert.Equal(t, []string{"Go", "React"}, []string(got.Technologies))
		assert.NotNil(t, got.Images)
		require.NotNil(t, got.LiveURL)
		assert.Equal(t, "https://example.com", *got.LiveURL)
		assert.Nil(t, got.GithubURL)
		assert.Equal(t, 3, got.Order)
	})
}

func TestBackends_MissingID(t *testing.T) {
	forEachBackend(t, func(t *testing.T, store Storage) {
		ctx := context.Background()

		got, err := store.GetProject(ctx, "missing")
		require.NoError(t, err)
		assert.Nil(t, got)

		updated, err := store.UpdateProject(ctx, "missing", UpdateProjectParams{Title: strPtr("x")})
		require.NoError(t, err)
		assert.Nil(t, updated)

		deleted, err := store.DeleteProject(ctx, "missing")
		require.NoError(t, err)
		assert.False(t, deleted)
	})
}

func TestBackends_DeleteThenGet(t *testing.T) {
	forEachBackend(t, func(t *testing.T, store Storage) {
		ctx := context.Background()

		ci, err := store.CreateContactInfo(ctx, CreateContactInfoParams{
			Type:  "email",
			Label: "البريد",
			Value: "hello@example.com",
		})
		require.NoError(t, err)

		deleted, err := store.DeleteContactInfo(ctx, ci.ID)
		require.NoError(t, err)
		assert.True(t, deleted)

		got, err := store.GetContactInfoByID(ctx, ci.ID)
		require.NoError(t, err)
		assert.Nil(t, got)

		// Second delete reports false, not an error.
		deleted, err = store.DeleteContactInfo(ctx, ci.ID)
		require.NoError(t, err)
		assert.False(t, deleted)
	})
}

func TestBackends_ActiveFilteringAndOrder(t *testing.T) {
	forEachBackend(t, func(t *testing.T, store Storage) {
		ctx := context.Background()

		_, err := store.CreateCvData(ctx, CreateCvDataParams{
			Type: "skill", Title: "Go", Order: intPtr(2),
		})
		require.NoError(t, err)
		_, err = store.CreateCvData(ctx, CreateCvDataParams{
			Type: "skill", Title: "SQL", Order: intPtr(1),
		})
		require.NoError(t, err)
		_, err = store.CreateCvData(ctx, CreateCvDataParams{
			Type: "skill", Title: "Hidden", Order: intPtr(0), IsActive: boolPtr(false),
		})
		require.NoError(t, err)

		skills, err := store.GetCvDataByType(ctx, "skill")
		require.NoError(t, err)

		var titles []string
		for _, s := range skills {
			assert.True(t, s.IsActive)
			titles = append(titles, s.Title)
		}
		assert.NotContains(t, titles, "Hidden")

		// Sorted ascending by display order.
		for i := 1; i < len(skills); i++ {
			assert.LessOrEqual(t, skills[i-1].Order, skills[i].Order)
		}
	})
}

func TestBackends_SettingConflict(t *testing.T) {
	forEachBackend(t, func(t *testing.T, store Storage) {
		ctx := context.Background()

		_, err := store.CreateSiteSetting(ctx, CreateSiteSettingParams{
			Key: "equiv_test_key", Value: "a", Type: "text", Category: "general",
		})
		require.NoError(t, err)

		_, err = store.CreateSiteSetting(ctx, CreateSiteSettingParams{
			Key: "equiv_test_key", Value: "b", Type: "text", Category: "general",
		})
		assert.True(t, IsConflict(err), "duplicate key must surface ErrDuplicate, got %v", err)
	})
}
