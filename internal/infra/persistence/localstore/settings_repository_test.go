package localstore

import (
	"context"
	"testing"

	"dukaan/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsRepository_Get_SeedsDefaultProfileOnFirstRead(t *testing.T) {
	store := NewMemoryStore()
	repo := NewSettingsRepository(store)

	settings, err := repo.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, DefaultSettings(), *settings)

	_, found, err := store.Read(KeySettings)
	require.NoError(t, err)
	assert.True(t, found, "default profile must be persisted before the first return")
}

func TestSettingsRepository_Put_ReplacesWholesale(t *testing.T) {
	repo := NewSettingsRepository(NewMemoryStore())
	ctx := context.Background()

	updated := entity.StoreSettings{
		Name:        "Lakshmi Stores",
		Logo:        "https://example.com/logo.png",
		Description: "Groceries and more",
		Location:    "Chromepet, Chennai",
		Contact:     "9000000000",
		UpiID:       "lakshmi@oksbi",
	}
	require.NoError(t, repo.Put(ctx, updated))

	settings, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, updated, *settings)
}
