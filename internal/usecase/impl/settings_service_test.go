package impl

import (
	"context"
	"testing"

	"dukaan/internal/infra/persistence/localstore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsService_GetThenUpdate(t *testing.T) {
	svc := NewSettingsService(SettingsServiceParams{
		SettingsRepo: localstore.NewSettingsRepository(localstore.NewMemoryStore()),
	})
	ctx := context.Background()

	seeded, err := svc.GetSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, localstore.DefaultSettings(), *seeded)

	updated := *seeded
	updated.Name = "Lakshmi Stores"
	updated.UpiID = "lakshmi@oksbi"

	stored, err := svc.UpdateSettings(ctx, updated)
	require.NoError(t, err)
	assert.Equal(t, updated, *stored)

	again, err := svc.GetSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, updated, *again)
}
