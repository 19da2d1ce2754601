package repository

import (
	"context"

	"dukaan/internal/domain/entity"
)

// SettingsRepository persists the singleton shop profile.
type SettingsRepository interface {
	// Get returns the current settings, seeding the default profile on first
	// access.
	Get(ctx context.Context) (*entity.StoreSettings, error)

	// Put replaces the settings wholesale. No field-level validation happens
	// at this layer.
	Put(ctx context.Context, settings entity.StoreSettings) error
}
