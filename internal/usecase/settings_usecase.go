package usecase

import (
	"context"

	"dukaan/internal/domain/entity"
)

// SettingsUsecase defines the interface for shop profile use cases
type SettingsUsecase interface {
	// GetSettings returns the current shop profile, seeded on first access.
	GetSettings(ctx context.Context) (*entity.StoreSettings, error)

	// UpdateSettings replaces the profile wholesale and returns it re-read
	// from the repository.
	UpdateSettings(ctx context.Context, settings entity.StoreSettings) (*entity.StoreSettings, error)
}
