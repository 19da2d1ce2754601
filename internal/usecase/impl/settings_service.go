package impl

import (
	"context"

	"dukaan/internal/domain/entity"
	"dukaan/internal/domain/repository"
	"dukaan/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type settingsService struct {
	settingsRepo repository.SettingsRepository
}

// SettingsServiceParams holds dependencies for SettingsService, injected by Fx.
type SettingsServiceParams struct {
	fx.In

	SettingsRepo repository.SettingsRepository
}

// NewSettingsService creates a new settings service instance
func NewSettingsService(params SettingsServiceParams) usecase.SettingsUsecase {
	return &settingsService{
		settingsRepo: params.SettingsRepo,
	}
}

// GetSettings returns the current shop profile.
func (s *settingsService) GetSettings(ctx context.Context) (*entity.StoreSettings, error) {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get settings")
	}

	return settings, nil
}

// UpdateSettings replaces the profile wholesale and returns it re-read from
// the repository.
func (s *settingsService) UpdateSettings(ctx context.Context, settings entity.StoreSettings) (*entity.StoreSettings, error) {
	if err := s.settingsRepo.Put(ctx, settings); err != nil {
		return nil, errors.Wrap(err, "failed to update settings")
	}

	return s.GetSettings(ctx)
}
