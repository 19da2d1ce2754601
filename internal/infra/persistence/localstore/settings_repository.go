package localstore

import (
	"context"

	"dukaan/internal/domain/entity"
	"dukaan/internal/domain/repository"

	"github.com/pkg/errors"
)

// settingsRepository implements the repository.SettingsRepository interface.
type settingsRepository struct {
	store Store
}

// NewSettingsRepository is the constructor for settingsRepository.
func NewSettingsRepository(store Store) repository.SettingsRepository {
	return &settingsRepository{
		store: store,
	}
}

// Get returns the shop profile. An absent snapshot materializes the default
// profile and persists it before returning.
func (repo *settingsRepository) Get(ctx context.Context) (*entity.StoreSettings, error) {
	settings, found, err := readSnapshot[entity.StoreSettings](repo.store, KeySettings)
	if err != nil {
		return nil, err
	}
	if !found {
		settings = DefaultSettings()
		if err := writeSnapshot(repo.store, KeySettings, settings); err != nil {
			return nil, errors.Wrap(err, "seed store settings")
		}
	}

	return &settings, nil
}

// Put replaces the profile wholesale.
func (repo *settingsRepository) Put(ctx context.Context, settings entity.StoreSettings) error {
	return writeSnapshot(repo.store, KeySettings, settings)
}
