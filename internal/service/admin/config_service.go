package admin

import (
	"context"
	"errors"

	"github.com/mlipatova/airgate/internal/apperr"
	"github.com/mlipatova/airgate/internal/domain"
	"github.com/mlipatova/airgate/internal/repository"
)

type ConfigUseCase interface {
	List(ctx context.Context) ([]domain.APIConfig, error)
	Update(ctx context.Context, id string, update domain.APIConfigUpdate) (*domain.APIConfig, error)
}

// ConfigService edits the descriptive API config records. The values drive
// the admin dashboard only; nothing enforces them at request time.
type ConfigService struct {
	configs repository.ConfigRepository
}

func NewConfigService(configs repository.ConfigRepository) *ConfigService {
	return &ConfigService{configs: configs}
}

func (s *ConfigService) List(ctx context.Context) ([]domain.APIConfig, error) {
	return s.configs.List(ctx)
}

func (s *ConfigService) Update(ctx context.Context, id string, update domain.APIConfigUpdate) (*domain.APIConfig, error) {
	if id == "" {
		return nil, apperr.InvalidInput("config id is required")
	}

	cfg, err := s.configs.Update(ctx, id, update)
	if err != nil {
		if errors.Is(err, repository.ErrConfigNotFound) {
			return nil, apperr.NotFound("api configuration")
		}
		return nil, err
	}
	return cfg, nil
}

var _ ConfigUseCase = (*ConfigService)(nil)
