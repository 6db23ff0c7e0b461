package service

import (
	"context"
	"errors"
	"strconv"

	"eventdesk/internal/settings/repository"
	"eventdesk/pkg/config"
	apperrors "eventdesk/pkg/errors"
	"eventdesk/pkg/sanitizer"
)

// SettingService exposes the typed settings the rest of the system
// reads. It also satisfies the booking service's EventLimitProvider.
type SettingService interface {
	EventLimit(ctx context.Context) (int, error)
	SetEventLimit(ctx context.Context, limit int) error
}

type settingService struct {
	repo repository.SettingRepository
	cfg  *config.Config
}

func NewSettingService(repo repository.SettingRepository, cfg *config.Config) SettingService {
	return &settingService{
		repo: repo,
		cfg:  cfg,
	}
}

// EventLimit returns the configured daily event limit. Settings values
// are stored as strings; a missing row or an unparseable value falls
// back to the configured default, and anything out of bounds is
// clamped rather than rejected so a bad write can never brick reads.
func (s *settingService) EventLimit(ctx context.Context) (int, error) {
	setting, err := s.repo.Get(ctx, config.EventLimitSettingKey)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return s.cfg.DefaultEventLimitPerDay, nil
		}
		s.cfg.Log.Error("Failed to read event limit setting", "error", err)
		return 0, apperrors.Internal("Failed to read event limit", err)
	}

	limit, err := strconv.Atoi(setting.Value)
	if err != nil {
		s.cfg.Log.Warn("Event limit setting is not a number, using default",
			"value", setting.Value,
			"default", s.cfg.DefaultEventLimitPerDay,
		)
		return s.cfg.DefaultEventLimitPerDay, nil
	}

	return sanitizer.Clamp(limit, s.cfg.MinEventLimitPerDay, s.cfg.MaxEventLimitPerDay), nil
}

func (s *settingService) SetEventLimit(ctx context.Context, limit int) error {
	if limit < s.cfg.MinEventLimitPerDay || limit > s.cfg.MaxEventLimitPerDay {
		return apperrors.InvalidInput(
			"Event limit must be between " +
				strconv.Itoa(s.cfg.MinEventLimitPerDay) + " and " +
				strconv.Itoa(s.cfg.MaxEventLimitPerDay),
		)
	}

	if err := s.repo.Upsert(ctx, config.EventLimitSettingKey, strconv.Itoa(limit)); err != nil {
		s.cfg.Log.Error("Failed to store event limit setting", "limit", limit, "error", err)
		return apperrors.Internal("Failed to store event limit", err)
	}

	s.cfg.Log.Info("Event limit updated", "limit", limit)
	return nil
}
