package repository

import (
	"context"
	"errors"
	"log/slog"

	"gorm.io/gorm"

	"github.com/montagezeit/reminder-engine/internal/app"
	"github.com/montagezeit/reminder-engine/internal/domain"
)

const settingsRowID = 1

// settingsProviderImpl reads the single-row settings table maintained by the
// tracking application. An empty table yields the shipped defaults so a
// fresh install reminds out of the box.
type settingsProviderImpl struct {
	db *gorm.DB
}

func NewSettingsProvider(db *gorm.DB) app.SettingsProvider {
	return &settingsProviderImpl{
		db: db,
	}
}

func (r *settingsProviderImpl) Current(ctx context.Context) (domain.ReminderSettings, error) {
	var m ReminderSettingsModel

	result := r.db.WithContext(ctx).
		Where("id = ?", settingsRowID).
		First(&m)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			slog.Debug("no stored settings, using defaults")

			return domain.DefaultReminderSettings(), nil
		}

		slog.Error("failed to load reminder settings",
			"error", result.Error,
		)

		return domain.ReminderSettings{}, result.Error
	}

	return m.ToSettings()
}
