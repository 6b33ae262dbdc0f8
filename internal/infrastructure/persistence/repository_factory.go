package persistence

import (
	"fmt"

	"github.com/AntrikshRawat/DocAI-Muj-hackx-3.0/internal/domain/reports"
	"github.com/AntrikshRawat/DocAI-Muj-hackx-3.0/internal/pkg/config"
	"github.com/AntrikshRawat/DocAI-Muj-hackx-3.0/internal/pkg/logger"
)

// NewReportRepository opens the record store selected by settings.Type, migrates it when it
// is a SQL store and returns the repository together with a function releasing the connection.
func NewReportRepository(settings config.DatabaseSettings, logger logger.Logger) (reports.ReportRepository, func() error, error) {
	if err := settings.Validate(); err != nil {
		return nil, nil, err
	}

	if settings.Type == config.BoltDbType {
		repo, err := NewBoltReportRepository(settings.DSN, logger)
		if err != nil {
			return nil, nil, err
		}
		logger.Info("Opened bolt report store", "path", settings.DSN)
		return repo, repo.Close, nil
	}

	db, err := NewDBConnection(settings)
	if err != nil {
		return nil, nil, err
	}

	closeFn := func() error { return CloseDB(db) }

	if err := AutoMigrate(db); err != nil {
		_ = closeFn()
		return nil, nil, err
	}

	repo, err := NewGormReportRepository(db, logger)
	if err != nil {
		_ = closeFn()
		return nil, nil, fmt.Errorf("failed to create report repository: %w", err)
	}

	logger.Info("Opened SQL report store", "type", settings.Type)
	return repo, closeFn, nil
}
