package persistence

import (
	"context"
	"fmt"

	"github.com/AntrikshRawat/DocAI-Muj-hackx-3.0/internal/domain/reports"
	"github.com/AntrikshRawat/DocAI-Muj-hackx-3.0/internal/infrastructure/persistence/models"
	"github.com/AntrikshRawat/DocAI-Muj-hackx-3.0/internal/pkg/logger"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type gormReportRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormReportRepository creates a new GORM-based ReportRepository implementation
func NewGormReportRepository(db *gorm.DB, logger logger.Logger) (reports.ReportRepository, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is required")
	}
	return &gormReportRepository{
		db:     db,
		logger: logger,
	}, nil
}

// AutoMigrate creates or updates the encrypted_reports table
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.ReportModel{}); err != nil {
		return fmt.Errorf("failed to migrate report schema: %w", err)
	}
	return nil
}

func (r *gormReportRepository) Insert(ctx context.Context, report *reports.EncryptedReport) (string, error) {
	if report.ID == "" {
		report.ID = uuid.NewString()
	}

	if err := report.Validate(); err != nil {
		return "", err
	}

	model := &models.ReportModel{}
	model.FromDomain(report)

	// a single INSERT keeps ciphertext, nonce and tag in one row
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return "", translateError("failed to insert report", err)
	}

	r.logger.Debug("Inserted report record", "report_id", report.ID, "group_id", report.GroupID)
	return report.ID, nil
}

func (r *gormReportRepository) GetByID(ctx context.Context, reportID string) (*reports.EncryptedReport, error) {
	var model models.ReportModel
	if err := r.db.WithContext(ctx).Where("id = ?", reportID).First(&model).Error; err != nil {
		return nil, translateError(fmt.Sprintf("failed to fetch report %s", reportID), err)
	}
	return model.ToDomain(), nil
}

func (r *gormReportRepository) ListByGroup(ctx context.Context, groupID string) ([]*reports.ReportSummary, error) {
	var modelList []*models.ReportModel

	err := r.db.WithContext(ctx).
		Model(&models.ReportModel{}).
		Select(models.SummaryColumns).
		Where("group_id = ?", groupID).
		Order("created_at desc").
		Order("id desc").
		Find(&modelList).Error
	if err != nil {
		return nil, translateError("failed to list reports", err)
	}

	summaries := make([]*reports.ReportSummary, len(modelList))
	for i, model := range modelList {
		summaries[i] = model.ToSummary()
	}
	return summaries, nil
}
