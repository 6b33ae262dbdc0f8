package models

import (
	"time"

	"github.com/AntrikshRawat/DocAI-Muj-hackx-3.0/internal/domain/reports"
)

// ReportModel is the GORM database model for encrypted reports (infrastructure concern)
type ReportModel struct {
	ID          string    `gorm:"primaryKey;type:varchar(64)"`
	Filename    string    `gorm:"not null;type:varchar(255)"`
	ContentType string    `gorm:"not null;type:varchar(255)"`
	Algorithm   string    `gorm:"not null;type:varchar(32)"`
	Ciphertext  []byte    `gorm:"not null"`
	Nonce       []byte    `gorm:"not null"`
	AuthTag     []byte    `gorm:"not null"`
	Size        int64     `gorm:"not null"`
	OwnerID     string    `gorm:"not null;index;type:varchar(255)"`
	GroupID     string    `gorm:"not null;index:idx_reports_group_created,priority:1;type:varchar(255)"`
	CreatedAt   time.Time `gorm:"not null;index:idx_reports_group_created,priority:2,sort:desc"`
}

// TableName specifies the table name for GORM
func (ReportModel) TableName() string {
	return "encrypted_reports"
}

// SummaryColumns are the columns loaded for listings, leaving ciphertext on disk
var SummaryColumns = []string{"id", "filename", "content_type", "size", "owner_id", "group_id", "created_at"}

// ToDomain converts GORM model to domain entity
func (m *ReportModel) ToDomain() *reports.EncryptedReport {
	return &reports.EncryptedReport{
		ID:          m.ID,
		Filename:    m.Filename,
		ContentType: m.ContentType,
		Algorithm:   m.Algorithm,
		Ciphertext:  m.Ciphertext,
		Nonce:       m.Nonce,
		AuthTag:     m.AuthTag,
		OwnerID:     m.OwnerID,
		GroupID:     m.GroupID,
		CreatedAt:   m.CreatedAt,
	}
}

// ToSummary converts a model loaded with SummaryColumns to a report summary
func (m *ReportModel) ToSummary() *reports.ReportSummary {
	return &reports.ReportSummary{
		ID:          m.ID,
		Filename:    m.Filename,
		ContentType: m.ContentType,
		Size:        m.Size,
		OwnerID:     m.OwnerID,
		GroupID:     m.GroupID,
		CreatedAt:   m.CreatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *ReportModel) FromDomain(r *reports.EncryptedReport) {
	m.ID = r.ID
	m.Filename = r.Filename
	m.ContentType = r.ContentType
	m.Algorithm = r.Algorithm
	m.Ciphertext = r.Ciphertext
	m.Nonce = r.Nonce
	m.AuthTag = r.AuthTag
	m.Size = int64(len(r.Ciphertext))
	m.OwnerID = r.OwnerID
	m.GroupID = r.GroupID
	m.CreatedAt = r.CreatedAt
}
