//go:build unit
// +build unit

package models

import (
	"testing"
	"time"

	"github.com/AntrikshRawat/DocAI-Muj-hackx-3.0/internal/domain/reports"
	"github.com/stretchr/testify/assert"
)

func newTestReport() *reports.EncryptedReport {
	return &reports.EncryptedReport{
		ID:          "c2a3b0d4-34e1-4a57-9a83-1f5c0c1b2a90",
		Filename:    "lipid-profile.json",
		ContentType: "application/json",
		Algorithm:   "AES-256-GCM",
		Ciphertext:  []byte{0x10, 0x20, 0x30, 0x40},
		Nonce:       make([]byte, 12),
		AuthTag:     make([]byte, 16),
		OwnerID:     "patient-7",
		GroupID:     "session-3",
		CreatedAt:   time.Now().UTC(),
	}
}

func TestReportModel_FromDomain(t *testing.T) {
	report := newTestReport()

	var model ReportModel
	model.FromDomain(report)

	assert.Equal(t, report.ID, model.ID)
	assert.Equal(t, report.Filename, model.Filename)
	assert.Equal(t, report.ContentType, model.ContentType)
	assert.Equal(t, report.Algorithm, model.Algorithm)
	assert.Equal(t, report.Ciphertext, model.Ciphertext)
	assert.Equal(t, report.Nonce, model.Nonce)
	assert.Equal(t, report.AuthTag, model.AuthTag)
	assert.Equal(t, int64(4), model.Size)
	assert.Equal(t, report.OwnerID, model.OwnerID)
	assert.Equal(t, report.GroupID, model.GroupID)
	assert.Equal(t, report.CreatedAt, model.CreatedAt)
}

func TestReportModel_ToDomainRoundTrip(t *testing.T) {
	report := newTestReport()

	var model ReportModel
	model.FromDomain(report)

	assert.Equal(t, report, model.ToDomain())
}

func TestReportModel_ToSummary(t *testing.T) {
	var model ReportModel
	model.FromDomain(newTestReport())
	model.Ciphertext = nil

	summary := model.ToSummary()

	assert.Equal(t, model.ID, summary.ID)
	assert.Equal(t, int64(4), summary.Size)
	assert.Equal(t, model.GroupID, summary.GroupID)
}

func TestReportModel_TableName(t *testing.T) {
	assert.Equal(t, "encrypted_reports", ReportModel{}.TableName())
}
