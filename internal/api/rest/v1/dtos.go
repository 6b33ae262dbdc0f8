package v1

import (
	"errors"
	"fmt"
	"time"

	"github.com/AntrikshRawat/DocAI-Muj-hackx-3.0/internal/domain/reports"
	"github.com/go-playground/validator/v10"
)

// ErrorResponse is the body of every failed request
type ErrorResponse struct {
	Message string `json:"message"`
}

// InfoResponse is a plain status body
type InfoResponse struct {
	Status string `json:"status"`
}

// UploadReportRequest holds the non-file fields of a report upload
type UploadReportRequest struct {
	OwnerID string `validate:"required,max=255"`
	GroupID string `validate:"required,max=255"`
}

// Validate for validating UploadReportRequest struct
func (r *UploadReportRequest) Validate() error {
	validate := validator.New()

	err := validate.Struct(r)
	if err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			var messages []string
			for _, fieldErr := range validationErrors {
				messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
			}
			return fmt.Errorf("%w: %v", reports.ErrMissingField, messages)
		}
		return fmt.Errorf("%w: %w", reports.ErrValidation, err)
	}
	return nil
}

// StoreReportResponse is returned after a report was stored
type StoreReportResponse struct {
	ID       string `json:"id"`
	Filename string `json:"filename"`
	GroupID  string `json:"groupId"`
}

// ReportSummaryResponse describes a stored report without its content
type ReportSummaryResponse struct {
	ID          string    `json:"id"`
	Filename    string    `json:"filename"`
	ContentType string    `json:"contentType"`
	Size        int64     `json:"size"`
	OwnerID     string    `json:"ownerId"`
	GroupID     string    `json:"groupId"`
	CreatedAt   time.Time `json:"createdAt"`
}

func newReportSummaryResponse(s *reports.ReportSummary) ReportSummaryResponse {
	return ReportSummaryResponse{
		ID:          s.ID,
		Filename:    s.Filename,
		ContentType: s.ContentType,
		Size:        s.Size,
		OwnerID:     s.OwnerID,
		GroupID:     s.GroupID,
		CreatedAt:   s.CreatedAt,
	}
}
