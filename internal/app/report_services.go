package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/AntrikshRawat/DocAI-Muj-hackx-3.0/internal/domain/crypto"
	"github.com/AntrikshRawat/DocAI-Muj-hackx-3.0/internal/domain/reports"
	"github.com/AntrikshRawat/DocAI-Muj-hackx-3.0/internal/pkg/logger"

	"github.com/google/uuid"
)

// AuthenticationFailureEvent tags log records of reports that failed verification
const AuthenticationFailureEvent = "report_authentication_failure"

// reportStore implements the ReportStore interface on top of an authenticated cipher and a record repository
type reportStore struct {
	cipher     crypto.AuthenticatedCipher
	repository reports.ReportRepository
	policy     *reports.UploadPolicy
	logger     logger.Logger
	now        func() time.Time
	newID      func() string
}

// NewReportStore creates a new instance of ReportStore
func NewReportStore(
	cipher crypto.AuthenticatedCipher,
	repository reports.ReportRepository,
	policy *reports.UploadPolicy,
	logger logger.Logger,
) (reports.ReportStore, error) {
	if cipher == nil || repository == nil || policy == nil {
		return nil, fmt.Errorf("cipher, repository and upload policy are required")
	}

	return &reportStore{
		cipher:     cipher,
		repository: repository,
		policy:     policy,
		logger:     logger,
		now:        time.Now,
		newID:      uuid.NewString,
	}, nil
}

// Store validates the request, seals the content bound to its metadata and inserts the record.
func (s *reportStore) Store(ctx context.Context, req *reports.StoreRequest) (string, error) {
	if req == nil {
		return "", fmt.Errorf("%w: empty request", reports.ErrMissingField)
	}
	if err := checkRequiredFields(req); err != nil {
		return "", err
	}
	if err := s.policy.CheckSize(int64(len(req.Content))); err != nil {
		return "", err
	}
	if err := s.policy.CheckType(req.Filename, req.ContentType); err != nil {
		return "", err
	}

	report := &reports.EncryptedReport{
		ID:          s.newID(),
		Filename:    req.Filename,
		ContentType: req.ContentType,
		OwnerID:     req.OwnerID,
		GroupID:     req.GroupID,
		CreatedAt:   s.now().UTC(),
	}

	sealed, err := s.cipher.Seal(req.Content, report.AssociatedData())
	if err != nil {
		return "", fmt.Errorf("failed to seal report: %w", err)
	}
	report.Algorithm = sealed.Algorithm
	report.Ciphertext = sealed.Ciphertext
	report.Nonce = sealed.Nonce
	report.AuthTag = sealed.Tag

	id, err := s.repository.Insert(ctx, report)
	if err != nil {
		if errors.Is(err, reports.ErrDuplicateKey) {
			// ids are generated here, a collision means the id source is broken
			s.logger.Error("Generated report id already exists", "report_id", report.ID, "error", err)
		}
		return "", fmt.Errorf("failed to store report: %w", err)
	}

	s.logger.Info("Stored report", "report_id", id, "group_id", report.GroupID, "content_type", report.ContentType, "size", len(report.Ciphertext))
	return id, nil
}

// Retrieve loads the record and opens it. A record that does not verify is reported as a security event.
func (s *reportStore) Retrieve(ctx context.Context, reportID string) (*reports.RetrievedReport, error) {
	if strings.TrimSpace(reportID) == "" {
		return nil, fmt.Errorf("%w: report id", reports.ErrMissingField)
	}

	report, err := s.repository.GetByID(ctx, reportID)
	if err != nil {
		if errors.Is(err, reports.ErrNotFound) {
			s.logger.Info("Report not found", "report_id", reportID)
		}
		return nil, err
	}

	plaintext, err := s.cipher.Open(report.SealedPayload(), report.AssociatedData())
	if err != nil {
		s.logger.Error("Report failed authentication",
			"event", AuthenticationFailureEvent,
			"report_id", report.ID,
			"owner_id", report.OwnerID,
			"group_id", report.GroupID,
			"algorithm", report.Algorithm,
		)
		return nil, fmt.Errorf("failed to open report %s: %w", reportID, reports.ErrAuthenticationFailure)
	}

	s.logger.Debug("Retrieved report", "report_id", report.ID)

	return &reports.RetrievedReport{
		ID:          report.ID,
		Filename:    report.Filename,
		ContentType: report.ContentType,
		OwnerID:     report.OwnerID,
		GroupID:     report.GroupID,
		CreatedAt:   report.CreatedAt,
		Content:     plaintext,
	}, nil
}

// ListByGroup returns the summaries of a group's reports, newest first.
func (s *reportStore) ListByGroup(ctx context.Context, groupID string) ([]*reports.ReportSummary, error) {
	if strings.TrimSpace(groupID) == "" {
		return nil, fmt.Errorf("%w: group id", reports.ErrMissingField)
	}

	summaries, err := s.repository.ListByGroup(ctx, groupID)
	if err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}
	return summaries, nil
}

func checkRequiredFields(req *reports.StoreRequest) error {
	var missing []string
	if strings.TrimSpace(req.Filename) == "" {
		missing = append(missing, "filename")
	}
	if strings.TrimSpace(req.ContentType) == "" {
		missing = append(missing, "contentType")
	}
	if strings.TrimSpace(req.OwnerID) == "" {
		missing = append(missing, "ownerId")
	}
	if strings.TrimSpace(req.GroupID) == "" {
		missing = append(missing, "groupId")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", reports.ErrMissingField, strings.Join(missing, ", "))
	}
	return nil
}
