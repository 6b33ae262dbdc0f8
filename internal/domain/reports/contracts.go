package reports

import "context"

// ReportRepository persists encrypted report records. There is no update operation.
type ReportRepository interface {
	// Insert writes the record atomically, assigning an id when none is set, and returns the id.
	// A supplied id that already exists yields ErrDuplicateKey.
	Insert(ctx context.Context, report *EncryptedReport) (string, error)

	// GetByID returns the full record or ErrNotFound.
	GetByID(ctx context.Context, reportID string) (*EncryptedReport, error)

	// ListByGroup returns summaries of the group's reports, newest first.
	ListByGroup(ctx context.Context, groupID string) ([]*ReportSummary, error)
}

// ReportStore encrypts reports before they reach the repository and decrypts them on the way out.
type ReportStore interface {
	// Store validates, seals and persists a report and returns its id.
	Store(ctx context.Context, req *StoreRequest) (string, error)

	// Retrieve loads and opens a report. A report that fails verification yields
	// ErrAuthenticationFailure, never partial plaintext.
	Retrieve(ctx context.Context, reportID string) (*RetrievedReport, error)

	// ListByGroup returns summaries of the group's reports, newest first.
	ListByGroup(ctx context.Context, groupID string) ([]*ReportSummary, error)
}
