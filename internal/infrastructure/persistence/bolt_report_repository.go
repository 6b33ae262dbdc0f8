package persistence

import (
	"bytes"
	"context"
	"encoding/binary"
	"encoding/gob"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/AntrikshRawat/DocAI-Muj-hackx-3.0/internal/domain/reports"
	"github.com/AntrikshRawat/DocAI-Muj-hackx-3.0/internal/pkg/logger"

	"github.com/google/uuid"
	"go.etcd.io/bbolt"
)

var (
	bucketReports        = []byte("reports")
	bucketReportsByGroup = []byte("reports_by_group")
)

// BoltReportRepository stores report records in a single bbolt file.
//
// The reports bucket maps id to the gob encoded record. The reports_by_group bucket
// maps groupID | 0x00 | createdAt (unix nanos, big endian) | id to the gob encoded
// summary, so listings never read ciphertext.
type BoltReportRepository struct {
	db     *bbolt.DB
	logger logger.Logger
}

var _ reports.ReportRepository = (*BoltReportRepository)(nil)

// NewBoltReportRepository opens or creates the bbolt database at path.
// The parent directory is created if it does not exist.
func NewBoltReportRepository(path string, logger logger.Logger) (*BoltReportRepository, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := bbolt.Open(path, 0600, &bbolt.Options{Timeout: 5 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open bolt database: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		for _, name := range [][]byte{bucketReports, bucketReportsByGroup} {
			if _, err := tx.CreateBucketIfNotExists(name); err != nil {
				return fmt.Errorf("create bucket %q: %w", name, err)
			}
		}
		return nil
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create buckets: %w", err)
	}

	return &BoltReportRepository{db: db, logger: logger}, nil
}

// Close closes the underlying database.
func (r *BoltReportRepository) Close() error { return r.db.Close() }

func (r *BoltReportRepository) Insert(ctx context.Context, report *reports.EncryptedReport) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if report.ID == "" {
		report.ID = uuid.NewString()
	}

	if err := report.Validate(); err != nil {
		return "", err
	}

	record, err := encodeGob(report)
	if err != nil {
		return "", fmt.Errorf("failed to encode report: %w", err)
	}
	summary, err := encodeGob(report.Summary())
	if err != nil {
		return "", fmt.Errorf("failed to encode report summary: %w", err)
	}

	// record and index entry commit in one transaction
	err = r.db.Update(func(tx *bbolt.Tx) error {
		rb := tx.Bucket(bucketReports)
		if rb.Get([]byte(report.ID)) != nil {
			return reports.ErrDuplicateKey
		}
		if err := rb.Put([]byte(report.ID), record); err != nil {
			return err
		}
		return tx.Bucket(bucketReportsByGroup).Put(groupIndexKey(report.GroupID, report.CreatedAt, report.ID), summary)
	})
	if err != nil {
		return "", boltError("failed to insert report", err)
	}

	r.logger.Debug("Inserted report record", "report_id", report.ID, "group_id", report.GroupID)
	return report.ID, nil
}

func (r *BoltReportRepository) GetByID(ctx context.Context, reportID string) (*reports.EncryptedReport, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var report reports.EncryptedReport
	err := r.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket(bucketReports).Get([]byte(reportID))
		if data == nil {
			return reports.ErrNotFound
		}
		// data is only valid inside the transaction; gob copies while decoding
		return decodeGob(data, &report)
	})
	if err != nil {
		return nil, boltError(fmt.Sprintf("failed to fetch report %s", reportID), err)
	}

	return &report, nil
}

func (r *BoltReportRepository) ListByGroup(ctx context.Context, groupID string) ([]*reports.ReportSummary, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	prefix := groupPrefix(groupID)
	var summaries []*reports.ReportSummary

	err := r.db.View(func(tx *bbolt.Tx) error {
		c := tx.Bucket(bucketReportsByGroup).Cursor()

		// position past the last key of the prefix and walk backwards for newest first
		k, v := c.Seek(prefixUpperBound(prefix))
		if k == nil {
			k, v = c.Last()
		} else {
			k, v = c.Prev()
		}

		for ; k != nil && bytes.HasPrefix(k, prefix); k, v = c.Prev() {
			var summary reports.ReportSummary
			if err := decodeGob(v, &summary); err != nil {
				return fmt.Errorf("decode summary: %w", err)
			}
			// group ids may themselves contain the separator byte
			if summary.GroupID != groupID {
				continue
			}
			summaries = append(summaries, &summary)
		}
		return nil
	})
	if err != nil {
		return nil, boltError("failed to list reports", err)
	}

	if summaries == nil {
		summaries = []*reports.ReportSummary{}
	}
	return summaries, nil
}

func boltError(op string, err error) error {
	switch {
	case errors.Is(err, reports.ErrNotFound), errors.Is(err, reports.ErrDuplicateKey):
		return fmt.Errorf("%s: %w", op, err)
	default:
		return fmt.Errorf("%s: %w: %w", op, reports.ErrStorageUnavailable, err)
	}
}

func groupPrefix(groupID string) []byte {
	prefix := make([]byte, 0, len(groupID)+1)
	prefix = append(prefix, groupID...)
	return append(prefix, 0x00)
}

// prefixUpperBound returns the smallest key greater than every key starting with prefix
func prefixUpperBound(prefix []byte) []byte {
	bound := bytes.Clone(prefix)
	bound[len(bound)-1]++
	return bound
}

func groupIndexKey(groupID string, createdAt time.Time, id string) []byte {
	key := groupPrefix(groupID)
	key = binary.BigEndian.AppendUint64(key, uint64(createdAt.UnixNano()))
	return append(key, id...)
}

func encodeGob(v any) ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func decodeGob(data []byte, v any) error {
	return gob.NewDecoder(bytes.NewReader(data)).Decode(v)
}
