//go:build unit || integration
// +build unit integration

package persistence

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/AntrikshRawat/DocAI-Muj-hackx-3.0/internal/domain/crypto"
	"github.com/AntrikshRawat/DocAI-Muj-hackx-3.0/internal/domain/reports"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestReport creates a structurally valid record; the ciphertext is not a real seal
func newTestReport(groupID string, createdAt time.Time) *reports.EncryptedReport {
	return &reports.EncryptedReport{
		ID:          uuid.NewString(),
		Filename:    "cbc-" + createdAt.Format("150405.000") + ".pdf",
		ContentType: "application/pdf",
		Algorithm:   crypto.AlgorithmAES256GCM,
		Ciphertext:  bytes.Repeat([]byte{0xC7}, 64),
		Nonce:       bytes.Repeat([]byte{0x01}, crypto.GCMNonceSize),
		AuthTag:     bytes.Repeat([]byte{0x02}, crypto.GCMTagSize),
		OwnerID:     "dr-mehta",
		GroupID:     groupID,
		CreatedAt:   createdAt.UTC().Truncate(time.Microsecond),
	}
}

// testReportRepository runs the behaviour every ReportRepository must share
func testReportRepository(t *testing.T, repo reports.ReportRepository) {
	ctx := context.Background()

	t.Run("InsertAndGetByID", func(t *testing.T) {
		report := newTestReport("session-a", time.Now())

		id, err := repo.Insert(ctx, report)
		require.NoError(t, err)
		assert.Equal(t, report.ID, id)

		fetched, err := repo.GetByID(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, report.ID, fetched.ID)
		assert.Equal(t, report.Filename, fetched.Filename)
		assert.Equal(t, report.ContentType, fetched.ContentType)
		assert.Equal(t, report.Algorithm, fetched.Algorithm)
		assert.Equal(t, report.Ciphertext, fetched.Ciphertext)
		assert.Equal(t, report.Nonce, fetched.Nonce)
		assert.Equal(t, report.AuthTag, fetched.AuthTag)
		assert.Equal(t, report.OwnerID, fetched.OwnerID)
		assert.Equal(t, report.GroupID, fetched.GroupID)
		assert.True(t, report.CreatedAt.Equal(fetched.CreatedAt))
	})

	t.Run("InsertAssignsID", func(t *testing.T) {
		report := newTestReport("session-b", time.Now())
		report.ID = ""

		id, err := repo.Insert(ctx, report)
		require.NoError(t, err)
		assert.NotEmpty(t, id)

		_, err = repo.GetByID(ctx, id)
		require.NoError(t, err)
	})

	t.Run("DuplicateKey", func(t *testing.T) {
		report := newTestReport("session-c", time.Now())
		_, err := repo.Insert(ctx, report)
		require.NoError(t, err)

		duplicate := newTestReport("session-c", time.Now())
		duplicate.ID = report.ID

		_, err = repo.Insert(ctx, duplicate)
		assert.ErrorIs(t, err, reports.ErrDuplicateKey)

		fetched, err := repo.GetByID(ctx, report.ID)
		require.NoError(t, err)
		assert.Equal(t, report.Filename, fetched.Filename)
	})

	t.Run("InvalidRecordRejected", func(t *testing.T) {
		report := newTestReport("session-d", time.Now())
		report.Nonce = report.Nonce[:4]

		_, err := repo.Insert(ctx, report)
		assert.ErrorIs(t, err, reports.ErrValidation)

		_, err = repo.GetByID(ctx, report.ID)
		assert.ErrorIs(t, err, reports.ErrNotFound)
	})

	t.Run("GetByIDNotFound", func(t *testing.T) {
		_, err := repo.GetByID(ctx, uuid.NewString())
		assert.ErrorIs(t, err, reports.ErrNotFound)
	})

	t.Run("ListByGroupNewestFirst", func(t *testing.T) {
		base := time.Now().Add(-time.Hour)
		groupID := "session-" + uuid.NewString()

		var inserted []*reports.EncryptedReport
		for i := 0; i < 3; i++ {
			report := newTestReport(groupID, base.Add(time.Duration(i)*time.Minute))
			_, err := repo.Insert(ctx, report)
			require.NoError(t, err)
			inserted = append(inserted, report)
		}
		_, err := repo.Insert(ctx, newTestReport("other-"+groupID, base))
		require.NoError(t, err)

		summaries, err := repo.ListByGroup(ctx, groupID)
		require.NoError(t, err)
		require.Len(t, summaries, 3)

		for i, summary := range summaries {
			expected := inserted[len(inserted)-1-i]
			assert.Equal(t, expected.ID, summary.ID)
			assert.Equal(t, expected.Filename, summary.Filename)
			assert.Equal(t, int64(len(expected.Ciphertext)), summary.Size)
			assert.Equal(t, groupID, summary.GroupID)
		}
	})

	t.Run("ListByGroupEmpty", func(t *testing.T) {
		summaries, err := repo.ListByGroup(ctx, "no-such-group")
		require.NoError(t, err)
		assert.Empty(t, summaries)
	})
}
