package reports

import (
	"encoding/binary"
	"errors"
	"fmt"
	"time"

	"github.com/AntrikshRawat/DocAI-Muj-hackx-3.0/internal/domain/crypto"
	"github.com/go-playground/validator/v10"
)

// EncryptedReport entity. A record is written once with ciphertext, nonce and tag together
// and is never updated afterwards.
type EncryptedReport struct {
	ID          string    `validate:"required,max=64"`
	Filename    string    `validate:"required,min=1,max=255"`
	ContentType string    `validate:"required,min=1,max=255"`
	Algorithm   string    `validate:"required,max=32"`
	Ciphertext  []byte    `validate:"min=1"`
	Nonce       []byte    `validate:"len=12"`
	AuthTag     []byte    `validate:"len=16"`
	OwnerID     string    `validate:"required,max=255"`
	GroupID     string    `validate:"required,max=255"`
	CreatedAt   time.Time `validate:"required"`
}

// Validate for validating EncryptedReport struct
func (r *EncryptedReport) Validate() error {
	validate := validator.New()

	err := validate.Struct(r)
	if err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			var messages []string
			for _, fieldErr := range validationErrors {
				messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
			}
			return fmt.Errorf("%w: %v", ErrValidation, messages)
		}
		return fmt.Errorf("%w: %w", ErrValidation, err)
	}

	return nil
}

// SealedPayload returns the cipher view of the record
func (r *EncryptedReport) SealedPayload() *crypto.SealedPayload {
	return &crypto.SealedPayload{
		Algorithm:  r.Algorithm,
		Ciphertext: r.Ciphertext,
		Nonce:      r.Nonce,
		Tag:        r.AuthTag,
	}
}

// AssociatedData returns the metadata authenticated together with the ciphertext
func (r *EncryptedReport) AssociatedData() []byte {
	return AssociatedData(r.ID, r.OwnerID, r.GroupID, r.Filename, r.ContentType)
}

// Summary returns the listing view of the record
func (r *EncryptedReport) Summary() *ReportSummary {
	return &ReportSummary{
		ID:          r.ID,
		Filename:    r.Filename,
		ContentType: r.ContentType,
		Size:        int64(len(r.Ciphertext)),
		OwnerID:     r.OwnerID,
		GroupID:     r.GroupID,
		CreatedAt:   r.CreatedAt,
	}
}

// AssociatedData encodes the identifying metadata of a report as length-prefixed fields,
// so no two distinct field tuples share an encoding.
func AssociatedData(id, ownerID, groupID, filename, contentType string) []byte {
	fields := []string{id, ownerID, groupID, filename, contentType}

	size := 0
	for _, f := range fields {
		size += 4 + len(f)
	}

	buf := make([]byte, 0, size)
	for _, f := range fields {
		buf = binary.BigEndian.AppendUint32(buf, uint32(len(f)))
		buf = append(buf, f...)
	}
	return buf
}

// ReportSummary is the metadata of a stored report. It never carries ciphertext.
type ReportSummary struct {
	ID          string
	Filename    string
	ContentType string
	Size        int64
	OwnerID     string
	GroupID     string
	CreatedAt   time.Time
}

// StoreRequest carries a plaintext report and its metadata into the store
type StoreRequest struct {
	Content     []byte
	Filename    string
	ContentType string
	OwnerID     string
	GroupID     string
}

// RetrievedReport is a decrypted report together with its metadata
type RetrievedReport struct {
	ID          string
	Filename    string
	ContentType string
	OwnerID     string
	GroupID     string
	CreatedAt   time.Time
	Content     []byte
}
