package persistence

import (
	"errors"
	"fmt"
	"strings"

	"github.com/AntrikshRawat/DocAI-Muj-hackx-3.0/internal/domain/reports"

	"gorm.io/gorm"
)

// translateError maps driver errors onto the reports error taxonomy
func translateError(op string, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return fmt.Errorf("%s: %w", op, reports.ErrNotFound)
	case errors.Is(err, gorm.ErrDuplicatedKey), isUniqueViolation(err):
		return fmt.Errorf("%s: %w", op, reports.ErrDuplicateKey)
	default:
		return fmt.Errorf("%s: %w: %w", op, reports.ErrStorageUnavailable, err)
	}
}

// isUniqueViolation catches drivers that do not implement gorm's error translator
func isUniqueViolation(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") || strings.Contains(msg, "SQLSTATE 23505")
}
