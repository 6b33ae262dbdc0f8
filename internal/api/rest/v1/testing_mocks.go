//go:build unit
// +build unit

package v1

import (
	"context"

	"github.com/AntrikshRawat/DocAI-Muj-hackx-3.0/internal/domain/reports"

	"github.com/stretchr/testify/mock"
)

// MockReportStore is a mock implementation of ReportStore
type MockReportStore struct {
	mock.Mock
}

func (m *MockReportStore) Store(ctx context.Context, req *reports.StoreRequest) (string, error) {
	args := m.Called(ctx, req)
	return args.String(0), args.Error(1)
}

func (m *MockReportStore) Retrieve(ctx context.Context, reportID string) (*reports.RetrievedReport, error) {
	args := m.Called(ctx, reportID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*reports.RetrievedReport), args.Error(1)
}

func (m *MockReportStore) ListByGroup(ctx context.Context, groupID string) ([]*reports.ReportSummary, error) {
	args := m.Called(ctx, groupID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*reports.ReportSummary), args.Error(1)
}
