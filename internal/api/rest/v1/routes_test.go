//go:build unit
// +build unit

package v1

import (
	"bytes"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/AntrikshRawat/DocAI-Muj-hackx-3.0/internal/domain/reports"
	"github.com/AntrikshRawat/DocAI-Muj-hackx-3.0/internal/pkg/config"
	"github.com/AntrikshRawat/DocAI-Muj-hackx-3.0/internal/pkg/testutil"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupRouter(t *testing.T, auth config.AuthSettings) (*gin.Engine, *MockReportStore) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := new(MockReportStore)
	r := gin.New()
	SetupRoutes(r, store, config.ReportSettings{MaxPayloadSize: testMaxPayloadSize}, auth, testutil.SetupTestLogger(t))
	return r, store
}

// TestSetupRoutes_RoutesRegistered verifies that routes are properly registered
func TestSetupRoutes_RoutesRegistered(t *testing.T) {
	r, store := setupRouter(t, config.AuthSettings{})

	store.On("Store", mock.Anything, mock.Anything).Return("r-1", nil)
	store.On("Retrieve", mock.Anything, mock.Anything).Return(nil, reports.ErrNotFound)
	store.On("ListByGroup", mock.Anything, mock.Anything).Return([]*reports.ReportSummary{}, nil)

	tests := []struct {
		method string
		url    string
	}{
		{http.MethodGet, "/health"},
		{http.MethodPost, "/api/v1/reports"},
		{http.MethodGet, "/api/v1/reports?groupId=s1"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.url, func(t *testing.T) {
			req, _ := http.NewRequest(tt.method, tt.url, nil)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.NotEqual(t, http.StatusNotFound, w.Code, "Route should be registered")
		})
	}

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/reports/unknown", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "report not found")
}

func TestSetupRoutes_UploadThenDownload(t *testing.T) {
	r, store := setupRouter(t, config.AuthSettings{})

	content := []byte(`{"hba1c": 5.4}`)
	var stored *reports.StoreRequest
	store.On("Store", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { stored = args.Get(1).(*reports.StoreRequest) }).
		Return("r-7", nil)

	upload := testutil.NewReportUploadRequest(t, "/api/v1/reports", "labs.json", "application/json", content,
		map[string]string{"ownerId": "u1", "groupId": "s1"})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, upload)
	require.Equal(t, http.StatusCreated, w.Code)
	require.NotNil(t, stored)

	store.On("Retrieve", mock.Anything, "r-7").Return(&reports.RetrievedReport{
		ID:          "r-7",
		Filename:    stored.Filename,
		ContentType: stored.ContentType,
		Content:     stored.Content,
		CreatedAt:   time.Now(),
	}, nil)

	download, _ := http.NewRequest(http.MethodGet, "/api/v1/reports/r-7", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, download)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, bytes.Equal(content, w.Body.Bytes()))
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
}

func TestSetupRoutes_AuthEnabled(t *testing.T) {
	auth := config.AuthSettings{JWTSecret: string(testSecret), Issuer: "docai"}
	r, store := setupRouter(t, auth)

	store.On("ListByGroup", mock.Anything, "s1").Return([]*reports.ReportSummary{}, nil)

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/reports?groupId=s1", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	token, err := NewOwnerToken(testSecret, "docai", "u1", validClaims())
	require.NoError(t, err)

	req, _ = http.NewRequest(http.MethodGet, "/api/v1/reports?groupId=s1", nil)
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", token))
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	health, _ := http.NewRequest(http.MethodGet, "/health", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, health)
	assert.Equal(t, http.StatusOK, w.Code)
}
