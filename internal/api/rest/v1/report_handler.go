package v1

import (
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"

	"github.com/AntrikshRawat/DocAI-Muj-hackx-3.0/internal/domain/reports"
	"github.com/AntrikshRawat/DocAI-Muj-hackx-3.0/internal/pkg/logger"

	"github.com/gin-gonic/gin"
)

// ReportFileField is the multipart field carrying the report
const ReportFileField = "file"

// multipartOverhead is the room allowed for boundaries and the text fields around the file part
const multipartOverhead = 1 << 20

const defaultContentType = "application/octet-stream"

// ReportHandler defines the interface for handling report-related operations
type ReportHandler interface {
	Upload(ctx *gin.Context)
	Download(ctx *gin.Context)
	ListByGroup(ctx *gin.Context)
}

type reportHandler struct {
	reportStore    reports.ReportStore
	maxPayloadSize int64
	logger         logger.Logger
}

// NewReportHandler creates a new ReportHandler
func NewReportHandler(reportStore reports.ReportStore, maxPayloadSize int64, logger logger.Logger) ReportHandler {
	return &reportHandler{
		reportStore:    reportStore,
		maxPayloadSize: maxPayloadSize,
		logger:         logger,
	}
}

// Upload stores the multipart file field as an encrypted report
func (handler *reportHandler) Upload(ctx *gin.Context) {
	if ctx.Request.Body != nil {
		ctx.Request.Body = http.MaxBytesReader(ctx.Writer, ctx.Request.Body, handler.maxPayloadSize+multipartOverhead)
	}

	fileHeader, err := ctx.FormFile(ReportFileField)
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			writeError(ctx, handler.logger, reports.ErrPayloadTooLarge)
			return
		}
		writeError(ctx, handler.logger, fmt.Errorf("%w: invalid form data, field %q is required", reports.ErrMissingField, ReportFileField))
		return
	}

	request := UploadReportRequest{
		OwnerID: ownerFromContext(ctx),
		GroupID: firstNonEmpty(ctx.PostForm("groupId"), ctx.PostForm("sessionId")),
	}
	if request.OwnerID == "" {
		request.OwnerID = firstNonEmpty(ctx.PostForm("ownerId"), ctx.PostForm("uploadedBy"))
	}
	if err := request.Validate(); err != nil {
		writeError(ctx, handler.logger, err)
		return
	}

	if fileHeader.Size > handler.maxPayloadSize {
		writeError(ctx, handler.logger, fmt.Errorf("%w: %d bytes exceeds limit of %d bytes", reports.ErrPayloadTooLarge, fileHeader.Size, handler.maxPayloadSize))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		writeError(ctx, handler.logger, fmt.Errorf("%w: unreadable file part", reports.ErrValidation))
		return
	}
	defer file.Close()

	// one byte past the limit is enough for the store to reject an oversized part
	content, err := io.ReadAll(io.LimitReader(file, handler.maxPayloadSize+1))
	if err != nil {
		writeError(ctx, handler.logger, fmt.Errorf("%w: unreadable file part", reports.ErrValidation))
		return
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if contentType == "" {
		contentType = defaultContentType
	}

	id, err := handler.reportStore.Store(ctx, &reports.StoreRequest{
		Content:     content,
		Filename:    fileHeader.Filename,
		ContentType: contentType,
		OwnerID:     request.OwnerID,
		GroupID:     request.GroupID,
	})
	if err != nil {
		writeError(ctx, handler.logger, err)
		return
	}

	ctx.JSON(http.StatusCreated, StoreReportResponse{
		ID:       id,
		Filename: fileHeader.Filename,
		GroupID:  request.GroupID,
	})
}

// Download returns the decrypted report as an attachment
func (handler *reportHandler) Download(ctx *gin.Context) {
	reportID := ctx.Param("id")

	report, err := handler.reportStore.Retrieve(ctx, reportID)
	if err != nil {
		writeError(ctx, handler.logger, err)
		return
	}

	disposition := mime.FormatMediaType("attachment", map[string]string{"filename": report.Filename})
	if disposition == "" {
		disposition = "attachment"
	}

	ctx.Header("Content-Disposition", disposition)
	ctx.Header("X-Content-Type-Options", "nosniff")
	ctx.Data(http.StatusOK, report.ContentType, report.Content)
}

// ListByGroup returns the summaries of a group's reports, newest first
func (handler *reportHandler) ListByGroup(ctx *gin.Context) {
	groupID := firstNonEmpty(ctx.Query("groupId"), ctx.Query("sessionId"))
	if groupID == "" {
		writeError(ctx, handler.logger, fmt.Errorf("%w: query parameter groupId is required", reports.ErrMissingField))
		return
	}

	summaries, err := handler.reportStore.ListByGroup(ctx, groupID)
	if err != nil {
		writeError(ctx, handler.logger, err)
		return
	}

	response := make([]ReportSummaryResponse, 0, len(summaries))
	for _, summary := range summaries {
		response = append(response, newReportSummaryResponse(summary))
	}
	ctx.JSON(http.StatusOK, response)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}
