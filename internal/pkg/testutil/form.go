package testutil

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"testing"

	"github.com/stretchr/testify/require"
)

// ReportFileField is the multipart field carrying the uploaded report
const ReportFileField = "file"

// writeReportForm encodes one file part and the given plain fields into buf
func writeReportForm(t *testing.T, buf *bytes.Buffer, filename, contentType string, content []byte, fields map[string]string) *multipart.Writer {
	t.Helper()

	writer := multipart.NewWriter(buf)

	for key, value := range fields {
		require.NoError(t, writer.WriteField(key, value))
	}

	if filename != "" {
		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`, ReportFileField, filename))
		header.Set("Content-Type", contentType)

		part, err := writer.CreatePart(header)
		require.NoError(t, err)
		_, err = part.Write(content)
		require.NoError(t, err)
	}

	require.NoError(t, writer.Close())
	return writer
}

// CreateReportForm builds a parsed multipart form holding a single report file and the given fields.
// An empty filename produces a form without a file part.
func CreateReportForm(t *testing.T, filename, contentType string, content []byte, fields map[string]string) *multipart.Form {
	t.Helper()

	var buf bytes.Buffer
	writer := writeReportForm(t, &buf, filename, contentType, content, fields)

	reader := multipart.NewReader(&buf, writer.Boundary())
	form, err := reader.ReadForm(32 << 20) // 32 MB
	require.NoError(t, err)

	return form
}

// NewReportUploadRequest builds a multipart POST request as a browser client would send it
func NewReportUploadRequest(t *testing.T, target, filename, contentType string, content []byte, fields map[string]string) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	writer := writeReportForm(t, &buf, filename, contentType, content, fields)

	req, err := http.NewRequest(http.MethodPost, target, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	return req
}
