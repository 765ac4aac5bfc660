package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kanishak333/PBL--HireEdge/internal/models"
)

type stubAnalyzer struct {
	result    models.AnalysisResult
	backupKey string
	err       error
}

func (s *stubAnalyzer) Analyze(context.Context, models.UploadedDocument) (models.AnalysisResult, string, error) {
	return s.result, s.backupKey, s.err
}

func newAnalyzeApp(handler *AnalyzeHandler) *fiber.App {
	app := fiber.New()
	app.Post("/api/analyze", handler.HandleAnalyze)
	return app
}

func multipartResume(t *testing.T, field, filename string, content []byte) (*bytes.Buffer, string) {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	return body, writer.FormDataContentType()
}

func TestHandleAnalyze_MissingFileIsClientError(t *testing.T) {
	app := newAnalyzeApp(NewAnalyzeHandler(&stubAnalyzer{}, 1<<20, time.Second))

	req := httptest.NewRequest(http.MethodPost, "/api/analyze", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body models.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "No resume file uploaded", body.Error)
}

func TestHandleAnalyze_MissingCredentialIsServerConfigError(t *testing.T) {
	app := newAnalyzeApp(NewAnalyzeHandler(nil, 1<<20, time.Second))

	body, contentType := multipartResume(t, "resume", "resume.pdf", []byte("%PDF-fake"))
	req := httptest.NewRequest(http.MethodPost, "/api/analyze", body)
	req.Header.Set("Content-Type", contentType)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	var errBody models.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&errBody))
	assert.Contains(t, errBody.Error, "API Key missing")
}

func TestHandleAnalyze_FileTooLargeIsClientError(t *testing.T) {
	app := newAnalyzeApp(NewAnalyzeHandler(&stubAnalyzer{}, 8, time.Second))

	body, contentType := multipartResume(t, "resume", "resume.pdf", []byte("way more than eight bytes"))
	req := httptest.NewRequest(http.MethodPost, "/api/analyze", body)
	req.Header.Set("Content-Type", contentType)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHandleAnalyze_SuccessShape(t *testing.T) {
	backupKey := "1700000000000_abc_resume.pdf"
	analyzer := &stubAnalyzer{
		result: models.AnalysisResult{
			{Name: "Alice Smith", Score: 92, Role: "Senior Frontend Dev"},
		},
		backupKey: backupKey,
	}
	app := newAnalyzeApp(NewAnalyzeHandler(analyzer, 1<<20, time.Second))

	body, contentType := multipartResume(t, "resume", "resume.pdf", []byte("%PDF-fake"))
	req := httptest.NewRequest(http.MethodPost, "/api/analyze", body)
	req.Header.Set("Content-Type", contentType)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var decoded models.AnalyzeResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&decoded))
	assert.True(t, decoded.Success)
	require.Len(t, decoded.Analysis, 1)
	assert.Equal(t, "Alice Smith", decoded.Analysis[0].Name)
	require.NotNil(t, decoded.FileURL)
	assert.Equal(t, backupKey, *decoded.FileURL)
}

func TestHandleAnalyze_PipelineFailureSurfacesMessage(t *testing.T) {
	analyzer := &stubAnalyzer{err: errors.New("analysis failed while validating: invalid model response: empty response")}
	app := newAnalyzeApp(NewAnalyzeHandler(analyzer, 1<<20, time.Second))

	body, contentType := multipartResume(t, "resume", "resume.pdf", []byte("%PDF-fake"))
	req := httptest.NewRequest(http.MethodPost, "/api/analyze", body)
	req.Header.Set("Content-Type", contentType)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "analysis failed while validating")
}
