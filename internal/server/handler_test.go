// internal/server/handler_test.go
package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"nextcard-intake/internal/common/apperrors"
	"nextcard-intake/internal/common/logger"
	"nextcard-intake/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubProcessor struct {
	lastReq *models.SubmitRequest
	resp    *models.SubmitResponse
	err     *apperrors.StandardError
}

func (s *stubProcessor) Process(_ context.Context, req *models.SubmitRequest) (*models.SubmitResponse, *apperrors.StandardError) {
	s.lastReq = req
	return s.resp, s.err
}

func postSubmit(t *testing.T, h *Handler, contentType, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/submit", strings.NewReader(body))
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	rec := httptest.NewRecorder()
	h.submit(rec, req)
	return rec
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) models.SubmitResponse {
	t.Helper()
	var resp models.SubmitResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestSubmit_Success(t *testing.T) {
	processor := &stubProcessor{resp: &models.SubmitResponse{
		Success:       true,
		Message:       "Dados enviados com sucesso",
		ApplicationID: "NCDEADBEEF",
	}}
	h := NewHandler(processor, logger.NewTestLogger(t))

	body := `{
		"formData": {"firstName": "João", "cardType": "NextCard Gold"},
		"photos": {"front": "aGk=", "back": "aGk=", "selfie": "aGk="}
	}`
	rec := postSubmit(t, h, "application/json", body)

	assert.Equal(t, http.StatusOK, rec.Code)
	resp := decodeResponse(t, rec)
	assert.True(t, resp.Success)
	assert.Equal(t, "NCDEADBEEF", resp.ApplicationID)

	require.NotNil(t, processor.lastReq)
	assert.Equal(t, "João", processor.lastReq.FormData["firstName"])
	assert.Equal(t, "aGk=", processor.lastReq.Photos.Selfie)
}

func TestSubmit_ContentTypeWithCharsetAccepted(t *testing.T) {
	processor := &stubProcessor{resp: &models.SubmitResponse{Success: true}}
	h := NewHandler(processor, logger.NewTestLogger(t))

	rec := postSubmit(t, h, "application/json; charset=utf-8", `{"formData":{},"photos":{}}`)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestSubmit_MalformedRequests(t *testing.T) {
	tests := []struct {
		name        string
		contentType string
		body        string
		wantMessage string
	}{
		{
			name:        "missing content type",
			contentType: "",
			body:        `{"formData":{}}`,
			wantMessage: "Content-Type must be application/json",
		},
		{
			name:        "form content type",
			contentType: "application/x-www-form-urlencoded",
			body:        "firstName=Jo%C3%A3o",
			wantMessage: "Content-Type must be application/json",
		},
		{
			name:        "empty body",
			contentType: "application/json",
			body:        "",
			wantMessage: "Nenhum dado recebido",
		},
		{
			name:        "broken json",
			contentType: "application/json",
			body:        `{"formData": {`,
			wantMessage: "Nenhum dado recebido",
		},
		{
			name:        "form field with non string value",
			contentType: "application/json",
			body:        `{"formData": {"income": 50000}, "photos": {}}`,
			wantMessage: "Formato de dados inválido",
		},
		{
			name:        "unknown photo slot",
			contentType: "application/json",
			body:        `{"formData": {}, "photos": {"side": "aGk="}}`,
			wantMessage: "Formato de dados inválido",
		},
		{
			name:        "unknown top level key",
			contentType: "application/json",
			body:        `{"formData": {}, "photos": {}, "extra": true}`,
			wantMessage: "Formato de dados inválido",
		},
		{
			name:        "top level array",
			contentType: "application/json",
			body:        `[1, 2, 3]`,
			wantMessage: "Formato de dados inválido",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			processor := &stubProcessor{}
			h := NewHandler(processor, logger.NewTestLogger(t))

			rec := postSubmit(t, h, tt.contentType, tt.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			resp := decodeResponse(t, rec)
			assert.False(t, resp.Success)
			assert.Equal(t, tt.wantMessage, resp.Message)
			// Malformed requests never reach the pipeline.
			assert.Nil(t, processor.lastReq)
		})
	}
}

func TestSubmit_ServiceErrorsMapToStatus(t *testing.T) {
	tests := []struct {
		name       string
		err        *apperrors.StandardError
		wantStatus int
		wantBody   string
	}{
		{
			name:       "validation failure",
			err:        apperrors.NewFieldValidationError("email", "Email inválido"),
			wantStatus: http.StatusBadRequest,
			wantBody:   "Email inválido",
		},
		{
			name:       "telegram send failure",
			err:        apperrors.NewTelegramSendError(nil),
			wantStatus: http.StatusInternalServerError,
			wantBody:   "Erro ao enviar para o Telegram",
		},
		{
			name:       "internal error",
			err:        apperrors.NewInternalError(nil),
			wantStatus: http.StatusInternalServerError,
			wantBody:   "Erro interno do servidor",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(&stubProcessor{err: tt.err}, logger.NewTestLogger(t))

			rec := postSubmit(t, h, "application/json", `{"formData":{},"photos":{}}`)

			assert.Equal(t, tt.wantStatus, rec.Code)
			resp := decodeResponse(t, rec)
			assert.False(t, resp.Success)
			assert.Equal(t, tt.wantBody, resp.Message)
		})
	}
}

func TestHealth(t *testing.T) {
	h := NewHandler(&stubProcessor{}, logger.NewTestLogger(t))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	h.health(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var resp models.HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "healthy", resp.Status)
	assert.Equal(t, "Server is running", resp.Message)
	assert.NotEmpty(t, resp.Timestamp)
}
