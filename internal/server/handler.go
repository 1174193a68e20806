// internal/server/handler.go
package server

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"nextcard-intake/internal/common/apperrors"
	"nextcard-intake/internal/common/logger"
	"nextcard-intake/internal/models"

	"github.com/xeipuuv/gojsonschema"
)

// maxBodyBytes bounds the request body: three 10 MiB photos base64-encoded
// plus form fields fit comfortably under 64 MiB.
const maxBodyBytes = 64 << 20

// submitSchema gates the wire shape before normalization: formData must map
// field names to strings, photos must only carry the three known slots.
const submitSchema = `{
	"type": "object",
	"properties": {
		"formData": {
			"type": "object",
			"additionalProperties": {"type": "string"}
		},
		"photos": {
			"type": "object",
			"properties": {
				"front": {"type": "string"},
				"back": {"type": "string"},
				"selfie": {"type": "string"}
			},
			"additionalProperties": false
		}
	},
	"additionalProperties": false
}`

var submitSchemaLoader = gojsonschema.NewStringLoader(submitSchema)

// SubmissionProcessor is the intake pipeline surface; declared here for
// mocking.
type SubmissionProcessor interface {
	Process(ctx context.Context, req *models.SubmitRequest) (*models.SubmitResponse, *apperrors.StandardError)
}

type Handler struct {
	service SubmissionProcessor
	logger  logger.Logger
}

func NewHandler(service SubmissionProcessor, log logger.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  log.WithFields(map[string]interface{}{"component": "http"}),
	}
}

func (h *Handler) submit(w http.ResponseWriter, r *http.Request) {
	if !strings.HasPrefix(r.Header.Get("Content-Type"), "application/json") {
		h.writeError(r, w, apperrors.NewMalformedRequestError(
			"Content-Type must be application/json", ""))
		return
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil || len(body) == 0 {
		h.writeError(r, w, apperrors.NewMalformedRequestError("Nenhum dado recebido", ""))
		return
	}

	result, err := gojsonschema.Validate(submitSchemaLoader, gojsonschema.NewBytesLoader(body))
	if err != nil {
		// Not JSON at all.
		h.writeError(r, w, apperrors.NewMalformedRequestError("Nenhum dado recebido", err.Error()))
		return
	}
	if !result.Valid() {
		details := make([]string, 0, len(result.Errors()))
		for _, desc := range result.Errors() {
			details = append(details, desc.String())
		}
		h.writeError(r, w, apperrors.NewMalformedRequestError(
			"Formato de dados inválido", strings.Join(details, "; ")))
		return
	}

	var req models.SubmitRequest
	if err := json.Unmarshal(body, &req); err != nil {
		h.writeError(r, w, apperrors.NewMalformedRequestError("Nenhum dado recebido", err.Error()))
		return
	}

	resp, appErr := h.service.Process(r.Context(), &req)
	if appErr != nil {
		h.writeError(r, w, appErr)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, models.HealthResponse{
		Status:    "healthy",
		Message:   "Server is running",
		Timestamp: time.Now().Format(time.RFC3339),
	})
}

// writeError maps a StandardError onto the wire. Only Message goes to the
// caller; Details stays in the log.
func (h *Handler) writeError(r *http.Request, w http.ResponseWriter, e *apperrors.StandardError) {
	fields := map[string]interface{}{
		"requestId": requestIDFromContext(r.Context()),
		"code":      e.Code,
	}
	if e.Details != "" {
		fields["details"] = e.Details
	}

	status := e.HTTPStatus()
	if status >= 500 {
		h.logger.Error("submission failed", fields)
	} else {
		h.logger.Warn("submission rejected", fields)
	}

	writeJSON(w, status, models.SubmitResponse{Success: false, Message: e.Message})
}
