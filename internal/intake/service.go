// internal/intake/service.go
package intake

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"nextcard-intake/internal/common/apperrors"
	"nextcard-intake/internal/common/logger"
	"nextcard-intake/internal/common/metrics"
	"nextcard-intake/internal/common/validation"
	"nextcard-intake/internal/models"
)

// MessageDispatcher is what the service needs from the dispatcher; declared
// here for mocking.
type MessageDispatcher interface {
	Dispatch(ctx context.Context, message string, photos models.PhotoSet) Result
}

// Service drives one submission through schema selection, validation,
// formatting and dispatch.
type Service struct {
	dispatcher MessageDispatcher
	logger     logger.Logger
	now        func() time.Time
}

func NewService(dispatcher MessageDispatcher, log logger.Logger) *Service {
	return &Service{
		dispatcher: dispatcher,
		logger:     log.WithFields(map[string]interface{}{"component": "intake"}),
		now:        time.Now,
	}
}

// Process validates the submission and relays it. Validation failures
// short-circuit before any outbound call; the returned StandardError carries
// the caller-visible message.
func (s *Service) Process(ctx context.Context, req *models.SubmitRequest) (*models.SubmitResponse, *apperrors.StandardError) {
	form := req.FormData
	if form == nil {
		form = map[string]string{}
	}

	kind := KindOf(form)
	// Log the attempt without any submitted values.
	s.logger.Info("submission received", map[string]interface{}{"kind": kind})

	form = ApplyDefaults(kind, form)

	if missing := FirstMissing(form, RequiredFields(kind)); missing != nil {
		s.logger.Warn("required field missing", map[string]interface{}{"field": missing.Name})
		return nil, s.reject(apperrors.NewFieldValidationError(missing.Name, missing.Message))
	}

	if !validation.Email(form["email"]) {
		return nil, s.reject(apperrors.NewFieldValidationError("email", "Email inválido"))
	}
	if !validation.Phone(form["phone"]) {
		return nil, s.reject(apperrors.NewFieldValidationError("phone", "Número de telefone inválido"))
	}
	if kind == models.KindCardApplication && !validation.BirthdateAt(form["birthdate"], s.now()) {
		return nil, s.reject(apperrors.NewFieldValidationError("birthdate", "Você deve ter pelo menos 18 anos"))
	}

	for _, slot := range PhotoSlots {
		if req.Photos.Slot(slot) == "" {
			return nil, s.reject(apperrors.NewPhotoMissingError(slot))
		}
	}

	var message string
	switch kind {
	case models.KindJobApplication:
		message = FormatJob(BuildJob(form), req.Photos.Count())
	default:
		message = FormatCard(BuildCard(form), req.Photos.Count())
	}

	result := s.dispatcher.Dispatch(ctx, message, req.Photos)
	metrics.SubmissionsTotal.WithLabelValues(string(kind), string(result.Outcome)).Inc()

	if !result.Succeeded() {
		s.logger.Error("dispatch failed", map[string]interface{}{"kind": kind})
		return nil, apperrors.NewTelegramSendError(nil)
	}

	id, err := NewTrackingID(kind)
	if err != nil {
		return nil, apperrors.NewInternalError(fmt.Errorf("generate tracking id: %w", err))
	}

	s.logger.Info("submission accepted", map[string]interface{}{
		"applicationId": id,
		"outcome":       result.Outcome,
	})

	return &models.SubmitResponse{
		Success:       true,
		Message:       "Dados enviados com sucesso",
		ApplicationID: id,
	}, nil
}

func (s *Service) reject(e *apperrors.StandardError) *apperrors.StandardError {
	metrics.ValidationFailures.WithLabelValues(string(e.Code)).Inc()
	return e
}

// NewTrackingID generates the caller-facing identifier: the kind's two-letter
// prefix plus 8 uppercase hex characters from a crypto source. Uniqueness is
// probabilistic; ids are never persisted or checked.
func NewTrackingID(kind models.SchemaKind) (string, error) {
	var buf [4]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return "", err
	}
	return kind.Prefix() + strings.ToUpper(hex.EncodeToString(buf[:])), nil
}
