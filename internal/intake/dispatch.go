// internal/intake/dispatch.go
package intake

import (
	"context"
	"fmt"

	"nextcard-intake/internal/common/logger"
	"nextcard-intake/internal/common/metrics"
	"nextcard-intake/internal/models"
	"nextcard-intake/internal/telegram"
)

// PhotoSlots is the fixed slot processing order.
var PhotoSlots = []string{"front", "back", "selfie"}

type SlotStatus string

const (
	SlotSent    SlotStatus = "sent"
	SlotSkipped SlotStatus = "skipped"
	SlotFailed  SlotStatus = "failed"
)

type Outcome string

const (
	OutcomeSent          Outcome = "sent"
	OutcomePartiallySent Outcome = "partially_sent"
	OutcomeFailed        Outcome = "failed"
)

// SlotResult records what happened to one photo slot during dispatch.
type SlotResult struct {
	Slot   string
	Status SlotStatus
	Err    error
}

// Result is the full dispatch report. Slots is empty when the text send
// failed, since no photo is attempted after that.
type Result struct {
	Outcome Outcome
	Slots   []SlotResult
}

// Succeeded reports overall success: the text message went through,
// regardless of per-slot photo failures.
func (r Result) Succeeded() bool {
	return r.Outcome != OutcomeFailed
}

// Dispatcher relays one formatted submission to Telegram: text first, then
// each photo slot best-effort in order.
type Dispatcher struct {
	api    telegram.API
	logger logger.Logger
}

func NewDispatcher(api telegram.API, log logger.Logger) *Dispatcher {
	return &Dispatcher{
		api:    api,
		logger: log.WithFields(map[string]interface{}{"component": "dispatcher"}),
	}
}

// Dispatch sends the message, then uploads each non-empty photo slot. A text
// failure aborts everything; a photo failure (decode or upload) is logged
// and the loop moves on to the next slot.
func (d *Dispatcher) Dispatch(ctx context.Context, message string, photos models.PhotoSet) Result {
	if err := d.api.SendMessage(ctx, message); err != nil {
		d.logger.WithError(err).Error("telegram message send failed", nil)
		return Result{Outcome: OutcomeFailed}
	}

	slots := make([]SlotResult, 0, len(PhotoSlots))
	failed := 0
	for _, slot := range PhotoSlots {
		result := d.sendSlot(ctx, slot, photos.Slot(slot))
		if result.Status == SlotFailed {
			failed++
		}
		metrics.PhotoUploads.WithLabelValues(slot, string(result.Status)).Inc()
		slots = append(slots, result)
	}

	outcome := OutcomeSent
	if failed > 0 {
		outcome = OutcomePartiallySent
	}

	d.logger.Info("submission dispatched", map[string]interface{}{
		"outcome":      outcome,
		"failedPhotos": failed,
	})
	return Result{Outcome: outcome, Slots: slots}
}

func (d *Dispatcher) sendSlot(ctx context.Context, slot, payload string) SlotResult {
	if payload == "" {
		return SlotResult{Slot: slot, Status: SlotSkipped}
	}

	data, err := DecodePhoto(payload)
	if err != nil {
		d.logger.WithError(err).Error("photo decode failed", map[string]interface{}{"slot": slot})
		return SlotResult{Slot: slot, Status: SlotFailed, Err: err}
	}

	filename := slot + "_id.jpg"
	caption := fmt.Sprintf("Foto do %s do documento", slot)
	if err := d.api.SendPhoto(ctx, filename, caption, data); err != nil {
		d.logger.WithError(err).Error("photo upload failed", map[string]interface{}{"slot": slot})
		return SlotResult{Slot: slot, Status: SlotFailed, Err: err}
	}

	d.logger.Info("photo uploaded", map[string]interface{}{"slot": slot})
	return SlotResult{Slot: slot, Status: SlotSent}
}
