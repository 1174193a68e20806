// internal/models/submission.go
package models

// SchemaKind selects which required-field set and message template a
// submission is validated against.
type SchemaKind string

const (
	KindCardApplication SchemaKind = "card_application"
	KindJobApplication  SchemaKind = "job_application"
)

// Prefix returns the two-letter tracking-identifier prefix for the kind.
func (k SchemaKind) Prefix() string {
	if k == KindJobApplication {
		return "JH"
	}
	return "NC"
}

// PhotoSet carries the three base64-encoded document photo slots.
type PhotoSet struct {
	Front  string `json:"front"`
	Back   string `json:"back"`
	Selfie string `json:"selfie"`
}

// Slot returns the payload for a named slot, empty for unknown names.
func (p PhotoSet) Slot(name string) string {
	switch name {
	case "front":
		return p.Front
	case "back":
		return p.Back
	case "selfie":
		return p.Selfie
	}
	return ""
}

// Count returns how many slots carry a payload.
func (p PhotoSet) Count() int {
	n := 0
	for _, payload := range []string{p.Front, p.Back, p.Selfie} {
		if payload != "" {
			n++
		}
	}
	return n
}

// SubmitRequest is the wire shape of POST /submit.
type SubmitRequest struct {
	FormData map[string]string `json:"formData"`
	Photos   PhotoSet          `json:"photos"`
}

// SubmitResponse is the wire shape of every /submit response.
type SubmitResponse struct {
	Success       bool   `json:"success"`
	Message       string `json:"message"`
	ApplicationID string `json:"applicationId,omitempty"`
}

// HealthResponse is the wire shape of GET /health.
type HealthResponse struct {
	Status    string `json:"status"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}
