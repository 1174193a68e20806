// internal/intake/image.go
package intake

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"nextcard-intake/internal/common/validation"
)

// MaxPhotoSizeMB is the ceiling enforced on every decoded photo.
const MaxPhotoSizeMB = 10

var ErrImageTooLarge = errors.New("imagem muito grande")

// DecodePhoto turns a transport-encoded photo payload into raw bytes. The
// payload is either bare base64 or a data URI whose prefix ends at the first
// comma. Size is enforced here; image content is never inspected.
func DecodePhoto(payload string) ([]byte, error) {
	raw := payload
	if i := strings.Index(payload, ","); i >= 0 {
		raw = payload[i+1:]
	}

	data, err := base64.StdEncoding.DecodeString(raw)
	if err != nil {
		return nil, fmt.Errorf("decode photo payload: %w", err)
	}

	if !validation.ImageSize(data, MaxPhotoSizeMB) {
		return nil, ErrImageTooLarge
	}
	return data, nil
}
