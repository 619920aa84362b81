package booking

import (
	"strings"

	"github.com/google/uuid"
)

// NewBookingReference generates a short client-facing reference in the
// BK-XXXXXXXX format.
func NewBookingReference() string {
	token := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", ""))
	return "BK-" + token[:8]
}
