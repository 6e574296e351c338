package extractor

import (
	"context"
	"errors"
	"fmt"

	"orderdesk/internal/core/ports"
)

var errNotConfigured = errors.New("no extraction service configured")

// Unavailable is used when EXTRACTOR_URL is empty. Receipt scanning fails; manual entry
// and JSON import keep working.
type Unavailable struct{}

func (Unavailable) Extract(context.Context, []byte, string) (ports.ExtractedOrder, error) {
	return ports.ExtractedOrder{}, fmt.Errorf("%w: %w", ports.ErrExtractionFailed, errNotConfigured)
}
