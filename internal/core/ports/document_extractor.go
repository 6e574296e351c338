package ports

import (
	"context"
	"errors"
)

// ErrExtractionFailed wraps every failure of the document extraction collaborator.
var ErrExtractionFailed = errors.New("document extraction failed")

// ExtractedItem is one (name, quantity, unit price) triple read from a receipt.
// UnitPrice is nil when the receipt shows no price.
type ExtractedItem struct {
	Name      string   `json:"name"`
	Quantity  int      `json:"quantity"`
	UnitPrice *float64 `json:"unit_price,omitempty"`
}

// ExtractedOrder is the structured result of scanning a receipt image.
type ExtractedOrder struct {
	Reference     string          `json:"reference,omitempty"`
	RequestedTime string          `json:"requested_time,omitempty"`
	CustomerName  string          `json:"customer_name,omitempty"`
	Phone         string          `json:"phone,omitempty"`
	Address       string          `json:"address,omitempty"`
	Notes         string          `json:"notes,omitempty"`
	Items         []ExtractedItem `json:"items"`
}

// DocumentExtractor turns a receipt image into structured order data. The extraction
// itself is opaque.
type DocumentExtractor interface {
	Extract(ctx context.Context, image []byte, contentType string) (ExtractedOrder, error)
}
