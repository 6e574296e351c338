package commands

import (
	"context"
	"errors"
	"fmt"

	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/core/ports"
)

// ExtractedOrderImporter is satisfied by ImportExtractedOrderCommandHandler.
type ExtractedOrderImporter interface {
	Handle(ctx context.Context, cmd ImportExtractedOrderCommand) (*order.Order, error)
}

// ScanReceiptCommandHandler sends the receipt image to the document extractor and imports
// the result. Extraction failures produce no order and wrap ports.ErrExtractionFailed.
type ScanReceiptCommandHandler struct {
	extractor ports.DocumentExtractor
	importer  ExtractedOrderImporter
	effects   *OrderEffects
}

func NewScanReceiptCommandHandler(
	extractor ports.DocumentExtractor,
	importer ExtractedOrderImporter,
	effects *OrderEffects,
) ScanReceiptCommandHandler {
	return ScanReceiptCommandHandler{
		extractor: extractor,
		importer:  importer,
		effects:   effects,
	}
}

func (h *ScanReceiptCommandHandler) Handle(ctx context.Context, cmd ScanReceiptCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	extracted, err := h.extractor.Extract(ctx, cmd.Image(), cmd.ContentType())
	if err != nil {
		if !errors.Is(err, ports.ErrExtractionFailed) {
			err = fmt.Errorf("%w: %w", ports.ErrExtractionFailed, err)
		}
		h.effects.Failed(ctx, "Could not read the receipt", err)
		return nil, err
	}

	importCmd, err := NewImportExtractedOrderCommand(cmd.Platform(), extracted)
	if err != nil {
		err = fmt.Errorf("%w: %w", ports.ErrExtractionFailed, err)
		h.effects.Failed(ctx, "The receipt contains no items", err)
		return nil, err
	}

	return h.importer.Handle(ctx, importCmd)
}
