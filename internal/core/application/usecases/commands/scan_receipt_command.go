package commands

import (
	"errors"
	"strings"

	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/pkg/errs"
	"orderdesk/internal/pkg/guard"
)

// MaxReceiptImageBytes bounds the uploaded receipt image.
const MaxReceiptImageBytes = 10 << 20

var (
	ErrScanReceiptCommandIsNotConstructed = errors.New(
		"ScanReceiptCommand must be created via NewScanReceiptCommand constructor",
	)
)

// ScanReceiptCommand creates an order from a photographed receipt.
type ScanReceiptCommand struct { //nolint:recvcheck //using for validation
	platform    order.Platform
	image       []byte
	contentType string

	guard guard.ConstructorGuard
}

func NewScanReceiptCommand(platform order.Platform, image []byte, contentType string) (ScanReceiptCommand, error) {
	cmd := ScanReceiptCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setPlatform(platform),
		cmd.setImage(image, contentType),
	); err != nil {
		return ScanReceiptCommand{}, err
	}

	return cmd, nil
}

func (c ScanReceiptCommand) Validate() error {
	return c.guard.Validate(ErrScanReceiptCommandIsNotConstructed)
}

func (c ScanReceiptCommand) Platform() order.Platform {
	return c.platform
}

func (c ScanReceiptCommand) Image() []byte {
	return c.image
}

func (c ScanReceiptCommand) ContentType() string {
	return c.contentType
}

func (c *ScanReceiptCommand) setPlatform(platform order.Platform) error {
	if err := platform.Validate(); err != nil {
		return err
	}
	c.platform = platform
	return nil
}

func (c *ScanReceiptCommand) setImage(image []byte, contentType string) error {
	if len(image) == 0 {
		return errs.NewValueIsRequiredError("receipt image")
	}
	if len(image) > MaxReceiptImageBytes {
		return errs.NewValueIsOutOfRangeError("receipt image size", len(image), 1, MaxReceiptImageBytes)
	}

	contentType = strings.TrimSpace(contentType)
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	c.image = image
	c.contentType = contentType
	return nil
}
