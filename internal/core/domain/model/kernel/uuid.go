package kernel

import (
	"orderdesk/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrUUIDIsNotConstructed is returned for the nil id, which no menu item, cart or line may
// carry.
var ErrUUIDIsNotConstructed = errs.NewValueIsRequiredError("id must be created via NewUUID, UUIDFromString or UUIDFromBytes")

// UUID is the key of a menu item and of a staging cart, and the menu item reference kept on
// every order line. Placeholder items created for unmatched receipt lines get a fresh one,
// so their lines never point at a catalog entry.
type UUID struct {
	id uuid.UUID
}

func NewUUID() UUID {
	return UUID{id: uuid.New()}
}

// UUIDFromString parses ids arriving in API paths and request bodies (cart ids, menu item
// ids). The braced and urn forms accepted by uuid.Parse work too.
func UUIDFromString(s string) (UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return UUID{}, errs.NewValueIsInvalidErrorWithCause("id", err)
	}
	return UUID{id: id}, nil
}

// UUIDFromBytes restores the binary id columns of menu_items and order_items.
func UUIDFromBytes(b []byte) (UUID, error) {
	id, err := uuid.FromBytes(b)
	if err != nil {
		return UUID{}, errs.NewValueIsInvalidErrorWithCause("id", err)
	}
	restored := UUID{id: id}
	if err = restored.Validate(); err != nil {
		return UUID{}, err
	}
	return restored, nil
}

func (u UUID) String() string {
	return u.id.String()
}

// Bytes exposes the wrapped value for the gorm columns.
func (u UUID) Bytes() uuid.UUID {
	return u.id
}

func (u UUID) IsEqual(other UUID) bool {
	return u.id == other.id
}

func (u UUID) Validate() error {
	if u.id == uuid.Nil {
		return ErrUUIDIsNotConstructed
	}
	return nil
}
