package order

import "strings"

// Customer is pass-through contact data. Every field is optional.
type Customer struct {
	Name    string
	Phone   string
	Address string
	Notes   string
}

// NewCustomer trims all fields.
func NewCustomer(name, phone, address, notes string) Customer {
	return Customer{
		Name:    strings.TrimSpace(name),
		Phone:   strings.TrimSpace(phone),
		Address: strings.TrimSpace(address),
		Notes:   strings.TrimSpace(notes),
	}
}

func (c Customer) IsEmpty() bool {
	return c == Customer{}
}
