package kernel

import (
	"strings"

	"cargo/internal/pkg/errs"
	"cargo/internal/pkg/guard"
)

// ErrContactIsNotConstructed is returned when a Contact was not created via NewContact.
var ErrContactIsNotConstructed = errs.NewValueIsRequiredError("contact must be created via NewContact")

// Contact is how a party can be reached outside of the chat identity: an
// optional chat username and a mandatory phone number.
type Contact struct {
	username string
	phone    string
	guard    guard.ConstructorGuard
}

// NewContact trims both values; phone is required, username may be empty
// because chat accounts are not obliged to have one.
func NewContact(username, phone string) (Contact, error) {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return Contact{}, errs.NewValueIsRequiredError("phone")
	}

	return Contact{
		username: strings.TrimSpace(username),
		phone:    phone,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Username returns the chat username, possibly empty.
func (c Contact) Username() string {
	return c.username
}

// Phone returns the phone number.
func (c Contact) Phone() string {
	return c.phone
}

// Validate reports whether the contact was built by NewContact.
func (c Contact) Validate() error {
	return c.guard.Validate(ErrContactIsNotConstructed)
}
