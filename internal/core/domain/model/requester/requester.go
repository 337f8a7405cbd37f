// Package requester holds the Requester aggregate: a customer who submits
// delivery requests.
package requester

import (
	"errors"
	"strings"

	"cargo/internal/core/domain/model/kernel"
	"cargo/internal/pkg/errs"
	"cargo/internal/pkg/guard"
)

var ErrRequesterIsNotConstructed = errors.New("Requester must be created via NewRequester constructor")

type Profile struct {
	ID       int64
	FullName string
	Username string
	Phone    string
}

type Requester struct {
	id       int64
	fullName string
	contact  kernel.Contact
	status   kernel.AccountStatus
	guard    guard.ConstructorGuard
}

// NewRequester creates an active requester.
func NewRequester(p Profile) (*Requester, error) {
	return RestoreRequester(p, kernel.AccountActive)
}

func RestoreRequester(p Profile, status kernel.AccountStatus) (*Requester, error) {
	r := &Requester{guard: guard.NewConstructorGuard()}

	var idErr, nameErr error
	if p.ID <= 0 {
		idErr = errs.NewValueIsOutOfRangeError("requester id", p.ID, 1, "unbounded")
	}
	r.id = p.ID
	r.fullName = strings.TrimSpace(p.FullName)
	if r.fullName == "" {
		nameErr = errs.NewValueIsRequiredError("full name")
	}
	contact, contactErr := kernel.NewContact(p.Username, p.Phone)
	r.contact = contact
	r.status = status

	if err := errors.Join(idErr, nameErr, contactErr, status.Validate()); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *Requester) Validate() error {
	if r == nil {
		return ErrRequesterIsNotConstructed
	}
	return r.guard.Validate(ErrRequesterIsNotConstructed)
}

func (r *Requester) ID() int64 { return r.id }
func (r *Requester) FullName() string { return r.fullName }
func (r *Requester) Contact() kernel.Contact { return r.contact }
func (r *Requester) Status() kernel.AccountStatus { return r.status }

func (r *Requester) Profile() Profile {
	return Profile{
		ID:       r.id,
		FullName: r.fullName,
		Username: r.contact.Username(),
		Phone:    r.contact.Phone(),
	}
}

// EnsureActive returns a forbidden error for a blocked requester.
func (r *Requester) EnsureActive() error {
	if r.status.IsBlocked() {
		return errs.NewForbiddenError(r.id, "requester is blocked")
	}
	return nil
}

func (r *Requester) SetStatus(status kernel.AccountStatus) error {
	if err := status.Validate(); err != nil {
		return err
	}
	r.status = status
	return nil
}
