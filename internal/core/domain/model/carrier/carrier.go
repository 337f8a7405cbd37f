// Package carrier holds the Carrier aggregate: a registered truck driver with
// a prepaid balance from which order fees are withheld.
package carrier

import (
	"errors"
	"fmt"
	"strings"

	"cargo/internal/core/domain/model/kernel"
	"cargo/internal/pkg/errs"
	"cargo/internal/pkg/guard"
)

// DefaultSignupBonus is credited to every carrier at registration unless
// configured otherwise.
const DefaultSignupBonus int64 = 99000

var (
	ErrFullNameIsRequired      = errs.NewValueIsRequiredError("full name")
	ErrVehicleIsRequired       = errs.NewValueIsRequiredError("vehicle")
	ErrCarrierIsNotConstructed = errors.New("Carrier must be created via NewCarrier constructor")
)

// Profile is the registration data of a carrier.
type Profile struct {
	ID       int64
	FullName string
	Vehicle  string
	Username string
	Phone    string
}

// Carrier is the aggregate root for a driver and its ledger balance.
//
// Business rules:
//   - balance is never negative
//   - a blocked carrier cannot accept orders or submit top-up proofs
//   - blocking never changes the balance
//
// The authoritative balance lives in the store; concurrent debits are
// serialized there with a conditional update, and the methods below mirror
// the same rules for in-process checks.
type Carrier struct {
	id       int64
	fullName string
	vehicle  string
	contact  kernel.Contact
	balance  int64
	status   kernel.AccountStatus
	guard    guard.ConstructorGuard
}

// NewCarrier creates an active carrier holding signupBonus.
func NewCarrier(p Profile, signupBonus int64) (*Carrier, error) {
	c := &Carrier{
		status: kernel.AccountActive,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setID(p.ID),
		c.setFullName(p.FullName),
		c.setVehicle(p.Vehicle),
		c.setContact(p.Username, p.Phone),
		c.setBalance(signupBonus),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// RestoreCarrier rebuilds a carrier from storage.
func RestoreCarrier(p Profile, balance int64, status kernel.AccountStatus) (*Carrier, error) {
	c := &Carrier{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setID(p.ID),
		c.setFullName(p.FullName),
		c.setVehicle(p.Vehicle),
		c.setContact(p.Username, p.Phone),
		c.setBalance(balance),
		status.Validate(),
	); err != nil {
		return nil, err
	}
	c.status = status

	return c, nil
}

func (c *Carrier) Validate() error {
	if c == nil {
		return ErrCarrierIsNotConstructed
	}
	return c.guard.Validate(ErrCarrierIsNotConstructed)
}

func (c *Carrier) IsEqual(other *Carrier) bool {
	return other != nil && c.id == other.id
}

func (c *Carrier) ID() int64 { return c.id }
func (c *Carrier) FullName() string { return c.fullName }
func (c *Carrier) Vehicle() string { return c.vehicle }
func (c *Carrier) Contact() kernel.Contact { return c.contact }
func (c *Carrier) Balance() int64 { return c.balance }
func (c *Carrier) Status() kernel.AccountStatus { return c.status }

func (c *Carrier) Profile() Profile {
	return Profile{
		ID:       c.id,
		FullName: c.fullName,
		Vehicle:  c.vehicle,
		Username: c.contact.Username(),
		Phone:    c.contact.Phone(),
	}
}

// EnsureActive returns a forbidden error for a blocked carrier.
func (c *Carrier) EnsureActive() error {
	if c.status.IsBlocked() {
		return errs.NewForbiddenError(c.id, "carrier is blocked")
	}
	return nil
}

// EnsureCanPay reports an InsufficientBalanceError when fee exceeds the balance.
func (c *Carrier) EnsureCanPay(fee int64) error {
	if c.balance < fee {
		return errs.NewInsufficientBalanceError(c.id, fee, c.balance)
	}
	return nil
}

// Credit adds a positive amount to the balance.
func (c *Carrier) Credit(amount int64) error {
	if err := ValidateAmount(amount); err != nil {
		return err
	}
	c.balance += amount
	return nil
}

// Debit withdraws a positive amount, leaving the balance untouched when it
// would go negative.
func (c *Carrier) Debit(amount int64) error {
	if err := ValidateAmount(amount); err != nil {
		return err
	}
	if err := c.EnsureCanPay(amount); err != nil {
		return err
	}
	c.balance -= amount
	return nil
}

func (c *Carrier) SetStatus(status kernel.AccountStatus) error {
	if err := status.Validate(); err != nil {
		return err
	}
	c.status = status
	return nil
}

// ValidateAmount checks a ledger movement amount.
func ValidateAmount(amount int64) error {
	if amount <= 0 {
		return errs.NewValueIsOutOfRangeError("amount", amount, 1, "unbounded")
	}
	return nil
}

func (c *Carrier) setID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsOutOfRangeError("carrier id", id, 1, "unbounded")
	}
	c.id = id
	return nil
}

func (c *Carrier) setFullName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrFullNameIsRequired
	}
	c.fullName = name
	return nil
}

func (c *Carrier) setVehicle(vehicle string) error {
	vehicle = strings.TrimSpace(vehicle)
	if vehicle == "" {
		return ErrVehicleIsRequired
	}
	c.vehicle = vehicle
	return nil
}

func (c *Carrier) setContact(username, phone string) error {
	contact, err := kernel.NewContact(username, phone)
	if err != nil {
		return err
	}
	c.contact = contact
	return nil
}

func (c *Carrier) setBalance(balance int64) error {
	if balance < 0 {
		return errs.NewValueIsOutOfRangeError("balance", balance, 0, "unbounded")
	}
	c.balance = balance
	return nil
}

// String is used in log lines.
func (c *Carrier) String() string {
	return fmt.Sprintf("carrier %d (%s)", c.id, c.fullName)
}
