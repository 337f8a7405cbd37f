package kernel

import (
	"fmt"

	"cargo/internal/pkg/errs"
)

// AccountStatus gates what a carrier or requester may do. It never affects
// a carrier's balance.
type AccountStatus string

const (
	AccountActive  AccountStatus = "active"
	AccountBlocked AccountStatus = "blocked"
)

// ParseAccountStatus accepts the persisted/wire representation.
func ParseAccountStatus(s string) (AccountStatus, error) {
	status := AccountStatus(s)
	if err := status.Validate(); err != nil {
		return "", err
	}
	return status, nil
}

// Validate rejects anything other than active and blocked.
func (s AccountStatus) Validate() error {
	switch s {
	case AccountActive, AccountBlocked:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not active or blocked", string(s)))
	}
}

// IsBlocked is a convenience for the common gate check.
func (s AccountStatus) IsBlocked() bool {
	return s == AccountBlocked
}

func (s AccountStatus) String() string {
	return string(s)
}
