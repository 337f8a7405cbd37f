package services

import (
	"cargo/internal/core/domain/model/carrier"
	"cargo/internal/core/domain/model/order"
	"cargo/internal/pkg/errs"
)

// OrderAcceptor applies the acceptance rules to an in-memory order and
// carrier. Its verdict is advisory: the store re-checks status and balance
// with conditional updates, so a stale read can only cause a later refusal,
// never a double assignment.
//
// Checks run in this order:
//   - the carrier must be active (Forbidden)
//   - the order must be Open (OrderUnavailable)
//   - the balance must cover the fee (InsufficientBalance)
//
// Example usage:
//
//	fee, err := services.NewOrderAcceptor().Accept(o, c)
//	if errors.Is(err, errs.ErrOrderUnavailable) {
//	    // someone else was faster
//	}
type OrderAcceptor struct{}

func NewOrderAcceptor() OrderAcceptor {
	return OrderAcceptor{}
}

// Accept assigns o to c and returns the fee the carrier must pay.
func (a OrderAcceptor) Accept(o *order.Order, c *carrier.Carrier) (int64, error) {
	if err := o.Validate(); err != nil {
		return 0, err
	}
	if err := c.Validate(); err != nil {
		return 0, err
	}

	if err := c.EnsureActive(); err != nil {
		return 0, err
	}

	fee, priced := o.Fee()
	if o.Status() != order.Open || !priced {
		return 0, errs.NewOrderUnavailableError(o.ID())
	}

	if err := c.EnsureCanPay(fee); err != nil {
		return 0, err
	}

	if err := o.Take(c.ID()); err != nil {
		return 0, errs.NewOrderUnavailableErrorWithCause(o.ID(), err)
	}

	return fee, nil
}
