package commands

import "cargo/internal/pkg/errs"

func requirePositiveID(name string, id int64) error {
	if id <= 0 {
		return errs.NewValueIsOutOfRangeError(name, id, 1, "unbounded")
	}
	return nil
}

func requirePositiveAmount(name string, amount int64) error {
	if amount <= 0 {
		return errs.NewValueIsOutOfRangeError(name, amount, 1, "unbounded")
	}
	return nil
}
