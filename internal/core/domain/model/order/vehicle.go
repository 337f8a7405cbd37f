package order

import (
	"fmt"
	"strings"

	"cargo/internal/pkg/errs"
)

// VehicleClass is the truck size a requester asks for.
type VehicleClass string

const (
	VehicleLabo  VehicleClass = "Labo"
	VehicleBongo VehicleClass = "Bongo"
	VehicleIsuzu VehicleClass = "Isuzu"
)

// VehicleClasses lists the accepted classes in display order.
func VehicleClasses() []VehicleClass {
	return []VehicleClass{VehicleLabo, VehicleBongo, VehicleIsuzu}
}

// ParseVehicleClass accepts the class name case-insensitively.
func ParseVehicleClass(raw string) (VehicleClass, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", errs.NewValueIsRequiredError("vehicle class")
	}
	for _, v := range VehicleClasses() {
		if strings.EqualFold(string(v), raw) {
			return v, nil
		}
	}
	return "", errs.NewValueIsInvalidErrorWithCause("vehicle class", fmt.Errorf("%q is not one of Labo, Bongo, Isuzu", raw))
}

func (v VehicleClass) Validate() error {
	_, err := ParseVehicleClass(string(v))
	return err
}

func (v VehicleClass) String() string {
	return string(v)
}

// CreatorRole records who submitted the order.
type CreatorRole string

const (
	CreatedByRequester CreatorRole = "requester"
	CreatedByCarrier   CreatorRole = "carrier"
)

// ParseCreatorRole defaults an empty value to CreatedByRequester.
func ParseCreatorRole(raw string) (CreatorRole, error) {
	switch CreatorRole(strings.ToLower(strings.TrimSpace(raw))) {
	case "", CreatedByRequester:
		return CreatedByRequester, nil
	case CreatedByCarrier:
		return CreatedByCarrier, nil
	default:
		return "", errs.NewValueIsInvalidErrorWithCause("creator role", fmt.Errorf("%q is not requester or carrier", raw))
	}
}

func (r CreatorRole) Validate() error {
	if r != CreatedByRequester && r != CreatedByCarrier {
		return errs.NewValueIsInvalidErrorWithCause("creator role", fmt.Errorf("%q is not requester or carrier", string(r)))
	}
	return nil
}

func (r CreatorRole) String() string {
	return string(r)
}

// CanonicalFeeTiers are the fee amounts offered to the dispatcher as
// one-tap choices. Any positive amount is still accepted by SetFee.
func CanonicalFeeTiers() []int64 {
	return []int64{5000, 10000, 15000}
}
