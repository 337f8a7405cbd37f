package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"cargo/internal/core/domain/model/kernel"
	"cargo/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Draft carries the requester-supplied fields of a new order. The weight is
// passed as raw text because it arrives from free-form input.
type Draft struct {
	RequesterID int64
	CreatorRole CreatorRole
	Origin      string
	Destination string
	Cargo       string
	Weight      string
	Vehicle     string
	PickupDate  string
	Username    string
	Phone       string
}

// Order is the aggregate root for a single delivery request.
//
// Order follows these invariants:
//   - fee is nil exactly while status is AwaitingPrice
//   - carrierID is nil exactly while status is AwaitingPrice or Open
//   - the fee, once set, never changes
//
// The identity is assigned by the store on insert, so a freshly built order
// has ID 0 until AssignIdentity is called.
type Order struct {
	id          int64
	requesterID int64
	creatorRole CreatorRole
	route       kernel.Route
	cargo       string
	weight      kernel.Weight
	vehicle     VehicleClass
	pickupDate  string
	contact     kernel.Contact
	createdAt   time.Time
	fee         *int64
	status      Status
	carrierID   *int64

	isConstructed bool
}

// NewOrder validates a draft and creates an AwaitingPrice order with no fee
// and no carrier. All field errors are reported together.
//
// Example:
//
//	o, err := order.NewOrder(order.Draft{
//	    RequesterID: 42, Origin: "A", Destination: "B",
//	    Cargo: "furniture", Weight: "350", Vehicle: "Bongo", Phone: "+998901234567",
//	}, time.Now())
func NewOrder(d Draft, now time.Time) (*Order, error) {
	o := &Order{
		status:        AwaitingPrice,
		pickupDate:    strings.TrimSpace(d.PickupDate),
		createdAt:     now.UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		o.setRequester(d.RequesterID),
		o.setCreatorRole(d.CreatorRole),
		o.setRoute(d.Origin, d.Destination),
		o.setCargo(d.Cargo),
		o.setWeight(d.Weight),
		o.setVehicle(d.Vehicle),
		o.setContact(d.Username, d.Phone),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Snapshot is the flat persisted form of an Order.
type Snapshot struct {
	ID          int64
	RequesterID int64
	CreatorRole CreatorRole
	Origin      string
	Destination string
	Cargo       string
	WeightKg    kernel.Weight
	Vehicle     VehicleClass
	PickupDate  string
	Username    string
	Phone       string
	CreatedAt   time.Time
	Fee         *int64
	Status      Status
	CarrierID   *int64
}

// RestoreOrder rebuilds an order from storage and re-checks the lifecycle invariants.
func RestoreOrder(s Snapshot) (*Order, error) {
	route, routeErr := kernel.NewRoute(s.Origin, s.Destination)
	contact, contactErr := kernel.NewContact(s.Username, s.Phone)

	if err := errors.Join(
		routeErr,
		contactErr,
		s.WeightKg.Validate(),
		s.Vehicle.Validate(),
		s.CreatorRole.Validate(),
		s.Status.Validate(),
	); err != nil {
		return nil, err
	}
	if err := errors.Join(
		s.Status.ValidateCanHaveFee(s.Fee != nil),
		s.Status.ValidateCanHaveCarrier(s.CarrierID != nil),
	); err != nil {
		return nil, err
	}

	return &Order{
		id:            s.ID,
		requesterID:   s.RequesterID,
		creatorRole:   s.CreatorRole,
		route:         route,
		cargo:         s.Cargo,
		weight:        s.WeightKg,
		vehicle:       s.Vehicle,
		pickupDate:    s.PickupDate,
		contact:       contact,
		createdAt:     s.CreatedAt,
		fee:           copyInt64(s.Fee),
		status:        s.Status,
		carrierID:     copyInt64(s.CarrierID),
		isConstructed: true,
	}, nil
}

// Snapshot returns a detached copy of the order's state.
func (o *Order) Snapshot() Snapshot {
	return Snapshot{
		ID:          o.id,
		RequesterID: o.requesterID,
		CreatorRole: o.creatorRole,
		Origin:      o.route.Origin(),
		Destination: o.route.Destination(),
		Cargo:       o.cargo,
		WeightKg:    o.weight,
		Vehicle:     o.vehicle,
		PickupDate:  o.pickupDate,
		Username:    o.contact.Username(),
		Phone:       o.contact.Phone(),
		CreatedAt:   o.createdAt,
		Fee:         copyInt64(o.fee),
		Status:      o.status,
		CarrierID:   copyInt64(o.carrierID),
	}
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// AssignIdentity stores the id generated by the store. It may be called once.
func (o *Order) AssignIdentity(id int64) error {
	if id <= 0 {
		return errs.NewValueIsOutOfRangeError("order id", id, 1, "unbounded")
	}
	if o.id != 0 {
		return errs.NewValueIsInvalidErrorWithCause("order id", fmt.Errorf("order already has id %d", o.id))
	}
	o.id = id
	return nil
}

func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id != 0 && o.id == other.id
}

func (o *Order) ID() int64 { return o.id }
func (o *Order) RequesterID() int64 { return o.requesterID }
func (o *Order) CreatorRole() CreatorRole { return o.creatorRole }
func (o *Order) Route() kernel.Route { return o.route }
func (o *Order) Cargo() string { return o.cargo }
func (o *Order) Weight() kernel.Weight { return o.weight }
func (o *Order) Vehicle() VehicleClass { return o.vehicle }
func (o *Order) PickupDate() string { return o.pickupDate }
func (o *Order) Contact() kernel.Contact { return o.contact }
func (o *Order) CreatedAt() time.Time { return o.createdAt }
func (o *Order) Status() Status { return o.status }

// Fee returns the fee and whether it has been set.
func (o *Order) Fee() (int64, bool) {
	if o.fee == nil {
		return 0, false
	}
	return *o.fee, true
}

// Carrier returns the assigned carrier id and whether one is assigned.
func (o *Order) Carrier() (int64, bool) {
	if o.carrierID == nil {
		return 0, false
	}
	return *o.carrierID, true
}

// SetFee fixes the fee and opens the order for acceptance. A second call
// fails with ErrAlreadyPriced and leaves the first fee in place.
func (o *Order) SetFee(fee int64) error {
	if fee <= 0 {
		return errs.NewValueIsOutOfRangeError("fee", fee, 1, "unbounded")
	}

	newStatus, err := o.status.Price()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.fee = &fee
	return nil
}

// Take assigns the order to carrierID.
func (o *Order) Take(carrierID int64) error {
	if carrierID <= 0 {
		return errs.NewValueIsOutOfRangeError("carrier id", carrierID, 1, "unbounded")
	}

	newStatus, err := o.status.Take()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.carrierID = &carrierID
	return nil
}

// Complete marks the order Done on behalf of carrierID. A carrier other than
// the assigned one gets a forbidden error whatever the status.
func (o *Order) Complete(carrierID int64) error {
	if assigned, ok := o.Carrier(); ok && assigned != carrierID {
		return errs.NewForbiddenError(carrierID, fmt.Sprintf("order %d is assigned to another carrier", o.id))
	}

	newStatus, err := o.status.Complete()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

func (o *Order) setRequester(id int64) error {
	if id <= 0 {
		return errs.NewValueIsOutOfRangeError("requester id", id, 1, "unbounded")
	}
	o.requesterID = id
	return nil
}

func (o *Order) setCreatorRole(role CreatorRole) error {
	parsed, err := ParseCreatorRole(string(role))
	if err != nil {
		return err
	}
	o.creatorRole = parsed
	return nil
}

func (o *Order) setRoute(origin, destination string) error {
	route, err := kernel.NewRoute(origin, destination)
	if err != nil {
		return err
	}
	o.route = route
	return nil
}

func (o *Order) setCargo(cargo string) error {
	cargo = strings.TrimSpace(cargo)
	if cargo == "" {
		return errs.NewValueIsRequiredError("cargo")
	}
	o.cargo = cargo
	return nil
}

func (o *Order) setWeight(raw string) error {
	weight, err := kernel.ParseWeight(raw)
	if err != nil {
		return err
	}
	o.weight = weight
	return nil
}

func (o *Order) setVehicle(raw string) error {
	vehicle, err := ParseVehicleClass(raw)
	if err != nil {
		return err
	}
	o.vehicle = vehicle
	return nil
}

func (o *Order) setContact(username, phone string) error {
	contact, err := kernel.NewContact(username, phone)
	if err != nil {
		return err
	}
	o.contact = contact
	return nil
}

func copyInt64(v *int64) *int64 {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
