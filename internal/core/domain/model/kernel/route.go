package kernel

import (
	"errors"
	"fmt"
	"strings"

	"cargo/internal/pkg/errs"
	"cargo/internal/pkg/guard"
)

// ErrRouteIsNotConstructed is returned when a Route was not created via NewRoute.
var ErrRouteIsNotConstructed = errs.NewValueIsRequiredError("route must be created via NewRoute")

// Route is the pair of free-text addresses a delivery request travels between.
// Both ends are trimmed and must be non-empty. No geocoding or route
// optimization is performed.
type Route struct {
	origin      string
	destination string
	guard       guard.ConstructorGuard
}

// NewRoute validates and creates a Route.
//
// Example:
//
//	route, err := kernel.NewRoute("Tashkent, Chilonzor", "Samarkand bazaar")
func NewRoute(origin, destination string) (Route, error) {
	origin = strings.TrimSpace(origin)
	destination = strings.TrimSpace(destination)

	var originErr, destinationErr error
	if origin == "" {
		originErr = errs.NewValueIsRequiredError("origin")
	}
	if destination == "" {
		destinationErr = errs.NewValueIsRequiredError("destination")
	}
	if err := errors.Join(originErr, destinationErr); err != nil {
		return Route{}, err
	}

	return Route{
		origin:      origin,
		destination: destination,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Origin returns where the cargo is picked up.
func (r Route) Origin() string {
	return r.origin
}

// Destination returns where the cargo is delivered.
func (r Route) Destination() string {
	return r.destination
}

// Validate reports whether the route was built by NewRoute.
func (r Route) Validate() error {
	return r.guard.Validate(ErrRouteIsNotConstructed)
}

// String implements fmt.Stringer.
func (r Route) String() string {
	return fmt.Sprintf("%s -> %s", r.origin, r.destination)
}
