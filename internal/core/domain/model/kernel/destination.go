package kernel

import (
	"fmt"

	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

// ErrDestinationIsNotConstructed is returned when validating a zero-value
// Destination that bypassed the NewDestination constructor.
var ErrDestinationIsNotConstructed = errs.NewValueIsRequiredError("Destination must be created via NewDestination")

// Destination is a value object describing where an order item must be
// delivered. Country and city are mandatory; state is optional since not
// every country has that administrative level.
//
// Example:
//
//	dest, err := kernel.NewDestination("Kenya", "", "Nairobi")
//	if err != nil {
//	    // handle error
//	}
type Destination struct {
	country string
	state   string
	city    string

	guard guard.ConstructorGuard
}

// NewDestination creates a validated delivery destination.
// Returns an error when country or city is empty.
func NewDestination(country, state, city string) (Destination, error) {
	if country == "" {
		return Destination{}, errs.NewValueIsRequiredError("country")
	}
	if city == "" {
		return Destination{}, errs.NewValueIsRequiredError("city")
	}

	return Destination{
		country: country,
		state:   state,
		city:    city,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Country returns the destination country.
func (d Destination) Country() string {
	return d.country
}

// State returns the destination state or region. May be empty.
func (d Destination) State() string {
	return d.state
}

// City returns the destination city.
func (d Destination) City() string {
	return d.city
}

// IsEqual compares two destinations field by field.
func (d Destination) IsEqual(other Destination) bool {
	return d.country == other.country && d.state == other.state && d.city == other.city
}

// String renders the destination as "city, state, country" with empty parts skipped.
func (d Destination) String() string {
	if d.state == "" {
		return fmt.Sprintf("%s, %s", d.city, d.country)
	}
	return fmt.Sprintf("%s, %s, %s", d.city, d.state, d.country)
}

// Validate checks that the Destination was created via NewDestination.
func (d Destination) Validate() error {
	return d.guard.Validate(ErrDestinationIsNotConstructed)
}
