package fare

import "fmt"

// InvalidInputError signals a caller mistake: malformed or missing coordinates,
// or a missing vehicle category. Never retried.
type InvalidInputError struct {
	Reason string
}

// NewInvalidInputError creates a new InvalidInputError.
func NewInvalidInputError(reason string) *InvalidInputError {
	return &InvalidInputError{Reason: reason}
}

func (e *InvalidInputError) Error() string {
	return e.Reason
}

// ErrMissingCategory is returned when no vehicle category was selected.
var ErrMissingCategory = NewInvalidInputError("vehicle category is required")

// RouteNotFoundError signals that the routing provider found no viable route
// between the selected endpoints.
type RouteNotFoundError struct {
	OriginLabel      string
	DestinationLabel string
}

// NewRouteNotFoundError creates a new RouteNotFoundError.
func NewRouteNotFoundError(originLabel, destinationLabel string) *RouteNotFoundError {
	return &RouteNotFoundError{OriginLabel: originLabel, DestinationLabel: destinationLabel}
}

func (e *RouteNotFoundError) Error() string {
	return "no route available between the selected locations"
}

// ProviderTransportError signals a network, HTTP, or payload failure while
// talking to the routing provider. Shown to the user as a generic retry prompt.
type ProviderTransportError struct {
	Err error
}

// NewProviderTransportError wraps a transport-level failure.
func NewProviderTransportError(err error) *ProviderTransportError {
	return &ProviderTransportError{Err: err}
}

func (e *ProviderTransportError) Error() string {
	return "could not reach the routing service, please try again"
}

// Unwrap exposes the underlying transport failure for logging.
func (e *ProviderTransportError) Unwrap() error {
	return e.Err
}

// UnsupportedCategoryError signals a programmer error: the schedule engine was
// handed a category it has no schedule for.
type UnsupportedCategoryError struct {
	Category VehicleCategory
}

// NewUnsupportedCategoryError creates a new UnsupportedCategoryError.
func NewUnsupportedCategoryError(category VehicleCategory) *UnsupportedCategoryError {
	return &UnsupportedCategoryError{Category: category}
}

func (e *UnsupportedCategoryError) Error() string {
	return fmt.Sprintf("no fare schedule for vehicle category: %s", e.Category)
}
