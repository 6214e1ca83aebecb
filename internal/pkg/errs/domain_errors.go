package errs

// Sentinel errors shared by the engine layer and the HTTP adapter.
var (
	// Catalog errors
	ErrProductNotFound = New("product not found")

	// Order errors
	ErrOrderNotFound = New("order not found")

	// Reservation errors
	ErrReservationNotFound = New("reservation not found")

	// Validation errors, used as a mark on domain errors
	ErrDomainValidation = New("domain validation error")
)
