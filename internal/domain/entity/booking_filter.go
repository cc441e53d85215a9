package entity

// BookingFilter is a domain-level filter for querying bookings.
// Used by repository layer to avoid coupling with delivery DTOs.
type BookingFilter struct {
	StartAt    string // Format: YYYY-MM-DD
	EndAt      string // Format: YYYY-MM-DD
	Status     string // Booking status
	CenterName string // Filter by center name (ILIKE)
}
