package vector

// Reservation carries a requested capacity for WithReservation.
type Reservation struct {
	capacity int
}

// Reserve returns a reservation request for capacity slots.
//
//	v, err := vector.WithReservation[string](vector.Reserve(16))
func Reserve(capacity int) Reservation {
	return Reservation{capacity: capacity}
}

// Capacity returns the requested capacity.
func (r Reservation) Capacity() int {
	return r.capacity
}
