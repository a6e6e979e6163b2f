package vector

// Construct1 initializes the slot of c in place by passing it to fn
// together with one argument. It returns the slot.
func Construct1[T, A1 any](c Constructor[T], fn func(*T, A1), a1 A1) *T {
	fn(c.slot, a1)
	return c.slot
}

// Construct2 initializes the slot of c in place by passing it to fn
// together with 2 arguments. It returns the slot.
func Construct2[T, A1, A2 any](c Constructor[T], fn func(*T, A1, A2), a1 A1, a2 A2) *T {
	fn(c.slot, a1, a2)
	return c.slot
}

// Construct3 initializes the slot of c in place by passing it to fn
// together with 3 arguments. It returns the slot.
func Construct3[T, A1, A2, A3 any](c Constructor[T], fn func(*T, A1, A2, A3), a1 A1, a2 A2, a3 A3) *T {
	fn(c.slot, a1, a2, a3)
	return c.slot
}

// Construct4 initializes the slot of c in place by passing it to fn
// together with 4 arguments. It returns the slot.
func Construct4[T, A1, A2, A3, A4 any](c Constructor[T], fn func(*T, A1, A2, A3, A4), a1 A1, a2 A2, a3 A3, a4 A4) *T {
	fn(c.slot, a1, a2, a3, a4)
	return c.slot
}

// Construct5 initializes the slot of c in place by passing it to fn
// together with 5 arguments. It returns the slot.
func Construct5[T, A1, A2, A3, A4, A5 any](c Constructor[T], fn func(*T, A1, A2, A3, A4, A5), a1 A1, a2 A2, a3 A3, a4 A4, a5 A5) *T {
	fn(c.slot, a1, a2, a3, a4, a5)
	return c.slot
}
