package vector

//go:generate go run mkconstruct.go 5

// Constructor places a value into a single slot reserved by
// [Vector.EmplaceBack] or [Vector.Emplace]. It lets callers set up elements
// in place instead of building a value and copying it in, e.g. for types
// embedding a sync.Mutex. The vector may still move elements when shifting
// them, but never duplicates or re-initializes a live element.
//
//	type Widget struct {
//		mu    sync.Mutex
//		value int
//	}
//
//	func (w *Widget) init(value int) { w.value = value }
//
//	vector.Construct1(v.EmplaceBack(), (*Widget).init, 42)
//
// Exactly one construction call is expected per Constructor. The slot is
// already counted as live when the Constructor is returned; if it is dropped
// unused the element keeps the zero value of T.
type Constructor[T any] struct {
	slot *T
}

// Construct resets the slot to the zero value of T.
func (c Constructor[T]) Construct() *T {
	var zero T
	*c.slot = zero
	return c.slot
}

// Copy stores a copy of v in the slot.
func (c Constructor[T]) Copy(v T) *T {
	*c.slot = v
	return c.slot
}

// Init passes the slot to fn for in place initialization. The slot holds the
// zero value of T when fn is called.
func (c Constructor[T]) Init(fn func(*T)) *T {
	fn(c.slot)
	return c.slot
}

// Slot returns the reserved slot without initializing it.
func (c Constructor[T]) Slot() *T {
	return c.slot
}
