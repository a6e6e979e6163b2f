// Package vector provides a sequence container with a fixed capacity that
// never allocates after it has been bound to its storage.
//
// The storage is usually an array owned by the caller, which keeps the
// elements inline in the caller's struct:
//
//	type Mailbox struct {
//		storage [16]Message
//		queue   vector.Vector[Message]
//	}
//
//	func (m *Mailbox) Init() { m.queue.Init(m.storage[:]) }
//
// Preconditions are checked with [debug.Assert]. If the installed handler
// returns, the violating operation is skipped.
//
// Elements are relocated with copy when the vector shifts them. Element types
// must therefore not hold pointers into their own storage.
package vector

import (
	"iter"
	"slices"

	"github.com/clktmr/estd/debug"
)

// Destroyer is implemented by element types that need to be notified when
// they are removed from a Vector. Destroy is called exactly once per live
// element, relocations don't count as removal.
type Destroyer interface {
	Destroy()
}

// Vector is a fixed-capacity sequence. The zero value has capacity zero, use
// [Vector.Init] or [New] to bind it to storage.
//
// A Vector must not be copied after first use.
type Vector[T any] struct {
	data     []T
	size     int
	destroys bool
}

// New returns an empty vector with its own storage for capacity elements.
func New[T any](capacity int) *Vector[T] {
	return new(Vector[T]).Init(make([]T, capacity))
}

// NewFilled returns a vector of the given capacity holding min(n, capacity)
// copies of value.
func NewFilled[T any](capacity, n int, value T) *Vector[T] {
	v := New[T](capacity)
	v.Assign(n, value)
	return v
}

// Init binds v to storage, len(storage) becomes the capacity. Elements held
// before are destroyed, storage is reset to zero values.
func (v *Vector[T]) Init(storage []T) *Vector[T] {
	v.Clear()
	clear(storage)
	v.data = storage[:len(storage):len(storage)]
	v.size = 0
	_, v.destroys = any((*T)(nil)).(Destroyer)
	return v
}

// Clone returns a copy of v with its own storage of the same capacity.
func (v *Vector[T]) Clone() *Vector[T] {
	return New[T](v.Cap()).CopyFrom(v)
}

func (v *Vector[T]) Len() int    { return v.size }
func (v *Vector[T]) Cap() int    { return len(v.data) }
func (v *Vector[T]) Empty() bool { return v.size == 0 }
func (v *Vector[T]) Full() bool  { return v.size == len(v.data) }

// Begin and End return the positions delimiting the live elements. Positions
// are indices, End() - Begin() == Len().
func (v *Vector[T]) Begin() int { return 0 }
func (v *Vector[T]) End() int   { return v.size }

// Index returns the slot at i without checking it against Len.
func (v *Vector[T]) Index(i int) *T {
	return &v.data[i]
}

// At returns the element at i.
func (v *Vector[T]) At(i int) *T {
	if !debug.Assert(uint(i) < uint(v.size), "index < size()") {
		return new(T)
	}
	return &v.data[i]
}

// Front returns the first element.
func (v *Vector[T]) Front() *T {
	if !debug.Assert(v.size > 0, "!empty()") {
		return new(T)
	}
	return &v.data[0]
}

// Back returns the last element.
func (v *Vector[T]) Back() *T {
	if !debug.Assert(v.size > 0, "!empty()") {
		return new(T)
	}
	return &v.data[v.size-1]
}

// Slice returns the live elements. The result shares storage with v and is
// valid until the next operation shifting or removing elements. Its capacity
// is limited, so append never writes into v.
func (v *Vector[T]) Slice() []T {
	return v.data[:v.size:v.size]
}

// PushBackZero appends the zero value of T and returns it.
func (v *Vector[T]) PushBackZero() *T {
	return v.EmplaceBack().Construct()
}

// PushBack appends a copy of value.
func (v *Vector[T]) PushBack(value T) {
	v.EmplaceBack().Copy(value)
}

// EmplaceBack reserves the slot past the last element and returns a
// Constructor for it. Len is increased immediately.
func (v *Vector[T]) EmplaceBack() Constructor[T] {
	if !debug.Assert(v.size < len(v.data), "!full()") {
		return detached[T]()
	}
	slot := &v.data[v.size]
	v.size++
	return Constructor[T]{slot}
}

// Emplace shifts the elements at pos and after up by one slot and returns a
// Constructor for the vacated slot. Len is increased immediately.
func (v *Vector[T]) Emplace(pos int) Constructor[T] {
	if !debug.Assert(v.size < len(v.data), "!full()") || !v.validPosition(pos) {
		return detached[T]()
	}
	v.shiftUp(pos, 1)
	return Constructor[T]{&v.data[pos]}
}

// Insert inserts a copy of value before pos and returns pos.
func (v *Vector[T]) Insert(pos int, value T) int {
	v.Emplace(pos).Copy(value)
	return pos
}

// InsertN inserts n copies of value before pos.
func (v *Vector[T]) InsertN(pos, n int, value T) {
	if !debug.Assert(n >= 0 && n <= len(v.data)-v.size, "size() + n <= max_size()") || !v.validPosition(pos) {
		return
	}
	v.shiftUp(pos, n)
	for i := range n {
		v.data[pos+i] = value
	}
}

// InsertSeq inserts the values of seq before pos, keeping their order, until
// v is full. It returns pos.
func (v *Vector[T]) InsertSeq(pos int, seq iter.Seq[T]) int {
	if !v.validPosition(pos) {
		return pos
	}
	p := pos
	for value := range seq {
		if v.Full() {
			break
		}
		v.Insert(p, value)
		p++
	}
	return pos
}

// InsertSlice is like InsertSeq for the elements of src, which must not share
// storage with v.
func (v *Vector[T]) InsertSlice(pos int, src []T) int {
	return v.InsertSeq(pos, slices.Values(src))
}

// PopBack removes the last element.
func (v *Vector[T]) PopBack() {
	if !debug.Assert(v.size > 0, "size() > 0") {
		return
	}
	v.size--
	v.destroy(v.size, v.size+1)
}

// Erase removes the element at pos and returns the position of its
// successor, which is pos. Erasing End() is a no-op.
func (v *Vector[T]) Erase(pos int) int {
	if pos == v.size {
		return pos
	}
	if !debug.Assert(uint(pos) < uint(v.size), "position < end()") {
		return pos
	}
	v.destroy(pos, pos+1)
	v.shiftDown(pos, 1)
	return pos
}

// EraseRange removes the elements in [first, last) and returns first.
func (v *Vector[T]) EraseRange(first, last int) int {
	if !debug.Assert(last <= v.size, "last <= end()") ||
		!debug.Assert(0 <= first && first <= last, "first <= last") {
		return first
	}
	if first == last {
		return first
	}
	v.destroy(first, last)
	v.shiftDown(first, last-first)
	return first
}

// Clear removes all elements.
func (v *Vector[T]) Clear() {
	v.destroy(0, v.size)
	v.size = 0
}

// Assign replaces the contents with min(n, Cap()) copies of value.
func (v *Vector[T]) Assign(n int, value T) {
	v.Clear()
	for range min(max(n, 0), len(v.data)) {
		v.PushBack(value)
	}
}

// AssignSeq replaces the contents with the values of seq, stopping when v
// is full.
func (v *Vector[T]) AssignSeq(seq iter.Seq[T]) {
	v.Clear()
	for value := range seq {
		if v.Full() {
			break
		}
		v.PushBack(value)
	}
}

// AssignSlice is like AssignSeq for the elements of src.
func (v *Vector[T]) AssignSlice(src []T) {
	v.AssignSeq(slices.Values(src))
}

// CopyFrom makes v hold copies of the elements of other and returns v. The
// capacity of v must be at least other.Len(). Copying a vector onto itself
// doesn't touch any element.
func (v *Vector[T]) CopyFrom(other *Vector[T]) *Vector[T] {
	if v == other || v.sharesStorage(other) {
		return v
	}
	if !debug.Assert(len(v.data) >= other.size, "max_size() >= other.size()") {
		return v
	}
	if v.size > other.size {
		v.destroy(other.size, v.size)
	}
	copy(v.data, other.data[:other.size])
	v.size = other.size
	return v
}

// Swap exchanges the contents of v and other. No element is copied or
// destroyed, the vectors exchange their storage.
func (v *Vector[T]) Swap(other *Vector[T]) {
	v.data, other.data = other.data, v.data
	v.size, other.size = other.size, v.size
}

// Swap exchanges the contents of a and b.
func Swap[T any](a, b *Vector[T]) {
	a.Swap(b)
}

// All returns an iterator over positions and values of the live elements.
func (v *Vector[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(i, v.data[i]) {
				return
			}
		}
	}
}

// Values returns an iterator over the live elements.
func (v *Vector[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(v.data[i]) {
				return
			}
		}
	}
}

// Backward returns an iterator over positions and values of the live
// elements, starting at the last one.
func (v *Vector[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := v.size - 1; i >= 0; i-- {
			if !yield(i, v.data[i]) {
				return
			}
		}
	}
}

// Pointers returns an iterator over positions and slots of the live
// elements, allowing them to be modified in place.
func (v *Vector[T]) Pointers() iter.Seq2[int, *T] {
	return func(yield func(int, *T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(i, &v.data[i]) {
				return
			}
		}
	}
}

func (v *Vector[T]) validPosition(pos int) bool {
	return debug.Assert(uint(pos) <= uint(v.size), "position <= end()")
}

func (v *Vector[T]) sharesStorage(other *Vector[T]) bool {
	return len(v.data) > 0 && len(other.data) > 0 && &v.data[0] == &other.data[0]
}

// shiftUp relocates [pos, size) by n slots towards the end and resets the
// vacated slots. The caller checks capacity.
func (v *Vector[T]) shiftUp(pos, n int) {
	copy(v.data[pos+n:v.size+n], v.data[pos:v.size])
	clear(v.data[pos : pos+n])
	v.size += n
}

// shiftDown relocates [pos+n, size) onto pos. The n slots vacated at the end
// are reset without being destroyed.
func (v *Vector[T]) shiftDown(pos, n int) {
	copy(v.data[pos:], v.data[pos+n:v.size])
	clear(v.data[v.size-n : v.size])
	v.size -= n
}

// destroy ends the lifetime of the elements in [from, to) and resets their
// slots.
func (v *Vector[T]) destroy(from, to int) {
	if v.destroys {
		for i := from; i < to; i++ {
			any(&v.data[i]).(Destroyer).Destroy()
		}
	}
	clear(v.data[from:to])
}

func detached[T any]() Constructor[T] {
	return Constructor[T]{new(T)}
}
