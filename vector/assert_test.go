//go:build !estd_noassert

package vector

import (
	"errors"
	"math"
	"slices"
	"sync"
	"testing"

	"github.com/clktmr/estd/debug"
)

// widget can neither be copied once initialized nor be used without an id.
type widget struct {
	mu        sync.Mutex
	id        int
	destroyed map[int]int
}

func (w *widget) init(id int, destroyed map[int]int) {
	w.id, w.destroyed = id, destroyed
}

func (w *widget) Destroy() { w.destroyed[w.id]++ }

func widgetIDs(v *Vector[widget]) (s []int) {
	for i := range v.Len() {
		s = append(s, v.Index(i).id)
	}
	return s
}

func TestEmplaceUncopyable(t *testing.T) {
	var c debug.Counter
	defer debug.Scope(c.Handle)()

	destroyed := map[int]int{}
	v := New[widget](10)
	for i := range 20 {
		Construct2(v.EmplaceBack(), (*widget).init, i, destroyed)
		if want := max(0, i-9); c.Count != want {
			t.Fatalf("after %d calls: expected %d violations, got %d", i+1, want, c.Count)
		}
	}
	if v.Len() != 10 {
		t.Fatalf("expected size 10, got %d", v.Len())
	}
	if got := widgetIDs(v); !slices.Equal(got, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}) {
		t.Fatalf("unexpected ids %v", got)
	}
	if len(destroyed) != 0 {
		t.Fatalf("destroyed %v while filling", destroyed)
	}

	if pos := v.Erase(v.Begin()); pos != 0 {
		t.Fatalf("expected position 0, got %d", pos)
	}
	if got := widgetIDs(v); !slices.Equal(got, []int{1, 2, 3, 4, 5, 6, 7, 8, 9}) {
		t.Fatalf("unexpected ids %v", got)
	}
	if destroyed[0] != 1 || len(destroyed) != 1 {
		t.Fatalf("expected widget 0 to be destroyed once, got %v", destroyed)
	}
	checkInvariants(t, v)
}

func TestScopedHandler(t *testing.T) {
	var outer debug.Counter
	defer debug.Scope(outer.Handle)()

	var inner debug.Counter
	func() {
		defer debug.Scope(inner.Handle)()
		New[int](3).PopBack()
	}()

	if inner.Count != 1 {
		t.Fatalf("expected 1 violation in scope, got %d", inner.Count)
	}
	if outer.Count != 0 {
		t.Fatalf("outer handler called inside scope")
	}

	New[int](3).PopBack()
	if inner.Count != 1 || outer.Count != 1 {
		t.Fatalf("outer handler not restored: inner %d, outer %d", inner.Count, outer.Count)
	}
}

func TestPreconditions(t *testing.T) {
	full := func() *Vector[int] { return fromInts(3, 1, 2, 3) }
	empty := func() *Vector[int] { return New[int](3) }
	partial := func() *Vector[int] { return fromInts(3, 1, 2) }

	tests := map[string]struct {
		setup func() *Vector[int]
		op    func(v *Vector[int])
		want  []int
	}{
		"PushBackFull":     {full, func(v *Vector[int]) { v.PushBack(4) }, []int{1, 2, 3}},
		"PushBackZeroFull": {full, func(v *Vector[int]) { *v.PushBackZero() = 4 }, []int{1, 2, 3}},
		"EmplaceBackFull":  {full, func(v *Vector[int]) { v.EmplaceBack().Copy(4) }, []int{1, 2, 3}},
		"EmplaceFull":      {full, func(v *Vector[int]) { v.Emplace(0).Copy(4) }, []int{1, 2, 3}},
		"EmplacePastEnd":   {partial, func(v *Vector[int]) { v.Emplace(3).Copy(4) }, []int{1, 2}},
		"InsertFull":       {full, func(v *Vector[int]) { v.Insert(1, 4) }, []int{1, 2, 3}},
		"InsertNOverflow":  {partial, func(v *Vector[int]) { v.InsertN(0, 2, 4) }, []int{1, 2}},
		"InsertNNegative":  {partial, func(v *Vector[int]) { v.InsertN(0, -1, 4) }, []int{1, 2}},
		"InsertNHuge":      {partial, func(v *Vector[int]) { v.InsertN(0, math.MaxInt, 4) }, []int{1, 2}},
		"InsertSeqPastEnd": {partial, func(v *Vector[int]) { v.InsertSlice(5, []int{4}) }, []int{1, 2}},
		"PopBackEmpty":     {empty, func(v *Vector[int]) { v.PopBack() }, nil},
		"AtSize":           {partial, func(v *Vector[int]) { *v.At(v.Len()) = 4 }, []int{1, 2}},
		"AtNegative":       {partial, func(v *Vector[int]) { *v.At(-1) = 4 }, []int{1, 2}},
		"FrontEmpty":       {empty, func(v *Vector[int]) { *v.Front() = 4 }, nil},
		"BackEmpty":        {empty, func(v *Vector[int]) { *v.Back() = 4 }, nil},
		"ErasePastEnd":     {partial, func(v *Vector[int]) { v.Erase(3) }, []int{1, 2}},
		"EraseRangePast":   {partial, func(v *Vector[int]) { v.EraseRange(1, 3) }, []int{1, 2}},
		"EraseRangeSwap":   {partial, func(v *Vector[int]) { v.EraseRange(2, 1) }, []int{1, 2}},
		"CopyFromLarger": {partial, func(v *Vector[int]) {
			v.CopyFrom(fromInts(5, 5, 6, 7, 8))
		}, []int{1, 2}},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			var c debug.Counter
			defer debug.Scope(c.Handle)()

			v := tc.setup()
			tc.op(v)

			if c.Count != 1 {
				t.Errorf("expected one violation, got %d", c.Count)
			}
			if got := v.Slice(); !slices.Equal(got, tc.want) {
				t.Errorf("violating operation changed contents to %v", got)
			}
			checkInvariants(t, v)
		})
	}
}

func TestNoViolation(t *testing.T) {
	tests := map[string]func(v *Vector[int]){
		"EraseEnd":        func(v *Vector[int]) { v.Erase(v.End()) },
		"EraseEmptyEnd":   func(v *Vector[int]) { v.Clear(); v.Erase(v.End()) },
		"AssignClamped":   func(v *Vector[int]) { v.Assign(100, 1) },
		"AssignSeqLong":   func(v *Vector[int]) { v.AssignSlice(make([]int, 100)) },
		"InsertSeqLong":   func(v *Vector[int]) { v.InsertSlice(0, make([]int, 100)) },
		"CopyFromFitting": func(v *Vector[int]) { v.CopyFrom(fromInts(100, 1, 2, 3)) },
		"SelfCopy":        func(v *Vector[int]) { v.CopyFrom(v) },
		"InsertNZero":     func(v *Vector[int]) { v.PushBack(3); v.InsertN(v.End(), 0, 1) },
	}
	for name, op := range tests {
		t.Run(name, func(t *testing.T) {
			if err := debug.Catch(func() { op(fromInts(3, 1, 2)) }); err != nil {
				t.Fatalf("unexpected violation: %v", err)
			}
		})
	}
}

func TestCatchViolation(t *testing.T) {
	v := New[int](1)
	v.PushBack(1)
	err := debug.Catch(func() { v.PushBack(2) })
	if !errors.Is(err, debug.ErrAssertion) {
		t.Fatalf("expected assertion failure, got %v", err)
	}
	var f *debug.Failure
	if errors.As(err, &f) && debug.Active == debug.PolicyNoFile {
		if f.Test != "!full()" || f.Line == 0 {
			t.Errorf("unexpected failure context %+v", *f)
		}
	}
}
