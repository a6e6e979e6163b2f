package vector_test

import (
	"fmt"
	"slices"

	"github.com/clktmr/estd/vector"
)

func Example() {
	var storage [10]int
	var v vector.Vector[int]
	v.Init(storage[:])

	for i := 9; i >= 0; i-- {
		v.PushBack(i)
	}
	slices.Sort(v.Slice())

	fmt.Println(v.Slice(), v.Len(), v.Cap())
	// Output: [0 1 2 3 4 5 6 7 8 9] 10 10
}

type sensor struct {
	name  string
	limit int
}

func (s *sensor) init(name string, limit int) {
	s.name, s.limit = name, limit
}

func ExampleConstruct2() {
	sensors := vector.New[sensor](4)
	vector.Construct2(sensors.EmplaceBack(), (*sensor).init, "temp", 80)
	vector.Construct2(sensors.Emplace(0), (*sensor).init, "fan", 3000)

	for _, s := range sensors.All() {
		fmt.Println(s.name, s.limit)
	}
	// Output:
	// fan 3000
	// temp 80
}

func ExampleVector_InsertN() {
	v := vector.New[int](10)
	v.AssignSlice([]int{1, 2, 3})
	v.InsertN(v.Begin()+1, 2, 9)
	fmt.Println(v.Slice())
	// Output: [1 9 9 2 3]
}
