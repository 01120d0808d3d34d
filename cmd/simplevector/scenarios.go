package main

import (
	stderrors "errors"
	"fmt"
	"strings"

	"github.com/wippyai/simplevector/errors"
	"github.com/wippyai/simplevector/vector"
)

// temporarySize is the element count of the vectors built by the
// move-from-temporary scenarios.
const temporarySize = 1_000_000

type scenario struct {
	name string
	desc string
	run  func(c *checker)
}

var scenarios = []scenario{
	{"basic", "construction, access, clear and resize", scenarioBasic},
	{"modify", "push, insert, pop, erase, swap and comparison", scenarioModify},
	{"reserve-constructor", "construct from a reservation request", scenarioReserveConstructor},
	{"reserve-method", "grow capacity with Reserve", scenarioReserveMethod},
	{"temporary-constructor", "move-construct from a temporary", scenarioTemporaryConstructor},
	{"temporary-assign", "move-assign from a temporary", scenarioTemporaryAssign},
	{"named-move-constructor", "move-construct from a named vector", scenarioNamedMoveConstructor},
	{"named-move-assign", "move-assign from a named vector", scenarioNamedMoveAssign},
	{"noncopyable-move-constructor", "move a vector of non-copyable items", scenarioNoncopyableMoveConstructor},
	{"noncopyable-push-back", "push non-copyable items", scenarioNoncopyablePushBack},
	{"noncopyable-insert", "insert non-copyable items", scenarioNoncopyableInsert},
	{"noncopyable-erase", "erase non-copyable items", scenarioNoncopyableErase},
}

func findScenario(name string) (scenario, bool) {
	for _, s := range scenarios {
		if s.name == name {
			return s, true
		}
	}
	return scenario{}, false
}

// runScenario runs s and returns its failures joined into one error.
func runScenario(s scenario) error {
	c := &checker{}
	s.run(c)
	return c.err()
}

// checker collects expectation failures of one scenario.
type checker struct {
	failures []string
}

func (c *checker) expect(ok bool, format string, args ...any) {
	if !ok {
		c.failures = append(c.failures, fmt.Sprintf(format, args...))
	}
}

// must records err and reports whether the scenario may continue.
func (c *checker) must(err error) bool {
	if err != nil {
		c.failures = append(c.failures, err.Error())
		return false
	}
	return true
}

type shaped interface {
	Len() int
	Cap() int
}

func (c *checker) shape(v shaped, size, capacity int) {
	c.expect(v.Len() == size && v.Cap() == capacity,
		"len/cap = %d/%d, want %d/%d", v.Len(), v.Cap(), size, capacity)
}

func (c *checker) err() error {
	if len(c.failures) == 0 {
		return nil
	}
	return stderrors.New(strings.Join(c.failures, "; "))
}

func ints(xs ...int) *vector.Vector[int] {
	v, err := vector.Of(xs...)
	if err != nil {
		panic(err)
	}
	return v
}

func scenarioBasic(c *checker) {
	// Default construction.
	v := vector.New[int]()
	c.shape(v, 0, 0)
	c.expect(v.IsEmpty(), "default vector should be empty")

	// Sized construction.
	sized, err := vector.WithSize[int](5)
	if !c.must(err) {
		return
	}
	c.shape(sized, 5, 5)
	for i, x := range sized.All() {
		c.expect(x == 0, "sized[%d] = %d, want 0", i, x)
	}

	// Construction with a fill value.
	filled, err := vector.Filled(3, 42)
	if !c.must(err) {
		return
	}
	c.shape(filled, 3, 3)
	for i, x := range filled.All() {
		c.expect(x == 42, "filled[%d] = %d, want 42", i, x)
	}

	// Construction from a list.
	listed := ints(1, 2, 3)
	c.shape(listed, 3, 3)
	c.expect(listed.Get(2) == 3, "listed[2] = %d, want 3", listed.Get(2))

	// Checked access.
	x, err := listed.At(2)
	c.expect(err == nil && x == 3, "At(2) = %d, %v", x, err)
	_, err = listed.At(3)
	c.expect(stderrors.Is(err, errors.ErrOutOfRange), "At(3) should fail out of range, got %v", err)

	// Clear keeps the capacity.
	listed.Clear()
	c.shape(listed, 0, 3)

	// Resize in all three directions.
	r := ints(1, 2, 3)
	if !c.must(r.Resize(7)) {
		return
	}
	c.shape(r, 7, 7)
	c.expect(r.Get(6) == 0, "resized tail should be zero")
	if !c.must(r.Resize(4)) {
		return
	}
	c.shape(r, 4, 7)
	if !c.must(r.Resize(5)) {
		return
	}
	c.shape(r, 5, 7)
	if !c.must(r.Resize(0)) {
		return
	}
	c.shape(r, 0, 7)

	// Iteration over an empty vector yields nothing.
	for range vector.New[int]().All() {
		c.expect(false, "empty vector yielded an element")
	}
}

func scenarioModify(c *checker) {
	v := vector.New[int]()
	for i, want := range []struct{ size, capacity int }{{1, 1}, {2, 2}, {3, 4}} {
		if !c.must(v.PushBack(i + 1)) {
			return
		}
		c.shape(v, want.size, want.capacity)
	}
	if !c.must(v.Resize(2)) {
		return
	}
	c.expect(vector.Equal(v, ints(1, 2)), "after resize got %v, want [1 2]", v)

	w := ints(10, 20, 30)
	pos, err := w.Insert(w.Begin()+1, 99)
	if !c.must(err) {
		return
	}
	c.expect(pos == 1, "Insert returned %d, want 1", pos)
	c.expect(vector.Equal(w, ints(10, 99, 20, 30)), "after insert got %v", w)

	pos = w.Erase(w.Begin() + 2)
	c.expect(pos == 2 && w.Get(pos) == 30, "Erase returned %d", pos)
	c.expect(vector.Equal(w, ints(10, 99, 30)), "after erase got %v", w)

	w.PopBack()
	c.expect(vector.Equal(w, ints(10, 99)), "after pop got %v", w)

	// Swap exchanges contents and capacities.
	a, b := ints(1, 2, 3), ints(4)
	a.Swap(b)
	c.shape(a, 1, 1)
	c.shape(b, 3, 3)

	// Comparison operators.
	c.expect(vector.Equal(ints(1, 2, 3), ints(1, 2, 3)), "== failed")
	c.expect(vector.NotEqual(ints(1, 2, 3), ints(1, 2, 2)), "!= failed")
	c.expect(vector.Less(ints(1, 2, 3), ints(1, 2, 4)), "< failed")
	c.expect(vector.LessEqual(ints(1, 2, 3), ints(1, 2, 3)), "<= failed")
	c.expect(vector.Greater(ints(1, 3), ints(1, 2, 3)), "> failed")
	c.expect(vector.GreaterEqual(ints(1, 2, 3), ints(1, 2)), ">= failed")

	// Copies are independent.
	orig := ints(1, 2, 3)
	cp, err := orig.Clone()
	if !c.must(err) {
		return
	}
	cp.Set(0, 100)
	c.expect(orig.Get(0) == 1, "mutating the copy changed the original")

	var assigned vector.Vector[int]
	if !c.must(assigned.Assign(orig)) {
		return
	}
	c.expect(vector.Equal(&assigned, orig), "assigned %v, want %v", &assigned, orig)
}

func scenarioReserveConstructor(c *checker) {
	v, err := vector.WithReservation[int](vector.Reserve(5))
	if !c.must(err) {
		return
	}
	c.shape(v, 0, 5)
	c.expect(v.IsEmpty(), "reserved vector should be empty")
	for i := range 5 {
		if !c.must(v.PushBack(i)) {
			return
		}
	}
	c.shape(v, 5, 5)
}

func scenarioReserveMethod(c *checker) {
	v := vector.New[int]()
	if !c.must(v.Reserve(5)) {
		return
	}
	c.shape(v, 0, 5)

	for i := range 10 {
		if !c.must(v.PushBack(i)) {
			return
		}
	}
	c.shape(v, 10, 10)

	// Smaller requests leave the vector alone.
	if !c.must(v.Reserve(3)) {
		return
	}
	c.shape(v, 10, 10)

	for i, x := range v.All() {
		c.expect(x == i, "v[%d] = %d after reserve", i, x)
	}
}

func generateVector(size int) (*vector.Vector[int], error) {
	v, err := vector.WithReservation[int](vector.Reserve(size))
	if err != nil {
		return nil, err
	}
	for i := range size {
		if err := v.PushBack(i); err != nil {
			return nil, err
		}
	}
	return v, nil
}

func scenarioTemporaryConstructor(c *checker) {
	tmp, err := generateVector(temporarySize)
	if !c.must(err) {
		return
	}
	moved := tmp.Take()
	c.expect(moved.Len() == temporarySize, "moved len = %d", moved.Len())
	c.expect(tmp.Len() == 0, "temporary should be empty after the move")
}

func scenarioTemporaryAssign(c *checker) {
	tmp, err := generateVector(temporarySize)
	if !c.must(err) {
		return
	}
	var moved vector.Vector[int]
	c.expect(moved.Len() == 0, "target should start empty")
	moved.MoveFrom(tmp)
	c.expect(moved.Len() == temporarySize, "moved len = %d", moved.Len())
	c.expect(tmp.Len() == 0, "temporary should be empty after the move")
}

func scenarioNamedMoveConstructor(c *checker) {
	named, err := generateVector(temporarySize)
	if !c.must(err) {
		return
	}
	c.expect(named.Len() == temporarySize, "named len = %d", named.Len())

	moved := named.Take()
	c.expect(moved.Len() == temporarySize, "moved len = %d", moved.Len())
	c.expect(named.Len() == 0, "named vector should be empty after the move")
}

func scenarioNamedMoveAssign(c *checker) {
	named, err := generateVector(temporarySize)
	if !c.must(err) {
		return
	}
	moved := vector.New[int]()
	moved.MoveFrom(named)
	c.expect(moved.Len() == temporarySize, "moved len = %d", moved.Len())
	c.expect(named.Len() == 0, "named vector should be empty after the move")
}

// uniqueItem owns its value and refuses to be copied.
type uniqueItem struct {
	value  *int
	copies *int
}

func (u *uniqueItem) Clone() (uniqueItem, error) {
	*u.copies++
	return uniqueItem{}, errors.ErrNotCopyable
}

func (u uniqueItem) get() int {
	if u.value == nil {
		return -1
	}
	return *u.value
}

func uniqueItems(n int, copies *int) (*vector.Vector[uniqueItem], error) {
	v := vector.New[uniqueItem]()
	for i := range n {
		x := i
		if err := v.PushBack(uniqueItem{value: &x, copies: copies}); err != nil {
			return nil, err
		}
	}
	return v, nil
}

const uniqueCount = 5

func scenarioNoncopyableMoveConstructor(c *checker) {
	copies := 0
	v, err := uniqueItems(uniqueCount, &copies)
	if !c.must(err) {
		return
	}
	moved := v.Take()
	c.expect(moved.Len() == uniqueCount, "moved len = %d", moved.Len())
	c.expect(v.Len() == 0, "source should be empty after the move")
	for i, x := range moved.All() {
		c.expect(x.get() == i, "moved[%d] = %d", i, x.get())
	}
	c.expect(copies == 0, "%d copies made", copies)
}

func scenarioNoncopyablePushBack(c *checker) {
	copies := 0
	v, err := uniqueItems(uniqueCount, &copies)
	if !c.must(err) {
		return
	}
	c.expect(v.Len() == uniqueCount, "len = %d", v.Len())
	for i, x := range v.All() {
		c.expect(x.get() == i, "v[%d] = %d", i, x.get())
	}
	c.expect(copies == 0, "%d copies made", copies)
}

func scenarioNoncopyableInsert(c *checker) {
	copies := 0
	v, err := uniqueItems(uniqueCount, &copies)
	if !c.must(err) {
		return
	}

	item := func(x int) uniqueItem { return uniqueItem{value: &x, copies: &copies} }

	// At the beginning.
	if _, err := v.Insert(v.Begin(), item(uniqueCount+1)); !c.must(err) {
		return
	}
	c.expect(v.Len() == uniqueCount+1, "len = %d", v.Len())
	c.expect(v.Front().get() == uniqueCount+1, "front = %d", v.Front().get())

	// At the end.
	if _, err := v.Insert(v.End(), item(uniqueCount+2)); !c.must(err) {
		return
	}
	c.expect(v.Back().get() == uniqueCount+2, "back = %d", v.Back().get())

	// In the middle.
	if _, err := v.Insert(v.Begin()+3, item(uniqueCount+3)); !c.must(err) {
		return
	}
	c.expect(v.Get(3).get() == uniqueCount+3, "v[3] = %d", v.Get(3).get())
	c.expect(v.Len() == uniqueCount+3, "len = %d", v.Len())
	c.expect(copies == 0, "%d copies made", copies)
}

func scenarioNoncopyableErase(c *checker) {
	copies := 0
	v, err := uniqueItems(uniqueCount, &copies)
	if !c.must(err) {
		return
	}
	pos := v.Erase(v.Begin())
	c.expect(v.Get(pos).get() == 1, "element after erase = %d, want 1", v.Get(pos).get())
	c.expect(v.Len() == uniqueCount-1, "len = %d", v.Len())
	c.expect(copies == 0, "%d copies made", copies)

	_, err = v.Clone()
	c.expect(stderrors.Is(err, errors.ErrNotCopyable), "cloning should be refused, got %v", err)
}
