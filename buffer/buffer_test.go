package buffer

import (
	stderrors "errors"
	"math"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/wippyai/simplevector/errors"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name  string
		size  int
		valid bool
	}{
		{name: "zero size holds nothing", size: 0, valid: false},
		{name: "single slot", size: 1, valid: true},
		{name: "many slots", size: 64, valid: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := New[int](tt.size)
			if err != nil {
				t.Fatalf("New(%d) failed: %v", tt.size, err)
			}
			defer b.Free()

			if b.Valid() != tt.valid {
				t.Errorf("Valid() = %v, want %v", b.Valid(), tt.valid)
			}
			if b.Len() != tt.size {
				t.Errorf("Len() = %d, want %d", b.Len(), tt.size)
			}
			for i := 0; i < b.Len(); i++ {
				if *b.At(i) != 0 {
					t.Errorf("slot %d = %d, want zero value", i, *b.At(i))
				}
			}
		})
	}
}

func TestNew_Negative(t *testing.T) {
	b, err := New[int](-1)
	if err == nil {
		t.Fatal("expected error for negative size")
	}
	if b != nil {
		t.Error("expected nil buffer on error")
	}
	if !stderrors.Is(err, errors.ErrInvalidInput) {
		t.Errorf("expected invalid input, got %v", err)
	}
}

func TestNew_AllocationFailure(t *testing.T) {
	b, err := New[int64](math.MaxInt)
	if err == nil {
		t.Fatal("expected allocation failure")
	}
	if b != nil {
		t.Error("expected nil buffer on allocation failure")
	}
	if !stderrors.Is(err, errors.ErrAllocation) {
		t.Errorf("expected allocation error, got %v", err)
	}

	var e *errors.Error
	if !stderrors.As(err, &e) {
		t.Fatal("expected *errors.Error")
	}
	if e.Phase != errors.PhaseAlloc {
		t.Errorf("Phase = %v, want %v", e.Phase, errors.PhaseAlloc)
	}
	if e.Type != "[]int64" {
		t.Errorf("Type = %q, want []int64", e.Type)
	}
}

func TestNew_RespectsLimit(t *testing.T) {
	old := MaxAllocBytes
	MaxAllocBytes = 64
	defer func() { MaxAllocBytes = old }()

	if _, err := New[int64](8); err != nil {
		t.Fatalf("8 x int64 fits in 64 bytes: %v", err)
	}
	if _, err := New[int64](9); !stderrors.Is(err, errors.ErrAllocation) {
		t.Errorf("expected allocation error above the limit, got %v", err)
	}
}

func TestDefaultAllocLimit(t *testing.T) {
	limit := defaultAllocLimit()
	if limit == 0 {
		t.Fatal("default limit must be positive")
	}
	if mem := systemMemory(); mem > 0 && limit > mem {
		t.Errorf("limit %d exceeds host memory %d", limit, mem)
	}
	if mem := systemMemory(); mem == 0 && limit != fallbackAllocLimit {
		t.Errorf("limit = %d, want fallback %d", limit, uint64(fallbackAllocLimit))
	}
}

func TestNew_RefusesRequestAboveDefaultLimit(t *testing.T) {
	slots := int(MaxAllocBytes/8) + 1

	b, err := New[int64](slots)
	if !stderrors.Is(err, errors.ErrAllocation) {
		t.Fatalf("expected allocation error, got %v", err)
	}
	if b != nil {
		t.Error("expected nil buffer on allocation failure")
	}

	var e *errors.Error
	if !stderrors.As(err, &e) {
		t.Fatal("expected *errors.Error")
	}
	if e.Value != slots {
		t.Errorf("Value = %v, want %d", e.Value, slots)
	}
}

func TestNew_LogsRefusedAllocation(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	old := Logger()
	SetLogger(zap.New(core))
	defer SetLogger(old)

	if _, err := New[int64](math.MaxInt); err == nil {
		t.Fatal("expected allocation failure")
	}

	entries := logs.FilterMessage("buffer allocation refused").All()
	if len(entries) != 1 {
		t.Fatalf("got %d log entries, want 1", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["elem_size"] != uint64(8) {
		t.Errorf("elem_size = %v, want 8", fields["elem_size"])
	}
	if fields["limit"] != MaxAllocBytes {
		t.Errorf("limit = %v, want %d", fields["limit"], MaxAllocBytes)
	}
}

func TestFromRaw(t *testing.T) {
	raw := []string{"a", "b", "c"}
	b := FromRaw(raw)

	if !b.Valid() {
		t.Fatal("expected adopted buffer to be valid")
	}
	if b.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", b.Len())
	}
	if *b.At(1) != "b" {
		t.Errorf("At(1) = %q, want b", *b.At(1))
	}

	empty := FromRaw[string](nil)
	if empty.Valid() {
		t.Error("expected empty raw block to yield an empty buffer")
	}
}

func TestRelease(t *testing.T) {
	b, err := New[int](4)
	if err != nil {
		t.Fatal(err)
	}
	*b.At(2) = 7

	raw := b.Release()
	if b.Valid() {
		t.Error("buffer should hold nothing after Release")
	}
	if b.Len() != 0 {
		t.Errorf("Len() = %d after Release, want 0", b.Len())
	}
	if len(raw) != 4 || raw[2] != 7 {
		t.Errorf("released block = %v, want 4 slots with raw[2] == 7", raw)
	}

	// Free after Release must not touch the caller's block.
	b.Free()
	if raw[2] != 7 {
		t.Error("Free after Release modified the released block")
	}
}

func TestFree(t *testing.T) {
	b, err := New[*int](2)
	if err != nil {
		t.Fatal(err)
	}
	x := 1
	*b.At(0) = &x
	view := b.Raw()

	b.Free()
	if b.Valid() {
		t.Error("buffer should hold nothing after Free")
	}
	if view[0] != nil {
		t.Error("Free should zero slots before dropping the block")
	}

	// Second Free is a no-op.
	b.Free()

	var zero Buffer[int]
	zero.Free()
}

func TestSwap(t *testing.T) {
	a, _ := New[int](2)
	b, _ := New[int](5)
	*a.At(0) = 1
	*b.At(0) = 2

	a.Swap(b)

	if a.Len() != 5 || *a.At(0) != 2 {
		t.Errorf("a after swap: len=%d first=%d, want len=5 first=2", a.Len(), *a.At(0))
	}
	if b.Len() != 2 || *b.At(0) != 1 {
		t.Errorf("b after swap: len=%d first=%d, want len=2 first=1", b.Len(), *b.At(0))
	}

	var empty Buffer[int]
	empty.Swap(a)
	if a.Valid() {
		t.Error("swapping with an empty buffer should leave a empty")
	}
	if empty.Len() != 5 {
		t.Errorf("empty.Len() = %d after swap, want 5", empty.Len())
	}
}

func TestAt_OutOfBlockPanics(t *testing.T) {
	b, _ := New[int](2)
	defer func() {
		if recover() == nil {
			t.Error("expected runtime panic beyond the block")
		}
	}()
	_ = b.At(2)
}

func TestMove(t *testing.T) {
	a, b := 1, 2
	src := []*int{&a, &b}
	dst := make([]*int, 3)

	n := Move(dst, src)
	if n != 2 {
		t.Fatalf("Move returned %d, want 2", n)
	}
	if dst[0] != &a || dst[1] != &b || dst[2] != nil {
		t.Errorf("unexpected destination %v", dst)
	}
	for i, p := range src {
		if p != nil {
			t.Errorf("moved-from slot %d still holds a reference", i)
		}
	}
}

func TestSizeof(t *testing.T) {
	if Sizeof[int64]() != 8 {
		t.Errorf("Sizeof[int64] = %d, want 8", Sizeof[int64]())
	}
	if Sizeof[struct{}]() != 0 {
		t.Errorf("Sizeof[struct{}] = %d, want 0", Sizeof[struct{}]())
	}
}
