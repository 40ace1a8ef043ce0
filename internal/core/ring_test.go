package core

import "testing"

func TestRingPushUntilFull(t *testing.T) {
	r := NewRing[int](3)

	if r.Len() != 0 || r.Full() {
		t.Fatalf("new ring should be empty, len=%d full=%v", r.Len(), r.Full())
	}

	r.Push(1)
	r.Push(2)
	if r.Len() != 2 || r.Full() {
		t.Errorf("expected len 2 and not full, got len=%d full=%v", r.Len(), r.Full())
	}

	r.Push(3)
	if !r.Full() {
		t.Error("ring should be full after 3 pushes")
	}
	for i, want := range []int{1, 2, 3} {
		if got := r.At(i); got != want {
			t.Errorf("At(%d) = %d, expected %d", i, got, want)
		}
	}
}

func TestRingOverwritesOldest(t *testing.T) {
	r := NewRing[int](3)
	for i := 1; i <= 7; i++ {
		r.Push(i)
	}

	if r.Len() != 3 {
		t.Fatalf("Len() = %d, expected 3", r.Len())
	}
	for i, want := range []int{5, 6, 7} {
		if got := r.At(i); got != want {
			t.Errorf("At(%d) = %d, expected %d", i, got, want)
		}
	}
}

func TestRingReset(t *testing.T) {
	r := NewRing[float64](2)
	r.Push(1.5)
	r.Push(2.5)
	r.Push(3.5)
	r.Reset()

	if r.Len() != 0 {
		t.Errorf("Len() after Reset = %d, expected 0", r.Len())
	}
	if r.Cap() != 2 {
		t.Errorf("Cap() after Reset = %d, expected 2", r.Cap())
	}

	r.Push(9)
	if r.At(0) != 9 {
		t.Errorf("At(0) = %f, expected 9", r.At(0))
	}
}

func TestRingMinimumCapacity(t *testing.T) {
	r := NewRing[int](0)
	if r.Cap() != 1 {
		t.Errorf("Cap() = %d, expected 1", r.Cap())
	}
	r.Push(4)
	r.Push(5)
	if r.At(0) != 5 || r.Len() != 1 {
		t.Errorf("single-slot ring should keep the latest value, got %d (len %d)", r.At(0), r.Len())
	}
}
