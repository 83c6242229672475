package rand

import "testing"

func TestDeterministic(t *testing.T) {
	a := New(42)
	b := New(42)
	for i := range 1000 {
		if Int(&a) != Int(&b) {
			t.Fatalf("Sequences diverged at step %d", i)
		}
	}
}

func TestSeedsDiffer(t *testing.T) {
	a := New(1)
	b := New(2)
	same := 0
	for range 100 {
		if Int(&a) == Int(&b) {
			same++
		}
	}
	if same > 5 {
		t.Errorf("Seeds 1 and 2 produced %d identical values out of 100", same)
	}
}

func TestRange(t *testing.T) {
	s := New(7)
	lo, hi := float32(-3), float32(5)
	var minV, maxV float32 = hi, lo
	for range 10000 {
		v := Range(&s, lo, hi)
		if v < lo || v > hi {
			t.Fatalf("Range value %f out of [%f, %f]", v, lo, hi)
		}
		minV = min(minV, v)
		maxV = max(maxV, v)
	}
	// Samples should spread across most of the interval.
	if minV > lo+0.5 || maxV < hi-0.5 {
		t.Errorf("Range poorly spread: min %f, max %f", minV, maxV)
	}
}

func TestIntn(t *testing.T) {
	s := New(3)
	counts := make([]int, 4)
	for range 4000 {
		v := Intn(&s, 4)
		if v < 0 || v >= 4 {
			t.Fatalf("Intn value %d out of [0, 4)", v)
		}
		counts[v]++
	}
	for i, c := range counts {
		if c < 500 {
			t.Errorf("Bucket %d underfilled: %d", i, c)
		}
	}
	if Intn(&s, 0) != 0 {
		t.Error("Intn(0) should return 0")
	}
}

func TestPoint(t *testing.T) {
	s := New(11)
	p := make([]float32, 4)
	Point(&s, p, 10, 11)
	for k, v := range p {
		if v < 10 || v > 11 {
			t.Errorf("Point[%d] = %f out of [10, 11]", k, v)
		}
	}
}
