package math

import (
	"math"
	"testing"
)

func TestNorm(t *testing.T) {
	n := Norm([]float32{3, 4})
	if math.Abs(float64(n-5)) > 1e-6 {
		t.Errorf("Expected 5, got %f", n)
	}

	n = Norm([]float32{1, 2, 2, 4})
	if math.Abs(float64(n-5)) > 1e-6 {
		t.Errorf("Expected 5, got %f", n)
	}
}

func TestDot(t *testing.T) {
	d := Dot([]float32{1, 2, 3}, []float32{4, 5, 6})
	if d != 32 {
		t.Errorf("Expected 32, got %f", d)
	}

	// Single-element dot keeps the sign of zero like a plain product.
	d = Dot([]float32{-0.5}, []float32{0})
	if !math.Signbit(float64(d)) {
		t.Errorf("Single-element dot differs from product: %v", d)
	}
}

func TestNormalize(t *testing.T) {
	vecs := [][]float32{
		{3, 4},
		{-0.2, 0.9, 0.1},
		{0.5, -0.5, 0.5, -0.5},
		{1e-3, 2e-3, -3e-3, 4e-3},
	}
	for _, v := range vecs {
		if !Normalize(v) {
			t.Fatalf("Normalize(%v) reported a degenerate vector", v)
		}
		if l := Norm(v); math.Abs(float64(l-1)) > 1e-6 {
			t.Errorf("Normalized %v has length %f", v, l)
		}
	}
}

func TestNormalizeZero(t *testing.T) {
	v := []float32{0, 0, 0}
	if Normalize(v) {
		t.Fatal("Expected zero vector to be reported as degenerate")
	}
	if v[0] != 1 || v[1] != 0 || v[2] != 0 {
		t.Errorf("Expected first-axis unit vector, got %v", v)
	}
}

func TestSCurve(t *testing.T) {
	if SCurve(0) != 0 {
		t.Errorf("SCurve(0) = %f, expected 0", SCurve(0))
	}
	if SCurve(1) != 1 {
		t.Errorf("SCurve(1) = %f, expected 1", SCurve(1))
	}
	if SCurve(0.5) != 0.5 {
		t.Errorf("SCurve(0.5) = %f, expected 0.5", SCurve(0.5))
	}

	// Matches 3t^2 - 2t^3 and is symmetric around 0.5.
	for i := range 101 {
		u := float32(i) / 100
		want := 3*float64(u)*float64(u) - 2*float64(u)*float64(u)*float64(u)
		if math.Abs(float64(SCurve(u))-want) > 1e-6 {
			t.Errorf("SCurve(%f) = %f, expected %f", u, SCurve(u), want)
		}
		if math.Abs(float64(SCurve(u)+SCurve(1-u)-1)) > 1e-6 {
			t.Errorf("SCurve not symmetric at %f", u)
		}
	}
}

func TestLerp(t *testing.T) {
	if Lerp(0, 2, 6) != 2 {
		t.Errorf("Lerp(0) = %f, expected 2", Lerp(0, 2, 6))
	}
	if Lerp(1, 2, 6) != 6 {
		t.Errorf("Lerp(1) = %f, expected 6", Lerp(1, 2, 6))
	}
	if Lerp(0.25, 2, 6) != 3 {
		t.Errorf("Lerp(0.25) = %f, expected 3", Lerp(0.25, 2, 6))
	}
}

func TestPack01(t *testing.T) {
	if Pack01(-1) != 0 || Pack01(0) != 0.5 || Pack01(1) != 1 {
		t.Errorf("Pack01 endpoints wrong: %f %f %f", Pack01(-1), Pack01(0), Pack01(1))
	}
}

func TestFloorMod(t *testing.T) {
	if Floor32(-0.5) != -1 || Floor32(4096.75) != 4096 {
		t.Errorf("Floor32 wrong: %f %f", Floor32(-0.5), Floor32(4096.75))
	}
	if Mod32(1e30, 256) < 0 || Mod32(1e30, 256) >= 256 {
		t.Errorf("Mod32(1e30, 256) = %f, out of [0, 256)", Mod32(1e30, 256))
	}
	if IsFinite32(float32(math.NaN())) || IsFinite32(float32(math.Inf(-1))) || !IsFinite32(3) {
		t.Error("IsFinite32 misclassified a value")
	}
}
