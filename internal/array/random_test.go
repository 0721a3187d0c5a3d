package array

import (
	"math"
	"testing"

	"github.com/nda-dev/nda/internal/rng"
)

func TestRandRange(t *testing.T) {
	backend := NewMockBackend()
	g := rng.New(42)

	a := Rand[float64](g, Shape{100}, backend)
	for i, v := range a.Data() {
		if v < 0 || v >= 1 {
			t.Errorf("Rand[%d] = %v, want value in [0, 1)", i, v)
		}
	}
}

func TestRandReproducible(t *testing.T) {
	backend := NewMockBackend()

	a := Rand[float64](rng.New(7), Shape{20}, backend)
	b := Rand[float64](rng.New(7), Shape{20}, backend)

	for i := range a.Data() {
		if a.Data()[i] != b.Data()[i] {
			t.Fatalf("same seed should produce identical draws, differ at %d", i)
		}
	}
}

func TestRandSeedsIndependent(t *testing.T) {
	backend := NewMockBackend()

	a := Rand[float64](rng.New(1), Shape{20}, backend)
	b := Rand[float64](rng.New(2), Shape{20}, backend)

	same := true
	for i := range a.Data() {
		if a.Data()[i] != b.Data()[i] {
			same = false
			break
		}
	}
	if same {
		t.Error("different seeds should produce different draws")
	}
}

func TestGeneratorsDoNotShareState(t *testing.T) {
	backend := NewMockBackend()

	// Interleaving draws from one generator must not disturb another.
	g1 := rng.New(7)
	g2 := rng.New(99)

	first := Rand[float64](g1, Shape{5}, backend)
	_ = Rand[float64](g2, Shape{50}, backend)
	second := Rand[float64](g1, Shape{5}, backend)

	reference := rng.New(7)
	refFirst := Rand[float64](reference, Shape{5}, backend)
	refSecond := Rand[float64](reference, Shape{5}, backend)

	for i := range first.Data() {
		if first.Data()[i] != refFirst.Data()[i] || second.Data()[i] != refSecond.Data()[i] {
			t.Fatal("generator state should be isolated per instance")
		}
	}
}

func TestRandnMoments(t *testing.T) {
	backend := NewMockBackend()
	g := rng.New(123)

	a := Randn[float64](g, Shape{10000}, backend)

	sum := 0.0
	for _, v := range a.Data() {
		sum += v
	}
	mean := sum / float64(a.NumElements())

	varSum := 0.0
	for _, v := range a.Data() {
		d := v - mean
		varSum += d * d
	}
	variance := varSum / float64(a.NumElements())

	if math.Abs(mean) > 0.05 {
		t.Errorf("mean = %v, want approximately 0", mean)
	}
	if math.Abs(variance-1) > 0.1 {
		t.Errorf("variance = %v, want approximately 1", variance)
	}
}

func TestRandIntBounds(t *testing.T) {
	backend := NewMockBackend()
	g := rng.New(42)

	a := RandInt[int64](g, -3, 4, Shape{200}, backend)

	seen := make(map[int64]bool)
	for i, v := range a.Data() {
		if v < -3 || v >= 4 {
			t.Errorf("RandInt[%d] = %d, want value in [-3, 4)", i, v)
		}
		seen[v] = true
	}

	// 200 draws over 7 values should cover the full range
	for v := int64(-3); v < 4; v++ {
		if !seen[v] {
			t.Errorf("value %d never drawn", v)
		}
	}
}

func TestRandIntInvalidRange(t *testing.T) {
	backend := NewMockBackend()
	g := rng.New(1)

	defer func() {
		if recover() == nil {
			t.Error("RandInt with high <= low should panic")
		}
	}()
	RandInt[int32](g, 5, 5, Shape{3}, backend)
}

func TestRandIntUint8(t *testing.T) {
	backend := NewMockBackend()
	g := rng.New(9)

	a := RandInt[uint8](g, 0, 256, Shape{64}, backend)
	if a.DType() != Uint8 {
		t.Errorf("DType = %v, want Uint8", a.DType())
	}
}
