package simd

import (
	"testing"

	"github.com/cwbudde/algo-interleave/internal/cpu"
)

func forceFeatures(t *testing.T, f cpu.Features) {
	t.Helper()
	cpu.SetForcedFeatures(f)
	t.Cleanup(cpu.ResetDetection)
}

func TestWidthValid(t *testing.T) {
	for _, w := range []Width{Width2, Width4, Width8} {
		if !w.Valid() {
			t.Fatalf("Width(%d).Valid() = false, want true", w)
		}
	}
	for _, w := range []Width{0, 1, 3, 16} {
		if w.Valid() {
			t.Fatalf("Width(%d).Valid() = true, want false", w)
		}
	}
}

func TestRegisterBytes(t *testing.T) {
	if got := RegisterBytes[float32](Width8); got != 32 {
		t.Fatalf("RegisterBytes[float32](Width8) = %d, want 32", got)
	}
	if got := RegisterBytes[float64](Width8); got != 64 {
		t.Fatalf("RegisterBytes[float64](Width8) = %d, want 64", got)
	}
	if got := RegisterBytes[float64](Width2); got != 16 {
		t.Fatalf("RegisterBytes[float64](Width2) = %d, want 16", got)
	}
}

func TestAvailableWidthsAVX(t *testing.T) {
	forceFeatures(t, cpu.Features{HasSSE2: true, HasAVX: true, Architecture: "amd64"})

	got32 := AvailableWidths[float32]()
	want32 := []Width{Width8, Width4}
	if len(got32) != len(want32) {
		t.Fatalf("float32 widths = %v, want %v", got32, want32)
	}
	for i := range want32 {
		if got32[i] != want32[i] {
			t.Fatalf("float32 widths = %v, want %v", got32, want32)
		}
	}

	got64 := AvailableWidths[float64]()
	want64 := []Width{Width4, Width2}
	if len(got64) != len(want64) {
		t.Fatalf("float64 widths = %v, want %v", got64, want64)
	}
	for i := range want64 {
		if got64[i] != want64[i] {
			t.Fatalf("float64 widths = %v, want %v", got64, want64)
		}
	}
}

func TestAvailableWidthsAVX512(t *testing.T) {
	forceFeatures(t, cpu.Features{
		HasSSE2: true, HasAVX: true, HasAVX2: true, HasAVX512: true,
		Architecture: "amd64",
	})

	if w := WidestWidth[float64](); w != Width8 {
		t.Fatalf("WidestWidth[float64]() = %d, want 8", w)
	}
	got := AvailableWidths[float64]()
	if len(got) != 3 || got[0] != Width8 || got[1] != Width4 || got[2] != Width2 {
		t.Fatalf("float64 widths = %v, want [8 4 2]", got)
	}
}

func TestAvailableWidthsNEON(t *testing.T) {
	forceFeatures(t, cpu.Features{HasNEON: true, Architecture: "arm64"})

	if w := WidestWidth[float32](); w != Width4 {
		t.Fatalf("WidestWidth[float32]() = %d, want 4", w)
	}
	if w := WidestWidth[float64](); w != Width2 {
		t.Fatalf("WidestWidth[float64]() = %d, want 2", w)
	}
	if !Has128BitSIMDRegisters() {
		t.Fatal("Has128BitSIMDRegisters() = false with NEON forced")
	}
	if Has256BitSIMDRegisters() {
		t.Fatal("Has256BitSIMDRegisters() = true with NEON forced")
	}
	if !SupportsDoublePrecision() {
		t.Fatal("SupportsDoublePrecision() = false with NEON forced")
	}
}

func TestForceGenericFallsBackToBaseline(t *testing.T) {
	forceFeatures(t, cpu.Features{
		HasSSE2: true, HasAVX: true, HasAVX512: true,
		ForceGeneric: true, Architecture: "amd64",
	})

	if w := WidestWidth[float32](); w != Width4 {
		t.Fatalf("WidestWidth[float32]() = %d, want baseline 4", w)
	}
	if w := WidestWidth[float64](); w != Width2 {
		t.Fatalf("WidestWidth[float64]() = %d, want baseline 2", w)
	}
}

func TestBaselineAlwaysAvailable(t *testing.T) {
	forceFeatures(t, cpu.Features{Architecture: "wasm"})

	if !Available[float32](Width4) {
		t.Fatal("baseline float32 width 4 must always be available")
	}
	if !Available[float64](Width2) {
		t.Fatal("baseline float64 width 2 must always be available")
	}
	if Available[float32](Width2) {
		t.Fatal("width 2 must never be available for float32")
	}
}

func TestAvailablePanicsOnInvalidWidth(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("Available with invalid width should panic")
		}
	}()
	Available[float32](Width(3))
}
