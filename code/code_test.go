package code

import "testing"

func TestGroupOfCoversMotionFamily(t *testing.T) {
	for _, c := range []Code{G00, G01, G02, G03, G38_2, G80, G81, G89} {
		g, ok := GroupOf(c)
		if !ok {
			t.Fatalf("code %d: expected a group", c)
		}
		if g != Group1 {
			t.Fatalf("code %d: expected Group1, got %d", c, g)
		}
	}
}

func TestGroupOfUnknownCode(t *testing.T) {
	if _, ok := GroupOf(Code(999999)); ok {
		t.Fatalf("expected unknown code to report ok=false")
	}
}

func TestCoordSystemRange(t *testing.T) {
	want := map[Code]int{
		G54: 1, G55: 2, G56: 3, G57: 4, G58: 5,
		G59: 6, G59_1: 7, G59_2: 8, G59_3: 9,
	}
	for c, n := range want {
		if got := CoordSystem(c); got != n {
			t.Errorf("CoordSystem(%d) = %d, want %d", c, got, n)
		}
	}
	if CoordSystem(G17) != 0 {
		t.Errorf("expected non-selector code to yield 0")
	}
}

func TestWordIndexRoundTrip(t *testing.T) {
	letters := []Word{A, B, C, X, Y, Z}
	for _, w := range letters {
		i := Index(w)
		if i < 0 || i > 25 {
			t.Fatalf("Index(%d) out of range: %d", w, i)
		}
	}
	if Index(X) != 23 {
		t.Errorf("Index(X) = %d, want 23", Index(X))
	}
}

func TestHasAndHasAny(t *testing.T) {
	m := X | Y
	if !Has(m, X) {
		t.Error("Has(XY, X) should be true")
	}
	if Has(m, XYZ) {
		t.Error("Has(XY, XYZ) should be false, Z missing")
	}
	if !HasAny(m, XYZ) {
		t.Error("HasAny(XY, XYZ) should be true")
	}
}
