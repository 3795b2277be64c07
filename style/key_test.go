package style

import (
	"math"
	"sync"
	"testing"
)

func TestEncode_NonZero(t *testing.T) {
	if k := Encode(TextStyle{}); k == 0 {
		t.Fatal("Encode of zero style returned the reserved zero key")
	}
	if k := Encode(TextStyle{}); k&1 != 1 {
		t.Errorf("Encode bit 0 = %d, want 1", k&1)
	}
}

func TestEncodeDecode_RoundTrip(t *testing.T) {
	families := []Family{FamilySans, FamilyMono, FamilySerif, FamilyFile, Family(9), familyMax}
	orientations := []float64{0, 0.1, 12.34, 45, 90, 179.95, 270, 359.9}

	for _, f := range families {
		for _, bold := range []bool{false, true} {
			for _, italic := range []bool{false, true} {
				for _, o := range orientations {
					s := TextStyle{Family: f, Bold: bold, Italic: italic, Orientation: o}
					got := Decode(Encode(s))

					if got.Family != f {
						t.Errorf("Family = %v, want %v", got.Family, f)
					}
					if got.Bold != bold || got.Italic != italic {
						t.Errorf("Bold/Italic = %t/%t, want %t/%t", got.Bold, got.Italic, bold, italic)
					}
					want := float64(QuantizeOrientation(o)) / 10
					if math.Abs(got.Orientation-want) > 1e-9 {
						t.Errorf("Orientation = %v, want %v (from %v)", got.Orientation, want, o)
					}
					if math.Abs(got.Orientation-o) > 0.05+1e-9 {
						t.Errorf("Orientation = %v, too far from %v", got.Orientation, o)
					}
				}
			}
		}
	}
}

func TestEncode_NoCollisions(t *testing.T) {
	seen := make(map[Key]TextStyle)
	for f := familyMin; f <= familyMax; f++ {
		for b := 0; b < 2; b++ {
			for i := 0; i < 2; i++ {
				for o := 0; o < OrientationSteps; o += 7 {
					s := TextStyle{Family: f, Bold: b == 1, Italic: i == 1, Orientation: float64(o) / 10}
					k := Encode(s)
					if prev, ok := seen[k]; ok {
						t.Fatalf("key %v shared by %+v and %+v", k, prev, s)
					}
					seen[k] = s
				}
			}
		}
	}
}

func TestEncode_IgnoresRenderingFields(t *testing.T) {
	a := Default()
	b := Default()
	b.FontSize = 48
	b.Color = RGB{1, 0, 0}
	b.Opacity = 0.3
	b.Justification = JustifyRight
	b.Shadow = true

	if Encode(a) != Encode(b) {
		t.Errorf("keys differ for styles that select the same face")
	}
}

func TestQuantizeOrientation(t *testing.T) {
	tests := []struct {
		deg  float64
		want int
	}{
		{0, 0},
		{0.04, 0},
		{0.06, 1},
		{360, 0},
		{-90, 2700},
		{-0.1, 3599},
		{725.5, 55},
	}
	for _, tt := range tests {
		if got := QuantizeOrientation(tt.deg); got != tt.want {
			t.Errorf("QuantizeOrientation(%v) = %d, want %d", tt.deg, got, tt.want)
		}
	}
}

func TestEncode_UnencodableFamily(t *testing.T) {
	k := Encode(TextStyle{Family: Family(-3)})
	if k.Family() != FamilySans {
		t.Errorf("Family() = %v, want Sans for an unencodable family", k.Family())
	}
	k = Encode(TextStyle{Family: familyMax + 1})
	if k.Family() != FamilySans {
		t.Errorf("Family() = %v, want Sans for an unencodable family", k.Family())
	}
}

func TestKey_ValidAndUnrotated(t *testing.T) {
	k := Encode(TextStyle{Family: FamilyMono, Bold: true, Orientation: 30})
	if !k.Valid() {
		t.Error("encoded key should be valid")
	}
	if Key(0).Valid() {
		t.Error("zero key should be invalid")
	}
	if Key(1 | 3600<<orientationShift).Valid() {
		t.Error("key with orientation out of range should be invalid")
	}

	u := k.Unrotated()
	if u.Orientation() != 0 || u.Family() != FamilyMono || !u.Bold() {
		t.Errorf("Unrotated() = %v", u)
	}
	if u != Encode(TextStyle{Family: FamilyMono, Bold: true}) {
		t.Error("Unrotated() differs from the key of the unrotated style")
	}
}

func TestKeyTable(t *testing.T) {
	table := NewKeyTable()

	s := Default()
	s.FontSize = 20
	k := table.Remember(s)
	if k != Encode(s) {
		t.Errorf("Remember returned %v, want %v", k, Encode(s))
	}

	got, ok := table.Lookup(k)
	if !ok {
		t.Fatal("Lookup of a remembered key failed")
	}
	if got.FontSize != 20 {
		t.Errorf("FontSize = %d, want 20", got.FontSize)
	}

	// The first style recorded for a key wins.
	s2 := s
	s2.FontSize = 99
	table.Remember(s2)
	got, _ = table.Lookup(k)
	if got.FontSize != 20 {
		t.Errorf("FontSize after second Remember = %d, want 20", got.FontSize)
	}

	if _, ok := table.Lookup(Encode(TextStyle{Family: FamilySerif})); ok {
		t.Error("Lookup of an unknown key should fail")
	}

	table.Reset()
	if table.Len() != 0 {
		t.Errorf("Len() after Reset = %d, want 0", table.Len())
	}
}

func TestKeyTable_Concurrent(t *testing.T) {
	table := NewKeyTable()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for o := 0; o < 100; o++ {
				table.Remember(TextStyle{Family: Family(i % 4), Orientation: float64(o)})
			}
		}(i)
	}
	wg.Wait()
	if table.Len() != 400 {
		t.Errorf("Len() = %d, want 400", table.Len())
	}
}
