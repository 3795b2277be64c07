package style

import (
	"fmt"
	"math"
)

// Key is a compact identifier of the font face a style resolves to.
//
// Layout (least significant bit first):
//
//	bit  0     always 1, so that a valid key is never zero
//	bits 1-4   family, offset from the first family
//	bit  5     bold
//	bit  6     italic
//	bits 7-18  orientation in tenths of a degree, in [0, 3600)
//
// Color, size, justification and the other rendering attributes do not
// take part in the key.
type Key uint32

const (
	keyTag           Key = 1
	familyShift          = 1
	familyMask       Key = 1<<familyBits - 1
	boldBit          Key = 1 << 5
	italicBit        Key = 1 << 6
	orientationShift     = 7

	// OrientationSteps is the number of distinct orientations a key
	// can represent.
	OrientationSteps = 3600
)

// QuantizeOrientation rounds degrees to the nearest tenth and wraps the
// result into [0, OrientationSteps).
func QuantizeOrientation(degrees float64) int {
	q := int(math.Round(degrees*10)) % OrientationSteps
	if q < 0 {
		q += OrientationSteps
	}
	return q
}

// Encode derives the key of a style. A family outside the encodable range
// is replaced with FamilySans.
func Encode(s TextStyle) Key {
	family := s.Family
	if !family.Encodable() {
		family = FamilySans
	}

	k := keyTag
	k |= Key(family-familyMin) << familyShift
	if s.Bold {
		k |= boldBit
	}
	if s.Italic {
		k |= italicBit
	}
	k |= Key(QuantizeOrientation(s.Orientation)) << orientationShift
	return k
}

// Decode restores the fields a key was derived from. All other fields of
// the returned style are zero.
func Decode(k Key) TextStyle {
	return TextStyle{
		Family:      k.Family(),
		Bold:        k.Bold(),
		Italic:      k.Italic(),
		Orientation: k.Orientation(),
	}
}

// Valid reports whether k could have been produced by Encode.
func (k Key) Valid() bool {
	return k&keyTag != 0 && int(k>>orientationShift) < OrientationSteps
}

// Family returns the family encoded in the key.
func (k Key) Family() Family {
	return Family((k>>familyShift)&familyMask) + familyMin
}

// Bold returns the bold flag encoded in the key.
func (k Key) Bold() bool { return k&boldBit != 0 }

// Italic returns the italic flag encoded in the key.
func (k Key) Italic() bool { return k&italicBit != 0 }

// Orientation returns the orientation in degrees, in [0, 360).
func (k Key) Orientation() float64 {
	return float64(k>>orientationShift) / 10
}

// Unrotated returns the key of the same face with zero orientation.
func (k Key) Unrotated() Key {
	return k & (1<<orientationShift - 1)
}

// String returns a readable form of the key.
func (k Key) String() string {
	return fmt.Sprintf("Key(%s bold=%t italic=%t orient=%.1f)",
		k.Family(), k.Bold(), k.Italic(), k.Orientation())
}
