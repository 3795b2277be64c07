// Package layout computes the geometry of styled multi-line text.
//
// Layout measures every line with kerning and rotation applied, derives a
// reference line height from a probe string, places the line origins
// according to the style's justification and returns the integer bounding
// box of the result together with the rotated corners of the text block.
//
// All coordinates are integer pixels with Y pointing up. The anchor point
// (0, 0) is the point the justification refers to.
package layout
