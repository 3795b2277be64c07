// Package raster composites laid out text into an RGBA pixmap.
//
// Render fills the rotated background and frame quad, draws the shadow
// pass and then the text pass. The pixmap is sized from the layout's
// bounding box: pixmap column x-BBox[0] and row BBox[3]-y hold the pixel
// at layout coordinates (x, y), so the first row is the top of the text.
package raster
