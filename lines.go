package glyphtrace

// Converts closed polylines into independent line segments. Each segment
// takes two consecutive points of the returned slice, connecting vertex
// k to vertex k + 1 of a contour, and each contour is closed with a final
// segment from its last vertex back to the first one.
//
// Contours with a single point produce a single zero-length segment,
// and empty contours produce no segments at all.
func Flatten(contours [][]Point) []Point {
	var total int
	for _, contour := range contours {
		total += 2*len(contour)
	}

	lines := make([]Point, 0, total)
	for _, contour := range contours {
		n := len(contour)
		if n == 0 { continue }
		for k := 0; k < n - 1; k++ {
			lines = append(lines, contour[k], contour[k + 1])
		}
		lines = append(lines, contour[n - 1], contour[0])
	}
	return lines
}

// Returns the line segments as a flat x1, y1, x2, y2, ... float32
// buffer, ready to be uploaded as line primitives.
func LineCoords(lines []Point) []float32 {
	coords := make([]float32, 0, 2*len(lines))
	for _, point := range lines {
		coords = append(coords, float32(point.X), float32(point.Y))
	}
	return coords
}
