package glyphtrace

import "testing"

import "github.com/google/go-cmp/cmp"

func TestFlatten(t *testing.T) {
	contours := [][]Point{
		{Pt(0, 0), Pt(1, 0), Pt(1, 1)},
		{},
		{Pt(5, 5)},
		{Pt(2, 2), Pt(3, 3)},
	}
	expected := []Point{
		Pt(0, 0), Pt(1, 0), Pt(1, 0), Pt(1, 1), Pt(1, 1), Pt(0, 0),
		Pt(5, 5), Pt(5, 5),
		Pt(2, 2), Pt(3, 3), Pt(3, 3), Pt(2, 2),
	}
	if diff := cmp.Diff(expected, Flatten(contours)); diff != "" {
		t.Fatalf("lines mismatch (-want +got):\n%s", diff)
	}

	if lines := Flatten(nil); len(lines) != 0 {
		t.Fatalf("expected no lines, got %v", lines)
	}
}

func TestFlattenSegmentCount(t *testing.T) {
	// every contour with n > 0 vertices must produce n segments,
	// whatever the parity of n
	for n := 1; n <= 9; n++ {
		contour := make([]Point, n)
		for i := range contour {
			contour[i] = Pt(float64(i), float64(i*i))
		}
		lines := Flatten([][]Point{contour})
		if len(lines) != 2*n {
			t.Fatalf("n = %d: expected %d segments, got %d", n, n, len(lines)/2)
		}
		if lines[2*n - 2] != contour[n - 1] || lines[2*n - 1] != contour[0] {
			t.Fatalf("n = %d: contour not closed back to its first vertex", n)
		}
	}
}

func TestLineCoords(t *testing.T) {
	lines := []Point{Pt(0, 0.5), Pt(1, 1.5), Pt(-2, 3)}
	expected := []float32{0, 0.5, 1, 1.5, -2, 3}
	if diff := cmp.Diff(expected, LineCoords(lines)); diff != "" {
		t.Fatalf("coords mismatch (-want +got):\n%s", diff)
	}
}
