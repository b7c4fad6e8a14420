package glyphtrace

import "errors"
import "math/rand"
import "testing"

import "github.com/google/go-cmp/cmp"
import "github.com/google/go-cmp/cmp/cmpopts"

var approx = cmpopts.EquateApprox(0, 1e-12)

func TestSampleBezierEndpoints(t *testing.T) {
	rng := rand.New(rand.NewSource(9371))
	for order := 1; order <= 3; order++ {
		for samples := 2; samples <= 12; samples++ {
			controls := make([]Point, order + 1)
			for i := range controls {
				controls[i] = Pt(rng.Float64()*2048 - 1024, rng.Float64()*2048 - 1024)
			}
			points, err := SampleBezier(controls, samples)
			if err != nil { t.Fatalf("order %d, samples %d: %s", order, samples, err) }
			if len(points) != samples {
				t.Fatalf("order %d: expected %d points, got %d", order, samples, len(points))
			}
			if points[0] != controls[0] {
				t.Fatalf("order %d, samples %d: first point %s != %s", order, samples, points[0], controls[0])
			}
			if points[samples - 1] != controls[order] {
				t.Fatalf("order %d, samples %d: last point %s != %s", order, samples, points[samples - 1], controls[order])
			}
		}
	}
}

func TestSampleBezierLine(t *testing.T) {
	points, err := SampleBezier([]Point{Pt(0, 0), Pt(4, 8)}, 5)
	if err != nil { t.Fatal(err) }
	expected := []Point{Pt(0, 0), Pt(1, 2), Pt(2, 4), Pt(3, 6), Pt(4, 8)}
	if diff := cmp.Diff(expected, points, approx); diff != "" {
		t.Fatalf("line samples mismatch (-want +got):\n%s", diff)
	}
}

func TestSampleBezierClosedForm(t *testing.T) {
	p0, p1, p2, p3 := Pt(10, 50), Pt(20, 10), Pt(44, 10), Pt(54, 50)

	quad := func(u float64) Point {
		omu := 1 - u
		return p0.Scale(omu*omu).Add(p1.Scale(2*omu*u)).Add(p2.Scale(u*u))
	}
	cube := func(u float64) Point {
		omu := 1 - u
		return p0.Scale(omu*omu*omu).Add(p1.Scale(3*omu*omu*u)).
			Add(p2.Scale(3*omu*u*u)).Add(p3.Scale(u*u*u))
	}

	points, err := SampleBezier([]Point{p0, p1, p2}, 5)
	if err != nil { t.Fatal(err) }
	expected := []Point{p0, quad(0.25), quad(0.5), quad(0.75), p2}
	if diff := cmp.Diff(expected, points, approx); diff != "" {
		t.Fatalf("quadratic mismatch (-want +got):\n%s", diff)
	}

	points, err = SampleBezier([]Point{p0, p1, p2, p3}, 4)
	if err != nil { t.Fatal(err) }
	expected = []Point{p0, cube(1.0/3.0), cube(2.0/3.0), p3}
	if diff := cmp.Diff(expected, points, approx); diff != "" {
		t.Fatalf("cubic mismatch (-want +got):\n%s", diff)
	}
}

func TestSampleBezierErrors(t *testing.T) {
	controls := []Point{Pt(0, 0), Pt(1, 1), Pt(2, 0)}
	for _, samples := range []int{1, 0, -3} {
		points, err := SampleBezier(controls, samples)
		if !errors.Is(err, ErrInvalidSampleCount) {
			t.Fatalf("samples = %d: expected ErrInvalidSampleCount, got %v", samples, err)
		}
		if points != nil { t.Fatal("expected no partial output") }
	}

	_, err := SampleBezier([]Point{Pt(1, 1)}, 5)
	if !errors.Is(err, ErrInvalidControlPoints) {
		t.Fatalf("expected ErrInvalidControlPoints, got %v", err)
	}
}

func TestBinomialRow(t *testing.T) {
	tests := map[int][]float64{
		0: {1},
		1: {1, 1},
		2: {1, 2, 1},
		3: {1, 3, 3, 1},
		4: {1, 4, 6, 4, 1},
		6: {1, 6, 15, 20, 15, 6, 1},
	}
	for n, expected := range tests {
		if diff := cmp.Diff(expected, binomialRow(n)); diff != "" {
			t.Fatalf("row %d mismatch (-want +got):\n%s", n, diff)
		}
	}
}
