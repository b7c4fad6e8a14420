package atlas

import "testing"

import "github.com/google/go-cmp/cmp"

import "github.com/tinne26/glyphtrace"
import "github.com/tinne26/glyphtrace/cache"

func TestLayout(t *testing.T) {
	fnt := ensureTestFontLoaded(t)
	atlas, err := New(fnt, nil, "")
	if err != nil { t.Fatal(err) }

	var expected []glyphtrace.Point
	shift := func(codePoint rune, origin glyphtrace.Point) {
		for _, point := range atlas.Lines(codePoint) {
			expected = append(expected, point.Add(origin))
		}
	}
	shift('a', glyphtrace.Pt(0, 0))
	shift('b', glyphtrace.Pt(atlas.XAdvance('a'), 0))
	shift('c', glyphtrace.Pt(0, -1))
	shift('d', glyphtrace.Pt(atlas.XAdvance('c'), -1))

	got := atlas.Layout("ab\ncd")
	if diff := cmp.Diff(expected, got); diff != "" {
		t.Fatalf("layout mismatch (-want +got):\n%s", diff)
	}

	// runes outside the charset are skipped
	if diff := cmp.Diff(got, atlas.Layout("ab☃\ncd")); diff != "" {
		t.Fatalf("layout mismatch (-want +got):\n%s", diff)
	}

	if lines := atlas.Layout(""); len(lines) != 0 {
		t.Fatal("expected no lines for empty text")
	}
	if lines := atlas.Layout("  \n "); len(lines) != 0 {
		t.Fatal("expected no lines for whitespace")
	}

	min, max := Bounds(got)
	if min.Y >= -0.9 || max.Y <= 0.3 || min.X > 0.1 {
		t.Fatalf("unexpected layout bounds %s, %s", min, max)
	}
	min, max = Bounds(nil)
	if min != (glyphtrace.Point{}) || max != (glyphtrace.Point{}) {
		t.Fatal("expected zero bounds for empty layouts")
	}
}

func TestLayoutNormalization(t *testing.T) {
	fnt := ensureTestFontLoaded(t)
	atlas, err := New(fnt, nil, LowercaseLetters)
	if err != nil { t.Fatal(err) }
	atlas.SetCacheHandler(cache.NewDefaultCache(1024*1024).NewHandler())

	composed := atlas.Layout("café")
	decomposed := atlas.Layout("café")
	if len(composed) == 0 { t.Fatal("expected layout lines") }
	if diff := cmp.Diff(composed, decomposed); diff != "" {
		t.Fatalf("layout mismatch (-want +got):\n%s", diff)
	}

	var origins []glyphtrace.Point
	atlas.EachGlyph("café", func(_ rune, origin glyphtrace.Point, _ *glyphtrace.Glyph) {
		origins = append(origins, origin)
	})
	if len(origins) != 4 || origins[0] != (glyphtrace.Point{}) {
		t.Fatalf("unexpected glyph origins %v", origins)
	}
	if origins[3].X != atlas.XAdvance('c') + atlas.XAdvance('a') + atlas.XAdvance('f') {
		t.Fatalf("unexpected origin for the last glyph: %s", origins[3])
	}
}
