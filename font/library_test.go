package font

import "errors"
import "testing"
import "path/filepath"

import "github.com/google/go-cmp/cmp"

func TestLibrary(t *testing.T) {
	ensureTestAssetsLoaded()
	lib := NewLibrary()
	if lib.Size() != 0 || len(lib.Names()) != 0 { t.Fatal("expected empty library") }

	dir := writeTestFontsDir(t)
	name, err := lib.ParseFromPath(filepath.Join(dir, testPathA))
	if err != nil { t.Fatalf("unexpected error: %s", err) }
	if name != "Go Regular" || !lib.HasFont(name) || lib.GetFont(name) == nil {
		t.Fatalf("expected library to contain '%s'", name)
	}
	if lib.HasFont("Go Regular Undefined") || lib.GetFont("Go Regular Undefined") != nil {
		t.Fatal("unexpected font in library")
	}

	_, err = lib.ParseFromBytes([]byte{1, 2, 3, 4, 5, 6, 7, 8})
	if err == nil { t.Fatal("expected parsing error") }
	if lib.Size() != 1 { t.Fatalf("expected 1 font, got %d", lib.Size()) }

	// readme.txt is ignored and Go Regular is already present
	added, skipped, err := lib.ParseAllFromPath(dir)
	if err != nil { t.Fatalf("unexpected error: %s", err) }
	if added != 1 || skipped != 1 {
		t.Fatalf("expected 1 added and 1 skipped, got %d and %d", added, skipped)
	}
	_, _, err = lib.ParseAllFromPath(filepath.Join(dir, "missing"))
	if err == nil { t.Fatal("expected error for missing directory") }

	var visited []string
	err = lib.EachFont(func(fontName string, font *Font) error {
		if font != lib.GetFont(fontName) { t.Fatalf("font mismatch for '%s'", fontName) }
		visited = append(visited, fontName)
		return nil
	})
	if err != nil { t.Fatal(err) }
	if diff := cmp.Diff([]string{"Go Bold", "Go Regular"}, visited); diff != "" {
		t.Fatalf("visit order mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(visited, lib.Names()); diff != "" {
		t.Fatalf("names mismatch (-want +got):\n%s", diff)
	}

	stopErr := errors.New("stop")
	visited = visited[ : 0]
	err = lib.EachFont(func(fontName string, _ *Font) error {
		visited = append(visited, fontName)
		return stopErr
	})
	if err != stopErr || len(visited) != 1 {
		t.Fatalf("expected stop after 1 font, got %v after %d", err, len(visited))
	}

	name, err = lib.AddFont(testFontB)
	if err != ErrAlreadyPresent || name != "Go Bold" {
		t.Fatalf("expected ErrAlreadyPresent for 'Go Bold', got %v for '%s'", err, name)
	}
	if doesNotPanic(func() { lib.AddFont(nil) }) {
		t.Fatal("lib.AddFont(nil) should have panicked")
	}
}
