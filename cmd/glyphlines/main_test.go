package main

import "os"
import "io"
import "bytes"
import "errors"
import "strings"
import "testing"
import "path/filepath"

import "github.com/tinne26/glyphtrace"

func TestWriteLines(t *testing.T) {
	var buffer bytes.Buffer
	lines := glyphtrace.Flatten([][]glyphtrace.Point{
		{glyphtrace.Pt(0, 0), glyphtrace.Pt(0.5, 0), glyphtrace.Pt(0.5, 1)},
	})
	writeLines(&buffer, lines)
	expected := "0.00000 0.00000 0.50000 0.00000\n" +
		"0.50000 0.00000 0.50000 1.00000\n" +
		"0.50000 1.00000 0.00000 0.00000\n"
	if buffer.String() != expected {
		t.Fatalf("unexpected output:\n%s", buffer.String())
	}

	buffer.Reset()
	writeSVG(&buffer, lines)
	svg := buffer.String()
	if !strings.HasPrefix(svg, "<svg ") || !strings.HasSuffix(svg, "</svg>\n") {
		t.Fatalf("malformed svg:\n%s", svg)
	}
	if strings.Count(svg, "<line ") != 3 { t.Fatalf("expected 3 lines:\n%s", svg) }
	if !strings.Contains(svg, `y2="-1.00000"`) { t.Fatalf("expected flipped y coordinates:\n%s", svg) }
}

func TestLoadLibrary(t *testing.T) {
	library, err := loadLibrary("")
	if err != nil { t.Fatal(err) }
	fnt, err := selectFont(library, "")
	if err != nil { t.Fatal(err) }
	if fnt == nil || !library.HasFont("Go Regular") {
		t.Fatalf("unexpected default fonts %v", library.Names())
	}
	_, err = selectFont(library, "Go Bold")
	if err == nil || !strings.Contains(err.Error(), "not found") {
		t.Fatalf("expected not found error, got %v", err)
	}

	_, err = loadLibrary(t.TempDir())
	if err == nil || !strings.Contains(err.Error(), "no .ttf or .otf fonts") {
		t.Fatalf("expected error for empty directory, got %v", err)
	}
	_, err = loadLibrary("does/not/exist.ttf")
	if err == nil { t.Fatal("expected error for missing path") }
}

func TestRunOutputFile(t *testing.T) {
	dir := t.TempDir()
	opts := options{ segments: 4, text: "ab\nc", format: "lines", outPath: filepath.Join(dir, "out.txt") }
	err := run(opts, os.Stdout)
	if err != nil { t.Fatal(err) }
	data, err := os.ReadFile(opts.outPath)
	if err != nil { t.Fatal(err) }
	if len(data) == 0 || !strings.HasSuffix(string(data), "\n") {
		t.Fatalf("expected complete output, got %d bytes", len(data))
	}

	opts.format, opts.outPath = "stats", filepath.Join(dir, "stats.txt")
	opts.text = ""
	err = run(opts, os.Stdout)
	if err != nil { t.Fatal(err) }
	data, err = os.ReadFile(opts.outPath)
	if err != nil { t.Fatal(err) }
	if !strings.HasPrefix(string(data), "Loaded font: Go Regular (Go, Regular)\n") {
		t.Fatalf("unexpected stats:\n%s", data)
	}

	opts.list, opts.outPath = true, filepath.Join(dir, "list.txt")
	err = run(opts, os.Stdout)
	if err != nil { t.Fatal(err) }
	data, err = os.ReadFile(opts.outPath)
	if err != nil { t.Fatal(err) }
	if !strings.HasPrefix(string(data), "Go Regular\tGo\tRegular\t") {
		t.Fatalf("unexpected font list:\n%s", data)
	}

	// errors are reported instead of being lost on exit
	opts.list, opts.format = false, "bmp"
	err = run(opts, os.Stdout)
	if err == nil || !strings.Contains(err.Error(), "unknown format") {
		t.Fatalf("expected unknown format error, got %v", err)
	}
	err = writeOutput(filepath.Join(dir, "missing", "out.txt"), os.Stdout, func(io.Writer) error { return nil })
	if err == nil { t.Fatal("expected error creating output file") }
	writeErr := errors.New("write failed")
	err = writeOutput(filepath.Join(dir, "partial.txt"), os.Stdout, func(io.Writer) error { return writeErr })
	if err != writeErr { t.Fatalf("expected write error, got %v", err) }
}
