package main

import "os"
import "io"
import "fmt"
import "log"
import "flag"
import "time"
import "bufio"
import "errors"
import "strconv"

import "golang.org/x/term"
import "golang.org/x/image/font/gofont/goregular"

import "github.com/tinne26/glyphtrace"
import "github.com/tinne26/glyphtrace/atlas"
import "github.com/tinne26/glyphtrace/cache"
import "github.com/tinne26/glyphtrace/font"

// Traces the printable characters of a font and reports the results,
// either as statistics or as the line segments of a laid out text.
//
// Usage examples:
//   glyphlines -font fonts/Hermit-Regular.otf
//   glyphlines -font fonts/ -name "Roboto Mono" -format svg -o roboto.svg
//   glyphlines -segments 3 -text "Hello!" -format lines
//   glyphlines -font fonts/ -list

const defaultText = atlas.Digits + "\n" + atlas.LowercaseLetters + "\n" +
	atlas.UppercaseLetters + "\n" + atlas.Punctuation

type options struct {
	fontPath string
	fontName string
	list     bool
	segments int
	strict   bool
	text     string
	format   string
	outPath  string
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("glyphlines: ")

	var opts options
	flag.StringVar(&opts.fontPath, "font", "", "font file or directory with .ttf/.otf fonts (default: Go Regular)")
	flag.StringVar(&opts.fontName, "name", "", "name of the font to use when -font is a directory")
	flag.BoolVar(&opts.list, "list", false, "list the available fonts instead of tracing")
	flag.IntVar(&opts.segments, "segments", 10, "number of points sampled per Bézier arc")
	flag.BoolVar(&opts.strict, "strict", false, "report unpaired cubic control points instead of skipping them")
	flag.StringVar(&opts.text, "text", defaultText, "text to lay out for the svg and lines formats")
	flag.StringVar(&opts.format, "format", "stats", "output format: stats, svg or lines")
	flag.StringVar(&opts.outPath, "o", "", "output file (default: standard output)")
	flag.Parse()

	err := run(opts, os.Stdout)
	if err != nil { log.Fatal(err) }
}

func run(opts options, stdout *os.File) error {
	startTime := time.Now()
	library, err := loadLibrary(opts.fontPath)
	if err != nil { return err }
	if opts.list {
		return writeOutput(opts.outPath, stdout, func(w io.Writer) error {
			return writeFontList(w, library)
		})
	}

	// pick font and create the atlas
	fnt, err := selectFont(library, opts.fontName)
	if err != nil { return err }
	tracer := glyphtrace.NewTracer()
	tracer.SetSegments(opts.segments)
	tracer.SetStrict(opts.strict)
	fontAtlas, err := atlas.New(fnt, tracer, atlas.DefaultCharset)
	if err != nil { return err }
	loadTime := time.Since(startTime)
	fontAtlas.SetCacheHandler(cache.NewDefaultCache(4*1024*1024).NewHandler())

	var write func(io.Writer) error
	switch opts.format {
	case "stats":
		write = func(w io.Writer) error { return writeStats(w, fontAtlas, loadTime) }
	case "svg":
		if opts.outPath == "" && term.IsTerminal(int(stdout.Fd())) {
			return errors.New("refusing to write SVG to a terminal, use -o or redirect the output")
		}
		write = func(w io.Writer) error {
			writeSVG(w, fontAtlas.Layout(opts.text))
			return nil
		}
	case "lines":
		write = func(w io.Writer) error {
			writeLines(w, fontAtlas.Layout(opts.text))
			return nil
		}
	default:
		return errors.New("unknown format '" + opts.format + "'")
	}
	return writeOutput(opts.outPath, stdout, write)
}

// Calls write with a buffered writer for the given output path, or for
// stdout if the path is empty. The output file is always closed, and
// the first error found is returned.
func writeOutput(path string, stdout io.Writer, write func(io.Writer) error) error {
	var file *os.File
	out := stdout
	if path != "" {
		var err error
		file, err = os.Create(path)
		if err != nil { return err }
		out = file
	}

	writer := bufio.NewWriter(out)
	err := write(writer)
	if err == nil { err = writer.Flush() }
	if file != nil {
		closeErr := file.Close()
		if err == nil { err = closeErr }
	}
	return err
}

// Creates a font library from the given path, which can be a font file
// or a directory with fonts. Without a path, only Go Regular is added.
func loadLibrary(path string) (*font.Library, error) {
	library := font.NewLibrary()
	if path == "" {
		_, err := library.ParseFromBytes(goregular.TTF)
		return library, err
	}

	info, err := os.Stat(path)
	if err != nil { return nil, err }
	if !info.IsDir() {
		_, err = library.ParseFromPath(path)
		return library, err
	}
	_, _, err = library.ParseAllFromPath(path)
	if err != nil { return nil, err }
	if library.Size() == 0 {
		return nil, errors.New("no .ttf or .otf fonts found at '" + path + "'")
	}
	return library, nil
}

// Returns the library font with the given name, or the first one by
// name order if the name is empty.
func selectFont(library *font.Library, name string) (*font.Font, error) {
	if name == "" {
		name = library.Names()[0]
	} else if !library.HasFont(name) {
		return nil, errors.New("font '" + name + "' not found, see -list")
	}
	return library.GetFont(name), nil
}

func writeFontList(w io.Writer, library *font.Library) error {
	return library.EachFont(func(name string, fnt *font.Font) error {
		props, err := font.GetProperties(fnt)
		if err != nil { return err }
		flavor := "cff"
		if fnt.HasTrueTypeOutlines() { flavor = "truetype" }
		fmt.Fprintf(w, "%s\t%s\t%s\t%d glyphs\t%s\n",
			name, props.Family, props.Subfamily, fnt.NumGlyphs(), flavor)
		return nil
	})
}

func writeStats(w io.Writer, fontAtlas *atlas.Atlas, loadTime time.Duration) error {
	props, err := font.GetProperties(fontAtlas.Font())
	if err != nil { return err }
	vertices, lines := fontAtlas.Stats()
	fmt.Fprintf(w, "Loaded font: %s (%s, %s)\n", props.Name, props.Family, props.Subfamily)
	fmt.Fprintf(w, "Identifier: %s\n", props.Identifier)
	fmt.Fprintf(w, "Load time: %5.3f ms\n", float64(loadTime.Microseconds())/1000)
	fmt.Fprintf(w, "Num vertices: %d\n", vertices)
	fmt.Fprintf(w, "Num lines: %d\n", lines)
	if missing := fontAtlas.Missing(); len(missing) > 0 {
		fmt.Fprintf(w, "Traced as .notdef: %q\n", missing)
	}
	for codePoint, err := range fontAtlas.Failures() {
		fmt.Fprintf(w, "Failed %q: %s\n", codePoint, err)
	}
	return nil
}

// Writes the segments as an SVG document. Segment coordinates have the
// y axis pointing up, so they are flipped.
func writeSVG(w io.Writer, lines []glyphtrace.Point) {
	const margin = 0.25
	min, max := atlas.Bounds(lines)
	width, height := max.X - min.X + 2*margin, max.Y - min.Y + 2*margin
	fmt.Fprintf(w, "<svg xmlns=\"http://www.w3.org/2000/svg\" viewBox=\"%s %s %s %s\" width=\"%d\" height=\"%d\">\n",
		fmtCoord(min.X - margin), fmtCoord(-max.Y - margin), fmtCoord(width), fmtCoord(height),
		int(width*128), int(height*128))
	fmt.Fprint(w, "<g stroke=\"black\" stroke-width=\"0.005\" stroke-linecap=\"round\">\n")
	for i := 0; i + 1 < len(lines); i += 2 {
		fmt.Fprintf(w, "<line x1=\"%s\" y1=\"%s\" x2=\"%s\" y2=\"%s\"/>\n",
			fmtCoord(lines[i].X), fmtCoord(-lines[i].Y),
			fmtCoord(lines[i + 1].X), fmtCoord(-lines[i + 1].Y))
	}
	fmt.Fprint(w, "</g>\n</svg>\n")
}

// Writes one segment per line, as "x1 y1 x2 y2".
func writeLines(w io.Writer, lines []glyphtrace.Point) {
	for i := 0; i + 1 < len(lines); i += 2 {
		fmt.Fprintf(w, "%s %s %s %s\n",
			fmtCoord(lines[i].X), fmtCoord(lines[i].Y),
			fmtCoord(lines[i + 1].X), fmtCoord(lines[i + 1].Y))
	}
}

func fmtCoord(value float64) string {
	return strconv.FormatFloat(value, 'f', 5, 64)
}
