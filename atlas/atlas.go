package atlas

import "sync"
import "errors"
import "context"
import "runtime"

import "golang.org/x/sync/errgroup"

import "github.com/tinne26/glyphtrace"
import "github.com/tinne26/glyphtrace/cache"
import "github.com/tinne26/glyphtrace/font"

// An explicit mapping from runes to traced glyphs, built once per font
// and tracer configuration.
//
// All the runes in the charset are traced when the atlas is created.
// After that, the atlas is read-only and safe for concurrent use. Runes
// outside the charset are only available if a cache handler has been
// set, in which case they are traced on demand.
type Atlas struct {
	font     *font.Font
	tracer   glyphtrace.Tracer // configuration snapshot
	runes    []rune
	missing  []rune // charset runes traced as .notdef
	glyphs   map[rune]*glyphtrace.Glyph
	failures map[rune]error

	// on-demand tracing for runes outside the charset
	mutex        sync.Mutex
	loader       *font.Loader
	cacheHandler cache.GlyphCacheHandler
	lazyFailures map[rune]error
}

// Creates a new atlas tracing all the runes in the given charset. If
// the charset is empty, [DefaultCharset] is used. If the tracer is nil,
// a default tracer is used. Tracers can be reconfigured or reused
// after the call, as their configuration is copied.
//
// Runes missing from the font are traced with the font's .notdef glyph,
// which is usually drawn as an empty box, and reported by [Atlas.Missing]().
// Errors while tracing specific glyphs don't make the whole atlas fail;
// see [Atlas.Failures]() instead. Other than [glyphtrace.ErrInvalidSampleCount],
// only errors from the font's character map are returned.
func New(font *font.Font, tracer *glyphtrace.Tracer, charset string) (*Atlas, error) {
	return NewWithContext(context.Background(), font, tracer, charset)
}

// Like [New](), but stops tracing early and returns the context's
// error if the context is cancelled.
func NewWithContext(ctx context.Context, fnt *font.Font, tracer *glyphtrace.Tracer, charset string) (*Atlas, error) {
	if fnt == nil { panic("nil font") }
	if tracer == nil { tracer = glyphtrace.NewTracer() }
	if tracer.Segments() < 2 { return nil, glyphtrace.ErrInvalidSampleCount }
	if charset == "" { charset = DefaultCharset }

	self := &Atlas{
		font: fnt,
		tracer: *tracer,
		runes: uniqueRunes(charset),
	}
	missing, err := font.GetMissingRunes(fnt, string(self.runes))
	if err != nil { return nil, err }
	self.missing  = missing
	self.glyphs   = make(map[rune]*glyphtrace.Glyph, len(self.runes))
	self.failures = make(map[rune]error)

	// split runes in chunks, one loader per worker
	workers := runtime.GOMAXPROCS(0)
	if workers > len(self.runes) { workers = len(self.runes) }
	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(workers)
	var resultsMutex sync.Mutex
	for w := 0; w < workers; w++ {
		chunk := self.runes[w*len(self.runes)/workers : (w + 1)*len(self.runes)/workers]
		group.Go(func() error {
			loader := font.NewLoader(fnt)
			for _, codePoint := range chunk {
				if err := ctx.Err(); err != nil { return err }
				glyph, err := self.trace(loader, codePoint)
				resultsMutex.Lock()
				if err != nil {
					self.failures[codePoint] = err
				} else {
					self.glyphs[codePoint] = glyph
				}
				resultsMutex.Unlock()
			}
			return nil
		})
	}
	err = group.Wait()
	if err != nil { return nil, err }
	return self, nil
}

func (self *Atlas) trace(loader *font.Loader, codePoint rune) (*glyphtrace.Glyph, error) {
	outline, err := loader.Outline(codePoint)
	if errors.Is(err, font.ErrMissingGlyph) {
		outline, err = loader.OutlineByIndex(0)
	}
	if err != nil { return nil, err }
	return self.tracer.TraceGlyph(outline)
}

// Returns the atlas font.
func (self *Atlas) Font() *font.Font { return self.font }

// Returns a copy of the tracer configuration used by the atlas.
func (self *Atlas) Tracer() *glyphtrace.Tracer {
	tracer := self.tracer
	return &tracer
}

// Returns the unique runes of the atlas charset, in their original order.
func (self *Atlas) Runes() []rune {
	return append([]rune(nil), self.runes...)
}

// Returns the charset runes that the font doesn't have a glyph for,
// in charset order. These are traced with the .notdef glyph.
func (self *Atlas) Missing() []rune {
	return append([]rune(nil), self.missing...)
}

// Returns the errors found while tracing, indexed by rune. Includes
// runes traced on demand.
func (self *Atlas) Failures() map[rune]error {
	self.mutex.Lock()
	defer self.mutex.Unlock()
	failures := make(map[rune]error, len(self.failures) + len(self.lazyFailures))
	for codePoint, err := range self.failures {
		failures[codePoint] = err
	}
	for codePoint, err := range self.lazyFailures {
		failures[codePoint] = err
	}
	return failures
}

// Sets the cache handler used to trace runes outside the atlas charset.
// Passing nil disables on-demand tracing, which is the default.
//
// The handler is notified of the atlas font and tracer, and it must not
// be used by anyone else while set in the atlas.
func (self *Atlas) SetCacheHandler(cacheHandler cache.GlyphCacheHandler) {
	self.mutex.Lock()
	defer self.mutex.Unlock()
	self.cacheHandler = cacheHandler
	if cacheHandler == nil { return }
	cacheHandler.NotifyFontChange(self.font)
	cacheHandler.NotifyTracerChange(&self.tracer)
}

// Returns the cache handler, or nil if none has been set.
func (self *Atlas) GetCacheHandler() cache.GlyphCacheHandler {
	self.mutex.Lock()
	defer self.mutex.Unlock()
	return self.cacheHandler
}

// Returns the traced glyph for the given rune. Runes outside the
// charset are traced on demand if a cache handler is set.
func (self *Atlas) Glyph(codePoint rune) (*glyphtrace.Glyph, bool) {
	glyph, found := self.glyphs[codePoint]
	if found { return glyph, true }
	if _, failed := self.failures[codePoint]; failed { return nil, false }
	return self.lazyGlyph(codePoint)
}

func (self *Atlas) lazyGlyph(codePoint rune) (*glyphtrace.Glyph, bool) {
	self.mutex.Lock()
	defer self.mutex.Unlock()
	if self.cacheHandler == nil { return nil, false }
	if _, failed := self.lazyFailures[codePoint]; failed { return nil, false }

	glyph, found := self.cacheHandler.GetGlyph(codePoint)
	if found { return glyph, true }
	if self.loader == nil { self.loader = font.NewLoader(self.font) }
	glyph, err := self.trace(self.loader, codePoint)
	if err != nil {
		if self.lazyFailures == nil { self.lazyFailures = make(map[rune]error) }
		self.lazyFailures[codePoint] = err
		return nil, false
	}
	self.cacheHandler.PassGlyph(codePoint, glyph)
	return glyph, true
}

// Returns the vertices of all the glyph contours concatenated, or nil
// if the glyph is not available.
func (self *Atlas) Vertices(codePoint rune) []glyphtrace.Point {
	glyph, found := self.Glyph(codePoint)
	if !found { return nil }
	return glyph.Vertices()
}

// Returns the number of vertices of the glyph, or 0 if the glyph is
// not available.
func (self *Atlas) NumVertices(codePoint rune) int {
	glyph, found := self.Glyph(codePoint)
	if !found { return 0 }
	return glyph.NumVertices()
}

// Returns the line segments of the glyph as consecutive point pairs,
// or nil if the glyph is not available. The returned slice must not
// be modified.
func (self *Atlas) Lines(codePoint rune) []glyphtrace.Point {
	glyph, found := self.Glyph(codePoint)
	if !found { return nil }
	return glyph.Lines
}

// Returns the glyph advance, normalized so the vertical component is
// always 1, and whether the glyph is available at all.
func (self *Atlas) Advance(codePoint rune) (glyphtrace.Point, bool) {
	glyph, found := self.Glyph(codePoint)
	if !found { return glyphtrace.Point{}, false }
	return glyph.Advance, true
}

// Returns the horizontal advance of the glyph, or 0 if not available.
func (self *Atlas) XAdvance(codePoint rune) float64 {
	advance, _ := self.Advance(codePoint)
	return advance.X
}

// Returns the vertical advance of the glyph, or 0 if not available.
func (self *Atlas) YAdvance(codePoint rune) float64 {
	advance, _ := self.Advance(codePoint)
	return advance.Y
}

// Returns the total number of vertices and lines for all the runes
// in the atlas charset.
func (self *Atlas) Stats() (vertices, lines int) {
	for _, glyph := range self.glyphs {
		vertices += glyph.NumVertices()
		lines += glyph.NumLines()
	}
	return vertices, lines
}
