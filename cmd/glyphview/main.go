package main

import "os"
import "log"
import "flag"
import "math"
import "image/color"

import "github.com/hajimehoshi/ebiten/v2"
import "github.com/hajimehoshi/ebiten/v2/ebitenutil"
import "golang.org/x/image/font/gofont/goregular"

import "github.com/tinne26/glyphtrace"
import "github.com/tinne26/glyphtrace/atlas"
import "github.com/tinne26/glyphtrace/cache"
import "github.com/tinne26/glyphtrace/font"

// Opens a window showing the line segments traced for a text. Each
// glyph is drawn with a different color, so arcs and contours can be
// told apart. Use the mouse wheel to zoom and the arrow keys to move.

const defaultText = atlas.Digits + "\n" + atlas.LowercaseLetters + "\n" +
	atlas.UppercaseLetters + "\n" + atlas.Punctuation

var palette = []color.RGBA{
	{31, 119, 180, 255}, {255, 127, 14, 255}, {44, 160, 44, 255},
	{214, 39, 40, 255}, {148, 103, 189, 255}, {140, 86, 75, 255},
	{227, 119, 194, 255}, {127, 127, 127, 255}, {188, 189, 34, 255},
	{23, 190, 207, 255},
}

type coloredLines struct {
	lines []glyphtrace.Point
	color color.RGBA
}

type Game struct {
	glyphs  []coloredLines
	scale   float64
	offsetX float64
	offsetY float64
}

func (self *Game) Layout(w, h int) (int, int) { return w, h }
func (self *Game) Update() error {
	const panSpeed = 6
	_, wheel := ebiten.Wheel()
	if wheel != 0 {
		factor := math.Pow(1.1, wheel)
		x, y := ebiten.CursorPosition()
		self.offsetX = float64(x) - (float64(x) - self.offsetX)*factor
		self.offsetY = float64(y) - (float64(y) - self.offsetY)*factor
		self.scale *= factor
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft ) { self.offsetX += panSpeed }
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) { self.offsetX -= panSpeed }
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp   ) { self.offsetY += panSpeed }
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown ) { self.offsetY -= panSpeed }
	if ebiten.IsKeyPressed(ebiten.KeyEscape) { return ebiten.Termination }
	return nil
}

func (self *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.White)
	for _, glyph := range self.glyphs {
		for i := 0; i + 1 < len(glyph.lines); i += 2 {
			from, to := glyph.lines[i], glyph.lines[i + 1]
			ebitenutil.DrawLine(screen,
				self.offsetX + from.X*self.scale, self.offsetY - from.Y*self.scale,
				self.offsetX + to.X*self.scale, self.offsetY - to.Y*self.scale,
				glyph.color)
		}
	}
}

func main() {
	fontPath := flag.String("font", "", "font file (default: Go Regular)")
	segments := flag.Int("segments", 10, "number of points sampled per Bézier arc")
	text := flag.String("text", defaultText, "text to display")
	flag.Parse()

	// parse font
	var fnt *font.Font
	var name string
	var err error
	if *fontPath == "" {
		fnt, name, err = font.ParseFromBytes(goregular.TTF)
	} else {
		fnt, name, err = font.ParseFromPath(*fontPath)
	}
	if err != nil { log.Fatal(err) }

	// trace glyphs
	tracer := glyphtrace.NewTracer()
	tracer.SetSegments(*segments)
	fontAtlas, err := atlas.New(fnt, tracer, atlas.DefaultCharset)
	if err != nil { log.Fatal(err) }
	fontAtlas.SetCacheHandler(cache.NewDefaultCache(4*1024*1024).NewHandler())

	game := &Game{}
	var allLines []glyphtrace.Point
	fontAtlas.EachGlyph(*text, func(_ rune, origin glyphtrace.Point, glyph *glyphtrace.Glyph) {
		if len(glyph.Lines) == 0 { return }
		lines := make([]glyphtrace.Point, len(glyph.Lines))
		for i, point := range glyph.Lines {
			lines[i] = point.Add(origin)
		}
		allLines = append(allLines, lines...)
		clr := palette[len(game.glyphs) % len(palette)]
		game.glyphs = append(game.glyphs, coloredLines{ lines: lines, color: clr })
	})
	if len(game.glyphs) == 0 {
		log.Print("nothing to draw")
		os.Exit(1)
	}

	// fit the text in the window
	const width, height, margin = 960, 540, 32
	min, max := atlas.Bounds(allLines)
	game.scale = math.Min((width - 2*margin)/(max.X - min.X), (height - 2*margin)/(max.Y - min.Y))
	game.offsetX = margin - min.X*game.scale
	game.offsetY = margin + max.Y*game.scale

	// run the "game"
	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowTitle("glyphview - " + name)
	err = ebiten.RunGame(game)
	if err != nil && err != ebiten.Termination { log.Fatal(err) }
}
