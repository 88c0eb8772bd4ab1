// Command glyphview browses glyph tables in the terminal.
//
// Each glyph is drawn with half-block characters, two pixels per cell.
// Left and right change page, Tab switches table, q or Esc quits.
package main

import (
	"flag"
	"fmt"
	"image"
	"log"
	"log/slog"
	"os"
	"slices"
	"unicode"

	"github.com/gdamore/tcell/v2"
	"github.com/gogpu/pixkit"
	"github.com/gogpu/pixkit/glyph"
	"github.com/gogpu/pixkit/manifest"
	"github.com/gogpu/pixkit/text"
)

const halfBlock = '▀'

type table struct {
	name string
	keys []string
	t    *glyph.Table
	cell image.Point
}

type viewer struct {
	screen tcell.Screen
	tables []table
	cur    int
	page   int
}

func newTable(b manifest.Built) table {
	tb := table{name: b.Name, t: b.Table, keys: slices.Collect(b.Table.Keys())}
	for _, g := range b.Table.All() {
		size := g.Bounds().Size()
		tb.cell.X = max(tb.cell.X, size.X)
		tb.cell.Y = max(tb.cell.Y, size.Y)
	}
	return tb
}

// layout returns the grid cell size in terminal cells, the number of
// glyphs per page and the page count.
func (v *viewer) layout(tb table) (cw, ch, cols, perPage, pages int) {
	w, h := v.screen.Size()
	cw = tb.cell.X + 1
	ch = (tb.cell.Y+1)/2 + 1
	cols = max(1, w/cw)
	rows := max(1, (h-1)/ch)
	perPage = cols * rows
	pages = max(1, (len(tb.keys)+perPage-1)/perPage)
	return cw, ch, cols, perPage, pages
}

func (v *viewer) draw() {
	v.screen.Clear()
	tb := v.tables[v.cur]
	cw, ch, cols, perPage, pages := v.layout(tb)
	v.page = min(v.page, pages-1)

	header := fmt.Sprintf(" %s  table %d/%d  page %d/%d  %d keys ",
		tb.name, v.cur+1, len(v.tables), v.page+1, pages, len(tb.keys))
	v.drawString(0, 0, header, tcell.StyleDefault.Reverse(true))

	start := v.page * perPage
	end := min(start+perPage, len(tb.keys))
	for i, key := range tb.keys[start:end] {
		x := (i % cols) * cw
		y := 1 + (i/cols)*ch
		if g, ok := tb.t.Lookup(key); ok && g.Image != nil {
			v.drawImage(x, y, g.Image)
		}
		v.drawLabel(x, y+ch-1, key)
	}
	v.screen.Show()
}

// drawImage blits img at (x, y), two pixel rows per terminal row.
func (v *viewer) drawImage(x, y int, img image.Image) {
	b := img.Bounds()
	for py := 0; py < b.Dy(); py += 2 {
		for px := 0; px < b.Dx(); px++ {
			top := termColor(img, b.Min.X+px, b.Min.Y+py)
			bottom := tcell.ColorBlack
			if py+1 < b.Dy() {
				bottom = termColor(img, b.Min.X+px, b.Min.Y+py+1)
			}
			style := tcell.StyleDefault.Foreground(top).Background(bottom)
			v.screen.SetContent(x+px, y+py/2, halfBlock, nil, style)
		}
	}
}

// termColor composites the pixel over black.
func termColor(img image.Image, x, y int) tcell.Color {
	c := pixkit.FromColor(img.At(x, y))
	scale := func(ch uint8) int32 { return int32(ch) * int32(c.A) / 255 }
	return tcell.NewRGBColor(scale(c.R), scale(c.G), scale(c.B))
}

func (v *viewer) drawLabel(x, y int, key string) {
	runes := []rune(key)
	style := tcell.StyleDefault.Foreground(tcell.ColorYellow)
	if !unicode.IsPrint(runes[0]) {
		v.drawString(x, y, fmt.Sprintf("%02x", runes[0]), style.Dim(true))
		return
	}
	v.screen.SetContent(x, y, runes[0], runes[1:], style)
}

func (v *viewer) drawString(x, y int, s string, style tcell.Style) {
	for _, r := range s {
		v.screen.SetContent(x, y, r, nil, style)
		x++
	}
}

// handleInput applies ev and reports whether the viewer keeps running.
func (v *viewer) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyRight, tcell.KeyPgDn:
			v.page++
		case tcell.KeyLeft, tcell.KeyPgUp:
			v.page = max(0, v.page-1)
		case tcell.KeyTab:
			v.cur = (v.cur + 1) % len(v.tables)
			v.page = 0
		case tcell.KeyBacktab:
			v.cur = (v.cur + len(v.tables) - 1) % len(v.tables)
			v.page = 0
		case tcell.KeyRune:
			if ev.Rune() == 'q' {
				return false
			}
		}
	case *tcell.EventResize:
		v.screen.Sync()
	}
	return true
}

func (v *viewer) run() {
	v.draw()
	for {
		if !v.handleInput(v.screen.PollEvent()) {
			return
		}
		v.draw()
	}
}

func loadTables(path string) ([]manifest.Built, error) {
	if path == "" {
		t, err := text.DefaultGlyphs()
		if err != nil {
			return nil, err
		}
		return []manifest.Built{{Name: "default", Table: t}}, nil
	}
	m, err := manifest.Load(path)
	if err != nil {
		return nil, err
	}
	return m.Build(manifest.DefaultBackends())
}

func main() {
	var (
		manifestPath = flag.String("manifest", "", "YAML manifest (default: built-in Latin-1 table)")
		logFile      = flag.String("log", "", "write debug log to file")
	)
	flag.Parse()

	if *logFile != "" {
		f, err := os.Create(*logFile)
		if err != nil {
			log.Fatalf("Failed to open log: %v", err)
		}
		defer f.Close()
		pixkit.SetLogger(slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	built, err := loadTables(*manifestPath)
	if err != nil {
		log.Fatalf("Failed to build tables: %v", err)
	}
	v := &viewer{}
	for _, b := range built {
		if b.Table.Len() > 0 {
			v.tables = append(v.tables, newTable(b))
		}
	}
	if len(v.tables) == 0 {
		log.Fatal("No glyphs to show")
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("Failed to create screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("Failed to initialize screen: %v", err)
	}
	v.screen = screen
	defer screen.Fini()

	v.run()
}
