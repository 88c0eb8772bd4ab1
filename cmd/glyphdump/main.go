// Command glyphdump builds glyph tables and writes each one as an atlas PNG.
//
// Tables come either from a YAML manifest:
//
//	glyphdump -manifest glyphs.yaml -out atlases
//
// or from a single font given on the command line:
//
//	glyphdump -font gomono -size 16 -range 0x20:0x7f -out atlases
//
// Without -chars or -range the table covers code points 0 to 255.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gogpu/pixkit"
	"github.com/gogpu/pixkit/glyph"
	"github.com/gogpu/pixkit/manifest"
	"github.com/gogpu/pixkit/spritesheet"
	"github.com/gogpu/pixkit/text"
	"github.com/schollz/progressbar/v3"
)

func main() {
	var (
		manifestPath = flag.String("manifest", "", "YAML manifest describing the tables")
		fontName     = flag.String("font", text.FontGoRegular, "font name")
		fontFile     = flag.String("fontfile", "", "TTF/OTF file registered under -font")
		size         = flag.Float64("size", 16, "font size in points")
		colorCode    = flag.String("color", "#ffffff", "glyph color as hex")
		chars        = flag.String("chars", "", "characters to render (overrides -range)")
		codeRange    = flag.String("range", "0:256", "code point range start:stop, stop exclusive")
		aliases      = flag.Bool("lower", false, "alias lowercase keys to uppercase glyphs")
		columns      = flag.Int("columns", 0, "atlas columns (0 picks a square grid)")
		outDir       = flag.String("out", ".", "output directory")
		verbose      = flag.Bool("v", false, "verbose logging")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	pixkit.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	var (
		tables []manifest.Built
		err    error
	)
	if *manifestPath != "" {
		tables, err = fromManifest(*manifestPath)
	} else {
		tables, err = fromFlags(flagTable{
			font:     *fontName,
			fontFile: *fontFile,
			size:     *size,
			color:    *colorCode,
			chars:    *chars,
			rng:      *codeRange,
			aliases:  *aliases,
		})
	}
	if err != nil {
		log.Fatalf("Failed to build tables: %v", err)
	}

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		log.Fatalf("Failed to create output directory: %v", err)
	}
	for _, t := range tables {
		if err := writeAtlas(*outDir, t, *columns); err != nil {
			log.Fatalf("Failed to write %s: %v", t.Name, err)
		}
	}
}

// bars shows one progress bar per table.
type bars map[string]*progressbar.ProgressBar

func (b bars) update(table string, done, total int) {
	bar, ok := b[table]
	if !ok {
		bar = progressbar.Default(int64(total), table)
		b[table] = bar
	}
	_ = bar.Set(done)
	if done == total {
		_ = bar.Close()
	}
}

func fromManifest(path string) ([]manifest.Built, error) {
	m, err := manifest.Load(path)
	if err != nil {
		return nil, err
	}
	b := manifest.DefaultBackends()
	b.Progress = make(bars).update
	return m.Build(b)
}

type flagTable struct {
	font, fontFile string
	size           float64
	color          string
	chars, rng     string
	aliases        bool
}

func fromFlags(ft flagTable) ([]manifest.Built, error) {
	reg := text.NewRegistry()
	if ft.fontFile != "" {
		if err := reg.RegisterFile(ft.font, ft.fontFile); err != nil {
			return nil, err
		}
	}
	col, err := pixkit.ParseHex(ft.color)
	if err != nil {
		return nil, err
	}
	f := glyph.Font{Name: ft.font, Size: ft.size, Color: col}

	name := fmt.Sprintf("%s-%g", ft.font, ft.size)
	progress := make(bars)
	opts := []glyph.Option{glyph.WithProgress(func(done, total int) { progress.update(name, done, total) })}
	if ft.aliases {
		opts = append(opts, glyph.WithLowercaseAliases())
	}

	r := text.NewRasterizer(reg)
	var table *glyph.Table
	if ft.chars != "" {
		table, err = glyph.FromFont(r, f, glyph.Single(ft.chars), opts...)
	} else {
		var cr glyph.CodeRange
		cr, err = parseRange(ft.rng)
		if err != nil {
			return nil, err
		}
		table, err = glyph.FromCodeRange(r, cr, f, opts...)
	}
	if err != nil {
		return nil, err
	}
	return []manifest.Built{{Name: name, Table: table}}, nil
}

// parseRange parses "start:stop". Bounds accept Go integer literal
// syntax, so "0x20:0x7f" and "32:127" are equivalent.
func parseRange(s string) (glyph.CodeRange, error) {
	lo, hi, ok := strings.Cut(s, ":")
	if !ok {
		return glyph.CodeRange{}, errors.New("range must be start:stop")
	}
	start, err := strconv.ParseInt(strings.TrimSpace(lo), 0, 32)
	if err != nil {
		return glyph.CodeRange{}, fmt.Errorf("range start: %w", err)
	}
	stop, err := strconv.ParseInt(strings.TrimSpace(hi), 0, 32)
	if err != nil {
		return glyph.CodeRange{}, fmt.Errorf("range stop: %w", err)
	}
	return glyph.ParseCodeRange([]int{int(start), int(stop)})
}

func writeAtlas(dir string, t manifest.Built, columns int) error {
	if t.Table.Len() == 0 {
		log.Printf("Skipping %s: empty table", t.Name)
		return nil
	}
	atlas := t.Table.Atlas(columns)
	path := filepath.Join(dir, t.Name+".png")
	if err := spritesheet.SavePNG(path, atlas.Image); err != nil {
		return err
	}

	desc := atlas.Texture(t.Name)
	pixkit.Logger().Debug("glyphdump: texture",
		"label", desc.Label,
		"width", desc.Size.Width,
		"height", desc.Size.Height,
		"format", desc.Format,
	)
	log.Printf("Atlas %s saved to %s (%d keys, %dx%d)\n",
		t.Name, path, t.Table.Len(), atlas.Image.Bounds().Dx(), atlas.Image.Bounds().Dy())
	return nil
}
