// Package pixkit provides the data side of 2D sprite fonts for games:
// color conversion, thick line geometry, and the logger shared by the
// glyph table packages.
//
// # Overview
//
// pixkit is organized into:
//   - pixkit (this package): RGBA, ParseHex, NormalizeRGBA, Point, ThickLineQuad
//   - glyph: selections, glyph tables and the builders that fill them
//   - text: font registry and the x/image glyph rasterizer
//   - spritesheet: image decoding and fixed-grid slicing
//   - manifest: YAML descriptions of glyph tables
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/pixkit"
//	    "github.com/gogpu/pixkit/glyph"
//	    "github.com/gogpu/pixkit/text"
//	)
//
//	col, err := pixkit.ParseHex("#ffcc00")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	r := text.NewRasterizer(text.NewRegistry())
//	table, err := glyph.FromFont(r,
//	    glyph.Font{Name: "goregular", Size: 24, Color: col},
//	    glyph.Single("ABCDEFGHIJKLMNOPQRSTUVWXYZ"),
//	    glyph.WithLowercaseAliases(),
//	)
//
// # Logging
//
// pixkit produces no log output by default. Call [SetLogger] to enable it
// for this package and all sub-packages.
package pixkit
