// Package spritesheet loads images and cuts fixed-grid spritesheets into
// individual sprites. It is the spritesheet backend of package glyph.
//
// PNG, JPEG and GIF are decoded by the standard library; BMP and WebP by
// golang.org/x/image.
package spritesheet
