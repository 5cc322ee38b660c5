package geng

import (
	"fmt"
	"image"
	"image/color"
	_ "image/png"
	"io"
	"os"

	_ "golang.org/x/image/bmp"
)

// DecodeBitmap decodes a BMP or PNG image into rows of opaque Colors. The
// source alpha is ignored; every pixel gets a 0xFF visibility byte.
func DecodeBitmap(r io.Reader) ([][]Color, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, err
	}
	b := img.Bounds()
	rows := make([][]Color, b.Dy())
	for y := b.Min.Y; y < b.Max.Y; y++ {
		row := make([]Color, b.Dx())
		for x := b.Min.X; x < b.Max.X; x++ {
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			row[x-b.Min.X] = RGB(c.R, c.G, c.B)
		}
		rows[y-b.Min.Y] = row
	}
	return rows, nil
}

// LoadTile reads and decodes the image at path into a Tile.
func LoadTile(path string) (*Tile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("load bitmap %s: %w", path, err)
	}
	defer f.Close()
	rows, err := DecodeBitmap(f)
	if err != nil {
		return nil, fmt.Errorf("load bitmap %s: %w", path, err)
	}
	return NewTile(rows), nil
}
