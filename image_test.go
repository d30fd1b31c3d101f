package main

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"testing"
)

func decodeone(t *testing.T, data []byte) image.Image {
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("not a png: %s", err)
	}
	if img.Bounds() != image.Rect(0, 0, canvasside, canvasside) {
		t.Fatalf("bounds: %v", img.Bounds())
	}
	return img
}

func samecolor(a, b color.Color) bool {
	r1, g1, b1, a1 := a.RGBA()
	r2, g2, b2, a2 := b.RGBA()
	return r1 == r2 && g1 == g2 && b1 == b2 && a1 == a2
}

func TestRenderJoe(t *testing.T) {
	spec := dooneruntest(t, "Joe")
	data, err := spec.render()
	if err != nil {
		t.Fatal(err)
	}
	img := decodeone(t, data)
	fill := color.NRGBA{58, 54, 136, 255}
	filled := make(map[int]bool)
	for _, c := range spec.Grid {
		filled[c.Index] = true
	}
	for i := 0; i < gridcells; i++ {
		x := i%gridside*cellsize + cellsize/2
		y := i/gridside*cellsize + cellsize/2
		got := img.At(x, y)
		if filled[i] {
			if !samecolor(got, fill) {
				t.Errorf("cell %d: %v, want %v", i, got, fill)
			}
		} else {
			if _, _, _, a := got.RGBA(); a != 0 {
				t.Errorf("cell %d should be empty: %v", i, got)
			}
		}
	}
	// cell 5 is filled up to x=49, cell 6 next to it is empty
	if !samecolor(img.At(0, 0), fill) || !samecolor(img.At(49, 50), fill) {
		t.Errorf("cell edges not filled")
	}
	if _, _, _, a := img.At(50, 50).RGBA(); a != 0 {
		t.Errorf("cell 6 should be empty")
	}
}

func TestRenderEmpty(t *testing.T) {
	d := make([]byte, 16)
	for i := range d {
		d[i] = 1
	}
	spec, err := fromdigest(d)
	if err != nil {
		t.Fatal(err)
	}
	spec, _ = spec.pickcolor()
	spec, _ = spec.buildgrid()
	spec = spec.filterodd().pixelate()
	if len(spec.Grid) != 0 || len(spec.PixelMap) != 0 {
		t.Fatalf("odd digest left cells: %v", spec.Grid)
	}
	data, err := spec.render()
	if err != nil {
		t.Fatal(err)
	}
	img := decodeone(t, data)
	for y := 0; y < canvasside; y += 7 {
		for x := 0; x < canvasside; x += 7 {
			if _, _, _, a := img.At(x, y).RGBA(); a != 0 {
				t.Fatalf("pixel %d,%d is painted", x, y)
			}
		}
	}
}

func TestRenderPrecondition(t *testing.T) {
	spec := hasher([]byte("Joe"))
	_, err := spec.render()
	if !errors.Is(err, ErrPrecondition) {
		t.Errorf("render without color: %v", err)
	}
	spec, _ = spec.pickcolor()
	_, err = spec.render()
	if !errors.Is(err, ErrPrecondition) {
		t.Errorf("render without pixel map: %v", err)
	}
}
