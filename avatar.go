//
// Copyright (c) 2019 Ted Unangst <tedu@tedunangst.com>
//
// Permission to use, copy, modify, and distribute this software for any
// purpose with or without fee is hereby granted, provided that the above
// copyright notice and this permission notice appear in all copies.
//
// THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES
// WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF
// MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR
// ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES
// WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN
// ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF
// OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.

package main

import (
	"crypto/md5"
	"errors"
	"fmt"
	"image"
)

const (
	gridside   = 5
	cellsize   = 50
	canvasside = gridside * cellsize
	gridcells  = gridside * gridside
)

var ErrPrecondition = errors.New("precondition failed")
var ErrEncoding = errors.New("encoding failed")

type stage uint8

const (
	hashed stage = 1 << iota
	colored
	gridded
	mapped
)

// A Cell is one square of the grid and its position, counting left to
// right, top to bottom.
type Cell struct {
	Value uint8
	Index int
}

// ImageSpec is passed down the pipeline. Every step returns a new one
// and leaves its input alone.
type ImageSpec struct {
	Digest   [md5.Size]uint8
	Color    [3]uint8
	Grid     []Cell
	PixelMap []image.Rectangle
	done     stage
}

func (spec ImageSpec) has(s stage) bool {
	return spec.done&s == s
}

func hasher(data []byte) ImageSpec {
	var spec ImageSpec
	spec.Digest = md5.Sum(data)
	spec.done = hashed
	return spec
}

func fromdigest(d []byte) (ImageSpec, error) {
	var spec ImageSpec
	if len(d) != len(spec.Digest) {
		return spec, fmt.Errorf("%w: digest is %d bytes, need %d", ErrPrecondition, len(d), len(spec.Digest))
	}
	copy(spec.Digest[:], d)
	spec.done = hashed
	return spec, nil
}

func (spec ImageSpec) pickcolor() (ImageSpec, error) {
	if !spec.has(hashed) {
		return spec, fmt.Errorf("%w: no digest for color", ErrPrecondition)
	}
	spec.Color = [3]uint8{spec.Digest[0], spec.Digest[1], spec.Digest[2]}
	spec.done |= colored
	return spec, nil
}

func mirror(row [3]uint8) [gridside]uint8 {
	return [gridside]uint8{row[0], row[1], row[2], row[1], row[0]}
}

// buildgrid takes the digest three bytes at a time. Five rows use 15
// bytes, and the last byte never shows up in the picture.
func (spec ImageSpec) buildgrid() (ImageSpec, error) {
	if !spec.has(hashed) {
		return spec, fmt.Errorf("%w: no digest for grid", ErrPrecondition)
	}
	grid := make([]Cell, 0, gridcells)
	for r := 0; r < gridside; r++ {
		var chunk [3]uint8
		copy(chunk[:], spec.Digest[r*3:r*3+3])
		for _, v := range mirror(chunk) {
			grid = append(grid, Cell{Value: v, Index: len(grid)})
		}
	}
	spec.Grid = grid
	spec.done |= gridded
	return spec, nil
}

func (spec ImageSpec) filterodd() ImageSpec {
	var grid []Cell
	for _, c := range spec.Grid {
		if c.Value%2 == 0 {
			grid = append(grid, c)
		}
	}
	spec.Grid = grid
	return spec
}

func (spec ImageSpec) pixelate() ImageSpec {
	pixels := make([]image.Rectangle, 0, len(spec.Grid))
	for _, c := range spec.Grid {
		x := c.Index % gridside * cellsize
		y := c.Index / gridside * cellsize
		pixels = append(pixels, image.Rect(x, y, x+cellsize, y+cellsize))
	}
	spec.PixelMap = pixels
	spec.done |= mapped
	return spec
}

// describe runs everything short of drawing.
func describe(name string) (ImageSpec, error) {
	spec, err := hasher([]byte(name)).pickcolor()
	if err != nil {
		return spec, err
	}
	spec, err = spec.buildgrid()
	if err != nil {
		return spec, err
	}
	return spec.filterodd().pixelate(), nil
}

func identicon(name string) ([]byte, error) {
	spec, err := describe(name)
	if err != nil {
		return nil, err
	}
	return spec.render()
}
