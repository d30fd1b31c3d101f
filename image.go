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
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
)

// blank canvas, every pixel transparent
func canvas() *image.NRGBA {
	return image.NewNRGBA(image.Rect(0, 0, canvasside, canvasside))
}

func (spec ImageSpec) render() ([]byte, error) {
	if !spec.has(colored | mapped) {
		return nil, fmt.Errorf("%w: nothing to draw yet", ErrPrecondition)
	}
	img := canvas()
	paint := &image.Uniform{color.NRGBA{spec.Color[0], spec.Color[1], spec.Color[2], 255}}
	for _, r := range spec.PixelMap {
		draw.Draw(img, r, paint, image.Point{}, draw.Src)
	}
	return vacuumwrap(img)
}

func vacuumwrap(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	err := png.Encode(&buf, img)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrEncoding, err)
	}
	return buf.Bytes(), nil
}
