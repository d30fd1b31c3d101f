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
	"encoding/hex"
	"fmt"
	"strings"

	"humungus.tedunangst.com/r/webs/junk"
)

func jonkify(name string, spec ImageSpec) junk.Junk {
	j := junk.New()
	j["name"] = name
	j["digest"] = hex.EncodeToString(spec.Digest[:])
	j["color"] = fmt.Sprintf("#%02x%02x%02x", spec.Color[0], spec.Color[1], spec.Color[2])
	cells := []int{}
	for _, c := range spec.Grid {
		cells = append(cells, c.Index)
	}
	j["cells"] = cells
	rects := [][4]int{}
	for _, r := range spec.PixelMap {
		rects = append(rects, [4]int{r.Min.X, r.Min.Y, r.Max.X, r.Max.Y})
	}
	j["rects"] = rects
	return j
}

// textgrid draws the filled cells as ## and the rest as ..
func textgrid(spec ImageSpec) string {
	var filled [gridcells]bool
	for _, c := range spec.Grid {
		filled[c.Index] = true
	}
	var sb strings.Builder
	for i, f := range filled {
		if f {
			sb.WriteString("##")
		} else {
			sb.WriteString("..")
		}
		if i%gridside == gridside-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
