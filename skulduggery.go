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
	"fmt"
	"strings"
	"unicode"

	"github.com/mattn/go-runewidth"
)

// names that would turn into something other than a plain file in the
// output directory, or that hide characters a reader can't see
func avatarfilename(name string) (string, error) {
	if name == "" || name == "." || name == ".." {
		return "", fmt.Errorf("can't save %q as a file", name)
	}
	if strings.ContainsAny(name, "/\\\x00") {
		return "", fmt.Errorf("path separator in name %q", name)
	}
	based := false
	for _, c := range name {
		if unicode.IsControl(c) || unicode.Is(unicode.Cf, c) {
			return "", fmt.Errorf("invisible character %U in name %q", c, name)
		}
		// accents may ride on a letter, but not lead or stand alone
		if runewidth.RuneWidth(c) == 0 && !(based && unicode.Is(unicode.M, c)) {
			return "", fmt.Errorf("invisible character %U in name %q", c, name)
		}
		based = true
	}
	return name + ".png", nil
}
