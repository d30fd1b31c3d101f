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
	"os"
	"path/filepath"
	"sync"
)

func save(name string, data []byte) error {
	filename, err := avatarfilename(name)
	if err != nil {
		return err
	}
	fd, err := os.OpenFile(filepath.Join(outdir, filename), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return err
	}
	_, err = fd.Write(data)
	err2 := fd.Close()
	if err == nil {
		err = err2
	}
	return err
}

func deliverate(name string) bool {
	data, err := identicon(name)
	if err != nil {
		elog.Printf("error making identicon for %s: %s", name, err)
		return false
	}
	err = save(name, data)
	if err != nil {
		elog.Printf("error saving identicon for %s: %s", name, err)
		return false
	}
	dlog.Printf("saved identicon for %s", name)
	return true
}

// makeavatars renders and saves every name, workers at a time. Returns
// the number that failed.
func makeavatars(names []string, workers int) int {
	if workers < 1 {
		workers = 1
	}
	todo := make(chan string)
	var lock sync.Mutex
	failed := 0
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for name := range todo {
				if !deliverate(name) {
					lock.Lock()
					failed++
					lock.Unlock()
				}
			}
		}()
	}
	for _, name := range names {
		todo <- name
	}
	close(todo)
	wg.Wait()
	return failed
}
