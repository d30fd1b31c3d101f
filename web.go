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
	"net"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"golang.org/x/crypto/blake2b"
	"humungus.tedunangst.com/r/webs/cache"
)

const defaultmaxage = 7 * 24 * 3600

var avatarmaxage = defaultmaxage

// longer names are refused so the cache can't be stuffed with them
const maxnamelen = 256

var avatarcache = cache.New(cache.Options{Filler: func(name string) ([]byte, bool) {
	a, err := identicon(name)
	if err != nil {
		elog.Printf("error making identicon for %s: %s", name, err)
		return nil, false
	}
	return a, true
}, Duration: 10 * time.Minute})

func etag(data []byte) string {
	sum := blake2b.Sum256(data)
	return `"` + hex.EncodeToString(sum[:16]) + `"`
}

func serveavatar(w http.ResponseWriter, r *http.Request, name string) {
	if len(name) > maxnamelen {
		http.Error(w, "name too long", http.StatusBadRequest)
		return
	}
	var a []byte
	ok := avatarcache.Get(name, &a)
	if !ok {
		http.Error(w, "couldn't draw that", http.StatusInternalServerError)
		return
	}
	tag := etag(a)
	w.Header().Set("ETag", tag)
	w.Header().Set("Cache-Control", fmt.Sprintf("max-age=%d", avatarmaxage))
	if r.Header.Get("If-None-Match") == tag {
		w.WriteHeader(http.StatusNotModified)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Write(a)
}

func avatate(w http.ResponseWriter, r *http.Request) {
	serveavatar(w, r, r.FormValue("a"))
}

func avatarbyname(w http.ResponseWriter, r *http.Request) {
	serveavatar(w, r, mux.Vars(r)["name"])
}

func avatarjunk(w http.ResponseWriter, r *http.Request) {
	name := r.FormValue("a")
	if len(name) > maxnamelen {
		http.Error(w, "name too long", http.StatusBadRequest)
		return
	}
	spec, err := describe(name)
	if err != nil {
		elog.Printf("error describing %s: %s", name, err)
		http.Error(w, "couldn't describe that", http.StatusInternalServerError)
		return
	}
	j := jonkify(name, spec)
	w.Header().Set("Cache-Control", fmt.Sprintf("max-age=%d", avatarmaxage))
	w.Header().Set("Content-Type", "application/json")
	j.Write(w)
}

func routes() *mux.Router {
	mux := mux.NewRouter()
	getters := mux.Methods("GET").Subrouter()
	getters.HandleFunc("/a", avatate)
	getters.HandleFunc("/i/{name:[^/]+}.png", avatarbyname)
	getters.HandleFunc("/j", avatarjunk)
	return mux
}

func openListener(addr string) (net.Listener, error) {
	if strings.HasPrefix(addr, "/") {
		os.Remove(addr)
		listener, err := net.Listen("unix", addr)
		if err != nil {
			return nil, err
		}
		os.Chmod(addr, 0777)
		return listener, nil
	}
	return net.Listen("tcp", addr)
}

func serve() {
	addr := ""
	getconfig("listener", &addr)
	getconfig("maxage", &avatarmaxage)
	if addr == "" {
		elog.Fatal("must have listener configured")
	}
	listener, err := openListener(addr)
	if err != nil {
		elog.Fatal(err)
	}
	ilog.Printf("serving identicons on %s", addr)
	err = http.Serve(listener, routes())
	if err != nil {
		elog.Fatal(err)
	}
}
