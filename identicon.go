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
	"flag"
	"fmt"
	"os"
	"runtime"
)

var dataDir = "."
var outdir = "."
var workers = runtime.NumCPU()

func init() {
	flag.StringVar(&dataDir, "datadir", dataDir, "data directory")
	flag.StringVar(&outdir, "outdir", outdir, "where make saves images")
	flag.IntVar(&workers, "j", workers, "images to make at once")
}

func usage() {
	fmt.Fprintf(os.Stderr, "usage: identicon [flags] command [args]\n")
	fmt.Fprintf(os.Stderr, "commands:\n")
	fmt.Fprintf(os.Stderr, "\tmake name...\n")
	fmt.Fprintf(os.Stderr, "\tshow name\n")
	fmt.Fprintf(os.Stderr, "\tinit [listener]\n")
	fmt.Fprintf(os.Stderr, "\tupgrade\n")
	fmt.Fprintf(os.Stderr, "\tconfig key value\n")
	fmt.Fprintf(os.Stderr, "\trun\n")
	flag.PrintDefaults()
	os.Exit(1)
}

func show(name string) {
	spec, err := describe(name)
	if err != nil {
		elog.Fatalf("can't describe %s: %s", name, err)
	}
	fmt.Print(textgrid(spec))
	os.Stdout.Write(jonkify(name, spec).ToBytes())
	fmt.Println()
}

func main() {
	flag.Usage = usage
	flag.Parse()
	initLogging(elogname, ilogname, dlogname)
	args := flag.Args()
	if len(args) < 1 {
		usage()
	}
	cmd := args[0]
	args = args[1:]

	switch cmd {
	case "make":
		if len(args) < 1 {
			usage()
		}
		failed := makeavatars(args, workers)
		if failed > 0 {
			elog.Printf("%d of %d failed", failed, len(args))
			os.Exit(1)
		}
		return
	case "show":
		if len(args) != 1 {
			usage()
		}
		show(args[0])
		return
	case "init":
		listener := "127.0.0.1:31337"
		if len(args) > 0 {
			listener = args[0]
		}
		initdb(listener)
		return
	case "upgrade":
		upgradedb()
		return
	}

	opendatabase()
	dbversion := 0
	getconfig("dbversion", &dbversion)
	if dbversion != myVersion {
		elog.Fatal("incorrect database version. run upgrade.")
	}
	switch cmd {
	case "config":
		if len(args) != 2 {
			usage()
		}
		err := setconfig(args[0], args[1])
		if err != nil {
			elog.Fatalf("can't set %s: %s", args[0], err)
		}
	case "run":
		serve()
	default:
		elog.Fatal("unknown command")
	}
}
