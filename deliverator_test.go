package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestSave(t *testing.T) {
	outdir = t.TempDir()
	defer func() { outdir = "." }()

	data, err := identicon("Joe")
	if err != nil {
		t.Fatal(err)
	}
	err = save("Joe", data)
	if err != nil {
		t.Fatal(err)
	}
	saved, err := os.ReadFile(filepath.Join(outdir, "Joe.png"))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(saved, data) {
		t.Errorf("saved file differs")
	}
	if err := save("../Joe", data); err == nil {
		t.Errorf("saved outside outdir")
	}
}

func TestMakeAvatars(t *testing.T) {
	outdir = t.TempDir()
	defer func() { outdir = "." }()

	names := []string{"alice", "bob", "carol", "dave", "a/b", "erin"}
	failed := makeavatars(names, 3)
	if failed != 1 {
		t.Errorf("failed %d, want 1", failed)
	}
	for _, name := range []string{"alice", "bob", "carol", "dave", "erin"} {
		saved, err := os.ReadFile(filepath.Join(outdir, name+".png"))
		if err != nil {
			t.Errorf("%s: %s", name, err)
			continue
		}
		data, _ := identicon(name)
		if !bytes.Equal(saved, data) {
			t.Errorf("%s: saved file differs", name)
		}
	}
	if failed := makeavatars([]string{"solo"}, 0); failed != 0 {
		t.Errorf("zero workers failed %d", failed)
	}
}
