package main

import (
	"errors"
	"flag"
	"os"
	"path/filepath"
	"testing"
)

func TestMain2(t *testing.T) {
	dir := t.TempDir()
	scene := filepath.Join(dir, "scene.toml")
	src := "width = 100\nheight = 40\n[[labels]]\ntext = \"Hi\"\nwidth = 100\nheight = 40\n"
	if err := os.WriteFile(scene, []byte(src), 0644); err != nil {
		t.Fatal(err)
	}
	out := filepath.Join(dir, "out.png")
	args := []string{"-scene", scene, "-out", out, "-pointer", "50,20", "-frames", "2"}
	if err := main2(args); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(out); err != nil {
		t.Fatal(err)
	}
}

func TestMain2Errors(t *testing.T) {
	for _, args := range [][]string{
		{},
		{"-scene", "nofile.toml"},
		{"-scene", "a.toml", "-pointer", "50"},
	} {
		if err := main2(args); err == nil {
			t.Fatal("expecting error", args)
		}
	}
}

func TestPointerOpt(t *testing.T) {
	o := &pointerOpt{}
	if err := o.Set(" 3, 4"); err != nil {
		t.Fatal(err)
	}
	if o.String() != "3,4" {
		t.Fatal(o.String())
	}
	if err := o.Set("3,x"); err == nil {
		t.Fatal("expecting error")
	}
}

func TestMain2Help(t *testing.T) {
	if err := main2([]string{"-h"}); !errors.Is(err, flag.ErrHelp) {
		t.Fatal(err)
	}
}
