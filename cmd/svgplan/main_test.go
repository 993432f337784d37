package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/benoitkugler/svgplan/svgdoc"
)

const plan = `
document: {width: 30, height: 20, pixels_per_unit: 4}
title: Patio
areas:
  - corners: [[2, 2], [20, 2], [20, 12], [2, 12]]
    fill: grey
    world: {origin: [2, 2]}
    children:
      labels: [{at: [9, 5], text: table}]
`

func TestRender(t *testing.T) {
	dir := t.TempDir()
	cfg := config{
		in:  filepath.Join(dir, "patio.yaml"),
		out: filepath.Join(dir, "patio.svg"),
		png: filepath.Join(dir, "patio.png"),
		pdf: filepath.Join(dir, "patio.pdf"),
	}
	if err := os.WriteFile(cfg.in, []byte(plan), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := render(cfg); err != nil {
		t.Fatal(err)
	}
	root, err := svgdoc.ReadFile(cfg.out)
	if err != nil {
		t.Fatal(err)
	}
	if w, _ := root.Get("width"); w != "120" {
		t.Errorf("width = %s, want 120", w)
	}
	if len(root.Find("text")) != 1 {
		t.Errorf("expected one label")
	}
	for _, name := range []string{cfg.png, cfg.pdf} {
		if info, err := os.Stat(name); err != nil || info.Size() == 0 {
			t.Errorf("missing output %s: %v", name, err)
		}
	}
}

func TestRenderMissingPlan(t *testing.T) {
	dir := t.TempDir()
	cfg := config{in: filepath.Join(dir, "none.yaml"), out: filepath.Join(dir, "none.svg")}
	if err := render(cfg); err == nil {
		t.Error("expected error")
	}
	if _, err := os.Stat(cfg.out); !os.IsNotExist(err) {
		t.Errorf("unexpected output file: %v", err)
	}
}
