package planfile

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/benoitkugler/svgplan/svgplan"
)

const garden = `
document:
  min_x: -5
  min_y: -5
  width: 50
  height: 40
  pixels_per_unit: 2
title: Garden
description: Back garden, spring
areas:
  - name: shed
    corners: [[0, 0], [10, 0], [10, 6], [0, 6]]
    color: maroon
    fill: orange
    world:
      origin: [10, 6]
      rotate: 90
      flip_x: true
    children:
      circles:
        - center: [1, 1]
          r: 0.5
          color: black
      labels:
        - at: [2, 2]
          text: door
  - name: bed
    corners: [[20, 0], [30, 0], [25, 8]]
trees:
  - name: oak
    species: Quercus robur
    at: [40, 30]
    trunk: 0.8
    crown: 6
lines:
  - from: [0, 20]
    to: [40, 20]
    color: grey
`

func TestParseAndBuild(t *testing.T) {
	plan, err := Parse([]byte(garden))
	if err != nil {
		t.Fatal(err)
	}
	if len(plan.Areas) != 2 || len(plan.Trees) != 1 || len(plan.Lines) != 1 {
		t.Fatalf("unexpected plan %+v", plan)
	}
	shed := plan.Areas[0]
	if shed.Color == nil || *shed.Color != svgplan.Maroon || shed.Fill != svgplan.Orange {
		t.Errorf("unexpected colors %v %v", shed.Color, shed.Fill)
	}
	if shed.World == nil || !shed.World.FlipX || shed.World.Rotate != 90 {
		t.Errorf("unexpected world %+v", shed.World)
	}

	doc, err := plan.Build()
	if err != nil {
		t.Fatal(err)
	}
	if w, h := doc.PixelSize(); w != 100 || h != 80 {
		t.Errorf("pixel size = %d x %d, want 100 x 80", w, h)
	}
	out := doc.Element().String()
	for _, want := range []string{
		`viewBox="-5 -5 50 40"`,
		`<title>Garden</title>`,
		`<desc>Back garden, spring</desc>`,
		`transform="translate(10 6) matrix(0 -1 -1 0 0 0)"`,
		`>door</text>`,
		`id="tree-oak"`,
		`stroke="maroon"`,
		`fill="orange"`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %s in\n%s", want, out)
		}
	}
	// the second area is not nested
	if n := strings.Count(out, "transform="); n != 1 {
		t.Errorf("expected 1 world, got %d", n)
	}
}

func TestFrameScale(t *testing.T) {
	sx := 2.
	f := FrameSpec{Origin: Point{1, 2}, ScaleX: &sx}
	c := f.coordinate()
	if c.X != 1 || c.Y != 2 || c.SX != 2 || c.SY != 1 {
		t.Errorf("unexpected coordinate %+v", c)
	}
}

func TestBuildErrors(t *testing.T) {
	for _, tt := range []struct {
		name string
		src  string
		want error
	}{
		{"no size", "title: x", errEmptyDocument},
		{"two corners", "document: {width: 1, height: 1}\nareas: [{corners: [[0, 0], [1, 1]]}]", nil},
		{"children without world", `
document: {width: 1, height: 1}
areas:
  - corners: [[0, 0], [1, 0], [1, 1]]
    children:
      labels: [{at: [0, 0], text: a}]
`, svgplan.ErrNoWorld},
	} {
		t.Run(tt.name, func(t *testing.T) {
			plan, err := Parse([]byte(tt.src))
			if err != nil {
				t.Fatal(err)
			}
			_, err = plan.Build()
			if err == nil {
				t.Fatal("expected error")
			}
			if tt.want != nil && !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	for _, src := range []string{
		"unknown_field: 1",
		"areas: [{fill: chartreuse}]",
		"lines: [{from: [1, 2, 3]}]",
	} {
		if _, err := Parse([]byte(src)); err == nil {
			t.Errorf("Parse(%q): expected error", src)
		}
	}
	if plan, err := Parse(nil); err != nil || plan == nil {
		t.Errorf("Parse(nil) = %v, %v", plan, err)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	filename := filepath.Join(dir, "garden.yaml")
	if err := os.WriteFile(filename, []byte(garden), 0o644); err != nil {
		t.Fatal(err)
	}
	plan, err := Load(filename)
	if err != nil {
		t.Fatal(err)
	}
	if plan.Title != "Garden" {
		t.Errorf("unexpected title %q", plan.Title)
	}

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("expected fs.ErrNotExist, got %v", err)
	}
}

func TestIsPlanFile(t *testing.T) {
	for path, want := range map[string]bool{
		"a.yaml":     true,
		"b/c.YML":    true,
		"plan.svg":   false,
		"yaml":       false,
		"plan.yaml~": false,
	} {
		if got := IsPlanFile(path); got != want {
			t.Errorf("IsPlanFile(%q) = %v, want %v", path, got, want)
		}
	}
}

func TestWatcher(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	if err != nil {
		t.Fatal(err)
	}
	defer w.Close()

	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	filename := filepath.Join(dir, "garden.yaml")
	if err := os.WriteFile(filename, []byte(garden), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case got := <-w.Events:
		if got != filename {
			t.Errorf("event for %s, want %s", got, filename)
		}
	case err := <-w.Errors:
		t.Fatal(err)
	case <-time.After(5 * time.Second):
		t.Fatal("no event received")
	}

	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	// channels are closed after Close
	for range w.Events {
	}
}

func TestWatcherReportsLastSave(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	if err != nil {
		t.Fatal(err)
	}
	defer w.Close()

	filename := filepath.Join(dir, "plan.yaml")
	if err := os.WriteFile(filename, []byte("title: first\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	time.Sleep(20 * time.Millisecond)
	if err := os.WriteFile(filename, []byte("title: second\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	timeout := time.After(5 * time.Second)
	for {
		select {
		case got := <-w.Events:
			if got != filename {
				continue
			}
			plan, err := Load(got)
			if err != nil {
				t.Fatal(err)
			}
			if plan.Title != "second" {
				t.Errorf("read %q after the event, want the last save", plan.Title)
			}
			return
		case err := <-w.Errors:
			t.Fatal(err)
		case <-timeout:
			t.Fatal("no event received")
		}
	}
}
