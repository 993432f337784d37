// Command svgplan renders a YAML plan file to SVG,
// and optionally to PNG and PDF.
//
//	svgplan -in garden.yaml -out garden.svg -png garden.png -watch
package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"

	"github.com/benoitkugler/svgplan/planfile"
	"github.com/benoitkugler/svgplan/svgdraw"
	"github.com/benoitkugler/svgplan/svgpdf"
	"github.com/benoitkugler/svgplan/svgraster"
)

type config struct {
	in, out, png, pdf string
	verbose           bool
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("svgplan: ")

	var (
		cfg   config
		watch bool
	)
	flag.StringVar(&cfg.in, "in", "", "plan file (YAML)")
	flag.StringVar(&cfg.out, "out", "", "output SVG file (default: input with .svg extension)")
	flag.StringVar(&cfg.png, "png", "", "optional PNG output")
	flag.StringVar(&cfg.pdf, "pdf", "", "optional PDF output")
	flag.BoolVar(&watch, "watch", false, "render again each time the plan file changes")
	flag.BoolVar(&cfg.verbose, "v", false, "verbose logging")
	flag.Parse()

	if cfg.in == "" {
		flag.Usage()
		os.Exit(1)
	}
	if cfg.out == "" {
		cfg.out = cfg.in[:len(cfg.in)-len(filepath.Ext(cfg.in))] + ".svg"
	}

	if err := render(cfg); err != nil {
		if !watch {
			log.Fatal(err)
		}
		log.Println(err)
	}
	if watch {
		if err := watchPlan(cfg); err != nil {
			log.Fatal(err)
		}
	}
}

// render builds the plan and writes every requested output.
func render(cfg config) error {
	plan, err := planfile.Load(cfg.in)
	if err != nil {
		return err
	}
	doc, err := plan.Build()
	if err != nil {
		return err
	}
	if err = doc.Save(cfg.out); err != nil {
		return err
	}
	if cfg.verbose {
		log.Printf("wrote %s", cfg.out)
	}

	mode := svgdraw.IgnoreErrorMode
	if cfg.verbose {
		mode = svgdraw.WarnErrorMode
	}
	if cfg.png != "" {
		img, err := svgraster.RasterDocument(doc, mode)
		if err != nil {
			return err
		}
		if err = svgraster.SavePNG(cfg.png, img); err != nil {
			return err
		}
		if cfg.verbose {
			log.Printf("wrote %s", cfg.png)
		}
	}
	if cfg.pdf != "" {
		if err = svgpdf.SavePDF(cfg.pdf, doc, mode); err != nil {
			return err
		}
		if cfg.verbose {
			log.Printf("wrote %s", cfg.pdf)
		}
	}
	return nil
}

// watchPlan renders the plan again on every change, until
// the watcher fails.
func watchPlan(cfg config) error {
	abs, err := filepath.Abs(cfg.in)
	if err != nil {
		return err
	}
	w, err := planfile.NewWatcher(filepath.Dir(abs))
	if err != nil {
		return err
	}
	defer w.Close()

	log.Printf("watching %s", cfg.in)
	for {
		select {
		case name, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(name) != abs {
				continue
			}
			if err := render(cfg); err != nil {
				log.Println(err)
				continue
			}
			log.Printf("rendered %s", cfg.in)
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			return err
		}
	}
}
