// Command curvelin linearizes curved geometries described in a YAML
// document and prints the result as WKT, SVG path data or curved text.
//
// Usage:
//
//	curvelin [flags] [file]
//
// The document is read from standard input if no file is given.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"

	"honnef.co/go/curved"
)

type options struct {
	config    string
	format    string
	tolerance float64
	precision int
	verbose   bool
}

func main() {
	var opts options
	flag.StringVar(&opts.config, "config", "", "YAML file with linearization settings")
	flag.StringVar(&opts.format, "format", "wkt", "output format: wkt, svg or curved")
	flag.Float64Var(&opts.tolerance, "tolerance", 0.001, "tolerance for documents that don't set one")
	flag.IntVar(&opts.precision, "precision", 0, "maximum precision of SVG coordinates (0 for shortest exact)")
	flag.BoolVar(&opts.verbose, "v", false, "log debug output to standard error")
	flag.Parse()

	if opts.verbose {
		curved.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	if err := runFile(opts, flag.Arg(0), os.Stdout); err != nil {
		log.Fatal(err)
	}
}

// runFile runs on the named file, or on standard input if name is empty.
// The file is closed before runFile returns.
func runFile(opts options, name string, out io.Writer) error {
	if name == "" {
		return run(opts, os.Stdin, out)
	}
	f, err := os.Open(name)
	if err != nil {
		return err
	}
	defer f.Close()
	return run(opts, f, out)
}

func loadFactory(path string) (*curved.Factory, error) {
	if path == "" {
		return curved.DefaultFactory(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	cfg, err := curved.LoadConfig(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return curved.NewFactory(cfg)
}

func run(opts options, in io.Reader, out io.Writer) error {
	factory, err := loadFactory(opts.config)
	if err != nil {
		return err
	}
	doc, err := decodeDocument(in)
	if err != nil {
		return err
	}
	tolerance := opts.tolerance
	if doc.Tolerance != nil {
		tolerance = *doc.Tolerance
	}

	for i, entry := range doc.Geometries {
		name := entry.Name
		if name == "" {
			name = fmt.Sprintf("#%d", i)
		}
		g, err := entry.build(factory, tolerance)
		if err != nil {
			return fmt.Errorf("geometry %s: %w", name, err)
		}
		s, err := format(g, opts, tolerance)
		if err != nil {
			return fmt.Errorf("geometry %s: %w", name, err)
		}
		if entry.Name != "" {
			s = entry.Name + "\t" + s
		}
		if _, err := fmt.Fprintln(out, s); err != nil {
			return err
		}
	}
	return nil
}

func format(g geometry, opts options, tolerance float64) (string, error) {
	switch opts.format {
	case "wkt":
		return wkt(g)
	case "svg":
		return curved.SVG(g.PathElements(tolerance), curved.SVGOptions{MaxPrecision: opts.precision}), nil
	case "curved":
		return g.CurvedText(), nil
	default:
		return "", fmt.Errorf("unknown format %q", opts.format)
	}
}

func wkt(g geometry) (string, error) {
	switch g := g.(type) {
	case *curved.CurvePolygon:
		poly, err := g.Linearize()
		if err != nil {
			return "", err
		}
		return poly.AsText(), nil
	case curved.Curve:
		ls, err := g.Linearize()
		if err != nil {
			return "", err
		}
		return ls.AsText(), nil
	default:
		return "", errors.New("unsupported geometry")
	}
}
