package main

import (
	"fmt"
	"io"
	"os"

	"github.com/npillmayer/mirror"
	"github.com/npillmayer/mirror/seam"
	"gopkg.in/yaml.v3"
)

// On-disk outline document. Point kind defaults to "anchor" when omitted.
//
//	paths:
//	  - closed: true
//	    points:
//	      - {x: -100, y: 0, selected: true}
//	      - {x: -50, y: 100, kind: control}
type outlineDoc struct {
	Paths []pathDoc `yaml:"paths"`
}

type pathDoc struct {
	Closed bool       `yaml:"closed"`
	Points []pointDoc `yaml:"points"`
}

type pointDoc struct {
	X        float64 `yaml:"x"`
	Y        float64 `yaml:"y"`
	Kind     string  `yaml:"kind,omitempty"`
	Selected bool    `yaml:"selected,omitempty"`
}

func loadOutline(name string) (outlineDoc, error) {
	f, err := os.Open(name)
	if err != nil {
		return outlineDoc{}, err
	}
	defer f.Close()
	return readOutline(f)
}

func readOutline(r io.Reader) (outlineDoc, error) {
	var doc outlineDoc
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return outlineDoc{}, fmt.Errorf("cannot decode outline: %w", err)
	}
	return doc, nil
}

func (doc outlineDoc) toPaths() ([]*mirror.Path, error) {
	paths := make([]*mirror.Path, 0, len(doc.Paths))
	for i, pd := range doc.Paths {
		path := mirror.NullPath()
		for j, pt := range pd.Points {
			var p mirror.Point
			switch pt.Kind {
			case "", "anchor":
				p = mirror.AnchorAt(pt.X, pt.Y)
			case "control":
				p = mirror.ControlAt(pt.X, pt.Y)
			default:
				return nil, fmt.Errorf("path #%d point #%d: unknown kind %q", i, j, pt.Kind)
			}
			if pt.Selected {
				p = p.Select()
			}
			path.Append(p)
		}
		if pd.Closed {
			path.Cycle()
		}
		paths = append(paths, path.End())
	}
	return paths, nil
}

func fromResults(results []seam.Result) outlineDoc {
	doc := outlineDoc{Paths: make([]pathDoc, 0, len(results))}
	for _, res := range results {
		pd := pathDoc{Closed: res.Closed, Points: make([]pointDoc, 0, len(res.Points))}
		for _, p := range res.Points {
			kind := ""
			if !p.IsAnchor() {
				kind = "control"
			}
			pd.Points = append(pd.Points, pointDoc{X: p.X(), Y: p.Y(), Kind: kind, Selected: p.Selected})
		}
		doc.Paths = append(doc.Paths, pd)
	}
	return doc
}

func writeOutline(w io.Writer, doc outlineDoc) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("cannot encode outline: %w", err)
	}
	return enc.Close()
}
