package svglayout

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/samber/lo"
	"gopkg.in/yaml.v3"

	"github.com/cutsheet/cutsheet/svgunit"
)

// Plan is the YAML description of a layout run: the canvas, the
// number of cut layers, the default variant selections and the
// component placements.
type Plan struct {
	Canvas Canvas            `yaml:"canvas"`
	Layers int               `yaml:"layers"`
	Tags   map[string]string `yaml:"tags"`
	Parts  []Placement       `yaml:"parts"`

	// Output is the per-layer file pattern, with %d standing for
	// the layer number.
	Output string `yaml:"output"`
}

// Canvas is the physical sheet size, as measurement strings
// ("600mm", "24in").
type Canvas struct {
	Width  string `yaml:"width"`
	Height string `yaml:"height"`
}

// Placement poses one source fragment, plus optional extra copies of
// the same fragment at further poses (a tray repeated along a row,
// for example).
type Placement struct {
	Source string  `yaml:"source"`
	X      float64 `yaml:"x"`      // mm
	Y      float64 `yaml:"y"`      // mm
	Rotate float64 `yaml:"rotate"` // degrees
	Repeat []Pose  `yaml:"repeat"`
}

// Pose is a bare position/rotation, used for repeated copies.
type Pose struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Rotate float64 `yaml:"rotate"`
}

// DefaultOutput is used when a plan does not name an output pattern.
const DefaultOutput = "layer-%d.svg"

// LoadPlan reads and validates a plan file.
func LoadPlan(path string) (*Plan, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var plan Plan
	if err := yaml.Unmarshal(raw, &plan); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if plan.Layers == 0 {
		plan.Layers = 1
	}
	if plan.Layers < 0 {
		return nil, fmt.Errorf("%s: layers must be positive, got %d", path, plan.Layers)
	}
	if plan.Output == "" {
		plan.Output = DefaultOutput
	}
	if plan.Layers > 1 && !strings.Contains(plan.Output, "%d") {
		return nil, fmt.Errorf("%s: output pattern %q needs a %%d for the layer number", path, plan.Output)
	}
	if len(plan.Parts) == 0 {
		return nil, fmt.Errorf("%s: no parts to place", path)
	}
	for i, part := range plan.Parts {
		if part.Source == "" {
			return nil, fmt.Errorf("%s: parts[%d] has no source", path, i)
		}
	}
	return &plan, nil
}

// LayerSet returns the layer numbers of the plan, 0..Layers-1.
func (p *Plan) LayerSet() []int {
	return lo.Range(p.Layers)
}

// Scene loads every source fragment (once per file, however many
// copies are placed) and assembles the master scene. Relative source
// paths are resolved against baseDir.
func (p *Plan) Scene(baseDir string) (*Scene, error) {
	width, err := svgunit.ParseLength(p.Canvas.Width)
	if err != nil {
		return nil, fmt.Errorf("canvas width: %w", err)
	}
	height, err := svgunit.ParseLength(p.Canvas.Height)
	if err != nil {
		return nil, fmt.Errorf("canvas height: %w", err)
	}

	scene := NewScene(width, height)
	loaded := map[string]Component{}
	for _, part := range p.Parts {
		source := part.Source
		if !filepath.IsAbs(source) {
			source = filepath.Join(baseDir, source)
		}
		base, ok := loaded[source]
		if !ok {
			base, err = Load(source)
			if err != nil {
				return nil, err
			}
			loaded[source] = base
		}
		scene.Place(base.Translated(part.X, part.Y).Rotated(part.Rotate))
		for _, pose := range part.Repeat {
			scene.Place(base.Translated(pose.X, pose.Y).Rotated(pose.Rotate))
		}
	}
	return scene, nil
}
