package svglayout

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cutsheet/cutsheet/svglabel"
)

func TestLoadPlan(t *testing.T) {
	plan, err := LoadPlan("testdata/plan.yaml")
	require.NoError(t, err)

	assert.Equal(t, "300mm", plan.Canvas.Width)
	assert.Equal(t, 2, plan.Layers)
	assert.Equal(t, []int{0, 1}, plan.LayerSet())
	assert.Equal(t, map[string]string{"light": "gm-p13"}, plan.Tags)
	assert.Equal(t, "sheet-%d.svg", plan.Output)
	require.Len(t, plan.Parts, 2)
	assert.Equal(t, "parts/tray.svg", plan.Parts[0].Source)
	require.Len(t, plan.Parts[0].Repeat, 1)
}

func TestLoadPlanValidation(t *testing.T) {
	dir := t.TempDir()
	write := func(name, content string) string {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
		return path
	}

	_, err := LoadPlan(write("noparts.yaml", "canvas: {width: 10mm, height: 10mm}\n"))
	assert.ErrorContains(t, err, "no parts")

	_, err = LoadPlan(write("nosource.yaml",
		"canvas: {width: 10mm, height: 10mm}\nparts:\n  - x: 1\n"))
	assert.ErrorContains(t, err, "no source")

	_, err = LoadPlan(write("badpattern.yaml",
		"canvas: {width: 10mm, height: 10mm}\nlayers: 3\noutput: out.svg\nparts:\n  - source: a.svg\n"))
	assert.ErrorContains(t, err, "%d")
}

func TestLoadPlanDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "plan.yaml")
	require.NoError(t, os.WriteFile(path, []byte(
		"canvas: {width: 10mm, height: 10mm}\nparts:\n  - source: a.svg\n"), 0o644))

	plan, err := LoadPlan(path)
	require.NoError(t, err)
	assert.Equal(t, 1, plan.Layers)
	assert.Equal(t, DefaultOutput, plan.Output)
}

func TestPlanScene(t *testing.T) {
	plan, err := LoadPlan("testdata/plan.yaml")
	require.NoError(t, err)

	scene, err := plan.Scene("testdata")
	require.NoError(t, err)
	assert.InDelta(t, 300, scene.Width(), 1e-9)
	assert.InDelta(t, 200, scene.Height(), 1e-9)

	components := scene.Components()
	require.Len(t, components, 3)

	// Two tray copies from one loaded fragment, sharing the tree.
	assert.Same(t, components[0].fragment, components[1].fragment)
	assert.InDelta(t, 10, components[0].X(), 1e-9)
	assert.InDelta(t, 0, components[0].Rotation(), 1e-9)
	assert.InDelta(t, 40, components[1].Y(), 1e-9)
	assert.InDelta(t, 90, components[1].Rotation(), 1e-9)

	assert.InDelta(t, 25.4, components[2].Width(), 1e-9)
	assert.InDelta(t, 45, components[2].Rotation(), 1e-9)

	outputs, err := scene.Outputs(plan.Tags, plan.LayerSet(), svglabel.WarnErrorMode)
	require.NoError(t, err)
	require.Len(t, outputs, 2)
	require.NotNil(t, outputs[0])
}

func TestPlanSceneBadCanvas(t *testing.T) {
	plan := &Plan{
		Canvas: Canvas{Width: "10", Height: "10mm"},
		Parts:  []Placement{{Source: "parts/tray.svg"}},
		Layers: 1,
	}
	_, err := plan.Scene("testdata")
	assert.ErrorContains(t, err, "canvas width")
}
