// Command cutsheet composes laser-cut layout sheets. A YAML plan
// places SVG part fragments on a canvas; cutsheet emits one SVG per
// cut layer, filtered to the chosen variant tags, plus optional
// raster and PDF placement proofs.
package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/cutsheet/cutsheet/svglabel"
	"github.com/cutsheet/cutsheet/svglayout"
	"github.com/cutsheet/cutsheet/svgpreview"
	"github.com/cutsheet/cutsheet/svgproof"
	"github.com/cutsheet/cutsheet/svgtree"
)

// Build information (set by goreleaser)
var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "cutsheet",
		Short: "Compose variant- and layer-filtered SVG cutting sheets",
		Long: `Cutsheet places reusable SVG fragments on a physical canvas per a
YAML plan, then writes one output document per cut layer. Subtrees
annotated with cutsheet:label attributes are kept or pruned according
to the chosen variant tags and the layer of each output.`,
		Example: `  cutsheet build --plan case.yaml --tag light=gm-p13 --out out/
  cutsheet preview --plan case.yaml --out case.png
  cutsheet proof --plan case.yaml --out case.pdf`,
		SilenceUsage: true,
	}
	rootCmd.AddCommand(newBuildCommand(), newPreviewCommand(), newProofCommand(), newVersionCommand())
	return rootCmd
}

func newBuildCommand() *cobra.Command {
	var (
		planPath string
		outDir   string
		tagFlags []string
		strict   bool
	)
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Write one filtered SVG per layer of the plan",
		RunE: func(cmd *cobra.Command, args []string) error {
			plan, scene, err := loadScene(planPath)
			if err != nil {
				return err
			}
			ctx, err := tagContext(plan, tagFlags)
			if err != nil {
				return err
			}
			mode := svglabel.WarnErrorMode
			if strict {
				mode = svglabel.StrictErrorMode
			}
			outputs, err := scene.Outputs(ctx, plan.LayerSet(), mode)
			if err != nil {
				return err
			}

			layers := lo.Keys(outputs)
			sort.Ints(layers)
			var failed []error
			for _, layer := range layers {
				tree := outputs[layer]
				if tree == nil {
					fmt.Fprintf(cmd.OutOrStdout(), "layer %d is empty, skipped\n", layer)
					continue
				}
				path := filepath.Join(outDir, outputName(plan.Output, layer))
				if err := svgtree.WriteDocumentFile(path, tree); err != nil {
					failed = append(failed, fmt.Errorf("layer %d: %w", layer, err))
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
			}
			return errors.Join(failed...)
		},
	}
	cmd.Flags().StringVarP(&planPath, "plan", "p", "", "YAML plan file (required)")
	cmd.Flags().StringVarP(&outDir, "out", "o", ".", "output directory")
	cmd.Flags().StringArrayVarP(&tagFlags, "tag", "t", nil, "variant selection name=value (overrides the plan)")
	cmd.Flags().BoolVar(&strict, "strict", false, "treat unrecognized label content as an error")
	cmd.MarkFlagRequired("plan")
	return cmd
}

func newPreviewCommand() *cobra.Command {
	var (
		planPath string
		outPath  string
		scale    float64
	)
	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Render a PNG of the component placement",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, scene, err := loadScene(planPath)
			if err != nil {
				return err
			}
			if err := svgpreview.WriteFile(outPath, scene, scale); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", outPath)
			return nil
		},
	}
	cmd.Flags().StringVarP(&planPath, "plan", "p", "", "YAML plan file (required)")
	cmd.Flags().StringVarP(&outPath, "out", "o", "preview.png", "output PNG file")
	cmd.Flags().Float64Var(&scale, "scale", 0, "pixels per millimeter (default: 96dpi)")
	cmd.MarkFlagRequired("plan")
	return cmd
}

func newProofCommand() *cobra.Command {
	var (
		planPath string
		outPath  string
	)
	cmd := &cobra.Command{
		Use:   "proof",
		Short: "Write a printable PDF proof of the placement",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, scene, err := loadScene(planPath)
			if err != nil {
				return err
			}
			if err := svgproof.WriteFile(outPath, scene); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", outPath)
			return nil
		},
	}
	cmd.Flags().StringVarP(&planPath, "plan", "p", "", "YAML plan file (required)")
	cmd.Flags().StringVarP(&outPath, "out", "o", "proof.pdf", "output PDF file")
	cmd.MarkFlagRequired("plan")
	return cmd
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "cutsheet %s (%s)\n", version, commit)
		},
	}
}

func loadScene(planPath string) (*svglayout.Plan, *svglayout.Scene, error) {
	plan, err := svglayout.LoadPlan(planPath)
	if err != nil {
		return nil, nil, err
	}
	scene, err := plan.Scene(filepath.Dir(planPath))
	if err != nil {
		return nil, nil, err
	}
	return plan, scene, nil
}

// tagContext merges the plan's default selections with --tag
// overrides.
func tagContext(plan *svglayout.Plan, flags []string) (svglabel.TagContext, error) {
	ctx := svglabel.TagContext{}
	for name, value := range plan.Tags {
		ctx[name] = value
	}
	for _, flag := range flags {
		name, value, ok := strings.Cut(flag, "=")
		if !ok || name == "" {
			return nil, fmt.Errorf("invalid --tag %q (want name=value)", flag)
		}
		ctx[name] = value
	}
	return ctx, nil
}

// outputName expands the layer number into the plan's output
// pattern; a pattern without %d is used as-is.
func outputName(pattern string, layer int) string {
	if strings.Contains(pattern, "%d") {
		return fmt.Sprintf(pattern, layer)
	}
	return pattern
}
