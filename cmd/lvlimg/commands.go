// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/lvlimg/algorithms"
	"github.com/katalvlaran/lvlimg/core"
	"github.com/katalvlaran/lvlimg/img"
	"github.com/katalvlaran/lvlimg/labeling"
	"github.com/katalvlaran/lvlimg/model"
)

func (a *app) comCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "com",
		Short: "Print the intensity-weighted centre of mass",
		RunE: func(cmd *cobra.Command, _ []string) error {
			im, err := a.load()
			if err != nil {
				return err
			}
			com := algorithms.CenterOfMass[float32](im)
			parts := make([]string, len(com))
			for i, v := range com {
				parts[i] = fmt.Sprintf("%.3f", v)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "center of mass: (%s)\n", strings.Join(parts, ", "))

			return nil
		},
	}
}

func (a *app) gradientCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gradient",
		Short: "Compute the gradient magnitude with mirror-single borders",
		RunE: func(cmd *cobra.Command, _ []string) error {
			im, err := a.load()
			if err != nil {
				return err
			}
			workers := a.v.GetInt("workers")
			if workers < 1 {
				return fmt.Errorf("workers %d: must be >= 1", workers)
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			a.logger.Debug("gradient", "workers", workers, "layout", im.Factory().Name())
			g, err := algorithms.GradientParallel[float32, float32](ctx, im, im.Factory(), algorithms.WithWorkers(workers))
			if err != nil {
				return err
			}
			if err = a.printStats(cmd, "gradient", g); err != nil {
				return err
			}

			return writePNG[float32](a, g)
		},
	}
	cmd.Flags().Int("workers", algorithms.DefaultWorkers(), "parallel slabs")

	return cmd
}

// cutoff resolves --cutoff, or the --auto percentile of im when set.
func (a *app) cutoff(im core.IterableInterval[float32]) (float64, error) {
	if p := a.v.GetFloat64("auto"); p > 0 {
		c, err := algorithms.Percentile[float32](im, p)
		if err != nil {
			return 0, err
		}
		a.logger.Info("automatic cutoff", "percentile", p, "cutoff", c)

		return c, nil
	}

	return a.v.GetFloat64("cutoff"), nil
}

// cutoffFlags is shared by threshold and label.
func cutoffFlags() *pflag.FlagSet {
	fs := pflag.NewFlagSet("cutoff", pflag.ContinueOnError)
	fs.Float64("cutoff", 100, "foreground when value > cutoff")
	fs.Float64("auto", 0, "use this percentile (0 < p <= 100) of the samples as cutoff")

	return fs
}

func (a *app) thresholdCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "threshold",
		Short: "Binarise the image at a cutoff",
		RunE: func(cmd *cobra.Command, _ []string) error {
			im, err := a.load()
			if err != nil {
				return err
			}
			cutoff, err := a.cutoff(im)
			if err != nil {
				return err
			}
			tr, err := parseTraversal(a.v.GetString("traversal"))
			if err != nil {
				return err
			}

			bits, err := algorithms.ThresholdTo[float32, uint8](im, cutoff, img.ArrayFactory[uint8]{},
				algorithms.WithLevels(algorithms.DefaultInPlaceHigh, algorithms.DefaultInPlaceLow),
				algorithms.WithTraversal(tr))
			if err != nil {
				return err
			}
			on := 0
			for _, v := range bits.(*img.ArrayImg[uint8]).Data() {
				if v != 0 {
					on++
				}
			}
			fmt.Fprintf(cmd.OutOrStdout(), "cutoff %.4g: %d of %d samples above\n", cutoff, on, bits.Size())

			return writePNG[uint8](a, bits)
		},
	}
	cmd.Flags().AddFlagSet(cutoffFlags())
	cmd.Flags().String("traversal", "auto", "pairwise traversal: auto, zip or positional")

	return cmd
}

func (a *app) transformCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "transform",
		Short: "Rotate the image about its centre",
		RunE: func(cmd *cobra.Command, _ []string) error {
			im, err := a.load()
			if err != nil {
				return err
			}
			if im.NumDimensions() != 2 {
				return fmt.Errorf("transform: %d-D image: %w", im.NumDimensions(), core.ErrDimensionMismatch)
			}
			interp, err := parseInterp(a.v.GetString("interp"))
			if err != nil {
				return err
			}
			boundary, err := parseBoundary(a.v.GetString("boundary"))
			if err != nil {
				return err
			}

			b := im.Bounds()
			cx, cy := float64(b.Dimension(0)-1)/2, float64(b.Dimension(1)-1)/2
			angle := a.v.GetFloat64("angle")
			m, err := model.Concatenate(
				model.NewTranslation(-cx, -cy),
				model.NewRigid2D(model.Degrees(angle), 0, 0),
				model.NewTranslation(cx, cy),
			)
			if err != nil {
				return err
			}
			a.logger.Debug("transform", "angle", angle, "center", []float64{cx, cy})

			out, err := algorithms.Transform[float32](im, m,
				algorithms.WithInterpolation(interp),
				algorithms.WithBoundary(boundary),
				algorithms.WithBackground(a.v.GetFloat64("background")))
			if err != nil {
				return err
			}
			if err = a.printStats(cmd, "transformed", out); err != nil {
				return err
			}

			return writePNG[float32](a, out)
		},
	}
	f := cmd.Flags()
	f.Float64("angle", 15, "rotation in degrees")
	f.String("interp", "nlinear", "interpolation: nlinear or nearest")
	f.String("boundary", "value", "outside samples: value, mirror-single, mirror-double, border")
	f.Float64("background", algorithms.DefaultBackground, "constant for --boundary value")

	return cmd
}

func (a *app) statsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Summarise the sample distribution",
		RunE: func(cmd *cobra.Command, _ []string) error {
			im, err := a.load()
			if err != nil {
				return err
			}

			return a.printStats(cmd, "input", im)
		},
	}
}

func (a *app) printStats(cmd *cobra.Command, what string, ii core.IterableInterval[float32]) error {
	s, err := algorithms.Statistics[float32](ii)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", what, s)

	return nil
}

func (a *app) labelCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "label",
		Short: "Label connected foreground components",
		RunE: func(cmd *cobra.Command, _ []string) error {
			im, err := a.load()
			if err != nil {
				return err
			}
			cutoff, err := a.cutoff(im)
			if err != nil {
				return err
			}
			conn := labeling.ConnFace
			if a.v.GetBool("full") {
				conn = labeling.ConnFull
			}

			res, err := labeling.Components[float32](im,
				labeling.WithForeground(cutoff), labeling.WithConnectivity(conn))
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%d components (%s connectivity, cutoff %.4g)\n", res.Count(), conn, cutoff)
			if l := res.Largest(); l > 0 {
				n, _ := res.Size(l)
				fmt.Fprintf(out, "largest: label %d, %d samples\n", l, n)
			}

			// Spread labels over the visible range for the PNG.
			labels := res.Labels()
			shade := make([]uint8, labels.Size())
			for i, l := range labels.Data() {
				if l > 0 {
					shade[i] = uint8(55 + (int(l)*37)%200)
				}
			}
			vis, err := img.WrapSlice(shade, labels.Bounds().Dims()...)
			if err != nil {
				return err
			}

			return writePNG[uint8](a, vis)
		},
	}
	cmd.Flags().AddFlagSet(cutoffFlags())
	cmd.Flags().Bool("full", false, "full (8 in 2-D) instead of face (4 in 2-D) connectivity")

	return cmd
}
