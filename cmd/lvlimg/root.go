// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/lvlimg/img"
)

const envPrefix = "LVLIMG"

// app carries the per-invocation configuration and logger.
type app struct {
	v      *viper.Viper
	logger *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New(), logger: slog.Default()}
	root := &cobra.Command{
		Use:          "lvlimg",
		Short:        "Run n-dimensional image kernels on a grayscale image",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.String("config", "", "config file (yaml, toml or json)")
	pf.String("log-level", "info", "log level: debug, info, warn, error")
	pf.StringP("input", "i", "", "grayscale PNG input; empty means a synthetic image")
	pf.StringP("output", "o", "", "write the result as a PNG")
	pf.String("layout", "array", "working image layout: array, planar or cell")
	pf.Int("cell-size", img.DefaultCellSize, "cell side for --layout cell")
	pf.Int("width", 64, "synthetic image width")
	pf.Int("height", 48, "synthetic image height")
	pf.Int64("seed", 1, "synthetic image seed")
	pf.Int("blobs", 6, "synthetic image blob count")
	pf.Float64("sigma", 5, "synthetic image blob sigma")

	root.AddCommand(
		a.comCmd(),
		a.gradientCmd(),
		a.thresholdCmd(),
		a.transformCmd(),
		a.statsCmd(),
		a.labelCmd(),
	)

	return root
}

// setup binds flags, environment and config file into viper and builds the
// logger. Flags set on the command line win over env, env over config file.
func (a *app) setup(cmd *cobra.Command) error {
	if err := a.v.BindPFlags(cmd.Flags()); err != nil {
		return err
	}
	a.v.SetEnvPrefix(envPrefix)
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()

	if path := a.v.GetString("config"); path != "" {
		a.v.SetConfigFile(path)
		if err := a.v.ReadInConfig(); err != nil {
			return fmt.Errorf("config %s: %w", path, err)
		}
	}

	level := new(slog.LevelVar)
	if err := level.UnmarshalText([]byte(a.v.GetString("log-level"))); err != nil {
		return fmt.Errorf("log-level: %w", err)
	}
	a.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	a.logger.Debug("configured", "command", cmd.Name(), "config", a.v.ConfigFileUsed())

	return nil
}
