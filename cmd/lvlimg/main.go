// SPDX-License-Identifier: MIT

// Command lvlimg runs the lvlimg kernels (centre of mass, gradient,
// threshold, rigid transform, statistics, labeling) on a grayscale PNG or
// on a synthetic image when no input is given.
//
// Every flag can also be set through the environment (LVLIMG_<FLAG>, dashes
// as underscores) or a config file passed with --config.
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
