// Copyright ©2022 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"runtime/debug"

	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the module version and build settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			info, ok := debug.ReadBuildInfo()
			if !ok {
				return fmt.Errorf("no build information available")
			}
			w := cmd.OutOrStdout()
			version := info.Main.Version
			if version == "" {
				version = "(devel)"
			}
			fmt.Fprintf(w, "%s %s %s\n", info.Main.Path, version, info.GoVersion)
			buildSettings(w, info)
			return nil
		},
	}
}

func buildSettings(w io.Writer, info *debug.BuildInfo) {
	fmt.Fprintf(w, "Build settings:\n")
	for _, setting := range info.Settings {
		if setting.Value == "" {
			continue
		}
		// Keys are right aligned in a 16 column field.
		fmt.Fprintf(w, "%16s %s\n", setting.Key, setting.Value)
	}
}
