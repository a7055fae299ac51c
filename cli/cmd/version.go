// Copyright 2026 NetApp, Inc. All Rights Reserved.

package cmd

import (
	"os"
	"runtime"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/netapp/converge/config"
)

func init() {
	RootCmd.AddCommand(versionCmd)
}

// versionInfo is the version of convergectl, which is hardcoded at compile time.
type versionInfo struct {
	Version   string `json:"version"`
	GoVersion string `json:"goVersion"`
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version of " + config.CLIName,
	RunE: func(cmd *cobra.Command, args []string) error {
		writeVersion(getVersion())
		return nil
	},
}

func getVersion() *versionInfo {
	return &versionInfo{
		Version:   config.Version(),
		GoVersion: runtime.Version(),
	}
}

func writeVersion(version *versionInfo) {
	switch OutputFormat {
	case FormatJSON:
		WriteJSON(version)
	case FormatYAML:
		WriteYAML(version)
	case FormatWide:
		writeWideVersionTable(version)
	default:
		writeVersionTable(version)
	}
}

func writeVersionTable(version *versionInfo) {

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Version"})

	table.Append([]string{
		version.Version,
	})

	table.Render()
}

func writeWideVersionTable(version *versionInfo) {

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Version", "Go Version"})

	table.Append([]string{
		version.Version,
		version.GoVersion,
	})

	table.Render()
}
