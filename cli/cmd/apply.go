// Copyright 2026 NetApp, Inc. All Rights Reserved.

package cmd

import (
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/netapp/converge/logging"
	"github.com/netapp/converge/resource"
)

var (
	applyFile  string
	applyCheck bool
)

func init() {
	RootCmd.AddCommand(applyCmd)
	applyCmd.Flags().StringVarP(&applyFile, "filename", "f", "", "Path to the task document")
	applyCmd.Flags().BoolVar(&applyCheck, "check", false, "Report what would change without changing anything")
	_ = applyCmd.MarkFlagRequired("filename")
}

var applyCmd = &cobra.Command{
	Use:   "apply",
	Short: "Converge the tasks of a document",
	Long:  "Converge each task of a document to its desired state, in order, reporting what changed",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initCmdLogging()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDocument(applyFile, applyCheck)
	},
}

// runDocument converges one task document.  Results accumulated before a
// failure are still written so a partial run is visible.
func runDocument(path string, check bool) error {

	ctx := logging.GenerateRequestContext(nil, "", logging.ContextSourceCLI)
	fs := afero.NewOsFs()

	backends, err := resource.LoadBackends(fs, BackendsFile)
	if err != nil {
		return err
	}

	document, err := resource.LoadDocument(fs, path)
	if err != nil {
		return err
	}

	results, runErr := resource.Run(ctx, document, backends, check)
	writeResults(results)
	return runErr
}
