// Copyright 2026 NetApp, Inc. All Rights Reserved.

package cmd

import (
	"github.com/spf13/cobra"
)

var planFile string

func init() {
	RootCmd.AddCommand(planCmd)
	planCmd.Flags().StringVarP(&planFile, "filename", "f", "", "Path to the task document")
	_ = planCmd.MarkFlagRequired("filename")
}

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Report what applying a document would change",
	Long:  "Plan each task of a document against the observed backend state without changing anything",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initCmdLogging()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDocument(planFile, true)
	},
}
