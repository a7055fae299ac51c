// Copyright 2026 NetApp, Inc. All Rights Reserved.

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/netapp/converge/config"
	"github.com/netapp/converge/logging"

	// Register the resource kinds
	_ "github.com/netapp/converge/resource/azure"
	_ "github.com/netapp/converge/resource/ontap"
)

const (
	FormatJSON = "json"
	FormatWide = "wide"
	FormatYAML = "yaml"

	ExitCodeSuccess = 0
	ExitCodeFailure = 1
)

var (
	ExitCode int

	Debug        bool
	LogLevel     string
	LogFormat    string
	BackendsFile string
	OutputFormat string
)

var RootCmd = &cobra.Command{
	SilenceUsage: true,
	Use:          config.CLIName,
	Short:        "A CLI tool for converging NetApp storage",
	Long:         `A CLI tool for converging ONTAP and Azure NetApp Files resources to a desired state`,
}

func init() {
	RootCmd.PersistentFlags().BoolVarP(&Debug, "debug", "d", false, "Debug output")
	RootCmd.PersistentFlags().StringVarP(&LogLevel, "log-level", "", "info",
		"Logging level (debug, info, warn, error, fatal)")
	RootCmd.PersistentFlags().StringVarP(&LogFormat, "log-format", "", logging.TextFormat,
		"Logging format (text, json)")
	RootCmd.PersistentFlags().StringVarP(&BackendsFile, "backends", "b", config.DefaultBackendsFile,
		"Path to the backends file")
	RootCmd.PersistentFlags().StringVarP(&OutputFormat, "output", "o", "", "Output format. One of json|yaml|wide")
}

func initCmdLogging() error {
	if err := logging.InitLoggingForCLI(LogFormat); err != nil {
		return err
	}
	return logging.InitLogLevel(Debug, LogLevel)
}

func SetExitCodeFromError(err error) {
	ExitCode = GetExitCodeFromError(err)
}

func GetExitCodeFromError(err error) int {
	if err == nil {
		return ExitCodeSuccess
	}
	return ExitCodeFailure
}
