// Copyright 2026 NetApp, Inc. All Rights Reserved.

package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/ghodss/yaml"
	"github.com/spf13/cobra"
)

func init() {
	RootCmd.AddCommand(getCmd)
}

var getCmd = &cobra.Command{
	Use:   "get",
	Short: "Get one or more resources from a backend",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initCmdLogging()
	},
}

func WriteJSON(out interface{}) {
	jsonBytes, _ := json.MarshalIndent(out, "", "  ")
	fmt.Println(string(jsonBytes))
}

func WriteYAML(out interface{}) {
	jsonBytes, _ := json.Marshal(out)
	yamlBytes, _ := yaml.JSONToYAML(jsonBytes)
	fmt.Println(string(yamlBytes))
}
