// Copyright 2026 NetApp, Inc. All Rights Reserved.

package config

import (
	"fmt"
)

type State string

const (
	/* Misc. tool constants */
	ToolName    = "converge"
	CLIName     = "convergectl"
	toolVersion = "1.2.0"

	/* Desired state constants */
	StatePresent State = "present"
	StateAbsent  State = "absent"
	StateDefault       = StatePresent

	/* Task document constants */
	DefaultBackendsFile = "backends.yaml"
	MaxTaskFileSize     = 1 << 20

	/* Storage API timeouts */
	StorageAPITimeoutSeconds  = 90
	VolumeStateTimeoutSeconds = 300

	/* Azure cloud environment constants */
	AzureEnvironmentPublic       = "AzureCloud"
	AzureEnvironmentUSGovernment = "AzureUSGovernment"
	AzureEnvironmentChina        = "AzureChinaCloud"
)

var (
	validStates = map[State]bool{
		StatePresent: true,
		StateAbsent:  true,
	}

	// BuildHash is the git hash the binary was built from
	BuildHash = "unknown"

	// BuildType is the type of build: custom, beta or stable
	BuildType = "custom"

	// BuildTypeRev is the revision of the build
	BuildTypeRev = "0"

	// BuildTime is the time the binary was built
	BuildTime = "unknown"
)

var validAzureEnvironments = []string{
	AzureEnvironmentPublic,
	AzureEnvironmentUSGovernment,
	AzureEnvironmentChina,
}

func IsValidState(s State) bool {
	_, ok := validStates[s]
	return ok
}

func GetValidStateNames() []string {
	ret := make([]string, 0, len(validStates))
	for key := range validStates {
		ret = append(ret, string(key))
	}
	return ret
}

func IsValidAzureEnvironment(environment string) bool {
	for _, valid := range validAzureEnvironments {
		if environment == valid {
			return true
		}
	}
	return false
}

func GetValidAzureEnvironmentNames() []string {
	ret := make([]string, len(validAzureEnvironments))
	copy(ret, validAzureEnvironments)
	return ret
}

func Version() string {

	var version string

	if BuildType != "stable" {
		if BuildType == "custom" {
			version = fmt.Sprintf("%v-%v+%v", toolVersion, BuildType, BuildHash)
		} else {
			version = fmt.Sprintf("%v-%v.%v+%v", toolVersion, BuildType, BuildTypeRev, BuildHash)
		}
	} else {
		version = toolVersion
	}

	return version
}
