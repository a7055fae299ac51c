// Copyright 2026 NetApp, Inc. All Rights Reserved.

package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/netapp/converge/resource/azure/api"
)

func TestVolumeMountPath(t *testing.T) {

	volume := &api.FileSystem{
		Name:          "volume1",
		CreationToken: "volume1-token",
		MountTargets: []api.MountTarget{
			{IPAddress: "10.0.0.4"},
			{IPAddress: "10.0.0.5"},
		},
	}

	assert.Equal(t, "10.0.0.4:/volume1-token", volumeMountPath(volume),
		"Mount path should come from the first mount target")

	volume.MountTargets = nil
	assert.Equal(t, "", volumeMountPath(volume), "No mount targets should yield an empty mount path")
}
