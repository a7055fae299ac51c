// Copyright 2026 NetApp, Inc. All Rights Reserved.

package api

import (
	"context"
	"time"
)

//go:generate mockgen -destination=../../../mocks/mock_resource/mock_azure/mock_api.go -package mock_azure github.com/netapp/converge/resource/azure/api ANF

// ANF is the set of volume operations the resource layer needs, implemented
// by Client over the Azure NetApp Files SDK.
type ANF interface {
	// VolumeByName returns the named volume in the given account and capacity
	// pool, or (nil, nil) if no such volume exists.
	VolumeByName(ctx context.Context, resourceGroup, netappAccount, capacityPool, name string) (*FileSystem, error)

	// CreateVolume issues the volume create request without waiting for the
	// volume to become available; use WaitForVolumeState for that.
	CreateVolume(ctx context.Context, request *FilesystemCreateRequest) (*FileSystem, error)

	// ModifyVolume replaces the volume's export policy.
	ModifyVolume(ctx context.Context, filesystem *FileSystem, exportPolicy *ExportPolicy) error

	// ResizeVolume updates the volume's quota and waits for the operation to
	// complete.
	ResizeVolume(ctx context.Context, filesystem *FileSystem, newSizeBytes int64) error

	// DeleteVolume issues the volume delete request without waiting for the
	// volume to vanish.  Deleting an absent volume is not an error.
	DeleteVolume(ctx context.Context, filesystem *FileSystem) error

	// WaitForVolumeState polls until the volume reaches the desired state,
	// one of the abort states (a terminal error), or the elapsed-time limit.
	// It returns the last state seen.
	WaitForVolumeState(
		ctx context.Context, filesystem *FileSystem, desiredState string, abortStates []string,
		maxElapsedTime time.Duration,
	) (string, error)
}
