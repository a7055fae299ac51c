// Copyright 2026 NetApp, Inc. All Rights Reserved.

package api

const (
	StateAccepted  = "Accepted"
	StateCreating  = "Creating"
	StateAvailable = "Succeeded"
	StateDeleting  = "Deleting"
	StateDeleted   = "NoSuchState"
	StateMoving    = "Moving" // Currently unused by ANF
	StateError     = "Failed"

	ProtocolTypeNFSPrefix = "NFSv"
	ProtocolTypeNFSv3     = ProtocolTypeNFSPrefix + "3"
	ProtocolTypeNFSv41    = ProtocolTypeNFSPrefix + "4.1"
	ProtocolTypeCIFS      = "CIFS"

	ServiceLevelStandard = "Standard"
	ServiceLevelPremium  = "Premium"
	ServiceLevelUltra    = "Ultra"
)

// FileSystem records details of a discovered ANF volume.
type FileSystem struct {
	ID                string
	ResourceGroup     string
	NetAppAccount     string
	CapacityPool      string
	Name              string
	FullName          string
	Location          string
	Type              string
	ExportPolicy      ExportPolicy
	FileSystemID      string
	ProvisioningState string
	CreationToken     string
	ProtocolTypes     []string
	QuotaInBytes      int64
	ServiceLevel      string
	SubnetID          string
	MountTargets      []MountTarget
}

// FilesystemCreateRequest embodies all the details of a volume to be created.
type FilesystemCreateRequest struct {
	ResourceGroup string
	NetAppAccount string
	CapacityPool  string
	Name          string
	Location      string
	SubnetID      string
	CreationToken string
	ServiceLevel  string
	ExportPolicy  ExportPolicy
	ProtocolTypes []string
	QuotaInBytes  int64
}

// ExportPolicy records details of an ANF volume export policy.
type ExportPolicy struct {
	Rules []ExportRule
}

// ExportRule records details of an ANF volume export policy rule.
type ExportRule struct {
	AllowedClients string
	Cifs           bool
	Nfsv3          bool
	Nfsv41         bool
	RuleIndex      int32
	UnixReadOnly   bool
	UnixReadWrite  bool
}

// MountTarget records details of an ANF volume mount target.
type MountTarget struct {
	MountTargetID string
	FileSystemID  string
	IPAddress     string
	SmbServerFqdn string
}
