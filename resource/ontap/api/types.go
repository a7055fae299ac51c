// Copyright 2026 NetApp, Inc. All Rights Reserved.

// Package api provides a driver-neutral view of ONTAP SAN objects with
// interchangeable ZAPI and REST implementations underneath. Callers work
// against the OntapAPI interface and never see wire-level types.
package api

import "context"

//go:generate mockgen -destination=../../../mocks/mock_resource/mock_ontap/mock_api.go -package mock_ontap github.com/netapp/converge/resource/ontap/api OntapAPI

// Igroup is an initiator group as reported by the backend. UUID is only
// populated where the backend exposes one; ZAPI operations address igroups
// by name, REST operations by UUID.
type Igroup struct {
	Name               string
	UUID               string
	Vserver            string
	OsType             string
	InitiatorGroupType string
	BindPortset        string
	Initiators         []string
}

// IgroupCreateSpec carries the options for creating an initiator group.
// Empty fields are omitted from the backend call so ONTAP defaults apply.
type IgroupCreateSpec struct {
	Name               string
	OsType             string
	InitiatorGroupType string
	BindPortset        string
	Initiators         []string
}

// OntapAPI is the set of igroup operations the resource layer needs,
// implemented by OntapAPIZAPI and OntapAPIREST.
type OntapAPI interface {
	// IsREST reports whether the implementation talks to the REST interface.
	// A few behaviors differ per interface: REST renames via modify, and the
	// REST igroup record does not carry a portset binding.
	IsREST() bool

	// APIVersion returns the ONTAP version of the target system as
	// "generation.major.minor".
	APIVersion(ctx context.Context) (string, error)

	// IgroupGetByName returns the named igroup in the client's SVM, or
	// (nil, nil) if no such igroup exists.
	IgroupGetByName(ctx context.Context, name string) (*Igroup, error)

	IgroupCreate(ctx context.Context, spec IgroupCreateSpec) error

	// IgroupDestroy deletes the igroup. With force set the igroup is deleted
	// even while it is mapped to one or more LUNs.
	IgroupDestroy(ctx context.Context, igroup *Igroup, force bool) error

	// IgroupRename changes the igroup's name while preserving its identity.
	// Only supported over ZAPI; REST renames through IgroupModify.
	IgroupRename(ctx context.Context, igroup *Igroup, newName string) error

	IgroupAddInitiators(ctx context.Context, igroup *Igroup, initiators []string) error
	IgroupRemoveInitiators(ctx context.Context, igroup *Igroup, initiators []string) error

	// IgroupModify applies the supplied attribute changes, keyed by task
	// option name. Options the interface cannot modify yield an unsupported
	// error naming the option.
	IgroupModify(ctx context.Context, igroup *Igroup, patch map[string]string) error
}
