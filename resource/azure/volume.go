// Copyright 2026 NetApp, Inc. All Rights Reserved.

// Package azure converges Azure NetApp Files resources.  The volume module
// reconciles ANF volumes through the Azure Resource Manager SDK, waiting for
// the asynchronous operations it issues to reach a terminal state.
package azure

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/multierr"

	"github.com/netapp/converge/config"
	. "github.com/netapp/converge/logging"
	"github.com/netapp/converge/reconcile"
	"github.com/netapp/converge/resource"
	"github.com/netapp/converge/resource/azure/api"
	"github.com/netapp/converge/utils/errors"
)

const (
	KindVolume = "azure_netapp_volume"

	oneGiB         = int64(1073741824)
	minimumSizeGiB = int64(100)
	defaultSizeGiB = int64(100)
)

var (
	validServiceLevels = []string{api.ServiceLevelPremium, api.ServiceLevelStandard, api.ServiceLevelUltra}
	validProtocolTypes = []string{api.ProtocolTypeNFSv3, api.ProtocolTypeNFSv41, api.ProtocolTypeCIFS}

	// volumeAliases maps the alternate task option names onto the canonical ones.
	volumeAliases = map[string]string{
		"subnet_id":                      "subnet_name",
		"vnet_resource_group_for_subnet": "vnet_resource_group_for_vnet",
	}
)

func init() {
	resource.Register(KindVolume, NewVolumeModule)
}

// VolumeParams are the task options of the azure_netapp_volume kind.  Size is
// in GiB.  Scope options (resource_group, account_name, pool_name, location)
// default to the backend's values when omitted.
type VolumeParams struct {
	Name                     string       `json:"name"`
	State                    config.State `json:"state,omitempty"`
	Location                 string       `json:"location,omitempty"`
	ResourceGroup            string       `json:"resource_group,omitempty"`
	AccountName              string       `json:"account_name,omitempty"`
	PoolName                 string       `json:"pool_name,omitempty"`
	FilePath                 string       `json:"file_path,omitempty"`
	VirtualNetwork           string       `json:"virtual_network,omitempty"`
	SubnetName               string       `json:"subnet_name,omitempty"`
	ServiceLevel             string       `json:"service_level,omitempty"`
	SizeGiB                  int64        `json:"size,omitempty"`
	ProtocolTypes            []string     `json:"protocol_types,omitempty"`
	VnetResourceGroupForVnet string       `json:"vnet_resource_group_for_vnet,omitempty"`
}

// VolumeModule reconciles one ANF volume.
type VolumeModule struct {
	params         VolumeParams
	subscriptionID string
	api            api.ANF

	current *api.FileSystem
}

// NewVolumeModule builds a volume module for one task.
func NewVolumeModule(_ context.Context, spec resource.TaskSpec, backends *resource.Backends) (resource.Module, error) {

	if backends == nil || backends.Azure == nil {
		return nil, errors.UnsupportedConfigError("task of kind %s requires an azure backend", KindVolume)
	}

	params := VolumeParams{}
	if err := spec.Canonicalize(volumeAliases).Decode(&params); err != nil {
		return nil, fmt.Errorf("could not decode %s task: %v", KindVolume, err)
	}

	backend := backends.Azure
	if params.Location == "" {
		params.Location = backend.Location
	}
	if params.ResourceGroup == "" {
		params.ResourceGroup = backend.ResourceGroup
	}
	if params.AccountName == "" {
		params.AccountName = backend.NetappAccount
	}
	if params.PoolName == "" {
		params.PoolName = backend.PoolName
	}
	if params.SizeGiB == 0 {
		params.SizeGiB = defaultSizeGiB
	}

	anf, err := api.NewDriver(api.ClientConfig{
		SubscriptionID: backend.SubscriptionID,
		TenantID:       backend.TenantID,
		ClientID:       backend.ClientID,
		ClientSecret:   backend.ClientSecret,
		Environment:    backend.Environment,
		Location:       backend.Location,
	})
	if err != nil {
		return nil, err
	}

	return &VolumeModule{
		params:         params,
		subscriptionID: backend.SubscriptionID,
		api:            anf,
	}, nil
}

func (m *VolumeModule) Kind() string { return KindVolume }
func (m *VolumeModule) Name() string { return m.params.Name }

func (m *VolumeModule) Validate(_ context.Context) error {

	var err error
	if m.params.Name == "" {
		err = multierr.Append(err, fmt.Errorf("%s task requires name", KindVolume))
	}
	if m.params.State != "" && !config.IsValidState(m.params.State) {
		err = multierr.Append(err, fmt.Errorf("invalid state '%s'; must be one of %v",
			m.params.State, config.GetValidStateNames()))
	}

	if m.desiredState() == config.StatePresent {
		for option, value := range map[string]string{
			"location":        m.params.Location,
			"file_path":       m.params.FilePath,
			"subnet_name":     m.params.SubnetName,
			"virtual_network": m.params.VirtualNetwork,
		} {
			if value == "" {
				err = multierr.Append(err, fmt.Errorf("state is present but %s was not specified", option))
			}
		}
		if m.params.ResourceGroup == "" || m.params.AccountName == "" || m.params.PoolName == "" {
			err = multierr.Append(err, fmt.Errorf(
				"resource_group, account_name and pool_name must be set in the task or the azure backend"))
		}
		if m.params.SizeGiB < minimumSizeGiB {
			err = multierr.Append(err, fmt.Errorf("size must be at least %d GiB; got %d",
				minimumSizeGiB, m.params.SizeGiB))
		}
	}

	if m.params.ServiceLevel != "" && !containsFold(validServiceLevels, m.params.ServiceLevel) {
		err = multierr.Append(err, fmt.Errorf("invalid service_level '%s'; must be one of %v",
			m.params.ServiceLevel, validServiceLevels))
	}
	for _, protocol := range m.params.ProtocolTypes {
		if !containsFold(validProtocolTypes, protocol) {
			err = multierr.Append(err, fmt.Errorf("invalid protocol type '%s'; must be one of %v",
				protocol, validProtocolTypes))
		}
	}
	return err
}

func (m *VolumeModule) Plan(ctx context.Context) (*reconcile.Plan, error) {

	tracker := &reconcile.Tracker{}

	observed, err := m.api.VolumeByName(ctx,
		m.params.ResourceGroup, m.params.AccountName, m.params.PoolName, m.params.Name)
	if err != nil {
		return nil, err
	}
	m.current = observed

	cdAction := tracker.CDAction(volumeAttributes(observed), m.desiredState())

	var modified map[string]reconcile.FieldDiff
	if cdAction == reconcile.ActionNone && m.desiredState() == config.StatePresent && observed != nil {
		modified = tracker.ModifiedAttributes(
			volumeAttributes(observed), m.desiredAttributes(), reconcile.WithSizeKeys("size"))
		if err = m.validateModify(modified); err != nil {
			return nil, err
		}
	}

	action := reconcile.ResolveAction(cdAction, false, modified)

	Logc(ctx).WithFields(LogFields{
		"volume":  m.params.Name,
		"action":  action,
		"changed": tracker.Changed(),
	}).Debug("Planned volume.")

	return &reconcile.Plan{
		Action:   action,
		Modified: modified,
	}, nil
}

func (m *VolumeModule) Apply(ctx context.Context, plan *reconcile.Plan) (*resource.Result, error) {

	result := &resource.Result{
		Kind:     KindVolume,
		Name:     m.params.Name,
		Action:   plan.Action,
		Changed:  plan.Changed(),
		Modified: plan.Modified,
	}

	switch plan.Action {

	case reconcile.ActionCreate:
		if err := m.applyCreate(ctx); err != nil {
			return nil, err
		}

	case reconcile.ActionDelete:
		if err := m.api.DeleteVolume(ctx, m.current); err != nil {
			return nil, fmt.Errorf("Error deleting volume %s for Azure NetApp account %s: %v",
				m.params.Name, m.params.AccountName, err)
		}
		if _, err := m.waitForState(ctx, m.current, api.StateDeleted); err != nil {
			return nil, err
		}

	case reconcile.ActionModify:
		if err := m.applyModify(ctx, plan); err != nil {
			return nil, err
		}
	}

	if m.desiredState() == config.StatePresent {
		mountPath, err := m.mountPath(ctx)
		if err != nil {
			return nil, err
		}
		result.Output = map[string]any{"mount_path": mountPath}
	}

	return result, nil
}

func (m *VolumeModule) applyCreate(ctx context.Context) error {

	subnetID := m.subnetID()

	request := &api.FilesystemCreateRequest{
		ResourceGroup: m.params.ResourceGroup,
		NetAppAccount: m.params.AccountName,
		CapacityPool:  m.params.PoolName,
		Name:          m.params.Name,
		Location:      m.params.Location,
		SubnetID:      subnetID,
		CreationToken: m.params.FilePath,
		ServiceLevel:  m.params.ServiceLevel,
		ExportPolicy:  m.desiredExportPolicy(),
		ProtocolTypes: m.params.ProtocolTypes,
		QuotaInBytes:  m.params.SizeGiB * oneGiB,
	}

	volume, err := m.api.CreateVolume(ctx, request)
	if err != nil {
		return fmt.Errorf("Error creating volume %s for Azure NetApp account %s and subnet ID %s: %v",
			m.params.Name, m.params.AccountName, subnetID, err)
	}

	if _, err = m.waitForState(ctx, volume, api.StateAvailable); err != nil {
		return err
	}
	return nil
}

func (m *VolumeModule) applyModify(ctx context.Context, plan *reconcile.Plan) error {

	if diff, ok := plan.Modified["size"]; ok {
		Logc(ctx).WithFields(LogFields{
			"volume": m.params.Name,
			"old":    diff.Old,
			"new":    diff.New,
		}).Debug("Resizing volume.")
		if err := m.api.ResizeVolume(ctx, m.current, m.params.SizeGiB*oneGiB); err != nil {
			return fmt.Errorf("Error resizing volume %s: %v", m.params.Name, err)
		}
	}

	if _, ok := plan.Modified["export_policy"]; ok {
		policy := m.desiredExportPolicy()
		if err := m.api.ModifyVolume(ctx, m.current, &policy); err != nil {
			return fmt.Errorf("Error modifying volume %s: %v", m.params.Name, err)
		}
	}

	if _, err := m.waitForState(ctx, m.current, api.StateAvailable); err != nil {
		return err
	}
	return nil
}

func (m *VolumeModule) waitForState(ctx context.Context, volume *api.FileSystem, desiredState string) (string, error) {
	return m.api.WaitForVolumeState(ctx, volume, desiredState,
		[]string{api.StateError}, config.VolumeStateTimeoutSeconds*time.Second)
}

// mountPath re-reads the volume and reports "<ip>:/<creation token>" from its
// first mount target, or "" when the volume has no mount targets yet.
func (m *VolumeModule) mountPath(ctx context.Context) (string, error) {

	volume, err := m.api.VolumeByName(ctx,
		m.params.ResourceGroup, m.params.AccountName, m.params.PoolName, m.params.Name)
	if err != nil {
		return "", err
	}
	if volume == nil {
		return "", fmt.Errorf("Error: volume %s was created successfully, but cannot be found", m.params.Name)
	}
	if len(volume.MountTargets) == 0 {
		return "", nil
	}
	return fmt.Sprintf("%s:/%s", volume.MountTargets[0].IPAddress, volume.CreationToken), nil
}

func (m *VolumeModule) desiredState() config.State {
	if m.params.State == "" {
		return config.StateDefault
	}
	return m.params.State
}

// subnetID builds the subnet resource ID the way the original module does: the
// vnet lives in the volume's resource group unless vnet_resource_group_for_vnet
// points elsewhere.
func (m *VolumeModule) subnetID() string {
	vnetResourceGroup := m.params.ResourceGroup
	if m.params.VnetResourceGroupForVnet != "" {
		vnetResourceGroup = m.params.VnetResourceGroupForVnet
	}
	return api.CreateSubnetID(m.subscriptionID, vnetResourceGroup, m.params.VirtualNetwork, m.params.SubnetName)
}

// desiredExportPolicy auto-creates the single NFSv4.1 rule the original module
// installs; volumes without NFSv4.1 get no explicit policy.
func (m *VolumeModule) desiredExportPolicy() api.ExportPolicy {
	if !containsFold(m.params.ProtocolTypes, api.ProtocolTypeNFSv41) {
		return api.ExportPolicy{}
	}
	return api.ExportPolicy{
		Rules: []api.ExportRule{{
			RuleIndex:      1,
			AllowedClients: "0.0.0.0/0",
			Nfsv41:         true,
			UnixReadWrite:  true,
		}},
	}
}

// volumeAttributes maps a backend record onto a comparable attribute record.
// Immutable attributes are included so that drift on them is detected and
// rejected rather than silently ignored.
func volumeAttributes(volume *api.FileSystem) reconcile.Attributes {

	if volume == nil {
		return nil
	}

	attributes := reconcile.Attributes{
		"size":          volume.QuotaInBytes,
		"service_level": volume.ServiceLevel,
		"location":      volume.Location,
		"subnet_id":     volume.SubnetID,
	}
	if len(volume.ProtocolTypes) > 0 {
		attributes["protocol_types"] = volume.ProtocolTypes
	}
	if len(volume.ExportPolicy.Rules) > 0 {
		attributes["export_policy"] = volume.ExportPolicy
	}
	return attributes
}

func (m *VolumeModule) desiredAttributes() reconcile.Attributes {

	desired := reconcile.Attributes{
		"size":      m.params.SizeGiB * oneGiB,
		"subnet_id": m.subnetID(),
	}
	if m.params.Location != "" {
		desired["location"] = m.params.Location
	}
	if m.params.ServiceLevel != "" {
		desired["service_level"] = m.params.ServiceLevel
	}
	if len(m.params.ProtocolTypes) > 0 {
		desired["protocol_types"] = m.params.ProtocolTypes
	}
	if policy := m.desiredExportPolicy(); len(policy.Rules) > 0 {
		desired["export_policy"] = policy
	}
	return desired
}

// validateModify rejects drift the ANF API cannot change in place, and size
// shrinks, which ANF refuses.
func (m *VolumeModule) validateModify(modified map[string]reconcile.FieldDiff) error {

	for option, diff := range modified {
		switch option {
		case "size":
			if m.current != nil && m.params.SizeGiB*oneGiB < m.current.QuotaInBytes {
				return errors.InvalidInputError(
					"volume %s may not shrink from %d to %d bytes", m.params.Name,
					m.current.QuotaInBytes, m.params.SizeGiB*oneGiB)
			}
		case "export_policy":
		default:
			return errors.InvalidInputError(
				"%s may not be changed for an existing volume (%v -> %v)", option, diff.Old, diff.New)
		}
	}
	return nil
}

func containsFold(slice []string, s string) bool {
	for _, item := range slice {
		if strings.EqualFold(item, s) {
			return true
		}
	}
	return false
}
