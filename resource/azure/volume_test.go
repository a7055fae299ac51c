// Copyright 2026 NetApp, Inc. All Rights Reserved.

package azure

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/netapp/converge/config"
	"github.com/netapp/converge/mocks/mock_resource/mock_azure"
	"github.com/netapp/converge/reconcile"
	"github.com/netapp/converge/resource"
	"github.com/netapp/converge/resource/azure/api"
	"github.com/netapp/converge/utils/errors"
)

const (
	testSubscription  = "mysubscription"
	testResourceGroup = "myresourcegroup"
	testAccount       = "myaccount"
	testPool          = "mypool"
)

func testVolumeParams() VolumeParams {
	return VolumeParams{
		Name:           "vol1",
		Location:       "eastus",
		ResourceGroup:  testResourceGroup,
		AccountName:    testAccount,
		PoolName:       testPool,
		FilePath:       "vol1",
		VirtualNetwork: "myvnet",
		SubnetName:     "mysubnet",
		ServiceLevel:   api.ServiceLevelPremium,
		SizeGiB:        100,
		ProtocolTypes:  []string{api.ProtocolTypeNFSv41},
	}
}

func newMockedVolumeModule(t *testing.T, params VolumeParams) (*VolumeModule, *mock_azure.MockANF) {
	mockAPI := mock_azure.NewMockANF(gomock.NewController(t))
	return &VolumeModule{params: params, subscriptionID: testSubscription, api: mockAPI}, mockAPI
}

// testFileSystem is the volume testVolumeParams would create, as ANF reports it.
func testFileSystem(module *VolumeModule) *api.FileSystem {
	return &api.FileSystem{
		ID:                api.CreateVolumeID(testSubscription, testResourceGroup, testAccount, testPool, "vol1"),
		ResourceGroup:     testResourceGroup,
		NetAppAccount:     testAccount,
		CapacityPool:      testPool,
		Name:              "vol1",
		Location:          "eastus",
		ProvisioningState: api.StateAvailable,
		CreationToken:     "vol1",
		ProtocolTypes:     []string{api.ProtocolTypeNFSv41},
		QuotaInBytes:      100 * oneGiB,
		ServiceLevel:      api.ServiceLevelPremium,
		SubnetID:          module.subnetID(),
		ExportPolicy:      module.desiredExportPolicy(),
		MountTargets: []api.MountTarget{
			{IPAddress: "10.0.0.4"},
		},
	}
}

func TestVolumePlan_Create(t *testing.T) {
	ctx := context.Background()

	module, mockAPI := newMockedVolumeModule(t, testVolumeParams())

	mockAPI.EXPECT().VolumeByName(ctx, testResourceGroup, testAccount, testPool, "vol1").Return(nil, nil)

	plan, err := module.Plan(ctx)

	assert.NoError(t, err, "Plan should succeed for an absent volume")
	assert.Equal(t, reconcile.ActionCreate, plan.Action, "Absent volume with state present should be created")
	assert.True(t, plan.Changed(), "Create plan should report a change")
}

func TestVolumeApply_Create(t *testing.T) {
	ctx := context.Background()

	module, mockAPI := newMockedVolumeModule(t, testVolumeParams())
	volume := testFileSystem(module)

	expectedRequest := &api.FilesystemCreateRequest{
		ResourceGroup: testResourceGroup,
		NetAppAccount: testAccount,
		CapacityPool:  testPool,
		Name:          "vol1",
		Location:      "eastus",
		SubnetID:      module.subnetID(),
		CreationToken: "vol1",
		ServiceLevel:  api.ServiceLevelPremium,
		ExportPolicy:  module.desiredExportPolicy(),
		ProtocolTypes: []string{api.ProtocolTypeNFSv41},
		QuotaInBytes:  100 * oneGiB,
	}

	mockAPI.EXPECT().CreateVolume(ctx, expectedRequest).Return(volume, nil)
	mockAPI.EXPECT().WaitForVolumeState(ctx, volume, api.StateAvailable, []string{api.StateError},
		config.VolumeStateTimeoutSeconds*time.Second).Return(api.StateAvailable, nil)
	mockAPI.EXPECT().VolumeByName(ctx, testResourceGroup, testAccount, testPool, "vol1").Return(volume, nil)

	result, err := module.Apply(ctx, &reconcile.Plan{Action: reconcile.ActionCreate})

	assert.NoError(t, err, "Apply should succeed")
	assert.True(t, result.Changed, "Result should report the change")
	assert.Equal(t, "10.0.0.4:/vol1", result.Output["mount_path"], "Result should carry the mount path")
}

func TestVolumePlan_Idempotent(t *testing.T) {
	ctx := context.Background()

	module, mockAPI := newMockedVolumeModule(t, testVolumeParams())
	volume := testFileSystem(module)

	mockAPI.EXPECT().VolumeByName(ctx, testResourceGroup, testAccount, testPool, "vol1").Return(volume, nil)

	plan, err := module.Plan(ctx)
	assert.NoError(t, err, "Plan should succeed")
	assert.Equal(t, reconcile.ActionNone, plan.Action, "Matching volume should plan no change")
	assert.False(t, plan.Changed(), "Second run with unchanged state should report no change")

	// An unchanged present volume still reports its mount path.
	mockAPI.EXPECT().VolumeByName(ctx, testResourceGroup, testAccount, testPool, "vol1").Return(volume, nil)

	result, err := module.Apply(ctx, plan)
	assert.NoError(t, err, "Apply should succeed")
	assert.False(t, result.Changed)
	assert.Equal(t, "10.0.0.4:/vol1", result.Output["mount_path"])
}

func TestVolumePlan_Grow(t *testing.T) {
	ctx := context.Background()

	params := testVolumeParams()
	params.SizeGiB = 200

	module, mockAPI := newMockedVolumeModule(t, params)
	volume := testFileSystem(module)

	mockAPI.EXPECT().VolumeByName(ctx, testResourceGroup, testAccount, testPool, "vol1").Return(volume, nil)

	plan, err := module.Plan(ctx)
	assert.NoError(t, err, "Plan should succeed")
	assert.Equal(t, reconcile.ActionModify, plan.Action, "Size growth should plan a modify")
	assert.Contains(t, plan.Modified, "size", "Modify plan should name the size field")

	mockAPI.EXPECT().ResizeVolume(ctx, volume, 200*oneGiB).Return(nil)
	mockAPI.EXPECT().WaitForVolumeState(ctx, volume, api.StateAvailable, []string{api.StateError},
		config.VolumeStateTimeoutSeconds*time.Second).Return(api.StateAvailable, nil)
	mockAPI.EXPECT().VolumeByName(ctx, testResourceGroup, testAccount, testPool, "vol1").Return(volume, nil)

	result, err := module.Apply(ctx, plan)
	assert.NoError(t, err, "Apply should succeed")
	assert.True(t, result.Changed)
}

func TestVolumePlan_ShrinkRejected(t *testing.T) {
	ctx := context.Background()

	module, mockAPI := newMockedVolumeModule(t, testVolumeParams())
	volume := testFileSystem(module)
	volume.QuotaInBytes = 200 * oneGiB

	mockAPI.EXPECT().VolumeByName(ctx, testResourceGroup, testAccount, testPool, "vol1").Return(volume, nil)

	_, err := module.Plan(ctx)
	assert.Error(t, err, "Shrinking a volume must be rejected")
	assert.True(t, errors.IsInvalidInputError(err), "Error should be a typed invalid-input error")
	assert.Contains(t, err.Error(), "may not shrink")
}

func TestVolumePlan_ImmutableFieldRejected(t *testing.T) {
	ctx := context.Background()

	params := testVolumeParams()
	params.ServiceLevel = api.ServiceLevelUltra

	module, mockAPI := newMockedVolumeModule(t, params)
	volume := testFileSystem(module)

	mockAPI.EXPECT().VolumeByName(ctx, testResourceGroup, testAccount, testPool, "vol1").Return(volume, nil)

	_, err := module.Plan(ctx)
	assert.Error(t, err, "service_level drift must be rejected")
	assert.True(t, errors.IsInvalidInputError(err))
	assert.Contains(t, err.Error(), "may not be changed for an existing volume")
}

func TestVolumePlan_ExportPolicyModify(t *testing.T) {
	ctx := context.Background()

	module, mockAPI := newMockedVolumeModule(t, testVolumeParams())
	volume := testFileSystem(module)
	volume.ExportPolicy = api.ExportPolicy{
		Rules: []api.ExportRule{{
			RuleIndex:      1,
			AllowedClients: "10.0.0.0/24",
			Nfsv41:         true,
			UnixReadOnly:   true,
		}},
	}

	mockAPI.EXPECT().VolumeByName(ctx, testResourceGroup, testAccount, testPool, "vol1").Return(volume, nil)

	plan, err := module.Plan(ctx)
	assert.NoError(t, err, "Plan should succeed")
	assert.Equal(t, reconcile.ActionModify, plan.Action, "Export policy drift should plan a modify")
	assert.Contains(t, plan.Modified, "export_policy")

	desiredPolicy := module.desiredExportPolicy()
	mockAPI.EXPECT().ModifyVolume(ctx, volume, &desiredPolicy).Return(nil)
	mockAPI.EXPECT().WaitForVolumeState(ctx, volume, api.StateAvailable, []string{api.StateError},
		config.VolumeStateTimeoutSeconds*time.Second).Return(api.StateAvailable, nil)
	mockAPI.EXPECT().VolumeByName(ctx, testResourceGroup, testAccount, testPool, "vol1").Return(volume, nil)

	_, err = module.Apply(ctx, plan)
	assert.NoError(t, err, "Apply should succeed")
}

func TestVolumeApply_Delete(t *testing.T) {
	ctx := context.Background()

	params := VolumeParams{Name: "vol1", State: config.StateAbsent,
		ResourceGroup: testResourceGroup, AccountName: testAccount, PoolName: testPool}

	module, mockAPI := newMockedVolumeModule(t, params)
	volume := &api.FileSystem{Name: "vol1", QuotaInBytes: 100 * oneGiB}

	mockAPI.EXPECT().VolumeByName(ctx, testResourceGroup, testAccount, testPool, "vol1").Return(volume, nil)

	plan, err := module.Plan(ctx)
	assert.NoError(t, err, "Plan should succeed")
	assert.Equal(t, reconcile.ActionDelete, plan.Action)

	mockAPI.EXPECT().DeleteVolume(ctx, volume).Return(nil)
	mockAPI.EXPECT().WaitForVolumeState(ctx, volume, api.StateDeleted, []string{api.StateError},
		config.VolumeStateTimeoutSeconds*time.Second).Return(api.StateDeleted, nil)

	result, err := module.Apply(ctx, plan)
	assert.NoError(t, err, "Apply should succeed")
	assert.True(t, result.Changed)
	assert.Nil(t, result.Output, "Deleting a volume reports no mount path")
}

func TestVolumePlan_DeleteAbsent(t *testing.T) {
	ctx := context.Background()

	params := VolumeParams{Name: "vol1", State: config.StateAbsent,
		ResourceGroup: testResourceGroup, AccountName: testAccount, PoolName: testPool}

	module, mockAPI := newMockedVolumeModule(t, params)

	mockAPI.EXPECT().VolumeByName(ctx, testResourceGroup, testAccount, testPool, "vol1").Return(nil, nil)

	plan, err := module.Plan(ctx)
	assert.NoError(t, err, "Plan should succeed")
	assert.Equal(t, reconcile.ActionNone, plan.Action, "Deleting an absent volume is not a change")
	assert.False(t, plan.Changed())
}

func TestVolumeMountPath_NoMountTargets(t *testing.T) {
	ctx := context.Background()

	module, mockAPI := newMockedVolumeModule(t, testVolumeParams())
	volume := testFileSystem(module)
	volume.MountTargets = nil

	mockAPI.EXPECT().VolumeByName(ctx, testResourceGroup, testAccount, testPool, "vol1").Return(volume, nil)

	mountPath, err := module.mountPath(ctx)
	assert.NoError(t, err, "mountPath should succeed")
	assert.Equal(t, "", mountPath, "A volume without mount targets has no mount path yet")
}

func TestVolumeMountPath_VolumeVanished(t *testing.T) {
	ctx := context.Background()

	module, mockAPI := newMockedVolumeModule(t, testVolumeParams())

	mockAPI.EXPECT().VolumeByName(ctx, testResourceGroup, testAccount, testPool, "vol1").Return(nil, nil)

	_, err := module.mountPath(ctx)
	assert.Error(t, err, "A volume that vanished after create must be reported")
	assert.Contains(t, err.Error(), "cannot be found")
}

func TestVolumeSubnetID(t *testing.T) {
	module, _ := newMockedVolumeModule(t, testVolumeParams())

	assert.Equal(t,
		"/subscriptions/mysubscription/resourceGroups/myresourcegroup/providers/"+
			"Microsoft.Network/virtualNetworks/myvnet/subnets/mysubnet",
		module.subnetID(), "Subnet ID should default to the volume's resource group")

	params := testVolumeParams()
	params.VnetResourceGroupForVnet = "vnetgroup"
	module, _ = newMockedVolumeModule(t, params)

	assert.Equal(t,
		"/subscriptions/mysubscription/resourceGroups/vnetgroup/providers/"+
			"Microsoft.Network/virtualNetworks/myvnet/subnets/mysubnet",
		module.subnetID(), "vnet_resource_group_for_vnet should override the resource group")
}

func TestVolumeValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*VolumeParams)
		wantErr bool
	}{
		{"valid", func(p *VolumeParams) {}, false},
		{"missing name", func(p *VolumeParams) { p.Name = "" }, true},
		{"missing subnet", func(p *VolumeParams) { p.SubnetName = "" }, true},
		{"missing virtual network", func(p *VolumeParams) { p.VirtualNetwork = "" }, true},
		{"missing file path", func(p *VolumeParams) { p.FilePath = "" }, true},
		{"missing pool", func(p *VolumeParams) { p.PoolName = "" }, true},
		{"too small", func(p *VolumeParams) { p.SizeGiB = 50 }, true},
		{"bad service level", func(p *VolumeParams) { p.ServiceLevel = "platinum" }, true},
		{"bad protocol", func(p *VolumeParams) { p.ProtocolTypes = []string{"SMB3"} }, true},
		{"folded protocol", func(p *VolumeParams) { p.ProtocolTypes = []string{"nfsv4.1"} }, false},
		{"bad state", func(p *VolumeParams) { p.State = "paused" }, true},
		{"absent needs little", func(p *VolumeParams) {
			*p = VolumeParams{Name: "vol1", State: config.StateAbsent}
		}, false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			params := testVolumeParams()
			test.mutate(&params)
			module := &VolumeModule{params: params, subscriptionID: testSubscription}
			err := module.Validate(context.Background())
			if test.wantErr {
				assert.Error(t, err, "Validate should fail")
			} else {
				assert.NoError(t, err, "Validate should pass")
			}
		})
	}
}

func TestVolumeAliases(t *testing.T) {
	spec := resource.TaskSpec{
		"name":                           "vol1",
		"subnet_id":                      "mysubnet",
		"virtual_network":                "myvnet",
		"vnet_resource_group_for_subnet": "vnetgroup",
	}

	params := VolumeParams{}
	err := spec.Canonicalize(volumeAliases).Decode(&params)

	assert.NoError(t, err, "Aliased spec should decode")
	assert.Equal(t, "mysubnet", params.SubnetName, "subnet_id should map to subnet_name")
	assert.Equal(t, "vnetgroup", params.VnetResourceGroupForVnet,
		"vnet_resource_group_for_subnet should map to vnet_resource_group_for_vnet")
}
