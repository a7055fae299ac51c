// Copyright 2026 NetApp, Inc. All Rights Reserved.

// Package api provides a high-level interface to the Azure NetApp Files SDK
package api

import (
	"context"
	"fmt"
	"net/http"
	"regexp"
	"time"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/arm"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/cloud"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/runtime"
	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
	netapp "github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/netapp/armnetapp/v8"
	"github.com/cenkalti/backoff/v4"

	convergeconfig "github.com/netapp/converge/config"
	. "github.com/netapp/converge/logging"
	"github.com/netapp/converge/utils"
	"github.com/netapp/converge/utils/errors"
)

const (
	DefaultSDKTimeout   = 30 * time.Second
	SDKRetryDelay       = 2 * time.Second
	SDKMaxRetryDelay    = 15 * time.Second
	CorrelationIDHeader = "X-Ms-Correlation-Request-Id"
)

var (
	volumeIDRegex = regexp.MustCompile(`^/subscriptions/(?P<subscriptionID>[^/]+)/resourceGroups/(?P<resourceGroup>[^/]+)/providers/(?P<provider>[^/]+)/netAppAccounts/(?P<netappAccount>[^/]+)/capacityPools/(?P<capacityPool>[^/]+)/volumes/(?P<volume>[^/]+)$`)
	subnetIDRegex = regexp.MustCompile(`^/subscriptions/(?P<subscriptionID>[^/]+)/resourceGroups/(?P<resourceGroup>[^/]+)/providers/(?P<provider>[^/]+)/virtualNetworks/(?P<virtualNetwork>[^/]+)/subnets/(?P<subnet>[^/]+)$`)
)

// ClientConfig holds configuration data for the API driver object.
type ClientConfig struct {
	SubscriptionID string
	TenantID       string
	ClientID       string
	ClientSecret   string
	Environment    string
	Location       string

	// Options
	DebugTraceFlags map[string]bool
	SDKTimeout      time.Duration // Timeout applied to all calls to the Azure SDK
}

// AzureClient holds operational Azure SDK objects.
type AzureClient struct {
	Credential    azcore.TokenCredential
	VolumesClient *netapp.VolumesClient
}

// Client encapsulates connection details.
type Client struct {
	config    *ClientConfig
	sdkClient *AzureClient
}

var _ ANF = Client{}

// NewDriver is a factory method for creating a new SDK interface.
func NewDriver(config ClientConfig) (ANF, error) {

	cloudConfig, err := cloudConfiguration(config.Environment)
	if err != nil {
		return nil, err
	}

	credential, err := GetAzureCredential(config)
	if err != nil {
		return nil, err
	}

	if config.SDKTimeout == 0 {
		config.SDKTimeout = DefaultSDKTimeout
	}

	clientOptions := &arm.ClientOptions{
		ClientOptions: policy.ClientOptions{
			Cloud: cloudConfig,
			Retry: policy.RetryOptions{
				TryTimeout:    config.SDKTimeout,
				RetryDelay:    SDKRetryDelay,
				MaxRetryDelay: SDKMaxRetryDelay,
			},
		},
	}

	volumesClient, err := netapp.NewVolumesClient(config.SubscriptionID, credential, clientOptions)
	if err != nil {
		return nil, err
	}

	sdkClient := &AzureClient{
		Credential:    credential,
		VolumesClient: volumesClient,
	}

	return Client{
		config:    &config,
		sdkClient: sdkClient,
	}, nil
}

// GetAzureCredential returns a service principal credential when a client
// secret is configured, or the default credential chain otherwise.  Either
// credential targets the cloud the configured environment selects.
func GetAzureCredential(config ClientConfig) (azcore.TokenCredential, error) {

	cloudConfig, err := cloudConfiguration(config.Environment)
	if err != nil {
		return nil, err
	}

	if config.ClientSecret != "" {
		options := &azidentity.ClientSecretCredentialOptions{
			ClientOptions: policy.ClientOptions{Cloud: cloudConfig},
		}
		return azidentity.NewClientSecretCredential(config.TenantID, config.ClientID, config.ClientSecret, options)
	}

	options := &azidentity.DefaultAzureCredentialOptions{
		ClientOptions: policy.ClientOptions{Cloud: cloudConfig},
	}
	return azidentity.NewDefaultAzureCredential(options)
}

// cloudConfiguration maps a backend environment name onto the endpoints of the
// matching Azure cloud.  An empty name selects the public cloud.
func cloudConfiguration(environment string) (cloud.Configuration, error) {
	switch environment {
	case "", convergeconfig.AzureEnvironmentPublic:
		return cloud.AzurePublic, nil
	case convergeconfig.AzureEnvironmentUSGovernment:
		return cloud.AzureGovernment, nil
	case convergeconfig.AzureEnvironmentChina:
		return cloud.AzureChina, nil
	default:
		return cloud.Configuration{}, errors.UnsupportedConfigError(
			"unknown Azure environment '%s'; must be one of %v",
			environment, convergeconfig.GetValidAzureEnvironmentNames())
	}
}

// ///////////////////////////////////////////////////////////////////////////////
// Functions to convert between ANF resource names and IDs
// ///////////////////////////////////////////////////////////////////////////////

// CreateSubnetID creates the fully qualified Azure resource ID of a subnet.
func CreateSubnetID(subscriptionID, resourceGroup, vNet, subnet string) string {
	return fmt.Sprintf("/subscriptions/%s/resourceGroups/%s/providers/Microsoft.Network/virtualNetworks/%s/subnets/%s",
		subscriptionID, resourceGroup, vNet, subnet)
}

// ParseSubnetID parses the constituent elements out of a subnet's resource ID.
func ParseSubnetID(subnetID string) (subscriptionID, resourceGroup, provider, vNet, subnet string, err error) {
	match := subnetIDRegex.FindStringSubmatch(subnetID)
	if match == nil {
		err = fmt.Errorf("subnet ID %s is invalid", subnetID)
		return
	}

	paramsMap := make(map[string]string)
	for i, name := range subnetIDRegex.SubexpNames() {
		if i > 0 && i <= len(match) {
			paramsMap[name] = match[i]
		}
	}

	subscriptionID = paramsMap["subscriptionID"]
	resourceGroup = paramsMap["resourceGroup"]
	provider = paramsMap["provider"]
	vNet = paramsMap["virtualNetwork"]
	subnet = paramsMap["subnet"]
	return
}

// CreateVolumeID creates the fully qualified Azure resource ID of a volume.
func CreateVolumeID(subscriptionID, resourceGroup, netappAccount, capacityPool, volume string) string {
	return fmt.Sprintf("/subscriptions/%s/resourceGroups/%s/providers/Microsoft.NetApp/netAppAccounts/%s/capacityPools/%s/volumes/%s",
		subscriptionID, resourceGroup, netappAccount, capacityPool, volume)
}

// CreateVolumeFullName creates the fully qualified name of a volume.
func CreateVolumeFullName(resourceGroup, netappAccount, capacityPool, volume string) string {
	return fmt.Sprintf("%s/%s/%s/%s", resourceGroup, netappAccount, capacityPool, volume)
}

// ParseVolumeID parses the constituent elements out of a volume's resource ID.
func ParseVolumeID(
	volumeID string,
) (subscriptionID, resourceGroup, provider, netappAccount, capacityPool, volume string, err error) {
	match := volumeIDRegex.FindStringSubmatch(volumeID)
	if match == nil {
		err = fmt.Errorf("volume ID %s is invalid", volumeID)
		return
	}

	paramsMap := make(map[string]string)
	for i, name := range volumeIDRegex.SubexpNames() {
		if i > 0 && i <= len(match) {
			paramsMap[name] = match[i]
		}
	}

	subscriptionID = paramsMap["subscriptionID"]
	resourceGroup = paramsMap["resourceGroup"]
	provider = paramsMap["provider"]
	netappAccount = paramsMap["netappAccount"]
	capacityPool = paramsMap["capacityPool"]
	volume = paramsMap["volume"]
	return
}

// ///////////////////////////////////////////////////////////////////////////////
// Functions to convert between SDK and internal volume structs
// ///////////////////////////////////////////////////////////////////////////////

// exportPolicyExport turns an internal ExportPolicy into an SDK one.
func exportPolicyExport(exportPolicy *ExportPolicy) *netapp.VolumePropertiesExportPolicy {
	anfRules := make([]*netapp.ExportPolicyRule, 0)

	for _, rule := range exportPolicy.Rules {

		ruleIndex := rule.RuleIndex
		unixReadOnly := rule.UnixReadOnly
		unixReadWrite := rule.UnixReadWrite
		cifs := rule.Cifs
		nfsv3 := rule.Nfsv3
		nfsv41 := rule.Nfsv41
		allowedClients := rule.AllowedClients

		anfRule := netapp.ExportPolicyRule{
			RuleIndex:      &ruleIndex,
			UnixReadOnly:   &unixReadOnly,
			UnixReadWrite:  &unixReadWrite,
			Cifs:           &cifs,
			Nfsv3:          &nfsv3,
			Nfsv41:         &nfsv41,
			AllowedClients: &allowedClients,
		}

		anfRules = append(anfRules, &anfRule)
	}

	return &netapp.VolumePropertiesExportPolicy{
		Rules: anfRules,
	}
}

// exportPolicyImport turns an SDK ExportPolicy into an internal one.
func exportPolicyImport(anfExportPolicy *netapp.VolumePropertiesExportPolicy) *ExportPolicy {
	rules := make([]ExportRule, 0)

	if anfExportPolicy == nil || len(anfExportPolicy.Rules) == 0 {
		return &ExportPolicy{Rules: rules}
	}

	for _, anfRule := range anfExportPolicy.Rules {

		rule := ExportRule{
			RuleIndex:      DerefInt32(anfRule.RuleIndex),
			UnixReadOnly:   DerefBool(anfRule.UnixReadOnly),
			UnixReadWrite:  DerefBool(anfRule.UnixReadWrite),
			Cifs:           DerefBool(anfRule.Cifs),
			Nfsv3:          DerefBool(anfRule.Nfsv3),
			Nfsv41:         DerefBool(anfRule.Nfsv41),
			AllowedClients: DerefString(anfRule.AllowedClients),
		}

		rules = append(rules, rule)
	}

	return &ExportPolicy{Rules: rules}
}

// newFileSystemFromVolume creates a new internal FileSystem struct from an SDK volume.
func (c Client) newFileSystemFromVolume(ctx context.Context, vol *netapp.Volume) (*FileSystem, error) {
	if vol.ID == nil {
		return nil, errors.New("volume ID may not be nil")
	}

	_, resourceGroup, _, netappAccount, cPoolName, name, err := ParseVolumeID(*vol.ID)
	if err != nil {
		return nil, err
	}

	if vol.Properties == nil {
		return nil, fmt.Errorf("volume %s has no properties", DerefString(vol.Name))
	}

	serviceLevel := ""
	if vol.Properties.ServiceLevel != nil {
		serviceLevel = string(*vol.Properties.ServiceLevel)
	}

	return &FileSystem{
		ID:                DerefString(vol.ID),
		ResourceGroup:     resourceGroup,
		NetAppAccount:     netappAccount,
		CapacityPool:      cPoolName,
		Name:              name,
		FullName:          CreateVolumeFullName(resourceGroup, netappAccount, cPoolName, name),
		Location:          DerefString(vol.Location),
		Type:              DerefString(vol.Type),
		ExportPolicy:      *exportPolicyImport(vol.Properties.ExportPolicy),
		FileSystemID:      DerefString(vol.Properties.FileSystemID),
		ProvisioningState: DerefString(vol.Properties.ProvisioningState),
		CreationToken:     DerefString(vol.Properties.CreationToken),
		ProtocolTypes:     DerefStringPtrArray(vol.Properties.ProtocolTypes),
		QuotaInBytes:      DerefInt64(vol.Properties.UsageThreshold),
		ServiceLevel:      serviceLevel,
		SubnetID:          DerefString(vol.Properties.SubnetID),
		MountTargets:      c.getMountTargetsFromVolume(ctx, vol),
	}, nil
}

// getMountTargetsFromVolume extracts the mount targets from an SDK volume.
func (c Client) getMountTargetsFromVolume(ctx context.Context, vol *netapp.Volume) []MountTarget {
	mounts := make([]MountTarget, 0)

	if vol.Properties.MountTargets == nil {
		Logc(ctx).Tracef("Volume %s has nil MountTargetProperties.", DerefString(vol.Name))
		return mounts
	}

	for _, mtp := range vol.Properties.MountTargets {

		mt := MountTarget{
			MountTargetID: DerefString(mtp.MountTargetID),
			FileSystemID:  DerefString(mtp.FileSystemID),
			IPAddress:     DerefString(mtp.IPAddress),
			SmbServerFqdn: DerefString(mtp.SmbServerFqdn),
		}

		mounts = append(mounts, mt)
	}

	return mounts
}

// ///////////////////////////////////////////////////////////////////////////////
// Functions to retrieve and manage volumes
// ///////////////////////////////////////////////////////////////////////////////

// VolumeByName fetches the named volume, mapping the ANF 404 onto a nil record.
func (c Client) VolumeByName(
	ctx context.Context, resourceGroup, netappAccount, capacityPool, name string,
) (*FileSystem, error) {
	logFields := LogFields{
		"API":    "VolumesClient.Get",
		"volume": CreateVolumeFullName(resourceGroup, netappAccount, capacityPool, name),
	}

	var rawResponse *http.Response
	responseCtx := runtime.WithCaptureResponse(ctx, &rawResponse)

	response, err := c.sdkClient.VolumesClient.Get(responseCtx,
		resourceGroup, netappAccount, capacityPool, name, nil)

	logFields["correlationID"] = GetCorrelationID(rawResponse)

	if err != nil {
		if IsANFNotFoundError(err) {
			Logc(ctx).WithFields(logFields).Debug("Volume not found.")
			return nil, nil
		}
		Logc(ctx).WithFields(logFields).WithError(err).Error("Error fetching volume.")
		return nil, err
	}

	Logc(ctx).WithFields(logFields).Debug("Found volume by name.")

	return c.newFileSystemFromVolume(ctx, &response.Volume)
}

// VolumeByID fetches the volume with the given resource ID.  Unlike
// VolumeByName, a missing volume is an error here; WaitForVolumeState relies
// on the typed not-found to detect deletion.
func (c Client) VolumeByID(ctx context.Context, id string) (*FileSystem, error) {

	_, resourceGroup, _, netappAccount, capacityPool, name, err := ParseVolumeID(id)
	if err != nil {
		return nil, err
	}

	response, err := c.sdkClient.VolumesClient.Get(ctx,
		resourceGroup, netappAccount, capacityPool, name, nil)
	if err != nil {
		if IsANFNotFoundError(err) {
			return nil, errors.WrapWithNotFoundError(err, "volume %s not found", id)
		}
		return nil, err
	}

	return c.newFileSystemFromVolume(ctx, &response.Volume)
}

// WaitForVolumeState watches for a desired volume state and returns when that state is achieved.
func (c Client) WaitForVolumeState(
	ctx context.Context, filesystem *FileSystem, desiredState string, abortStates []string,
	maxElapsedTime time.Duration,
) (string, error) {
	volumeState := ""

	checkVolumeState := func() error {
		f, err := c.VolumeByID(ctx, filesystem.ID)
		if err != nil {

			// There is no 'Deleted' state in Azure -- the volume just vanishes.  If we failed to query
			// the volume info, and we're trying to transition to StateDeleted, and we get back a 404,
			// then return success.  Otherwise, log the error as usual.
			if desiredState == StateDeleted && errors.IsNotFoundError(err) {
				Logc(ctx).Debugf("Implied deletion for volume %s.", filesystem.Name)
				volumeState = StateDeleted
				return nil
			}

			return fmt.Errorf("could not get volume status; %v", err)
		}

		volumeState = f.ProvisioningState

		if f.ProvisioningState == desiredState {
			return nil
		}

		err = fmt.Errorf("volume state is %s, not %s", f.ProvisioningState, desiredState)

		// Return a permanent error to stop retrying if we reached one of the abort states
		if utils.SliceContainsString(abortStates, f.ProvisioningState) {
			return backoff.Permanent(TerminalState(err))
		}

		return err
	}

	stateNotify := func(err error, duration time.Duration) {
		Logc(ctx).WithFields(LogFields{
			"increment": duration.Truncate(10 * time.Millisecond),
			"message":   err.Error(),
		}).Debugf("Waiting for volume state.")
	}

	stateBackoff := backoff.NewExponentialBackOff()
	stateBackoff.MaxElapsedTime = maxElapsedTime
	stateBackoff.MaxInterval = 5 * time.Second
	stateBackoff.RandomizationFactor = 0.1
	stateBackoff.InitialInterval = 3 * time.Second
	stateBackoff.Multiplier = 1.414

	Logc(ctx).WithField("desiredState", desiredState).Info("Waiting for volume state.")

	if err := backoff.RetryNotify(checkVolumeState, stateBackoff, stateNotify); err != nil {
		if IsTerminalStateError(err) {
			Logc(ctx).WithError(err).Error("Volume reached terminal state.")
		} else {
			Logc(ctx).Warningf("Volume state was not %s after %3.2f seconds.",
				desiredState, stateBackoff.MaxElapsedTime.Seconds())
		}
		return volumeState, err
	}

	Logc(ctx).WithField("desiredState", desiredState).Debug("Desired volume state reached.")

	return volumeState, nil
}

// CreateVolume creates a new volume.
func (c Client) CreateVolume(ctx context.Context, request *FilesystemCreateRequest) (*FileSystem, error) {
	resourceGroup := request.ResourceGroup
	netappAccount := request.NetAppAccount
	cPoolName := request.CapacityPool

	volumeFullName := CreateVolumeFullName(resourceGroup, netappAccount, cPoolName, request.Name)

	newVol := netapp.Volume{
		Location: &request.Location,
		Name:     &request.Name,
		Properties: &netapp.VolumeProperties{
			CreationToken:  &request.CreationToken,
			UsageThreshold: &request.QuotaInBytes,
			ProtocolTypes:  CreateStringPtrArray(request.ProtocolTypes),
			SubnetID:       &request.SubnetID,
		},
	}

	if request.ServiceLevel != "" {
		serviceLevel := netapp.ServiceLevel(request.ServiceLevel)
		newVol.Properties.ServiceLevel = &serviceLevel
	}
	if len(request.ExportPolicy.Rules) > 0 {
		newVol.Properties.ExportPolicy = exportPolicyExport(&request.ExportPolicy)
	}

	Logc(ctx).WithFields(LogFields{
		"name":          request.Name,
		"creationToken": request.CreationToken,
		"resourceGroup": resourceGroup,
		"netAppAccount": netappAccount,
		"capacityPool":  cPoolName,
		"subnetID":      request.SubnetID,
	}).Debug("Issuing create request.")

	logFields := LogFields{
		"API":           "VolumesClient.BeginCreateOrUpdate",
		"volume":        volumeFullName,
		"creationToken": request.CreationToken,
	}

	var rawResponse *http.Response
	responseCtx := runtime.WithCaptureResponse(ctx, &rawResponse)

	_, err := c.sdkClient.VolumesClient.BeginCreateOrUpdate(responseCtx,
		resourceGroup, netappAccount, cPoolName, request.Name, newVol, nil)

	logFields["correlationID"] = GetCorrelationID(rawResponse)

	if err != nil {
		Logc(ctx).WithFields(logFields).WithError(err).Error("Error creating volume.")
		return nil, err
	}

	Logc(ctx).WithFields(logFields).Info("Volume create request issued.")

	// The volume doesn't exist yet, so forge the volume ID to enable conversion to a FileSystem struct
	newVolID := CreateVolumeID(c.config.SubscriptionID, resourceGroup, netappAccount, cPoolName, request.Name)
	newVol.ID = &newVolID

	return c.newFileSystemFromVolume(ctx, &newVol)
}

// ModifyVolume replaces a volume's export policy in place.
func (c Client) ModifyVolume(ctx context.Context, filesystem *FileSystem, exportPolicy *ExportPolicy) error {
	logFields := LogFields{
		"API":    "VolumesClient.Get",
		"volume": filesystem.FullName,
	}

	var rawResponse *http.Response
	responseCtx := runtime.WithCaptureResponse(ctx, &rawResponse)

	// Fetch the netapp.Volume to fill in the updated fields
	response, err := c.sdkClient.VolumesClient.Get(responseCtx,
		filesystem.ResourceGroup, filesystem.NetAppAccount, filesystem.CapacityPool, filesystem.Name, nil)

	logFields["correlationID"] = GetCorrelationID(rawResponse)

	if err != nil {
		Logc(ctx).WithFields(logFields).WithError(err).Error("Error finding volume to modify.")
		return fmt.Errorf("couldn't get volume to modify; %v", err)
	}
	anfVolume := response.Volume

	Logc(ctx).WithFields(logFields).Debug("Found volume to modify.")

	anfVolume.Properties.ExportPolicy = exportPolicyExport(exportPolicy)

	// Clear out fields that must not be sent back on an update.
	anfVolume.Properties.ServiceLevel = nil
	anfVolume.Properties.ProvisioningState = nil
	anfVolume.Properties.ProtocolTypes = nil
	anfVolume.Properties.MountTargets = nil
	anfVolume.Properties.ThroughputMibps = nil
	anfVolume.Properties.BaremetalTenantID = nil

	logFields = LogFields{
		"API":    "VolumesClient.BeginCreateOrUpdate",
		"volume": filesystem.FullName,
	}

	poller, err := c.sdkClient.VolumesClient.BeginCreateOrUpdate(responseCtx,
		filesystem.ResourceGroup, filesystem.NetAppAccount, filesystem.CapacityPool, filesystem.Name, anfVolume, nil)

	logFields["correlationID"] = GetCorrelationID(rawResponse)

	if err != nil {
		Logc(ctx).WithFields(logFields).WithError(err).Error("Error modifying volume.")
		return err
	}

	_, err = poller.PollUntilDone(responseCtx, &runtime.PollUntilDoneOptions{Frequency: 2 * time.Second})
	if err != nil {
		Logc(ctx).WithFields(logFields).WithError(err).Error("Error polling for volume modify result.")
		return err
	}

	Logc(ctx).WithFields(logFields).Debug("Volume modified.")

	return nil
}

// ResizeVolume sends a VolumePatch to update a volume's quota.
func (c Client) ResizeVolume(ctx context.Context, filesystem *FileSystem, newSizeBytes int64) error {
	logFields := LogFields{
		"API":    "VolumesClient.BeginUpdate",
		"volume": filesystem.FullName,
	}

	patch := netapp.VolumePatch{
		ID:       &filesystem.ID,
		Location: &filesystem.Location,
		Name:     &filesystem.Name,
		Properties: &netapp.VolumePatchProperties{
			UsageThreshold: &newSizeBytes,
		},
	}

	var rawResponse *http.Response
	responseCtx := runtime.WithCaptureResponse(ctx, &rawResponse)

	poller, err := c.sdkClient.VolumesClient.BeginUpdate(responseCtx,
		filesystem.ResourceGroup, filesystem.NetAppAccount, filesystem.CapacityPool, filesystem.Name, patch, nil)

	logFields["correlationID"] = GetCorrelationID(rawResponse)

	if err != nil {
		Logc(ctx).WithFields(logFields).WithError(err).Error("Error resizing volume.")
		return err
	}

	Logc(ctx).WithFields(logFields).Debug("Volume resize request issued.")

	_, err = poller.PollUntilDone(responseCtx, &runtime.PollUntilDoneOptions{Frequency: 2 * time.Second})
	if err != nil {
		Logc(ctx).WithFields(logFields).WithError(err).Error("Error polling for volume resize result.")
		return err
	}

	Logc(ctx).WithFields(logFields).Debug("Volume resize complete.")

	return nil
}

// DeleteVolume deletes a volume.
func (c Client) DeleteVolume(ctx context.Context, filesystem *FileSystem) error {
	logFields := LogFields{
		"API":    "VolumesClient.BeginDelete",
		"volume": filesystem.FullName,
	}

	var rawResponse *http.Response
	responseCtx := runtime.WithCaptureResponse(ctx, &rawResponse)

	_, err := c.sdkClient.VolumesClient.BeginDelete(responseCtx,
		filesystem.ResourceGroup, filesystem.NetAppAccount, filesystem.CapacityPool, filesystem.Name, nil)

	logFields["correlationID"] = GetCorrelationID(rawResponse)

	if err != nil {
		if IsANFNotFoundError(err) {
			Logc(ctx).WithFields(logFields).Info("Volume already deleted.")
			return nil
		}

		Logc(ctx).WithFields(logFields).WithError(err).Error("Error deleting volume.")
		return err
	}

	Logc(ctx).WithFields(logFields).Debug("Volume deleted.")

	return nil
}

// ///////////////////////////////////////////////////////////////////////////////
// Miscellaneous utility functions and error types
// ///////////////////////////////////////////////////////////////////////////////

// IsANFNotFoundError checks whether an error returned from the ANF SDK contains a 404 (Not Found) error.
func IsANFNotFoundError(err error) bool {
	if err == nil {
		return false
	}

	if detailedErr, ok := err.(*azcore.ResponseError); ok {
		if detailedErr.RawResponse != nil && detailedErr.RawResponse.StatusCode == http.StatusNotFound {
			return true
		}
	}

	return false
}

// GetCorrelationID accepts an HTTP response returned from the ANF SDK and extracts the correlation
// header, if present.
func GetCorrelationID(response *http.Response) (id string) {
	if response == nil || response.Header == nil {
		return
	}

	if ids, ok := response.Header[CorrelationIDHeader]; ok && len(ids) > 0 {
		id = ids[0]
	}

	return
}

// DerefString accepts a string pointer and returns the value of the string, or "" if the pointer is nil.
func DerefString(s *string) string {
	if s != nil {
		return *s
	}
	return ""
}

// DerefStringPtrArray accepts an array of string pointers and returns the value of the array.
func DerefStringPtrArray(in []*string) []string {
	out := make([]string, len(in))
	for index, sPtr := range in {
		out[index] = DerefString(sPtr)
	}
	return out
}

// CreateStringPtrArray accepts an array of strings and returns an array of pointers to those strings.
func CreateStringPtrArray(in []string) []*string {
	out := make([]*string, 0)
	if in != nil {
		for index := range in {
			s := in[index]
			out = append(out, &s)
		}
	}
	return out
}

// DerefBool accepts a bool pointer and returns the value of the bool, or false if the pointer is nil.
func DerefBool(b *bool) bool {
	if b != nil {
		return *b
	}
	return false
}

// DerefInt32 accepts an int32 pointer and returns the value of the int32, or 0 if the pointer is nil.
func DerefInt32(i *int32) int32 {
	if i != nil {
		return *i
	}
	return 0
}

// DerefInt64 accepts an int64 pointer and returns the value of the int64, or 0 if the pointer is nil.
func DerefInt64(i *int64) int64 {
	if i != nil {
		return *i
	}
	return 0
}

// TerminalStateError signals that the object is in a terminal state.  This is used to stop waiting on
// an object to change state.
type TerminalStateError struct {
	Err error
}

func (e *TerminalStateError) Error() string {
	return e.Err.Error()
}

// TerminalState wraps the given err in a *TerminalStateError.
func TerminalState(err error) *TerminalStateError {
	return &TerminalStateError{
		Err: err,
	}
}

func IsTerminalStateError(err error) bool {
	if err == nil {
		return false
	}
	_, ok := err.(*TerminalStateError)
	return ok
}
