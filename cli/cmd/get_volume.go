// Copyright 2026 NetApp, Inc. All Rights Reserved.

package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/netapp/converge/logging"
	"github.com/netapp/converge/resource"
	"github.com/netapp/converge/resource/azure/api"
	"github.com/netapp/converge/utils/errors"
)

var (
	volumeResourceGroup string
	volumeAccount       string
	volumePool          string
)

func init() {
	getCmd.AddCommand(getVolumeCmd)
	getVolumeCmd.Flags().StringVar(&volumeResourceGroup, "resource-group", "",
		"Resource group to query (defaults to the backend's resource_group)")
	getVolumeCmd.Flags().StringVar(&volumeAccount, "account", "",
		"NetApp account to query (defaults to the backend's netapp_account)")
	getVolumeCmd.Flags().StringVar(&volumePool, "pool", "",
		"Capacity pool to query (defaults to the backend's pool_name)")
}

var getVolumeCmd = &cobra.Command{
	Use:     "volume <name>",
	Short:   "Get a volume from the Azure NetApp Files backend",
	Aliases: []string{"volumes"},
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return volumeGet(args[0])
	},
}

func volumeGet(name string) error {

	ctx := logging.GenerateRequestContext(nil, "", logging.ContextSourceCLI)

	backends, err := resource.LoadBackends(afero.NewOsFs(), BackendsFile)
	if err != nil {
		return err
	}
	if backends.Azure == nil {
		return errors.UnsupportedConfigError("no azure backend is configured")
	}
	backend := backends.Azure

	resourceGroup := volumeResourceGroup
	if resourceGroup == "" {
		resourceGroup = backend.ResourceGroup
	}
	account := volumeAccount
	if account == "" {
		account = backend.NetappAccount
	}
	pool := volumePool
	if pool == "" {
		pool = backend.PoolName
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
		return err
	}

	volume, err := anf.VolumeByName(ctx, resourceGroup, account, pool, name)
	if err != nil {
		return err
	}
	if volume == nil {
		return errors.NotFoundError("volume %s was not found", name)
	}

	writeVolume(volume)
	return nil
}

func writeVolume(volume *api.FileSystem) {
	switch OutputFormat {
	case FormatJSON:
		WriteJSON(volume)
	case FormatYAML:
		WriteYAML(volume)
	default:
		writeVolumeTable(volume)
	}
}

func writeVolumeTable(volume *api.FileSystem) {

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Name", "State", "Service Level", "Size", "Protocols", "Mount Path"})

	table.Append([]string{
		volume.Name,
		volume.ProvisioningState,
		volume.ServiceLevel,
		humanize.IBytes(uint64(volume.QuotaInBytes)),
		strings.Join(volume.ProtocolTypes, ", "),
		volumeMountPath(volume),
	})

	table.Render()
}

// volumeMountPath reports "<ip>:/<creation token>" from the volume's first
// mount target, or "" when the volume has no mount targets yet.
func volumeMountPath(volume *api.FileSystem) string {
	if len(volume.MountTargets) == 0 {
		return ""
	}
	return fmt.Sprintf("%s:/%s", volume.MountTargets[0].IPAddress, volume.CreationToken)
}
