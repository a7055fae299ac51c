// Copyright 2026 NetApp, Inc. All Rights Reserved.

package cmd

import (
	"os"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/netapp/converge/logging"
	"github.com/netapp/converge/resource"
	"github.com/netapp/converge/resource/ontap"
	"github.com/netapp/converge/resource/ontap/api"
	"github.com/netapp/converge/utils/errors"
)

var igroupVserver string

func init() {
	getCmd.AddCommand(getIgroupCmd)
	getIgroupCmd.Flags().StringVar(&igroupVserver, "vserver", "", "SVM to query (defaults to the backend's svm)")
}

var getIgroupCmd = &cobra.Command{
	Use:     "igroup <name>",
	Short:   "Get an initiator group from the ONTAP backend",
	Aliases: []string{"igroups"},
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return igroupGet(args[0])
	},
}

func igroupGet(name string) error {

	ctx := logging.GenerateRequestContext(nil, "", logging.ContextSourceCLI)

	backends, err := resource.LoadBackends(afero.NewOsFs(), BackendsFile)
	if err != nil {
		return err
	}
	if backends.Ontap == nil {
		return errors.UnsupportedConfigError("no ontap backend is configured")
	}

	vserver := igroupVserver
	if vserver == "" {
		vserver = backends.Ontap.SVM
	}

	ontapAPI, err := ontap.NewAPI(ctx, backends.Ontap, vserver, "")
	if err != nil {
		return err
	}

	igroup, err := ontapAPI.IgroupGetByName(ctx, name)
	if err != nil {
		return err
	}
	if igroup == nil {
		return errors.NotFoundError("igroup %s was not found", name)
	}

	writeIgroup(igroup)
	return nil
}

func writeIgroup(igroup *api.Igroup) {
	switch OutputFormat {
	case FormatJSON:
		WriteJSON(igroup)
	case FormatYAML:
		WriteYAML(igroup)
	default:
		writeIgroupTable(igroup)
	}
}

func writeIgroupTable(igroup *api.Igroup) {

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Name", "Vserver", "Type", "OS Type", "Initiators"})

	table.Append([]string{
		igroup.Name,
		igroup.Vserver,
		igroup.InitiatorGroupType,
		igroup.OsType,
		strings.Join(igroup.Initiators, ", "),
	})

	table.Render()
}
