// Copyright 2026 NetApp, Inc. All Rights Reserved.

// Package ontap converges ONTAP SAN resources.  The igroup module reconciles
// initiator groups over either the ZAPI or the REST interface, choosing per
// task according to the backend's use_rest setting and the cluster version.
package ontap

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"go.uber.org/multierr"

	"github.com/netapp/converge/config"
	. "github.com/netapp/converge/logging"
	"github.com/netapp/converge/reconcile"
	"github.com/netapp/converge/resource"
	"github.com/netapp/converge/resource/ontap/api"
	"github.com/netapp/converge/utils"
	"github.com/netapp/converge/utils/errors"
)

const KindIgroup = "ontap_igroup"

var validIgroupTypes = []string{"fcp", "iscsi", "mixed"}

// igroupAliases maps the alternate task option names onto the canonical ones.
var igroupAliases = map[string]string{
	"ostype":                    "os_type",
	"protocol":                  "initiator_group_type",
	"initiator":                 "initiators",
	"allow_delete_while_mapped": "force_remove_initiator",
}

func init() {
	resource.Register(KindIgroup, NewIgroupModule)
}

// IgroupParams are the task options of the ontap_igroup kind.  Initiators is a
// pointer so that an omitted list (leave alone) is distinct from an empty one
// (remove all members).
type IgroupParams struct {
	Name                 string       `json:"name"`
	FromName             string       `json:"from_name,omitempty"`
	State                config.State `json:"state,omitempty"`
	Vserver              string       `json:"vserver,omitempty"`
	OsType               string       `json:"os_type,omitempty"`
	InitiatorGroupType   string       `json:"initiator_group_type,omitempty"`
	Initiators           *[]string    `json:"initiators,omitempty"`
	BindPortset          string       `json:"bind_portset,omitempty"`
	ForceRemoveInitiator bool         `json:"force_remove_initiator,omitempty"`
}

// IgroupModule reconciles one initiator group.
type IgroupModule struct {
	params IgroupParams
	api    api.OntapAPI

	// current is the igroup the apply operates on: the igroup named by the
	// task, or the from_name igroup when the plan is a rename.
	current *api.Igroup
}

// NewIgroupModule builds an igroup module for one task, selecting the ONTAP
// interface to use before any state is read.
func NewIgroupModule(ctx context.Context, spec resource.TaskSpec, backends *resource.Backends) (resource.Module, error) {

	if backends == nil || backends.Ontap == nil {
		return nil, errors.UnsupportedConfigError("task of kind %s requires an ontap backend", KindIgroup)
	}

	params := IgroupParams{}
	if err := spec.Canonicalize(igroupAliases).Decode(&params); err != nil {
		return nil, fmt.Errorf("could not decode %s task: %v", KindIgroup, err)
	}
	if params.Vserver == "" {
		params.Vserver = backends.Ontap.SVM
	}

	ontapAPI, err := NewAPI(ctx, backends.Ontap, params.Vserver, params.BindPortset)
	if err != nil {
		return nil, err
	}

	return &IgroupModule{params: params, api: ontapAPI}, nil
}

// NewAPI returns the ONTAP interface to use for the backend, honoring use_rest.
// Under "auto" the REST interface is used when the cluster supports it, falling
// back to ZAPI when it does not or when bindPortset needs a newer ONTAP than
// the cluster runs; under "always" those fallbacks are errors instead.
func NewAPI(
	ctx context.Context, backend *resource.OntapBackend, vserver, bindPortset string,
) (api.OntapAPI, error) {

	clientConfig := api.ClientConfig{
		ManagementLIF:   backend.ManagementLIF,
		SVM:             vserver,
		Username:        backend.Username,
		Password:        backend.Password,
		Secure:          backend.Secure,
		DebugTraceFlags: backend.DebugTraceFlags,
	}

	useREST := backend.UseREST
	if useREST == "" {
		useREST = resource.UseRESTAuto
	}

	if useREST == resource.UseRESTNever {
		return api.NewOntapAPIZAPI(api.NewClient(clientConfig))
	}

	restClient := api.NewRestClient(clientConfig)

	if !restClient.SupportsFeature(ctx, api.MinimumRESTSupport) {
		if useREST == resource.UseRESTAlways {
			return nil, errors.UnsupportedError(
				"Error: use_rest is set to always, but REST is not supported on this ONTAP system")
		}
		Logc(ctx).Debug("Falling back to ZAPI; REST requires ONTAP 9.6 or later.")
		return api.NewOntapAPIZAPI(api.NewClient(clientConfig))
	}

	if bindPortset != "" && !restClient.SupportsFeature(ctx, api.IgroupPortsetBinding) {
		version, _ := restClient.ClusterVersion(ctx)
		if useREST == resource.UseRESTAlways {
			return nil, errors.UnsupportedError(
				"Error: using bind_portset requires ONTAP 9.9.1 or later and REST must be supported: "+
					"ONTAP version is %s", version)
		}
		Logc(ctx).WithField("ontapVersion", version).Warning(
			"Falling back to ZAPI; bind_portset requires ONTAP 9.9.1 or later over REST.")
		return api.NewOntapAPIZAPI(api.NewClient(clientConfig))
	}

	return api.NewOntapAPIREST(restClient)
}

func (m *IgroupModule) Kind() string { return KindIgroup }
func (m *IgroupModule) Name() string { return m.params.Name }

func (m *IgroupModule) Validate(_ context.Context) error {

	var err error
	if m.params.Name == "" {
		err = multierr.Append(err, fmt.Errorf("%s task requires name", KindIgroup))
	}
	if m.params.Vserver == "" {
		err = multierr.Append(err, fmt.Errorf("%s task requires vserver", KindIgroup))
	}
	if m.params.State != "" && !config.IsValidState(m.params.State) {
		err = multierr.Append(err, fmt.Errorf("invalid state '%s'; must be one of %v",
			m.params.State, config.GetValidStateNames()))
	}
	if m.params.InitiatorGroupType != "" &&
		!utils.SliceContainsString(validIgroupTypes, strings.ToLower(m.params.InitiatorGroupType)) {
		err = multierr.Append(err, fmt.Errorf("invalid initiator_group_type '%s'; must be one of %v",
			m.params.InitiatorGroupType, validIgroupTypes))
	}
	return err
}

func (m *IgroupModule) Plan(ctx context.Context) (*reconcile.Plan, error) {

	tracker := &reconcile.Tracker{}

	observed, err := m.api.IgroupGetByName(ctx, m.params.Name)
	if err != nil {
		return nil, err
	}
	m.current = observed

	state := m.params.State
	if state == "" {
		state = config.StateDefault
	}

	cdAction := tracker.CDAction(m.igroupAttributes(observed), state)
	rename := false

	if cdAction == reconcile.ActionCreate && m.params.FromName != "" {

		source, err := m.api.IgroupGetByName(ctx, m.params.FromName)
		if err != nil {
			return nil, err
		}

		rename, err = tracker.RenameAction(m.igroupAttributes(source), m.igroupAttributes(observed))
		if err != nil {
			return nil, errors.NotFoundError("Error: igroup with from_name=%s not found", m.params.FromName)
		}
		if rename {
			m.current = source
			cdAction = reconcile.ActionNone
		}
	}

	var modified map[string]reconcile.FieldDiff
	if cdAction == reconcile.ActionNone && state == config.StatePresent && m.current != nil {
		modified = tracker.ModifiedAttributes(m.igroupAttributes(m.current), m.desiredAttributes())
		if err = m.validateModify(modified); err != nil {
			return nil, err
		}
	}

	if cdAction == reconcile.ActionCreate && m.api.IsREST() && m.params.OsType == "" {
		return nil, errors.InvalidInputError(
			"Error: os_type is a required parameter when creating an igroup with REST")
	}

	action := reconcile.ResolveAction(cdAction, rename, modified)

	Logc(ctx).WithFields(LogFields{
		"igroup":  m.params.Name,
		"action":  action,
		"changed": tracker.Changed(),
	}).Debug("Planned igroup.")

	return &reconcile.Plan{
		Action:   action,
		Rename:   rename,
		Modified: modified,
	}, nil
}

func (m *IgroupModule) Apply(ctx context.Context, plan *reconcile.Plan) (*resource.Result, error) {

	result := &resource.Result{
		Kind:     KindIgroup,
		Name:     m.params.Name,
		Action:   plan.Action,
		Changed:  plan.Changed(),
		Modified: plan.Modified,
	}

	switch plan.Action {

	case reconcile.ActionCreate:
		spec := api.IgroupCreateSpec{
			Name:               m.params.Name,
			OsType:             m.params.OsType,
			InitiatorGroupType: m.params.InitiatorGroupType,
			BindPortset:        m.params.BindPortset,
			Initiators:         m.desiredInitiators(),
		}
		if err := m.api.IgroupCreate(ctx, spec); err != nil {
			return nil, err
		}

	case reconcile.ActionDelete:
		if err := m.api.IgroupDestroy(ctx, m.current, m.params.ForceRemoveInitiator); err != nil {
			return nil, err
		}

	case reconcile.ActionModify:
		if err := m.applyModify(ctx, plan); err != nil {
			return nil, err
		}
	}

	return result, nil
}

// applyModify renames first so the modify set always lands on an igroup with
// the task's name, then converges the initiator membership, then patches any
// remaining attributes.
func (m *IgroupModule) applyModify(ctx context.Context, plan *reconcile.Plan) error {

	if plan.Rename {
		if m.api.IsREST() {
			if err := m.api.IgroupModify(ctx, m.current, map[string]string{"name": m.params.Name}); err != nil {
				return fmt.Errorf("Error renaming igroup %s: %v", m.current.Name, err)
			}
		} else {
			if err := m.api.IgroupRename(ctx, m.current, m.params.Name); err != nil {
				return err
			}
		}
	}

	if _, ok := plan.Modified["initiators"]; ok {

		desired := m.desiredInitiators()
		observed := m.current.Initiators

		// Remove the extras before adding what is missing, touching only the
		// initiators that actually change.
		if remove := initiatorDifference(observed, desired); len(remove) > 0 {
			if err := m.api.IgroupRemoveInitiators(ctx, m.current, remove); err != nil {
				return err
			}
		}
		if add := initiatorDifference(desired, observed); len(add) > 0 {
			if err := m.api.IgroupAddInitiators(ctx, m.current, add); err != nil {
				return err
			}
		}
	}

	patch := make(map[string]string)
	for option, diff := range plan.Modified {
		if option == "initiators" {
			continue
		}
		patch[option] = fmt.Sprintf("%v", diff.New)
	}
	if len(patch) > 0 {
		if err := m.api.IgroupModify(ctx, m.current, patch); err != nil {
			return err
		}
	}

	return nil
}

// igroupAttributes maps a backend record onto a comparable attribute record.
// The portset binding only appears over ZAPI; the REST igroup record does not
// report it, so portset drift is undetectable there.
func (m *IgroupModule) igroupAttributes(igroup *api.Igroup) reconcile.Attributes {

	if igroup == nil {
		return nil
	}

	initiators := igroup.Initiators
	if initiators == nil {
		initiators = []string{}
	}

	attributes := reconcile.Attributes{
		"os_type":              igroup.OsType,
		"initiator_group_type": igroup.InitiatorGroupType,
		"initiators":           initiators,
	}
	if !m.api.IsREST() {
		attributes["bind_portset"] = igroup.BindPortset
	}
	return attributes
}

// desiredAttributes returns only the attributes the task supplied; omitted
// options never produce a diff.
func (m *IgroupModule) desiredAttributes() reconcile.Attributes {

	desired := reconcile.Attributes{}
	if m.params.OsType != "" {
		desired["os_type"] = m.params.OsType
	}
	if m.params.InitiatorGroupType != "" {
		desired["initiator_group_type"] = m.params.InitiatorGroupType
	}
	if m.params.Initiators != nil {
		desired["initiators"] = m.desiredInitiators()
	}
	if m.params.BindPortset != "" {
		desired["bind_portset"] = m.params.BindPortset
	}
	return desired
}

func (m *IgroupModule) desiredInitiators() []string {
	if m.params.Initiators == nil {
		return nil
	}
	sanitized := make([]string, 0, len(*m.params.Initiators))
	for _, initiator := range *m.params.Initiators {
		sanitized = append(sanitized, SanitizeWWN(initiator))
	}
	return sanitized
}

// validateModify rejects attribute changes the selected interface cannot make,
// before anything has been applied.  The initiator list is modifiable on both
// interfaces; os_type and the name only over REST; the igroup type never.
func (m *IgroupModule) validateModify(modified map[string]reconcile.FieldDiff) error {

	for option := range modified {
		switch option {
		case "initiators":
		case "os_type":
			if !m.api.IsREST() {
				return errors.UnsupportedError("Error: modifying os_type is not supported in ZAPI")
			}
		case "bind_portset":
			return errors.UnsupportedError(
				"Error: modifying bind_portset is not supported in ZAPI; changing a portset binding requires REST")
		default:
			interfaceName := "ZAPI"
			if m.api.IsREST() {
				interfaceName = "REST"
			}
			return errors.UnsupportedError("Error: modifying %s is not supported in %s", option, interfaceName)
		}
	}
	return nil
}

// wwnRegex matches FC WWN initiators, bare or colon-separated.
var wwnRegex = regexp.MustCompile(`^(?:[0-9a-fA-F]{16}|[0-9a-fA-F]{2}(?::[0-9a-fA-F]{2}){7})$`)

// SanitizeWWN lower-cases WWN-form initiator names, which is how ONTAP stores
// them.  iqn. and eui. names pass through unchanged.
func SanitizeWWN(initiator string) string {
	initiator = strings.TrimSpace(initiator)
	if wwnRegex.MatchString(initiator) {
		return strings.ToLower(initiator)
	}
	return initiator
}

// initiatorDifference returns the members of a missing from b, comparing in
// sanitized, case-folded form.
func initiatorDifference(a, b []string) []string {

	present := make(map[string]bool, len(b))
	for _, initiator := range b {
		present[strings.ToLower(SanitizeWWN(initiator))] = true
	}

	var missing []string
	for _, initiator := range a {
		if !present[strings.ToLower(SanitizeWWN(initiator))] {
			missing = append(missing, initiator)
		}
	}
	return missing
}
