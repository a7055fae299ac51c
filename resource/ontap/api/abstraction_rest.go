// Copyright 2026 NetApp, Inc. All Rights Reserved.

package api

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"

	. "github.com/netapp/converge/logging"
	"github.com/netapp/converge/utils/errors"
)

// //////////////////////////////////////////////////////////////////////////
// REST integration layer
// //////////////////////////////////////////////////////////////////////////

type OntapAPIREST struct {
	API *RestClient
}

var _ OntapAPI = OntapAPIREST{}

func NewOntapAPIREST(restClient *RestClient) (OntapAPIREST, error) {
	result := OntapAPIREST{
		API: restClient,
	}
	return result, nil
}

func (d OntapAPIREST) IsREST() bool {
	return true
}

// APIVersion returns the ONTAP version of the target system.
func (d OntapAPIREST) APIVersion(ctx context.Context) (string, error) {
	version, err := d.API.ClusterVersion(ctx)
	if err != nil {
		return "", err
	}
	return version.String(), nil
}

// IgroupGetByName returns the named igroup in the client's SVM, or nil if no
// igroup has that exact name.
func (d OntapAPIREST) IgroupGetByName(ctx context.Context, name string) (*Igroup, error) {

	if d.API.config.DebugTraceFlags["method"] {
		fields := log.Fields{
			"Method": "IgroupGetByName",
			"Type":   "OntapAPIREST",
			"name":   name,
		}
		Logc(ctx).WithFields(fields).Debug(">>>> IgroupGetByName")
		defer Logc(ctx).WithFields(fields).Debug("<<<< IgroupGetByName")
	}

	record, err := d.API.IgroupGetByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("error getting igroup %v: %v", name, err)
	}
	if record == nil {
		return nil, nil
	}
	return igroupFromRestRecord(record), nil
}

// igroupFromRestRecord maps a REST igroup record onto an Igroup. The REST
// record carries no portset binding, so BindPortset is always empty here.
func igroupFromRestRecord(record *igroupRecord) *Igroup {

	igroup := &Igroup{
		Name:               record.Name,
		UUID:               record.UUID,
		OsType:             record.OsType,
		InitiatorGroupType: record.Protocol,
	}
	if record.SVM != nil {
		igroup.Vserver = record.SVM.Name
	}
	for _, initiator := range record.Initiators {
		igroup.Initiators = append(igroup.Initiators, initiator.Name)
	}
	return igroup
}

func (d OntapAPIREST) IgroupCreate(ctx context.Context, spec IgroupCreateSpec) error {

	if d.API.config.DebugTraceFlags["method"] {
		fields := log.Fields{
			"Method": "IgroupCreate",
			"Type":   "OntapAPIREST",
			"spec":   spec,
		}
		Logc(ctx).WithFields(fields).Debug(">>>> IgroupCreate")
		defer Logc(ctx).WithFields(fields).Debug("<<<< IgroupCreate")
	}

	if err := d.API.IgroupCreate(ctx, spec); err != nil {
		if restErr, ok := err.(RestError); ok && restErr.Code() == DUPLICATE_ENTRY {
			Logc(ctx).WithField("igroup", spec.Name).Debug("Igroup already exists.")
			return nil
		}
		return fmt.Errorf("error creating igroup %v: %v", spec.Name, err)
	}
	return nil
}

// IgroupDestroy deletes the igroup by UUID. A missing igroup is not an error;
// with force set, an igroup mapped to one or more LUNs is deleted anyway.
func (d OntapAPIREST) IgroupDestroy(ctx context.Context, igroup *Igroup, force bool) error {

	if d.API.config.DebugTraceFlags["method"] {
		fields := log.Fields{
			"Method": "IgroupDestroy",
			"Type":   "OntapAPIREST",
			"igroup": igroup.Name,
			"force":  force,
		}
		Logc(ctx).WithFields(fields).Debug(">>>> IgroupDestroy")
		defer Logc(ctx).WithFields(fields).Debug("<<<< IgroupDestroy")
	}

	if err := d.API.IgroupDelete(ctx, igroup.UUID, force); err != nil {
		if restErr, ok := err.(RestError); ok && restErr.IsNotFound() {
			Logc(ctx).WithField("igroup", igroup.Name).Debug("No such initiator group (igroup).")
			return nil
		}
		return fmt.Errorf("error deleting igroup %v: %v", igroup.Name, err)
	}
	return nil
}

// IgroupRename is not a REST primitive; the name changes through IgroupModify.
func (d OntapAPIREST) IgroupRename(ctx context.Context, igroup *Igroup, newName string) error {
	return errors.New("igroup rename is handled through modify in REST")
}

func (d OntapAPIREST) IgroupAddInitiators(ctx context.Context, igroup *Igroup, initiators []string) error {

	if d.API.config.DebugTraceFlags["method"] {
		fields := log.Fields{
			"Method":     "IgroupAddInitiators",
			"Type":       "OntapAPIREST",
			"igroup":     igroup.Name,
			"initiators": initiators,
		}
		Logc(ctx).WithFields(fields).Debug(">>>> IgroupAddInitiators")
		defer Logc(ctx).WithFields(fields).Debug("<<<< IgroupAddInitiators")
	}

	if err := d.API.IgroupAddInitiators(ctx, igroup.UUID, initiators); err != nil {
		if restErr, ok := err.(RestError); ok && restErr.Code() == DUPLICATE_ENTRY {
			Logc(ctx).WithField("igroup", igroup.Name).Debug("Initiators already in igroup.")
			return nil
		}
		return fmt.Errorf("error adding initiators to igroup %v: %v", igroup.Name, err)
	}
	return nil
}

func (d OntapAPIREST) IgroupRemoveInitiators(ctx context.Context, igroup *Igroup, initiators []string) error {

	if d.API.config.DebugTraceFlags["method"] {
		fields := log.Fields{
			"Method":     "IgroupRemoveInitiators",
			"Type":       "OntapAPIREST",
			"igroup":     igroup.Name,
			"initiators": initiators,
		}
		Logc(ctx).WithFields(fields).Debug(">>>> IgroupRemoveInitiators")
		defer Logc(ctx).WithFields(fields).Debug("<<<< IgroupRemoveInitiators")
	}

	for _, initiator := range initiators {
		if err := d.API.IgroupRemoveInitiator(ctx, igroup.UUID, initiator); err != nil {
			if restErr, ok := err.(RestError); ok && restErr.IsNotFound() {
				Logc(ctx).WithFields(log.Fields{
					"initiator": initiator,
					"igroup":    igroup.Name,
				}).Debug("Initiator not in igroup.")
				continue
			}
			return fmt.Errorf("error removing initiator %v from igroup %v: %v", initiator, igroup.Name, err)
		}
	}
	return nil
}

// restModifyOptions maps task option names onto REST PATCH body keys.
var restModifyOptions = map[string]string{
	"name":         "name",
	"os_type":      "os_type",
	"bind_portset": "portset",
}

// IgroupModify PATCHes the igroup with the supplied attribute changes. The
// patch is keyed by task option name; options REST cannot modify yield an
// unsupported error naming the option.
func (d OntapAPIREST) IgroupModify(ctx context.Context, igroup *Igroup, patch map[string]string) error {

	if d.API.config.DebugTraceFlags["method"] {
		fields := log.Fields{
			"Method": "IgroupModify",
			"Type":   "OntapAPIREST",
			"igroup": igroup.Name,
			"patch":  patch,
		}
		Logc(ctx).WithFields(fields).Debug(">>>> IgroupModify")
		defer Logc(ctx).WithFields(fields).Debug("<<<< IgroupModify")
	}

	if len(patch) == 0 {
		return nil
	}

	body := make(map[string]string, len(patch))
	for option, value := range patch {
		restKey, ok := restModifyOptions[option]
		if !ok {
			return errors.UnsupportedError("modifying %s is not supported in REST", option)
		}
		body[restKey] = value
	}

	if err := d.API.IgroupModify(ctx, igroup.UUID, body); err != nil {
		return fmt.Errorf("error modifying igroup %v: %v", igroup.Name, err)
	}
	return nil
}
