// Copyright 2026 NetApp, Inc. All Rights Reserved.

package api

import (
	"context"
	"fmt"
	"sort"
	"strings"

	log "github.com/sirupsen/logrus"

	. "github.com/netapp/converge/logging"
	"github.com/netapp/converge/resource/ontap/api/azgo"
	"github.com/netapp/converge/utils/errors"
)

// //////////////////////////////////////////////////////////////////////////
// ZAPI integration layer
// //////////////////////////////////////////////////////////////////////////

type OntapAPIZAPI struct {
	API *Client
}

var _ OntapAPI = OntapAPIZAPI{}

func NewOntapAPIZAPI(zapiClient *Client) (OntapAPIZAPI, error) {
	result := OntapAPIZAPI{
		API: zapiClient,
	}
	return result, nil
}

func (d OntapAPIZAPI) IsREST() bool {
	return false
}

// APIVersion returns the ONTAP version of the target system.
func (d OntapAPIZAPI) APIVersion(ctx context.Context) (string, error) {
	return d.API.SystemGetOntapVersion()
}

// IgroupGetByName returns the named igroup in the client's SVM, or nil if no
// igroup has that exact name.
func (d OntapAPIZAPI) IgroupGetByName(ctx context.Context, name string) (*Igroup, error) {

	if d.API.config.DebugTraceFlags["method"] {
		fields := log.Fields{
			"Method": "IgroupGetByName",
			"Type":   "OntapAPIZAPI",
			"name":   name,
		}
		Logc(ctx).WithFields(fields).Debug(">>>> IgroupGetByName")
		defer Logc(ctx).WithFields(fields).Debug("<<<< IgroupGetByName")
	}

	infos, err := d.API.IgroupList(name)
	if err != nil {
		return nil, fmt.Errorf("error getting igroup %v: %v", name, err)
	}

	for _, info := range infos {
		if info.InitiatorGroupNamePtr != nil && info.InitiatorGroupName() == name {
			return igroupFromZapiInfo(info), nil
		}
	}
	return nil, nil
}

// igroupFromZapiInfo maps a ZAPI initiator-group-info record onto an Igroup.
// ZAPI reports the portset binding, so BindPortset is populated when bound.
func igroupFromZapiInfo(info azgo.InitiatorGroupInfoType) *Igroup {

	igroup := &Igroup{}
	if info.InitiatorGroupNamePtr != nil {
		igroup.Name = info.InitiatorGroupName()
	}
	if info.InitiatorGroupUuidPtr != nil {
		igroup.UUID = info.InitiatorGroupUuid()
	}
	if info.VserverPtr != nil {
		igroup.Vserver = info.Vserver()
	}
	if info.InitiatorGroupOsTypePtr != nil {
		igroup.OsType = info.InitiatorGroupOsType()
	}
	if info.InitiatorGroupTypePtr != nil {
		igroup.InitiatorGroupType = info.InitiatorGroupType()
	}
	if info.InitiatorGroupPortsetNamePtr != nil {
		igroup.BindPortset = info.InitiatorGroupPortsetName()
	}
	if info.InitiatorsPtr != nil {
		for _, initiator := range info.InitiatorsPtr.InitiatorInfo() {
			if initiator.InitiatorNamePtr != nil {
				igroup.Initiators = append(igroup.Initiators, initiator.InitiatorName())
			}
		}
	}
	return igroup
}

func (d OntapAPIZAPI) IgroupCreate(ctx context.Context, spec IgroupCreateSpec) error {

	if d.API.config.DebugTraceFlags["method"] {
		fields := log.Fields{
			"Method": "IgroupCreate",
			"Type":   "OntapAPIZAPI",
			"spec":   spec,
		}
		Logc(ctx).WithFields(fields).Debug(">>>> IgroupCreate")
		defer Logc(ctx).WithFields(fields).Debug("<<<< IgroupCreate")
	}

	response, err := d.API.IgroupCreate(spec.Name, spec.InitiatorGroupType, spec.OsType, spec.BindPortset)
	err = GetError(response, err)
	zerr, zerrOK := err.(ZapiError)
	if zerrOK && zerr.Code() == azgo.EVDISK_ERROR_INITGROUP_EXISTS {
		Logc(ctx).WithField("igroup", spec.Name).Debug("Igroup already exists.")
	} else if err != nil {
		return fmt.Errorf("error creating igroup %v: %v", spec.Name, err)
	}

	// igroup-create takes no initiator list, so population is a second step.
	for _, initiator := range spec.Initiators {
		if err = d.igroupAddInitiator(ctx, spec.Name, initiator); err != nil {
			return err
		}
	}
	return nil
}

// IgroupDestroy deletes the igroup by name. A missing igroup is not an error;
// an igroup still mapped to a LUN is, unless force is set.
func (d OntapAPIZAPI) IgroupDestroy(ctx context.Context, igroup *Igroup, force bool) error {

	if d.API.config.DebugTraceFlags["method"] {
		fields := log.Fields{
			"Method": "IgroupDestroy",
			"Type":   "OntapAPIZAPI",
			"igroup": igroup.Name,
			"force":  force,
		}
		Logc(ctx).WithFields(fields).Debug(">>>> IgroupDestroy")
		defer Logc(ctx).WithFields(fields).Debug("<<<< IgroupDestroy")
	}

	response, err := d.API.IgroupDestroy(igroup.Name, force)
	err = GetError(response, err)
	zerr, zerrOK := err.(ZapiError)
	if zerrOK && zerr.Code() == azgo.EVDISK_ERROR_NO_SUCH_INITGROUP {
		Logc(ctx).WithField("igroup", igroup.Name).Debug("No such initiator group (igroup).")
	} else if zerrOK && zerr.Code() == azgo.EVDISK_ERROR_INITGROUP_MAPS_EXIST {
		return fmt.Errorf("igroup %v is mapped to one or more LUNs; %v", igroup.Name, err)
	} else if err != nil {
		return fmt.Errorf("error deleting igroup %v: %v", igroup.Name, err)
	}
	return nil
}

func (d OntapAPIZAPI) IgroupRename(ctx context.Context, igroup *Igroup, newName string) error {

	if d.API.config.DebugTraceFlags["method"] {
		fields := log.Fields{
			"Method":  "IgroupRename",
			"Type":    "OntapAPIZAPI",
			"igroup":  igroup.Name,
			"newName": newName,
		}
		Logc(ctx).WithFields(fields).Debug(">>>> IgroupRename")
		defer Logc(ctx).WithFields(fields).Debug("<<<< IgroupRename")
	}

	response, err := d.API.IgroupRename(igroup.Name, newName)
	if err = GetError(response, err); err != nil {
		return fmt.Errorf("error renaming igroup %v to %v: %v", igroup.Name, newName, err)
	}
	return nil
}

func (d OntapAPIZAPI) IgroupAddInitiators(ctx context.Context, igroup *Igroup, initiators []string) error {

	if d.API.config.DebugTraceFlags["method"] {
		fields := log.Fields{
			"Method":     "IgroupAddInitiators",
			"Type":       "OntapAPIZAPI",
			"igroup":     igroup.Name,
			"initiators": initiators,
		}
		Logc(ctx).WithFields(fields).Debug(">>>> IgroupAddInitiators")
		defer Logc(ctx).WithFields(fields).Debug("<<<< IgroupAddInitiators")
	}

	for _, initiator := range initiators {
		if err := d.igroupAddInitiator(ctx, igroup.Name, initiator); err != nil {
			return err
		}
	}
	return nil
}

// igroupAddInitiator adds one initiator to the named igroup, treating an
// initiator already in the igroup as success.
func (d OntapAPIZAPI) igroupAddInitiator(ctx context.Context, igroupName, initiator string) error {

	response, err := d.API.IgroupAdd(igroupName, initiator)
	err = GetError(response, err)
	zerr, zerrOK := err.(ZapiError)
	if zerrOK && zerr.Code() == azgo.EVDISK_ERROR_INITGROUP_HAS_NODE {
		Logc(ctx).WithFields(log.Fields{
			"initiator": initiator,
			"igroup":    igroupName,
		}).Debug("Initiator already in igroup.")
	} else if err != nil {
		return fmt.Errorf("error adding initiator %v to igroup %v: %v", initiator, igroupName, err)
	}
	return nil
}

func (d OntapAPIZAPI) IgroupRemoveInitiators(ctx context.Context, igroup *Igroup, initiators []string) error {

	if d.API.config.DebugTraceFlags["method"] {
		fields := log.Fields{
			"Method":     "IgroupRemoveInitiators",
			"Type":       "OntapAPIZAPI",
			"igroup":     igroup.Name,
			"initiators": initiators,
		}
		Logc(ctx).WithFields(fields).Debug(">>>> IgroupRemoveInitiators")
		defer Logc(ctx).WithFields(fields).Debug("<<<< IgroupRemoveInitiators")
	}

	for _, initiator := range initiators {
		response, err := d.API.IgroupRemove(igroup.Name, initiator, false)
		err = GetError(response, err)
		zerr, zerrOK := err.(ZapiError)
		if zerrOK && zerr.Code() == azgo.EVDISK_ERROR_NODE_NOT_IN_INITGROUP {
			Logc(ctx).WithFields(log.Fields{
				"initiator": initiator,
				"igroup":    igroup.Name,
			}).Debug("Initiator not in igroup.")
		} else if err != nil {
			return fmt.Errorf("error removing initiator %v from igroup %v: %v", initiator, igroup.Name, err)
		}
	}
	return nil
}

// IgroupModify rejects attribute changes. ZAPI has no igroup modify primitive;
// initiators change through add/remove and the name changes through rename.
func (d OntapAPIZAPI) IgroupModify(ctx context.Context, igroup *Igroup, patch map[string]string) error {

	if len(patch) == 0 {
		return nil
	}

	options := make([]string, 0, len(patch))
	for option := range patch {
		options = append(options, option)
	}
	sort.Strings(options)

	return errors.UnsupportedError("modifying %s is not supported in ZAPI", strings.Join(options, ", "))
}
