// Copyright 2026 NetApp, Inc. All Rights Reserved.

package api

import (
	"fmt"
	"reflect"
	"sync"

	log "github.com/sirupsen/logrus"

	"github.com/netapp/converge/resource/ontap/api/azgo"
	"github.com/netapp/converge/utils/errors"
)

const defaultZapiRecords = 100

// ClientConfig holds the configuration data for Client objects
type ClientConfig struct {
	ManagementLIF   string
	SVM             string
	Username        string
	Password        string
	Secure          bool
	DebugTraceFlags map[string]bool
}

// Client is the object to use for interacting with ONTAP controllers via ZAPI
type Client struct {
	config ClientConfig
	zr     *azgo.ZapiRunner
	m      *sync.Mutex
}

// NewClient is a factory method for creating a new instance
func NewClient(config ClientConfig) *Client {
	d := &Client{
		config: config,
		zr: &azgo.ZapiRunner{
			ManagementLIF:   config.ManagementLIF,
			SVM:             config.SVM,
			Username:        config.Username,
			Password:        config.Password,
			Secure:          config.Secure,
			DebugTraceFlags: config.DebugTraceFlags,
		},
		m: &sync.Mutex{},
	}
	return d
}

// ClientConfig returns the configuration used to build this client.
func (d Client) ClientConfig() ClientConfig {
	return d.config
}

// NewZapiError accepts the Response value from any AZGO call, extracts the status, reason, and errno values,
// and returns a ZapiError.  The interface passed in may either be a Response object, or the always-embedded
// Result object where the error info exists.
func NewZapiError(zapiResult interface{}) (err ZapiError) {

	defer func() {
		if r := recover(); r != nil {
			err = ZapiError{}
		}
	}()

	// A ZAPI Result struct works as-is, but a ZAPI Response struct must have its
	// embedded Result struct extracted via reflection.
	val := reflect.ValueOf(zapiResult)
	if testResult := val.FieldByName("Result"); testResult.IsValid() {
		zapiResult = testResult.Interface()
		val = reflect.ValueOf(zapiResult)
	}

	err = ZapiError{
		val.FieldByName("ResultStatusAttr").String(),
		val.FieldByName("ResultReasonAttr").String(),
		val.FieldByName("ResultErrnoAttr").String(),
	}

	return
}

// ZapiError encapsulates the status, reason, and errno values from a ZAPI invocation, and it provides helper methods for detecting
// common error conditions.
type ZapiError struct {
	status string
	reason string
	code   string
}

func (e ZapiError) IsPassed() bool {
	return e.status == "passed"
}
func (e ZapiError) Error() string {
	if e.IsPassed() {
		return "API status: passed"
	}
	return fmt.Sprintf("API status: %s, Reason: %s, Code: %s", e.status, e.reason, e.code)
}
func (e ZapiError) IsPrivilegeError() bool {
	return e.code == azgo.EAPIPRIVILEGE
}
func (e ZapiError) IsScopeError() bool {
	return e.code == azgo.EAPIPRIVILEGE || e.code == azgo.EAPINOTFOUND
}
func (e ZapiError) Reason() string {
	return e.reason
}
func (e ZapiError) Code() string {
	return e.code
}

// GetError accepts both an error and the Response value from an AZGO invocation.
// If error is non-nil, it is returned as is.  Otherwise, the Response value is
// probed for an error returned by ZAPI; if one is found, a ZapiError error object
// is returned.  If no failures are detected, the method returns nil.  The interface
// passed in may either be a Response object, or the always-embedded Result object
// where the error info exists.
func GetError(zapiResult interface{}, errorIn error) (errorOut error) {

	defer func() {
		if r := recover(); r != nil {
			log.Errorf("Panic in ontap#GetError. %v", zapiResult)
			errorOut = ZapiError{}
		}
	}()

	// A ZAPI Result struct works as-is, but a ZAPI Response struct must have its
	// embedded Result struct extracted via reflection.
	val := reflect.ValueOf(zapiResult)
	if testResult := val.FieldByName("Result"); testResult.IsValid() {
		zapiResult = testResult.Interface()
	}

	errorOut = nil

	if errorIn != nil {
		errorOut = errorIn
	} else if zerr := NewZapiError(zapiResult); !zerr.IsPassed() {
		errorOut = zerr
	}

	return
}

/////////////////////////////////////////////////////////////////////////////
// IGROUP operations BEGIN

// IgroupCreate creates the specified initiator group
// equivalent to filer::> igroup create docker -vserver iscsi_vs -protocol iscsi -ostype linux
func (d Client) IgroupCreate(initiatorGroupName, initiatorGroupType, osType, bindPortset string) (
	response azgo.IgroupCreateResponse, err error,
) {
	request := azgo.NewIgroupCreateRequest().
		SetInitiatorGroupName(initiatorGroupName)
	if initiatorGroupType != "" {
		request.SetInitiatorGroupType(initiatorGroupType)
	}
	if osType != "" {
		request.SetOsType(osType)
	}
	if bindPortset != "" {
		request.SetBindPortset(bindPortset)
	}
	response, err = request.ExecuteUsing(d.zr)
	return
}

// IgroupAdd adds an initiator to an initiator group
// equivalent to filer::> igroup add -vserver iscsi_vs -igroup docker -initiator iqn.1993-08.org.debian:01:9031309bbebd
func (d Client) IgroupAdd(initiatorGroupName, initiator string) (response azgo.IgroupAddResponse, err error) {
	response, err = azgo.NewIgroupAddRequest().
		SetInitiatorGroupName(initiatorGroupName).
		SetInitiator(initiator).
		ExecuteUsing(d.zr)
	return
}

// IgroupRemove removes an initiator from an initiator group
func (d Client) IgroupRemove(initiatorGroupName, initiator string, force bool) (response azgo.IgroupRemoveResponse, err error) {
	response, err = azgo.NewIgroupRemoveRequest().
		SetInitiatorGroupName(initiatorGroupName).
		SetInitiator(initiator).
		SetForce(force).
		ExecuteUsing(d.zr)
	return
}

// IgroupDestroy destroys an initiator group
func (d Client) IgroupDestroy(initiatorGroupName string, force bool) (response azgo.IgroupDestroyResponse, err error) {
	response, err = azgo.NewIgroupDestroyRequest().
		SetInitiatorGroupName(initiatorGroupName).
		SetForce(force).
		ExecuteUsing(d.zr)
	return
}

// IgroupRename changes the name of an initiator group
func (d Client) IgroupRename(initiatorGroupName, initiatorGroupNewName string) (response azgo.IgroupRenameResponse, err error) {
	response, err = azgo.NewIgroupRenameRequest().
		SetInitiatorGroupName(initiatorGroupName).
		SetInitiatorGroupNewName(initiatorGroupNewName).
		ExecuteUsing(d.zr)
	return
}

// IgroupList returns initiator groups in the client's SVM whose names match the
// supplied name; an empty name matches all igroups.
func (d Client) IgroupList(initiatorGroupName string) ([]azgo.InitiatorGroupInfoType, error) {

	info := azgo.NewInitiatorGroupInfoType().SetVserver(d.config.SVM)
	if initiatorGroupName != "" {
		info.SetInitiatorGroupName(initiatorGroupName)
	}
	query := azgo.NewIgroupGetIterRequestQuery().SetInitiatorGroupInfo(*info)

	request := azgo.NewIgroupGetIterRequest().
		SetMaxRecords(defaultZapiRecords).
		SetQuery(*query)

	records := make([]azgo.InitiatorGroupInfoType, 0)
	for {
		response, err := request.ExecuteUsing(d.zr)
		if err = GetError(response, err); err != nil {
			return nil, err
		}

		if response.Result.AttributesListPtr != nil {
			records = append(records, response.Result.AttributesListPtr.InitiatorGroupInfo()...)
		}

		if response.Result.NextTagPtr == nil || response.Result.NextTag() == "" {
			break
		}
		request.SetTag(response.Result.NextTag())
	}

	return records, nil
}

// IGROUP operations END
/////////////////////////////////////////////////////////////////////////////

/////////////////////////////////////////////////////////////////////////////
// MISC operations BEGIN

// SystemGetOntapVersion gets the ONTAP version using the credentials, and caches & returns the result.
func (d Client) SystemGetOntapVersion() (string, error) {

	if d.zr.OntapVersion == "" {
		result, err := azgo.NewSystemGetVersionRequest().ExecuteUsing(d.zr)
		if err = GetError(result, err); err != nil {
			return "", fmt.Errorf("could not read ONTAP version: %v", err)
		}

		if tuple := result.Result.VersionTuplePtr; tuple != nil {
			d.zr.OntapVersion = fmt.Sprintf("%d.%d.%d", tuple.Generation(), tuple.Major(), tuple.Minor())
		} else if result.Result.VersionPtr != nil {
			d.zr.OntapVersion = result.Result.Version()
		} else {
			return "", errors.New("missing version in system-get-version response")
		}
	}

	return d.zr.OntapVersion, nil
}

// MISC operations END
/////////////////////////////////////////////////////////////////////////////
