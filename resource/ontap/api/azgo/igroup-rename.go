// Copyright 2026 NetApp, Inc. All Rights Reserved.

package azgo

import (
	"encoding/xml"
	"reflect"
)

// IgroupRenameRequest is a structure to represent a igroup-rename ZAPI request object
type IgroupRenameRequest struct {
	XMLName xml.Name `xml:"igroup-rename"`

	InitiatorGroupNamePtr    *string `xml:"initiator-group-name"`
	InitiatorGroupNewNamePtr *string `xml:"initiator-group-new-name"`
}

// ToXML converts this object into an xml string representation
func (o *IgroupRenameRequest) ToXML() (string, error) {
	output, err := xml.MarshalIndent(o, " ", "    ")
	return string(output), err
}

// NewIgroupRenameRequest is a factory method for creating new instances of IgroupRenameRequest objects
func NewIgroupRenameRequest() *IgroupRenameRequest { return &IgroupRenameRequest{} }

// ExecuteUsing converts this object to a ZAPI XML representation and uses the supplied ZapiRunner to send to a filer
func (o *IgroupRenameRequest) ExecuteUsing(zr *ZapiRunner) (IgroupRenameResponse, error) {
	return invoke[IgroupRenameResponse](zr, o, "IgroupRenameRequest")
}

// String returns a string representation of this object's fields and implements the Stringer interface
func (o IgroupRenameRequest) String() string {
	return ToString(reflect.ValueOf(o))
}

// InitiatorGroupName is a 'getter' method
func (o *IgroupRenameRequest) InitiatorGroupName() string {
	r := *o.InitiatorGroupNamePtr
	return r
}

// SetInitiatorGroupName is a fluent style 'setter' method that can be chained
func (o *IgroupRenameRequest) SetInitiatorGroupName(newValue string) *IgroupRenameRequest {
	o.InitiatorGroupNamePtr = &newValue
	return o
}

// InitiatorGroupNewName is a 'getter' method
func (o *IgroupRenameRequest) InitiatorGroupNewName() string {
	r := *o.InitiatorGroupNewNamePtr
	return r
}

// SetInitiatorGroupNewName is a fluent style 'setter' method that can be chained
func (o *IgroupRenameRequest) SetInitiatorGroupNewName(newValue string) *IgroupRenameRequest {
	o.InitiatorGroupNewNamePtr = &newValue
	return o
}

// IgroupRenameResponse is a structure to represent a igroup-rename ZAPI response object
type IgroupRenameResponse struct {
	XMLName xml.Name `xml:"netapp"`

	ResponseVersion string `xml:"version,attr"`
	ResponseXmlns   string `xml:"xmlns,attr"`

	Result IgroupRenameResponseResult `xml:"results"`
}

// String returns a string representation of this object's fields and implements the Stringer interface
func (o IgroupRenameResponse) String() string {
	return ToString(reflect.ValueOf(o))
}

// IgroupRenameResponseResult is a structure to represent a igroup-rename ZAPI object's result
type IgroupRenameResponseResult struct {
	XMLName xml.Name `xml:"results"`

	ResultStatusAttr string `xml:"status,attr"`
	ResultReasonAttr string `xml:"reason,attr"`
	ResultErrnoAttr  string `xml:"errno,attr"`
}

// NewIgroupRenameResponse is a factory method for creating new instances of IgroupRenameResponse objects
func NewIgroupRenameResponse() *IgroupRenameResponse { return &IgroupRenameResponse{} }

// String returns a string representation of this object's fields and implements the Stringer interface
func (o IgroupRenameResponseResult) String() string {
	return ToString(reflect.ValueOf(o))
}
