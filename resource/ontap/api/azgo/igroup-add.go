// Copyright 2026 NetApp, Inc. All Rights Reserved.

package azgo

import (
	"encoding/xml"
	"reflect"
)

// IgroupAddRequest is a structure to represent a igroup-add ZAPI request object
type IgroupAddRequest struct {
	XMLName xml.Name `xml:"igroup-add"`

	ForcePtr              *bool   `xml:"force"`
	InitiatorPtr          *string `xml:"initiator"`
	InitiatorGroupNamePtr *string `xml:"initiator-group-name"`
}

// ToXML converts this object into an xml string representation
func (o *IgroupAddRequest) ToXML() (string, error) {
	output, err := xml.MarshalIndent(o, " ", "    ")
	return string(output), err
}

// NewIgroupAddRequest is a factory method for creating new instances of IgroupAddRequest objects
func NewIgroupAddRequest() *IgroupAddRequest { return &IgroupAddRequest{} }

// ExecuteUsing converts this object to a ZAPI XML representation and uses the supplied ZapiRunner to send to a filer
func (o *IgroupAddRequest) ExecuteUsing(zr *ZapiRunner) (IgroupAddResponse, error) {
	return invoke[IgroupAddResponse](zr, o, "IgroupAddRequest")
}

// String returns a string representation of this object's fields and implements the Stringer interface
func (o IgroupAddRequest) String() string {
	return ToString(reflect.ValueOf(o))
}

// Force is a 'getter' method
func (o *IgroupAddRequest) Force() bool {
	r := *o.ForcePtr
	return r
}

// SetForce is a fluent style 'setter' method that can be chained
func (o *IgroupAddRequest) SetForce(newValue bool) *IgroupAddRequest {
	o.ForcePtr = &newValue
	return o
}

// Initiator is a 'getter' method
func (o *IgroupAddRequest) Initiator() string {
	r := *o.InitiatorPtr
	return r
}

// SetInitiator is a fluent style 'setter' method that can be chained
func (o *IgroupAddRequest) SetInitiator(newValue string) *IgroupAddRequest {
	o.InitiatorPtr = &newValue
	return o
}

// InitiatorGroupName is a 'getter' method
func (o *IgroupAddRequest) InitiatorGroupName() string {
	r := *o.InitiatorGroupNamePtr
	return r
}

// SetInitiatorGroupName is a fluent style 'setter' method that can be chained
func (o *IgroupAddRequest) SetInitiatorGroupName(newValue string) *IgroupAddRequest {
	o.InitiatorGroupNamePtr = &newValue
	return o
}

// IgroupAddResponse is a structure to represent a igroup-add ZAPI response object
type IgroupAddResponse struct {
	XMLName xml.Name `xml:"netapp"`

	ResponseVersion string `xml:"version,attr"`
	ResponseXmlns   string `xml:"xmlns,attr"`

	Result IgroupAddResponseResult `xml:"results"`
}

// String returns a string representation of this object's fields and implements the Stringer interface
func (o IgroupAddResponse) String() string {
	return ToString(reflect.ValueOf(o))
}

// IgroupAddResponseResult is a structure to represent a igroup-add ZAPI object's result
type IgroupAddResponseResult struct {
	XMLName xml.Name `xml:"results"`

	ResultStatusAttr string `xml:"status,attr"`
	ResultReasonAttr string `xml:"reason,attr"`
	ResultErrnoAttr  string `xml:"errno,attr"`
}

// NewIgroupAddResponse is a factory method for creating new instances of IgroupAddResponse objects
func NewIgroupAddResponse() *IgroupAddResponse { return &IgroupAddResponse{} }

// String returns a string representation of this object's fields and implements the Stringer interface
func (o IgroupAddResponseResult) String() string {
	return ToString(reflect.ValueOf(o))
}
