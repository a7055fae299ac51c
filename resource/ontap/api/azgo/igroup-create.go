// Copyright 2026 NetApp, Inc. All Rights Reserved.

package azgo

import (
	"encoding/xml"
	"reflect"
)

// IgroupCreateRequest is a structure to represent a igroup-create ZAPI request object
type IgroupCreateRequest struct {
	XMLName xml.Name `xml:"igroup-create"`

	BindPortsetPtr        *string `xml:"bind-portset"`
	InitiatorGroupNamePtr *string `xml:"initiator-group-name"`
	InitiatorGroupTypePtr *string `xml:"initiator-group-type"`
	OsTypePtr             *string `xml:"os-type"`
	OstypePtr             *string `xml:"ostype"`
}

// ToXML converts this object into an xml string representation
func (o *IgroupCreateRequest) ToXML() (string, error) {
	output, err := xml.MarshalIndent(o, " ", "    ")
	return string(output), err
}

// NewIgroupCreateRequest is a factory method for creating new instances of IgroupCreateRequest objects
func NewIgroupCreateRequest() *IgroupCreateRequest { return &IgroupCreateRequest{} }

// ExecuteUsing converts this object to a ZAPI XML representation and uses the supplied ZapiRunner to send to a filer
func (o *IgroupCreateRequest) ExecuteUsing(zr *ZapiRunner) (IgroupCreateResponse, error) {
	return invoke[IgroupCreateResponse](zr, o, "IgroupCreateRequest")
}

// String returns a string representation of this object's fields and implements the Stringer interface
func (o IgroupCreateRequest) String() string {
	return ToString(reflect.ValueOf(o))
}

// BindPortset is a 'getter' method
func (o *IgroupCreateRequest) BindPortset() string {
	r := *o.BindPortsetPtr
	return r
}

// SetBindPortset is a fluent style 'setter' method that can be chained
func (o *IgroupCreateRequest) SetBindPortset(newValue string) *IgroupCreateRequest {
	o.BindPortsetPtr = &newValue
	return o
}

// InitiatorGroupName is a 'getter' method
func (o *IgroupCreateRequest) InitiatorGroupName() string {
	r := *o.InitiatorGroupNamePtr
	return r
}

// SetInitiatorGroupName is a fluent style 'setter' method that can be chained
func (o *IgroupCreateRequest) SetInitiatorGroupName(newValue string) *IgroupCreateRequest {
	o.InitiatorGroupNamePtr = &newValue
	return o
}

// InitiatorGroupType is a 'getter' method
func (o *IgroupCreateRequest) InitiatorGroupType() string {
	r := *o.InitiatorGroupTypePtr
	return r
}

// SetInitiatorGroupType is a fluent style 'setter' method that can be chained
func (o *IgroupCreateRequest) SetInitiatorGroupType(newValue string) *IgroupCreateRequest {
	o.InitiatorGroupTypePtr = &newValue
	return o
}

// OsType is a 'getter' method
func (o *IgroupCreateRequest) OsType() string {
	r := *o.OsTypePtr
	return r
}

// SetOsType is a fluent style 'setter' method that can be chained
func (o *IgroupCreateRequest) SetOsType(newValue string) *IgroupCreateRequest {
	o.OsTypePtr = &newValue
	return o
}

// Ostype is a 'getter' method
func (o *IgroupCreateRequest) Ostype() string {
	r := *o.OstypePtr
	return r
}

// SetOstype is a fluent style 'setter' method that can be chained
func (o *IgroupCreateRequest) SetOstype(newValue string) *IgroupCreateRequest {
	o.OstypePtr = &newValue
	return o
}

// IgroupCreateResponse is a structure to represent a igroup-create ZAPI response object
type IgroupCreateResponse struct {
	XMLName xml.Name `xml:"netapp"`

	ResponseVersion string `xml:"version,attr"`
	ResponseXmlns   string `xml:"xmlns,attr"`

	Result IgroupCreateResponseResult `xml:"results"`
}

// String returns a string representation of this object's fields and implements the Stringer interface
func (o IgroupCreateResponse) String() string {
	return ToString(reflect.ValueOf(o))
}

// IgroupCreateResponseResult is a structure to represent a igroup-create ZAPI object's result
type IgroupCreateResponseResult struct {
	XMLName xml.Name `xml:"results"`

	ResultStatusAttr string `xml:"status,attr"`
	ResultReasonAttr string `xml:"reason,attr"`
	ResultErrnoAttr  string `xml:"errno,attr"`
}

// NewIgroupCreateResponse is a factory method for creating new instances of IgroupCreateResponse objects
func NewIgroupCreateResponse() *IgroupCreateResponse { return &IgroupCreateResponse{} }

// String returns a string representation of this object's fields and implements the Stringer interface
func (o IgroupCreateResponseResult) String() string {
	return ToString(reflect.ValueOf(o))
}
