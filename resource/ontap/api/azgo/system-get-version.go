// Copyright 2026 NetApp, Inc. All Rights Reserved.

package azgo

import (
	"encoding/xml"
	"reflect"
)

// SystemGetVersionRequest is a structure to represent a system-get-version ZAPI request object
type SystemGetVersionRequest struct {
	XMLName xml.Name `xml:"system-get-version"`
}

// ToXML converts this object into an xml string representation
func (o *SystemGetVersionRequest) ToXML() (string, error) {
	output, err := xml.MarshalIndent(o, " ", "    ")
	return string(output), err
}

// NewSystemGetVersionRequest is a factory method for creating new instances of SystemGetVersionRequest objects
func NewSystemGetVersionRequest() *SystemGetVersionRequest { return &SystemGetVersionRequest{} }

// ExecuteUsing converts this object to a ZAPI XML representation and uses the supplied ZapiRunner to send to a filer
func (o *SystemGetVersionRequest) ExecuteUsing(zr *ZapiRunner) (SystemGetVersionResponse, error) {
	return invoke[SystemGetVersionResponse](zr, o, "SystemGetVersionRequest")
}

// String returns a string representation of this object's fields and implements the Stringer interface
func (o SystemGetVersionRequest) String() string {
	return ToString(reflect.ValueOf(o))
}

// SystemGetVersionResponse is a structure to represent a system-get-version ZAPI response object
type SystemGetVersionResponse struct {
	XMLName xml.Name `xml:"netapp"`

	ResponseVersion string `xml:"version,attr"`
	ResponseXmlns   string `xml:"xmlns,attr"`

	Result SystemGetVersionResponseResult `xml:"results"`
}

// String returns a string representation of this object's fields and implements the Stringer interface
func (o SystemGetVersionResponse) String() string {
	return ToString(reflect.ValueOf(o))
}

// SystemGetVersionResponseResult is a structure to represent a system-get-version ZAPI object's result
type SystemGetVersionResponseResult struct {
	XMLName xml.Name `xml:"results"`

	ResultStatusAttr  string                  `xml:"status,attr"`
	ResultReasonAttr  string                  `xml:"reason,attr"`
	ResultErrnoAttr   string                  `xml:"errno,attr"`
	BuildTimestampPtr *int                    `xml:"build-timestamp"`
	IsClusteredPtr    *bool                   `xml:"is-clustered"`
	VersionPtr        *string                 `xml:"version"`
	VersionTuplePtr   *SystemVersionTupleType `xml:"version-tuple>system-version-tuple"`
}

// NewSystemGetVersionResponse is a factory method for creating new instances of SystemGetVersionResponse objects
func NewSystemGetVersionResponse() *SystemGetVersionResponse { return &SystemGetVersionResponse{} }

// String returns a string representation of this object's fields and implements the Stringer interface
func (o SystemGetVersionResponseResult) String() string {
	return ToString(reflect.ValueOf(o))
}

// BuildTimestamp is a 'getter' method
func (o *SystemGetVersionResponseResult) BuildTimestamp() int {
	r := *o.BuildTimestampPtr
	return r
}

// SetBuildTimestamp is a fluent style 'setter' method that can be chained
func (o *SystemGetVersionResponseResult) SetBuildTimestamp(newValue int) *SystemGetVersionResponseResult {
	o.BuildTimestampPtr = &newValue
	return o
}

// IsClustered is a 'getter' method
func (o *SystemGetVersionResponseResult) IsClustered() bool {
	r := *o.IsClusteredPtr
	return r
}

// SetIsClustered is a fluent style 'setter' method that can be chained
func (o *SystemGetVersionResponseResult) SetIsClustered(newValue bool) *SystemGetVersionResponseResult {
	o.IsClusteredPtr = &newValue
	return o
}

// Version is a 'getter' method
func (o *SystemGetVersionResponseResult) Version() string {
	r := *o.VersionPtr
	return r
}

// SetVersion is a fluent style 'setter' method that can be chained
func (o *SystemGetVersionResponseResult) SetVersion(newValue string) *SystemGetVersionResponseResult {
	o.VersionPtr = &newValue
	return o
}

// VersionTuple is a 'getter' method
func (o *SystemGetVersionResponseResult) VersionTuple() SystemVersionTupleType {
	r := *o.VersionTuplePtr
	return r
}

// SetVersionTuple is a fluent style 'setter' method that can be chained
func (o *SystemGetVersionResponseResult) SetVersionTuple(newValue SystemVersionTupleType) *SystemGetVersionResponseResult {
	o.VersionTuplePtr = &newValue
	return o
}
