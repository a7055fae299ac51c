// Copyright 2026 NetApp, Inc. All Rights Reserved.

package azgo

import (
	"encoding/xml"
	"reflect"
)

// InitiatorGroupInfoType is a structure to represent a initiator-group-info ZAPI object
type InitiatorGroupInfoType struct {
	XMLName xml.Name `xml:"initiator-group-info"`

	InitiatorGroupNamePtr        *string                           `xml:"initiator-group-name"`
	InitiatorGroupOsTypePtr      *string                           `xml:"initiator-group-os-type"`
	InitiatorGroupPortsetNamePtr *string                           `xml:"initiator-group-portset-name"`
	InitiatorGroupTypePtr        *string                           `xml:"initiator-group-type"`
	InitiatorGroupUuidPtr        *string                           `xml:"initiator-group-uuid"`
	InitiatorsPtr                *InitiatorGroupInfoTypeInitiators `xml:"initiators"`
	VserverPtr                   *string                           `xml:"vserver"`
}

// InitiatorGroupInfoTypeInitiators is a wrapper
type InitiatorGroupInfoTypeInitiators struct {
	XMLName xml.Name `xml:"initiators"`

	InitiatorInfoPtr []InitiatorInfoType `xml:"initiator-info"`
}

// String returns a string representation of this object's fields and implements the Stringer interface
func (o InitiatorGroupInfoTypeInitiators) String() string {
	return ToString(reflect.ValueOf(o))
}

// InitiatorInfo is a 'getter' method
func (o *InitiatorGroupInfoTypeInitiators) InitiatorInfo() []InitiatorInfoType {
	r := o.InitiatorInfoPtr
	return r
}

// SetInitiatorInfo is a fluent style 'setter' method that can be chained
func (o *InitiatorGroupInfoTypeInitiators) SetInitiatorInfo(newValue []InitiatorInfoType) *InitiatorGroupInfoTypeInitiators {
	newSlice := make([]InitiatorInfoType, len(newValue))
	copy(newSlice, newValue)
	o.InitiatorInfoPtr = newSlice
	return o
}

// NewInitiatorGroupInfoType is a factory method for creating new instances of InitiatorGroupInfoType objects
func NewInitiatorGroupInfoType() *InitiatorGroupInfoType { return &InitiatorGroupInfoType{} }

// ToXML converts this object into an xml string representation
func (o *InitiatorGroupInfoType) ToXML() (string, error) {
	output, err := xml.MarshalIndent(o, " ", "    ")
	return string(output), err
}

// String returns a string representation of this object's fields and implements the Stringer interface
func (o InitiatorGroupInfoType) String() string {
	return ToString(reflect.ValueOf(o))
}

// InitiatorGroupName is a 'getter' method
func (o *InitiatorGroupInfoType) InitiatorGroupName() string {
	r := *o.InitiatorGroupNamePtr
	return r
}

// SetInitiatorGroupName is a fluent style 'setter' method that can be chained
func (o *InitiatorGroupInfoType) SetInitiatorGroupName(newValue string) *InitiatorGroupInfoType {
	o.InitiatorGroupNamePtr = &newValue
	return o
}

// InitiatorGroupOsType is a 'getter' method
func (o *InitiatorGroupInfoType) InitiatorGroupOsType() string {
	r := *o.InitiatorGroupOsTypePtr
	return r
}

// SetInitiatorGroupOsType is a fluent style 'setter' method that can be chained
func (o *InitiatorGroupInfoType) SetInitiatorGroupOsType(newValue string) *InitiatorGroupInfoType {
	o.InitiatorGroupOsTypePtr = &newValue
	return o
}

// InitiatorGroupPortsetName is a 'getter' method
func (o *InitiatorGroupInfoType) InitiatorGroupPortsetName() string {
	r := *o.InitiatorGroupPortsetNamePtr
	return r
}

// SetInitiatorGroupPortsetName is a fluent style 'setter' method that can be chained
func (o *InitiatorGroupInfoType) SetInitiatorGroupPortsetName(newValue string) *InitiatorGroupInfoType {
	o.InitiatorGroupPortsetNamePtr = &newValue
	return o
}

// InitiatorGroupType is a 'getter' method
func (o *InitiatorGroupInfoType) InitiatorGroupType() string {
	r := *o.InitiatorGroupTypePtr
	return r
}

// SetInitiatorGroupType is a fluent style 'setter' method that can be chained
func (o *InitiatorGroupInfoType) SetInitiatorGroupType(newValue string) *InitiatorGroupInfoType {
	o.InitiatorGroupTypePtr = &newValue
	return o
}

// InitiatorGroupUuid is a 'getter' method
func (o *InitiatorGroupInfoType) InitiatorGroupUuid() string {
	r := *o.InitiatorGroupUuidPtr
	return r
}

// SetInitiatorGroupUuid is a fluent style 'setter' method that can be chained
func (o *InitiatorGroupInfoType) SetInitiatorGroupUuid(newValue string) *InitiatorGroupInfoType {
	o.InitiatorGroupUuidPtr = &newValue
	return o
}

// Initiators is a 'getter' method
func (o *InitiatorGroupInfoType) Initiators() InitiatorGroupInfoTypeInitiators {
	r := *o.InitiatorsPtr
	return r
}

// SetInitiators is a fluent style 'setter' method that can be chained
func (o *InitiatorGroupInfoType) SetInitiators(newValue InitiatorGroupInfoTypeInitiators) *InitiatorGroupInfoType {
	o.InitiatorsPtr = &newValue
	return o
}

// Vserver is a 'getter' method
func (o *InitiatorGroupInfoType) Vserver() string {
	r := *o.VserverPtr
	return r
}

// SetVserver is a fluent style 'setter' method that can be chained
func (o *InitiatorGroupInfoType) SetVserver(newValue string) *InitiatorGroupInfoType {
	o.VserverPtr = &newValue
	return o
}
