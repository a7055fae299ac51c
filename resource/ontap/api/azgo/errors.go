// Copyright 2026 NetApp, Inc. All Rights Reserved.

package azgo

// ZAPI error codes surfaced in the errno attribute of a failed result.
const (
	EAPIPRIVILEGE                      = "13003"
	EAPINOTFOUND                       = "13005"
	EINTERNALERROR                     = "13114"
	EOBJECTNOTFOUND                    = "15661"
	EVDISK_ERROR_INITGROUP_EXISTS      = "9004"
	EVDISK_ERROR_NO_SUCH_INITGROUP     = "9007"
	EVDISK_ERROR_INITGROUP_HAS_NODE    = "9008"
	EVDISK_ERROR_NODE_NOT_IN_INITGROUP = "9010"
	EVDISK_ERROR_INITGROUP_MAPS_EXIST  = "9029"
)
