// Copyright 2026 NetApp, Inc. All Rights Reserved.

package azgo

import (
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

const igroupGetIterResponseBody = `<?xml version='1.0' encoding='UTF-8' ?>
<netapp version='1.21' xmlns='http://www.netapp.com/filer/admin'>
<results status="passed"><attributes-list><initiator-group-info>
<initiator-group-name>presnellbr</initiator-group-name>
<initiator-group-os-type>linux</initiator-group-os-type>
<initiator-group-portset-name>ps1</initiator-group-portset-name>
<initiator-group-type>iscsi</initiator-group-type>
<initiator-group-uuid>1c7b3edc-aead-11eb-b8e0-00a0986e75a0</initiator-group-uuid>
<initiators><initiator-info>
<initiator-name>iqn.2005-03.org.open-iscsi:cb50e2753efd</initiator-name>
</initiator-info></initiators><vserver>CXE</vserver></initiator-group-info></attributes-list>
<num-records>1</num-records></results></netapp>`

func TestIgroupGetIterResponseUnmarshal(t *testing.T) {
	var response IgroupGetIterResponse
	err := xml.Unmarshal([]byte(igroupGetIterResponseBody), &response)
	assert.NoError(t, err, "igroup-get-iter response did not unmarshal")

	assert.Equal(t, "passed", response.Result.ResultStatusAttr, "Status attributes not equal")
	assert.Equal(t, 1, response.Result.NumRecords(), "Record counts not equal")

	attributesList := response.Result.AttributesList()
	infos := attributesList.InitiatorGroupInfo()
	assert.Len(t, infos, 1, "Unexpected igroup record count")

	info := infos[0]
	assert.Equal(t, "presnellbr", info.InitiatorGroupName(), "Strings not equal")
	assert.Equal(t, "linux", info.InitiatorGroupOsType(), "Strings not equal")
	assert.Equal(t, "ps1", info.InitiatorGroupPortsetName(), "Strings not equal")
	assert.Equal(t, "iscsi", info.InitiatorGroupType(), "Strings not equal")
	assert.Equal(t, "1c7b3edc-aead-11eb-b8e0-00a0986e75a0", info.InitiatorGroupUuid(), "Strings not equal")
	assert.Equal(t, "CXE", info.Vserver(), "Strings not equal")

	initiators := info.InitiatorsPtr.InitiatorInfo()
	assert.Len(t, initiators, 1, "Unexpected initiator count")
	assert.Equal(t, "iqn.2005-03.org.open-iscsi:cb50e2753efd", initiators[0].InitiatorName(), "Strings not equal")
}

func TestIgroupCreateRequestToXML(t *testing.T) {
	request := NewIgroupCreateRequest().
		SetInitiatorGroupName("igroup1").
		SetInitiatorGroupType("iscsi").
		SetOsType("linux").
		SetBindPortset("ps1")

	xmlString, err := request.ToXML()
	assert.NoError(t, err, "igroup-create request did not marshal")

	assert.Contains(t, xmlString, "<igroup-create>", "Element missing")
	assert.Contains(t, xmlString, "<initiator-group-name>igroup1</initiator-group-name>", "Element missing")
	assert.Contains(t, xmlString, "<initiator-group-type>iscsi</initiator-group-type>", "Element missing")
	assert.Contains(t, xmlString, "<os-type>linux</os-type>", "Element missing")
	assert.Contains(t, xmlString, "<bind-portset>ps1</bind-portset>", "Element missing")
	assert.NotContains(t, xmlString, "<ostype>", "Unset field should be omitted")
}

func TestIgroupCreateRequestString(t *testing.T) {
	request := NewIgroupCreateRequest().SetInitiatorGroupName("igroup1")

	s := request.String()
	assert.Contains(t, s, "initiator-group-name: igroup1", "Strings not equal")
	assert.Contains(t, s, "os-type: nil", "Unset fields should render as nil")
}

func TestSendZapiRequestEnvelope(t *testing.T) {
	var receivedBody, receivedContentType, receivedUser, receivedPassword string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		receivedBody = string(body)
		receivedContentType = r.Header.Get("Content-Type")
		receivedUser, receivedPassword, _ = r.BasicAuth()
		fmt.Fprint(w, `<netapp version='1.21' xmlns='http://www.netapp.com/filer/admin'><results status="passed"/></netapp>`)
	}))
	defer server.Close()

	zr := &ZapiRunner{
		ManagementLIF: strings.TrimPrefix(server.URL, "http://"),
		SVM:           "SVM1",
		Username:      "admin",
		Password:      "password",
		Secure:        false,
	}

	response, err := zr.SendZapi(NewIgroupDestroyRequest().SetInitiatorGroupName("igroup1"))
	assert.NoError(t, err, "SendZapi failed")
	defer response.Body.Close()

	assert.Equal(t, "application/xml", receivedContentType, "Strings not equal")
	assert.Equal(t, "admin", receivedUser, "Strings not equal")
	assert.Equal(t, "password", receivedPassword, "Strings not equal")
	assert.Contains(t, receivedBody, `vfiler="SVM1"`, "Request envelope missing vfiler")
	assert.Contains(t, receivedBody, `xmlns="http://www.netapp.com/filer/admin"`, "Request envelope missing xmlns")
	assert.Contains(t, receivedBody, "<igroup-destroy>", "Request envelope missing ZAPI command")
}

func TestSendZapiNoVfilerTunneling(t *testing.T) {
	var receivedBody string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		receivedBody = string(body)
		fmt.Fprint(w, `<netapp version='1.21' xmlns='http://www.netapp.com/filer/admin'><results status="passed"/></netapp>`)
	}))
	defer server.Close()

	zr := &ZapiRunner{
		ManagementLIF: strings.TrimPrefix(server.URL, "http://"),
	}

	response, err := zr.SendZapi(NewSystemGetVersionRequest())
	assert.NoError(t, err, "SendZapi failed")
	defer response.Body.Close()

	assert.NotContains(t, receivedBody, "vfiler", "Cluster-scoped request must not be tunneled")
}

func TestSendZapiUnauthorized(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	zr := &ZapiRunner{
		ManagementLIF: strings.TrimPrefix(server.URL, "http://"),
		SVM:           "SVM1",
	}

	_, err := zr.SendZapi(NewIgroupDestroyRequest().SetInitiatorGroupName("igroup1"))
	assert.Error(t, err, "SendZapi should fail on 401")
	assert.Contains(t, err.Error(), "401", "Error should carry the response code")
}

func TestIgroupGetIterExecuteUsing(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, igroupGetIterResponseBody)
	}))
	defer server.Close()

	zr := &ZapiRunner{
		ManagementLIF: strings.TrimPrefix(server.URL, "http://"),
		SVM:           "CXE",
	}

	response, err := NewIgroupGetIterRequest().SetMaxRecords(100).ExecuteUsing(zr)
	assert.NoError(t, err, "igroup-get-iter failed")
	assert.Equal(t, "passed", response.Result.ResultStatusAttr, "Strings not equal")
	assert.Equal(t, 1, response.Result.NumRecords(), "Record counts not equal")
}
