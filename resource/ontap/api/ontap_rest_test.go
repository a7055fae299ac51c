// Copyright 2026 NetApp, Inc. All Rights Reserved.

package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"testing"

	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"

	"github.com/netapp/converge/utils/errors"
)

const restLIF = "10.0.207.101"

const clusterVersionBody = `{
  "version": {
    "full": "NetApp Release 9.9.1P2: Wed Oct 13 19:31:48 UTC 2021",
    "generation": 9,
    "major": 9,
    "minor": 1
  }
}`

const igroupCollectionBody = `{
  "records": [
    {
      "svm": {"uuid": "02c9e252-41be-11e9-81d5-00a0986138f7", "name": "SVM1"},
      "uuid": "4ea7a442-86d1-11e0-ae1c-123478563412",
      "name": "igroup1",
      "protocol": "iscsi",
      "os_type": "linux",
      "initiators": [
        {"name": "iqn.1998-01.com.vmware:host-a"},
        {"name": "iqn.1998-01.com.vmware:host-b"}
      ]
    }
  ],
  "num_records": 1
}`

func newRestTestClient(t *testing.T) *RestClient {
	t.Helper()

	client := NewRestClient(ClientConfig{
		ManagementLIF: restLIF,
		SVM:           "SVM1",
		Username:      "admin",
		Password:      "password",
	})

	httpmock.ActivateNonDefault(client.httpClient)
	t.Cleanup(httpmock.DeactivateAndReset)
	return client
}

func restURL(endpoint string) string {
	return "https://" + restLIF + "/api" + endpoint
}

func TestOntapVersionAtLeast(t *testing.T) {
	tests := []struct {
		version  OntapVersion
		min      OntapVersion
		expected bool
	}{
		{OntapVersion{Generation: 9, Major: 6}, OntapVersion{Generation: 9, Major: 6}, true},
		{OntapVersion{Generation: 9, Major: 5}, OntapVersion{Generation: 9, Major: 6}, false},
		{OntapVersion{Generation: 9, Major: 9, Minor: 1}, OntapVersion{Generation: 9, Major: 9, Minor: 1}, true},
		{OntapVersion{Generation: 9, Major: 9}, OntapVersion{Generation: 9, Major: 9, Minor: 1}, false},
		{OntapVersion{Generation: 9, Major: 10}, OntapVersion{Generation: 9, Major: 9, Minor: 1}, true},
		{OntapVersion{Generation: 10}, OntapVersion{Generation: 9, Major: 9, Minor: 1}, true},
	}

	for _, test := range tests {
		t.Run(test.version.String()+" vs "+test.min.String(), func(t *testing.T) {
			assert.Equal(t, test.expected, test.version.AtLeast(test.min), "AtLeast mismatch")
		})
	}
}

func TestRestErrorFromBody(t *testing.T) {
	restErr := newRestErrorFromBody(404, []byte(`{"error": {"message": "entry doesn't exist", "code": "4"}}`))
	assert.Equal(t, "4", restErr.Code(), "Strings not equal")
	assert.Equal(t, "entry doesn't exist", restErr.Message(), "Strings not equal")
	assert.True(t, restErr.IsNotFound(), "Code 4 should report not found")
	assert.Contains(t, restErr.Error(), "API status: 404", "Error text missing status")

	// Some responses carry numeric codes; they must not lose precision.
	restErr = newRestErrorFromBody(400, []byte(`{"error": {"message": "invalid value", "code": 5374852}}`))
	assert.Equal(t, "5374852", restErr.Code(), "Strings not equal")
	assert.False(t, restErr.IsNotFound(), "Code 5374852 is not a missing entry")

	restErr = newRestErrorFromBody(502, []byte(`<html>bad gateway</html>`))
	assert.Equal(t, 502, restErr.StatusCode(), "Status codes not equal")
	assert.Empty(t, restErr.Code(), "Unparseable body should leave the code empty")
}

func TestClusterVersion(t *testing.T) {
	ctx := context.Background()
	client := newRestTestClient(t)

	httpmock.RegisterResponder("GET", restURL(clusterEndpoint),
		httpmock.NewStringResponder(200, clusterVersionBody))

	version, err := client.ClusterVersion(ctx)
	assert.NoError(t, err, "ClusterVersion failed")
	assert.Equal(t, "9.9.1", version.String(), "Strings not equal")

	// The version is cached, so the second call makes no request.
	version, err = client.ClusterVersion(ctx)
	assert.NoError(t, err, "ClusterVersion failed on second call")
	assert.Equal(t, 9, version.Generation, "Generations not equal")
	assert.Equal(t, 1, httpmock.GetTotalCallCount(), "Version lookup should be cached")
}

func TestClusterVersionUnauthorized(t *testing.T) {
	ctx := context.Background()
	client := newRestTestClient(t)

	httpmock.RegisterResponder("GET", restURL(clusterEndpoint),
		httpmock.NewStringResponder(401, ""))

	_, err := client.ClusterVersion(ctx)
	assert.Error(t, err, "ClusterVersion should fail on 401")
	assert.Contains(t, err.Error(), "401", "Error should carry the response code")
}

func TestSupportsFeature(t *testing.T) {
	ctx := context.Background()
	client := newRestTestClient(t)

	httpmock.RegisterResponder("GET", restURL(clusterEndpoint),
		httpmock.NewStringResponder(200, `{"version": {"generation": 9, "major": 8, "minor": 0}}`))

	assert.True(t, client.SupportsFeature(ctx, MinimumRESTSupport), "9.8 should support REST")
	assert.False(t, client.SupportsFeature(ctx, IgroupPortsetBinding),
		"9.8 should not support igroup portset binding")
	assert.False(t, client.SupportsFeature(ctx, Feature("NO_SUCH_FEATURE")),
		"Unknown features are unsupported")
}

func TestRestClientIgroupGetByName(t *testing.T) {
	ctx := context.Background()
	client := newRestTestClient(t)

	var query url.Values
	httpmock.RegisterResponder("GET", restURL(igroupsEndpoint),
		func(req *http.Request) (*http.Response, error) {
			query = req.URL.Query()
			return httpmock.NewStringResponse(200, igroupCollectionBody), nil
		})

	record, err := client.IgroupGetByName(ctx, "igroup1")
	assert.NoError(t, err, "IgroupGetByName failed")
	assert.NotNil(t, record, "Expected an igroup record")
	assert.Equal(t, "igroup1", record.Name, "Strings not equal")
	assert.Equal(t, "4ea7a442-86d1-11e0-ae1c-123478563412", record.UUID, "Strings not equal")

	assert.Equal(t, "SVM1", query.Get("svm.name"), "Query should be scoped to the SVM")
	assert.Equal(t, "igroup1", query.Get("name"), "Query should carry the igroup name")
	assert.Equal(t, "name,uuid,svm,initiators,os_type,protocol", query.Get("fields"),
		"Unexpected field selection")
}

func TestRestClientIgroupGetByNameAbsent(t *testing.T) {
	ctx := context.Background()
	client := newRestTestClient(t)

	httpmock.RegisterResponder("GET", restURL(igroupsEndpoint),
		httpmock.NewStringResponder(200, `{"records": [], "num_records": 0}`))

	record, err := client.IgroupGetByName(ctx, "missing")
	assert.NoError(t, err, "A missing igroup is not an error")
	assert.Nil(t, record, "A missing igroup should yield nil")
}

func TestRestClientIgroupCreate(t *testing.T) {
	ctx := context.Background()
	client := newRestTestClient(t)

	var body map[string]interface{}
	httpmock.RegisterResponder("POST", restURL(igroupsEndpoint),
		func(req *http.Request) (*http.Response, error) {
			if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
				return nil, err
			}
			return httpmock.NewStringResponse(201, `{"num_records": 1}`), nil
		})

	spec := IgroupCreateSpec{
		Name:       "igroup1",
		OsType:     "linux",
		Initiators: []string{"iqn.1998-01.com.vmware:host-a"},
	}
	assert.NoError(t, client.IgroupCreate(ctx, spec), "IgroupCreate failed")

	assert.Equal(t, "igroup1", body["name"], "Strings not equal")
	assert.Equal(t, "linux", body["os_type"], "Strings not equal")
	assert.Equal(t, map[string]interface{}{"name": "SVM1"}, body["svm"], "SVM references not equal")
	assert.Nil(t, body["protocol"], "Unset protocol should be omitted")
	initiators, ok := body["initiators"].([]interface{})
	assert.True(t, ok, "Initiators should be a list")
	assert.Len(t, initiators, 1, "Unexpected initiator count")
}

func TestRestClientIgroupModifyError(t *testing.T) {
	ctx := context.Background()
	client := newRestTestClient(t)

	httpmock.RegisterResponder("PATCH", restURL(igroupsEndpoint+"/uuid-1"),
		httpmock.NewStringResponder(400, `{"error": {"message": "invalid os_type", "code": "5374023"}}`))

	err := client.IgroupModify(ctx, "uuid-1", map[string]string{"os_type": "solaris"})
	assert.Error(t, err, "IgroupModify should surface the failure")
	restErr, ok := err.(RestError)
	assert.True(t, ok, "Error should be a RestError")
	assert.Equal(t, "5374023", restErr.Code(), "Strings not equal")
	assert.Equal(t, "invalid os_type", restErr.Message(), "Strings not equal")
}

func TestRestClientIgroupDelete(t *testing.T) {
	ctx := context.Background()
	client := newRestTestClient(t)

	var query url.Values
	httpmock.RegisterResponder("DELETE", restURL(igroupsEndpoint+"/uuid-1"),
		func(req *http.Request) (*http.Response, error) {
			query = req.URL.Query()
			return httpmock.NewStringResponse(200, ""), nil
		})

	assert.NoError(t, client.IgroupDelete(ctx, "uuid-1", false), "IgroupDelete failed")
	assert.Empty(t, query.Get("allow_delete_while_mapped"),
		"Unforced delete should not allow deletion while mapped")

	assert.NoError(t, client.IgroupDelete(ctx, "uuid-1", true), "Forced IgroupDelete failed")
	assert.Equal(t, "true", query.Get("allow_delete_while_mapped"),
		"Forced delete should allow deletion while mapped")
}

func TestRestClientIgroupAddInitiators(t *testing.T) {
	ctx := context.Background()
	client := newRestTestClient(t)

	var body struct {
		Records []restReference `json:"records"`
	}
	httpmock.RegisterResponder("POST", restURL(igroupsEndpoint+"/uuid-1/initiators"),
		func(req *http.Request) (*http.Response, error) {
			if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
				return nil, err
			}
			return httpmock.NewStringResponse(201, ""), nil
		})

	err := client.IgroupAddInitiators(ctx, "uuid-1",
		[]string{"iqn.1998-01.com.vmware:host-a", "iqn.1998-01.com.vmware:host-b"})
	assert.NoError(t, err, "IgroupAddInitiators failed")
	assert.Len(t, body.Records, 2, "Unexpected initiator record count")
	assert.Equal(t, "iqn.1998-01.com.vmware:host-a", body.Records[0].Name, "Strings not equal")

	callCount := httpmock.GetTotalCallCount()
	assert.NoError(t, client.IgroupAddInitiators(ctx, "uuid-1", nil), "Empty add should be a no-op")
	assert.Equal(t, callCount, httpmock.GetTotalCallCount(), "Empty add should make no request")
}

func TestOntapAPIRESTAPIVersion(t *testing.T) {
	ctx := context.Background()
	client := newRestTestClient(t)
	rest, err := NewOntapAPIREST(client)
	assert.NoError(t, err, "NewOntapAPIREST failed")
	assert.True(t, rest.IsREST(), "REST layer should report REST")

	httpmock.RegisterResponder("GET", restURL(clusterEndpoint),
		httpmock.NewStringResponder(200, clusterVersionBody))

	version, err := rest.APIVersion(ctx)
	assert.NoError(t, err, "APIVersion failed")
	assert.Equal(t, "9.9.1", version, "Strings not equal")
}

func TestOntapAPIRESTIgroupGetByName(t *testing.T) {
	ctx := context.Background()
	client := newRestTestClient(t)
	rest, _ := NewOntapAPIREST(client)

	httpmock.RegisterResponder("GET", restURL(igroupsEndpoint),
		httpmock.NewStringResponder(200, igroupCollectionBody))

	igroup, err := rest.IgroupGetByName(ctx, "igroup1")
	assert.NoError(t, err, "IgroupGetByName failed")
	assert.NotNil(t, igroup, "Expected an igroup")
	assert.Equal(t, "igroup1", igroup.Name, "Strings not equal")
	assert.Equal(t, "iscsi", igroup.InitiatorGroupType, "Strings not equal")
	assert.Equal(t, "linux", igroup.OsType, "Strings not equal")
	assert.Equal(t, "SVM1", igroup.Vserver, "Strings not equal")
	assert.Empty(t, igroup.BindPortset, "REST does not report a portset binding")
	assert.Equal(t, []string{"iqn.1998-01.com.vmware:host-a", "iqn.1998-01.com.vmware:host-b"},
		igroup.Initiators, "Initiator lists not equal")
}

func TestOntapAPIRESTIgroupDestroyToleratesMissing(t *testing.T) {
	ctx := context.Background()
	client := newRestTestClient(t)
	rest, _ := NewOntapAPIREST(client)

	httpmock.RegisterResponder("DELETE", restURL(igroupsEndpoint+"/uuid-1"),
		httpmock.NewStringResponder(404, `{"error": {"message": "entry doesn't exist", "code": "4"}}`))

	err := rest.IgroupDestroy(ctx, &Igroup{Name: "igroup1", UUID: "uuid-1"}, false)
	assert.NoError(t, err, "A missing igroup should not fail destroy")
}

func TestOntapAPIRESTIgroupRemoveInitiatorsTolerated(t *testing.T) {
	ctx := context.Background()
	client := newRestTestClient(t)
	rest, _ := NewOntapAPIREST(client)

	httpmock.RegisterResponder("DELETE",
		restURL(igroupsEndpoint+"/uuid-1/initiators/iqn.1998-01.com.vmware:host-a"),
		httpmock.NewStringResponder(404, `{"error": {"message": "entry doesn't exist", "code": "4"}}`))

	err := rest.IgroupRemoveInitiators(ctx, &Igroup{Name: "igroup1", UUID: "uuid-1"},
		[]string{"iqn.1998-01.com.vmware:host-a"})
	assert.NoError(t, err, "An initiator not in the igroup should not fail remove")
}

func TestOntapAPIRESTIgroupModify(t *testing.T) {
	ctx := context.Background()
	client := newRestTestClient(t)
	rest, _ := NewOntapAPIREST(client)

	var body map[string]string
	httpmock.RegisterResponder("PATCH", restURL(igroupsEndpoint+"/uuid-1"),
		func(req *http.Request) (*http.Response, error) {
			if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
				return nil, err
			}
			return httpmock.NewStringResponse(200, ""), nil
		})

	igroup := &Igroup{Name: "igroup1", UUID: "uuid-1"}
	patch := map[string]string{"name": "igroup2", "os_type": "windows", "bind_portset": "ps1"}
	assert.NoError(t, rest.IgroupModify(ctx, igroup, patch), "IgroupModify failed")

	assert.Equal(t, map[string]string{"name": "igroup2", "os_type": "windows", "portset": "ps1"}, body,
		"PATCH body should use REST attribute names")
}

func TestOntapAPIRESTIgroupModifyUnsupported(t *testing.T) {
	ctx := context.Background()
	rest := OntapAPIREST{API: NewRestClient(ClientConfig{ManagementLIF: restLIF})}

	err := rest.IgroupModify(ctx, &Igroup{Name: "igroup1", UUID: "uuid-1"},
		map[string]string{"initiator_group_type": "fcp"})
	assert.Error(t, err, "REST cannot modify the igroup protocol")
	assert.True(t, errors.IsUnsupportedError(err), "Error should be an unsupported error")
	assert.Contains(t, err.Error(), "initiator_group_type", "Error should name the option")
}

func TestOntapAPIRESTIgroupRename(t *testing.T) {
	rest := OntapAPIREST{API: NewRestClient(ClientConfig{ManagementLIF: restLIF})}

	err := rest.IgroupRename(context.Background(), &Igroup{Name: "igroup1"}, "igroup2")
	assert.Error(t, err, "REST has no rename primitive")
}
