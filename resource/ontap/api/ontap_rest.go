// Copyright 2026 NetApp, Inc. All Rights Reserved.

package api

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	convergeconfig "github.com/netapp/converge/config"
	. "github.com/netapp/converge/logging"
	"github.com/netapp/converge/utils/errors"
)

// Generic REST API error codes
const (
	DUPLICATE_ENTRY    = "1"
	ENTRY_DOESNT_EXIST = "4"
)

// RestError encapsulates the HTTP status and the ONTAP error body from a failed
// REST invocation.
type RestError struct {
	statusCode int
	message    string
	code       string
}

func (e RestError) Error() string {
	return fmt.Sprintf("API status: %d, Message: %s, Code: %s", e.statusCode, e.message, e.code)
}

func (e RestError) IsNotFound() bool {
	return e.statusCode == http.StatusNotFound || e.code == ENTRY_DOESNT_EXIST
}

func (e RestError) StatusCode() int {
	return e.statusCode
}
func (e RestError) Message() string {
	return e.message
}
func (e RestError) Code() string {
	return e.code
}

// Feature names ONTAP functionality gated on a minimum version over REST.
type Feature string

// Define new version-specific feature constants here
const (
	MinimumRESTSupport   Feature = "MINIMUM_REST_SUPPORT"
	IgroupPortsetBinding Feature = "IGROUP_PORTSET_BINDING"
)

// Indicate the minimum ONTAP version for each feature here
var features = map[Feature]OntapVersion{
	MinimumRESTSupport:   {Generation: 9, Major: 6},
	IgroupPortsetBinding: {Generation: 9, Major: 9, Minor: 1},
}

// OntapVersion is the generation.major.minor tuple reported by the cluster.
type OntapVersion struct {
	Generation int    `json:"generation"`
	Major      int    `json:"major"`
	Minor      int    `json:"minor"`
	Full       string `json:"full,omitempty"`
}

func (v OntapVersion) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Generation, v.Major, v.Minor)
}

// AtLeast reports whether v is the supplied version or later.
func (v OntapVersion) AtLeast(min OntapVersion) bool {
	if v.Generation != min.Generation {
		return v.Generation > min.Generation
	}
	if v.Major != min.Major {
		return v.Major > min.Major
	}
	return v.Minor >= min.Minor
}

const (
	igroupsEndpoint = "/protocols/san/igroups"
	clusterEndpoint = "/cluster"
)

type restReference struct {
	Name string `json:"name,omitempty"`
	UUID string `json:"uuid,omitempty"`
}

type igroupRecord struct {
	Name       string          `json:"name,omitempty"`
	UUID       string          `json:"uuid,omitempty"`
	OsType     string          `json:"os_type,omitempty"`
	Protocol   string          `json:"protocol,omitempty"`
	SVM        *restReference  `json:"svm,omitempty"`
	Portset    *restReference  `json:"portset,omitempty"`
	Initiators []restReference `json:"initiators,omitempty"`
}

type igroupCollection struct {
	Records    []igroupRecord `json:"records"`
	NumRecords int            `json:"num_records"`
}

// RestClient is the object to use for interacting with ONTAP controllers via REST
type RestClient struct {
	config     ClientConfig
	tr         *http.Transport
	httpClient *http.Client
	version    *OntapVersion
}

// NewRestClient is a factory method for creating a new instance
func NewRestClient(config ClientConfig) *RestClient {
	result := &RestClient{
		config: config,
	}

	result.tr = &http.Transport{
		TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
	}

	result.httpClient = &http.Client{
		Transport: result.tr,
		Timeout:   time.Duration(convergeconfig.StorageAPITimeoutSeconds * time.Second),
	}

	return result
}

// invokeAPI makes a single REST call and decodes the response into responseBody
// when one is supplied. Non-2xx responses are returned as a RestError carrying
// the ONTAP error body.
func (c *RestClient) invokeAPI(
	ctx context.Context, method, endpoint string, query url.Values, requestBody, responseBody interface{},
) (*http.Response, error) {

	u := url.URL{
		Scheme: "https",
		Host:   c.config.ManagementLIF,
		Path:   "/api" + endpoint,
	}
	if query != nil {
		u.RawQuery = query.Encode()
	}

	var reader io.Reader
	if requestBody != nil {
		body, err := json.Marshal(requestBody)
		if err != nil {
			return nil, err
		}
		if c.config.DebugTraceFlags["api"] {
			Logc(ctx).Debugf("REST request body: %s", string(body))
		}
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.SetBasicAuth(c.config.Username, c.config.Password)

	if c.config.DebugTraceFlags["api"] {
		Logc(ctx).Debugf("REST API request: %s %s", method, u.String())
	}

	response, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer response.Body.Close()

	if response.StatusCode == http.StatusUnauthorized {
		return response, errors.New("response code 401 (Unauthorized): incorrect or missing credentials")
	}

	body, err := io.ReadAll(response.Body)
	if err != nil {
		return response, err
	}
	if c.config.DebugTraceFlags["api"] {
		Logc(ctx).Debugf("REST API response (%s): %s", response.Status, string(body))
	}

	if response.StatusCode >= 300 {
		return response, newRestErrorFromBody(response.StatusCode, body)
	}

	if responseBody != nil && len(body) > 0 {
		if err = json.Unmarshal(body, responseBody); err != nil {
			return response, fmt.Errorf("could not parse REST response body: %v", err)
		}
	}

	return response, nil
}

// newRestErrorFromBody extracts the ONTAP error envelope from a failed response
// body; a body that fails to parse still yields a RestError with the HTTP status.
func newRestErrorFromBody(statusCode int, body []byte) RestError {

	result := RestError{statusCode: statusCode}

	var envelope struct {
		Error struct {
			Message string      `json:"message"`
			Code    interface{} `json:"code"`
		} `json:"error"`
	}

	decoder := json.NewDecoder(bytes.NewReader(body))
	decoder.UseNumber()
	if err := decoder.Decode(&envelope); err != nil {
		return result
	}

	result.message = envelope.Error.Message
	switch code := envelope.Error.Code.(type) {
	case string:
		result.code = code
	case json.Number:
		result.code = code.String()
	}

	return result
}

// ClusterVersion returns the ONTAP version reported by the cluster, caching the result.
func (c *RestClient) ClusterVersion(ctx context.Context) (*OntapVersion, error) {

	if c.version != nil {
		return c.version, nil
	}

	query := url.Values{}
	query.Set("fields", "version")

	var result struct {
		Version OntapVersion `json:"version"`
	}
	if _, err := c.invokeAPI(ctx, http.MethodGet, clusterEndpoint, query, nil, &result); err != nil {
		return nil, err
	}

	c.version = &result.Version
	return c.version, nil
}

// SupportsFeature returns true if the ONTAP version supports the supplied feature over REST
func (c *RestClient) SupportsFeature(ctx context.Context, feature Feature) bool {

	version, err := c.ClusterVersion(ctx)
	if err != nil {
		return false
	}

	if minVersion, ok := features[feature]; ok {
		return version.AtLeast(minVersion)
	}
	return false
}

/////////////////////////////////////////////////////////////////////////////
// IGROUP operations BEGIN

// IgroupList returns igroups in the client's SVM whose names match the supplied
// name; an empty name matches all igroups.
func (c *RestClient) IgroupList(ctx context.Context, name string) ([]igroupRecord, error) {

	query := url.Values{}
	query.Set("svm.name", c.config.SVM)
	query.Set("fields", "name,uuid,svm,initiators,os_type,protocol")
	if name != "" {
		query.Set("name", name)
	}

	var collection igroupCollection
	if _, err := c.invokeAPI(ctx, http.MethodGet, igroupsEndpoint, query, nil, &collection); err != nil {
		return nil, err
	}

	return collection.Records, nil
}

// IgroupGetByName returns the named igroup, or nil if no igroup matches.
func (c *RestClient) IgroupGetByName(ctx context.Context, name string) (*igroupRecord, error) {

	records, err := c.IgroupList(ctx, name)
	if err != nil {
		return nil, err
	}

	for i := range records {
		if records[i].Name == name {
			return &records[i], nil
		}
	}
	return nil, nil
}

// IgroupCreate creates an initiator group
func (c *RestClient) IgroupCreate(ctx context.Context, spec IgroupCreateSpec) error {

	record := igroupRecord{
		Name:   spec.Name,
		OsType: spec.OsType,
		SVM:    &restReference{Name: c.config.SVM},
	}
	if spec.InitiatorGroupType != "" {
		record.Protocol = spec.InitiatorGroupType
	}
	if spec.BindPortset != "" {
		record.Portset = &restReference{Name: spec.BindPortset}
	}
	for _, initiator := range spec.Initiators {
		record.Initiators = append(record.Initiators, restReference{Name: initiator})
	}

	_, err := c.invokeAPI(ctx, http.MethodPost, igroupsEndpoint, nil, record, nil)
	return err
}

// IgroupModify updates attributes of the igroup with the supplied uuid
func (c *RestClient) IgroupModify(ctx context.Context, uuid string, body map[string]string) error {
	_, err := c.invokeAPI(ctx, http.MethodPatch, igroupsEndpoint+"/"+uuid, nil, body, nil)
	return err
}

// IgroupDelete deletes the igroup with the supplied uuid
func (c *RestClient) IgroupDelete(ctx context.Context, uuid string, allowDeleteWhileMapped bool) error {

	var query url.Values
	if allowDeleteWhileMapped {
		query = url.Values{}
		query.Set("allow_delete_while_mapped", "true")
	}

	_, err := c.invokeAPI(ctx, http.MethodDelete, igroupsEndpoint+"/"+uuid, query, nil, nil)
	return err
}

// IgroupAddInitiators adds the supplied initiators to the igroup with the supplied uuid
func (c *RestClient) IgroupAddInitiators(ctx context.Context, uuid string, initiators []string) error {

	if len(initiators) == 0 {
		return nil
	}

	var body struct {
		Records []restReference `json:"records"`
	}
	for _, initiator := range initiators {
		body.Records = append(body.Records, restReference{Name: initiator})
	}

	_, err := c.invokeAPI(ctx, http.MethodPost, igroupsEndpoint+"/"+uuid+"/initiators", nil, body, nil)
	return err
}

// IgroupRemoveInitiator removes a single initiator from the igroup with the supplied uuid
func (c *RestClient) IgroupRemoveInitiator(ctx context.Context, uuid, initiator string) error {
	endpoint := igroupsEndpoint + "/" + uuid + "/initiators/" + initiator
	_, err := c.invokeAPI(ctx, http.MethodDelete, endpoint, nil, nil, nil)
	return err
}

// IGROUP operations END
/////////////////////////////////////////////////////////////////////////////
