// Copyright 2026 NetApp, Inc. All Rights Reserved.

package azgo

import (
	"bytes"
	"crypto/tls"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"
	"time"

	"github.com/netapp/converge/config"
	log "github.com/sirupsen/logrus"
)

type ZAPIRequest interface {
	ToXML() (string, error)
}

type ZapiRunner struct {
	ManagementLIF   string
	SVM             string
	Username        string
	Password        string
	Secure          bool
	OntapVersion    string
	DebugTraceFlags map[string]bool // Example: {"api":false, "method":true}
}

// SendZapi sends the provided ZAPIRequest to the Ontap system
func (o *ZapiRunner) SendZapi(r ZAPIRequest) (*http.Response, error) {

	if o.DebugTraceFlags["method"] {
		fields := log.Fields{"Method": "SendZapi", "Type": "ZapiRunner"}
		log.WithFields(fields).Debug(">>>> SendZapi")
		defer log.WithFields(fields).Debug("<<<< SendZapi")
	}

	zapiCommand, err := r.ToXML()
	if err != nil {
		return nil, err
	}

	var s = ""
	if o.SVM == "" {
		s = fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
        <netapp xmlns="http://www.netapp.com/filer/admin" version="1.21">
            %s
        </netapp>`, zapiCommand)
	} else {
		s = fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
        <netapp xmlns="http://www.netapp.com/filer/admin" version="1.21" %s>
            %s
        </netapp>`, "vfiler=\""+o.SVM+"\"", zapiCommand)
	}
	if o.DebugTraceFlags["api"] {
		log.Debugf("sending to '%s' xml: \n%s", o.ManagementLIF, s)
	}

	url := "http://" + o.ManagementLIF + "/servlets/netapp.servlets.admin.XMLrequest_filer"
	if o.Secure {
		url = "https://" + o.ManagementLIF + "/servlets/netapp.servlets.admin.XMLrequest_filer"
	}
	if o.DebugTraceFlags["api"] {
		log.Debugf("URL:> %s", url)
	}

	b := []byte(s)
	req, err := http.NewRequest("POST", url, bytes.NewBuffer(b))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/xml")
	req.SetBasicAuth(o.Username, o.Password)

	tr := &http.Transport{
		TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
	}

	client := &http.Client{
		Transport: tr,
		Timeout:   time.Duration(config.StorageAPITimeoutSeconds * time.Second),
	}
	response, err := client.Do(req)
	if err != nil {
		return nil, err
	} else if response.StatusCode == 401 {
		return nil, errors.New("response code 401 (Unauthorized): incorrect or missing credentials")
	}

	if o.DebugTraceFlags["api"] {
		log.Debugf("response Status: %s", response.Status)
		log.Debugf("response Headers: %s", response.Header)
	}

	return response, err
}

// invoke sends the request to the filer and decodes the response envelope into a
// value of the response type. A response body that fails to unmarshal is logged
// and tolerated; the caller sees the zero result and checks its status attributes.
func invoke[R any](zr *ZapiRunner, o ZAPIRequest, requestType string) (R, error) {

	var n R

	if zr.DebugTraceFlags["method"] {
		fields := log.Fields{"Method": "ExecuteUsing", "Type": requestType}
		log.WithFields(fields).Debug(">>>> ExecuteUsing")
		defer log.WithFields(fields).Debug("<<<< ExecuteUsing")
	}

	resp, err := zr.SendZapi(o)
	if err != nil {
		log.Errorf("API invocation failed. %v", err.Error())
		return n, err
	}
	defer resp.Body.Close()
	body, readErr := io.ReadAll(resp.Body)
	if readErr != nil {
		log.Errorf("Error reading response body. %v", readErr.Error())
		return n, readErr
	}
	if zr.DebugTraceFlags["api"] {
		log.Debugf("response Body:\n%s", string(body))
	}

	if unmarshalErr := xml.Unmarshal(body, &n); unmarshalErr != nil {
		log.WithField("body", string(body)).Warnf("Error unmarshaling response body. %v", unmarshalErr.Error())
	}
	return n, nil
}

// ToString returns a string representation of any ZAPI object's fields, one
// "<xml-tag>: <value>" pair per line, with nil pointer fields rendered as "nil".
func ToString(val reflect.Value) string {

	val = reflect.Indirect(val)
	if val.Kind() != reflect.Struct {
		return fmt.Sprintf("%v", val)
	}

	var buffer bytes.Buffer
	for i := 0; i < val.NumField(); i++ {

		structField := val.Type().Field(i)
		if structField.Type == reflect.TypeOf(xml.Name{}) {
			continue
		}

		name := structField.Name
		if tag, ok := structField.Tag.Lookup("xml"); ok && tag != "" {
			name = strings.Split(tag, ",")[0]
		}

		fieldValue := val.Field(i)
		if fieldValue.Kind() == reflect.Ptr {
			if fieldValue.IsNil() {
				buffer.WriteString(fmt.Sprintf("%s: nil\n", name))
				continue
			}
			fieldValue = reflect.Indirect(fieldValue)
		}
		buffer.WriteString(fmt.Sprintf("%s: %v\n", name, fieldValue.Interface()))
	}
	return buffer.String()
}
