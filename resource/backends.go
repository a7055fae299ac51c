// Copyright 2026 NetApp, Inc. All Rights Reserved.

package resource

import (
	"bytes"
	"fmt"

	"github.com/spf13/afero"
	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"

	"github.com/netapp/converge/config"
	"github.com/netapp/converge/utils"
	"github.com/netapp/converge/utils/errors"
)

const (
	UseRESTAuto   = "auto"
	UseRESTAlways = "always"
	UseRESTNever  = "never"
)

// OntapBackend holds the connection settings for one ONTAP cluster or SVM.
type OntapBackend struct {
	ManagementLIF   string          `yaml:"management_lif"`
	SVM             string          `yaml:"svm"`
	Username        string          `yaml:"username"`
	Password        string          `yaml:"password"`
	Secure          bool            `yaml:"secure"`
	UseREST         string          `yaml:"use_rest"`
	DebugTraceFlags map[string]bool `yaml:"debug_trace_flags"`
}

// String obscures the credentials.
func (b *OntapBackend) String() string {
	return utils.ToStringRedacted(b, []string{"Username", "Password"}, nil)
}

func (b *OntapBackend) GoString() string {
	return b.String()
}

func (b *OntapBackend) validate() error {
	var err error
	if b.ManagementLIF == "" {
		err = multierr.Append(err, fmt.Errorf("ontap backend requires management_lif"))
	}
	if b.SVM == "" {
		err = multierr.Append(err, fmt.Errorf("ontap backend requires svm"))
	}
	if b.Username == "" {
		err = multierr.Append(err, fmt.Errorf("ontap backend requires username"))
	}
	if b.Password == "" {
		err = multierr.Append(err, fmt.Errorf("ontap backend requires password"))
	}
	switch b.UseREST {
	case "", UseRESTAuto, UseRESTAlways, UseRESTNever:
	default:
		err = multierr.Append(err,
			fmt.Errorf("ontap backend use_rest must be one of auto, always, never; got '%s'", b.UseREST))
	}
	return err
}

// AzureBackend holds the credentials and default scope for Azure NetApp Files.
// Environment selects the cloud to target and defaults to the public cloud.
type AzureBackend struct {
	SubscriptionID string `yaml:"subscription_id"`
	TenantID       string `yaml:"tenant_id"`
	ClientID       string `yaml:"client_id"`
	ClientSecret   string `yaml:"client_secret"`
	Environment    string `yaml:"environment"`
	Location       string `yaml:"location"`
	ResourceGroup  string `yaml:"resource_group"`
	NetappAccount  string `yaml:"netapp_account"`
	PoolName       string `yaml:"pool_name"`
}

// String obscures the credentials.
func (b *AzureBackend) String() string {
	return utils.ToStringRedacted(b, []string{"ClientID", "ClientSecret"}, nil)
}

func (b *AzureBackend) GoString() string {
	return b.String()
}

func (b *AzureBackend) validate() error {
	var err error
	if b.SubscriptionID == "" {
		err = multierr.Append(err, fmt.Errorf("azure backend requires subscription_id"))
	}
	// A client secret implies service principal auth, which needs the full triple.
	if b.ClientSecret != "" {
		if b.TenantID == "" {
			err = multierr.Append(err, fmt.Errorf("azure backend requires tenant_id with client_secret"))
		}
		if b.ClientID == "" {
			err = multierr.Append(err, fmt.Errorf("azure backend requires client_id with client_secret"))
		}
	}
	if b.Environment != "" && !config.IsValidAzureEnvironment(b.Environment) {
		err = multierr.Append(err, fmt.Errorf("azure backend environment must be one of %v; got '%s'",
			config.GetValidAzureEnvironmentNames(), b.Environment))
	}
	return err
}

// Backends is the backend connection file.  Only the backends named by the loaded
// tasks need to be present.
type Backends struct {
	Ontap *OntapBackend `yaml:"ontap"`
	Azure *AzureBackend `yaml:"azure"`
}

// LoadBackends reads and validates the backend connection file.  Unknown keys are
// rejected so that a misspelled credential never silently disappears.
func LoadBackends(fs afero.Fs, path string) (*Backends, error) {

	yamlBytes, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("could not read backends file %s: %v", path, err)
	}

	backends := &Backends{}
	decoder := yaml.NewDecoder(bytes.NewReader(yamlBytes))
	decoder.KnownFields(true)
	if err = decoder.Decode(backends); err != nil {
		return nil, errors.WrapUnsupportedConfigError(
			fmt.Errorf("could not parse backends file %s: %v", path, err))
	}

	var verr error
	if backends.Ontap != nil {
		verr = multierr.Append(verr, backends.Ontap.validate())
	}
	if backends.Azure != nil {
		verr = multierr.Append(verr, backends.Azure.validate())
	}
	if verr != nil {
		return nil, fmt.Errorf("invalid backends file %s: %v", path, verr)
	}

	return backends, nil
}
