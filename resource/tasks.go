// Copyright 2026 NetApp, Inc. All Rights Reserved.

package resource

import (
	"encoding/json"
	"fmt"

	"github.com/ghodss/yaml"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"go.uber.org/multierr"

	"github.com/netapp/converge/config"
)

// TaskSpec holds a task's resource attributes before they are decoded into a
// module's own parameter struct.
type TaskSpec map[string]any

// Task names one resource to converge.
type Task struct {
	Name string   `json:"name"`
	Kind string   `json:"kind"`
	Spec TaskSpec `json:"spec"`
}

// Document is an ordered list of tasks, as read from a task file.
type Document struct {
	Tasks []Task `json:"tasks"`
}

// Canonicalize returns a copy of the spec with alias keys folded onto their
// canonical names.  A canonical key already present wins over its alias.
func (s TaskSpec) Canonicalize(aliases map[string]string) TaskSpec {
	out := make(TaskSpec, len(s))
	for key, value := range s {
		canonical, isAlias := aliases[key]
		if !isAlias {
			out[key] = value
			continue
		}
		if _, exists := s[canonical]; !exists {
			out[canonical] = value
		}
	}
	return out
}

// Decode unmarshals a task spec into a module's parameter struct.  Specs travel
// as YAML but are decoded through JSON so parameter structs carry JSON tags.
func (s TaskSpec) Decode(params any) error {
	bytes, err := json.Marshal(s)
	if err != nil {
		return err
	}
	return json.Unmarshal(bytes, params)
}

// LoadDocument reads and validates a task file.
func LoadDocument(fs afero.Fs, path string) (*Document, error) {

	info, err := fs.Stat(path)
	if err != nil {
		return nil, errors.Wrapf(err, "could not read task file %s", path)
	}
	if info.Size() > config.MaxTaskFileSize {
		return nil, fmt.Errorf("task file %s exceeds %d bytes", path, config.MaxTaskFileSize)
	}

	yamlBytes, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, errors.Wrapf(err, "could not read task file %s", path)
	}

	jsonBytes, err := yaml.YAMLToJSON(yamlBytes)
	if err != nil {
		return nil, errors.Wrapf(err, "could not parse task file %s", path)
	}

	document := &Document{}
	if err = json.Unmarshal(jsonBytes, document); err != nil {
		return nil, errors.Wrapf(err, "could not parse task file %s", path)
	}

	if err = document.Validate(); err != nil {
		return nil, errors.Wrapf(err, "invalid task file %s", path)
	}

	return document, nil
}

// Validate checks the document shape without touching any backend.
func (d *Document) Validate() error {

	if len(d.Tasks) == 0 {
		return fmt.Errorf("no tasks defined")
	}

	var err error
	for i, task := range d.Tasks {
		if task.Name == "" {
			err = multierr.Append(err, fmt.Errorf("task %d has no name", i+1))
		}
		if task.Kind == "" {
			err = multierr.Append(err, fmt.Errorf("task %d has no kind", i+1))
		} else if _, known := registry[task.Kind]; !known {
			err = multierr.Append(err,
				fmt.Errorf("task %d has unknown kind '%s'; known kinds: %v", i+1, task.Kind, Kinds()))
		}
	}
	return err
}
