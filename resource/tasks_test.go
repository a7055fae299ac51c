// Copyright 2026 NetApp, Inc. All Rights Reserved.

package resource

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
)

const goodTasksYAML = `---
tasks:
  - name: web tier igroup
    kind: fake
    spec:
      name: igroup1
      state: present
  - name: second
    kind: fake
    spec:
      name: igroup2
`

func writeFile(t *testing.T, fs afero.Fs, path, contents string) {
	t.Helper()
	assert.NoError(t, afero.WriteFile(fs, path, []byte(contents), 0o600))
}

func TestLoadDocument(t *testing.T) {

	fs := afero.NewMemMapFs()
	writeFile(t, fs, "/tasks.yaml", goodTasksYAML)

	document, err := LoadDocument(fs, "/tasks.yaml")
	assert.NoError(t, err)
	assert.Len(t, document.Tasks, 2)
	assert.Equal(t, "web tier igroup", document.Tasks[0].Name)
	assert.Equal(t, "fake", document.Tasks[0].Kind)
	assert.Equal(t, "igroup1", document.Tasks[0].Spec["name"])
}

func TestLoadDocument_Missing(t *testing.T) {
	fs := afero.NewMemMapFs()
	_, err := LoadDocument(fs, "/nope.yaml")
	assert.Error(t, err)
}

func TestLoadDocument_BadYAML(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFile(t, fs, "/tasks.yaml", "tasks: [unclosed")
	_, err := LoadDocument(fs, "/tasks.yaml")
	assert.Error(t, err)
}

func TestLoadDocument_Invalid(t *testing.T) {

	tests := []struct {
		description string
		yaml        string
		expectedErr string
	}{
		{"empty document", "tasks: []", "no tasks defined"},
		{
			"missing name",
			"tasks:\n  - kind: fake\n    spec: {name: x}",
			"task 1 has no name",
		},
		{
			"missing kind",
			"tasks:\n  - name: t1\n    spec: {name: x}",
			"task 1 has no kind",
		},
		{
			"unknown kind",
			"tasks:\n  - name: t1\n    kind: solidfire_volume\n    spec: {name: x}",
			"unknown kind 'solidfire_volume'",
		},
	}

	for _, test := range tests {
		fs := afero.NewMemMapFs()
		writeFile(t, fs, "/tasks.yaml", test.yaml)
		_, err := LoadDocument(fs, "/tasks.yaml")
		assert.Error(t, err, test.description)
		assert.Contains(t, err.Error(), test.expectedErr, test.description)
	}
}

func TestTaskSpecDecode(t *testing.T) {

	spec := TaskSpec{
		"name":       "igroup1",
		"initiators": []any{"iqn.1994-05.com.redhat:a"},
		"force":      true,
	}

	var params struct {
		Name       string   `json:"name"`
		Initiators []string `json:"initiators"`
		Force      bool     `json:"force"`
	}

	assert.NoError(t, spec.Decode(&params))
	assert.Equal(t, "igroup1", params.Name)
	assert.Equal(t, []string{"iqn.1994-05.com.redhat:a"}, params.Initiators)
	assert.True(t, params.Force)
}
