// Copyright 2026 NetApp, Inc. All Rights Reserved.

package resource

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/netapp/converge/reconcile"
)

// fakeModule converges nothing; it scripts Plan/Apply outcomes for Run tests.
type fakeModule struct {
	name        string
	plan        *reconcile.Plan
	planErr     error
	applyErr    error
	validateErr error
	applied     bool
}

func (f *fakeModule) Kind() string { return "fake" }
func (f *fakeModule) Name() string { return f.name }

func (f *fakeModule) Validate(context.Context) error { return f.validateErr }

func (f *fakeModule) Plan(context.Context) (*reconcile.Plan, error) {
	return f.plan, f.planErr
}

func (f *fakeModule) Apply(_ context.Context, plan *reconcile.Plan) (*Result, error) {
	if f.applyErr != nil {
		return nil, f.applyErr
	}
	f.applied = true
	return &Result{
		Kind:     f.Kind(),
		Name:     f.name,
		Action:   plan.Action,
		Changed:  plan.Changed(),
		Modified: plan.Modified,
		Output:   map[string]any{"applied": true},
	}, nil
}

var fakes map[string]*fakeModule

func init() {
	Register("fake", func(_ context.Context, spec TaskSpec, _ *Backends) (Module, error) {
		name, _ := spec["name"].(string)
		if name == "" {
			return nil, fmt.Errorf("fake module requires name")
		}
		module, ok := fakes[name]
		if !ok {
			return nil, fmt.Errorf("no scripted module named %s", name)
		}
		return module, nil
	})
}

func document(names ...string) *Document {
	doc := &Document{}
	for _, name := range names {
		doc.Tasks = append(doc.Tasks, Task{
			Name: "task-" + name,
			Kind: "fake",
			Spec: TaskSpec{"name": name},
		})
	}
	return doc
}

func TestRegister_Duplicate(t *testing.T) {
	assert.Panics(t, func() {
		Register("fake", func(context.Context, TaskSpec, *Backends) (Module, error) {
			return nil, nil
		})
	}, "duplicate kind must panic")

	assert.Panics(t, func() { Register("nil-factory", nil) }, "nil factory must panic")
}

func TestNew_UnknownKind(t *testing.T) {
	_, err := New(context.Background(), "no_such_kind", TaskSpec{}, nil)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unknown resource kind")
}

func TestKinds(t *testing.T) {
	assert.Contains(t, Kinds(), "fake")
}

func TestRun_AppliesChangedTasks(t *testing.T) {

	fakes = map[string]*fakeModule{
		"one": {name: "one", plan: &reconcile.Plan{Action: reconcile.ActionCreate}},
		"two": {name: "two", plan: &reconcile.Plan{Action: reconcile.ActionNone}},
	}

	results, err := Run(context.Background(), document("one", "two"), nil, false)
	assert.NoError(t, err)
	assert.Len(t, results, 2)

	assert.True(t, fakes["one"].applied, "changed task must be applied")
	assert.Equal(t, "task-one", results[0].Task)
	assert.Equal(t, reconcile.ActionCreate, results[0].Action)
	assert.True(t, results[0].Changed)

	assert.False(t, fakes["two"].applied, "no-op task must not be applied")
	assert.Equal(t, reconcile.ActionNone, results[1].Action)
	assert.False(t, results[1].Changed)
}

func TestRun_CheckModeNeverApplies(t *testing.T) {

	modified := map[string]reconcile.FieldDiff{"os_type": {Old: "linux", New: "aix"}}
	fakes = map[string]*fakeModule{
		"one": {name: "one", plan: &reconcile.Plan{Action: reconcile.ActionModify, Modified: modified}},
	}

	results, err := Run(context.Background(), document("one"), nil, true)
	assert.NoError(t, err)
	assert.Len(t, results, 1)

	assert.False(t, fakes["one"].applied, "check mode must not apply")
	assert.True(t, results[0].Changed, "check mode still reports the would-be change")
	assert.Equal(t, modified, results[0].Modified)
}

func TestRun_StopsAtFirstFailure(t *testing.T) {

	fakes = map[string]*fakeModule{
		"one":   {name: "one", plan: &reconcile.Plan{Action: reconcile.ActionCreate}},
		"two":   {name: "two", planErr: fmt.Errorf("igroup lookup failed")},
		"three": {name: "three", plan: &reconcile.Plan{Action: reconcile.ActionCreate}},
	}

	results, err := Run(context.Background(), document("one", "two", "three"), nil, false)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "task 'task-two'")
	assert.Len(t, results, 1, "results up to the failure are returned")
	assert.False(t, fakes["three"].applied, "tasks after the failure must not run")
}

func TestRun_ValidateFailureStopsTask(t *testing.T) {

	fakes = map[string]*fakeModule{
		"one": {name: "one", validateErr: fmt.Errorf("missing vserver")},
	}

	results, err := Run(context.Background(), document("one"), nil, false)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "missing vserver")
	assert.Empty(t, results)
}
