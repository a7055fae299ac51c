// Copyright 2026 NetApp, Inc. All Rights Reserved.

// Package resource defines the units of convergence: a module per resource kind,
// constructed from a task document, that plans against observed backend state and
// applies the minimal set of changes.
package resource

import (
	"context"
	"fmt"
	"sort"

	. "github.com/netapp/converge/logging"
	"github.com/netapp/converge/reconcile"
)

// Module is one reconcilable resource.  Plan inspects the backend and decides what
// to do; Apply executes a plan produced by the same instance.
type Module interface {
	Kind() string
	Name() string
	Validate(ctx context.Context) error
	Plan(ctx context.Context) (*reconcile.Plan, error)
	Apply(ctx context.Context, plan *reconcile.Plan) (*Result, error)
}

// Result reports what one task did, or would do in check mode.
type Result struct {
	Task     string                         `json:"task,omitempty"`
	Kind     string                         `json:"kind"`
	Name     string                         `json:"name"`
	Action   reconcile.Action               `json:"action"`
	Changed  bool                           `json:"changed"`
	Modified map[string]reconcile.FieldDiff `json:"modified,omitempty"`
	Output   map[string]any                 `json:"output,omitempty"`
}

// Factory builds a module of one kind from a task's spec.
type Factory func(ctx context.Context, spec TaskSpec, backends *Backends) (Module, error)

var registry = map[string]Factory{}

// Register makes a module kind available to task documents.  It is called from
// module package init functions and panics on a duplicate kind.
func Register(kind string, factory Factory) {
	if factory == nil {
		panic("resource: Register factory is nil")
	}
	if _, dup := registry[kind]; dup {
		panic("resource: Register called twice for kind " + kind)
	}
	registry[kind] = factory
}

// New builds a module for one task.
func New(ctx context.Context, kind string, spec TaskSpec, backends *Backends) (Module, error) {
	factory, ok := registry[kind]
	if !ok {
		return nil, fmt.Errorf("unknown resource kind '%s'; known kinds: %v", kind, Kinds())
	}
	return factory(ctx, spec, backends)
}

// Kinds returns the registered resource kinds, sorted.
func Kinds() []string {
	kinds := make([]string, 0, len(registry))
	for kind := range registry {
		kinds = append(kinds, kind)
	}
	sort.Strings(kinds)
	return kinds
}

// Run converges the tasks of a document in order.  In check mode no mutating call
// is made; each result reports what an apply would have done.  The first failing
// task stops the run, and the results accumulated so far are returned alongside
// the error.
func Run(ctx context.Context, document *Document, backends *Backends, check bool) ([]*Result, error) {

	results := make([]*Result, 0, len(document.Tasks))

	for _, task := range document.Tasks {

		fields := LogFields{"task": task.Name, "kind": task.Kind}
		Logc(ctx).WithFields(fields).Debug("Converging task.")

		module, err := New(ctx, task.Kind, task.Spec, backends)
		if err != nil {
			return results, fmt.Errorf("task '%s': %v", task.Name, err)
		}

		if err = module.Validate(ctx); err != nil {
			return results, fmt.Errorf("task '%s': %v", task.Name, err)
		}

		plan, err := module.Plan(ctx)
		if err != nil {
			return results, fmt.Errorf("task '%s': %v", task.Name, err)
		}

		var result *Result
		if check || !plan.Changed() {
			result = &Result{
				Kind:     module.Kind(),
				Name:     module.Name(),
				Action:   plan.Action,
				Changed:  plan.Changed(),
				Modified: plan.Modified,
			}
		} else {
			result, err = module.Apply(ctx, plan)
			if err != nil {
				return results, fmt.Errorf("task '%s': %v", task.Name, err)
			}
		}

		result.Task = task.Name
		results = append(results, result)

		Logc(ctx).WithFields(fields).WithFields(LogFields{
			"action":  result.Action,
			"changed": result.Changed,
		}).Info("Task converged.")
	}

	return results, nil
}
