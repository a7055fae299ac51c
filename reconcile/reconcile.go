// Copyright 2026 NetApp, Inc. All Rights Reserved.

// Package reconcile decides how to converge a resource's observed state with the
// state a task declares for it.  Resource modules fetch the observed attributes,
// hand both records to this package, and receive back the action to run and the
// exact set of fields to change.  Comparison is normalized on both sides so that
// a second run with nothing left to do always reports no change.
package reconcile

import (
	"github.com/netapp/converge/config"
	"github.com/netapp/converge/utils/errors"
)

type Action string

const (
	ActionCreate Action = "create"
	ActionDelete Action = "delete"
	ActionModify Action = "modify"
	ActionNone   Action = "none"
)

// Attributes is a resource state record.  A nil record means the resource does
// not exist on the backend.
type Attributes map[string]any

// FieldDiff carries the original observed and desired values of one changed field.
type FieldDiff struct {
	Old any `json:"old"`
	New any `json:"new"`
}

// Plan is the outcome of planning one task.
type Plan struct {
	Action   Action               `json:"action"`
	Rename   bool                 `json:"rename,omitempty"`
	Modified map[string]FieldDiff `json:"modified,omitempty"`
}

func (p *Plan) Changed() bool {
	return p.Action != ActionNone
}

// ResolveAction folds a create/delete decision, a rename decision and a modify set
// into the single action a plan reports.  A rename is a modification of the existing
// resource, never a create.
func ResolveAction(cd Action, rename bool, modified map[string]FieldDiff) Action {
	if rename {
		return ActionModify
	}
	if cd != ActionNone {
		return cd
	}
	if len(modified) > 0 {
		return ActionModify
	}
	return ActionNone
}

// GetCDAction decides between create, delete and no action.  Field-level drift is
// decided separately by GetModifiedAttributes.
func GetCDAction(observed Attributes, desiredState config.State) Action {
	if desiredState == "" {
		desiredState = config.StateDefault
	}
	if observed == nil && desiredState == config.StateAbsent {
		return ActionNone
	}
	if observed != nil && desiredState == config.StatePresent {
		return ActionNone
	}
	if observed != nil {
		return ActionDelete
	}
	return ActionCreate
}

// GetModifiedAttributes compares the observed record against the desired one and
// returns the fields that differ, keyed by attribute name, each carrying the
// original observed and desired values.  Only attributes present in both records
// are considered, and only a nil desired value means "leave alone"; an explicitly
// empty desired value, such as "", is a real value and diffs normally.  A nil
// observed record yields an empty map, so a create never doubles as a modify.
func GetModifiedAttributes(observed, desired Attributes, opts ...CompareOption) map[string]FieldDiff {

	modified := make(map[string]FieldDiff)
	if observed == nil {
		return modified
	}

	c := newComparer(opts...)

	for key, observedValue := range observed {
		desiredValue, ok := desired[key]
		if !ok || desiredValue == nil {
			continue
		}
		if !c.equal(key, observedValue, desiredValue) {
			modified[key] = FieldDiff{Old: observedValue, New: desiredValue}
		}
	}

	return modified
}

// IsRenameAction reports whether an absent resource should be produced by renaming
// an existing one rather than creating it.  It returns an error if neither the
// source nor the target exists, since there is then nothing to rename.
func IsRenameAction(fromObserved, observed Attributes) (bool, error) {
	if fromObserved == nil && observed == nil {
		return false, errors.NotFoundError("rename source does not exist")
	}
	if observed != nil {
		// target already exists, so no need to rename
		return false, nil
	}
	return true, nil
}

// Tracker accumulates the changed flag across the decisions taken for one task,
// mirroring how each decision marks the run changed as it is made.
type Tracker struct {
	changed bool
}

func (t *Tracker) Changed() bool {
	return t.changed
}

// MarkChanged records a change made outside the standard decisions.
func (t *Tracker) MarkChanged() {
	t.changed = true
}

func (t *Tracker) CDAction(observed Attributes, desiredState config.State) Action {
	action := GetCDAction(observed, desiredState)
	if action != ActionNone {
		t.changed = true
	}
	return action
}

func (t *Tracker) ModifiedAttributes(
	observed, desired Attributes, opts ...CompareOption,
) map[string]FieldDiff {
	modified := GetModifiedAttributes(observed, desired, opts...)
	if len(modified) > 0 {
		t.changed = true
	}
	return modified
}

func (t *Tracker) RenameAction(fromObserved, observed Attributes) (bool, error) {
	rename, err := IsRenameAction(fromObserved, observed)
	if err != nil {
		return false, err
	}
	if rename {
		t.changed = true
	}
	return rename, nil
}
