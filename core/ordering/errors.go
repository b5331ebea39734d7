package ordering

import (
	"errors"
	"fmt"
	"strings"
)

// Kind classifies reconciliation failures. Handlers map kinds to HTTP
// statuses; the kind string itself is part of the API surface.
type Kind string

const (
	// KindMalformedInput: an index or id is not well formed (negative
	// index, empty child id, self reference).
	KindMalformedInput Kind = "malformed_input"
	// KindMissingIndexes: the declared indexes, once sorted, are not
	// exactly 0..N-1.
	KindMissingIndexes Kind = "missing_indexes"
	// KindDuplicateChild: the same child appears more than once in a
	// replace request.
	KindDuplicateChild Kind = "duplicate_child"
	// KindEmptyReplace: a replace with zero entries was submitted without
	// explicit confirmation.
	KindEmptyReplace Kind = "empty_replace_requires_confirmation"
	// KindNotFound: the referenced parent, child or relation does not
	// exist.
	KindNotFound Kind = "not_found"
	// KindReconciliationFailed: the transactional write failed (constraint
	// violation, deadlock, timeout, concurrent modification). Retryable
	// with fresh state.
	KindReconciliationFailed Kind = "reconciliation_failed"
)

// Error is the failure type surfaced by the Reconciler. Besides the Kind it
// carries the detail a caller needs to repair the submitted ordering.
type Error struct {
	Kind Kind `json:"kind"`

	// Missing, Duplicates and OutOfRange describe index problems
	// (KindMissingIndexes). OutOfRange lists declared indexes >= N.
	Missing    []int `json:"missing,omitempty"`
	Duplicates []int `json:"duplicates,omitempty"`
	OutOfRange []int `json:"out_of_range,omitempty"`

	// Children lists the offending child ids (KindDuplicateChild).
	Children []string `json:"children,omitempty"`

	// Parent and Child identify the relation for KindNotFound.
	Parent string `json:"parent,omitempty"`
	Child  string `json:"child,omitempty"`

	msg   string
	cause error
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindMalformedInput:
		return "malformed input: " + e.msg
	case KindMissingIndexes:
		parts := make([]string, 0, 3)
		if len(e.Missing) > 0 {
			parts = append(parts, fmt.Sprintf("missing %v", e.Missing))
		}
		if len(e.Duplicates) > 0 {
			parts = append(parts, fmt.Sprintf("duplicated %v", e.Duplicates))
		}
		if len(e.OutOfRange) > 0 {
			parts = append(parts, fmt.Sprintf("out of range %v", e.OutOfRange))
		}
		return "declared indexes are not exactly 0..N-1: " + strings.Join(parts, ", ")
	case KindDuplicateChild:
		return fmt.Sprintf("duplicate children in proposed order: %v", e.Children)
	case KindEmptyReplace:
		return "empty replace requires explicit confirmation"
	case KindNotFound:
		if e.Child != "" {
			return fmt.Sprintf("not found: child %q", e.Child)
		}
		return fmt.Sprintf("not found: %q", e.Parent)
	case KindReconciliationFailed:
		return fmt.Sprintf("reconciliation failed: %v", e.cause)
	}
	return e.msg
}

func (e *Error) Unwrap() error { return e.cause }

// Retryable reports whether retrying the operation with fresh state may
// succeed. Only store-level failures are retryable; validation failures are
// deterministic.
func (e *Error) Retryable() bool { return e.Kind == KindReconciliationFailed }

// KindOf returns the failure kind of err, or the empty string when err is
// not an ordering error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

func newMalformed(format string, args ...any) *Error {
	return &Error{Kind: KindMalformedInput, msg: fmt.Sprintf(format, args...)}
}

func newMissingIndexes(missing, duplicates, outOfRange []int) *Error {
	return &Error{Kind: KindMissingIndexes, Missing: missing, Duplicates: duplicates, OutOfRange: outOfRange}
}

func newDuplicateChild(children []string) *Error {
	return &Error{Kind: KindDuplicateChild, Children: children}
}

func newEmptyReplace() *Error {
	return &Error{Kind: KindEmptyReplace}
}

// NewNotFound builds a KindNotFound error. Exported so adapters can report
// missing domain entities (topic, section, class) through the same taxonomy
// before invoking the reconciler.
func NewNotFound(parent, child string) *Error {
	return &Error{Kind: KindNotFound, Parent: parent, Child: child}
}

// wrapStoreErr turns a store failure into KindReconciliationFailed,
// passing already-classified errors through untouched.
func wrapStoreErr(err error) error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return err
	}
	return &Error{Kind: KindReconciliationFailed, cause: err}
}
