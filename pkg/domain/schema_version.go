package domain

import (
	"fmt"
)

// SchemaVersion pins the quiz schema revision a document was written against.
// This is a domain primitive that enforces validity at parse time; unrecognized
// versions are rejected, never coerced.
type SchemaVersion string

// Supported schema versions.
const (
	SchemaVersionV1 SchemaVersion = "1.0"
	// Future versions: SchemaVersionV2 SchemaVersion = "2.0"
)

// CurrentSchemaVersion is stamped onto documents that omit a version.
const CurrentSchemaVersion = SchemaVersionV1

// versionOrder defines the ordering of versions for migration checks.
// Higher numbers represent newer revisions.
var versionOrder = map[SchemaVersion]int{
	SchemaVersionV1: 1,
}

// ParseSchemaVersion validates and returns a SchemaVersion. An empty input
// defaults to the current version; an unknown version is an error.
func ParseSchemaVersion(s string) (SchemaVersion, error) {
	if s == "" {
		return CurrentSchemaVersion, nil
	}
	v := SchemaVersion(s)
	if _, ok := versionOrder[v]; !ok {
		return "", fmt.Errorf("unsupported schema version: %s", s)
	}
	return v, nil
}

// String returns the string representation of the schema version.
func (v SchemaVersion) String() string { return string(v) }

// IsNil returns true if the schema version is empty.
func (v SchemaVersion) IsNil() bool { return v == "" }

// IsAtLeast returns true if this version is >= other. Used when a newer
// reader loads a document written by an older schema revision.
func (v SchemaVersion) IsAtLeast(other SchemaVersion) bool {
	thisOrder, thisOK := versionOrder[v]
	otherOrder, otherOK := versionOrder[other]
	if !thisOK {
		return false
	}
	if !otherOK {
		return true
	}
	return thisOrder >= otherOrder
}
