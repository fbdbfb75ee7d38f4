// Package types provides type definitions for structured data used throughout the skilltree system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// RequirementKind discriminates the requirement variants.
type RequirementKind string

// Requirement kinds. HAS/MIN/EDU are hard gates; FLAG is a soft preference.
const (
	ReqHas  RequirementKind = "has"
	ReqMin  RequirementKind = "min"
	ReqEdu  RequirementKind = "edu"
	ReqFlag RequirementKind = "flag"
)

// Requirement is a declarative gate attached to a graph node, evaluated
// against a Profile. It is a tagged union: Kind selects which of the
// remaining fields are meaningful. Declaration order on a node is
// significant during evaluation.
type Requirement struct {
	Kind RequirementKind `json:"kind"`

	// HAS
	Credential string `json:"credential,omitempty"`

	// MIN
	Field NumericField `json:"field,omitempty"`
	Min   float64      `json:"min,omitempty"`

	// EDU
	Level EducationLevel `json:"level,omitempty"`

	// FLAG
	Flag   FlagField `json:"flag,omitempty"`
	MustBe bool      `json:"must_be,omitempty"`
}

// Has builds a credential requirement: the profile must hold credentialID.
func Has(credentialID string) Requirement {
	return Requirement{Kind: ReqHas, Credential: credentialID}
}

// Min builds a numeric threshold requirement: field must be >= minimum.
func Min(field NumericField, minimum float64) Requirement {
	return Requirement{Kind: ReqMin, Field: field, Min: minimum}
}

// Edu builds an education floor requirement: profile rank must be >= level.
func Edu(level EducationLevel) Requirement {
	return Requirement{Kind: ReqEdu, Level: level}
}

// Flag builds a soft preference requirement: field should equal mustBe.
// A mismatch downgrades the verdict to RISK but never locks the node.
func Flag(field FlagField, mustBe bool) Requirement {
	return Requirement{Kind: ReqFlag, Flag: field, MustBe: mustBe}
}
