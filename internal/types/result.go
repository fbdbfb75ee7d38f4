// Package types provides type definitions for structured data used throughout the skilltree system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Status is the per-node eligibility verdict.
type Status string

// Eligibility verdicts.
const (
	StatusEligible Status = "eligible"
	StatusLocked   Status = "locked"
	StatusRisk     Status = "risk"
	StatusInfo     Status = "info"
)

// EvalResult is the output of evaluating a node's requirements against a
// profile. Reasons are ordered: for a LOCKED verdict the list holds exactly
// the first failing hard requirement. Results are never persisted; they are
// recomputed whenever the profile or the graph changes.
type EvalResult struct {
	Status  Status   `json:"status"`
	Reasons []string `json:"reasons"`
}
