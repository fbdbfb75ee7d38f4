// Package eval implements the node eligibility evaluation engine: a
// rule-based evaluator mapping a user profile against the declarative
// requirements attached to graph nodes.
package eval

import (
	"fmt"
	"strconv"

	"github.com/jonathan/skilltree/internal/types"
)

// Node is a graph node annotated with its evaluation verdict. This is what
// the filter layer and the rendering surface consume.
type Node struct {
	types.GraphNode
	Result types.EvalResult `json:"result"`
}

// Evaluate computes the eligibility verdict for a requirement list.
//
// Requirements are processed in declaration order. Hard requirements
// (HAS, MIN, EDU) short-circuit: the first failure returns LOCKED with
// that single failure as the only reason, and later requirements are
// never evaluated. Soft requirements (FLAG) never lock; every mismatch
// accumulates a reason and downgrades the final verdict to RISK.
// An empty requirement list yields INFO with no reasons.
func Evaluate(reqs []types.Requirement, p *types.Profile) types.EvalResult {
	if len(reqs) == 0 {
		return types.EvalResult{Status: types.StatusInfo, Reasons: []string{}}
	}

	risk := false
	reasons := []string{}

	for _, r := range reqs {
		switch r.Kind {
		case types.ReqHas:
			if !p.HasCredential(r.Credential) {
				return locked(fmt.Sprintf("Missing credential: %s", r.Credential))
			}
			reasons = append(reasons, fmt.Sprintf("Credential held: %s", r.Credential))

		case types.ReqMin:
			actual := p.NumericValue(r.Field)
			if actual < r.Min {
				return locked(fmt.Sprintf("%s %s is below the required %s",
					r.Field.Label(), formatNumber(r.Field, actual), formatNumber(r.Field, r.Min)))
			}
			reasons = append(reasons, fmt.Sprintf("%s %s meets the required %s",
				r.Field.Label(), formatNumber(r.Field, actual), formatNumber(r.Field, r.Min)))

		case types.ReqEdu:
			if p.Education < r.Level {
				return locked(fmt.Sprintf("Requires %s (currently: %s)",
					r.Level.Label(), p.Education.Label()))
			}
			reasons = append(reasons, fmt.Sprintf("Education requirement met: %s", r.Level.Label()))

		case types.ReqFlag:
			if p.FlagValue(r.Flag) != r.MustBe {
				risk = true
				reasons = append(reasons, fmt.Sprintf("Preference mismatch: %s", r.Flag.Label()))
			} else {
				reasons = append(reasons, fmt.Sprintf("Preference match: %s", r.Flag.Label()))
			}
		}
	}

	status := types.StatusEligible
	if risk {
		status = types.StatusRisk
	}
	return types.EvalResult{Status: status, Reasons: reasons}
}

// EvaluateNode evaluates a single node, applying the structural-kind
// exemption: root, hub, category, and resource nodes are informational
// by policy regardless of any attached requirements.
func EvaluateNode(n *types.GraphNode, p *types.Profile) types.EvalResult {
	if n.Kind.Structural() {
		return types.EvalResult{Status: types.StatusInfo, Reasons: []string{}}
	}
	return Evaluate(n.Requirements, p)
}

// Annotate evaluates every node in the list against the profile.
func Annotate(nodes []types.GraphNode, p *types.Profile) []Node {
	annotated := make([]Node, len(nodes))
	for i := range nodes {
		annotated[i] = Node{
			GraphNode: nodes[i],
			Result:    EvaluateNode(&nodes[i], p),
		}
	}
	return annotated
}

func locked(reason string) types.EvalResult {
	return types.EvalResult{Status: types.StatusLocked, Reasons: []string{reason}}
}

// formatNumber renders GPA values with two decimals and integer gates
// (credit score) without a fractional part.
func formatNumber(f types.NumericField, v float64) string {
	if f == types.FieldCreditScore {
		return strconv.Itoa(int(v))
	}
	return strconv.FormatFloat(v, 'f', 2, 64)
}
