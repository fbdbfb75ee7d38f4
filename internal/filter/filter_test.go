package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/skilltree/internal/eval"
	"github.com/jonathan/skilltree/internal/types"
)

func annotated(id string, kind types.NodeKind, status types.Status, tags ...string) eval.Node {
	return eval.Node{
		GraphNode: types.GraphNode{ID: id, Kind: kind, Title: id, Tags: tags},
		Result:    types.EvalResult{Status: status, Reasons: []string{}},
	}
}

func sampleNodes() []eval.Node {
	return []eval.Node{
		annotated("it-security", types.KindCategory, types.StatusInfo),
		annotated("soc-analyst", types.KindCareer, types.StatusLocked, "it-security"),
		annotated("help-desk", types.KindCareer, types.StatusEligible, "it-security"),
		annotated("hvac-tech", types.KindCareer, types.StatusRisk, "skilled-trades"),
	}
}

func sampleEdges() []types.GraphEdge {
	return []types.GraphEdge{
		{ID: "e1", Source: "it-security", Target: "soc-analyst"},
		{ID: "e2", Source: "it-security", Target: "help-desk"},
		{ID: "e3", Source: "missing", Target: "help-desk"},
	}
}

func TestApply_NoFiltersShowsEverything(t *testing.T) {
	view := Apply(sampleNodes(), sampleEdges(), Query{ShowLocked: true})

	assert.Len(t, view.Nodes, 4)
	assert.Equal(t, Counts{Eligible: 1, Locked: 1, Risk: 1, Info: 1, Total: 4}, view.Counts)
}

func TestApply_TextQueryMatchesTitleSubtitleTags(t *testing.T) {
	nodes := []eval.Node{
		{
			GraphNode: types.GraphNode{
				ID: "a", Kind: types.KindCareer,
				Title: "SOC Analyst", Subtitle: "Security operations", Tags: []string{"it-security"},
			},
			Result: types.EvalResult{Status: types.StatusEligible},
		},
	}

	for _, q := range []string{"soc", "ANALYST", "operations", "it-sec"} {
		view := Apply(nodes, nil, Query{Text: q, ShowLocked: true})
		assert.Len(t, view.Nodes, 1, "query %q should match", q)
	}

	view := Apply(nodes, nil, Query{Text: "plumber", ShowLocked: true})
	assert.Empty(t, view.Nodes)
}

func TestApply_CategoryFilter(t *testing.T) {
	view := Apply(sampleNodes(), sampleEdges(), Query{Category: "it-security", ShowLocked: true})

	// Two tagged careers plus the category node itself (id match).
	require.Len(t, view.Nodes, 3)
	_, ok := view.Node("it-security")
	assert.True(t, ok, "clicking a category node filters by its own id")
	_, ok = view.Node("hvac-tech")
	assert.False(t, ok)
}

func TestApply_CategoryAll(t *testing.T) {
	all := Apply(sampleNodes(), sampleEdges(), Query{Category: CategoryAll, ShowLocked: true})
	unset := Apply(sampleNodes(), sampleEdges(), Query{ShowLocked: true})
	assert.Equal(t, unset, all)
}

func TestApply_LockGate(t *testing.T) {
	hidden := Apply(sampleNodes(), sampleEdges(), Query{ShowLocked: false})
	assert.Equal(t, 0, hidden.Counts.Locked)
	_, ok := hidden.Node("soc-analyst")
	assert.False(t, ok)

	shown := Apply(sampleNodes(), sampleEdges(), Query{ShowLocked: true})
	assert.Equal(t, 1, shown.Counts.Locked)
}

func TestApply_PredicatesAreConjunctive(t *testing.T) {
	// soc-analyst matches text and category but is locked.
	view := Apply(sampleNodes(), sampleEdges(), Query{
		Text:     "soc",
		Category: "it-security",
	})
	assert.Empty(t, view.Nodes)
}

func TestApply_EdgeVisibleOnlyWithBothEndpoints(t *testing.T) {
	view := Apply(sampleNodes(), sampleEdges(), Query{ShowLocked: true})

	ids := map[string]bool{}
	for _, e := range view.Edges {
		ids[e.ID] = true
	}
	assert.True(t, ids["e1"])
	assert.True(t, ids["e2"])
	assert.False(t, ids["e3"], "edge with a missing endpoint is never visible")

	// Hiding locked nodes drops the edge into them.
	view = Apply(sampleNodes(), sampleEdges(), Query{ShowLocked: false})
	ids = map[string]bool{}
	for _, e := range view.Edges {
		ids[e.ID] = true
	}
	assert.False(t, ids["e1"], "edge into the hidden locked node disappears")
	assert.True(t, ids["e2"])
}

func TestApply_CountsOnlyCoverVisibleNodes(t *testing.T) {
	view := Apply(sampleNodes(), sampleEdges(), Query{Category: "skilled-trades", ShowLocked: true})
	assert.Equal(t, Counts{Risk: 1, Total: 1}, view.Counts)
}

func TestApply_Idempotent(t *testing.T) {
	q := Query{Text: "a", Category: "it-security", ShowLocked: false}
	once := Apply(sampleNodes(), sampleEdges(), q)

	// Re-filter the already-filtered view with the same query.
	twice := Apply(once.Nodes, once.Edges, q)
	assert.Equal(t, once, twice)
}

func TestView_Node(t *testing.T) {
	view := Apply(sampleNodes(), sampleEdges(), Query{ShowLocked: true})

	n, ok := view.Node("hvac-tech")
	require.True(t, ok)
	assert.Equal(t, types.StatusRisk, n.Result.Status)

	_, ok = view.Node("nope")
	assert.False(t, ok)
}
