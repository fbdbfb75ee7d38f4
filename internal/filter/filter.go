// Package filter narrows the annotated graph by text query, category, and
// lock visibility, producing the rendered subset plus aggregate counts.
// Every function here is pure: applying the same query twice yields the
// same view as applying it once.
package filter

import (
	"strings"

	"github.com/jonathan/skilltree/internal/eval"
	"github.com/jonathan/skilltree/internal/types"
)

// CategoryAll disables category filtering.
const CategoryAll = "all"

// Query is the user's current view selection.
type Query struct {
	Text       string `json:"text"`
	Category   string `json:"category"`
	ShowLocked bool   `json:"show_locked"`
}

// Counts buckets the visible node set by evaluation status.
type Counts struct {
	Eligible int `json:"eligible"`
	Locked   int `json:"locked"`
	Risk     int `json:"risk"`
	Info     int `json:"info"`
	Total    int `json:"total"`
}

// View is the filtered graph handed to the rendering surface.
type View struct {
	Nodes  []eval.Node       `json:"nodes"`
	Edges  []types.GraphEdge `json:"edges"`
	Counts Counts            `json:"counts"`
}

// Node looks up a visible node by id.
func (v *View) Node(id string) (eval.Node, bool) {
	for _, n := range v.Nodes {
		if n.ID == id {
			return n, true
		}
	}
	return eval.Node{}, false
}

// Apply filters the annotated node list. A node is visible iff it matches
// the text query, the category selector, and the lock-visibility gate; an
// edge is visible iff both of its endpoints are.
func Apply(nodes []eval.Node, edges []types.GraphEdge, q Query) View {
	view := View{Nodes: []eval.Node{}, Edges: []types.GraphEdge{}}
	visible := map[string]bool{}

	for _, n := range nodes {
		if !matchesText(&n, q.Text) || !matchesCategory(&n, q.Category) || !passesLockGate(&n, q.ShowLocked) {
			continue
		}
		view.Nodes = append(view.Nodes, n)
		visible[n.ID] = true

		switch n.Result.Status {
		case types.StatusEligible:
			view.Counts.Eligible++
		case types.StatusLocked:
			view.Counts.Locked++
		case types.StatusRisk:
			view.Counts.Risk++
		case types.StatusInfo:
			view.Counts.Info++
		}
		view.Counts.Total++
	}

	for _, e := range edges {
		if visible[e.Source] && visible[e.Target] {
			view.Edges = append(view.Edges, e)
		}
	}

	return view
}

// matchesText reports whether the query is empty or is a case-insensitive
// substring of the node's title, subtitle, or concatenated tags.
func matchesText(n *eval.Node, query string) bool {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return true
	}
	haystack := strings.ToLower(n.Title + " " + n.Subtitle + " " + strings.Join(n.Tags, " "))
	return strings.Contains(haystack, query)
}

// matchesCategory reports whether the selector is "all" (or unset), names
// one of the node's tags, or equals the node's own id. The id match lets
// clicking a category node filter to that category.
func matchesCategory(n *eval.Node, category string) bool {
	if category == "" || category == CategoryAll {
		return true
	}
	return n.HasTag(category) || n.ID == category
}

func passesLockGate(n *eval.Node, showLocked bool) bool {
	return showLocked || n.Result.Status != types.StatusLocked
}
