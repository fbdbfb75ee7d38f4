// Package types provides type definitions for structured data used throughout the skilltree system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// NodeKind represents the structural role of a graph entity.
type NodeKind string

// Node kinds.
const (
	KindRoot       NodeKind = "root"
	KindHub        NodeKind = "hub"
	KindCategory   NodeKind = "category"
	KindCredential NodeKind = "credential"
	KindSkill      NodeKind = "skill"
	KindCareer     NodeKind = "career"
	KindSchool     NodeKind = "school"
	KindResource   NodeKind = "resource"
)

// Structural reports whether the kind is informational by policy:
// structural nodes are never subject to requirement evaluation, even
// when requirements are attached to them.
func (k NodeKind) Structural() bool {
	switch k {
	case KindRoot, KindHub, KindCategory, KindResource:
		return true
	}
	return false
}

// GraphNode is a single entity on the radial tree. Static catalog nodes
// are immutable constants; custom nodes carry a synthetic namespaced id.
// Ring/Sector/Order are layout coordinates assigned by the graph builder
// and carry no semantic meaning.
type GraphNode struct {
	ID           string        `json:"id"`
	Kind         NodeKind      `json:"kind"`
	Title        string        `json:"title"`
	Subtitle     string        `json:"subtitle,omitempty"`
	Tags         []string      `json:"tags,omitempty"`
	Links        []string      `json:"links,omitempty"`
	Requirements []Requirement `json:"requirements,omitempty"`

	Ring   int `json:"ring"`
	Sector int `json:"sector"`
	Order  int `json:"order"`
}

// HasTag reports whether the node's tag set contains tag.
func (n *GraphNode) HasTag(tag string) bool {
	for _, t := range n.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// GraphEdge is a directed structural pair. Edges have no weight or
// requirement semantics; a dangling edge is unrenderable, not an error.
type GraphEdge struct {
	ID     string `json:"id"`
	Source string `json:"source"`
	Target string `json:"target"`
}

// CustomGraph is the user-authored node/edge layer persisted independently
// of the static catalog.
type CustomGraph struct {
	Nodes []GraphNode `json:"nodes"`
	Edges []GraphEdge `json:"edges"`
}

// Empty reports whether the custom graph carries no nodes and no edges.
func (g *CustomGraph) Empty() bool {
	return g == nil || (len(g.Nodes) == 0 && len(g.Edges) == 0)
}
