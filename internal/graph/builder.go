// Package graph assembles the static catalog and the user's custom layer
// into the merged node/edge graph the rendering surface consumes, assigning
// radial layout coordinates along the way.
package graph

import (
	"fmt"

	"github.com/jonathan/skilltree/internal/catalog"
	"github.com/jonathan/skilltree/internal/types"
)

// Ring indices. Purely positional; semantic grouping lives in tags.
const (
	ringRoot   = 0
	ringHub    = 1
	ringMiddle = 2
	ringOuter  = 3
)

// Build assembles the merged graph: the static catalog plus the custom
// layer appended after it. A nil custom graph is treated as empty; the
// static catalog is never mutated (nodes are copied before coordinates
// are assigned). Custom edges are passed through untouched, so a dangling
// custom edge is simply unrenderable.
func Build(custom *types.CustomGraph) ([]types.GraphNode, []types.GraphEdge) {
	var nodes []types.GraphNode
	var edges []types.GraphEdge

	addEdge := func(source, target string) {
		edges = append(edges, types.GraphEdge{
			ID:     fmt.Sprintf("edge-%s-%s", source, target),
			Source: source,
			Target: target,
		})
	}

	root := catalog.Root()
	root.Ring = ringRoot
	nodes = append(nodes, root)

	hubs := catalog.Hubs()
	for i, hub := range hubs {
		hub.Ring = ringHub
		hub.Sector = i
		nodes = append(nodes, hub)
		addEdge(root.ID, hub.ID)
	}

	// Middle ring groups hang off their owning hub; the sector is the
	// hub's index, the order is the position within the group.
	middle := []struct {
		hubID string
		group []types.GraphNode
	}{
		{"hub-careers", catalog.Categories()},
		{"hub-credentials", catalog.Credentials()},
		{"hub-skills", catalog.Skills()},
		{"hub-education", catalog.Schools()},
		{"hub-resources", catalog.Resources()},
	}
	hubSector := map[string]int{}
	for i, hub := range hubs {
		hubSector[hub.ID] = i
	}

	for _, g := range middle {
		for i, n := range g.group {
			n.Ring = ringMiddle
			n.Sector = hubSector[g.hubID]
			n.Order = i
			nodes = append(nodes, n)
			addEdge(g.hubID, n.ID)
		}
	}

	// Careers fan out by category: sector follows the category's index,
	// order counts within that category.
	categories := catalog.Categories()
	categorySector := map[string]int{}
	for i, c := range categories {
		categorySector[c.ID] = i
	}
	perCategory := map[string]int{}

	for _, career := range catalog.Careers() {
		career.Ring = ringOuter
		categoryID := careerCategory(&career, categorySector)
		career.Sector = categorySector[categoryID]
		career.Order = perCategory[categoryID]
		perCategory[categoryID]++
		nodes = append(nodes, career)
		if categoryID != "" {
			addEdge(categoryID, career.ID)
		}
	}

	// Custom layer, appended after all static nodes in its own sector.
	if !custom.Empty() {
		customSector := len(categories)
		for i, n := range custom.Nodes {
			n.Ring = ringOuter
			n.Sector = customSector
			n.Order = i
			nodes = append(nodes, n)
		}
		edges = append(edges, custom.Edges...)
	}

	// A requirement dependency is always materialized as a visible edge:
	// every HAS requirement on an evaluated node produces credential→node.
	for _, n := range nodes {
		if n.Kind.Structural() {
			continue
		}
		for _, req := range n.Requirements {
			if req.Kind == types.ReqHas {
				addEdge(req.Credential, n.ID)
			}
		}
	}

	return nodes, dedupeEdges(edges)
}

// Lookup builds an id→node index over a merged node list.
func Lookup(nodes []types.GraphNode) map[string]*types.GraphNode {
	index := make(map[string]*types.GraphNode, len(nodes))
	for i := range nodes {
		index[nodes[i].ID] = &nodes[i]
	}
	return index
}

// careerCategory returns the first tag on the career that names a known
// category, or "" when none does.
func careerCategory(career *types.GraphNode, categorySector map[string]int) string {
	for _, tag := range career.Tags {
		if _, ok := categorySector[tag]; ok {
			return tag
		}
	}
	return ""
}

func dedupeEdges(edges []types.GraphEdge) []types.GraphEdge {
	seen := map[string]bool{}
	out := edges[:0]
	for _, e := range edges {
		if seen[e.ID] {
			continue
		}
		seen[e.ID] = true
		out = append(out, e)
	}
	return out
}
