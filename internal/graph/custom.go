package graph

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/jonathan/skilltree/internal/types"
)

// customIDPrefix namespaces user-created node ids away from the static
// catalog so the merged node set can never collide.
const customIDPrefix = "custom"

// NewCustomNode builds a user-authored career node with a synthetic id
// embedding a slug of the title plus a random suffix for uniqueness.
func NewCustomNode(title, subtitle string, tags []string, reqs []types.Requirement) types.GraphNode {
	return types.GraphNode{
		ID:           CustomID(title),
		Kind:         types.KindCareer,
		Title:        title,
		Subtitle:     subtitle,
		Tags:         tags,
		Requirements: reqs,
	}
}

// NewCustomEdge builds an edge from source to a custom node.
func NewCustomEdge(source, target string) types.GraphEdge {
	return types.GraphEdge{
		ID:     fmt.Sprintf("edge-%s-%s", source, target),
		Source: source,
		Target: target,
	}
}

// CustomID derives a namespaced synthetic id from a display title.
func CustomID(title string) string {
	suffix := uuid.NewString()[:8]
	return fmt.Sprintf("%s-%s-%s", customIDPrefix, slugify(title), suffix)
}

// IsCustomID reports whether the id belongs to the custom namespace.
func IsCustomID(id string) bool {
	return strings.HasPrefix(id, customIDPrefix+"-")
}

// slugify lowercases the title and collapses runs of non-alphanumeric
// characters into single dashes.
func slugify(title string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(strings.TrimSpace(title)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			dash = false
		default:
			if !dash && b.Len() > 0 {
				b.WriteByte('-')
				dash = true
			}
		}
	}
	slug := strings.TrimSuffix(b.String(), "-")
	if slug == "" {
		slug = "node"
	}
	return slug
}
