// Package resume projects a profile and a selected target career into a
// plaintext resume draft with a fixed section layout.
package resume

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jonathan/skilltree/internal/types"
)

const (
	namePlaceholder  = "Your Name"
	emptyListBullet  = "(none yet — add credentials and skills in your profile)"
	genericObjective = "Motivated candidate exploring new career opportunities."
)

// experienceBullets is the fixed instructional content of the
// PROJECTS & EXPERIENCE section.
var experienceBullets = []string{
	"Describe a project or job where you used your strongest skill.",
	"Quantify one accomplishment: numbers, time saved, people helped.",
	"List volunteer work, coursework, or self-driven learning.",
}

// NodeLookup resolves a node id to its catalog/custom entry, or nil when
// the id is unknown.
type NodeLookup func(id string) *types.GraphNode

// Generate renders the plaintext resume. Section order is fixed: heading,
// SUMMARY, SKILLS, CERTIFICATIONS, PROJECTS & EXPERIENCE, EDUCATION.
// Identity fields are templated as-is; only a missing name gets a
// placeholder. The target career title is resolved through lookup; an
// unresolvable target falls back to a generic summary sentence.
func Generate(p *types.Profile, targetCareerID, notes string, lookup NodeLookup) string {
	var b strings.Builder

	name := p.Name
	if strings.TrimSpace(name) == "" {
		name = namePlaceholder
	}
	b.WriteString(name + "\n")
	b.WriteString(p.Email + " | " + p.Phone + "\n\n")

	writeSection(&b, "SUMMARY", summaryLines(targetCareerID, notes, lookup))
	writeSection(&b, "SKILLS", bulletTitles(p.HeldIDs(), lookup))
	writeSection(&b, "CERTIFICATIONS", bulletTitles(setToSorted(p.Credentials), lookup))
	writeSection(&b, "PROJECTS & EXPERIENCE", bullets(experienceBullets))
	writeSection(&b, "EDUCATION", []string{p.Education.Label()})

	return strings.TrimRight(b.String(), "\n") + "\n"
}

func summaryLines(targetCareerID, notes string, lookup NodeLookup) []string {
	sentence := genericObjective
	if targetCareerID != "" && lookup != nil {
		if n := lookup(targetCareerID); n != nil {
			sentence = fmt.Sprintf("Motivated candidate pursuing a role as %s.", n.Title)
		}
	}

	lines := []string{sentence}
	if strings.TrimSpace(notes) != "" {
		lines = append(lines, strings.TrimSpace(notes))
	}
	return lines
}

// bulletTitles renders held ids as bullets, resolving each to its display
// title where possible. Ids without a catalog entry keep the raw id.
func bulletTitles(ids []string, lookup NodeLookup) []string {
	if len(ids) == 0 {
		return []string{"- " + emptyListBullet}
	}

	titles := make([]string, 0, len(ids))
	for _, id := range ids {
		title := id
		if lookup != nil {
			if n := lookup(id); n != nil {
				title = n.Title
			}
		}
		titles = append(titles, title)
	}
	sort.Strings(titles)
	return bullets(titles)
}

func bullets(lines []string) []string {
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = "- " + line
	}
	return out
}

func writeSection(b *strings.Builder, heading string, lines []string) {
	b.WriteString(heading + "\n")
	b.WriteString(strings.Repeat("-", len(heading)) + "\n")
	for _, line := range lines {
		b.WriteString(line + "\n")
	}
	b.WriteString("\n")
}

func setToSorted(set map[string]bool) []string {
	ids := make([]string, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
