package portfolio

import (
	"math"

	"github.com/portify/portify-api/internal/domain/profile"
)

type ChecklistItem struct {
	Label string `json:"label"`
	Done  bool   `json:"done"`
	Link  string `json:"link"`
}

// Checklist computes the profile completion checklist and percentage from a
// profile plus child-collection counts. Pure function: same inputs, same
// output, no I/O.
func Checklist(p *profile.Profile, skillCount, projectCount, experienceCount int) ([]ChecklistItem, int) {
	items := []ChecklistItem{
		{Label: "Profile info", Done: p != nil && p.FullName != "" && p.Headline != "", Link: "/profile"},
		{Label: "Added skills", Done: skillCount > 0, Link: "/builder"},
		{Label: "Added a project", Done: projectCount > 0, Link: "/builder"},
		{Label: "Added experience", Done: experienceCount > 0, Link: "/builder"},
		{Label: "Added bio", Done: p != nil && p.Bio != "", Link: "/profile"},
	}

	done := 0
	for _, item := range items {
		if item.Done {
			done++
		}
	}
	pct := int(math.Round(100 * float64(done) / float64(len(items))))

	return items, pct
}
