package portfolio

import (
	"github.com/portify/portify-api/internal/domain/education"
	"github.com/portify/portify-api/internal/domain/experience"
	"github.com/portify/portify-api/internal/domain/profile"
	"github.com/portify/portify-api/internal/domain/project"
	"github.com/portify/portify-api/internal/domain/skill"
)

// Sections bundles the four child collections of a profile, each ordered by
// sort_order ascending. It is what gets cached between mutations.
type Sections struct {
	Skills      []*skill.Skill           `json:"skills"`
	Projects    []*project.Project       `json:"projects"`
	Experiences []*experience.Experience `json:"experiences"`
	Education   []*education.Education   `json:"education"`
}

// FullPortfolio is the assembled read-model served to both the public page
// and the owner's editor.
type FullPortfolio struct {
	Profile  *profile.Profile `json:"profile"`
	Sections
}
