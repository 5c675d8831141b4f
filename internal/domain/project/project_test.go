package project

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProject_Normalize_DedupesTechStack(t *testing.T) {
	p := &Project{
		Title:     "Portfolio API",
		TechStack: []string{"Go", "go", " Postgres ", "Redis", "postgres", ""},
	}
	p.Normalize()

	// Case-insensitive de-dupe, first spelling wins, entry order preserved.
	assert.Equal(t, []string{"Go", "Postgres", "Redis"}, p.TechStack)
}

func TestProject_Validate(t *testing.T) {
	p := &Project{Title: "Portfolio API"}
	assert.NoError(t, p.Validate())

	empty := &Project{Title: "   "}
	empty.Normalize()
	assert.Error(t, empty.Validate())
}
