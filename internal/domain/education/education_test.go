package education

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEducation_Normalize_CurrentNullsEndYear(t *testing.T) {
	endYear := 2026
	e := &Education{
		Institution: "MIT",
		StartYear:   2022,
		EndYear:     &endYear,
		IsCurrent:   true,
	}
	e.Normalize()

	assert.Nil(t, e.EndYear)
}

func TestEducation_Validate(t *testing.T) {
	endYear := 2026
	ok := &Education{Institution: "MIT", StartYear: 2022, EndYear: &endYear}
	assert.NoError(t, ok.Validate())

	ongoing := &Education{Institution: "MIT", StartYear: 2022}
	assert.NoError(t, ongoing.Validate())

	noInstitution := &Education{StartYear: 2022}
	assert.Error(t, noInstitution.Validate())

	badYear := &Education{Institution: "MIT", StartYear: 1500}
	assert.Error(t, badYear.Validate())

	before := 2020
	endsBeforeStart := &Education{Institution: "MIT", StartYear: 2022, EndYear: &before}
	assert.Error(t, endsBeforeStart.Validate())
}
