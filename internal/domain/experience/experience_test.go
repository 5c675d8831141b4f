package experience

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestExperience_Normalize_CurrentNullsEndDate(t *testing.T) {
	end := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	e := &Experience{
		Company:   "Acme",
		Role:      "Engineer",
		EndDate:   &end,
		IsCurrent: true,
	}
	e.Normalize()

	assert.Nil(t, e.EndDate)
}

func TestExperience_Normalize_KeepsEndDateWhenNotCurrent(t *testing.T) {
	end := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	e := &Experience{Company: "Acme", Role: "Engineer", EndDate: &end}
	e.Normalize()

	assert.NotNil(t, e.EndDate)
	assert.Equal(t, end, *e.EndDate)
}

func TestExperience_Validate(t *testing.T) {
	ok := &Experience{Company: "Acme", Role: "Engineer"}
	assert.NoError(t, ok.Validate())

	noCompany := &Experience{Role: "Engineer"}
	assert.Error(t, noCompany.Validate())

	noRole := &Experience{Company: "Acme"}
	assert.Error(t, noRole.Validate())
}
