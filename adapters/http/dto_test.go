package http

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlexibleDate(t *testing.T) {
	got, err := parseFlexibleDate("2024-06-15")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC), *got)

	// Month inputs send YYYY-MM.
	got, err = parseFlexibleDate("2024-06")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), *got)

	got, err = parseFlexibleDate("")
	require.NoError(t, err)
	assert.Nil(t, got)

	_, err = parseFlexibleDate("June 2024")
	assert.Error(t, err)
}

func TestExperienceRequest_ToDomain(t *testing.T) {
	req := &ExperienceRequest{
		Company:   "Acme",
		Role:      "Engineer",
		StartDate: "2022-01",
		EndDate:   "2024-06-15",
	}

	e, err := req.ToDomain()
	require.NoError(t, err)
	require.NotNil(t, e.StartDate)
	require.NotNil(t, e.EndDate)
	assert.Equal(t, 2022, e.StartDate.Year())

	bad := &ExperienceRequest{Company: "Acme", Role: "Engineer", StartDate: "soon"}
	_, err = bad.ToDomain()
	assert.Error(t, err)
}
