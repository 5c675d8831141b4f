package portfolio

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/portify/portify-api/internal/domain/profile"
)

func TestChecklist_AllEmpty(t *testing.T) {
	items, pct := Checklist(&profile.Profile{}, 0, 0, 0)

	assert.Equal(t, 0, pct)
	assert.Len(t, items, 5)
	for _, item := range items {
		assert.False(t, item.Done, item.Label)
	}
}

func TestChecklist_AllPresent(t *testing.T) {
	p := &profile.Profile{
		FullName: "Ada Lovelace",
		Headline: "Engineer",
		Bio:      "I write programs.",
	}

	items, pct := Checklist(p, 3, 1, 2)

	assert.Equal(t, 100, pct)
	for _, item := range items {
		assert.True(t, item.Done, item.Label)
	}
}

func TestChecklist_NilProfile(t *testing.T) {
	items, pct := Checklist(nil, 1, 1, 1)

	assert.Equal(t, 60, pct)
	assert.False(t, items[0].Done)
	assert.False(t, items[4].Done)
}

func TestChecklist_ProfileInfoNeedsBothFields(t *testing.T) {
	onlyName := &profile.Profile{FullName: "Ada Lovelace"}
	items, _ := Checklist(onlyName, 0, 0, 0)
	assert.False(t, items[0].Done)

	both := &profile.Profile{FullName: "Ada Lovelace", Headline: "Engineer"}
	items, _ = Checklist(both, 0, 0, 0)
	assert.True(t, items[0].Done)
}

func TestChecklist_Rounding(t *testing.T) {
	_, pct := Checklist(&profile.Profile{Bio: "hi"}, 1, 0, 0)
	assert.Equal(t, 40, pct)

	_, pct = Checklist(&profile.Profile{Bio: "hi"}, 1, 1, 0)
	assert.Equal(t, 60, pct)
}

// Filling in one more tracked item never lowers the percentage.
func TestChecklist_Monotonic(t *testing.T) {
	steps := []struct {
		p                       *profile.Profile
		skills, projects, exper int
	}{
		{&profile.Profile{}, 0, 0, 0},
		{&profile.Profile{}, 1, 0, 0},
		{&profile.Profile{}, 1, 1, 0},
		{&profile.Profile{}, 1, 1, 1},
		{&profile.Profile{Bio: "hi"}, 1, 1, 1},
		{&profile.Profile{FullName: "Ada", Headline: "Eng", Bio: "hi"}, 1, 1, 1},
	}

	prev := -1
	for i, step := range steps {
		_, pct := Checklist(step.p, step.skills, step.projects, step.exper)
		assert.GreaterOrEqual(t, pct, prev, "step %d", i)
		prev = pct
	}
	assert.Equal(t, 100, prev)
}
