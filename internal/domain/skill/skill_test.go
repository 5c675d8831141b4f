package skill

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/portify/portify-api/pkg/apperror"
)

func TestSkill_Validate(t *testing.T) {
	valid := &Skill{Name: "Go", Category: "Backend", Level: 4}
	assert.NoError(t, valid.Validate())

	noName := &Skill{Level: 3}
	err := noName.Validate()
	assert.Error(t, err)
	assert.True(t, errors.Is(err, apperror.ErrInvalidInput))

	for _, level := range []int{0, -1, 6} {
		s := &Skill{Name: "Go", Level: level}
		assert.Error(t, s.Validate(), "level %d", level)
	}
}

func TestSkill_Normalize(t *testing.T) {
	s := &Skill{Name: "  Go  ", Category: " Backend ", Level: 5}
	s.Normalize()
	assert.Equal(t, "Go", s.Name)
	assert.Equal(t, "Backend", s.Category)
}
