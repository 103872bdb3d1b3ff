package walker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mghazyfawazh/outlines/internal/models"
)

var years = []models.Option{{Text: "2024", Value: "2024"}, {Text: "2025", Value: "2025"}}

func TestTransition_Descends(t *testing.T) {
	s := State{Level: Year}
	next, action, err := Transition(s, "1", years)
	require.NoError(t, err)
	assert.Equal(t, Descend, action)
	assert.Equal(t, State{Level: Term, Path: []string{"2025"}}, next)
	assert.Empty(t, s.Path, "input state must not change")
}

func TestTransition_DoesNotShareBacking(t *testing.T) {
	base := State{Level: Department, Path: make([]string, 2, 8)}
	base.Path[0], base.Path[1] = "2024", "fall"

	a, _, err := Transition(base, "0", []models.Option{{Value: "cmpt"}})
	require.NoError(t, err)
	b, _, err := Transition(base, "0", []models.Option{{Value: "math"}})
	require.NoError(t, err)
	assert.Equal(t, "cmpt", a.Path[2])
	assert.Equal(t, "math", b.Path[2])
}

func TestTransition_Invalid(t *testing.T) {
	s := State{Level: Term, Path: []string{"2024"}}
	for _, choice := range []string{"", "2", "-1", "x", "1.0"} {
		next, _, err := Transition(s, choice, years)
		assert.ErrorIs(t, err, ErrInvalidChoice, choice)
		assert.Equal(t, s, next, choice)
	}
}

func TestTransition_QuitAndRestart(t *testing.T) {
	s := State{Level: Course, Path: []string{"2024", "fall", "cmpt"}}

	next, action, err := Transition(s, "q", nil)
	require.NoError(t, err)
	assert.Equal(t, Quit, action)
	assert.Equal(t, s, next)

	next, action, err = Transition(s, "r", nil)
	require.NoError(t, err)
	assert.Equal(t, Restart, action)
	assert.Equal(t, State{Level: Year}, next)
}

func TestTransition_Shortcuts(t *testing.T) {
	next, _, err := Transition(State{Level: Year}, "c", years)
	require.NoError(t, err)
	next, _, err = Transition(next, "c", nil)
	require.NoError(t, err)
	assert.Equal(t, State{Level: Department, Path: []string{"current", "current"}}, next)

	next, _, err = Transition(State{Level: Year}, "g", years)
	require.NoError(t, err)
	assert.Equal(t, []string{"registration"}, next.Path)

	_, _, err = Transition(State{Level: Department, Path: []string{"2024", "fall"}}, "c", nil)
	assert.ErrorIs(t, err, ErrInvalidChoice)
}

func TestMenu(t *testing.T) {
	items := Menu(Year, years)
	keys := make([]string, len(items))
	for i, it := range items {
		keys[i] = it.Key
	}
	assert.Equal(t, []string{"0", "1", "c", "g", "q", "r"}, keys)
	assert.True(t, items[4].Control())
	assert.False(t, items[0].Control())

	items = Menu(Section, []models.Option{{Text: "D100", Value: "d100"}})
	assert.Len(t, items, 3)
}

func TestLevelString(t *testing.T) {
	assert.Equal(t, "department", Department.String())
	assert.Equal(t, "level(9)", Level(9).String())
}
