package walker

import (
	"errors"
	"strconv"

	"github.com/mghazyfawazh/outlines/internal/models"
)

// Level is how deep the walk is in the catalog tree.
type Level int

const (
	Year Level = iota
	Term
	Department
	Course
	Section
	Done
)

var levelNames = [...]string{"year", "term", "department", "course", "section", "done"}

func (l Level) String() string {
	if l < Year || l > Done {
		return "level(" + strconv.Itoa(int(l)) + ")"
	}
	return levelNames[l]
}

// Action tells the loop what a choice did.
type Action int

const (
	Descend Action = iota
	Restart
	Quit
)

var ErrInvalidChoice = errors.New("invalid choice")

// State is the position of the walk: the level and the path values chosen so far.
type State struct {
	Level Level
	Path  []string
}

const (
	keyQuit         = "q"
	keyRestart      = "r"
	keyCurrent      = "c"
	keyRegistration = "g"
)

// shortcut keys accepted by the API in place of an explicit year or term
var shortcuts = map[string]string{
	keyCurrent:      "current",
	keyRegistration: "registration",
}

func hasShortcuts(l Level) bool {
	return l == Year || l == Term
}

// Transition applies one menu choice to a state. It never mutates s.
// An unknown choice returns ErrInvalidChoice and s unchanged.
func Transition(s State, choice string, opts []models.Option) (State, Action, error) {
	switch choice {
	case keyQuit:
		return s, Quit, nil
	case keyRestart:
		return State{Level: Year}, Restart, nil
	}
	if s.Level >= Done {
		return s, Descend, ErrInvalidChoice
	}
	if value, ok := shortcuts[choice]; ok && hasShortcuts(s.Level) {
		return descend(s, value), Descend, nil
	}
	i, err := strconv.Atoi(choice)
	if err != nil || i < 0 || i >= len(opts) {
		return s, Descend, ErrInvalidChoice
	}
	return descend(s, opts[i].Value), Descend, nil
}

func descend(s State, value string) State {
	path := make([]string, len(s.Path), len(s.Path)+1)
	copy(path, s.Path)
	return State{Level: s.Level + 1, Path: append(path, value)}
}

// MenuItem is one line of a level menu.
type MenuItem struct {
	Key   string
	Label string
}

// Control reports whether the item is quit or restart rather than a path choice.
func (m MenuItem) Control() bool {
	return m.Key == keyQuit || m.Key == keyRestart
}

// Menu lists the choices for a level in display order.
func Menu(l Level, opts []models.Option) []MenuItem {
	items := make([]MenuItem, 0, len(opts)+4)
	for i, o := range opts {
		items = append(items, MenuItem{Key: strconv.Itoa(i), Label: o.Text})
	}
	if hasShortcuts(l) {
		items = append(items,
			MenuItem{Key: keyCurrent, Label: shortcuts[keyCurrent]},
			MenuItem{Key: keyRegistration, Label: shortcuts[keyRegistration]},
		)
	}
	return append(items, MenuItem{Key: keyQuit, Label: "quit"}, MenuItem{Key: keyRestart, Label: "restart"})
}
