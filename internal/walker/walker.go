// Package walker drives the interactive year → term → department → course →
// section menu and dumps the outline JSON at the end.
package walker

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mghazyfawazh/outlines/internal/models"
)

// Catalog is the part of the catalog client the walker needs.
type Catalog interface {
	Options(ctx context.Context, path []string) ([]models.Option, error)
	Raw(ctx context.Context, path []string) ([]byte, error)
}

// Result is the section the user walked to.
type Result struct {
	Path     []string
	Document []byte
}

type Walker struct {
	catalog Catalog
	in      *bufio.Scanner
	out     io.Writer

	// ClearScreen clears the terminal before each menu.
	ClearScreen bool

	control lipgloss.Style
	choice  lipgloss.Style
}

func New(c Catalog, in io.Reader, out io.Writer) *Walker {
	r := lipgloss.NewRenderer(out)
	return &Walker{
		catalog: c,
		in:      bufio.NewScanner(in),
		out:     out,
		control: r.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
		choice:  r.NewStyle().Foreground(lipgloss.Color("4")).Bold(true),
	}
}

// Run walks until a section is chosen or the user quits. Quitting, or
// running out of input, returns a nil result and a nil error.
func (w *Walker) Run(ctx context.Context) (*Result, error) {
	state := State{Level: Year}
	for state.Level < Done {
		w.clear()
		w.requesting(state)
		opts, err := w.catalog.Options(ctx, state.Path)
		if err != nil {
			return nil, err
		}
		w.printMenu(Menu(state.Level, opts))

		next, quit, err := w.prompt(state, opts)
		if err != nil || quit {
			return nil, err
		}
		state = next
	}

	w.clear()
	w.requesting(state)
	doc, err := w.catalog.Raw(ctx, state.Path)
	if err != nil {
		return nil, err
	}
	var pretty bytes.Buffer
	if err := json.Indent(&pretty, doc, "", "    "); err != nil {
		return nil, fmt.Errorf("section /%s: %w", strings.Join(state.Path, "/"), err)
	}
	fmt.Fprintln(w.out, pretty.String())
	return &Result{Path: state.Path, Document: doc}, nil
}

func (w *Walker) prompt(state State, opts []models.Option) (State, bool, error) {
	for {
		fmt.Fprint(w.out, "> ")
		if !w.in.Scan() {
			return state, true, w.in.Err()
		}
		next, action, err := Transition(state, strings.TrimSpace(w.in.Text()), opts)
		if errors.Is(err, ErrInvalidChoice) {
			fmt.Fprintln(w.out, "Invalid choice entered")
			continue
		}
		return next, action == Quit, err
	}
}

func (w *Walker) requesting(s State) {
	fmt.Fprintf(w.out, "%d: Requesting /%s\n", int(s.Level), strings.Join(s.Path, "/"))
}

func (w *Walker) printMenu(items []MenuItem) {
	for _, it := range items {
		style := w.choice
		if it.Control() {
			style = w.control
		}
		fmt.Fprintln(w.out, style.Render(fmt.Sprintf("(%s) %s", it.Key, it.Label)))
	}
}

func (w *Walker) clear() {
	if w.ClearScreen {
		fmt.Fprint(w.out, "\033[H\033[2J")
	}
}
