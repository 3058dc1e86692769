// SPDX-License-Identifier: MIT

// Package render formats socialgraph results for people.
//
// Output is plain text unless styling is enabled, in which case user names,
// headers and failures are colored with lipgloss. Styling follows the mode:
//
//	auto   - styled only when the writer is a terminal
//	always - styled regardless of the writer
//	never  - plain text
//
// The plain format is stable and used by the CLI tests:
//
//	--- Social Network Graph ---
//	'Alice' is friends with: {'Bob', 'Charlie'}
//	...
//	----------------------------
package render

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"

	"github.com/katalvlaran/socialgraph/core"
	"github.com/katalvlaran/socialgraph/recommend"
)

// Styling modes.
const (
	ModeAuto   = "auto"
	ModeAlways = "always"
	ModeNever  = "never"
)

const (
	graphHeader = "--- Social Network Graph ---"
	graphFooter = "----------------------------"
)

// Palette.
var (
	colorUser    = lipgloss.Color("#2CD7C7")
	colorHeader  = lipgloss.Color("#20B9B4")
	colorMuted   = lipgloss.Color("241")
	colorFailure = lipgloss.Color("#E74C3C")
)

// Renderer writes human-readable results to one writer.
// The first write error is kept and returned by Err; later writes are skipped.
type Renderer struct {
	w      io.Writer
	styled bool
	err    error

	user    lipgloss.Style
	header  lipgloss.Style
	muted   lipgloss.Style
	failure lipgloss.Style
}

// IsTerminal reports whether w is a terminal file descriptor.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := f.Fd()

	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// New returns a Renderer for w. Unknown modes behave like ModeAuto.
func New(w io.Writer, mode string) *Renderer {
	var styled bool
	switch mode {
	case ModeAlways:
		styled = true
	case ModeNever:
	default:
		styled = IsTerminal(w)
	}

	lr := lipgloss.NewRenderer(w)
	if styled {
		lr.SetColorProfile(termenv.ANSI256)
	}

	return &Renderer{
		w:       w,
		styled:  styled,
		user:    lr.NewStyle().Foreground(colorUser).Bold(true),
		header:  lr.NewStyle().Foreground(colorHeader).Bold(true),
		muted:   lr.NewStyle().Foreground(colorMuted),
		failure: lr.NewStyle().Foreground(colorFailure),
	}
}

// Styled reports whether output carries terminal styling.
func (r *Renderer) Styled() bool { return r.styled }

// Err returns the first write error.
func (r *Renderer) Err() error { return r.err }

func (r *Renderer) printf(format string, args ...any) {
	if r.err != nil {
		return
	}
	_, r.err = fmt.Fprintf(r.w, format, args...)
}

func (r *Renderer) paint(st lipgloss.Style, s string) string {
	if !r.styled {
		return s
	}
	return st.Render(s)
}

func (r *Renderer) name(id string) string {
	return r.paint(r.user, "'"+id+"'")
}

// set formats ids as {'a', 'b'}.
func (r *Renderer) set(ids []string) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = r.name(id)
	}

	return "{" + strings.Join(parts, ", ") + "}"
}

// Section prints a blank line and a titled divider.
func (r *Renderer) Section(title string) {
	r.printf("\n%s\n", r.paint(r.header, "--- "+title+" ---"))
}

// Line prints one muted informational line.
func (r *Renderer) Line(format string, args ...any) {
	r.printf("%s\n", r.paint(r.muted, fmt.Sprintf(format, args...)))
}

// Error prints err as a failure line.
func (r *Renderer) Error(err error) {
	r.printf("%s\n", r.paint(r.failure, "Error: "+err.Error()))
}

// Graph prints every user with their friends, ascending.
func (r *Renderer) Graph(g *core.Graph) error {
	r.printf("\n%s\n", r.paint(r.header, graphHeader))
	users := g.Users()
	if len(users) == 0 {
		r.printf("The network is empty.\n")
	}
	for _, id := range users {
		friends, err := g.Friends(id)
		if err != nil {
			return err
		}
		r.printf("%s is friends with: %s\n", r.name(id), r.set(friends))
	}
	r.printf("%s\n\n", r.paint(r.header, graphFooter))

	return r.err
}

// Friends prints id's friend set.
func (r *Renderer) Friends(id string, friends []string) error {
	r.printf("%s's friends: %s\n", r.name(id), r.set(friends))
	return r.err
}

// Mutual prints the friends a and b share.
func (r *Renderer) Mutual(a, b string, mutual []string) error {
	r.printf("Mutual friends between %s and %s: %s\n", r.name(a), r.name(b), r.set(mutual))
	return r.err
}

// Suggestions prints ranked candidates, or "None." when there are none.
func (r *Renderer) Suggestions(id string, list []recommend.Suggestion) error {
	r.printf("Friend suggestions for %s:\n", r.name(id))
	if len(list) == 0 {
		r.printf("  %s\n", r.paint(r.muted, "None."))
	}
	for _, s := range list {
		r.printf("  - %s (via %d connection(s))\n", r.name(s.ID), s.Score)
	}

	return r.err
}

// Path prints a shortest-path result computed by the named algorithm.
func (r *Renderer) Path(algo, from, to string, res core.PathResult) error {
	r.printf("Shortest path (%s) from %s to %s:\n", algo, r.name(from), r.name(to))
	if !res.Found() {
		r.printf("  %s\n", r.paint(r.muted, "No path found."))
		return r.err
	}

	hops := make([]string, len(res.Path))
	for i, id := range res.Path {
		hops[i] = r.name(id)
	}
	r.printf("  Distance: %d connections\n", res.Distance)
	r.printf("  Path: %s\n", strings.Join(hops, " -> "))

	return r.err
}

// Reach prints the users reachable from id grouped by hop count.
// id itself (hop 0) is omitted.
func (r *Renderer) Reach(id string, layers map[string]int) error {
	byHop := make(map[int][]string)
	maxHop := 0
	for u, d := range layers {
		if d == 0 {
			continue
		}
		byHop[d] = append(byHop[d], u)
		maxHop = max(maxHop, d)
	}

	r.printf("Users within reach of %s:\n", r.name(id))
	if maxHop == 0 {
		r.printf("  %s\n", r.paint(r.muted, "None."))
	}
	for d := 1; d <= maxHop; d++ {
		users := byHop[d]
		sort.Strings(users)
		r.printf("  %d hop(s): %s\n", d, r.set(users))
	}

	return r.err
}

// Components prints each connected component with its size.
func (r *Renderer) Components(comps [][]string) error {
	if len(comps) == 0 {
		r.printf("The network is empty.\n")
	}
	for i, c := range comps {
		r.printf("Component %d (%d users): %s\n", i+1, len(c), r.set(c))
	}

	return r.err
}
