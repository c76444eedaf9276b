// Package render writes search results for people (colored text, one path per line) or
// for programs (JSON).  Relay types are left out of the paths unless asked for.
package render

// render.go has the text renderer

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/andrewwphillips/gqlpath/internal/field"
	"github.com/andrewwphillips/gqlpath/internal/schema"
	"github.com/andrewwphillips/gqlpath/internal/search"
)

const arrow = " -> "

// Renderer writes a list of results
type Renderer interface {
	Render(results []search.Result) error
}

type (
	// Text writes a line per result like this: "Post.author: Query.user -> User.posts -> Post.author"
	Text struct {
		w         io.Writer
		types     schema.TypeMap
		showRelay bool
		color     bool

		target, typeName, fieldName lipgloss.Style
	}
)

// NewText creates a text renderer.  The types are needed to know which hops are relay types.
func NewText(w io.Writer, types schema.TypeMap, options ...func(*Text)) *Text {
	t := &Text{w: w, types: types}
	for _, option := range options {
		option(t)
	}

	r := lipgloss.NewRenderer(w)
	if t.color {
		r.SetColorProfile(termenv.ANSI)
	}
	t.target = r.NewStyle().Foreground(lipgloss.Color("1"))    // red
	t.typeName = r.NewStyle().Foreground(lipgloss.Color("2"))  // green
	t.fieldName = r.NewStyle().Foreground(lipgloss.Color("7")) // white
	return t
}

// Color turns on ANSI colors (the default is plain text)
func Color(on bool) func(*Text) {
	return func(t *Text) {
		t.color = on
	}
}

// ShowRelay includes relay types in the paths (by default they are left out)
func ShowRelay(on bool) func(*Text) {
	return func(t *Text) {
		t.showRelay = on
	}
}

// Render writes all the results, one per line
func (t *Text) Render(results []search.Result) error {
	for _, r := range results {
		if _, err := fmt.Fprintln(t.w, t.Line(r)); err != nil {
			return err
		}
	}
	return nil
}

// Line returns the text for one result (without a newline)
func (t *Text) Line(r search.Result) string {
	var b strings.Builder
	b.WriteString(t.hop(r.Target, t.target, t.target))
	b.WriteString(": ")
	for i, tf := range Visible(r.Path, t.types, t.showRelay) {
		if i > 0 {
			b.WriteString(arrow)
		}
		b.WriteString(t.hop(tf, t.typeName, t.fieldName))
	}
	return b.String()
}

func (t *Text) hop(tf field.TypeField, typeStyle, fieldStyle lipgloss.Style) string {
	if !t.color {
		return tf.String()
	}
	if !tf.HasField() {
		return typeStyle.Render(tf.TypeName)
	}
	return typeStyle.Render(tf.TypeName) + "." + fieldStyle.Render(tf.FieldName)
}

// Visible returns the hops of the path that should be shown - all of them if showRelay is
// true, otherwise those that are not in a relay type.
func Visible(p field.Path, types schema.TypeMap, showRelay bool) field.Path {
	if showRelay {
		return p
	}
	r := make(field.Path, 0, len(p))
	for _, tf := range p {
		if t, ok := types[tf.TypeName]; ok && t.IsRelay() {
			continue
		}
		r = append(r, tf)
	}
	return r
}
