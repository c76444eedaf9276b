package field

// match.go decides whether a type or field name matches a search query

import (
	"fmt"
	"strings"

	"github.com/gobwas/glob"
)

// Mode is an "enumeration" of the ways a query can be matched against a name
type Mode int

const (
	Exact      Mode = iota // name must equal the query
	Containing             // name must contain the query as a substring
	Glob                   // query is a glob pattern (eg *Connection or User{Edge,Connection})
)

func (m Mode) String() string {
	switch m {
	case Exact:
		return "exact"
	case Containing:
		return "containing"
	case Glob:
		return "glob"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// Matcher matches names against one query
type Matcher struct {
	Query string
	Mode  Mode

	g glob.Glob // only used for Glob mode
}

// NewMatcher creates a Matcher, returning an error if the query is not a valid glob (Glob mode only)
func NewMatcher(query string, mode Mode) (*Matcher, error) {
	m := &Matcher{Query: query, Mode: mode}
	if mode == Glob {
		g, err := glob.Compile(query)
		if err != nil {
			return nil, fmt.Errorf("%w compiling glob %q", err, query)
		}
		m.g = g
	}
	return m, nil
}

// Match returns true if the name matches the query
func (m *Matcher) Match(name string) bool {
	switch m.Mode {
	case Containing:
		return strings.Contains(name, m.Query)
	case Glob:
		return m.g.Match(name)
	}
	return name == m.Query
}
