package gqlpath

// options.go handles options that control loading, searching and rendering.
// Most options are just passed on to the fetch, search or render packages.  (See
// internal/search/finder.go for how the option closures work.)

import (
	"io"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/andrewwphillips/gqlpath/internal/fetch"
)

// Options holds the settings made by the option functions (Match, ShowRelay, etc)
type Options struct {
	// Load options
	header  http.Header
	token   string
	timeout time.Duration
	stdin   io.Reader

	// Search options
	mode      Mode
	scope     Scope
	showRelay bool
	roots     []string

	// Render options
	json, color bool

	log *slog.Logger
}

func newOptions(list []func(*Options)) *Options {
	opt := &Options{stdin: os.Stdin}
	for _, option := range list {
		option(opt)
	}
	if opt.log == nil {
		opt.log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return opt
}

// fetchOptions converts the load options to those used by the fetch package
func (opt *Options) fetchOptions() []func(*fetch.Options) {
	var r []func(*fetch.Options)
	for key, values := range opt.header {
		for _, v := range values {
			r = append(r, fetch.Header(key, v))
		}
	}
	if opt.token != "" {
		r = append(r, fetch.Bearer(opt.token))
	}
	if opt.timeout > 0 {
		r = append(r, fetch.Timeout(opt.timeout))
	}
	return r
}

// Header adds an HTTP header sent when loading from a URL
func Header(key, value string) func(*Options) {
	return func(opt *Options) {
		if opt.header == nil {
			opt.header = make(http.Header)
		}
		opt.header.Add(key, value)
	}
}

// Bearer sets a token used to authorise loading from a URL.  An expired JWT is rejected before
// it is sent.
func Bearer(token string) func(*Options) {
	return func(opt *Options) {
		opt.token = token
	}
}

// Timeout limits the time taken to load from a URL (default 30 seconds)
func Timeout(timeout time.Duration) func(*Options) {
	return func(opt *Options) {
		opt.timeout = timeout
	}
}

// Stdin replaces what is read when the source is "-" (os.Stdin)
func Stdin(r io.Reader) func(*Options) {
	return func(opt *Options) {
		opt.stdin = r
	}
}

// Match sets how the search query is matched against names (default Exact)
func Match(mode Mode) func(*Options) {
	return func(opt *Options) {
		opt.mode = mode
	}
}

// Only limits a search to type names or field names (default All which does both)
func Only(scope Scope) func(*Options) {
	return func(opt *Options) {
		opt.scope = scope
	}
}

// Roots sets the names of the types that searches start from.  By default these are the
// query and mutation types of the schema.
func Roots(names ...string) func(*Options) {
	return func(opt *Options) {
		opt.roots = append(opt.roots, names...)
	}
}

// ShowRelay includes relay pagination types (connections, edges, page info) in searches and in
// rendered paths.  They are skipped by default since they are just plumbing.
func ShowRelay(on bool) func(*Options) {
	return func(opt *Options) {
		opt.showRelay = on
	}
}

// JSON renders results as JSON rather than text
func JSON(on bool) func(*Options) {
	return func(opt *Options) {
		opt.json = on
	}
}

// Color uses ANSI colors when rendering text
func Color(on bool) func(*Options) {
	return func(opt *Options) {
		opt.color = on
	}
}

// Logger sets where debug messages about loading and searching go (default is nowhere)
func Logger(l *slog.Logger) func(*Options) {
	return func(opt *Options) {
		opt.log = l
	}
}
