package render

// json.go has the JSON renderer

import (
	"encoding/json"
	"io"

	"github.com/dolmen-go/jsonmap"

	"github.com/andrewwphillips/gqlpath/internal/schema"
	"github.com/andrewwphillips/gqlpath/internal/search"
)

// recordKeys is the order that the keys of each result are written
var recordKeys = []string{"target", "root", "path", "hops"}

// JSON writes all the results as a JSON array with an object for each result:
//
//	{"target": "Post.author", "root": "Query", "path": ["Query.user", "User.posts", "Post.author"], "hops": 3}
//
// "hops" is the length of the full path even if relay types are not shown in "path".
type JSON struct {
	w         io.Writer
	types     schema.TypeMap
	showRelay bool
	indent    string
}

// NewJSON creates a JSON renderer
func NewJSON(w io.Writer, types schema.TypeMap, showRelay bool) *JSON {
	return &JSON{w: w, types: types, showRelay: showRelay, indent: "  "}
}

// Render writes the results as a JSON array (an empty array if there are none)
func (j *JSON) Render(results []search.Result) error {
	records := make([]*jsonmap.Ordered, 0, len(results))
	for _, r := range results {
		records = append(records, j.record(r))
	}
	buf, err := json.MarshalIndent(records, "", j.indent)
	if err != nil {
		return err
	}
	buf = append(buf, '\n')
	_, err = j.w.Write(buf)
	return err
}

func (j *JSON) record(r search.Result) *jsonmap.Ordered {
	return &jsonmap.Ordered{
		Order: recordKeys,
		Data: map[string]interface{}{
			"target": r.Target.String(),
			"root":   r.Root,
			"path":   Visible(r.Path, j.types, j.showRelay).Strings(),
			"hops":   len(r.Path),
		},
	}
}
