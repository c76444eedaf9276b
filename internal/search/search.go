// Package search finds how a type (or field) of a GraphQL schema can be reached from the
// root operation types, by finding the shortest chain of fields using a breadth-first search.
package search

// search.go has the breadth-first search between two types

import (
	"github.com/andrewwphillips/gqlpath/internal/field"
	"github.com/andrewwphillips/gqlpath/internal/schema"
)

// Search returns the shortest path of (type, field) hops from the start type to the end type.
// Only fields of object type are followed (scalars, enums etc are dead ends).  Where there are
// several shortest paths the one found first, using the order that fields are declared, is returned.
// If start and end are the same the path is just the type (with no field), and if there is no
// way to get from start to end an empty (nil) path is returned.
func Search(start, end string, types schema.TypeMap) field.Path {
	if start == end {
		return field.Path{field.New(start, "")}
	}

	visited := map[string]struct{}{start: {}}
	queue := []string{start}
	// previous records, for each type found, the hop (type and field) that we first got to it from
	previous := make(map[string]field.TypeField)

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		t, ok := types[current]
		if !ok {
			continue // dangling reference - just a dead end
		}
		if current == end {
			return backtrack(start, end, previous)
		}

		for i := range t.Fields {
			ref := t.Fields[i].Type.Deepest()
			if !ref.IsObject() || ref.Name == nil {
				continue
			}
			next := *ref.Name
			if _, seen := visited[next]; seen {
				continue
			}
			visited[next] = struct{}{}
			queue = append(queue, next)
			previous[next] = field.New(current, t.Fields[i].Name)
		}
	}
	return nil
}

// backtrack follows the previous links from end to start and returns the hops in start to end order
func backtrack(start, end string, previous map[string]field.TypeField) field.Path {
	var r field.Path
	for name := end; name != start; {
		hop := previous[name]
		r = append(r, hop)
		name = hop.TypeName
	}
	// reverse it
	for i, j := 0, len(r)-1; i < j; i, j = i+1, j-1 {
		r[i], r[j] = r[j], r[i]
	}
	return r
}
