package schema

// validate.go has the (optional) checks that an introspection result makes sense as a schema

import (
	"errors"
	"fmt"
	"regexp"
)

var nameRegex = regexp.MustCompile(`^[_a-zA-Z][_a-zA-Z0-9]*$`)

// validGraphQLName checks that a string is a valid GraphQL identifier (type or field name).
// Note that names starting with a double underscore are allowed as introspection results include the meta types (__Type etc).
func validGraphQLName(s string) bool {
	return nameRegex.MatchString(s)
}

// Validate checks the parts of the schema that the path search relies on:
//   - every type has a valid name
//   - every field of an object type has a valid name and a named (deepest) type
//
// All the problems found are returned (joined) and each wraps ErrInvalidSchema.
// Validate is not needed for searching but detects problems up front rather than part way through a search.
func (s *Schema) Validate() error {
	var errs []error
	for i := range s.Types {
		t := &s.Types[i]
		if !validGraphQLName(t.Name) {
			errs = append(errs, fmt.Errorf("%w: type %q is not a valid name", ErrInvalidSchema, t.Name))
			continue
		}
		if !t.IsObject() {
			continue
		}
		for j := range t.Fields {
			f := &t.Fields[j]
			if !validGraphQLName(f.Name) {
				errs = append(errs, fmt.Errorf("%w: field %q of %s is not a valid name", ErrInvalidSchema, f.Name, t.Name))
				continue
			}
			if _, err := f.TypeName(); err != nil {
				errs = append(errs, fmt.Errorf("%w (in type %s)", err, t.Name))
			}
		}
	}
	return errors.Join(errs...)
}
