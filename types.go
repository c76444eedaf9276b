package gqlpath

// types.go makes the types (and constants) of the internal packages that appear in the API available to callers

import (
	"github.com/andrewwphillips/gqlpath/internal/fetch"
	"github.com/andrewwphillips/gqlpath/internal/field"
	"github.com/andrewwphillips/gqlpath/internal/schema"
	"github.com/andrewwphillips/gqlpath/internal/search"
)

// TypeField is one hop of a path - a field of a type.  The last hop of a path to a type
// (rather than a field) has just the type name (FieldName is empty).
type TypeField = field.TypeField

// Path is a list of hops starting with a field of a root (Query or Mutation) type
type Path = field.Path

// Result is one path found to a target (type or field), starting at one of the fields of Root
type Result = search.Result

// Mode says how a search query is matched against type and field names
type Mode = field.Mode

const (
	Exact      = field.Exact      // name is the query
	Containing = field.Containing // name contains the query
	Glob       = field.Glob       // name matches a glob pattern like *Connection
)

// Scope says whether type names, field names or both are searched
type Scope = search.Scope

const (
	All    = search.All
	Types  = search.Types
	Fields = search.Fields
)

// Errors that may be returned (use errors.Is to check for them)
var (
	ErrInvalidSchemaJSON = schema.ErrInvalidSchemaJSON
	ErrInvalidSchema     = schema.ErrInvalidSchema
	ErrTokenExpired      = fetch.ErrTokenExpired
	ErrStatus            = fetch.ErrStatus
	ErrProtocol          = fetch.ErrProtocol
	ErrQuery             = fetch.ErrQuery
)
