// Package fetch gets the introspection result of a running GraphQL server, by posting the
// introspection query over HTTP or by subscribing over a websocket (graphql-transport-ws).
package fetch

// fetch.go has the introspection query, errors, and the options common to HTTP and websockets

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/gorilla/websocket"
	"github.com/pkg/errors"
)

var (
	// ErrTokenExpired is returned (before anything is sent) if the bearer token is a JWT that has expired
	ErrTokenExpired = errors.New("bearer token has expired")

	// ErrStatus is returned when the server replies with an HTTP status that is not 2XX
	ErrStatus = errors.New("unexpected HTTP status")

	// ErrProtocol means the websocket server did not follow the graphql-transport-ws protocol
	ErrProtocol = errors.New("graphql-transport-ws protocol error")

	// ErrQuery is returned if the server rejected the introspection query (eg introspection is turned off)
	ErrQuery = errors.New("introspection query failed")
)

// OperationName is the name of the operation in IntrospectionQuery
const OperationName = "IntrospectionQuery"

// IntrospectionQuery asks for just the parts of the schema needed to find paths - the root
// types and, for every type, its fields and their (wrapped) types.
const IntrospectionQuery = `query IntrospectionQuery {
  __schema {
    queryType { name }
    mutationType { name }
    types {
      name
      kind
      fields(includeDeprecated: true) {
        name
        type { ...TypeRef }
      }
    }
  }
}

fragment TypeRef on __Type {
  kind
  name
  ofType {
    kind
    name
    ofType {
      kind
      name
      ofType {
        kind
        name
        ofType {
          kind
          name
          ofType {
            kind
            name
            ofType {
              kind
              name
              ofType {
                kind
                name
              }
            }
          }
        }
      }
    }
  }
}`

const defaultTimeout = 30 * time.Second

type (
	// request is the body of a GraphQL request (also the payload of a "subscribe" message)
	request struct {
		OperationName string `json:"operationName"`
		Query         string `json:"query"`
	}

	// response is just enough of a GraphQL response to tell if the query failed
	response struct {
		Data   json.RawMessage `json:"data"`
		Errors []struct {
			Message string `json:"message"`
		} `json:"errors"`
	}

	// Options holds the settings made by the option functions (Header, Bearer, etc)
	Options struct {
		header  http.Header
		token   string
		timeout time.Duration
		client  *http.Client
		dialer  *websocket.Dialer
	}
)

// Header adds an HTTP header to the request (or the websocket handshake).  It may be used more than once.
func Header(key, value string) func(*Options) {
	return func(opt *Options) {
		if opt.header == nil {
			opt.header = make(http.Header)
		}
		opt.header.Add(key, value)
	}
}

// Bearer sets the Authorization header to use the token.  If the token is a JWT its expiry time is checked.
func Bearer(token string) func(*Options) {
	return func(opt *Options) {
		opt.token = token
	}
}

// Timeout limits how long the whole fetch can take (default 30 seconds)
func Timeout(timeout time.Duration) func(*Options) {
	return func(opt *Options) {
		opt.timeout = timeout
	}
}

// Client sets the HTTP client used for HTTP(S) sources
func Client(client *http.Client) func(*Options) {
	return func(opt *Options) {
		opt.client = client
	}
}

// Dialer sets the websocket dialer used for WS(S) sources
func Dialer(dialer *websocket.Dialer) func(*Options) {
	return func(opt *Options) {
		opt.dialer = dialer
	}
}

// newOptions runs the option closures then fills in defaults for any not set
func newOptions(list []func(*Options)) (*Options, error) {
	opt := &Options{}
	for _, option := range list {
		option(opt)
	}

	if opt.header == nil {
		opt.header = make(http.Header)
	}
	if opt.timeout <= 0 {
		opt.timeout = defaultTimeout
	}
	if opt.client == nil {
		opt.client = http.DefaultClient
	}
	if opt.dialer == nil {
		opt.dialer = websocket.DefaultDialer
	}

	if opt.token != "" {
		if err := checkToken(opt.token); err != nil {
			return nil, err
		}
		opt.header.Set("Authorization", "Bearer "+opt.token)
	}
	return opt, nil
}

// checkToken returns ErrTokenExpired if the token is a JWT with an expiry time in the past.
// The signature is not checked (we don't have the key) and a token that is not a JWT is OK.
func checkToken(token string) error {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil // opaque token
	}
	if !claims.VerifyExpiresAt(time.Now().Unix(), false) {
		return errors.WithStack(ErrTokenExpired)
	}
	return nil
}

// checkResponse returns ErrQuery if the response has errors and no data
func checkResponse(body []byte) error {
	var r response
	if err := json.Unmarshal(body, &r); err != nil {
		return nil // leave it to the schema decoder to report
	}
	if len(r.Errors) == 0 || len(r.Data) > 0 && string(r.Data) != "null" {
		return nil
	}
	msg := make([]string, 0, len(r.Errors))
	for _, e := range r.Errors {
		msg = append(msg, e.Message)
	}
	return errors.Wrap(ErrQuery, strings.Join(msg, "; "))
}
