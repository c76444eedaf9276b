package fetch

// ws.go gets the introspection result over a websocket using the graphql-transport-ws protocol:
//   client: connection_init      server: connection_ack
//   client: subscribe            server: next (the result) then complete
// The server may also send ping (we reply pong) or error (which ends the operation).

import (
	"context"
	"encoding/json"

	"github.com/gorilla/websocket"
	"github.com/pkg/errors"
)

const (
	subProtocol = "graphql-transport-ws"
	operationID = "1"
)

type (
	wsMessage struct {
		Type    string          `json:"type"`
		ID      string          `json:"id,omitempty"`
		Payload json.RawMessage `json:"payload,omitempty"`
	}

	wsConnection struct {
		*websocket.Conn
	}
)

// WebSocket opens a websocket to the URL, runs the introspection query as a single
// operation and returns the result - the payload of the "next" message.
func WebSocket(ctx context.Context, url string, options ...func(*Options)) ([]byte, error) {
	opt, err := newOptions(options)
	if err != nil {
		return nil, err
	}
	ctx, cancel := context.WithTimeout(ctx, opt.timeout)
	defer cancel()

	dialer := *opt.dialer
	dialer.Subprotocols = []string{subProtocol}
	conn, resp, err := dialer.DialContext(ctx, url, opt.header)
	if err != nil {
		if resp != nil && resp.StatusCode != 0 && (resp.StatusCode < 200 || resp.StatusCode > 299) {
			return nil, errors.Wrapf(ErrStatus, "%s from %s", resp.Status, url)
		}
		return nil, errors.Wrapf(err, "dialing %s", url)
	}
	c := wsConnection{Conn: conn}
	defer c.Close()

	// Unblock any read or write if the context is done before we are
	stop := context.AfterFunc(ctx, func() { _ = c.Close() })
	defer stop()

	buf, err := c.introspect()
	if err != nil && ctx.Err() != nil {
		return nil, errors.Wrapf(ctx.Err(), "waiting for %s", url)
	}
	if err != nil {
		return nil, err
	}
	if err := checkResponse(buf); err != nil {
		return nil, err
	}
	return buf, nil
}

// introspect does the handshake then sends the query and waits for the result
func (c wsConnection) introspect() ([]byte, error) {
	if err := c.send(wsMessage{Type: "connection_init"}); err != nil {
		return nil, err
	}
	for acked := false; !acked; {
		message, err := c.read()
		if err != nil {
			return nil, err
		}
		switch message.Type {
		case "connection_ack":
			acked = true
		case "ping":
			if err := c.send(wsMessage{Type: "pong"}); err != nil {
				return nil, err
			}
		default:
			return nil, errors.Wrapf(ErrProtocol, "expected connection_ack but got %q", message.Type)
		}
	}

	payload, err := json.Marshal(request{OperationName: OperationName, Query: IntrospectionQuery})
	if err != nil {
		return nil, errors.Wrap(err, "encoding introspection query")
	}
	if err := c.send(wsMessage{Type: "subscribe", ID: operationID, Payload: payload}); err != nil {
		return nil, err
	}

	var result []byte
	for {
		message, err := c.read()
		if err != nil {
			return nil, err
		}
		switch message.Type {
		case "next":
			if message.ID == operationID {
				result = message.Payload
			}
		case "complete":
			if message.ID != operationID {
				continue
			}
			if result == nil {
				return nil, errors.Wrap(ErrProtocol, "operation completed without a result")
			}
			_ = c.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
			return result, nil
		case "error":
			return nil, errors.Wrapf(ErrProtocol, "server error: %s", message.Payload)
		case "ping":
			if err := c.send(wsMessage{Type: "pong"}); err != nil {
				return nil, err
			}
		case "pong":
		default:
			return nil, errors.Wrapf(ErrProtocol, "unexpected message type %q", message.Type)
		}
	}
}

func (c wsConnection) send(message wsMessage) error {
	return errors.Wrapf(c.WriteJSON(message), "sending %s", message.Type)
}

func (c wsConnection) read() (*wsMessage, error) {
	var message wsMessage
	if err := c.ReadJSON(&message); err != nil {
		return nil, errors.Wrap(err, "reading websocket message")
	}
	return &message, nil
}
