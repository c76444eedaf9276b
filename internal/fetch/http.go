package fetch

// http.go posts the introspection query to an HTTP(S) endpoint

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/pkg/errors"
)

// HTTP posts the introspection query to the URL and returns the body of the response
// (which should be a JSON introspection result).
func HTTP(ctx context.Context, url string, options ...func(*Options)) ([]byte, error) {
	opt, err := newOptions(options)
	if err != nil {
		return nil, err
	}
	ctx, cancel := context.WithTimeout(ctx, opt.timeout)
	defer cancel()

	body, err := json.Marshal(request{OperationName: OperationName, Query: IntrospectionQuery})
	if err != nil {
		return nil, errors.Wrap(err, "encoding introspection query")
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, errors.Wrapf(err, "creating request for %s", url)
	}
	for key, values := range opt.header {
		for _, v := range values {
			req.Header.Add(key, v)
		}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := opt.client.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "posting introspection query to %s", url)
	}
	defer resp.Body.Close()

	buf, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrapf(err, "reading response from %s", url)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, errors.Wrapf(ErrStatus, "%s from %s", resp.Status, url)
	}
	if err := checkResponse(buf); err != nil {
		return nil, err
	}
	return buf, nil
}
