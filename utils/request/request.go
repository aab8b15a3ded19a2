// Package request is a small JSON-over-HTTP helper shared by the provider
// clients.
package request

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/pkg/errors"
)

const _defaultTimeout = 30 * time.Second

// Get performs a GET against rawurl with the given query parameters and
// decodes the JSON response body into resp (skipped when resp is nil). The
// call is bounded by the context or, when the context carries no deadline, by
// a default timeout. A non-2xx status is an error.
func Get(ctx context.Context, client *http.Client, rawurl string, params url.Values, resp interface{}, headKvs ...string) error {
	if client == nil {
		client = http.DefaultClient
	}
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, _defaultTimeout)
		defer cancel()
	}

	if len(params) > 0 {
		rawurl = rawurl + "?" + params.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawurl, nil)
	if err != nil {
		return err
	}
	if len(headKvs)%2 != 0 {
		return errors.New("headers must be pairs")
	}
	for i := 0; i < len(headKvs); i += 2 {
		req.Header.Set(headKvs[i], headKvs[i+1])
	}

	res, err := client.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return err
	}
	if res.StatusCode < 200 || res.StatusCode > 299 {
		return errors.Errorf("request to %s failed with status %d: %s",
			req.URL.Host, res.StatusCode, string(body))
	}
	if resp == nil {
		return nil
	}
	return json.Unmarshal(body, resp)
}
