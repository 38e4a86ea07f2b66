package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/voidshard/cavatica/pkg/api/http/common"
	"github.com/voidshard/cavatica/pkg/errors"
	"github.com/voidshard/cavatica/pkg/structs"
)

// do is a helper to send (optional) JSON data to a given URL and unmarshal the response.
//
// Any failure to get a 2xx response is an ErrTransport, any failure to read the
// response into out is an ErrResponseParse.
func do(ctx context.Context, cli *http.Client, method string, addr *url.URL, headers structs.Headers, in interface{}, out interface{}) error {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("%w unable to marshal request: %v", errors.ErrInvalidArg, err)
		}
		body = bytes.NewBuffer(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, addr.String(), body)
	if err != nil {
		return fmt.Errorf("%w %v", errors.ErrTransport, err)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	if in != nil && req.Header.Get(common.HEADER_CONTENT_TYPE) == "" {
		req.Header.Set(common.HEADER_CONTENT_TYPE, common.CONTENT_TYPE_JSON)
	}

	resp, err := cli.Do(req)
	if err != nil {
		return fmt.Errorf("%w %s %s: %v", errors.ErrTransport, method, addr.Path, err)
	}

	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w reading body: %v", errors.ErrTransport, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 { // some error code, assume message is error message
		return fmt.Errorf("%w %s %s bad status code %d, returned %s", errors.ErrTransport, method, addr.Path, resp.StatusCode, string(data))
	}

	if out == nil {
		return nil
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return fmt.Errorf("%w no response body with status code %d", errors.ErrResponseParse, resp.StatusCode)
	}
	if err = json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%w %v", errors.ErrResponseParse, err)
	}
	return nil
}
