package markko

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/markkohq/markko-go/pkg/markko/auth"
	"github.com/markkohq/markko-go/pkg/markko/metrics"
)

// get performs a GET request against a resource endpoint.
func (c *Client) get(ctx context.Context, path string, query url.Values, oauth *auth.TokenRecord) (*Envelope, error) {
	return c.do(ctx, http.MethodGet, path, query, nil, oauth)
}

// post performs a POST request with a JSON body.
func (c *Client) post(ctx context.Context, path string, body any, oauth *auth.TokenRecord) (*Envelope, error) {
	return c.do(ctx, http.MethodPost, path, nil, body, oauth)
}

// patch performs a PATCH request with a JSON body.
func (c *Client) patch(ctx context.Context, path string, body any, oauth *auth.TokenRecord) (*Envelope, error) {
	return c.do(ctx, http.MethodPatch, path, nil, body, oauth)
}

// put performs a PUT request with a JSON body.
func (c *Client) put(ctx context.Context, path string, body any, oauth *auth.TokenRecord) (*Envelope, error) {
	return c.do(ctx, http.MethodPut, path, nil, body, oauth)
}

// del performs a DELETE request; body may be nil.
func (c *Client) del(ctx context.Context, path string, body any, oauth *auth.TokenRecord) (*Envelope, error) {
	return c.do(ctx, http.MethodDelete, path, nil, body, oauth)
}

// do builds, authenticates, and executes one resource request, then
// normalizes the response envelope. An error envelope in a 2xx body or
// any non-2xx status becomes *APIError; token resolution failures reach
// the caller as *auth.AuthenticationError without the request ever
// being sent.
func (c *Client) do(
	ctx context.Context,
	method, path string,
	query url.Values,
	body any,
	oauth *auth.TokenRecord,
) (*Envelope, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limit: %w", err)
		}
	}

	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var bodyReader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshaling request body: %w", err)
		}
		bodyReader = bytes.NewReader(data)
	}

	ctx, span := c.tracer.Start(ctx, "markko."+method+" "+path)
	defer span.End()
	span.SetAttributes(
		attribute.String("http.method", method),
		attribute.String("markko.path", path),
	)

	req, err := http.NewRequestWithContext(ctx, method, u, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if oauth != nil {
		marker, err := json.Marshal(oauth)
		if err != nil {
			return nil, fmt.Errorf("serializing per-call token: %w", err)
		}
		req.Header.Set(auth.HeaderOAuthToken, string(marker))
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, fmt.Errorf("sending request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))
	metrics.RecordAPICall(method, resp.StatusCode)

	if resp.StatusCode >= http.StatusBadRequest {
		span.SetStatus(codes.Error, strconv.Itoa(resp.StatusCode))
		metrics.RecordAPIError(method)
		return nil, apiErrorFromStatus(resp.StatusCode, respBody)
	}

	env := &Envelope{}
	if len(respBody) > 0 {
		if err := json.Unmarshal(respBody, env); err != nil {
			return nil, fmt.Errorf("decoding response: %w", err)
		}
	}

	if env.Error {
		span.SetStatus(codes.Error, env.Message)
		metrics.RecordAPIError(method)
		return nil, env.apiError(resp.StatusCode)
	}

	return env, nil
}

// apiErrorFromStatus maps a non-2xx response to an *APIError, using the
// error envelope body when the server sent one. The code is always the
// HTTP status: the envelope's own code field only governs 2xx error
// bodies.
func apiErrorFromStatus(status int, body []byte) *APIError {
	env := &Envelope{}
	if err := json.Unmarshal(body, env); err == nil && env.Message != "" {
		return &APIError{
			Message: env.Message,
			Code:    status,
			Errors:  env.Errors,
		}
	}
	return &APIError{
		Message: http.StatusText(status),
		Code:    status,
	}
}
