package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/oapi-codegen/runtime"

	"github.com/Aleph-Alpha/inference-gateway/pkg/inference"
)

// param is one named input forwarded to the backend unchanged.
type param struct {
	name  string
	value string
}

// invoke performs one backend call and hands the parsed response document
// to decode. A nil decode skips body parsing. The returned duration runs
// from just before the request is sent until decode has returned.
func (c *Client) invoke(ctx context.Context, operation, path string, params []param, decode func(document) error) (time.Duration, error) {
	ctx, span := c.tracer.StartSpan(ctx, "backend."+operation)
	defer span.End()
	c.tracer.SetAttributes(span, map[string]interface{}{
		"backend.operation": operation,
		"http.url":          c.baseURL + path,
	})

	took, status, err := c.exchange(ctx, operation, path, params, decode)

	c.tracer.SetAttributes(span, map[string]interface{}{"http.status_code": status})
	if err != nil {
		c.tracer.RecordErrorOnSpan(span, err)
	}
	if c.observer != nil {
		c.observer.ObserveBackendCall(operation, inference.Outcome(err), took)
	}
	if c.logger != nil {
		c.logger.Debug("backend call finished", err, map[string]interface{}{
			"operation": operation,
			"status":    status,
			"took_ms":   took.Milliseconds(),
		})
	}
	return took, err
}

func (c *Client) exchange(ctx context.Context, operation, path string, params []param, decode func(document) error) (time.Duration, int, error) {
	req, err := c.buildRequest(ctx, path, params)
	if err != nil {
		return 0, 0, inference.NewBackendError(inference.ErrBackendUnreachable, operation, err)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return time.Since(start), 0, inference.NewBackendError(TranslateError(err), operation, err)
	}
	defer resp.Body.Close()

	// non-2xx bodies are only summarized, so their size never changes the kind
	if kind := StatusKind(resp.StatusCode); kind != nil {
		return time.Since(start), resp.StatusCode, &inference.BackendError{
			Kind:       kind,
			Operation:  operation,
			StatusCode: resp.StatusCode,
			Err:        &statusError{code: resp.StatusCode, body: summarize(readPrefix(resp.Body))},
		}
	}

	body, err := c.readBody(resp)
	if err != nil {
		return time.Since(start), resp.StatusCode, &inference.BackendError{
			Kind:       TranslateError(err),
			Operation:  operation,
			StatusCode: resp.StatusCode,
			Err:        err,
		}
	}

	if decode != nil {
		doc, err := parseDocument(body)
		if err == nil {
			err = decode(doc)
		}
		if err != nil {
			return time.Since(start), resp.StatusCode, &inference.BackendError{
				Kind:       inference.ErrBackendProtocol,
				Operation:  operation,
				StatusCode: resp.StatusCode,
				Err:        err,
			}
		}
	}
	return time.Since(start), resp.StatusCode, nil
}

// buildRequest encodes params as a JSON body or as query parameters
// depending on the request mode. Calls without params are plain GETs.
func (c *Client) buildRequest(ctx context.Context, path string, params []param) (*http.Request, error) {
	target, err := url.Parse(c.baseURL + path)
	if err != nil {
		return nil, fmt.Errorf("build url: %w", err)
	}

	method := http.MethodGet
	var body io.Reader
	if len(params) > 0 {
		switch c.mode {
		case ModeQuery:
			query := target.Query()
			for _, p := range params {
				frag, err := runtime.StyleParamWithLocation("form", true, p.name, runtime.ParamLocationQuery, p.value)
				if err != nil {
					return nil, fmt.Errorf("encode %s: %w", p.name, err)
				}
				parsed, err := url.ParseQuery(frag)
				if err != nil {
					return nil, fmt.Errorf("encode %s: %w", p.name, err)
				}
				for k, vs := range parsed {
					for _, v := range vs {
						query.Add(k, v)
					}
				}
			}
			target.RawQuery = query.Encode()
		default:
			payload := make(map[string]string, len(params))
			for _, p := range params {
				payload[p.name] = p.value
			}
			data, err := json.Marshal(payload)
			if err != nil {
				return nil, fmt.Errorf("encode request: %w", err)
			}
			method = http.MethodPost
			body = bytes.NewReader(data)
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, target.String(), body)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	for k, v := range c.tracer.GetCarrier(ctx) {
		req.Header.Set(k, v)
	}
	return req, nil
}

func (c *Client) readBody(resp *http.Response) ([]byte, error) {
	body, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBody+1))
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	if int64(len(body)) > c.maxBody {
		return nil, fmt.Errorf("response exceeds %d bytes: %w", c.maxBody, inference.ErrBackendProtocol)
	}
	return body, nil
}

// errorBodyLimit bounds how much of a non-2xx body is read.
const errorBodyLimit = 4 << 10

// readPrefix reads at most errorBodyLimit bytes. Read errors only shorten
// the prefix.
func readPrefix(r io.Reader) []byte {
	prefix, _ := io.ReadAll(io.LimitReader(r, errorBodyLimit))
	return prefix
}

// summarize trims an error body to something fit for a log line.
func summarize(body []byte) string {
	const limit = 512
	s := strings.TrimSpace(string(body))
	if len(s) > limit {
		s = s[:limit] + "..."
	}
	return s
}
