// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/aimemo/internal/utils"
)

// RequestOptions describes one call. Method defaults to GET. Body, when
// non-nil, is sent as JSON. Token, when non-empty, is sent as a bearer
// token.
type RequestOptions struct {
	Method string
	Body   any
	Token  string
}

// Result is the outcome of [Request]. When Err is nil, Data holds the
// decoded body or is nil for an empty or 204 response. Status is zero if
// no response was received.
type Result[T any] struct {
	Data   *T
	Err    error
	Status int
}

// Request performs a JSON request against client's base URL and decodes a
// successful body into T. It never retries.
func Request[T any](ctx context.Context, client *utils.HTTPClient, path string, opts RequestOptions) Result[T] {
	method := opts.Method
	if method == "" {
		method = http.MethodGet
	}

	req := client.R().SetContext(ctx)
	if opts.Token != "" {
		req.SetHeader("Authorization", "Bearer "+opts.Token)
	}
	if opts.Body != nil {
		req.SetHeader("Content-Type", "application/json").SetBody(opts.Body)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		return Result[T]{Err: fmt.Errorf("%w: %s %s: %w", ErrTransport, method, path, err)}
	}

	res := Result[T]{Status: resp.StatusCode()}
	if err = mapHTTPError(resp); err != nil {
		res.Err = err
		return res
	}

	body := bytes.TrimSpace(resp.Body())
	if resp.StatusCode() == http.StatusNoContent || len(body) == 0 {
		return res
	}

	var data T
	if err = json.Unmarshal(body, &data); err != nil {
		res.Err = fmt.Errorf("%w: %s %s: %w", ErrMalformedResponse, method, path, err)
		return res
	}

	res.Data = &data
	return res
}
