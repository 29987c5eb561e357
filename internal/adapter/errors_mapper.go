// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// mapHTTPError returns nil for 2xx responses and an [*APIError] otherwise.
//
// The message is picked in order: the "error" string of a JSON body, the
// raw trimmed body, then "Request failed (<status>)". An empty or null
// "error" counts as absent, so an [*APIError] never carries a blank message.
func mapHTTPError(resp *resty.Response) error {
	status := resp.StatusCode()
	if status >= http.StatusOK && status < http.StatusMultipleChoices {
		return nil
	}

	return &APIError{Status: status, Message: errorMessage(status, resp.Body())}
}

func errorMessage(status int, body []byte) string {
	var payload struct {
		Error *string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Error != nil && *payload.Error != "" {
		return *payload.Error
	}

	if text := strings.TrimSpace(string(body)); text != "" {
		return text
	}

	return fmt.Sprintf("Request failed (%d)", status)
}
