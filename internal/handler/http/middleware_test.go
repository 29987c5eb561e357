// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"compress/gzip"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/aimemo/internal/logger"
	"github.com/MKhiriev/aimemo/internal/utils"
)

func okHandler(w http.ResponseWriter, _ *http.Request) {
	utils.WriteJSON(w, map[string]string{"hello": "world"}, http.StatusOK)
}

func TestWithCORS(t *testing.T) {
	tests := []struct {
		name       string
		origins    []string
		origin     string
		method     string
		wantOrigin string
		wantStatus int
	}{
		{name: "wildcard", origins: []string{"*"}, origin: "https://a.example", method: http.MethodGet, wantOrigin: "*", wantStatus: http.StatusOK},
		{name: "listed origin", origins: []string{"https://a.example"}, origin: "https://a.example", method: http.MethodGet, wantOrigin: "https://a.example", wantStatus: http.StatusOK},
		{name: "unlisted origin", origins: []string{"https://a.example"}, origin: "https://evil.example", method: http.MethodGet, wantStatus: http.StatusOK},
		{name: "preflight", origins: []string{"*"}, origin: "https://a.example", method: http.MethodOptions, wantOrigin: "*", wantStatus: http.StatusNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := &Handler{corsOrigins: tt.origins, logger: logger.Nop()}

			req := httptest.NewRequest(tt.method, "/auth/login", nil)
			req.Header.Set("Origin", tt.origin)
			rr := httptest.NewRecorder()

			h.withCORS(http.HandlerFunc(okHandler)).ServeHTTP(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantOrigin, rr.Header().Get("Access-Control-Allow-Origin"))
			assert.Equal(t, "GET,POST,OPTIONS", rr.Header().Get("Access-Control-Allow-Methods"))
			assert.Equal(t, "authorization,content-type", rr.Header().Get("Access-Control-Allow-Headers"))
		})
	}
}

func TestWithCORS_PreflightOnRouter(t *testing.T) {
	h := &Handler{corsOrigins: []string{"*"}, logger: logger.Nop()}
	req := httptest.NewRequest(http.MethodOptions, "/auth/me", nil)
	rr := httptest.NewRecorder()

	h.Init().ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Empty(t, rr.Body.String())
}

func TestWithGZip_CompressesResponse(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rr := httptest.NewRecorder()

	withGZip(http.HandlerFunc(okHandler)).ServeHTTP(rr, req)

	require.Equal(t, "gzip", rr.Header().Get("Content-Encoding"))
	zr, err := gzip.NewReader(rr.Body)
	require.NoError(t, err)
	plain, err := io.ReadAll(zr)
	require.NoError(t, err)
	assert.JSONEq(t, `{"hello":"world"}`, string(plain))
}

func TestWithGZip_PlainWithoutAcceptEncoding(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()

	withGZip(http.HandlerFunc(okHandler)).ServeHTTP(rr, req)

	assert.Empty(t, rr.Header().Get("Content-Encoding"))
	assert.JSONEq(t, `{"hello":"world"}`, rr.Body.String())
}

func TestWithGZip_NoContentIsNotCompressed(t *testing.T) {
	req := httptest.NewRequest(http.MethodOptions, "/", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rr := httptest.NewRecorder()

	withGZip(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Empty(t, rr.Header().Get("Content-Encoding"))
	assert.Zero(t, rr.Body.Len())
}

func TestWithGZip_InflatesRequest(t *testing.T) {
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := zw.Write([]byte(`{"email":"alice@example.com"}`))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	req := httptest.NewRequest(http.MethodPost, "/", &buf)
	req.Header.Set("Content-Encoding", "gzip")
	rr := httptest.NewRecorder()

	var got map[string]string
	withGZip(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Content-Encoding"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		r.Body.Close()
	})).ServeHTTP(rr, req)

	assert.Equal(t, "alice@example.com", got["email"])
}

func TestWithGZip_InvalidRequestBody(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("not gzip"))
	req.Header.Set("Content-Encoding", "gzip")
	rr := httptest.NewRecorder()

	withGZip(http.HandlerFunc(okHandler)).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.JSONEq(t, `{"error":"Invalid gzip data"}`, rr.Body.String())
}

func TestWithTraceIDAndLogging(t *testing.T) {
	var out bytes.Buffer
	h := &Handler{logger: &logger.Logger{Logger: zerolog.New(&out)}}

	req := httptest.NewRequest(http.MethodGet, "/health?x=1", nil)
	req.Header.Set(traceIDHeader, "trace-abc")
	rr := httptest.NewRecorder()

	h.withTraceID(h.withLogging(http.HandlerFunc(okHandler))).ServeHTTP(rr, req)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &entry), out.String())
	assert.Equal(t, "trace-abc", entry["trace_id"])
	assert.Equal(t, "/health?x=1", entry["uri"])
	assert.Equal(t, "GET", entry["method"])
	assert.EqualValues(t, http.StatusOK, entry["status"])
	assert.EqualValues(t, len(`{"hello":"world"}`), entry["size"])
}

func TestWithTraceID_OverlongHeaderReplaced(t *testing.T) {
	h := &Handler{logger: logger.Nop()}
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(traceIDHeader, strings.Repeat("x", 200))
	rr := httptest.NewRecorder()

	h.withTraceID(http.HandlerFunc(okHandler)).ServeHTTP(rr, req)

	assert.True(t, utils.IsUUID(rr.Header().Get(traceIDHeader)))
}

func TestResponseWriter_WriteHeaderOnce(t *testing.T) {
	rr := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rr}

	w.WriteHeader(http.StatusTeapot)
	w.WriteHeader(http.StatusOK)
	_, err := w.Write([]byte("abc"))
	require.NoError(t, err)

	assert.Equal(t, http.StatusTeapot, w.status)
	assert.Equal(t, http.StatusTeapot, rr.Code)
	assert.Equal(t, 3, w.size)
}
