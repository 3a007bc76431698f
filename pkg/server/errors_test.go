// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	apperrors "github.com/NVIDIA/recipebook/pkg/errors"
)

func TestRetryableFromCode(t *testing.T) {
	tests := []struct {
		name string
		code apperrors.ErrorCode
		want bool
	}{
		{"invalid request", apperrors.ErrCodeInvalidRequest, false},
		{"not found", apperrors.ErrCodeNotFound, false},
		{"method not allowed", apperrors.ErrCodeMethodNotAllowed, false},
		{"timeout", apperrors.ErrCodeTimeout, true},
		{"unavailable", apperrors.ErrCodeUnavailable, true},
		{"rate limit", apperrors.ErrCodeRateLimitExceeded, true},
		{"internal", apperrors.ErrCodeInternal, true},
		{"unknown defaults false", apperrors.ErrorCode("SOMETHING_ELSE"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := retryableFromCode(tt.code); got != tt.want {
				t.Fatalf("retryableFromCode(%q) = %v, want %v", tt.code, got, tt.want)
			}
		})
	}
}

func TestMergeDetails(t *testing.T) {
	t.Run("both empty returns nil", func(t *testing.T) {
		if got := mergeDetails(nil, nil); got != nil {
			t.Fatalf("expected nil, got %#v", got)
		}
		if got := mergeDetails(map[string]any{}, map[string]any{}); got != nil {
			t.Fatalf("expected nil, got %#v", got)
		}
	})

	t.Run("second overwrites", func(t *testing.T) {
		got := mergeDetails(map[string]any{"a": 1, "shared": "old"}, map[string]any{"b": 2, "shared": "new"})
		if got["a"] != 1 || got["b"] != 2 || got["shared"] != "new" {
			t.Fatalf("unexpected merge result: %#v", got)
		}
	})
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()
	var resp ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode error response: %v", err)
	}
	return resp
}

func TestWriteError_WritesErrorResponse(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(context.WithValue(req.Context(), contextKeyRequestID, "req-123"))
	w := httptest.NewRecorder()

	WriteError(w, req, http.StatusBadRequest, apperrors.ErrCodeInvalidRequest, "bad request", false, map[string]any{"k": "v"})

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, w.Code)
	}
	resp := decodeError(t, w)
	if resp.Code != "INVALID_REQUEST" || resp.RequestID != "req-123" || resp.Details["k"] != "v" {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if resp.Timestamp.IsZero() {
		t.Fatal("expected timestamp to be set")
	}
}

func TestWriteError_GeneratesRequestID(t *testing.T) {
	w := httptest.NewRecorder()
	WriteError(w, httptest.NewRequest(http.MethodGet, "/", nil), http.StatusInternalServerError,
		apperrors.ErrCodeInternal, "boom", true, nil)

	if resp := decodeError(t, w); resp.RequestID == "" {
		t.Fatal("expected generated request ID")
	}
}

func TestWriteErrorFromErr_StructuredErrorMapsStatusAndDetails(t *testing.T) {
	w := httptest.NewRecorder()
	err := apperrors.WrapWithContext(apperrors.ErrCodeInvalidRequest, "invalid sort property",
		errors.New("rating"), map[string]any{"supported": []string{"name"}})

	WriteErrorFromErr(w, httptest.NewRequest(http.MethodGet, "/", nil), err, "fallback", map[string]any{"extra": true})

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	resp := decodeError(t, w)
	if resp.Message != "invalid sort property" {
		t.Errorf("message = %q", resp.Message)
	}
	if resp.Retryable {
		t.Error("invalid request should not be retryable")
	}
	for _, key := range []string{"supported", "extra", "error"} {
		if _, ok := resp.Details[key]; !ok {
			t.Errorf("expected details key %q in %#v", key, resp.Details)
		}
	}
}

func TestWriteErrorFromErr_NonStructuredFallsBackToInternal(t *testing.T) {
	w := httptest.NewRecorder()
	WriteErrorFromErr(w, httptest.NewRequest(http.MethodGet, "/", nil), errors.New("disk on fire"), "Failed", nil)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
	resp := decodeError(t, w)
	if resp.Code != "INTERNAL" || resp.Message != "Failed" || !resp.Retryable {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if resp.Details["error"] != "disk on fire" {
		t.Fatalf("expected cause in details, got %#v", resp.Details)
	}
}
