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
	"net/http"
	"time"

	"github.com/NVIDIA/podinfo/pkg/errors"
	"github.com/NVIDIA/podinfo/pkg/serializer"
	"github.com/NVIDIA/podinfo/pkg/snapshot"
)

// ErrorResponse is the body of every non-404 error reply.
type ErrorResponse struct {
	Error     string           `json:"error"`
	Message   string           `json:"message,omitempty"`
	Code      errors.ErrorCode `json:"code,omitempty"`
	RequestID string           `json:"requestId,omitempty"`
	Timestamp string           `json:"timestamp"`
}

// NotFoundResponse is returned for unknown paths and unsupported methods.
type NotFoundResponse struct {
	Error           string   `json:"error"`
	AvailableRoutes []string `json:"availableRoutes"`
	Timestamp       string   `json:"timestamp"`
}

// AvailableRoutes lists the routes advertised by the 404 reply.
var AvailableRoutes = []string{"/pod-info", "/health", "/env"}

// HTTPStatusFromCode maps a structured error code to an HTTP status.
func HTTPStatusFromCode(code errors.ErrorCode) int {
	switch code {
	case errors.ErrCodeInvalidRequest:
		return http.StatusBadRequest
	case errors.ErrCodeForbidden:
		return http.StatusForbidden
	case errors.ErrCodeNotFound:
		return http.StatusNotFound
	case errors.ErrCodeRateLimitExceeded:
		return http.StatusTooManyRequests
	case errors.ErrCodeUnavailable:
		return http.StatusServiceUnavailable
	case errors.ErrCodeTimeout:
		return http.StatusGatewayTimeout
	case errors.ErrCodeBadStatus, errors.ErrCodeMalformedResponse:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// WriteError writes an ErrorResponse whose status is derived from code.
func WriteError(w http.ResponseWriter, r *http.Request, code errors.ErrorCode, message string) {
	statusCode := HTTPStatusFromCode(code)
	requestID, _ := r.Context().Value(contextKeyRequestID).(string)

	serializer.RespondJSON(w, statusCode, ErrorResponse{
		Error:     http.StatusText(statusCode),
		Message:   message,
		Code:      code,
		RequestID: requestID,
		Timestamp: snapshot.FormatTimestamp(time.Now()),
	})
}

func writeNotFound(w http.ResponseWriter, now time.Time) {
	serializer.RespondJSON(w, http.StatusNotFound, NotFoundResponse{
		Error:           http.StatusText(http.StatusNotFound),
		AvailableRoutes: AvailableRoutes,
		Timestamp:       snapshot.FormatTimestamp(now),
	})
}
