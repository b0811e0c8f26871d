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

package serializer

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
)

const contentTypeJSON = "application/json"

// RespondJSON writes a compact JSON response with the given status code.
func RespondJSON(w http.ResponseWriter, statusCode int, data any) {
	respond(w, statusCode, data, "")
}

// RespondIndentedJSON writes a JSON response indented with two spaces.
func RespondIndentedJSON(w http.ResponseWriter, statusCode int, data any) {
	respond(w, statusCode, data, "  ")
}

// RespondEmpty writes the JSON content type and a status code with no body.
func RespondEmpty(w http.ResponseWriter, statusCode int) {
	w.Header().Set("Content-Type", contentTypeJSON)
	w.WriteHeader(statusCode)
}

// respond buffers the encoding before writing headers to prevent partial responses.
func respond(w http.ResponseWriter, statusCode int, data any, indent string) {
	w.Header().Set("Content-Type", contentTypeJSON)

	buf := &bytes.Buffer{}
	enc := json.NewEncoder(buf)
	enc.SetIndent("", indent)
	if err := enc.Encode(data); err != nil {
		slog.Error("json encoding failed", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"Internal Server Error","message":"response encoding failed"}` + "\n"))
		return
	}

	w.WriteHeader(statusCode)
	if _, err := w.Write(buf.Bytes()); err != nil {
		// Connection is broken, log but can't recover
		slog.Warn("response write failed", "error", err)
	}
}
