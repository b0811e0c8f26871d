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
	"log/slog"
	"net/http"
	"time"

	"k8s.io/utils/ptr"

	"github.com/NVIDIA/podinfo/pkg/errors"
	"github.com/NVIDIA/podinfo/pkg/serializer"
	"github.com/NVIDIA/podinfo/pkg/snapshot"
)

// EnvVarResponse is returned by GET /env?var=NAME. Value is null when the
// variable is unset.
type EnvVarResponse struct {
	Variable  string  `json:"variable"`
	Value     *string `json:"value"`
	Timestamp string  `json:"timestamp"`
}

// EnvDumpResponse is returned by GET /env when the full dump is enabled.
type EnvDumpResponse struct {
	Environment map[string]string `json:"environment"`
	Timestamp   string            `json:"timestamp"`
}

func (s *Server) handlePodInfo(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	snap := s.collector.Collect(r.Context())
	collectDuration.Observe(time.Since(start).Seconds())

	serializer.RespondIndentedJSON(w, http.StatusOK, snap)
}

func (s *Server) handleEnv(w http.ResponseWriter, r *http.Request) {
	src := s.collector.Env()

	if name := r.URL.Query().Get("var"); name != "" {
		resp := EnvVarResponse{
			Variable:  name,
			Timestamp: snapshot.FormatTimestamp(s.now()),
		}
		if v, ok := src.LookupEnv(name); ok {
			resp.Value = ptr.To(v)
		}
		serializer.RespondJSON(w, http.StatusOK, resp)
		return
	}

	if !s.config.EnableEnvDump {
		WriteError(w, r, errors.ErrCodeForbidden,
			"full environment dump is disabled; query a single variable with ?var=NAME")
		return
	}

	slog.Warn("serving full environment dump", "remote", r.RemoteAddr)
	serializer.RespondJSON(w, http.StatusOK, EnvDumpResponse{
		Environment: src.Environ(),
		Timestamp:   snapshot.FormatTimestamp(s.now()),
	})
}

func (s *Server) handleNotFound(w http.ResponseWriter, r *http.Request) {
	slog.Debug("route not found",
		"path", r.URL.Path,
		"method", r.Method,
		"remote_addr", r.RemoteAddr,
		"user_agent", r.UserAgent(),
	)
	writeNotFound(w, s.now())
}
