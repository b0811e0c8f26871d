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

package api

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NVIDIA/podinfo/pkg/env"
	"github.com/NVIDIA/podinfo/pkg/server"
	"github.com/NVIDIA/podinfo/pkg/snapshot"
)

func TestConstants(t *testing.T) {
	assert.Equal(t, "podinfod", name)
	assert.Equal(t, "dev", versionDefault)
	assert.NotEmpty(t, Version())
	assert.NotEmpty(t, commit)
	assert.NotEmpty(t, date)
}

func TestNewServerUsesEnvironment(t *testing.T) {
	src := env.MapSource{
		env.VarPodName:      "web-1",
		env.VarPodNamespace: "Not_Valid",
		env.VarNodeName:     "node-a",
	}
	s := newServer(src, server.WithPort(18080))

	assert.Equal(t, "0.0.0.0:18080", s.Addr())

	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/pod-info", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var snap snapshot.Snapshot
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &snap))
	assert.Equal(t, "web-1", snap.NodeIdentity)
	assert.Equal(t, "node-a", snap.HostName)
	assert.Equal(t, version, snap.SidecarVersion)

	rec = httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"service":"pod-info-sidecar"`)
}

func TestServeContextBindFailure(t *testing.T) {
	ln, err := net.Listen("tcp4", "0.0.0.0:0")
	require.NoError(t, err)
	defer ln.Close()

	port := ln.Addr().(*net.TCPAddr).Port

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err = ServeContext(ctx, server.WithPort(port))
	require.Error(t, err)
	assert.Contains(t, err.Error(), strconv.Itoa(port))
}
