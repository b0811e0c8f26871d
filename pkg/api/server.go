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
	"log/slog"

	"github.com/NVIDIA/podinfo/pkg/defaults"
	"github.com/NVIDIA/podinfo/pkg/env"
	"github.com/NVIDIA/podinfo/pkg/logging"
	"github.com/NVIDIA/podinfo/pkg/server"
	"github.com/NVIDIA/podinfo/pkg/snapshot"
)

const (
	name           = "podinfod"
	versionDefault = "dev"
)

var (
	// overridden during build with ldflags to reflect actual version info
	// e.g., -X "github.com/NVIDIA/podinfo/pkg/api.version=1.0.0"
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// Version returns the build version.
func Version() string {
	return version
}

// Serve runs the sidecar with configuration from the process environment.
func Serve() error {
	logging.SetDefaultStructuredLogger(name, version)
	return ServeContext(context.Background())
}

// ServeContext runs the sidecar until ctx is done or a shutdown signal
// arrives. opts are applied after the environment-derived configuration.
// The caller is responsible for configuring the default logger.
func ServeContext(ctx context.Context, opts ...server.Option) error {
	slog.Info("starting",
		"name", name,
		"version", version,
		"commit", commit,
		"date", date,
	)

	s := newServer(env.OS(), opts...)

	if err := s.Run(ctx); err != nil {
		slog.Error("server exited with error", "error", err)
		return err
	}

	return nil
}

// newServer logs the pod identity and environment warnings, then builds
// the server around a collector reading src.
func newServer(src env.Source, opts ...server.Option) *server.Server {
	for _, warning := range env.Validate(src) {
		slog.Warn("environment check", "warning", warning)
	}

	slog.Info("pod identity",
		"pod", env.First(src, snapshot.DefaultNodeIdentity, env.VarHostname, env.VarPodName),
		"namespace", env.First(src, snapshot.DefaultNamespace, env.VarPodNamespace, env.VarNamespace),
		"node", env.First(src, snapshot.DefaultHostName, env.VarNodeName),
		"ip", env.First(src, snapshot.DefaultNodeAddress, env.VarPodIP),
	)

	collector := snapshot.NewCollector(
		snapshot.WithEnv(src),
		snapshot.WithVersion(version),
	)

	base := []server.Option{
		server.WithName(defaults.ServiceName),
		server.WithVersion(version),
		server.WithCollector(collector),
	}
	return server.New(append(base, opts...)...)
}
