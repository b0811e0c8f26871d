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
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"
	"k8s.io/apimachinery/pkg/util/validation"

	"github.com/NVIDIA/podinfo/pkg/defaults"
	"github.com/NVIDIA/podinfo/pkg/env"
)

// Config holds server configuration
type Config struct {
	// Server identity
	Name    string
	Version string

	// Server configuration
	Address string
	Port    int

	// EnableEnvDump allows GET /env without a var parameter to return every
	// environment variable of the process.
	EnableEnvDump bool

	// Rate limiting configuration
	RateLimit      rate.Limit // requests per second
	RateLimitBurst int        // burst size

	// Timeouts
	ReadTimeout       time.Duration
	ReadHeaderTimeout time.Duration
	WriteTimeout      time.Duration
	IdleTimeout       time.Duration
	ShutdownTimeout   time.Duration
}

// NewConfig returns a new Config populated from the process environment.
// Use this when you want to customize config programmatically.
func NewConfig() *Config {
	return parseConfig(env.OS())
}

// parseConfig returns sensible defaults overridden by SIDECAR_PORT,
// SHUTDOWN_TIMEOUT_SECONDS and SIDECAR_ENABLE_ENV_DUMP. Invalid values are
// logged and ignored.
func parseConfig(src env.Source) *Config {
	cfg := &Config{
		Name:              defaults.ServiceName,
		Version:           "dev",
		Address:           "0.0.0.0",
		Port:              defaults.ServerPort,
		RateLimit:         100, // 100 req/s
		RateLimitBurst:    200, // burst of 200
		ReadTimeout:       defaults.ServerReadTimeout,
		ReadHeaderTimeout: defaults.ServerReadHeaderTimeout,
		WriteTimeout:      defaults.ServerWriteTimeout,
		IdleTimeout:       defaults.ServerIdleTimeout,
		ShutdownTimeout:   defaults.ServerShutdownTimeout,
	}

	if portStr, ok := src.LookupEnv(env.VarSidecarPort); ok && portStr != "" {
		port, err := strconv.Atoi(strings.TrimSpace(portStr))
		if err == nil && len(validation.IsValidPortNum(port)) == 0 {
			cfg.Port = port
		} else {
			slog.Warn("ignoring invalid port", "variable", env.VarSidecarPort, "value", portStr)
		}
	}

	// Allow customization of shutdown timeout to match K8s eviction grace period
	if shutdownStr, ok := src.LookupEnv(env.VarShutdownTimeout); ok && shutdownStr != "" {
		seconds, err := strconv.Atoi(strings.TrimSpace(shutdownStr))
		if err == nil && seconds > 0 {
			cfg.ShutdownTimeout = time.Duration(seconds) * time.Second
		} else {
			slog.Warn("ignoring invalid shutdown timeout", "variable", env.VarShutdownTimeout, "value", shutdownStr)
		}
	}

	if dumpStr, ok := src.LookupEnv(env.VarEnableEnvDump); ok && dumpStr != "" {
		enabled, err := strconv.ParseBool(strings.TrimSpace(dumpStr))
		if err == nil {
			cfg.EnableEnvDump = enabled
		} else {
			slog.Warn("ignoring invalid boolean", "variable", env.VarEnableEnvDump, "value", dumpStr)
		}
	}

	return cfg
}
