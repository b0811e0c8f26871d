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
	"testing"
	"time"

	"github.com/NVIDIA/podinfo/pkg/env"
)

func TestParseConfig(t *testing.T) {
	t.Run("default config", func(t *testing.T) {
		cfg := parseConfig(env.MapSource{})

		if cfg.Address != "0.0.0.0" {
			t.Errorf("expected address 0.0.0.0, got %s", cfg.Address)
		}

		if cfg.Port != 8080 {
			t.Errorf("expected port 8080, got %d", cfg.Port)
		}

		if cfg.Name != "pod-info-sidecar" {
			t.Errorf("expected name pod-info-sidecar, got %s", cfg.Name)
		}

		if cfg.EnableEnvDump {
			t.Error("expected env dump to be disabled by default")
		}

		if cfg.RateLimit != 100 {
			t.Errorf("expected rate limit 100, got %v", cfg.RateLimit)
		}

		if cfg.RateLimitBurst != 200 {
			t.Errorf("expected rate limit burst 200, got %d", cfg.RateLimitBurst)
		}

		if cfg.ReadHeaderTimeout != 5*time.Second {
			t.Errorf("expected read header timeout 5s, got %v", cfg.ReadHeaderTimeout)
		}

		if cfg.ShutdownTimeout != 30*time.Second {
			t.Errorf("expected shutdown timeout 30s, got %v", cfg.ShutdownTimeout)
		}
	})

	t.Run("custom port from environment", func(t *testing.T) {
		cfg := parseConfig(env.MapSource{env.VarSidecarPort: "9090"})

		if cfg.Port != 9090 {
			t.Errorf("expected port 9090 from env, got %d", cfg.Port)
		}
	})

	t.Run("invalid port from environment uses default", func(t *testing.T) {
		for _, v := range []string{"invalid", "0", "70000", "-1"} {
			cfg := parseConfig(env.MapSource{env.VarSidecarPort: v})

			if cfg.Port != 8080 {
				t.Errorf("expected default port 8080 for %q, got %d", v, cfg.Port)
			}
		}
	})

	t.Run("shutdown timeout from environment", func(t *testing.T) {
		cfg := parseConfig(env.MapSource{env.VarShutdownTimeout: "5"})

		if cfg.ShutdownTimeout != 5*time.Second {
			t.Errorf("expected shutdown timeout 5s, got %v", cfg.ShutdownTimeout)
		}

		cfg = parseConfig(env.MapSource{env.VarShutdownTimeout: "0"})
		if cfg.ShutdownTimeout != 30*time.Second {
			t.Errorf("expected default shutdown timeout for 0, got %v", cfg.ShutdownTimeout)
		}
	})

	t.Run("env dump toggle", func(t *testing.T) {
		if !parseConfig(env.MapSource{env.VarEnableEnvDump: "true"}).EnableEnvDump {
			t.Error("expected env dump enabled for true")
		}

		if parseConfig(env.MapSource{env.VarEnableEnvDump: "yes please"}).EnableEnvDump {
			t.Error("expected env dump disabled for unparsable value")
		}
	})
}
