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

package env

import (
	"os"
	"strings"
)

// Environment variables consumed by the collector, the server and the client.
const (
	VarPodName         = "POD_NAME"
	VarHostname        = "HOSTNAME"
	VarPodIP           = "POD_IP"
	VarNodeName        = "NODE_NAME"
	VarPodNamespace    = "POD_NAMESPACE"
	VarNamespace       = "NAMESPACE"
	VarBackgroundColor = "BACKGROUND_COLOR"
	VarServiceAccount  = "SERVICE_ACCOUNT"
	VarK8sServiceHost  = "KUBERNETES_SERVICE_HOST"
	VarK8sServicePort  = "KUBERNETES_SERVICE_PORT"
	VarAppEnv          = "APP_ENV"

	VarSidecarPort     = "SIDECAR_PORT"
	VarSidecarURL      = "SIDECAR_URL"
	VarEnableEnvDump   = "SIDECAR_ENABLE_ENV_DUMP"
	VarShutdownTimeout = "SHUTDOWN_TIMEOUT_SECONDS"
)

// Source is a read-only view of a key/value environment.
type Source interface {
	// LookupEnv returns the value of key and whether it is set.
	LookupEnv(key string) (string, bool)
	// Environ returns a copy of all variables.
	Environ() map[string]string
}

// OS returns a Source backed by the process environment.
func OS() Source {
	return osSource{}
}

type osSource struct{}

func (osSource) LookupEnv(key string) (string, bool) {
	return os.LookupEnv(key)
}

func (osSource) Environ() map[string]string {
	vars := os.Environ()
	out := make(map[string]string, len(vars))
	for _, kv := range vars {
		k, v, ok := strings.Cut(kv, "=")
		// Windows exposes per-drive entries such as "=C:=C:\"
		if !ok || k == "" {
			continue
		}
		out[k] = v
	}
	return out
}

// MapSource is a Source over a fixed map. The zero value is an empty environment.
type MapSource map[string]string

// LookupEnv implements Source.
func (m MapSource) LookupEnv(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}

// Environ implements Source.
func (m MapSource) Environ() map[string]string {
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// First returns the value of the first key that is set to a non-empty value,
// or def when none is.
func First(src Source, def string, keys ...string) string {
	for _, k := range keys {
		if v, ok := src.LookupEnv(k); ok && v != "" {
			return v
		}
	}
	return def
}
