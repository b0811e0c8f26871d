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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFirst(t *testing.T) {
	src := MapSource{
		VarHostname: "",
		VarPodName:  "web-0",
	}

	assert.Equal(t, "web-0", First(src, "unknown-pod", VarHostname, VarPodName))
	assert.Equal(t, "unknown-node", First(src, "unknown-node", VarNodeName))
	assert.Equal(t, "def", First(MapSource{}, "def"))
}

func TestMapSourceEnvironReturnsCopy(t *testing.T) {
	src := MapSource{"A": "1"}
	got := src.Environ()
	got["A"] = "2"

	v, ok := src.LookupEnv("A")
	require.True(t, ok)
	assert.Equal(t, "1", v)
}

func TestOSSource(t *testing.T) {
	t.Setenv("PODINFO_TEST_VAR", "a=b")

	src := OS()
	v, ok := src.LookupEnv("PODINFO_TEST_VAR")
	require.True(t, ok)
	assert.Equal(t, "a=b", v)
	assert.Equal(t, "a=b", src.Environ()["PODINFO_TEST_VAR"])
}

func TestIsRelevant(t *testing.T) {
	tests := []struct {
		key  string
		want bool
	}{
		{"POD_NAME", true},
		{"POD_", true},
		{"NODE_NAME", true},
		{"KUBERNETES_SERVICE_HOST", true},
		{"SERVICE_ACCOUNT", true},
		{"HOSTNAME", true},
		{"NAMESPACE", true},
		{"POD_NAMESPACE", true},
		{"HOSTNAME_SUFFIX", false},
		{"NAMESPACES", false},
		{"pod_name", false},
		{"PATH", false},
		{"MY_POD_NAME", false},
		{"BACKGROUND_COLOR", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			assert.Equal(t, tt.want, IsRelevant(tt.key))
		})
	}
}

func TestRelevant(t *testing.T) {
	tests := []struct {
		name string
		env  MapSource
		want map[string]string
	}{
		{
			name: "empty environment",
			env:  MapSource{},
			want: map[string]string{},
		},
		{
			name: "mixed environment keeps raw values",
			env: MapSource{
				"POD_IP":                  "10.1.2.3",
				"NODE_NAME":               "worker-1",
				"KUBERNETES_SERVICE_PORT": "443",
				"SERVICE_ACCOUNT":         "",
				"HOSTNAME":                "web-0",
				"NAMESPACE":               "prod",
				"PATH":                    "/usr/bin",
				"BACKGROUND_COLOR":        "#fff",
			},
			want: map[string]string{
				"POD_IP":                  "10.1.2.3",
				"NODE_NAME":               "worker-1",
				"KUBERNETES_SERVICE_PORT": "443",
				"SERVICE_ACCOUNT":         "",
				"HOSTNAME":                "web-0",
				"NAMESPACE":               "prod",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Relevant(tt.env)
			require.NotNil(t, got)
			assert.Equal(t, tt.want, got)
			for k := range got {
				assert.True(t, IsRelevant(k), "unexpected key %s", k)
			}
		})
	}
}

func TestSortedKeys(t *testing.T) {
	assert.Equal(t, []string{"A", "B", "C"}, SortedKeys(map[string]string{"C": "", "A": "", "B": ""}))
	assert.Empty(t, SortedKeys(nil))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name     string
		env      MapSource
		warnings int
	}{
		{"empty", MapSource{}, 0},
		{"valid identity", MapSource{VarPodName: "web-0", VarPodNamespace: "prod", VarSidecarPort: "8080"}, 0},
		{"uppercase pod name", MapSource{VarPodName: "Web_0"}, 1},
		{"bad namespace", MapSource{VarNamespace: "-prod"}, 1},
		{"non numeric port", MapSource{VarSidecarPort: "http"}, 1},
		{"port out of range", MapSource{VarSidecarPort: "70000"}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Validate(tt.env)
			assert.Len(t, got, tt.warnings, "warnings: %v", got)
		})
	}
}
