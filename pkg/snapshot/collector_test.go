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

package snapshot

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NVIDIA/podinfo/pkg/env"
	"github.com/NVIDIA/podinfo/pkg/runtimeinfo"
)

var fixedNow = time.Date(2025, 3, 14, 15, 9, 26, 535_000_000, time.UTC)

func testProvider() runtimeinfo.Static {
	return runtimeinfo.Static{
		Version: "go1.25.0",
		OS:      "linux",
		CPUArch: "amd64",
		Host:    "kernel-host",
		CPUs:    8,
		Mem:     runtimeinfo.Memory{Total: 16 * 1024 * 1024 * 1024, Free: 1536 * 1024 * 1024},
		Load:    [3]float64{0.5, 0.25, 0.1},
		Ifaces: []runtimeinfo.Interface{
			{Name: "lo", Loopback: true, Addrs: []string{"127.0.0.1", "::1"}},
			{Name: "eth0", Addrs: []string{"fe80::1", "10.244.1.7"}},
		},
		Uptime: 90500 * time.Millisecond,
	}
}

func newTestCollector(src env.Source, p runtimeinfo.Provider) *Collector {
	return NewCollector(
		WithEnv(src),
		WithProvider(p),
		WithVersion("1.0.0"),
		WithClock(func() time.Time { return fixedNow }),
	)
}

func TestCollectFromEnvironment(t *testing.T) {
	src := env.MapSource{
		"POD_NAME":                "web-0",
		"POD_IP":                  "10.0.0.9",
		"NODE_NAME":               "worker-1",
		"POD_NAMESPACE":           "prod",
		"BACKGROUND_COLOR":        "#00ff00",
		"SERVICE_ACCOUNT":         "web",
		"KUBERNETES_SERVICE_HOST": "10.96.0.1",
		"KUBERNETES_SERVICE_PORT": "443",
		"APP_ENV":                 "production",
		"PATH":                    "/usr/bin",
	}

	s := newTestCollector(src, testProvider()).Collect(context.Background())

	assert.Equal(t, "web-0", s.NodeIdentity)
	assert.Equal(t, "10.0.0.9", s.NodeAddress)
	assert.Equal(t, "worker-1", s.HostName)
	assert.Equal(t, "prod", s.NamespaceName)
	assert.Equal(t, "#00ff00", s.DisplayColor)
	assert.Equal(t, "web", s.ServiceAccount)
	assert.Equal(t, "10.96.0.1", s.ClusterAPIHost)
	assert.Equal(t, "443", s.ClusterAPIPort)
	assert.Equal(t, "production", s.AppEnvironment)
	assert.Equal(t, "go1.25.0", s.RuntimeVersion)
	assert.Equal(t, "linux", s.PlatformName)
	assert.Equal(t, "amd64", s.ArchName)
	assert.Equal(t, 8, s.CPUCount)
	assert.Equal(t, int64(16384), s.TotalMemoryMB)
	assert.Equal(t, int64(1536), s.FreeMemoryMB)
	assert.Equal(t, int64(91), s.UptimeSeconds)
	assert.Equal(t, [3]float64{0.5, 0.25, 0.1}, s.LoadAverages)
	assert.Equal(t, []string{"lo", "eth0"}, s.NetworkInterfaceNames)
	assert.Equal(t, "2025-03-14T15:09:26.535Z", s.TimestampUTC)
	assert.Equal(t, StatusHealthy, s.Status)
	assert.Equal(t, "1.0.0", s.SidecarVersion)
	assert.NotContains(t, s.RelevantEnvVars, "PATH")
	assert.NotContains(t, s.RelevantEnvVars, "BACKGROUND_COLOR")
	assert.Equal(t, "web-0", s.RelevantEnvVars["POD_NAME"])
}

func TestCollectHostnameTakesPrecedence(t *testing.T) {
	src := env.MapSource{"HOSTNAME": "web-7f9c", "POD_NAME": "web-0", "NAMESPACE": "legacy"}

	s := newTestCollector(src, testProvider()).Collect(context.Background())

	assert.Equal(t, "web-7f9c", s.NodeIdentity)
	assert.Equal(t, "legacy", s.NamespaceName)
}

func TestCollectEmptyEnvironmentFailingProvider(t *testing.T) {
	p := runtimeinfo.Static{Err: errors.New("no host access")}

	s := newTestCollector(env.MapSource{}, p).Collect(context.Background())

	assert.Equal(t, DefaultNodeIdentity, s.NodeIdentity)
	assert.Equal(t, DefaultNodeAddress, s.NodeAddress)
	assert.Equal(t, DefaultHostName, s.HostName)
	assert.Equal(t, DefaultNamespace, s.NamespaceName)
	assert.Equal(t, DefaultDisplayColor, s.DisplayColor)
	assert.Equal(t, DefaultServiceAccount, s.ServiceAccount)
	assert.Equal(t, Unknown, s.ClusterAPIHost)
	assert.Equal(t, Unknown, s.ClusterAPIPort)
	assert.Equal(t, DefaultAppEnvironment, s.AppEnvironment)
	assert.Equal(t, Unknown, s.RuntimeVersion)
	assert.Equal(t, Unknown, s.PlatformName)
	assert.Equal(t, Unknown, s.ArchName)
	assert.Zero(t, s.CPUCount)
	assert.Zero(t, s.TotalMemoryMB)
	assert.Equal(t, [3]float64{}, s.LoadAverages)
	assert.NotNil(t, s.NetworkInterfaceNames)
	assert.Empty(t, s.NetworkInterfaceNames)
	assert.NotNil(t, s.RelevantEnvVars)
	assert.Empty(t, s.RelevantEnvVars)
	assert.Equal(t, StatusHealthy, s.Status)
}

func TestSnapshotJSONHasEveryField(t *testing.T) {
	s := newTestCollector(env.MapSource{}, runtimeinfo.Static{Err: errors.New("x")}).Collect(context.Background())

	b, err := json.Marshal(s)
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(b, &m))

	for _, key := range []string{
		"nodeIdentity", "nodeAddress", "hostName", "namespaceName", "displayColor",
		"serviceAccount", "clusterApiHost", "clusterApiPort", "appEnvironment",
		"runtimeVersion", "platformName", "archName", "cpuCount", "totalMemoryMB",
		"freeMemoryMB", "uptimeSeconds", "loadAverages", "networkInterfaceNames",
		"relevantEnvVars", "timestampUTC", "status", "sidecarVersion",
	} {
		require.Contains(t, m, key)
		assert.NotNil(t, m[key], "field %s is null", key)
	}
	assert.Len(t, m["loadAverages"], 3)
}

func TestSelectAddress(t *testing.T) {
	tests := []struct {
		name   string
		ifaces []runtimeinfo.Interface
		want   string
	}{
		{
			name: "no interfaces",
			want: DefaultNodeAddress,
		},
		{
			name: "loopback only",
			ifaces: []runtimeinfo.Interface{
				{Name: "lo", Loopback: true, Addrs: []string{"127.0.0.1", "10.0.0.1"}},
			},
			want: DefaultNodeAddress,
		},
		{
			name: "ipv6 only",
			ifaces: []runtimeinfo.Interface{
				{Name: "eth0", Addrs: []string{"fe80::1", "2001:db8::5"}},
			},
			want: DefaultNodeAddress,
		},
		{
			name: "127 prefix on non-loopback interface",
			ifaces: []runtimeinfo.Interface{
				{Name: "dummy0", Addrs: []string{"127.0.1.1"}},
				{Name: "eth0", Addrs: []string{"192.168.0.4"}},
			},
			want: "192.168.0.4",
		},
		{
			name: "first qualifying address wins",
			ifaces: []runtimeinfo.Interface{
				{Name: "eth0", Addrs: []string{"10.0.0.2", "10.0.0.3"}},
				{Name: "eth1", Addrs: []string{"172.16.0.1"}},
			},
			want: "10.0.0.2",
		},
		{
			name: "ipv4 mapped ipv6 is not ipv4",
			ifaces: []runtimeinfo.Interface{
				{Name: "eth0", Addrs: []string{"::ffff:10.0.0.8", "not-an-ip"}},
			},
			want: DefaultNodeAddress,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SelectAddress(tt.ifaces))
		})
	}
}

func TestCollectPodIPOverridesInterfaces(t *testing.T) {
	s := newTestCollector(env.MapSource{"POD_IP": "not-validated"}, testProvider()).Collect(context.Background())
	assert.Equal(t, "not-validated", s.NodeAddress)

	s = newTestCollector(env.MapSource{}, testProvider()).Collect(context.Background())
	assert.Equal(t, "10.244.1.7", s.NodeAddress)
}

func TestCollectIsIdempotent(t *testing.T) {
	src := env.MapSource{"POD_NAME": "web-0", "NODE_NAME": "worker-1"}
	c := NewCollector(WithEnv(src), WithProvider(testProvider()))

	first := c.Collect(context.Background())
	second := c.Collect(context.Background())

	// Timestamps and volatile host metrics may differ between calls
	for _, s := range []*Snapshot{&first, &second} {
		s.TimestampUTC = ""
		s.UptimeSeconds = 0
		s.LoadAverages = [3]float64{}
		s.FreeMemoryMB = 0
	}
	assert.Equal(t, first, second)
}

func TestFallback(t *testing.T) {
	src := env.MapSource{
		"POD_NAME":  "web-0",
		"POD_IP":    "10.0.0.9",
		"NODE_NAME": "worker-1",
		"NAMESPACE": "ignored-by-fallback",
	}
	c := newTestCollector(src, testProvider())

	s := c.Fallback("http://127.0.0.1:8080", errors.New("connection refused"))

	assert.Equal(t, StatusFallback, s.Status)
	assert.True(t, s.IsFallback())
	assert.Equal(t, FallbackDisplayColor, s.DisplayColor)
	assert.Equal(t, "web-0", s.NodeIdentity)
	assert.Equal(t, "10.0.0.9", s.NodeAddress)
	assert.Equal(t, "worker-1", s.HostName)
	assert.Equal(t, FallbackNamespace, s.NamespaceName)
	assert.Equal(t, "go1.25.0", s.RuntimeVersion)
	assert.Zero(t, s.CPUCount)
	assert.NotNil(t, s.NetworkInterfaceNames)
	assert.Equal(t, map[string]string{
		DiagError:        fallbackErrorMessage,
		DiagErrorDetails: "connection refused",
		DiagSidecarURL:   "http://127.0.0.1:8080",
		"HOSTNAME":       DiagNotAvailable,
		"POD_IP":         "10.0.0.9",
		"NODE_NAME":      "worker-1",
	}, s.RelevantEnvVars)
	assert.Equal(t, "2025-03-14T15:09:26.535Z", s.TimestampUTC)
}

func TestFallbackEmptyEnvironment(t *testing.T) {
	c := newTestCollector(env.MapSource{}, runtimeinfo.Static{})

	s := c.Fallback("http://sidecar:8080", nil)

	assert.Equal(t, FallbackNodeIdentity, s.NodeIdentity)
	assert.Equal(t, FallbackNodeAddress, s.NodeAddress)
	assert.Equal(t, FallbackHostName, s.HostName)
	assert.Equal(t, FallbackNamespace, s.NamespaceName)
	assert.Equal(t, Unknown, s.RuntimeVersion)
	assert.Equal(t, "unknown error", s.RelevantEnvVars[DiagErrorDetails])
	assert.Equal(t, DiagNotAvailable, s.RelevantEnvVars["HOSTNAME"])
}
