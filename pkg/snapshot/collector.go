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
	"log/slog"
	"math"
	"net/netip"
	"strings"
	"time"

	"github.com/NVIDIA/podinfo/pkg/defaults"
	"github.com/NVIDIA/podinfo/pkg/env"
	"github.com/NVIDIA/podinfo/pkg/runtimeinfo"
)

const bytesPerMB = 1024 * 1024

// Option configures a Collector.
type Option func(*Collector)

// WithEnv sets the environment source. Defaults to the process environment.
func WithEnv(src env.Source) Option {
	return func(c *Collector) {
		if src != nil {
			c.env = src
		}
	}
}

// WithProvider sets the runtime info provider. Defaults to the host provider.
func WithProvider(p runtimeinfo.Provider) Option {
	return func(c *Collector) {
		if p != nil {
			c.provider = p
		}
	}
}

// WithVersion sets the sidecar version reported in snapshots.
func WithVersion(v string) Option {
	return func(c *Collector) {
		c.version = v
	}
}

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(c *Collector) {
		if now != nil {
			c.now = now
		}
	}
}

// Collector builds Snapshots. It holds no mutable state and is safe for
// concurrent use.
type Collector struct {
	env      env.Source
	provider runtimeinfo.Provider
	version  string
	now      func() time.Time
}

// NewCollector returns a Collector reading the process environment and host
// unless overridden by options.
func NewCollector(opts ...Option) *Collector {
	c := &Collector{
		env:      env.OS(),
		provider: runtimeinfo.NewSystemProvider(),
		version:  "dev",
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Env returns the environment source the collector reads.
func (c *Collector) Env() env.Source {
	return c.env
}

// Collect is a shortcut for NewCollector().Collect(ctx).
func Collect(ctx context.Context) Snapshot {
	return NewCollector().Collect(ctx)
}

// Collect builds a new Snapshot. It never fails; sources that error or are
// absent are replaced with defaults.
func (c *Collector) Collect(ctx context.Context) Snapshot {
	ctx, cancel := context.WithTimeout(ctx, defaults.CollectorTimeout)
	defer cancel()

	s := c.identity(ctx)
	c.fillRuntime(ctx, &s)

	ifaces, err := c.provider.Interfaces(ctx)
	if err != nil {
		slog.Debug("network interfaces unavailable", "error", err)
		ifaces = nil
	}
	s.NodeAddress = c.nodeAddress(ifaces)
	s.NetworkInterfaceNames = interfaceNames(ifaces)
	s.RelevantEnvVars = env.Relevant(c.env)
	s.TimestampUTC = FormatTimestamp(c.now())
	s.Status = StatusHealthy
	s.SidecarVersion = orDefault(c.version, Unknown)

	return s
}

func (c *Collector) identity(ctx context.Context) Snapshot {
	podName := env.First(c.env, "", env.VarHostname, env.VarPodName)
	if podName == "" {
		if h, err := c.provider.Hostname(ctx); err == nil && h != "" {
			podName = h
		} else {
			podName = DefaultNodeIdentity
		}
	}

	return Snapshot{
		NodeIdentity:   podName,
		HostName:       env.First(c.env, DefaultHostName, env.VarNodeName),
		NamespaceName:  env.First(c.env, DefaultNamespace, env.VarPodNamespace, env.VarNamespace),
		DisplayColor:   env.First(c.env, DefaultDisplayColor, env.VarBackgroundColor),
		ServiceAccount: env.First(c.env, DefaultServiceAccount, env.VarServiceAccount),
		ClusterAPIHost: env.First(c.env, Unknown, env.VarK8sServiceHost),
		ClusterAPIPort: env.First(c.env, Unknown, env.VarK8sServicePort),
		AppEnvironment: env.First(c.env, DefaultAppEnvironment, env.VarAppEnv),
	}
}

func (c *Collector) fillRuntime(ctx context.Context, s *Snapshot) {
	s.RuntimeVersion = orDefault(c.provider.RuntimeVersion(), Unknown)
	s.PlatformName = orDefault(c.provider.Platform(), Unknown)
	s.ArchName = orDefault(c.provider.Arch(), Unknown)

	if n, err := c.provider.CPUCount(ctx); err == nil && n > 0 {
		s.CPUCount = n
	} else if err != nil {
		slog.Debug("cpu count unavailable", "error", err)
	}

	if m, err := c.provider.Memory(ctx); err == nil {
		s.TotalMemoryMB = toMB(m.Total)
		s.FreeMemoryMB = toMB(m.Free)
	} else {
		slog.Debug("memory unavailable", "error", err)
	}

	if up, err := c.provider.ProcessUptime(ctx); err == nil && up > 0 {
		s.UptimeSeconds = int64(math.Round(up.Seconds()))
	} else if err != nil {
		slog.Debug("process uptime unavailable", "error", err)
	}

	if avg, err := c.provider.LoadAverage(ctx); err == nil {
		for i, v := range avg {
			if v > 0 && !math.IsNaN(v) && !math.IsInf(v, 0) {
				s.LoadAverages[i] = v
			}
		}
	} else {
		slog.Debug("load average unavailable", "error", err)
	}
}

// nodeAddress returns POD_IP when set. Otherwise it picks the first address
// that is on a non-loopback interface, is IPv4 and does not start with 127.
func (c *Collector) nodeAddress(ifaces []runtimeinfo.Interface) string {
	if ip := env.First(c.env, "", env.VarPodIP); ip != "" {
		return ip
	}
	return SelectAddress(ifaces)
}

// SelectAddress applies the real-address rule to ifaces in order and returns
// DefaultNodeAddress when nothing qualifies.
func SelectAddress(ifaces []runtimeinfo.Interface) string {
	for _, iface := range ifaces {
		if iface.Loopback {
			continue
		}
		for _, a := range iface.Addrs {
			addr, err := netip.ParseAddr(a)
			if err != nil || !addr.Is4() {
				continue
			}
			if strings.HasPrefix(a, "127.") {
				continue
			}
			return a
		}
	}
	return DefaultNodeAddress
}

func interfaceNames(ifaces []runtimeinfo.Interface) []string {
	names := make([]string, 0, len(ifaces))
	for _, iface := range ifaces {
		names = append(names, iface.Name)
	}
	return names
}

func toMB(b uint64) int64 {
	return int64(math.Round(float64(b) / bytesPerMB))
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
