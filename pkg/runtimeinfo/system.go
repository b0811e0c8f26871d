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

package runtimeinfo

import (
	"context"
	"fmt"
	"net/netip"
	"os"
	"runtime"
	"slices"
	"strings"
	"time"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/load"
	"github.com/shirou/gopsutil/v4/mem"
	"github.com/shirou/gopsutil/v4/net"
	"github.com/shirou/gopsutil/v4/process"
)

// processStart is the fallback origin for uptime when the process table
// cannot be read.
var processStart = time.Now()

// SystemProvider reads facts from the running host.
type SystemProvider struct{}

// NewSystemProvider returns a Provider backed by gopsutil and the Go runtime.
func NewSystemProvider() *SystemProvider {
	return &SystemProvider{}
}

// RuntimeVersion returns the Go runtime version, e.g. go1.25.0.
func (p *SystemProvider) RuntimeVersion() string {
	return runtime.Version()
}

// Platform returns the OS family, e.g. linux.
func (p *SystemProvider) Platform() string {
	return runtime.GOOS
}

// Arch returns the CPU architecture, e.g. amd64.
func (p *SystemProvider) Arch() string {
	return runtime.GOARCH
}

// Hostname returns the kernel hostname.
func (p *SystemProvider) Hostname(ctx context.Context) (string, error) {
	info, err := host.InfoWithContext(ctx)
	if err == nil && info != nil && info.Hostname != "" {
		return info.Hostname, nil
	}
	return os.Hostname()
}

// CPUCount returns the number of logical CPUs.
func (p *SystemProvider) CPUCount(ctx context.Context) (int, error) {
	n, err := cpu.CountsWithContext(ctx, true)
	if err != nil || n <= 0 {
		return runtime.NumCPU(), nil
	}
	return n, nil
}

// Memory returns total and available physical memory.
func (p *SystemProvider) Memory(ctx context.Context) (Memory, error) {
	vm, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		return Memory{}, fmt.Errorf("failed to read virtual memory: %w", err)
	}
	return Memory{Total: vm.Total, Free: vm.Available}, nil
}

// LoadAverage returns the 1, 5 and 15 minute load averages.
func (p *SystemProvider) LoadAverage(ctx context.Context) ([3]float64, error) {
	avg, err := load.AvgWithContext(ctx)
	if err != nil {
		return [3]float64{}, fmt.Errorf("failed to read load average: %w", err)
	}
	return [3]float64{avg.Load1, avg.Load5, avg.Load15}, nil
}

// Interfaces returns host interfaces in OS order.
func (p *SystemProvider) Interfaces(ctx context.Context) ([]Interface, error) {
	stats, err := net.InterfacesWithContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list network interfaces: %w", err)
	}

	out := make([]Interface, 0, len(stats))
	for _, s := range stats {
		iface := Interface{
			Name:     s.Name,
			Loopback: slices.Contains(s.Flags, "loopback"),
			Addrs:    make([]string, 0, len(s.Addrs)),
		}
		for _, a := range s.Addrs {
			iface.Addrs = append(iface.Addrs, stripPrefixLen(a.Addr))
		}
		out = append(out, iface)
	}
	return out, nil
}

// ProcessUptime returns how long the current process has been running.
func (p *SystemProvider) ProcessUptime(ctx context.Context) (time.Duration, error) {
	proc, err := process.NewProcessWithContext(ctx, int32(os.Getpid()))
	if err != nil {
		return time.Since(processStart), nil
	}
	created, err := proc.CreateTimeWithContext(ctx)
	if err != nil || created <= 0 {
		return time.Since(processStart), nil
	}
	return time.Since(time.UnixMilli(created)), nil
}

// stripPrefixLen turns "10.0.0.5/24" into "10.0.0.5". Values that are not
// CIDR notation are returned unchanged.
func stripPrefixLen(addr string) string {
	if pfx, err := netip.ParsePrefix(addr); err == nil {
		return pfx.Addr().String()
	}
	if i := strings.IndexByte(addr, '/'); i >= 0 {
		return addr[:i]
	}
	return addr
}
