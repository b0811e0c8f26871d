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

// Package runtimeinfo abstracts the local OS and runtime introspection used
// to build pod snapshots.
//
// SystemProvider reads the host through gopsutil and the Go runtime. Static
// returns fixed values and is meant for tests and for environments where
// host introspection is not wanted.
package runtimeinfo

import (
	"context"
	"time"
)

// Interface describes one host network interface.
type Interface struct {
	// Name is the interface name, e.g. eth0.
	Name string `json:"name" yaml:"name"`
	// Loopback is true when the interface carries the loopback flag.
	Loopback bool `json:"loopback" yaml:"loopback"`
	// Addrs are the interface addresses without prefix length, in OS order.
	Addrs []string `json:"addrs" yaml:"addrs"`
}

// Memory holds physical memory figures in bytes.
type Memory struct {
	Total uint64
	Free  uint64
}

// Provider supplies runtime and host facts. Every method may fail; callers
// substitute defaults.
type Provider interface {
	RuntimeVersion() string
	Platform() string
	Arch() string
	Hostname(ctx context.Context) (string, error)
	CPUCount(ctx context.Context) (int, error)
	Memory(ctx context.Context) (Memory, error)
	LoadAverage(ctx context.Context) ([3]float64, error)
	Interfaces(ctx context.Context) ([]Interface, error)
	ProcessUptime(ctx context.Context) (time.Duration, error)
}
