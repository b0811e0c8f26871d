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
	"time"
)

// Static is a Provider returning fixed values. Err, when set, is returned by
// every fallible method.
type Static struct {
	Version string
	OS      string
	CPUArch string
	Host    string
	CPUs    int
	Mem     Memory
	Load    [3]float64
	Ifaces  []Interface
	Uptime  time.Duration
	Err     error
}

// RuntimeVersion implements Provider.
func (s Static) RuntimeVersion() string { return s.Version }

// Platform implements Provider.
func (s Static) Platform() string { return s.OS }

// Arch implements Provider.
func (s Static) Arch() string { return s.CPUArch }

// Hostname implements Provider.
func (s Static) Hostname(context.Context) (string, error) { return s.Host, s.Err }

// CPUCount implements Provider.
func (s Static) CPUCount(context.Context) (int, error) { return s.CPUs, s.Err }

// Memory implements Provider.
func (s Static) Memory(context.Context) (Memory, error) { return s.Mem, s.Err }

// LoadAverage implements Provider.
func (s Static) LoadAverage(context.Context) ([3]float64, error) { return s.Load, s.Err }

// Interfaces implements Provider.
func (s Static) Interfaces(context.Context) ([]Interface, error) { return s.Ifaces, s.Err }

// ProcessUptime implements Provider.
func (s Static) ProcessUptime(context.Context) (time.Duration, error) { return s.Uptime, s.Err }
