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
	"errors"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStripPrefixLen(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"10.0.0.5/24", "10.0.0.5"},
		{"127.0.0.1/8", "127.0.0.1"},
		{"fe80::1/64", "fe80::1"},
		{"192.168.1.10", "192.168.1.10"},
		{"garbage/xx", "garbage"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, stripPrefixLen(tt.in))
		})
	}
}

func TestSystemProviderRuntimeFacts(t *testing.T) {
	p := NewSystemProvider()

	assert.Equal(t, runtime.Version(), p.RuntimeVersion())
	assert.Equal(t, runtime.GOOS, p.Platform())
	assert.Equal(t, runtime.GOARCH, p.Arch())

	n, err := p.CPUCount(context.Background())
	require.NoError(t, err)
	assert.Positive(t, n)

	up, err := p.ProcessUptime(context.Background())
	require.NoError(t, err)
	assert.GreaterOrEqual(t, up, time.Duration(0))
}

func TestStaticProvider(t *testing.T) {
	boom := errors.New("boom")
	var p Provider = Static{Host: "node-a", CPUs: 4, Err: boom}

	host, err := p.Hostname(context.Background())
	assert.Equal(t, "node-a", host)
	assert.ErrorIs(t, err, boom)

	n, err := p.CPUCount(context.Background())
	assert.Equal(t, 4, n)
	assert.ErrorIs(t, err, boom)
}
