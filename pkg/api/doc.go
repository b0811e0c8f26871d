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

// Package api wires the podinfo sidecar daemon together.
//
// Serve configures structured logging, validates the pod environment,
// builds the snapshot collector and runs pkg/server until SIGINT or SIGTERM:
//
//	func main() {
//	    if err := api.Serve(); err != nil {
//	        os.Exit(1)
//	    }
//	}
//
// Build metadata is injected with ldflags:
//
//	-X github.com/NVIDIA/podinfo/pkg/api.version=1.0.0
//	-X github.com/NVIDIA/podinfo/pkg/api.commit=$(git rev-parse --short HEAD)
//	-X github.com/NVIDIA/podinfo/pkg/api.date=$(date -u +%Y-%m-%dT%H:%M:%SZ)
//
// The HTTP routes, middleware and lifecycle live in pkg/server.
package api
