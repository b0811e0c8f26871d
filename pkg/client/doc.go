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

// Package client fetches pod metadata from a podinfo sidecar.
//
// FetchSnapshot never returns an error. Any failure (connection refused,
// timeout, non-200 status, undecodable body) is logged at warn level and
// replaced with a locally built fallback snapshot whose Status is
// fallbackMode and whose RelevantEnvVars carry diagnostics:
//
//	c := client.New()
//	snap := c.FetchSnapshot(ctx, "")  // SIDECAR_URL or http://127.0.0.1:8080
//	if snap.IsFallback() {
//	    fmt.Println(snap.RelevantEnvVars["ERROR_DETAILS"])
//	}
//
// Connections are always made over IPv4 and the host "localhost" is
// rewritten to 127.0.0.1, so a sidecar bound only on 0.0.0.0 is reachable
// on dual-stack hosts that resolve localhost to ::1 first.
//
// A single attempt is made with a hard total deadline of 5 seconds
// (WithTimeout overrides it). There is no retry.
package client
