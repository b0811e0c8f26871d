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

// Package snapshot defines the pod metadata Snapshot and the Collector that
// builds it from the local environment and host.
//
// Collect is total: every sub-source has a documented default, so a complete
// Snapshot is returned even with an empty environment and a failing host
// provider. A Snapshot is built fresh on every call; nothing is cached.
//
// The Fallback Snapshot is produced by (*Collector).Fallback when the metadata
// sidecar cannot be reached. It is a separate construction path with its own
// defaults and diagnostic entries, never a modified real snapshot.
//
// # Defaults
//
//	nodeIdentity   HOSTNAME, POD_NAME, OS hostname, "unknown-pod"
//	nodeAddress    POD_IP, first non-loopback IPv4 address, "127.0.0.1"
//	hostName       NODE_NAME, "unknown-node"
//	namespaceName  POD_NAMESPACE, NAMESPACE, "default"
//	displayColor   BACKGROUND_COLOR, "#3498db"
//	serviceAccount SERVICE_ACCOUNT, "default"
//	clusterApiHost KUBERNETES_SERVICE_HOST, "unknown"
//	clusterApiPort KUBERNETES_SERVICE_PORT, "unknown"
//	appEnvironment APP_ENV, "development"
package snapshot
