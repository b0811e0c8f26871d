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

import "time"

// Status reports how a Snapshot was obtained.
type Status string

const (
	// StatusHealthy is set by the collector on every real snapshot.
	StatusHealthy Status = "healthy"
	// StatusFallback marks a snapshot synthesized by the consumer because the
	// sidecar could not be reached.
	StatusFallback Status = "fallbackMode"
	// StatusUnknown is used when a response carries no status.
	StatusUnknown Status = "unknown"
)

// String implements fmt.Stringer.
func (s Status) String() string {
	return string(s)
}

// Default values substituted for absent sources.
const (
	DefaultNodeIdentity   = "unknown-pod"
	DefaultNodeAddress    = "127.0.0.1"
	DefaultHostName       = "unknown-node"
	DefaultNamespace      = "default"
	DefaultDisplayColor   = "#3498db"
	DefaultServiceAccount = "default"
	DefaultAppEnvironment = "development"
	Unknown               = "unknown"

	FallbackNodeIdentity = "fallback-pod"
	FallbackNodeAddress  = "fallback-ip"
	FallbackHostName     = "fallback-node"
	FallbackNamespace    = "fallback-namespace"
	FallbackDisplayColor = "#ff6b6b"
)

// Diagnostic keys written into RelevantEnvVars of a Fallback Snapshot.
const (
	DiagError        = "ERROR"
	DiagErrorDetails = "ERROR_DETAILS"
	DiagSidecarURL   = "SIDECAR_URL"
	DiagNotAvailable = "N/A"
)

// TimestampLayout is ISO-8601 in UTC with millisecond precision.
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

// Snapshot is the point-in-time pod metadata record. Every field is always
// serialized; callers treat a Snapshot as read-only.
type Snapshot struct {
	NodeIdentity   string `json:"nodeIdentity" yaml:"nodeIdentity"`
	NodeAddress    string `json:"nodeAddress" yaml:"nodeAddress"`
	HostName       string `json:"hostName" yaml:"hostName"`
	NamespaceName  string `json:"namespaceName" yaml:"namespaceName"`
	DisplayColor   string `json:"displayColor" yaml:"displayColor"`
	ServiceAccount string `json:"serviceAccount" yaml:"serviceAccount"`
	ClusterAPIHost string `json:"clusterApiHost" yaml:"clusterApiHost"`
	ClusterAPIPort string `json:"clusterApiPort" yaml:"clusterApiPort"`
	AppEnvironment string `json:"appEnvironment" yaml:"appEnvironment"`

	RuntimeVersion string `json:"runtimeVersion" yaml:"runtimeVersion"`
	PlatformName   string `json:"platformName" yaml:"platformName"`
	ArchName       string `json:"archName" yaml:"archName"`
	CPUCount       int    `json:"cpuCount" yaml:"cpuCount"`
	TotalMemoryMB  int64  `json:"totalMemoryMB" yaml:"totalMemoryMB"`
	FreeMemoryMB   int64  `json:"freeMemoryMB" yaml:"freeMemoryMB"`
	UptimeSeconds  int64  `json:"uptimeSeconds" yaml:"uptimeSeconds"`

	// LoadAverages holds the 1, 5 and 15 minute load.
	LoadAverages          [3]float64 `json:"loadAverages" yaml:"loadAverages"`
	NetworkInterfaceNames []string   `json:"networkInterfaceNames" yaml:"networkInterfaceNames"`

	// RelevantEnvVars is the allowlisted environment subset, or diagnostic
	// entries on a Fallback Snapshot.
	RelevantEnvVars map[string]string `json:"relevantEnvVars" yaml:"relevantEnvVars"`

	TimestampUTC   string `json:"timestampUTC" yaml:"timestampUTC"`
	Status         Status `json:"status" yaml:"status"`
	SidecarVersion string `json:"sidecarVersion" yaml:"sidecarVersion"`
}

// FormatTimestamp renders t in TimestampLayout.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

// IsFallback reports whether s was synthesized locally.
func (s Snapshot) IsFallback() bool {
	return s.Status == StatusFallback
}
