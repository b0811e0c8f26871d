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

package client

import (
	"math"
	"time"

	"github.com/NVIDIA/podinfo/pkg/snapshot"
)

// Record is a decoded /pod-info body before it is mapped into a Snapshot.
type Record map[string]any

// MapRecord converts rec into a Snapshot. Fields that are absent or of the
// wrong JSON type take their defaults: "unknown" for strings, #3498db for
// displayColor, zero for numbers, [0,0,0] for loadAverages, empty
// collections, the current time for timestampUTC and "unknown" for status.
// Status strings are kept verbatim, including values this package does not
// know.
func MapRecord(rec Record) snapshot.Snapshot {
	return mapRecord(rec, time.Now())
}

func mapRecord(rec Record, now time.Time) snapshot.Snapshot {
	return snapshot.Snapshot{
		NodeIdentity:   rec.str("nodeIdentity", snapshot.Unknown),
		NodeAddress:    rec.str("nodeAddress", snapshot.Unknown),
		HostName:       rec.str("hostName", snapshot.Unknown),
		NamespaceName:  rec.str("namespaceName", snapshot.Unknown),
		DisplayColor:   rec.str("displayColor", snapshot.DefaultDisplayColor),
		ServiceAccount: rec.str("serviceAccount", snapshot.Unknown),
		ClusterAPIHost: rec.str("clusterApiHost", snapshot.Unknown),
		ClusterAPIPort: rec.str("clusterApiPort", snapshot.Unknown),
		AppEnvironment: rec.str("appEnvironment", snapshot.Unknown),

		RuntimeVersion: rec.str("runtimeVersion", snapshot.Unknown),
		PlatformName:   rec.str("platformName", snapshot.Unknown),
		ArchName:       rec.str("archName", snapshot.Unknown),
		CPUCount:       int(rec.integer("cpuCount")),
		TotalMemoryMB:  rec.integer("totalMemoryMB"),
		FreeMemoryMB:   rec.integer("freeMemoryMB"),
		UptimeSeconds:  rec.integer("uptimeSeconds"),

		LoadAverages:          rec.loads("loadAverages"),
		NetworkInterfaceNames: rec.strings("networkInterfaceNames"),
		RelevantEnvVars:       rec.stringMap("relevantEnvVars"),

		TimestampUTC:   rec.str("timestampUTC", snapshot.FormatTimestamp(now)),
		Status:         snapshot.Status(rec.str("status", string(snapshot.StatusUnknown))),
		SidecarVersion: rec.str("sidecarVersion", snapshot.Unknown),
	}
}

func (r Record) str(key, def string) string {
	if v, ok := r[key].(string); ok {
		return v
	}
	return def
}

func (r Record) number(key string) (float64, bool) {
	v, ok := r[key].(float64)
	if !ok || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

func (r Record) integer(key string) int64 {
	v, ok := r.number(key)
	if !ok {
		return 0
	}
	return int64(math.Round(v))
}

func (r Record) loads(key string) [3]float64 {
	var out [3]float64
	items, ok := r[key].([]any)
	if !ok {
		return out
	}
	for i := 0; i < len(items) && i < len(out); i++ {
		if v, ok := items[i].(float64); ok {
			out[i] = v
		}
	}
	return out
}

func (r Record) strings(key string) []string {
	out := []string{}
	items, ok := r[key].([]any)
	if !ok {
		return out
	}
	for _, item := range items {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

func (r Record) stringMap(key string) map[string]string {
	out := map[string]string{}
	items, ok := r[key].(map[string]any)
	if !ok {
		return out
	}
	for k, v := range items {
		if s, ok := v.(string); ok {
			out[k] = s
		}
	}
	return out
}
