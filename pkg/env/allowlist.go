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

package env

import (
	"sort"
	"strings"
)

var (
	relevantPrefixes = []string{"POD_", "NODE_", "KUBERNETES_", "SERVICE_"}
	relevantNames    = map[string]struct{}{
		VarHostname:  {},
		VarNamespace: {},
	}
)

// IsRelevant reports whether key is on the pod metadata allowlist: it starts
// with one of the pod/node/service/kubernetes prefixes or is exactly
// HOSTNAME or NAMESPACE.
func IsRelevant(key string) bool {
	if _, ok := relevantNames[key]; ok {
		return true
	}
	for _, p := range relevantPrefixes {
		if strings.HasPrefix(key, p) {
			return true
		}
	}
	return false
}

// Relevant returns the allowlisted subset of src with raw values.
// The result is never nil.
func Relevant(src Source) map[string]string {
	out := make(map[string]string)
	for k, v := range src.Environ() {
		if IsRelevant(k) {
			out[k] = v
		}
	}
	return out
}

// SortedKeys returns the keys of m in lexical order.
func SortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
