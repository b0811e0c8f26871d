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
	"fmt"
	"strconv"

	"k8s.io/apimachinery/pkg/util/validation"
)

// Validate checks the identity variables against the platform's naming rules
// and returns one human-readable warning per problem. It never rejects the
// environment; values are still reported verbatim.
func Validate(src Source) []string {
	var warnings []string

	for _, key := range []string{VarPodName, VarPodNamespace, VarNamespace} {
		v, ok := src.LookupEnv(key)
		if !ok || v == "" {
			continue
		}
		for _, msg := range validation.IsDNS1123Label(v) {
			warnings = append(warnings, fmt.Sprintf("%s=%q: %s", key, v, msg))
		}
	}

	if v, ok := src.LookupEnv(VarSidecarPort); ok && v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("%s=%q: not a number", VarSidecarPort, v))
		} else {
			for _, msg := range validation.IsValidPortNum(port) {
				warnings = append(warnings, fmt.Sprintf("%s=%q: %s", VarSidecarPort, v, msg))
			}
		}
	}

	return warnings
}
