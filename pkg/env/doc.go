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

// Package env provides read-only access to the environment variables that
// form podinfo's contract with the orchestrating platform.
//
// All readers take a Source so tests can supply a synthetic environment
// instead of mutating the process environment:
//
//	src := env.MapSource{"POD_NAME": "web-0", "POD_IP": "10.0.0.7"}
//	name := env.First(src, "unknown-pod", env.VarHostname, env.VarPodName)
//
// Variable names are stable; they are what the platform's downward API and
// service links inject into the pod.
package env
