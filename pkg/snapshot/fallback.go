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

import "github.com/NVIDIA/podinfo/pkg/env"

// fallbackErrorMessage is the fixed ERROR diagnostic on every Fallback Snapshot.
const fallbackErrorMessage = "sidecar not reachable - using fallback"

// Fallback builds the snapshot used when the sidecar at serviceURL could not
// be reached. Identity comes from the local environment, runtime facts from
// the local provider, and RelevantEnvVars carries diagnostics: the fixed
// ERROR text, the cause, the attempted URL and the local HOSTNAME, POD_IP and
// NODE_NAME values. Host metrics stay zero so a fallback is never mistaken
// for sidecar data.
func (c *Collector) Fallback(serviceURL string, cause error) Snapshot {
	details := "unknown error"
	if cause != nil {
		details = cause.Error()
	}

	return Snapshot{
		NodeIdentity:   env.First(c.env, FallbackNodeIdentity, env.VarHostname, env.VarPodName),
		NodeAddress:    env.First(c.env, FallbackNodeAddress, env.VarPodIP),
		HostName:       env.First(c.env, FallbackHostName, env.VarNodeName),
		NamespaceName:  env.First(c.env, FallbackNamespace, env.VarPodNamespace),
		DisplayColor:   FallbackDisplayColor,
		ServiceAccount: env.First(c.env, DefaultServiceAccount, env.VarServiceAccount),
		ClusterAPIHost: env.First(c.env, Unknown, env.VarK8sServiceHost),
		ClusterAPIPort: env.First(c.env, Unknown, env.VarK8sServicePort),
		AppEnvironment: env.First(c.env, DefaultAppEnvironment, env.VarAppEnv),

		RuntimeVersion: orDefault(c.provider.RuntimeVersion(), Unknown),
		PlatformName:   orDefault(c.provider.Platform(), Unknown),
		ArchName:       orDefault(c.provider.Arch(), Unknown),

		NetworkInterfaceNames: []string{},
		RelevantEnvVars: map[string]string{
			DiagError:        fallbackErrorMessage,
			DiagErrorDetails: details,
			DiagSidecarURL:   serviceURL,
			env.VarHostname:  env.First(c.env, DiagNotAvailable, env.VarHostname),
			env.VarPodIP:     env.First(c.env, DiagNotAvailable, env.VarPodIP),
			env.VarNodeName:  env.First(c.env, DiagNotAvailable, env.VarNodeName),
		},

		TimestampUTC:   FormatTimestamp(c.now()),
		Status:         StatusFallback,
		SidecarVersion: Unknown,
	}
}
