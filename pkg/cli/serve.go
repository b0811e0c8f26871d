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

package cli

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/podinfo/pkg/api"
	"github.com/NVIDIA/podinfo/pkg/defaults"
	"github.com/NVIDIA/podinfo/pkg/env"
	"github.com/NVIDIA/podinfo/pkg/server"
)

func serveCmd() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Run the pod metadata sidecar",
		Description: `Serve pod metadata over HTTP:
  - GET /pod-info   current snapshot
  - GET /health     liveness
  - GET /ready      readiness
  - GET /env        single variable lookup (?var=NAME)
  - GET /metrics    Prometheus metrics

The server binds 0.0.0.0 and drains in-flight requests on SIGINT or SIGTERM.`,
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "port",
				Aliases: []string{"p"},
				Usage:   "Listen port",
				Sources: cli.EnvVars(env.VarSidecarPort),
				Value:   defaults.ServerPort,
			},
			&cli.BoolFlag{
				Name:    "enable-env-dump",
				Usage:   "Allow GET /env without ?var to return the full process environment",
				Sources: cli.EnvVars(env.VarEnableEnvDump),
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			var opts []server.Option
			if cmd.IsSet("port") {
				opts = append(opts, server.WithPort(cmd.Int("port")))
			}
			if cmd.IsSet("enable-env-dump") {
				opts = append(opts, server.WithEnvDump(cmd.Bool("enable-env-dump")))
			}

			return api.ServeContext(ctx, opts...)
		},
	}
}
