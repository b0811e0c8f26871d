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
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/podinfo/pkg/client"
	"github.com/NVIDIA/podinfo/pkg/defaults"
	"github.com/NVIDIA/podinfo/pkg/env"
	"github.com/NVIDIA/podinfo/pkg/snapshot"
)

func fetchCmd() *cli.Command {
	return &cli.Command{
		Name:  "fetch",
		Usage: "Retrieve a snapshot from a running sidecar",
		Description: `Fetch GET {url}/pod-info from a sidecar.

When the sidecar cannot be reached, answers with a non-200 status, or returns
an undecodable body, a fallback snapshot is printed instead. Its status is
fallbackMode and relevantEnvVars holds ERROR, ERROR_DETAILS and SIDECAR_URL.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "url",
				Usage:   "Sidecar base URL",
				Sources: cli.EnvVars(env.VarSidecarURL),
				Value:   defaults.SidecarURL,
			},
			&cli.DurationFlag{
				Name:  "timeout",
				Usage: "Total request timeout",
				Value: defaults.SnapshotFetchTimeout,
			},
			&cli.BoolFlag{
				Name:  "fail-on-fallback",
				Usage: "Exit non-zero when the sidecar could not be used",
			},
			outputFlag(),
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			outFormat, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}

			c := client.New(
				client.WithTimeout(cmd.Duration("timeout")),
				client.WithCollector(snapshot.NewCollector(snapshot.WithVersion(version))),
			)
			snap := c.FetchSnapshot(ctx, cmd.String("url"))

			if err := writeOutput(ctx, cmd, outFormat, snap); err != nil {
				return err
			}

			if snap.IsFallback() && cmd.Bool("fail-on-fallback") {
				return fmt.Errorf("sidecar unavailable: %s", snap.RelevantEnvVars[snapshot.DiagErrorDetails])
			}
			return nil
		},
	}
}
