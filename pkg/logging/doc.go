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

// Package logging configures log/slog for the podinfo binaries.
//
// Every record is a JSON object on stderr carrying the module name and
// build version, so stdout stays free for snapshot output:
//
//	{"time":"2025-03-14T15:09:26.535Z","level":"WARN","msg":"sidecar fetch failed, using fallback snapshot",
//	 "module":"podinfo","version":"1.0.0","url":"http://127.0.0.1:8080","code":"UNAVAILABLE"}
//
// At debug level records also include a "source" object with the function,
// file and line.
//
// # Levels
//
// ParseLogLevel accepts debug, info, warn (or warning) and error in any
// case. Anything else, including the empty string, means info.
//
// # Usage
//
// The sidecar daemon reads LOG_LEVEL:
//
//	logging.SetDefaultStructuredLogger("podinfod", version)
//
// The CLI passes its --log-level flag explicitly:
//
//	logging.SetDefaultStructuredLoggerWithLevel("podinfo", version, cmd.String("log-level"))
//
// A standalone logger that does not replace the default:
//
//	logger := logging.NewStructuredLogger("podinfo", version, "debug")
//
// http.Server reports connection-level errors through a *log.Logger;
// NewLogLogger provides one that writes JSON at a fixed level:
//
//	srv.ErrorLog = logging.NewLogLogger(slog.LevelWarn, false)
package logging
