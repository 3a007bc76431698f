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

// Package cli implements the recipebook command-line interface.
//
// # Commands
//
// list - Filter and sort recipes:
//
//	recipebook list [--difficulty easy|medium|hard] [--max-time N] [--cuisine C] [--sort name|cuisine|difficulty|time]
//
// search - Case-insensitive search over names and ingredients:
//
//	recipebook search [query] [--sort PROPERTY]
//
// render - Render matching recipes as HTML to stdout, a file, a ConfigMap, or an OCI registry:
//
//	recipebook render [filters] [--output PATH|cm://ns/name|oci://registry/repo:tag]
//
// serve - Run the recipe HTTP API:
//
//	recipebook serve [--port 8080]
//
// # Global Flags
//
//	--data, -d     Recipe catalog: file, HTTP(S) URL, or cm://namespace/name (default: built-in samples)
//	--log-level    Logging verbosity (debug, info, warn, error)
//	--data-timeout, --data-insecure-tls   HTTP(S) catalog download settings
//
// list and search accept --format (table, json, yaml) and --output (file or cm://namespace/name).
//
// # Environment Variables
//
//	LOG_LEVEL         Logging verbosity
//	RECIPEBOOK_DATA   Recipe catalog location
//	PORT              Listen port for serve
//
// Version information is embedded at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/NVIDIA/recipebook/pkg/cli.version=1.0.0'"
package cli
