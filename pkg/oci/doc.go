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

// Package oci publishes rendered recipe pages to OCI registries as ORAS
// artifacts.
//
// A target such as oci://ghcr.io/acme/recipes:v1 is parsed with
// ParseReference. Push packs a directory as one gzip layer under an OCI 1.1
// manifest with artifact type "application/vnd.nvidia.recipebook.page" and
// copies it to the registry:
//
//	res, err := oci.Push(ctx, oci.PushOptions{
//	    SourceDir:  dir,
//	    Registry:   ref.Registry,
//	    Repository: ref.Repository,
//	    Tag:        ref.Tag,
//	})
//
// Credentials come from the Docker configuration (~/.docker/config.json) via
// the ORAS credentials package. PlainHTTP and InsecureTLS serve local
// development registries.
package oci
