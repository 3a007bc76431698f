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

// Package client provides a cached Kubernetes client and the ConfigMap
// helpers recipebook uses to publish rendered output and read catalogs.
//
// The client is built once on first use:
//
//	k, _, err := client.GetKubeClient()
//	if err != nil {
//	    return fmt.Errorf("failed to get kubernetes client: %w", err)
//	}
//	err = client.ApplyConfigMap(ctx, k, "web", "recipes", labels, data)
//
// Authentication follows the usual order: KUBECONFIG, ~/.kube/config, then
// the in-cluster service account. Callers that need a specific kubeconfig use
// BuildKubeClient, which bypasses the cache.
//
// ConfigMaps are addressed with cm://namespace/name URIs; ParseConfigMapURI
// validates them.
package client
