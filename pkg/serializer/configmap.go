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

package serializer

import (
	"context"
	"fmt"

	"github.com/NVIDIA/recipebook/pkg/defaults"
	"github.com/NVIDIA/recipebook/pkg/k8s/client"
)

// ConfigMapWriter serializes data into a Kubernetes ConfigMap under the
// key "recipes.<format>".
type ConfigMapWriter struct {
	namespace string
	name      string
	format    Format
	client    client.Interface
}

// NewConfigMapWriter creates a writer for the ConfigMap namespace/name.
// The Kubernetes client is resolved lazily on the first Serialize call.
func NewConfigMapWriter(namespace, name string, format Format) *ConfigMapWriter {
	return &ConfigMapWriter{
		namespace: namespace,
		name:      name,
		format:    normalize(format),
	}
}

// WithClient sets the Kubernetes client used by the writer.
func (w *ConfigMapWriter) WithClient(k client.Interface) *ConfigMapWriter {
	w.client = k
	return w
}

// DataKey returns the ConfigMap data key the writer populates.
func (w *ConfigMapWriter) DataKey() string {
	return "recipes." + string(w.format)
}

// Serialize encodes v and applies it to the ConfigMap.
func (w *ConfigMapWriter) Serialize(ctx context.Context, v any) error {
	content, err := Encode(w.format, v)
	if err != nil {
		return err
	}

	k := w.client
	if k == nil {
		k, _, err = client.GetKubeClient()
		if err != nil {
			return fmt.Errorf("failed to get kubernetes client: %w", err)
		}
	}

	ctx, cancel := context.WithTimeout(ctx, defaults.ConfigMapWriteTimeout)
	defer cancel()

	labels := map[string]string{
		"app.kubernetes.io/name":      "recipebook",
		"app.kubernetes.io/component": "recipes",
	}
	data := map[string]string{
		w.DataKey(): string(content),
		"format":    string(w.format),
	}
	return client.ApplyConfigMap(ctx, k, w.namespace, w.name, labels, data)
}

// Close is a no-op; ConfigMapWriter holds no resources.
func (w *ConfigMapWriter) Close() error {
	return nil
}
