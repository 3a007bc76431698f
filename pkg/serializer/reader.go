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
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"os"
	"sort"
	"strings"

	"github.com/NVIDIA/recipebook/pkg/defaults"
	"github.com/NVIDIA/recipebook/pkg/k8s/client"
	"gopkg.in/yaml.v3"
)

// FormatFromPath determines the serialization format based on file extension.
//   - .json → FormatJSON
//   - .yaml, .yml → FormatYAML
//   - .table, .txt → FormatTable
//
// Returns FormatJSON for unknown extensions. Matching is case-insensitive.
func FormatFromPath(filePath string) Format {
	lowerPath := strings.ToLower(filePath)
	switch {
	case strings.HasSuffix(lowerPath, ".json"):
		return FormatJSON
	case strings.HasSuffix(lowerPath, ".yaml"), strings.HasSuffix(lowerPath, ".yml"):
		return FormatYAML
	case strings.HasSuffix(lowerPath, ".table"), strings.HasSuffix(lowerPath, ".txt"):
		return FormatTable
	default:
		slog.Warn("unknown file extension, defaulting to JSON", "filePath", filePath)
		return FormatJSON
	}
}

// Reader deserializes JSON or YAML from any io.Reader.
// Table format is write-only.
type Reader struct {
	format Format
	input  io.Reader
	closer io.Closer
}

// NewReader creates a new Reader for input. If input implements io.Closer
// it is closed by Reader.Close.
func NewReader(format Format, input io.Reader) (*Reader, error) {
	if format.IsUnknown() {
		return nil, fmt.Errorf("unknown format: %s", format)
	}
	if format == FormatTable {
		return nil, fmt.Errorf("table format does not support deserialization")
	}

	r := &Reader{
		format: format,
		input:  input,
	}
	if closer, ok := input.(io.Closer); ok {
		r.closer = closer
	}
	return r, nil
}

// Deserialize reads the input and unmarshals it into v, which must be a pointer.
func (r *Reader) Deserialize(v any) error {
	if r == nil {
		return fmt.Errorf("reader is nil")
	}
	if r.input == nil {
		return fmt.Errorf("input source is nil")
	}

	switch r.format {
	case FormatJSON:
		if err := json.NewDecoder(r.input).Decode(v); err != nil {
			return fmt.Errorf("failed to decode JSON: %w", err)
		}
		return nil
	case FormatYAML:
		if err := yaml.NewDecoder(r.input).Decode(v); err != nil {
			return fmt.Errorf("failed to decode YAML: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("unsupported format for deserialization: %s", r.format)
	}
}

// Close releases any resources held by the Reader. Safe to call more than once.
func (r *Reader) Close() error {
	if r == nil || r.closer == nil {
		return nil
	}
	err := r.closer.Close()
	r.closer = nil
	return err
}

// FromFile reads and deserializes data into T from one of:
//   - a local file path, format by extension
//   - an http:// or https:// URL, format by the URL path extension
//   - a ConfigMap URI cm://namespace/name, using the first data key
//     (in sorted order) that ends in .json, .yaml, or .yml
//
// Example:
//
//	catalog, err := FromFile[recipe.Catalog]("cm://web/recipe-catalog")
func FromFile[T any](path string) (*T, error) {
	return FromFileWithContext[T](context.Background(), path)
}

// FromFileWithContext is FromFile bounded by ctx for remote sources. The
// options configure the HttpReader used for http(s) paths.
func FromFileWithContext[T any](ctx context.Context, path string, options ...HttpReaderOption) (*T, error) {
	switch {
	case strings.HasPrefix(path, client.ConfigMapURIScheme):
		namespace, name, err := client.ParseConfigMapURI(path)
		if err != nil {
			return nil, fmt.Errorf("invalid ConfigMap URI: %w", err)
		}
		k, _, err := client.GetKubeClient()
		if err != nil {
			return nil, fmt.Errorf("failed to get kubernetes client: %w", err)
		}
		return fromConfigMap[T](ctx, k, namespace, name)

	case strings.HasPrefix(path, "http://"), strings.HasPrefix(path, "https://"):
		u, err := url.Parse(path)
		if err != nil {
			return nil, fmt.Errorf("invalid URL %q: %w", path, err)
		}
		body, err := NewHttpReader(options...).ReadWithContext(ctx, path)
		if err != nil {
			return nil, err
		}
		return decode[T](FormatFromPath(u.Path), bytes.NewReader(body), path)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			slog.Warn("failed to close file", "error", closeErr, "path", path)
		}
	}()

	return decode[T](FormatFromPath(path), file, path)
}

func decode[T any](format Format, input io.Reader, source string) (*T, error) {
	slog.Debug("determined file format",
		slog.String("source", source),
		slog.String("format", string(format)),
	)

	ser, err := NewReader(format, input)
	if err != nil {
		return nil, fmt.Errorf("failed to create reader for %q: %w", source, err)
	}

	var v T
	if err := ser.Deserialize(&v); err != nil {
		return nil, fmt.Errorf("failed to deserialize object from %q: %w", source, err)
	}
	return &v, nil
}

func fromConfigMap[T any](ctx context.Context, k client.Interface, namespace, name string) (*T, error) {
	ctx, cancel := context.WithTimeout(ctx, defaults.ConfigMapReadTimeout)
	defer cancel()

	data, err := client.GetConfigMapData(ctx, k, namespace, name)
	if err != nil {
		return nil, err
	}

	keys := make([]string, 0, len(data))
	for key := range data {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		lower := strings.ToLower(key)
		if strings.HasSuffix(lower, ".json") || strings.HasSuffix(lower, ".yaml") || strings.HasSuffix(lower, ".yml") {
			source := fmt.Sprintf("%s%s/%s#%s", client.ConfigMapURIScheme, namespace, name, key)
			return decode[T](FormatFromPath(key), strings.NewReader(data[key]), source)
		}
	}

	return nil, fmt.Errorf("ConfigMap %s/%s has no .json, .yaml, or .yml data key", namespace, name)
}
