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

// Package serializer encodes and decodes recipebook data as JSON, YAML, or
// a human-readable table.
//
// # Formats
//
// JSON is the default and the only format served over HTTP. YAML uses
// gopkg.in/yaml.v3. Table output is write-only: a slice of structs becomes
// one row per element, with list fields joined by commas; any other value
// is flattened into FIELD/VALUE pairs.
//
// # Writing
//
//	w := serializer.NewFileWriterOrStdout(serializer.FormatTable, path)
//	if c, ok := w.(serializer.Closer); ok {
//	    defer c.Close()
//	}
//	err := w.Serialize(ctx, cards)
//
// An empty path writes to stdout. A cm://namespace/name path applies the
// output to a ConfigMap under the key "recipes.<format>".
//
// # Reading
//
// FromFile loads a value from a local file, an HTTP(S) URL, or a ConfigMap:
//
//	catalog, err := serializer.FromFile[recipe.Catalog]("catalog.yaml")
//
// # HTTP
//
// RespondJSON buffers the encoding before writing headers so a failed
// encode never produces a partial body.
package serializer
