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

package recipe

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
	"k8s.io/utils/ptr"

	apperrors "github.com/NVIDIA/recipebook/pkg/errors"
)

// Recognized option keys, shared by query strings and request bodies.
const (
	ParamDifficulty   = "difficulty"
	ParamMaxTime      = "maxTime"
	ParamCuisine      = "cuisine"
	ParamSortProperty = "sortProperty"

	// ParamQuery is the free-text search parameter. It is not an Options
	// field; callers apply it with Search.
	ParamQuery = "q"
)

// ParseOptionsFromRequest parses options from HTTP query parameters.
func ParseOptionsFromRequest(r *http.Request) (*Options, error) {
	if r == nil {
		return nil, fmt.Errorf("request cannot be nil")
	}
	return ParseOptionsFromValues(r.URL.Query())
}

// ParseOptionsFromValues parses options from URL values. A missing or empty
// parameter leaves the corresponding filter unset; maxTime=0 is a filter.
func ParseOptionsFromValues(values url.Values) (*Options, error) {
	raw := rawOptions{}

	if s := values.Get(ParamDifficulty); s != "" {
		raw.Difficulty = ptr.To(s)
	}
	if s := values.Get(ParamMaxTime); s != "" {
		n, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			return nil, apperrors.Wrap(apperrors.ErrCodeInvalidRequest,
				fmt.Sprintf("invalid maxTime value: %s", s), err)
		}
		raw.MaxTime = ptr.To(n)
	}
	if s := values.Get(ParamCuisine); s != "" {
		raw.Cuisine = ptr.To(s)
	}
	raw.SortProperty = values.Get(ParamSortProperty)

	return raw.toOptions()
}

// ParseOptionsFromBody parses options from a JSON or YAML request body.
// Keys set to null are treated as absent. The q key is ignored; use
// ParseSearchFromBody to read it as well.
func ParseOptionsFromBody(body io.Reader, contentType string) (*Options, error) {
	opts, _, err := ParseSearchFromBody(body, contentType)
	return opts, err
}

// ParseSearchFromBody parses options and the q search key from a JSON or
// YAML request body. An absent or empty q matches every recipe.
//
// Supported Content-Types:
//   - application/json (also the default for empty or unknown types)
//   - application/x-yaml, application/yaml, text/yaml
func ParseSearchFromBody(body io.Reader, contentType string) (*Options, string, error) {
	if body == nil {
		return nil, "", apperrors.New(apperrors.ErrCodeInvalidRequest, "request body cannot be nil")
	}

	data, err := io.ReadAll(body)
	if err != nil {
		return nil, "", apperrors.Wrap(apperrors.ErrCodeInvalidRequest, "failed to read request body", err)
	}
	if len(data) == 0 {
		return nil, "", apperrors.New(apperrors.ErrCodeInvalidRequest, "request body is empty")
	}

	ct := strings.ToLower(strings.TrimSpace(contentType))
	if idx := strings.Index(ct, ";"); idx != -1 {
		ct = strings.TrimSpace(ct[:idx])
	}

	var raw rawOptions
	switch ct {
	case "application/x-yaml", "application/yaml", "text/yaml":
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, "", apperrors.Wrap(apperrors.ErrCodeInvalidRequest, "failed to parse YAML body", err)
		}
	default:
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, "", apperrors.Wrap(apperrors.ErrCodeInvalidRequest,
				fmt.Sprintf("failed to parse body as JSON (content type %q)", contentType), err)
		}
	}

	opts, err := raw.toOptions()
	if err != nil {
		return nil, "", err
	}
	return opts, raw.Query, nil
}

// rawOptions carries string enum values so they go through the Parse*
// functions before becoming typed Options.
type rawOptions struct {
	Difficulty   *string `json:"difficulty" yaml:"difficulty"`
	MaxTime      *int    `json:"maxTime" yaml:"maxTime"`
	Cuisine      *string `json:"cuisine" yaml:"cuisine"`
	SortProperty string  `json:"sortProperty" yaml:"sortProperty"`
	Query        string  `json:"q" yaml:"q"`
}

func (raw rawOptions) toOptions() (*Options, error) {
	opts := &Options{
		MaxTime: raw.MaxTime,
		Cuisine: raw.Cuisine,
	}

	if raw.Difficulty != nil {
		d, err := ParseDifficulty(*raw.Difficulty)
		if err != nil {
			return nil, err
		}
		opts.Difficulty = ptr.To(d)
	}

	p, err := ParseProperty(raw.SortProperty)
	if err != nil {
		return nil, err
	}
	opts.SortProperty = p

	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return opts, nil
}
