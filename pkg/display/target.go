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

package display

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	oras "oras.land/oras-go/v2"

	"github.com/NVIDIA/recipebook/pkg/defaults"
	apperrors "github.com/NVIDIA/recipebook/pkg/errors"
	"github.com/NVIDIA/recipebook/pkg/k8s/client"
	"github.com/NVIDIA/recipebook/pkg/oci"
)

// PageFileName is the file (or ConfigMap key) that holds a rendered page.
const PageFileName = "index.html"

// Target receives rendered markup. Replace overwrites whatever the target
// held before; it is the only side effect of Display.
type Target interface {
	Replace(ctx context.Context, markup string) error
}

// WriterTarget writes the markup fragment to W, or stdout when W is nil.
type WriterTarget struct {
	W io.Writer
}

func (t *WriterTarget) Replace(_ context.Context, markup string) error {
	w := t.W
	if w == nil {
		w = os.Stdout
	}
	if _, err := io.WriteString(w, markup); err != nil {
		return fmt.Errorf("failed to write markup: %w", err)
	}
	return nil
}

// FileTarget writes a standalone page. A Path ending in .html names the
// file; any other Path is a directory that receives index.html.
type FileTarget struct {
	Path  string
	Title string
}

func (t *FileTarget) file() string {
	if strings.HasSuffix(strings.ToLower(t.Path), ".html") {
		return t.Path
	}
	return filepath.Join(t.Path, PageFileName)
}

// Replace writes to a temp file in the same directory and renames it over
// the destination so readers never see a partial page.
func (t *FileTarget) Replace(_ context.Context, markup string) error {
	page, err := Page(t.Title, markup)
	if err != nil {
		return err
	}

	dest := t.file()
	dir := filepath.Dir(dest)
	if mkErr := os.MkdirAll(dir, 0o755); mkErr != nil {
		return fmt.Errorf("failed to create output directory %s: %w", dir, mkErr)
	}

	tmp, err := os.CreateTemp(dir, ".recipebook-*.html")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmp.Name()) //nolint:errcheck // gone after a successful rename

	if _, err := tmp.WriteString(page); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write page: %w", err)
	}
	if err := tmp.Chmod(0o644); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to set page permissions: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), dest); err != nil {
		return fmt.Errorf("failed to replace %s: %w", dest, err)
	}

	slog.Debug("page written", "path", dest, "bytes", len(page))
	return nil
}

// ConfigMapTarget applies a standalone page to a ConfigMap under the key
// index.html, ready to be mounted by a static web server.
type ConfigMapTarget struct {
	Namespace string
	Name      string
	Title     string
	// Client defaults to the shared client from pkg/k8s/client.
	Client client.Interface
}

func (t *ConfigMapTarget) Replace(ctx context.Context, markup string) error {
	page, err := Page(t.Title, markup)
	if err != nil {
		return err
	}

	k := t.Client
	if k == nil {
		k, _, err = client.GetKubeClient()
		if err != nil {
			return apperrors.Wrap(apperrors.ErrCodeUnavailable, "failed to get kubernetes client", err)
		}
	}

	ctx, cancel := context.WithTimeout(ctx, defaults.ConfigMapWriteTimeout)
	defer cancel()

	labels := map[string]string{
		"app.kubernetes.io/name":      "recipebook",
		"app.kubernetes.io/component": "page",
	}
	return client.ApplyConfigMap(ctx, k, t.Namespace, t.Name, labels, map[string]string{
		PageFileName: page,
	})
}

// OCITarget writes a standalone page to a temp directory and pushes it to
// an OCI registry as an ORAS artifact.
type OCITarget struct {
	Reference   *oci.Reference
	Title       string
	PlainHTTP   bool
	InsecureTLS bool
	// Store replaces the remote registry when set.
	Store oras.Target

	// Result holds the outcome of the last successful push.
	Result *oci.PushResult
}

func (t *OCITarget) Replace(ctx context.Context, markup string) error {
	if t.Reference == nil {
		return apperrors.New(apperrors.ErrCodeInvalidRequest, "OCI reference is required")
	}

	dir, err := os.MkdirTemp("", "recipebook-page-*")
	if err != nil {
		return fmt.Errorf("failed to create temp directory: %w", err)
	}
	defer os.RemoveAll(dir)

	if err := (&FileTarget{Path: dir, Title: t.Title}).Replace(ctx, markup); err != nil {
		return err
	}

	tag := t.Reference.Tag
	if tag == "" {
		tag = oci.DefaultTag
	}

	ctx, cancel := context.WithTimeout(ctx, defaults.OCIPushTimeout)
	defer cancel()

	title := t.Title
	if title == "" {
		title = DefaultTitle
	}

	res, err := oci.Push(ctx, oci.PushOptions{
		SourceDir:   dir,
		Registry:    t.Reference.Registry,
		Repository:  t.Reference.Repository,
		Tag:         tag,
		PlainHTTP:   t.PlainHTTP,
		InsecureTLS: t.InsecureTLS,
		Annotations: map[string]string{
			"org.opencontainers.image.title":  title,
			"org.opencontainers.image.vendor": "NVIDIA",
		},
		Target: t.Store,
	})
	if err != nil {
		return apperrors.Wrap(apperrors.ErrCodeUnavailable, "failed to push page to registry", err)
	}

	slog.Info("page pushed", "reference", res.Reference, "digest", res.Digest)
	t.Result = res
	return nil
}

// TargetOption configures targets built by NewTarget.
type TargetOption func(*targetConfig)

type targetConfig struct {
	title       string
	plainHTTP   bool
	insecureTLS bool
	kubeClient  client.Interface
	stdout      io.Writer
}

// WithTitle sets the page title for file, ConfigMap, and OCI targets.
func WithTitle(title string) TargetOption {
	return func(c *targetConfig) { c.title = title }
}

// WithPlainHTTP pushes OCI artifacts over HTTP.
func WithPlainHTTP(v bool) TargetOption {
	return func(c *targetConfig) { c.plainHTTP = v }
}

// WithInsecureTLS skips registry TLS verification.
func WithInsecureTLS(v bool) TargetOption {
	return func(c *targetConfig) { c.insecureTLS = v }
}

// WithKubeClient sets the client used by ConfigMap targets.
func WithKubeClient(k client.Interface) TargetOption {
	return func(c *targetConfig) { c.kubeClient = k }
}

// WithStdout sets the writer used when the URI selects stdout.
func WithStdout(w io.Writer) TargetOption {
	return func(c *targetConfig) { c.stdout = w }
}

// NewTarget selects a Target from uri:
//   - "" or "-": stdout (markup fragment only)
//   - cm://namespace/name: ConfigMapTarget
//   - oci://registry/repository[:tag]: OCITarget
//   - anything else: FileTarget
func NewTarget(uri string, opts ...TargetOption) (Target, error) {
	cfg := &targetConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	uri = strings.TrimSpace(uri)
	switch {
	case uri == "" || uri == "-":
		return &WriterTarget{W: cfg.stdout}, nil

	case strings.HasPrefix(uri, client.ConfigMapURIScheme):
		ns, name, err := client.ParseConfigMapURI(uri)
		if err != nil {
			return nil, apperrors.Wrap(apperrors.ErrCodeInvalidRequest, "invalid ConfigMap target", err)
		}
		return &ConfigMapTarget{Namespace: ns, Name: name, Title: cfg.title, Client: cfg.kubeClient}, nil

	case oci.IsURI(uri):
		ref, err := oci.ParseReference(uri)
		if err != nil {
			return nil, err
		}
		return &OCITarget{
			Reference:   ref,
			Title:       cfg.title,
			PlainHTTP:   cfg.plainHTTP,
			InsecureTLS: cfg.insecureTLS,
		}, nil

	default:
		return &FileTarget{Path: uri, Title: cfg.title}, nil
	}
}
