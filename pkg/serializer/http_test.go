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
	"math"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/client-go/kubernetes/fake"
)

func TestRespondJSON(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondJSON(rec, http.StatusCreated, map[string]string{"status": "ok"})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestRespondJSON_EncodeFailure(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondJSON(rec, http.StatusOK, math.Inf(1))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestHttpReader_Options(t *testing.T) {
	r := NewHttpReader(WithUserAgent("ua"), WithTotalTimeout(time.Second), WithInsecureSkipVerify(true))
	assert.Equal(t, "ua", r.UserAgent)
	assert.Equal(t, time.Second, r.Client.Timeout)

	custom := &http.Client{}
	assert.Same(t, custom, NewHttpReader(WithClient(custom)).Client)
}

func TestHttpReader_ReadWithContextCanceled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("ok"))
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewHttpReader().ReadWithContext(ctx, srv.URL)
	require.Error(t, err)

	body, err := NewHttpReader().ReadWithContext(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Equal(t, "ok", string(body))
}

func TestConfigMapWriter_Serialize(t *testing.T) {
	k := fake.NewClientset()
	w := NewConfigMapWriter("web", "recipes", FormatYAML).WithClient(k)

	require.NoError(t, w.Serialize(context.Background(), map[string]string{"name": "soup"}))
	require.NoError(t, w.Close())

	cm, err := k.CoreV1().ConfigMaps("web").Get(context.Background(), "recipes", metav1.GetOptions{})
	require.NoError(t, err)
	assert.Equal(t, "name: soup\n", cm.Data["recipes.yaml"])
	assert.Equal(t, "yaml", cm.Data["format"])
	assert.Equal(t, "recipebook", cm.Labels["app.kubernetes.io/name"])
}
