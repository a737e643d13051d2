// Copyright 2026 The Dense Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package heatmap_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/densemath/dense/heatmap"
	"github.com/densemath/dense/matrix"
)

func TestSaveWritesPNG(t *testing.T) {
	m, err := matrix.From(2, 3, []float64{0, 0.5, 1, 1, 0.5, 0})
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "out.png")
	require.NoError(t, heatmap.Save(m, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Greater(t, len(data), 8)
	assert.Equal(t, []byte("\x89PNG\r\n\x1a\n"), data[:8], "PNG signature")
}

func TestSaveNilMatrix(t *testing.T) {
	err := heatmap.Save(nil, filepath.Join(t.TempDir(), "out.png"))
	assert.Error(t, err)
}

func TestSaveUnsupportedFormat(t *testing.T) {
	m, err := matrix.Random(4, 4)
	require.NoError(t, err)

	err = heatmap.Save(m, filepath.Join(t.TempDir(), "out.nope"))
	assert.Error(t, err)
}
