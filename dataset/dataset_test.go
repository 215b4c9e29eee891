// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package dataset_test

import (
	"path/filepath"
	"testing"

	"github.com/born-ml/minigrad/dataset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "xor.bin")
	want := dataset.Archive{
		Train: dataset.Split{Inputs: [][]float64{{0, 0}, {0, 1}, {1, 0}, {1, 1}}, Labels: []int{0, 1, 1, 0}},
	}
	require.NoError(t, dataset.Save(path, want))

	got, err := dataset.Load[dataset.Archive](path)
	require.NoError(t, err)
	assert.Equal(t, want.Train, got.Train)
	assert.Zero(t, got.Test.Len())
}
