// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package dataset downloads and decodes gzip-compressed gob dataset archives.
package dataset

import (
	"github.com/born-ml/minigrad/internal/dataset"
)

// Split is one partition of a labeled dataset.
type Split = dataset.Split

// Archive holds the train, validation and test splits.
type Archive = dataset.Archive

// Prepare downloads url into dir unless already there, then decodes it.
func Prepare[T any](dir, url string) (T, error) { return dataset.Prepare[T](dir, url) }

// MustPrepare is Prepare that logs the error and exits the process.
func MustPrepare[T any](dir, url string) T { return dataset.MustPrepare[T](dir, url) }

// Load decodes a gzip-compressed gob file.
func Load[T any](filePath string) (T, error) { return dataset.Load[T](filePath) }

// Save writes v as a gzip-compressed gob file.
func Save[T any](filePath string, v T) error { return dataset.Save(filePath, v) }
