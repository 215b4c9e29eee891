// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the numeric buffers minigrad computes with.
//
// # Overview
//
// A RawTensor is an immutable, dense, row-major N-dimensional array. This
// package provides:
//   - Construction from Go slices, nested slices, constants and random draws
//   - NumPy-style broadcasting for element-wise arithmetic
//   - Reductions, reshaping, transposition, indexing and padding
//   - Matrix products for vectors and matrices
//
// # Basic Usage
//
//	x, err := tensor.FromValue([][]float64{{1, 2}, {3, 4}})
//	if err != nil {
//	    return err
//	}
//	y := x.Add(tensor.Ones(tensor.Shape{2}))  // broadcast over rows
//	z := y.MatMul(x.Transpose())
//	fmt.Println(z.Sum().Item())
//
// # Supported Data Types
//
// Values are stored as float64 and rounded to the buffer's DataType:
//   - Float64 (default), Float32, Float16
//   - Int64, the default for integer input
//
// Binary operations produce the wider of the two types.
//
// # Broadcasting
//
//	a := tensor.Zeros(tensor.Shape{3, 1})     // (3, 1)
//	b := tensor.Ones(tensor.Shape{3, 4})      // (3, 4)
//	c := a.Add(b)                             // (3, 4)
//
// # Indexing
//
//	row := x.Slice(tensor.At(1))                      // x[1]
//	cols := x.Slice(tensor.All(), tensor.Range(0, 1)) // x[:, 0:1]
//
// Shape mismatches and out-of-range axes panic; construction errors are
// returned.
package tensor
