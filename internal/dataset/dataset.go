// Package dataset fetches and decodes training data archives.
//
// An archive is a gzip-compressed gob stream. Prepare downloads it into a
// local cache directory the first time and decodes it on every call:
//
//	archive, err := dataset.Prepare[dataset.Archive]("~/.cache/minigrad", url)
//	x, y, err := archive.Train.Tensors()
package dataset

import (
	"compress/gzip"
	"encoding/gob"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/born-ml/minigrad/internal/autodiff"
	"github.com/born-ml/minigrad/internal/tensor"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// Split is one partition of a labeled dataset.
type Split struct {
	Inputs [][]float64 // one row of features per example
	Labels []int
}

// Archive is the usual payload of a dataset file.
type Archive struct {
	Train, Valid, Test Split
}

// Len returns the number of examples.
func (s Split) Len() int {
	return len(s.Inputs)
}

// Tensors converts the split to a [n, features] input tensor and an Int64
// label vector of shape [n]. Neither requires gradients.
func (s Split) Tensors() (inputs, labels *autodiff.Tensor, err error) {
	if len(s.Inputs) == 0 {
		return nil, nil, errors.New("empty split")
	}
	if len(s.Labels) != len(s.Inputs) {
		return nil, nil, errors.Errorf("split has %d inputs but %d labels", len(s.Inputs), len(s.Labels))
	}
	x, err := tensor.FromValue(s.Inputs)
	if err != nil {
		return nil, nil, errors.WithMessage(err, "converting inputs")
	}
	y, err := tensor.FromSlice(s.Labels, tensor.Shape{len(s.Labels)})
	if err != nil {
		return nil, nil, errors.WithMessage(err, "converting labels")
	}
	return autodiff.Const(x), autodiff.Const(y), nil
}

// OneHot encodes the labels as a [n, numClasses] matrix of 0s and 1s.
func (s Split) OneHot(numClasses int) (*tensor.RawTensor, error) {
	data := make([]float64, len(s.Labels)*numClasses)
	for i, label := range s.Labels {
		if label < 0 || label >= numClasses {
			return nil, errors.Errorf("label %d of example %d is outside [0, %d)", label, i, numClasses)
		}
		data[i*numClasses+label] = 1
	}
	return tensor.New(data, tensor.Shape{len(s.Labels), numClasses})
}

// Prepare makes sure the file named by the last element of url is in dir,
// downloading it if needed, and decodes it into a T.
func Prepare[T any](dir, url string) (T, error) {
	var zero T
	filePath, err := CachePath(dir, url)
	if err != nil {
		return zero, err
	}

	klog.Infof("Preparing dataset %s ...", filepath.Base(filePath))
	if err := DownloadIfMissing(url, filePath, ""); err != nil {
		return zero, errors.WithMessagef(err, "preparing dataset from %q", url)
	}
	return Load[T](filePath)
}

// CachePath returns where Prepare keeps the file downloaded from url. A
// leading "~" in dir stands for the home directory.
func CachePath(dir, url string) (string, error) {
	dir, err := expandHome(dir)
	if err != nil {
		return "", err
	}
	name := path.Base(url)
	if name == "" || name == "." || name == "/" {
		return "", errors.Errorf("cannot derive a file name from %q", url)
	}
	return filepath.Join(dir, name), nil
}

// MustPrepare is Prepare that logs the error and exits the process.
func MustPrepare[T any](dir, url string) T {
	v, err := Prepare[T](dir, url)
	if err != nil {
		klog.Exitf("Error downloading dataset: %+v", err)
	}
	return v
}

// Load decodes a gzip-compressed gob file into a T.
func Load[T any](filePath string) (T, error) {
	var v T
	f, err := os.Open(filePath)
	if err != nil {
		return v, errors.Wrapf(err, "failed to open %q", filePath)
	}
	defer func() { _ = f.Close() }()

	gz, err := gzip.NewReader(f)
	if err != nil {
		return v, errors.Wrapf(err, "failed to un-gzip %q", filePath)
	}
	defer func() { _ = gz.Close() }()

	if err := gob.NewDecoder(gz).Decode(&v); err != nil {
		return v, errors.Wrapf(err, "failed to decode %q as %T", filePath, v)
	}
	return v, nil
}

// Save writes v to filePath as a gzip-compressed gob stream.
func Save[T any](filePath string, v T) (err error) {
	if err = os.MkdirAll(filepath.Dir(filePath), 0o755); err != nil {
		return errors.Wrapf(err, "failed to create the directory for %q", filePath)
	}
	f, err := os.Create(filePath)
	if err != nil {
		return errors.Wrapf(err, "failed creating %q", filePath)
	}
	defer func() {
		if closeErr := f.Close(); err == nil && closeErr != nil {
			err = errors.Wrapf(closeErr, "failed closing %q", filePath)
		}
	}()

	gz := gzip.NewWriter(f)
	if err = gob.NewEncoder(gz).Encode(v); err != nil {
		return errors.Wrapf(err, "failed to encode %T into %q", v, filePath)
	}
	if err = gz.Close(); err != nil {
		return errors.Wrapf(err, "failed to flush %q", filePath)
	}
	return nil
}

// expandHome replaces a leading "~" with the user's home directory.
func expandHome(dir string) (string, error) {
	if dir != "~" && !strings.HasPrefix(dir, "~/") {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(err, "failed to find the home directory")
	}
	return filepath.Join(home, strings.TrimPrefix(dir, "~")), nil
}
