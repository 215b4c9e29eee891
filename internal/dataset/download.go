package dataset

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/schollz/progressbar/v3"
	"k8s.io/klog/v2"
)

// ShowProgressBar enables the download progress bar on stdout.
var ShowProgressBar = true

// Download fetches url and saves it at filePath, creating the directory if
// needed. The file only appears at filePath once the transfer completed, so
// an interrupted download is retried on the next call.
func Download(url, filePath string) (size int64, err error) {
	if err = os.MkdirAll(filepath.Dir(filePath), 0o755); err != nil {
		return 0, errors.Wrapf(err, "failed to create the directory for %q", filePath)
	}

	resp, err := http.Get(url) //nolint:gosec // url is chosen by the caller
	if err != nil {
		return 0, errors.Wrapf(err, "failed downloading %q", url)
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return 0, errors.Errorf("failed downloading %q: %s", url, resp.Status)
	}

	tmp, err := os.CreateTemp(filepath.Dir(filePath), filepath.Base(filePath)+".*.part")
	if err != nil {
		return 0, errors.Wrapf(err, "failed creating temporary file for %q", filePath)
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	var dst io.Writer = tmp
	var bar *progressbar.ProgressBar
	if ShowProgressBar {
		bar = progressbar.DefaultBytes(resp.ContentLength, describeSize(resp.ContentLength))
		dst = io.MultiWriter(tmp, bar)
	}
	size, err = io.Copy(dst, resp.Body)
	if bar != nil {
		_ = bar.Close()
		fmt.Println()
	}
	if err != nil {
		return 0, errors.Wrapf(err, "downloading %q to %q", url, filePath)
	}
	if err = tmp.Close(); err != nil {
		return 0, errors.Wrapf(err, "failed closing %q", tmp.Name())
	}
	if err = os.Rename(tmp.Name(), filePath); err != nil {
		return 0, errors.Wrapf(err, "failed moving download into %q", filePath)
	}
	return size, nil
}

func describeSize(contentLength int64) string {
	if contentLength < 0 {
		return "downloading"
	}
	return humanize.Bytes(uint64(contentLength))
}

// DownloadIfMissing downloads url to filePath unless the file already exists.
//
// If checkHash is given, the file must have that hex SHA-256 checksum.
func DownloadIfMissing(url, filePath, checkHash string) error {
	if _, err := os.Stat(filePath); err == nil {
		klog.Infof("%s already exists.", filePath)
	} else if os.IsNotExist(err) {
		klog.Infof("Downloading %s to %s", url, filePath)
		size, err := Download(url, filePath)
		if err != nil {
			return err
		}
		klog.V(1).Infof("downloaded %s", humanize.Bytes(uint64(size)))
	} else {
		return errors.Wrapf(err, "failed to stat %q", filePath)
	}
	if checkHash == "" {
		return nil
	}
	return ValidateChecksum(filePath, checkHash)
}
