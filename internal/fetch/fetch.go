// Package fetch downloads a remote resource into a freshly created
// temporary directory. The caller owns the staging directory for the
// duration of one fetch-and-use operation and is expected to defer the
// returned cleanup so the directory is removed on every exit path.
package fetch

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"time"

	"github.com/pipboot/pipboot/internal/messages"
)

// defaultMaxDownloadBytes bounds a single download. get-pip.py is around
// two megabytes; anything near this limit is not the installer.
const defaultMaxDownloadBytes = int64(64 * 1024 * 1024) // 64 MiB

var (
	httpClient  = &http.Client{Timeout: 60 * time.Second}
	osMkdirTemp = os.MkdirTemp
)

// Download fetches rawURL into a new temporary directory and returns the
// local file path plus a cleanup that removes the whole staging directory.
// cleanup is non-nil and safe to call exactly when err is nil. There is no
// retry and no verification of the downloaded bytes.
func Download(rawURL string) (string, func(), error) {
	dir, err := osMkdirTemp("", "pipboot-*")
	if err != nil {
		return "", nil, fmt.Errorf(messages.FetchCreateStagingDirFmt, err)
	}
	committed := false
	defer func() {
		if !committed {
			_ = os.RemoveAll(dir)
		}
	}()

	dest := filepath.Join(dir, fileNameForURL(rawURL))
	if err := downloadToFile(rawURL, dest); err != nil {
		return "", nil, err
	}

	committed = true
	return dest, func() { _ = os.RemoveAll(dir) }, nil
}

// fileNameForURL derives a staging filename from the URL path.
func fileNameForURL(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err == nil {
		if name := path.Base(parsed.Path); name != "" && name != "." && name != "/" {
			return name
		}
	}
	return "download"
}

// downloadToFile fetches rawURL and writes the exact byte content to dest.
func downloadToFile(rawURL string, dest string) error {
	resp, err := httpClient.Get(rawURL)
	if err != nil {
		return fmt.Errorf(messages.FetchDownloadFailedFmt, rawURL, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf(messages.FetchUnexpectedStatusFmt, rawURL, resp.Status)
	}

	file, err := os.Create(dest)
	if err != nil {
		return fmt.Errorf(messages.FetchCreateFileFmt, dest, err)
	}

	n, copyErr := io.Copy(file, io.LimitReader(resp.Body, defaultMaxDownloadBytes+1))
	if copyErr != nil {
		_ = file.Close()
		return fmt.Errorf(messages.FetchDownloadFailedFmt, rawURL, copyErr)
	}
	if n > defaultMaxDownloadBytes {
		_ = file.Close()
		return fmt.Errorf(messages.FetchDownloadTooLargeFmt, rawURL, n, defaultMaxDownloadBytes)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf(messages.FetchCloseFileFmt, dest, err)
	}
	return nil
}
