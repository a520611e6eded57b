package fetch

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
)

func TestDownloadStagesFile(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("print('hello from installer')\n"))
	}))
	t.Cleanup(server.Close)

	path, cleanup, err := Download(server.URL + "/pip/get-pip.py")
	if err != nil {
		t.Fatalf("Download error: %v", err)
	}
	defer cleanup()

	if filepath.Base(path) != "get-pip.py" {
		t.Fatalf("unexpected staging filename %q", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read staged file: %v", err)
	}
	if string(data) != "print('hello from installer')\n" {
		t.Fatalf("unexpected content %q", data)
	}
}

func TestDownloadCleanupRemovesStagingDir(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	}))
	t.Cleanup(server.Close)

	path, cleanup, err := Download(server.URL + "/get-pip.py")
	if err != nil {
		t.Fatalf("Download error: %v", err)
	}
	dir := filepath.Dir(path)

	cleanup()

	if _, err := os.Stat(dir); !os.IsNotExist(err) {
		t.Fatalf("expected staging dir removed, stat err = %v", err)
	}
}

func TestDownloadNon200RemovesStagingDir(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	t.Cleanup(server.Close)

	before := stagingDirs(t)
	_, _, err := Download(server.URL + "/get-pip.py")
	if err == nil {
		t.Fatalf("expected error for 404 response")
	}
	after := stagingDirs(t)
	if len(after) != len(before) {
		t.Fatalf("staging dir leaked: before=%d after=%d", len(before), len(after))
	}
}

func TestDownloadNetworkFailureRemovesStagingDir(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	before := stagingDirs(t)
	_, _, err := Download(url + "/get-pip.py")
	if err == nil {
		t.Fatalf("expected error for unreachable server")
	}
	after := stagingDirs(t)
	if len(after) != len(before) {
		t.Fatalf("staging dir leaked: before=%d after=%d", len(before), len(after))
	}
}

func TestDownloadStagingDirCreationFailure(t *testing.T) {
	original := osMkdirTemp
	osMkdirTemp = func(dir, pattern string) (string, error) {
		return "", errors.New("no temp space")
	}
	t.Cleanup(func() { osMkdirTemp = original })

	if _, _, err := Download("http://127.0.0.1:0/get-pip.py"); err == nil {
		t.Fatalf("expected staging dir error")
	}
}

func TestFileNameForURL(t *testing.T) {
	cases := []struct {
		url  string
		want string
	}{
		{"https://bootstrap.pypa.io/pip/get-pip.py", "get-pip.py"},
		{"https://bootstrap.pypa.io/pip/3.9/get-pip.py", "get-pip.py"},
		{"https://example.test/", "download"},
		{"://bad url", "download"},
	}
	for _, tc := range cases {
		if got := fileNameForURL(tc.url); got != tc.want {
			t.Fatalf("fileNameForURL(%q) = %q, want %q", tc.url, got, tc.want)
		}
	}
}

// stagingDirs lists pipboot staging directories in the temp root.
func stagingDirs(t *testing.T) []string {
	t.Helper()
	matches, err := filepath.Glob(filepath.Join(os.TempDir(), "pipboot-*"))
	if err != nil {
		t.Fatalf("glob: %v", err)
	}
	return matches
}
