// Package index resolves the installer script URL for an interpreter
// version by scraping the bootstrap index root page. A version-specific
// subdirectory wins when the index advertises one; otherwise the generic
// installer at the index root is used, so the index can add or drop
// version subdirectories without a new release of this tool.
package index

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/pipboot/pipboot/internal/messages"
	"github.com/pipboot/pipboot/internal/pyversion"
)

// DefaultBaseURL is the bootstrap index root.
const DefaultBaseURL = "https://bootstrap.pypa.io/pip"

// installerScript is the installer filename at each index level.
const installerScript = "get-pip.py"

var defaultClient = &http.Client{Timeout: 30 * time.Second}

// Resolver discovers installer URLs from a bootstrap index.
type Resolver struct {
	baseURL string
	client  *http.Client
	parser  AnchorParser
}

// NewResolver returns a Resolver for the given index base URL. An empty
// baseURL selects the default bootstrap index.
func NewResolver(baseURL string) *Resolver {
	trimmed := strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if trimmed == "" {
		trimmed = DefaultBaseURL
	}
	return &Resolver{baseURL: trimmed, client: defaultClient, parser: HTMLAnchorParser{}}
}

// WithClient replaces the HTTP client. Used by tests and by callers that
// need a different timeout policy.
func (r *Resolver) WithClient(client *http.Client) *Resolver {
	r.client = client
	return r
}

// WithParser replaces the anchor parser.
func (r *Resolver) WithParser(parser AnchorParser) *Resolver {
	r.parser = parser
	return r
}

// BaseURL returns the index root the resolver queries.
func (r *Resolver) BaseURL() string {
	return r.baseURL
}

// InstallerURL fetches the index root and returns the installer URL for
// version. Failures are fatal to the caller: there is no retry and no
// offline fallback.
func (r *Resolver) InstallerURL(version pyversion.Version) (string, error) {
	anchors, err := r.fetchAnchors()
	if err != nil {
		return "", err
	}
	wanted := version.String() + "/"
	for _, href := range anchors {
		if href == wanted {
			return fmt.Sprintf("%s/%s/%s", r.baseURL, version.String(), installerScript), nil
		}
	}
	return fmt.Sprintf("%s/%s", r.baseURL, installerScript), nil
}

// fetchAnchors downloads the index root page and extracts its anchors.
func (r *Resolver) fetchAnchors() ([]string, error) {
	req, err := http.NewRequest(http.MethodGet, r.baseURL+"/", nil)
	if err != nil {
		return nil, fmt.Errorf(messages.IndexCreateRequestErrFmt, err)
	}
	req.Header.Set("User-Agent", "pipboot")

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf(messages.IndexFetchFailedFmt, r.baseURL, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf(messages.IndexUnexpectedStatusFmt, r.baseURL, resp.Status)
	}

	anchors, err := r.parser.Anchors(resp.Body)
	if err != nil {
		return nil, fmt.Errorf(messages.IndexParseFailedFmt, r.baseURL, err)
	}
	return anchors, nil
}
