package spreadsheet

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"net/http"
	"strings"

	"tracking/internal/core/domain/services"

	"golang.org/x/oauth2/clientcredentials"
	"golang.org/x/oauth2/microsoft"
)

const (
	// GraphBaseURL is the Microsoft Graph v1.0 endpoint.
	GraphBaseURL = "https://graph.microsoft.com/v1.0"

	graphScope = "https://graph.microsoft.com/.default"

	maxWorkbookBytes = 64 << 20
)

// GraphCredentials identify the app registration used for downloads.
type GraphCredentials struct {
	TenantID     string
	ClientID     string
	ClientSecret string
}

// GraphClient returns an HTTP client that attaches app-only Graph tokens
// and refreshes them as they expire.
func GraphClient(ctx context.Context, creds GraphCredentials) *http.Client {
	cfg := clientcredentials.Config{
		ClientID:     creds.ClientID,
		ClientSecret: creds.ClientSecret,
		TokenURL:     microsoft.AzureADEndpoint(creds.TenantID).TokenURL,
		Scopes:       []string{graphScope},
	}
	return cfg.Client(ctx)
}

// SharePointSource downloads the workbook behind a SharePoint sharing link.
type SharePointSource struct {
	client     *http.Client
	baseURL    string
	sharingURL string
	sheet      string
}

func NewSharePointSource(client *http.Client, baseURL, sharingURL, sheet string) *SharePointSource {
	if baseURL == "" {
		baseURL = GraphBaseURL
	}
	return &SharePointSource{
		client:     client,
		baseURL:    strings.TrimRight(baseURL, "/"),
		sharingURL: sharingURL,
		sheet:      sheet,
	}
}

func (s *SharePointSource) Rows(ctx context.Context) ([]services.ImportRow, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.contentURL(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("download workbook: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("download workbook: graph returned %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	return Parse(io.LimitReader(resp.Body, maxWorkbookBytes), s.sheet)
}

// contentURL encodes the sharing link as a Graph share id:
// "u!" followed by unpadded base64url.
func (s *SharePointSource) contentURL() string {
	shareID := "u!" + base64.RawURLEncoding.EncodeToString([]byte(s.sharingURL))
	return s.baseURL + "/shares/" + shareID + "/driveItem/content"
}
