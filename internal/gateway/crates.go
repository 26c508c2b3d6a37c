package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/mad4j/rustedbytes-pages/internal/domain"
)

// CratesAPIBase is the public crates.io API root.
const CratesAPIBase = "https://crates.io/api/v1"

// cratesUserAgent identifies this tool to crates.io, which rejects
// requests without a User-Agent.
const cratesUserAgent = "rustedbytes-page-generator"

// RegistryLookup defines the behavior of a gateway for looking up a
// published package on a registry by name.
type RegistryLookup interface {
	// CrateInfo returns the registry metadata for the named crate, or
	// (nil, nil) when no crate with that name is published.
	CrateInfo(ctx context.Context, name string) (*domain.CrateInfo, error)
}

// CratesGateway is the concrete implementation of RegistryLookup for
// crates.io. Lookups use the repository name verbatim as the crate name;
// there is no alternate-name mapping.
type CratesGateway struct {
	baseURL    string
	httpClient *http.Client
	logger     *log.Logger
}

// crateResponse mirrors the subset of the crates.io response we read.
type crateResponse struct {
	Crate struct {
		Name          string `json:"name"`
		NewestVersion string `json:"newest_version"`
	} `json:"crate"`
}

// NewCratesGateway creates a CratesGateway. A nil httpClient gets a
// default client with an explicit timeout.
func NewCratesGateway(baseURL string, httpClient *http.Client, logger *log.Logger) *CratesGateway {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: httpTimeout}
	}
	return &CratesGateway{
		baseURL:    baseURL,
		httpClient: httpClient,
		logger:     logger,
	}
}

// CrateInfo looks up the named crate. Any non-200 status means the crate
// is not published and maps to (nil, nil); only transport failures and
// malformed payloads surface as errors.
func (g *CratesGateway) CrateInfo(ctx context.Context, name string) (*domain.CrateInfo, error) {
	url := fmt.Sprintf("%s/crates/%s", g.baseURL, name)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build crates.io request for %s: %w", name, err)
	}
	req.Header.Set("User-Agent", cratesUserAgent)

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch crate info for %s: %w", name, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		g.logger.Printf("  Crate %s not published (status %d)", name, resp.StatusCode)
		return nil, nil
	}

	var body crateResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode crates.io response for %s: %w", name, err)
	}

	info := &domain.CrateInfo{
		Name:          body.Crate.Name,
		NewestVersion: body.Crate.NewestVersion,
	}
	if info.Name == "" {
		info.Name = name
	}
	return info, nil
}
