// Package gateway provides gateways to the external services the page
// generator reads from: the GitHub REST API and the crates.io registry.
package gateway

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/google/go-github/v62/github"
	"golang.org/x/oauth2"

	"github.com/gofri/go-github-ratelimit/github_ratelimit"

	"github.com/mad4j/rustedbytes-pages/internal/domain"
)

// listPageSize is the number of repositories requested per listing page.
// Pagination stops at the first page that comes back with fewer raw items
// than this, before any prefix filtering.
const listPageSize = 100

// httpTimeout bounds every outbound request. The APIs normally answer
// well under a second; anything past this is a stalled connection.
const httpTimeout = 30 * time.Second

// Fetcher defines the behavior of a gateway for fetching repository
// information from GitHub.
type Fetcher interface {
	// ListRepositories returns every repository owned by user whose name
	// starts with prefix. A failure here is fatal for the run.
	ListRepositories(ctx context.Context, user, prefix string) ([]domain.Repository, error)
	// LatestRelease returns the latest published release of owner/repo,
	// or (nil, nil) when the repository has no releases.
	LatestRelease(ctx context.Context, owner, repo string) (*domain.ReleaseInfo, error)
}

// GitHubGateway is the concrete implementation of the Fetcher interface,
// backed by the go-github REST client.
type GitHubGateway struct {
	restClient *github.Client
	logger     *log.Logger
}

// NewGitHubGateway creates a GitHubGateway. The token is optional; without
// one, requests are unauthenticated and subject to the lower rate limit.
func NewGitHubGateway(token string, logger *log.Logger) (Fetcher, error) {
	rateLimitWaiter, err := github_ratelimit.NewRateLimitWaiter(nil, github_ratelimit.WithSingleSleepLimit(1*time.Hour, nil))
	if err != nil {
		return nil, fmt.Errorf("failed to create rate limit waiter: %w", err)
	}
	var transport http.RoundTripper = rateLimitWaiter
	if token != "" {
		transport = &oauth2.Transport{
			Base:   rateLimitWaiter,
			Source: oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token}),
		}
	}
	httpClient := &http.Client{
		Transport: transport,
		Timeout:   httpTimeout,
	}
	return &GitHubGateway{
		restClient: github.NewClient(httpClient),
		logger:     logger,
	}, nil
}

// ListRepositories pages through the user's repositories and keeps those
// matching the prefix. The prefix filter is applied per page and never
// influences termination: the loop stops on the first page that is short
// before filtering, even if every one of its items was filtered out.
func (g *GitHubGateway) ListRepositories(ctx context.Context, user, prefix string) ([]domain.Repository, error) {
	opts := &github.RepositoryListByUserOptions{
		Type:        "all",
		ListOptions: github.ListOptions{Page: 1, PerPage: listPageSize},
	}
	var repos []domain.Repository
	for {
		page, _, err := g.restClient.Repositories.ListByUser(ctx, user, opts)
		if err != nil {
			return nil, fmt.Errorf("failed to list repositories for user %s: %w", user, err)
		}
		for _, r := range page {
			if !strings.HasPrefix(r.GetName(), prefix) {
				continue
			}
			repos = append(repos, domain.Repository{
				Name:        r.GetName(),
				Description: r.GetDescription(),
				HTMLURL:     r.GetHTMLURL(),
			})
		}
		if len(page) < listPageSize {
			break
		}
		opts.Page++
		g.logger.Printf("  Fetching page %d of repositories...", opts.Page)
	}
	g.logger.Printf("Completed listing repositories for %s: %d matched prefix %q", user, len(repos), prefix)
	return repos, nil
}

// LatestRelease fetches the provider-designated latest release. A 404 is
// the normal "no releases yet" answer and maps to (nil, nil); other
// failures are returned so the caller can log and carry on.
func (g *GitHubGateway) LatestRelease(ctx context.Context, owner, repo string) (*domain.ReleaseInfo, error) {
	release, resp, err := g.restClient.Repositories.GetLatestRelease(ctx, owner, repo)
	if err != nil {
		if resp != nil && resp.StatusCode == http.StatusNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch latest release for %s/%s: %w", owner, repo, err)
	}

	info := &domain.ReleaseInfo{
		TagName: release.GetTagName(),
		HTMLURL: release.GetHTMLURL(),
	}
	if info.HTMLURL == "" {
		// The repository page is the documented fallback link target.
		info.HTMLURL = fmt.Sprintf("https://github.com/%s/%s", owner, repo)
	}
	if ts := release.GetPublishedAt(); !ts.IsZero() {
		info.PublishedAt = ts.Format(time.RFC3339)
	}
	return info, nil
}
