// Package usecase contains the business logic of the page generator.
package usecase

import (
	"context"
	"log"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/mad4j/rustedbytes-pages/internal/domain"
	"github.com/mad4j/rustedbytes-pages/internal/gateway"
)

// enrichWorkers bounds the number of repositories enriched at once.
const enrichWorkers = 4

// Builder is the use case that assembles the project list: it lists the
// repositories, enriches each one with release and crates.io data, and
// returns the result sorted by name.
type Builder struct {
	github gateway.Fetcher
	crates gateway.RegistryLookup
	logger *log.Logger
}

// NewBuilder creates a new Builder instance.
func NewBuilder(github gateway.Fetcher, crates gateway.RegistryLookup, logger *log.Logger) *Builder {
	return &Builder{
		github: github,
		crates: crates,
		logger: logger,
	}
}

// Build runs the pipeline. A listing failure aborts the run; a failed
// release or crate lookup only leaves that field absent for the affected
// repository. Enrichment runs a few repositories at a time and the final
// sort restores a deterministic order.
func (b *Builder) Build(ctx context.Context, user, prefix string) ([]*domain.Project, error) {
	b.logger.Println("Usecase: Listing repositories...")
	repos, err := b.github.ListRepositories(ctx, user, prefix)
	if err != nil {
		return nil, err
	}

	projects := make([]*domain.Project, len(repos))

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(enrichWorkers)
	for i, repo := range repos {
		i, repo := i, repo
		eg.Go(func() error {
			b.logger.Printf("Processing %s...", repo.Name)
			p := &domain.Project{Repository: repo}

			release, err := b.github.LatestRelease(egCtx, user, repo.Name)
			if err != nil {
				b.logger.Printf("Error fetching release for %s: %v", repo.Name, err)
			} else {
				p.Release = release
			}

			crate, err := b.crates.CrateInfo(egCtx, repo.Name)
			if err != nil {
				b.logger.Printf("Error fetching crate info for %s: %v", repo.Name, err)
			} else {
				p.Crate = crate
			}

			projects[i] = p
			return nil
		})
	}
	// Enrichment goroutines never return an error; per-item failures are
	// logged above and leave the field absent.
	_ = eg.Wait()

	sort.Slice(projects, func(i, j int) bool {
		return projects[i].Name < projects[j].Name
	})

	b.logger.Printf("Usecase: Assembled %d projects.", len(projects))
	return projects, nil
}
