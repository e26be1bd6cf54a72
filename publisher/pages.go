package publisher

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/google/go-github/v60/github"
	log "github.com/sirupsen/logrus"

	deployerrors "github.com/nitinsinghh27/TDS-PR1/errors"
	"github.com/nitinsinghh27/TDS-PR1/retry"
)

// pagesPoller bounds how long hosting activation is awaited before it is
// treated as a hard failure. Activation is asynchronous on the provider side.
type pagesPoller struct {
	policy retry.Policy
}

func defaultPagesPoller() pagesPoller {
	return pagesPoller{policy: retry.Policy{
		MaxAttempts: 5,
		BaseDelay:   2 * time.Second,
		Multiplier:  2,
		MaxDelay:    15 * time.Second,
	}}
}

// enablePages turns on static hosting for the repository's default branch.
// A 409 means hosting is already enabled, which is fine.
func (p *Publisher) enablePages(ctx context.Context, name string) error {
	_, resp, err := p.client.Repositories.EnablePages(ctx, p.owner, name, &github.Pages{
		Source: &github.PagesSource{
			Branch: github.String(p.branch),
			Path:   github.String("/"),
		},
	})
	if err != nil {
		if resp != nil && resp.StatusCode == http.StatusConflict {
			log.WithField("repo", name).Info("pages already enabled")
		} else {
			return fmt.Errorf("%w: %v", deployerrors.ErrHostingEnable, err)
		}
	}

	err = p.pagesPoll.policy.Do(ctx, func(ctx context.Context) error {
		info, _, err := p.client.Repositories.GetPagesInfo(ctx, p.owner, name)
		if err != nil {
			return err
		}
		switch info.GetStatus() {
		case "built", "building":
			return nil
		}
		return fmt.Errorf("pages status %q", info.GetStatus())
	})
	if err != nil {
		return fmt.Errorf("%w: %v", deployerrors.ErrHostingEnable, err)
	}
	return nil
}

func (p *Publisher) pagesURL(name string) string {
	return fmt.Sprintf("https://%s.github.io/%s/", p.owner, name)
}
