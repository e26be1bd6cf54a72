// Package generator turns an application brief into publishable artifacts,
// using one configured generative text provider with a deterministic template
// fallback so the pipeline never blocks on provider availability.
package generator

import (
	"context"
	"fmt"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/nitinsinghh27/TDS-PR1/model"
)

// Generator is the code generation adapter
type Generator struct {
	// provider is nil when no backend is configured
	provider TextGenerator
	timeout  time.Duration
}

// New creates a Generator. Pass a nil provider to always use the template.
func New(provider TextGenerator, timeout time.Duration) *Generator {
	return &Generator{provider: provider, timeout: timeout}
}

// Generate produces the artifact for req. It never fails: provider errors,
// missing configuration and unparseable responses all resolve to the
// template. Returned warnings describe dropped attachments.
func (g *Generator) Generate(ctx context.Context, req *model.DeploymentRequest, priorMarkup string) (*model.GeneratedArtifact, []string) {
	var warnings []string
	var attachments []*decodedAttachment
	for _, att := range req.Attachments {
		decoded, err := decodeAttachment(att)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("attachment %q dropped: %v", att.Name, err))
			continue
		}
		attachments = append(attachments, decoded)
	}

	artifact := g.fromProvider(ctx, req, attachments, priorMarkup)
	if artifact == nil {
		markup, readme := templateArtifact(req.Brief, req.Checks)
		artifact = &model.GeneratedArtifact{Markup: markup, Readme: readme}
	}
	if artifact.Readme == "" {
		// provider gave markup only; synthesize a minimal description
		artifact.Readme = templateReadme(req.Brief, req.Checks)
	}
	artifact.License = mitLicense(currentYear())
	return artifact, warnings
}

// fromProvider makes a single attempt against the configured provider. Any
// failure returns nil; generation failures are not transient-retryable here
// since cost and latency dominate.
func (g *Generator) fromProvider(ctx context.Context, req *model.DeploymentRequest, attachments []*decodedAttachment, priorMarkup string) *model.GeneratedArtifact {
	if g.provider == nil {
		log.WithField("task", req.Task).Info("no generation provider configured, using template")
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	prompt := buildPrompt(req.Brief, req.Checks, attachments, priorMarkup)
	text, err := g.provider.Generate(ctx, systemPrompt, prompt)
	if err != nil {
		log.WithError(err).WithField("task", req.Task).Warn("generation provider failed, falling back to template")
		return nil
	}

	markup, readme := parseResponse(text)
	if markup == "" {
		// no recognizable document; treat the whole response as markup
		markup = strings.TrimSpace(text)
	}
	if markup == "" {
		return nil
	}
	return &model.GeneratedArtifact{Markup: markup, Readme: readme}
}
