package generator

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nitinsinghh27/TDS-PR1/model"
)

type stubProvider struct {
	response string
	err      error
	prompt   string
	system   string
	calls    int
}

func (s *stubProvider) Generate(_ context.Context, system, prompt string) (string, error) {
	s.calls++
	s.system = system
	s.prompt = prompt
	return s.response, s.err
}

func request() *model.DeploymentRequest {
	return &model.DeploymentRequest{
		Task:   "clock-app",
		Round:  1,
		Brief:  "Create a digital clock",
		Checks: []string{"Clock displays current time"},
	}
}

func TestGenerateWithProvider(t *testing.T) {
	provider := &stubProvider{
		response: "```html\n<!DOCTYPE html><html><body>clock</body></html>\n```\n```markdown\n# Clock\n```",
	}
	g := New(provider, time.Second)

	artifact, warnings := g.Generate(context.Background(), request(), "")

	require.NotNil(t, artifact)
	assert.Empty(t, warnings)
	assert.Equal(t, "<!DOCTYPE html><html><body>clock</body></html>", artifact.Markup)
	assert.Equal(t, "# Clock", artifact.Readme)
	assert.Contains(t, artifact.License, "MIT License")
	assert.Contains(t, provider.prompt, "Create a digital clock")
	assert.Contains(t, provider.prompt, "Clock displays current time")
}

func TestGenerateFallsBackOnProviderError(t *testing.T) {
	provider := &stubProvider{err: errors.New("rate limited")}
	g := New(provider, time.Second)

	artifact, _ := g.Generate(context.Background(), request(), "")

	require.NotNil(t, artifact)
	assert.Equal(t, 1, provider.calls, "a failed attempt must not be retried")
	assert.NotEmpty(t, artifact.Markup)
	assert.NotEmpty(t, artifact.Readme)
	assert.NotEmpty(t, artifact.License)
	assert.Contains(t, artifact.Markup, "<!DOCTYPE html>")
	assert.Contains(t, artifact.Markup, "Create a digital clock")
}

func TestGenerateWithoutProviderUsesTemplate(t *testing.T) {
	g := New(nil, time.Second)

	artifact, _ := g.Generate(context.Background(), request(), "")

	require.NotNil(t, artifact)
	assert.Contains(t, artifact.Markup, "<!DOCTYPE html>")
	assert.Contains(t, artifact.Readme, "Create a digital clock")
}

func TestGenerateUnparseableResponseBecomesMarkup(t *testing.T) {
	provider := &stubProvider{response: "<main>some fragment without a doctype</main>"}
	g := New(provider, time.Second)

	artifact, _ := g.Generate(context.Background(), request(), "")

	require.NotNil(t, artifact)
	assert.Equal(t, "<main>some fragment without a doctype</main>", artifact.Markup)
	// README synthesized from the brief
	assert.Contains(t, artifact.Readme, "Create a digital clock")
}

func TestGenerateDropsInvalidAttachments(t *testing.T) {
	provider := &stubProvider{
		response: "```html\n<!DOCTYPE html><html></html>\n```",
	}
	g := New(provider, time.Second)

	req := request()
	req.Attachments = []model.Attachment{
		{Name: "good.txt", URL: dataURI("text/plain", "hello")},
		{Name: "bad.bin", URL: "data:application/octet-stream;base64,@@@"},
	}

	artifact, warnings := g.Generate(context.Background(), req, "")

	require.NotNil(t, artifact)
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "bad.bin")
	assert.Contains(t, provider.prompt, "good.txt")
	assert.NotContains(t, provider.prompt, "bad.bin")
}

func TestGenerateRoundTwoIncludesPriorMarkup(t *testing.T) {
	provider := &stubProvider{
		response: "```html\n<!DOCTYPE html><html>v2</html>\n```",
	}
	g := New(provider, time.Second)

	prior := "<!DOCTYPE html><html>v1</html>"
	req := request()
	req.Round = 2

	_, _ = g.Generate(context.Background(), req, prior)

	assert.Contains(t, provider.prompt, prior)
	assert.True(t, strings.Contains(provider.prompt, "Revise the existing"),
		"round-2 prompt must ask for a revision, not regeneration")
}
