// Package publisher creates and updates the public repositories that carry
// generated applications, and exposes them through github Pages. Each round
// stages the full file set in an in-memory filesystem and lands it in one
// commit, so a published branch never holds a partial artifact.
package publisher

import (
	"context"
	"fmt"
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/google/go-github/v60/github"
	log "github.com/sirupsen/logrus"
	billy "gopkg.in/src-d/go-billy.v4"
	"gopkg.in/src-d/go-billy.v4/memfs"
	git "gopkg.in/src-d/go-git.v4"
	gitconfig "gopkg.in/src-d/go-git.v4/config"
	"gopkg.in/src-d/go-git.v4/plumbing"
	"gopkg.in/src-d/go-git.v4/plumbing/object"
	githttp "gopkg.in/src-d/go-git.v4/plumbing/transport/http"
	"gopkg.in/src-d/go-git.v4/storage/memory"

	"github.com/nitinsinghh27/TDS-PR1/config"
	"github.com/nitinsinghh27/TDS-PR1/constants"
	deployerrors "github.com/nitinsinghh27/TDS-PR1/errors"
	"github.com/nitinsinghh27/TDS-PR1/filesystem"
	"github.com/nitinsinghh27/TDS-PR1/model"
)

const (
	markupFile  = "index.html"
	readmeFile  = "README.md"
	licenseFile = "LICENSE"
)

// Publisher owns all repository provider interaction
type Publisher struct {
	client    *github.Client
	owner     string
	token     string
	branch    string
	timeout   time.Duration
	pagesPoll pagesPoller
}

// New creates a Publisher bound to one github account
func New(client *github.Client, cfg *config.Config) *Publisher {
	return &Publisher{
		client:    client,
		owner:     cfg.GitHubOwner,
		token:     cfg.GitHubToken,
		branch:    constants.DefaultBranch,
		timeout:   cfg.PublishTimeout,
		pagesPoll: defaultPagesPoller(),
	}
}

// CreateAndPublish creates a new public repository named from task, publishes
// the artifact as its initial commit and enables Pages hosting on the default
// branch. A repository may be left behind without content if the push fails
// after creation; there is no compensating delete.
func (p *Publisher) CreateAndPublish(ctx context.Context, task string, artifact *model.GeneratedArtifact, description string) (*model.RepositoryRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	name := RepoName(task)
	entry := log.WithFields(log.Fields{"task": task, "repo": name})
	entry.Info("creating repository")

	created, _, err := p.client.Repositories.Create(ctx, "", &github.Repository{
		Name:        github.String(name),
		Description: github.String(description),
		Private:     github.Bool(false),
		HasIssues:   github.Bool(true),
		HasWiki:     github.Bool(false),
		AutoInit:    github.Bool(false),
	})
	if err != nil {
		// 422 covers name collisions and other validation rejections alike;
		// the provider's message says which
		return nil, fmt.Errorf("%w: %v", deployerrors.ErrRepositoryCreate, err)
	}

	sha, err := p.pushInitial(ctx, created.GetCloneURL(), artifact)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", deployerrors.ErrPublish, err)
	}
	entry.WithField("sha", sha).Info("initial commit pushed")

	record := &model.RepositoryRecord{
		Name:      name,
		Owner:     p.owner,
		RepoURL:   created.GetHTMLURL(),
		PagesURL:  p.pagesURL(name),
		Branch:    p.branch,
		CommitSHA: sha,
	}
	if err := p.enablePages(ctx, name); err != nil {
		// the repository and commit exist; hand the record back so the
		// failure outcome still names them
		return record, err
	}
	entry.WithField("pages_url", record.PagesURL).Info("hosting enabled")
	return record, nil
}

// Update replaces the published artifact for task with a new commit on the
// default branch. Hosting was enabled in round 1 and is not touched again.
func (p *Publisher) Update(ctx context.Context, task string, artifact *model.GeneratedArtifact, description string) (*model.RepositoryRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	name := RepoName(task)
	repo, err := p.getRepo(ctx, name)
	if err != nil {
		return nil, err
	}

	if description != "" && repo.GetDescription() != description {
		_, _, err := p.client.Repositories.Edit(ctx, p.owner, name, &github.Repository{
			Description: github.String(description),
		})
		if err != nil {
			// the refreshed description is cosmetic; the revision still lands
			log.WithError(err).WithField("repo", name).Warn("cannot refresh description")
		}
	}

	sha, err := p.pushRevision(ctx, repo.GetCloneURL(), artifact)
	if err != nil {
		if strings.Contains(err.Error(), "non-fast-forward") {
			return nil, fmt.Errorf("%w: %v", deployerrors.ErrConflict, err)
		}
		return nil, fmt.Errorf("%w: %v", deployerrors.ErrPublish, err)
	}
	log.WithFields(log.Fields{"task": task, "repo": name, "sha": sha}).Info("revision pushed")

	return &model.RepositoryRecord{
		Name:      name,
		Owner:     p.owner,
		RepoURL:   repo.GetHTMLURL(),
		PagesURL:  p.pagesURL(name),
		Branch:    p.branch,
		CommitSHA: sha,
	}, nil
}

// Resolve returns the published record for task plus the currently published
// markup, for use as round-2 revision context. A task whose round 1 never
// published resolves to ErrRepositoryNotFound.
func (p *Publisher) Resolve(ctx context.Context, task string) (*model.RepositoryRecord, string, error) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	name := RepoName(task)
	repo, err := p.getRepo(ctx, name)
	if err != nil {
		return nil, "", err
	}

	markup := ""
	content, _, _, err := p.client.Repositories.GetContents(ctx, p.owner, name, markupFile,
		&github.RepositoryContentGetOptions{Ref: p.branch})
	if err == nil && content != nil {
		if s, cerr := content.GetContent(); cerr == nil {
			markup = s
		}
	}
	// a missing markup file is not fatal; the revision proceeds without prior context

	return &model.RepositoryRecord{
		Name:     name,
		Owner:    p.owner,
		RepoURL:  repo.GetHTMLURL(),
		PagesURL: p.pagesURL(name),
		Branch:   p.branch,
	}, markup, nil
}

func (p *Publisher) getRepo(ctx context.Context, name string) (*github.Repository, error) {
	repo, resp, err := p.client.Repositories.Get(ctx, p.owner, name)
	if err != nil {
		if resp != nil && resp.StatusCode == http.StatusNotFound {
			return nil, fmt.Errorf("%w: %s/%s", deployerrors.ErrRepositoryNotFound, p.owner, name)
		}
		return nil, fmt.Errorf("cannot get repository %s: %w", name, err)
	}
	return repo, nil
}

// pushInitial publishes the artifact to a freshly created, empty repository
// as a single commit on the default branch.
func (p *Publisher) pushInitial(ctx context.Context, cloneURL string, artifact *model.GeneratedArtifact) (sha string, err error) {
	fs := memfs.New()
	r, err := git.Init(memory.NewStorage(), fs)
	if err != nil {
		return "", fmt.Errorf("cannot init repository: %v", err)
	}

	// point HEAD at the default branch before the first commit
	branchRef := plumbing.ReferenceName(path.Join("refs", "heads", p.branch))
	err = r.Storer.SetReference(plumbing.NewSymbolicReference(plumbing.HEAD, branchRef))
	if err != nil {
		return "", fmt.Errorf("cannot set HEAD: %v", err)
	}
	_, err = r.CreateRemote(&gitconfig.RemoteConfig{
		Name: git.DefaultRemoteName,
		URLs: []string{cloneURL},
	})
	if err != nil {
		return "", fmt.Errorf("cannot create remote: %v", err)
	}

	sha, err = p.commitArtifact(r, fs, artifact, "Initial commit: deploy generated application")
	if err != nil {
		return "", err
	}

	err = r.PushContext(ctx, &git.PushOptions{
		RemoteName: git.DefaultRemoteName,
		RefSpecs:   []gitconfig.RefSpec{gitconfig.RefSpec(branchRef + ":" + branchRef)},
		Auth:       p.auth(),
	})
	if err != nil {
		return "", fmt.Errorf("error pushing: %v", err)
	}
	return sha, nil
}

// pushRevision clones the existing repository into memory, replaces the
// artifact files and pushes one new commit on the default branch.
func (p *Publisher) pushRevision(ctx context.Context, cloneURL string, artifact *model.GeneratedArtifact) (sha string, err error) {
	fs := memfs.New()
	branchRef := plumbing.ReferenceName(path.Join("refs", "heads", p.branch))
	r, err := git.CloneContext(ctx, memory.NewStorage(), fs, &git.CloneOptions{
		URL:           cloneURL,
		Auth:          p.auth(),
		ReferenceName: branchRef,
		SingleBranch:  true,
	})
	if err != nil {
		return "", fmt.Errorf("error cloning: %v", err)
	}

	sha, err = p.commitArtifact(r, fs, artifact, "Revise generated application")
	if err != nil {
		return "", err
	}

	err = r.PushContext(ctx, &git.PushOptions{
		RemoteName: git.DefaultRemoteName,
		RefSpecs:   []gitconfig.RefSpec{gitconfig.RefSpec(branchRef + ":" + branchRef)},
		Auth:       p.auth(),
	})
	if err != nil {
		return "", fmt.Errorf("error pushing: %v", err)
	}
	return sha, nil
}

// commitArtifact stages every artifact file and commits them all at once
func (p *Publisher) commitArtifact(r *git.Repository, fs billy.Filesystem, artifact *model.GeneratedArtifact, message string) (string, error) {
	files := map[string]string{
		markupFile:  artifact.Markup,
		readmeFile:  artifact.Readme,
		licenseFile: artifact.License,
	}
	for name, content := range files {
		if err := filesystem.WriteFile(fs, name, content); err != nil {
			return "", fmt.Errorf("cannot write %s: %v", name, err)
		}
	}

	w, err := r.Worktree()
	if err != nil {
		return "", fmt.Errorf("cannot create worktree: %v", err)
	}
	if _, err = w.Add("."); err != nil {
		return "", fmt.Errorf("cannot add files: %v", err)
	}
	commit, err := w.Commit(message, &git.CommitOptions{
		Author: &object.Signature{
			Name:  "Deployment Bot",
			Email: "bot@example.com",
			When:  time.Now(),
		},
	})
	if err != nil {
		return "", fmt.Errorf("cannot commit: %v", err)
	}
	return commit.String(), nil
}

func (p *Publisher) auth() *githttp.BasicAuth {
	return &githttp.BasicAuth{Username: "deploy", Password: p.token}
}
