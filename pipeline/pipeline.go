// Package pipeline sequences one deployment request from intake to callback
// notification: generate, publish (create on round 1, revise on round 2),
// then notify the evaluation endpoint. A failure at any stage short-circuits
// the remaining stages except notification, which always runs so the
// evaluating party learns about failures too.
package pipeline

import (
	"context"

	log "github.com/sirupsen/logrus"

	deployerrors "github.com/nitinsinghh27/TDS-PR1/errors"
	"github.com/nitinsinghh27/TDS-PR1/model"
	"github.com/nitinsinghh27/TDS-PR1/sanitize"
	"github.com/nitinsinghh27/TDS-PR1/tasklock"
)

// Stage names recorded on failure outcomes
const (
	StageGenerate = "generate"
	StagePublish  = "publish"
	StageNotify   = "notify"
)

// Generator produces the artifact for a request. Never fails; the template
// fallback guarantees an artifact.
type Generator interface {
	Generate(ctx context.Context, req *model.DeploymentRequest, priorMarkup string) (*model.GeneratedArtifact, []string)
}

// Publisher is the repository provider boundary
type Publisher interface {
	CreateAndPublish(ctx context.Context, task string, artifact *model.GeneratedArtifact, description string) (*model.RepositoryRecord, error)
	Update(ctx context.Context, task string, artifact *model.GeneratedArtifact, description string) (*model.RepositoryRecord, error)
	Resolve(ctx context.Context, task string) (*model.RepositoryRecord, string, error)
}

// Notifier delivers outcomes to evaluation URLs
type Notifier interface {
	Notify(ctx context.Context, evaluationURL string, outcome *model.DeploymentOutcome) error
}

// Pipeline owns the per-request state machine
type Pipeline struct {
	generator Generator
	publisher Publisher
	notifier  Notifier
	locks     *tasklock.Registry
}

// New wires the pipeline from its collaborators
func New(g Generator, p Publisher, n Notifier) *Pipeline {
	return &Pipeline{
		generator: g,
		publisher: p,
		notifier:  n,
		locks:     tasklock.New(),
	}
}

// Run processes one validated request to completion. Exactly one outcome is
// produced; it is delivered to the request's evaluation URL and returned for
// the synchronous response. The returned error reports notification delivery
// only and never changes the outcome itself.
func (pl *Pipeline) Run(ctx context.Context, req *model.DeploymentRequest) (*model.DeploymentOutcome, error) {
	outcome := &model.DeploymentOutcome{
		Email:  req.Email,
		Task:   req.Task,
		Round:  req.Round,
		Nonce:  req.Nonce,
		Status: model.StatusSuccess,
	}

	record, err := pl.deploy(ctx, req)
	if record != nil {
		outcome.RepoURL = record.RepoURL
		outcome.CommitSHA = record.CommitSHA
		outcome.PagesURL = record.PagesURL
	}
	if err != nil {
		outcome.Status = model.StatusFailure
		outcome.Error = err.Error()
		log.WithError(err).WithFields(log.Fields{
			"task":  req.Task,
			"round": req.Round,
			"stage": deployerrors.StageOf(err),
		}).Error("deployment failed")
	}

	if nerr := pl.notifier.Notify(ctx, req.EvaluationURL, outcome); nerr != nil {
		// the repository state stands either way; delivery failure is reported
		// to the synchronous caller only
		log.WithError(deployerrors.Stage(StageNotify, nerr)).WithField("task", req.Task).
			Warn("evaluation endpoint not notified")
		return outcome, nerr
	}
	return outcome, nil
}

func (pl *Pipeline) deploy(ctx context.Context, req *model.DeploymentRequest) (*model.RepositoryRecord, error) {
	// one publish at a time per task; concurrent rounds for the same task
	// would otherwise race on the branch head
	unlock := pl.locks.Acquire(req.Task)
	defer unlock()

	var priorMarkup string
	if req.Round == 2 {
		// resolving first surfaces a missing round-1 repository before any
		// generation cost is incurred
		_, markup, err := pl.publisher.Resolve(ctx, req.Task)
		if err != nil {
			return nil, deployerrors.Stage(StagePublish, err)
		}
		priorMarkup = markup
	}

	artifact, warnings := pl.generator.Generate(ctx, req, priorMarkup)
	for _, warning := range warnings {
		log.WithFields(log.Fields{"task": req.Task, "stage": StageGenerate}).Warn(warning)
	}

	description := sanitize.Description(req.Brief)

	var record *model.RepositoryRecord
	var err error
	if req.Round == 1 {
		record, err = pl.publisher.CreateAndPublish(ctx, req.Task, artifact, description)
	} else {
		record, err = pl.publisher.Update(ctx, req.Task, artifact, description)
	}
	if err != nil {
		return record, deployerrors.Stage(StagePublish, err)
	}
	return record, nil
}
