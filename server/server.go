// Package server exposes the deployment service over HTTP. One POST endpoint
// accepts deployment requests and runs them synchronously to completion; the
// response is not written until the repository is published (or the attempt
// failed) and the evaluation callback was attempted.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/nitinsinghh27/TDS-PR1/config"
	deployerrors "github.com/nitinsinghh27/TDS-PR1/errors"
	"github.com/nitinsinghh27/TDS-PR1/model"
	"github.com/nitinsinghh27/TDS-PR1/validator"
)

// attachments can carry whole data URIs, so the body cap is generous
const maxBodyBytes = 10 << 20

// Runner executes one validated deployment request. The returned error
// reports callback delivery only; the outcome itself records the deployment
// result.
type Runner interface {
	Run(ctx context.Context, req *model.DeploymentRequest) (*model.DeploymentOutcome, error)
}

// Server handles inbound deployment requests
type Server struct {
	secret string
	port   int
	runner Runner
}

// New builds a Server around the given pipeline runner
func New(cfg *config.Config, runner Runner) *Server {
	return &Server{
		secret: cfg.Secret,
		port:   cfg.Port,
		runner: runner,
	}
}

// Router builds the request mux. Exposed separately from ListenAndServe so
// tests can drive it through httptest.
func (s *Server) Router() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/deploy", s.handleDeploy)
	mux.HandleFunc("GET /{$}", s.handleHome)
	return mux
}

// ListenAndServe blocks serving requests until the listener fails. Write
// timeout is long because deployments complete synchronously within the
// request.
func (s *Server) ListenAndServe() error {
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", s.port),
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      15 * time.Minute,
	}
	log.WithField("addr", srv.Addr).Info("listening")
	return srv.ListenAndServe()
}

func (s *Server) handleHome(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "ok",
		"service":   "deploy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

func (s *Server) handleDeploy(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	payload, err := io.ReadAll(r.Body)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, "request body exceeds the size limit")
			return
		}
		writeError(w, http.StatusBadRequest, "request body unreadable")
		return
	}

	req, err := validator.Validate(payload, s.secret)
	if err != nil {
		switch {
		case errors.Is(err, deployerrors.ErrAuthenticationFailed):
			log.WithField("remote", r.RemoteAddr).Warn("request with invalid secret rejected")
			writeError(w, http.StatusForbidden, "invalid secret")
		default:
			writeError(w, http.StatusBadRequest, err.Error())
		}
		return
	}

	log.WithFields(log.Fields{
		"task":  req.Task,
		"round": req.Round,
		"email": req.Email,
	}).Info("deployment accepted")

	// the deployment must run to completion even if the caller disconnects;
	// the evaluation callback is the delivery of record
	outcome, notifyErr := s.runner.Run(context.WithoutCancel(r.Context()), req)

	if outcome.Status != model.StatusSuccess {
		writeError(w, http.StatusInternalServerError, outcome.Error)
		return
	}

	status := "success"
	message := "application deployed successfully"
	if notifyErr != nil {
		status = "partial_success"
		message = "application deployed but evaluation notification failed"
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":     status,
		"message":    message,
		"repo_url":   outcome.RepoURL,
		"pages_url":  outcome.PagesURL,
		"commit_sha": outcome.CommitSHA,
	})
}

func writeError(w http.ResponseWriter, code int, message string) {
	writeJSON(w, code, map[string]interface{}{
		"status":  "error",
		"message": message,
	})
}

func writeJSON(w http.ResponseWriter, code int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.WithError(err).Error("response write failed")
	}
}
