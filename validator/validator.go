// Package validator checks inbound deployment requests before any
// cost-incurring external call is made.
package validator

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	deployerrors "github.com/nitinsinghh27/TDS-PR1/errors"
	"github.com/nitinsinghh27/TDS-PR1/model"
)

// Validate parses the raw JSON payload, checks its shape and authenticates
// the shared secret. It has no side effects; on success the parsed, typed
// request is returned.
func Validate(payload []byte, secret string) (*model.DeploymentRequest, error) {
	var req model.DeploymentRequest
	if err := json.Unmarshal(payload, &req); err != nil {
		return nil, fmt.Errorf("%w: %v", deployerrors.ErrMalformedRequest, err)
	}
	if err := checkShape(&req); err != nil {
		return nil, err
	}
	// byte-equal comparison; an unconfigured secret rejects everything
	if secret == "" || req.Secret != secret {
		return nil, deployerrors.ErrAuthenticationFailed
	}
	return &req, nil
}

func checkShape(req *model.DeploymentRequest) error {
	var missing []string
	if req.Email == "" {
		missing = append(missing, "email")
	}
	if req.Secret == "" {
		missing = append(missing, "secret")
	}
	if req.Task == "" {
		missing = append(missing, "task")
	}
	if req.Round == 0 {
		missing = append(missing, "round")
	}
	if req.Brief == "" {
		missing = append(missing, "brief")
	}
	if req.EvaluationURL == "" {
		missing = append(missing, "evaluation_url")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: missing required fields: %s",
			deployerrors.ErrMalformedRequest, strings.Join(missing, ", "))
	}
	if !validEmail(req.Email) {
		return fmt.Errorf("%w: invalid email format", deployerrors.ErrMalformedRequest)
	}
	if req.Round != 1 && req.Round != 2 {
		return fmt.Errorf("%w: round must be 1 or 2", deployerrors.ErrMalformedRequest)
	}
	if !validHTTPURL(req.EvaluationURL) {
		return fmt.Errorf("%w: evaluation_url must be an http(s) URL", deployerrors.ErrMalformedRequest)
	}
	for i, att := range req.Attachments {
		if att.Name == "" || att.URL == "" {
			return fmt.Errorf("%w: attachment %d must have name and url fields",
				deployerrors.ErrMalformedRequest, i)
		}
	}
	return nil
}

func validEmail(email string) bool {
	at := strings.LastIndex(email, "@")
	if at <= 0 || at == len(email)-1 {
		return false
	}
	domain := email[at+1:]
	return strings.Contains(domain, ".") && !strings.ContainsAny(email, " \t\n")
}

func validHTTPURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
