// Package notifier delivers deployment outcomes to the caller's evaluation
// callback with bounded retries. Delivery failure is terminal for the
// notification only, never for the deployment itself.
package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"

	deployerrors "github.com/nitinsinghh27/TDS-PR1/errors"
	"github.com/nitinsinghh27/TDS-PR1/model"
	"github.com/nitinsinghh27/TDS-PR1/retry"
)

// DefaultPolicy retries network errors and server-side failures up to five
// times, doubling the delay from one second.
var DefaultPolicy = retry.Policy{
	MaxAttempts: 5,
	BaseDelay:   time.Second,
	Multiplier:  2,
	MaxDelay:    16 * time.Second,
	Jitter:      0.1,
}

// Notifier posts outcomes to evaluation URLs
type Notifier struct {
	client  *http.Client
	policy  retry.Policy
	timeout time.Duration
}

// New creates a Notifier with the default retry policy. timeout bounds each
// individual delivery attempt.
func New(timeout time.Duration) *Notifier {
	return &Notifier{
		client:  &http.Client{},
		policy:  DefaultPolicy,
		timeout: timeout,
	}
}

// Notify POSTs the outcome JSON to evaluationURL. Network errors and 5xx
// responses are retried with exponential backoff; any 4xx is a permanent
// rejection and is surfaced immediately.
func (n *Notifier) Notify(ctx context.Context, evaluationURL string, outcome *model.DeploymentOutcome) error {
	body, err := json.Marshal(outcome)
	if err != nil {
		return fmt.Errorf("%w: encoding outcome: %v", deployerrors.ErrNotificationDelivery, err)
	}

	entry := log.WithFields(log.Fields{"task": outcome.Task, "url": evaluationURL})
	entry.Info("notifying evaluation endpoint")

	err = n.policy.Do(ctx, func(ctx context.Context) error {
		aerr := n.attempt(ctx, evaluationURL, body)
		if aerr != nil {
			entry.WithError(aerr).Warn("notification attempt failed")
		}
		return aerr
	})
	if err != nil {
		return fmt.Errorf("%w: %v", deployerrors.ErrNotificationDelivery, err)
	}
	entry.Info("evaluation endpoint notified")
	return nil
}

func (n *Notifier) attempt(ctx context.Context, url string, body []byte) error {
	ctx, cancel := context.WithTimeout(ctx, n.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return &retry.Permanent{Err: err}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return nil
	case resp.StatusCode >= 400 && resp.StatusCode < 500:
		return &retry.Permanent{Err: fmt.Errorf("callback rejected with status %d", resp.StatusCode)}
	default:
		return fmt.Errorf("callback returned status %d", resp.StatusCode)
	}
}
