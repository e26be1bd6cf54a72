package notifier

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	deployerrors "github.com/nitinsinghh27/TDS-PR1/errors"
	"github.com/nitinsinghh27/TDS-PR1/model"
	"github.com/nitinsinghh27/TDS-PR1/retry"
)

func fastNotifier() *Notifier {
	return &Notifier{
		client: &http.Client{},
		policy: retry.Policy{
			MaxAttempts: 5,
			BaseDelay:   time.Millisecond,
			Multiplier:  2,
			MaxDelay:    4 * time.Millisecond,
		},
		timeout: time.Second,
	}
}

func outcome() *model.DeploymentOutcome {
	return &model.DeploymentOutcome{
		Email:     "student@example.com",
		Task:      "clock-app",
		Round:     1,
		Nonce:     "ab12",
		Status:    model.StatusSuccess,
		RepoURL:   "https://github.com/octo/clock-app",
		CommitSHA: "deadbeef",
		PagesURL:  "https://octo.github.io/clock-app/",
	}
}

func TestNotifyRetriesServerErrorsThenSucceeds(t *testing.T) {
	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls <= 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		var got model.DeploymentOutcome
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		assert.Equal(t, "clock-app", got.Task)
		assert.Equal(t, "ab12", got.Nonce)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	err := fastNotifier().Notify(context.Background(), srv.URL, outcome())
	require.NoError(t, err)
	assert.Equal(t, 4, calls, "three 503s then one delivery, no further attempts")
}

func TestNotifyDoesNotRetryClientErrors(t *testing.T) {
	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	err := fastNotifier().Notify(context.Background(), srv.URL, outcome())
	assert.ErrorIs(t, err, deployerrors.ErrNotificationDelivery)
	assert.Equal(t, 1, calls, "a 404 is permanent, no retries")
}

func TestNotifyExhaustsRetries(t *testing.T) {
	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	err := fastNotifier().Notify(context.Background(), srv.URL, outcome())
	assert.ErrorIs(t, err, deployerrors.ErrNotificationDelivery)
	assert.Equal(t, 5, calls)
}

func TestNotifyNetworkErrorIsRetried(t *testing.T) {
	// a closed server refuses connections
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	n := fastNotifier()
	n.policy.MaxAttempts = 2
	err := n.Notify(context.Background(), url, outcome())
	assert.ErrorIs(t, err, deployerrors.ErrNotificationDelivery)
}

func TestNotifySendsFailureOutcomes(t *testing.T) {
	var got model.DeploymentOutcome
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	failed := outcome()
	failed.Status = model.StatusFailure
	failed.Error = "publish: repository not found"

	require.NoError(t, fastNotifier().Notify(context.Background(), srv.URL, failed))
	assert.Equal(t, model.StatusFailure, got.Status)
	assert.Equal(t, "publish: repository not found", got.Error)
}
