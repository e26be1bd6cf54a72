package model

// Outcome status values reported to the caller and the evaluation callback.
const (
	StatusSuccess = "success"
	StatusFailure = "failure"
)

// Attachment is one named file supplied with a request, encoded as a
// base64 data URI
type Attachment struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// The DeploymentRequest type carries all the information needed to build and
// publish one application
type DeploymentRequest struct {
	// Email identifies the caller
	Email string `json:"email"`
	// Secret is the shared secret checked against the configured one
	Secret string `json:"secret"`
	// Task is the stable identifier shared by round 1 and round 2 of one job
	Task string `json:"task"`
	// Round is 1 (create) or 2 (revise)
	Round int `json:"round"`
	// Nonce is echoed back to the evaluation callback, never interpreted here
	Nonce string `json:"nonce"`
	// Brief is the free-text description of the desired application
	Brief string `json:"brief"`
	// Checks are acceptance criteria passed through to generation
	Checks []string `json:"checks"`
	// EvaluationURL receives the outcome callback
	EvaluationURL string `json:"evaluation_url"`
	// Attachments are optional supporting files
	Attachments []Attachment `json:"attachments"`
}

// GeneratedArtifact is the output of code generation. The template fallback
// guarantees every field is non-empty even when the provider fails.
type GeneratedArtifact struct {
	// Markup is the application document published as index.html
	Markup string
	// Readme is the human-readable description published as README.md
	Readme string
	// License is the license document published as LICENSE
	License string
}

// RepositoryRecord describes one published repository
type RepositoryRecord struct {
	// Name is derived deterministically from the task identifier
	Name string
	// Owner is the github account the repository lives under
	Owner string
	// RepoURL is the repository's html URL
	RepoURL string
	// PagesURL is the static hosting endpoint
	PagesURL string
	// Branch is the default branch the site is served from
	Branch string
	// CommitSHA identifies the commit produced by this round
	CommitSHA string
}

// DeploymentOutcome is the terminal record of one request. It is returned
// synchronously to the caller and POSTed to the evaluation URL.
type DeploymentOutcome struct {
	Email     string `json:"email"`
	Task      string `json:"task"`
	Round     int    `json:"round"`
	Nonce     string `json:"nonce"`
	Status    string `json:"status"`
	RepoURL   string `json:"repo_url"`
	CommitSHA string `json:"commit_sha"`
	PagesURL  string `json:"pages_url"`
	Error     string `json:"error,omitempty"`
}
