package constants

const (
	// Version is the application version reported by `deploy version` and `deploy --version`
	Version = "0.1"
	// SecretEnvVar is the name of the environment variable that holds the shared request secret
	SecretEnvVar = "DEPLOY_SECRET"
	// TokenEnvVar is the name of the environment variable that holds the github personal access token
	TokenEnvVar = "GITHUB_TOKEN"
	// OwnerEnvVar is the name of the environment variable that holds the github account owning published repos
	OwnerEnvVar = "GITHUB_OWNER"
	// APIURLEnvVar is the name of the environment variable that overrides the github API URL
	APIURLEnvVar = "GITHUB_API_URL"
	// GeneratorURLEnvVar is the name of the environment variable that holds the chat-completions endpoint
	GeneratorURLEnvVar = "GENERATOR_URL"
	// GeneratorKeyEnvVar is the name of the environment variable that holds the generation provider API key
	GeneratorKeyEnvVar = "GENERATOR_API_KEY"
	// GeneratorModelEnvVar is the name of the environment variable that selects the generation model
	GeneratorModelEnvVar = "GENERATOR_MODEL"
	// PortEnvVar is the name of the environment variable that sets the HTTP listen port
	PortEnvVar = "PORT"
)

const (
	// DefaultPort is the HTTP listen port used when PORT is not set
	DefaultPort = 8080
	// DefaultBranch is the branch published repositories are served from
	DefaultBranch = "main"
	// DefaultAPIURL is the public github API root
	DefaultAPIURL = "https://api.github.com/"
	// DefaultGeneratorModel is the model requested from the generation provider
	DefaultGeneratorModel = "anthropic/claude-3.5-sonnet"
	// MaxDescriptionLength is the number of runes of the brief kept in a repository description
	MaxDescriptionLength = 100
	// MaxRepoNameLength is the github limit on repository name length
	MaxRepoNameLength = 100
)
