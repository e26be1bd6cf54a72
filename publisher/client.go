package publisher

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/go-github/v60/github"
	"golang.org/x/oauth2"
)

// NewClient creates a github client for the apiURL,
// authenticated with the supplied token
func NewClient(apiURL, token string) (client *github.Client, err error) {
	tokenService := oauth2.StaticTokenSource(
		&oauth2.Token{AccessToken: token},
	)
	tokenClient := oauth2.NewClient(context.Background(), tokenService)

	client = github.NewClient(tokenClient)
	if apiURL == "" || strings.HasPrefix(apiURL, "https://api.github.com") {
		return client, nil
	}
	client, err = client.WithEnterpriseURLs(apiURL, apiURL)
	if err != nil {
		return nil, fmt.Errorf("cannot create github client: %v", err)
	}
	return client, nil
}
