package cmd

import (
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/nitinsinghh27/TDS-PR1/config"
	"github.com/nitinsinghh27/TDS-PR1/constants"
	"github.com/nitinsinghh27/TDS-PR1/generator"
	"github.com/nitinsinghh27/TDS-PR1/notifier"
	"github.com/nitinsinghh27/TDS-PR1/pipeline"
	"github.com/nitinsinghh27/TDS-PR1/publisher"
	"github.com/nitinsinghh27/TDS-PR1/server"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the deployment service",
	Long: `
	1.  listens for deployment requests on POST /api/deploy
	2.  generates a static web application for the brief (LLM provider,
	    falling back to a built-in template)
	3.  publishes it as a public GitHub repository with Pages enabled
	4.  notifies the evaluation endpoint with the outcome
`,
	PreRun: func(cmd *cobra.Command, args []string) {
		if !viper.IsSet(constants.SecretEnvVar) {
			log.Fatalf("environment variable %s is not exported.\n", constants.SecretEnvVar)
		}
		if !viper.IsSet(constants.TokenEnvVar) {
			log.Fatalf("environment variable %s is not exported.\n", constants.TokenEnvVar)
		}
	},
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.Load()
		if err != nil {
			log.WithError(err).Fatal("configuration invalid")
		}

		client, err := publisher.NewClient(cfg.GitHubAPIURL, cfg.GitHubToken)
		if err != nil {
			log.WithError(err).Fatal("unable to build repository client")
		}

		var provider generator.TextGenerator
		if cfg.GeneratorURL != "" && cfg.GeneratorKey != "" {
			provider = &generator.OpenAIChat{
				URL:    cfg.GeneratorURL,
				APIKey: cfg.GeneratorKey,
				Model:  cfg.GeneratorModel,
			}
			log.WithField("model", cfg.GeneratorModel).Info("generation provider configured")
		} else {
			log.Info("no generation provider configured, using the built-in template")
		}

		pipe := pipeline.New(
			generator.New(provider, cfg.GenerateTimeout),
			publisher.New(client, cfg),
			notifier.New(cfg.NotifyTimeout),
		)

		if err := server.New(cfg, pipe).ListenAndServe(); err != nil {
			log.WithError(err).Fatal("server stopped")
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
