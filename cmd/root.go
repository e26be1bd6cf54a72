package cmd

import (
	"fmt"
	"os"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/nitinsinghh27/TDS-PR1/constants"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "deploy",
	Short: "Generate and publish static web applications on request",
	Long: `
	Deploy accepts build-and-deploy requests over HTTP, generates a static
	web application for each brief, publishes it as a public GitHub repository
	with Pages enabled, and notifies the requested evaluation endpoint.
	`,
	Version: constants.Version,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.deploy.yaml)")
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := homedir.Dir()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		viper.AddConfigPath(home)
		viper.SetConfigName(".deploy")
	}

	viper.AutomaticEnv()
	viper.BindEnv(constants.SecretEnvVar)
	viper.BindEnv(constants.TokenEnvVar)
	viper.BindEnv(constants.OwnerEnvVar)
	viper.BindEnv(constants.APIURLEnvVar)
	viper.BindEnv(constants.GeneratorURLEnvVar)
	viper.BindEnv(constants.GeneratorKeyEnvVar)
	viper.BindEnv(constants.GeneratorModelEnvVar)
	viper.BindEnv(constants.PortEnvVar)

	if err := viper.ReadInConfig(); err == nil {
		fmt.Println("Using config file:", viper.ConfigFileUsed())
	}
}
