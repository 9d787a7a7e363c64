package main

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/VanHelwig/aws-custom-cli/config"
	"github.com/VanHelwig/aws-custom-cli/internal/aws"
)

var (
	version = "0.1.0"

	cfgFile string
	region  string
	profile string
	debug   bool

	rootCmd = &cobra.Command{
		Use:   "awsctl",
		Short: "Single-shot AWS operations from the command line",
		Long: `awsctl issues discrete AWS API calls: start or stop EC2 instances
by Name tag, upload files to S3, and create IAM policies.

Each invocation performs one operation and exits. Credentials come from
the AWS SDK's default chain (environment, shared config, instance role).`,
		Version:           version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: setup,
	}
)

// Execute runs the root command
func Execute(ctx context.Context) {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		if aws.IsCredentialsError(err) {
			fmt.Fprintf(os.Stderr, "Error: AWS credentials missing or invalid: %v\n", err)
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

// init sets up the root command
func init() {
	rootCmd.SetVersionTemplate(`awsctl {{.Version}}
`)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (default $HOME/.awsctl.yaml)")
	rootCmd.PersistentFlags().StringVarP(&region, "region", "r", "", "AWS region (default from config file, then "+config.DefaultRegion+")")
	rootCmd.PersistentFlags().StringVarP(&profile, "profile", "p", "", "AWS shared config profile")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")
}

// setup merges config file values into unset flags and applies log level.
func setup(cmd *cobra.Command, args []string) error {
	path := cfgFile
	if path == "" {
		path = config.DefaultPath()
	}

	cfg := &config.Config{}
	if path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	if region == "" {
		region = cfg.Region
	}
	if region == "" {
		region = config.DefaultRegion
	}
	if profile == "" {
		profile = cfg.Profile
	}

	level := cfg.LogLevel
	if debug {
		level = "debug"
	}
	if level != "" {
		parsed, err := zerolog.ParseLevel(level)
		if err != nil {
			return fmt.Errorf("invalid log level %q: %w", level, err)
		}
		zerolog.SetGlobalLevel(parsed)
	}

	return nil
}

// newClient builds the AWS client used by every subcommand.
func newClient(ctx context.Context) (*aws.Client, error) {
	return aws.New(ctx, aws.Config{Region: region, Profile: profile})
}
