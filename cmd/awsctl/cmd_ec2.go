package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	startAll bool
	stopAll  bool
)

// startEC2Cmd represents the start-ec2 command
var startEC2Cmd = &cobra.Command{
	Use:   "start-ec2 <instance_name>",
	Short: "Start an EC2 instance by Name tag",
	Long: `Start the EC2 instance whose Name tag equals the given name.

When multiple instances share the name, the command refuses to guess
which one you meant; pass --all to start every match.`,
	Example: `  awsctl start-ec2 web-server-1
  awsctl start-ec2 worker --all
  awsctl start-ec2 web-server-1 --region eu-west-1`,
	Args: cobra.ExactArgs(1),
	RunE: runStartEC2,
}

// stopEC2Cmd represents the stop-ec2 command
var stopEC2Cmd = &cobra.Command{
	Use:   "stop-ec2 <instance_name>",
	Short: "Stop an EC2 instance by Name tag",
	Example: `  awsctl stop-ec2 web-server-1
  awsctl stop-ec2 worker --all`,
	Args: cobra.ExactArgs(1),
	RunE: runStopEC2,
}

func init() {
	rootCmd.AddCommand(startEC2Cmd)
	rootCmd.AddCommand(stopEC2Cmd)

	startEC2Cmd.Flags().BoolVar(&startAll, "all", false, "Start every instance matching the name")
	stopEC2Cmd.Flags().BoolVar(&stopAll, "all", false, "Stop every instance matching the name")
}

func runStartEC2(cmd *cobra.Command, args []string) error {
	client, err := newClient(cmd.Context())
	if err != nil {
		return err
	}

	changes, err := client.StartInstancesByName(cmd.Context(), args[0], startAll)
	if err != nil {
		return err
	}

	for _, change := range changes {
		fmt.Printf("Starting %s: %s -> %s\n", change.InstanceID, change.PreviousState, change.CurrentState)
	}
	return nil
}

func runStopEC2(cmd *cobra.Command, args []string) error {
	client, err := newClient(cmd.Context())
	if err != nil {
		return err
	}

	changes, err := client.StopInstancesByName(cmd.Context(), args[0], stopAll)
	if err != nil {
		return err
	}

	for _, change := range changes {
		fmt.Printf("Stopping %s: %s -> %s\n", change.InstanceID, change.PreviousState, change.CurrentState)
	}
	return nil
}
