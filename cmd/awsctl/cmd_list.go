package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/VanHelwig/aws-custom-cli/internal/aws"
)

var listState string

// listEC2Cmd represents the list-ec2 command
var listEC2Cmd = &cobra.Command{
	Use:   "list-ec2",
	Short: "List EC2 instances in the region",
	Example: `  awsctl list-ec2
  awsctl list-ec2 --state running
  awsctl list-ec2 --region us-west-2`,
	RunE: runListEC2,
}

func init() {
	rootCmd.AddCommand(listEC2Cmd)

	listEC2Cmd.Flags().StringVarP(&listState, "state", "s", "", "Filter by instance state (pending, running, stopping, stopped)")
}

func runListEC2(cmd *cobra.Command, args []string) error {
	client, err := newClient(cmd.Context())
	if err != nil {
		return err
	}

	instances, err := client.ListInstances(cmd.Context())
	if err != nil {
		return err
	}

	instances = filterByState(instances, listState)
	if len(instances) == 0 {
		fmt.Printf("No instances found in %s\n", client.Region())
		return nil
	}

	fmt.Print(formatInstanceTable(instances))
	return nil
}

func filterByState(instances []aws.Instance, state string) []aws.Instance {
	if state == "" {
		return instances
	}
	var filtered []aws.Instance
	for _, instance := range instances {
		if instance.State == state {
			filtered = append(filtered, instance)
		}
	}
	return filtered
}

func formatInstanceTable(instances []aws.Instance) string {
	var b strings.Builder
	w := tabwriter.NewWriter(&b, 0, 4, 2, ' ', 0)

	fmt.Fprintln(w, "INSTANCE ID\tNAME\tSTATE\tTYPE\tAZ")
	for _, instance := range instances {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			instance.ID, instance.Name, instance.State, instance.Type, instance.AZ)
	}

	_ = w.Flush()
	return b.String()
}
