package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// createPolicyCmd represents the create-policy command
var createPolicyCmd = &cobra.Command{
	Use:   "create-policy <policy_name> <policy_document_json>",
	Short: "Create an IAM policy from a JSON document",
	Long: `Create an IAM policy with the given name and JSON policy document.
The document is submitted as-is; IAM validates the policy grammar
server-side and rejects malformed documents.`,
	Example: `  awsctl create-policy MyPolicy '{"Version":"2012-10-17","Statement":[{"Effect":"Allow","Action":"s3:*","Resource":"*"}]}'`,
	Args:    cobra.ExactArgs(2),
	RunE:    runCreatePolicy,
}

func init() {
	rootCmd.AddCommand(createPolicyCmd)
}

func runCreatePolicy(cmd *cobra.Command, args []string) error {
	name, document := args[0], args[1]

	client, err := newClient(cmd.Context())
	if err != nil {
		return err
	}

	arn, err := client.CreatePolicy(cmd.Context(), name, document)
	if err != nil {
		return err
	}

	fmt.Printf("Created policy %s (%s)\n", name, arn)
	return nil
}
