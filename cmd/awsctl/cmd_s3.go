package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// uploadS3Cmd represents the upload-s3 command
var uploadS3Cmd = &cobra.Command{
	Use:   "upload-s3 <bucket_name> <file_name>",
	Short: "Upload a local file to an S3 bucket",
	Long: `Upload a local file to the named S3 bucket. The object key is the
file's base name. The file must exist and be readable; no network call
is made otherwise.`,
	Example: `  awsctl upload-s3 my-bucket myfile.txt
  awsctl upload-s3 my-bucket /var/log/app/report.csv`,
	Args: cobra.ExactArgs(2),
	RunE: runUploadS3,
}

func init() {
	rootCmd.AddCommand(uploadS3Cmd)
}

func runUploadS3(cmd *cobra.Command, args []string) error {
	bucket, file := args[0], args[1]

	client, err := newClient(cmd.Context())
	if err != nil {
		return err
	}

	location, err := client.UploadFile(cmd.Context(), bucket, file)
	if err != nil {
		return err
	}

	fmt.Printf("Uploaded %s to %s\n", file, location)
	return nil
}
