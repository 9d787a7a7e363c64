package aws

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog/log"
)

// UploadFile uploads the local file at path to bucket, keyed by the file's
// base name. The file is opened before any network call so a missing or
// unreadable file never reaches S3. Returns the uploaded object's location.
func (c *Client) UploadFile(ctx context.Context, bucket, path string) (string, error) {
	f, err := os.Open(path) // #nosec G304 -- path is intentional user input
	if err != nil {
		return "", &FileError{Path: path, Err: err}
	}
	defer func() { _ = f.Close() }()

	key := filepath.Base(path)
	log.Debug().Str("bucket", bucket).Str("key", key).Msg("uploading file")

	uploader := manager.NewUploader(c.s3Client)
	result, err := uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
		Body:   f,
	})
	if err != nil {
		return "", fmt.Errorf("upload %s to bucket %s: %w", key, bucket, err)
	}

	return result.Location, nil
}
