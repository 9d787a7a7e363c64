package aws

import (
	"errors"
	"fmt"
	"strings"

	"github.com/aws/smithy-go"
)

// NotFoundError reports that no instance carries the requested Name tag.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no instance found with Name tag %q", e.Name)
}

// AmbiguousError reports that more than one instance carries the requested
// Name tag and the caller did not opt into acting on all of them.
type AmbiguousError struct {
	Name string
	IDs  []string
}

func (e *AmbiguousError) Error() string {
	return fmt.Sprintf("multiple instances found with Name tag %q (%s); rerun with --all to act on every match",
		e.Name, strings.Join(e.IDs, ", "))
}

// FileError reports that a local file could not be read before upload.
type FileError struct {
	Path string
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("cannot read file %s: %v", e.Path, e.Err)
}

func (e *FileError) Unwrap() error {
	return e.Err
}

// credential-related API error codes returned by AWS services
var credentialErrorCodes = map[string]bool{
	"AuthFailure":                 true,
	"ExpiredToken":                true,
	"InvalidClientTokenId":        true,
	"MissingAuthenticationToken":  true,
	"SignatureDoesNotMatch":       true,
	"UnrecognizedClientException": true,
}

// IsCredentialsError reports whether err stems from missing or invalid AWS
// credentials, either an auth-classified API error or a failure in the
// SDK's credential resolution chain.
func IsCredentialsError(err error) bool {
	if err == nil {
		return false
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) && credentialErrorCodes[apiErr.ErrorCode()] {
		return true
	}

	return strings.Contains(strings.ToLower(err.Error()), "credential")
}
