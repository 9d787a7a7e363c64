package aws

import (
	"errors"
	"fmt"
	"testing"

	"github.com/aws/smithy-go"
	"github.com/stretchr/testify/assert"
)

func TestIsCredentialsError_APIErrorCodes(t *testing.T) {
	for _, code := range []string{"AuthFailure", "ExpiredToken", "InvalidClientTokenId", "UnrecognizedClientException"} {
		err := fmt.Errorf("describe instances: %w", &smithy.GenericAPIError{Code: code, Message: "denied"})
		assert.True(t, IsCredentialsError(err), code)
	}
}

func TestIsCredentialsError_CredentialChain(t *testing.T) {
	err := errors.New("failed to retrieve credentials: no EC2 IMDS role found")
	assert.True(t, IsCredentialsError(err))
}

func TestIsCredentialsError_Unrelated(t *testing.T) {
	assert.False(t, IsCredentialsError(nil))
	assert.False(t, IsCredentialsError(errors.New("bucket does not exist")))
	assert.False(t, IsCredentialsError(&smithy.GenericAPIError{Code: "Throttling"}))
}

func TestNotFoundError_Message(t *testing.T) {
	err := &NotFoundError{Name: "web-server"}
	assert.Contains(t, err.Error(), `"web-server"`)
}

func TestAmbiguousError_Message(t *testing.T) {
	err := &AmbiguousError{Name: "worker", IDs: []string{"i-one", "i-two"}}
	assert.Contains(t, err.Error(), "i-one, i-two")
	assert.Contains(t, err.Error(), "--all")
}

func TestFileError_Unwrap(t *testing.T) {
	inner := errors.New("permission denied")
	err := &FileError{Path: "/tmp/x", Err: inner}
	assert.ErrorIs(t, err, inner)
	assert.Contains(t, err.Error(), "/tmp/x")
}
