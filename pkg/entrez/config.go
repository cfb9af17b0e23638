package entrez

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

const (
	// EnvEmail and EnvAPIKey name the environment values read by
	// ConfigFromEnv.
	EnvEmail  = "NCBI_EMAIL"
	EnvAPIKey = "NCBI_API_KEY"

	// DefaultTool identifies this package to the upstream service.
	DefaultTool = "seqsift"
)

// ErrInvalidEmail is returned when the contact identity fails validation.
var ErrInvalidEmail = errors.New("entrez: email must contain '@'")

// Config carries the contact identity and optional API key that the
// upstream service expects on every request. Construct it through
// NewConfig or ConfigFromEnv; it is immutable by convention afterwards.
type Config struct {
	// Email is the contact identity sent with every request.
	Email string

	// APIKey is the optional NCBI API key; a keyed request is granted a
	// higher rate allowance by the service.
	APIKey string

	// Tool is the client attribution label. Defaults to DefaultTool.
	Tool string
}

// NewConfig validates the identity and returns a Config. Any identity
// lacking an "@" is rejected with ErrInvalidEmail.
func NewConfig(email, apiKey string) (Config, error) {
	if !strings.Contains(email, "@") {
		return Config{}, fmt.Errorf("%w: %q", ErrInvalidEmail, email)
	}
	return Config{Email: email, APIKey: apiKey, Tool: DefaultTool}, nil
}

// ConfigFromEnv builds a Config from the NCBI_EMAIL and NCBI_API_KEY
// environment values, applying the same validation as NewConfig.
func ConfigFromEnv() (Config, error) {
	return NewConfig(os.Getenv(EnvEmail), os.Getenv(EnvAPIKey))
}
