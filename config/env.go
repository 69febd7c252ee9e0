package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variable names. EnvAPIURL is optional and only needed for
// GitHub Enterprise.
const (
	EnvRepo     = "REPO"
	EnvPRNumber = "PR_NUMBER"
	EnvBaseSHA  = "BASE_SHA"
	EnvHeadSHA  = "HEAD_SHA"
	EnvToken    = "GITHUB_TOKEN"
	EnvAPIURL   = "GITHUB_API_URL"
)

// LocalPRNumber stands in for the PR number when building a comment outside CI.
const LocalPRNumber = "LOCAL"

// ErrMissingEnv is wrapped by every MissingEnvError.
var ErrMissingEnv = errors.New("required environment variable not set")

// MissingEnvError reports a required environment variable that is unset.
type MissingEnvError struct {
	Name string
	Hint string
}

// Error implements the error interface.
func (e *MissingEnvError) Error() string {
	if e.Hint != "" {
		return fmt.Sprintf("%s not set (%s)", e.Name, e.Hint)
	}
	return e.Name + " not set"
}

// Unwrap returns ErrMissingEnv.
func (e *MissingEnvError) Unwrap() error {
	return ErrMissingEnv
}

// Env holds the identifiers supplied by the CI environment.
type Env struct {
	Repo     string
	PRNumber string
	BaseSHA  string
	HeadSHA  string
	Token    string
	APIURL   string
}

// LoadEnv reads the environment, first loading a .env file if one exists.
func LoadEnv() Env {
	_ = godotenv.Load()
	return EnvFromLookup(os.LookupEnv)
}

// EnvFromLookup reads the environment through lookup.
func EnvFromLookup(lookup func(string) (string, bool)) Env {
	get := func(name string) string {
		v, _ := lookup(name)
		return strings.TrimSpace(v)
	}
	return Env{
		Repo:     get(EnvRepo),
		PRNumber: get(EnvPRNumber),
		BaseSHA:  get(EnvBaseSHA),
		HeadSHA:  get(EnvHeadSHA),
		Token:    get(EnvToken),
		APIURL:   get(EnvAPIURL),
	}
}

// RequireComment checks the variables needed to build a comment.
// A missing PR number falls back to LocalPRNumber.
func (e Env) RequireComment() (Env, error) {
	if e.Repo == "" {
		return e, &MissingEnvError{Name: EnvRepo, Hint: "expected owner/repo"}
	}
	if e.BaseSHA == "" {
		return e, &MissingEnvError{Name: EnvBaseSHA}
	}
	if e.HeadSHA == "" {
		return e, &MissingEnvError{Name: EnvHeadSHA}
	}
	if e.PRNumber == "" {
		e.PRNumber = LocalPRNumber
	}
	return e, nil
}

// RequirePost checks the variables needed to post a comment and returns
// the parsed PR number.
func (e Env) RequirePost() (int, error) {
	if e.Token == "" {
		return 0, &MissingEnvError{Name: EnvToken}
	}
	if e.Repo == "" {
		return 0, &MissingEnvError{Name: EnvRepo, Hint: "expected owner/repo"}
	}
	if e.PRNumber == "" {
		return 0, &MissingEnvError{Name: EnvPRNumber}
	}
	pr, err := strconv.Atoi(e.PRNumber)
	if err != nil || pr <= 0 {
		return 0, fmt.Errorf("%s must be a positive integer, got %q", EnvPRNumber, e.PRNumber)
	}
	return pr, nil
}
