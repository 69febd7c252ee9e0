// Package github implements the pull request comment service on the GitHub
// REST API using google/go-github.
package github

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"strings"

	gh "github.com/google/go-github/v66/github"

	"github.com/fwojciec/pbirview"
)

// Compile-time interface verification.
var _ pbirview.CommentService = (*Client)(nil)

// UserAgent identifies requests made by the client.
const UserAgent = "pbir-pr-annotate"

// APIError is returned when GitHub responds with a non-2xx status.
type APIError struct {
	Op         string // "list", "create" or "update"
	StatusCode int
	Message    string // GitHub's error message
	Body       string // Raw response body
}

// Error implements the error interface.
func (e *APIError) Error() string {
	detail := e.Message
	if detail == "" {
		detail = e.Body
	}
	return fmt.Sprintf("github %s comments: %d %s", e.Op, e.StatusCode, detail)
}

// Client lists, creates and updates issue comments on one repository.
type Client struct {
	client *gh.Client
	owner  string
	repo   string
}

// Option configures a Client.
type Option func(*gh.Client) error

// WithBaseURL points the client at a different API root, such as a GitHub
// Enterprise server or a test server.
func WithBaseURL(raw string) Option {
	return func(c *gh.Client) error {
		if !strings.HasSuffix(raw, "/") {
			raw += "/"
		}
		u, err := url.Parse(raw)
		if err != nil {
			return fmt.Errorf("invalid GitHub API URL %q: %w", raw, err)
		}
		c.BaseURL = u
		return nil
	}
}

// NewClient creates a Client for repo ("owner/name") authenticated with token.
func NewClient(token, repo string, opts ...Option) (*Client, error) {
	owner, name, ok := strings.Cut(repo, "/")
	if !ok || owner == "" || name == "" || strings.Contains(name, "/") {
		return nil, fmt.Errorf("invalid repository %q: expected owner/repo", repo)
	}

	client := gh.NewClient(nil)
	for _, opt := range opts {
		if err := opt(client); err != nil {
			return nil, err
		}
	}
	client = client.WithAuthToken(token)
	client.UserAgent = UserAgent

	return &Client{client: client, owner: owner, repo: name}, nil
}

// ListComments returns every comment on the pull request.
func (c *Client) ListComments(ctx context.Context, pr int) ([]pbirview.Comment, error) {
	opts := &gh.IssueListCommentsOptions{
		ListOptions: gh.ListOptions{PerPage: 100},
	}

	var comments []pbirview.Comment
	for {
		page, resp, err := c.client.Issues.ListComments(ctx, c.owner, c.repo, pr, opts)
		if err != nil {
			return nil, wrapAPIError("list", err)
		}
		for _, ic := range page {
			comments = append(comments, pbirview.Comment{
				ID:   ic.GetID(),
				Body: ic.GetBody(),
			})
		}
		if resp == nil || resp.NextPage == 0 {
			return comments, nil
		}
		opts.Page = resp.NextPage
	}
}

// CreateComment adds a new comment to the pull request.
func (c *Client) CreateComment(ctx context.Context, pr int, body string) error {
	_, _, err := c.client.Issues.CreateComment(ctx, c.owner, c.repo, pr, &gh.IssueComment{
		Body: gh.String(body),
	})
	if err != nil {
		return wrapAPIError("create", err)
	}
	return nil
}

// UpdateComment replaces the body of an existing comment.
func (c *Client) UpdateComment(ctx context.Context, id int64, body string) error {
	_, _, err := c.client.Issues.EditComment(ctx, c.owner, c.repo, id, &gh.IssueComment{
		Body: gh.String(body),
	})
	if err != nil {
		return wrapAPIError("update", err)
	}
	return nil
}

// wrapAPIError converts gh.ErrorResponse into an APIError carrying the
// status and response body.
func wrapAPIError(op string, err error) error {
	var errResp *gh.ErrorResponse
	if errors.As(err, &errResp) && errResp.Response != nil {
		apiErr := &APIError{
			Op:         op,
			StatusCode: errResp.Response.StatusCode,
			Message:    errResp.Message,
		}
		// go-github restores the body after decoding the error.
		if errResp.Response.Body != nil {
			if data, readErr := io.ReadAll(errResp.Response.Body); readErr == nil {
				apiErr.Body = strings.TrimSpace(string(data))
			}
		}
		return apiErr
	}
	return fmt.Errorf("github %s comments: %w", op, err)
}
