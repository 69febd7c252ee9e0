package pbirview

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// DefaultMarker is the hidden marker identifying the layout summary comment.
const DefaultMarker = "<!-- pbir-layout-summary -->"

// ErrEmptyComment is returned when there is no comment body to post.
var ErrEmptyComment = errors.New("comment body is empty")

// UpsertResult describes what UpsertComment did.
type UpsertResult struct {
	Updated   bool  // False when a new comment was created
	CommentID int64 // ID of the updated comment; zero when created
}

// UpsertComment posts body to the pull request, prefixed with marker.
// If a comment containing marker already exists it is updated in place,
// so posting the same summary twice never creates a duplicate.
func UpsertComment(ctx context.Context, svc CommentService, pr int, marker, body string) (UpsertResult, error) {
	body = strings.TrimSpace(body)
	if body == "" {
		return UpsertResult{}, ErrEmptyComment
	}
	if marker == "" {
		marker = DefaultMarker
	}
	final := marker + "\n" + body

	comments, err := svc.ListComments(ctx, pr)
	if err != nil {
		return UpsertResult{}, fmt.Errorf("failed to list PR comments: %w", err)
	}

	for _, c := range comments {
		if strings.Contains(c.Body, marker) {
			if err := svc.UpdateComment(ctx, c.ID, final); err != nil {
				return UpsertResult{}, fmt.Errorf("failed to update comment: %w", err)
			}
			return UpsertResult{Updated: true, CommentID: c.ID}, nil
		}
	}

	if err := svc.CreateComment(ctx, pr, final); err != nil {
		return UpsertResult{}, fmt.Errorf("failed to create comment: %w", err)
	}
	return UpsertResult{}, nil
}
