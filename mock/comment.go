package mock

import (
	"context"

	"github.com/fwojciec/pbirview"
)

// Compile-time interface verification.
var _ pbirview.CommentService = (*CommentService)(nil)

// CommentService is a mock implementation of pbirview.CommentService.
type CommentService struct {
	ListCommentsFn  func(ctx context.Context, pr int) ([]pbirview.Comment, error)
	CreateCommentFn func(ctx context.Context, pr int, body string) error
	UpdateCommentFn func(ctx context.Context, id int64, body string) error
}

func (s *CommentService) ListComments(ctx context.Context, pr int) ([]pbirview.Comment, error) {
	return s.ListCommentsFn(ctx, pr)
}

func (s *CommentService) CreateComment(ctx context.Context, pr int, body string) error {
	return s.CreateCommentFn(ctx, pr, body)
}

func (s *CommentService) UpdateComment(ctx context.Context, id int64, body string) error {
	return s.UpdateCommentFn(ctx, id, body)
}
