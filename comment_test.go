package pbirview_test

import (
	"context"
	"errors"
	"testing"

	"github.com/fwojciec/pbirview"
	"github.com/fwojciec/pbirview/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// commentThread is an in-memory pull request comment thread.
type commentThread struct {
	comments []pbirview.Comment
	nextID   int64
}

func (th *commentThread) service() *mock.CommentService {
	return &mock.CommentService{
		ListCommentsFn: func(_ context.Context, _ int) ([]pbirview.Comment, error) {
			return append([]pbirview.Comment(nil), th.comments...), nil
		},
		CreateCommentFn: func(_ context.Context, _ int, body string) error {
			th.nextID++
			th.comments = append(th.comments, pbirview.Comment{ID: th.nextID, Body: body})
			return nil
		},
		UpdateCommentFn: func(_ context.Context, id int64, body string) error {
			for i := range th.comments {
				if th.comments[i].ID == id {
					th.comments[i].Body = body
					return nil
				}
			}
			return errors.New("not found")
		},
	}
}

func TestUpsertComment(t *testing.T) {
	t.Parallel()

	t.Run("creates a comment prefixed with the marker", func(t *testing.T) {
		t.Parallel()

		thread := &commentThread{comments: []pbirview.Comment{{ID: 100, Body: "LGTM"}}, nextID: 100}

		res, err := pbirview.UpsertComment(context.Background(), thread.service(), 7, "", "  summary\n")

		require.NoError(t, err)
		assert.False(t, res.Updated)
		require.Len(t, thread.comments, 2)
		assert.Equal(t, pbirview.DefaultMarker+"\nsummary", thread.comments[1].Body)
	})

	t.Run("posting twice updates in place", func(t *testing.T) {
		t.Parallel()

		thread := &commentThread{}
		svc := thread.service()

		_, err := pbirview.UpsertComment(context.Background(), svc, 7, "<!-- m -->", "first")
		require.NoError(t, err)
		res, err := pbirview.UpsertComment(context.Background(), svc, 7, "<!-- m -->", "second")

		require.NoError(t, err)
		assert.True(t, res.Updated)
		assert.Equal(t, int64(1), res.CommentID)
		require.Len(t, thread.comments, 1)
		assert.Equal(t, "<!-- m -->\nsecond", thread.comments[0].Body)
	})

	t.Run("rejects an empty body", func(t *testing.T) {
		t.Parallel()

		_, err := pbirview.UpsertComment(context.Background(), &mock.CommentService{}, 7, "", " \n\t")

		assert.ErrorIs(t, err, pbirview.ErrEmptyComment)
	})

	t.Run("wraps service errors", func(t *testing.T) {
		t.Parallel()

		boom := errors.New("boom")
		svc := &mock.CommentService{
			ListCommentsFn: func(_ context.Context, _ int) ([]pbirview.Comment, error) {
				return []pbirview.Comment{{ID: 5, Body: pbirview.DefaultMarker + "\nold"}}, nil
			},
			UpdateCommentFn: func(_ context.Context, _ int64, _ string) error {
				return boom
			},
		}

		_, err := pbirview.UpsertComment(context.Background(), svc, 7, "", "new")

		require.ErrorIs(t, err, boom)
		assert.Contains(t, err.Error(), "failed to update comment")
	})

	t.Run("list failure", func(t *testing.T) {
		t.Parallel()

		svc := &mock.CommentService{
			ListCommentsFn: func(_ context.Context, _ int) ([]pbirview.Comment, error) {
				return nil, errors.New("unauthorized")
			},
		}

		_, err := pbirview.UpsertComment(context.Background(), svc, 7, "", "body")

		assert.EqualError(t, err, "failed to list PR comments: unauthorized")
	})
}
