package post

import (
	"context"
	"errors"

	"ripple/internal/core/post"
)

// Domain errors surfaced by the post store and the post service. The
// HTTP layer maps these to status codes with errors.Is; anything else is
// treated as a storage failure.
var (
	ErrEmptyText       = errors.New("text must not be empty")
	ErrPostNotFound    = errors.New("post not found")
	ErrCommentNotFound = errors.New("comment not found")
	ErrNotOwner        = errors.New("caller does not own this resource")
	ErrAlreadyLiked    = errors.New("post already liked by this user")
	ErrNotLiked        = errors.New("post has not been liked by this user")
)

// PostRepository is the outbound port for the post collection. Every
// list mutation must be a single conditional update on the store so that
// concurrent callers cannot lose each other's writes; implementations
// return the domain errors above when the condition does not match.
type PostRepository interface {
	Create(ctx context.Context, p *post.Post) (*post.Post, error)
	FindByID(ctx context.Context, id string) (*post.Post, error)
	// FindAll returns every post, newest first.
	FindAll(ctx context.Context) ([]*post.Post, error)
	// Delete removes the post only when authorID matches its author.
	Delete(ctx context.Context, id, authorID string) error
	// AddLike prepends the like unless the user already appears in the
	// likes array, and returns the updated post.
	AddLike(ctx context.Context, id string, like post.Like) (*post.Post, error)
	// RemoveLike pulls the caller's like entry and returns the updated post.
	RemoveLike(ctx context.Context, id, userID string) (*post.Post, error)
	// AddComment prepends the comment and returns the updated post.
	AddComment(ctx context.Context, id string, c post.Comment) (*post.Post, error)
	// RemoveComment pulls the comment by its own id, only when authorID
	// matches the comment's author, and returns the updated post.
	RemoveComment(ctx context.Context, id, commentID, authorID string) (*post.Post, error)
}

// DTOs returned by the use case.
type PostDTO struct {
	ID           string       `json:"id"`
	Author       string       `json:"author"`
	AuthorName   string       `json:"authorName"`
	AuthorAvatar string       `json:"authorAvatar"`
	Text         string       `json:"text"`
	CreatedAt    string       `json:"createdAt"`
	Likes        []LikeDTO    `json:"likes"`
	Comments     []CommentDTO `json:"comments"`
}

type LikeDTO struct {
	User string `json:"user"`
}

type CommentDTO struct {
	ID           string `json:"id"`
	Author       string `json:"author"`
	AuthorName   string `json:"authorName"`
	AuthorAvatar string `json:"authorAvatar"`
	Text         string `json:"text"`
	CreatedAt    string `json:"createdAt"`
}
