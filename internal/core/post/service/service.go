package postapp

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/gofrs/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	postEntity "ripple/internal/core/post"
	postPort "ripple/internal/ports/post"
	userPort "ripple/internal/ports/user"
)

// PostService applies the post mutation rules: who may change which
// fields of a post and with what ordering guarantees. It owns no state;
// the store is the only point of shared mutable state.
type PostService struct {
	PostRepository postPort.PostRepository
	UserDirectory  userPort.ProfileDirectory
	Logger         *zap.Logger
}

func NewPostService(
	postRepo postPort.PostRepository,
	directory userPort.ProfileDirectory,
	logger *zap.Logger,
) *PostService {
	return &PostService{
		PostRepository: postRepo,
		UserDirectory:  directory,
		Logger:         logger,
	}
}

// CreatePost stores a new post carrying a snapshot of the caller's
// profile. The snapshot is intentionally never refreshed afterwards.
func (s *PostService) CreatePost(ctx context.Context, callerID, text string) (*postPort.PostDTO, error) {
	if strings.TrimSpace(text) == "" {
		return nil, postPort.ErrEmptyText
	}

	profile, err := s.UserDirectory.FindProfile(ctx, callerID)
	if err != nil {
		return nil, err
	}
	author, err := primitive.ObjectIDFromHex(callerID)
	if err != nil {
		return nil, fmt.Errorf("invalid caller id %q: %w", callerID, err)
	}

	p := &postEntity.Post{
		Author:       author,
		AuthorName:   profile.Name,
		AuthorAvatar: profile.Avatar,
		Text:         text,
		CreatedAt:    time.Now().UTC(),
		Likes:        []postEntity.Like{},
		Comments:     []postEntity.Comment{},
	}

	created, err := s.PostRepository.Create(ctx, p)
	if err != nil {
		s.Logger.Error("failed to create post", zap.String("userID", callerID), zap.Error(err))
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	return toPostDTO(created), nil
}

// ListPosts returns every post, newest first. No pagination.
func (s *PostService) ListPosts(ctx context.Context) ([]*postPort.PostDTO, error) {
	posts, err := s.PostRepository.FindAll(ctx)
	if err != nil {
		s.Logger.Error("failed to list posts", zap.Error(err))
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}

	dtos := make([]*postPort.PostDTO, 0, len(posts))
	for _, p := range posts {
		dtos = append(dtos, toPostDTO(p))
	}
	return dtos, nil
}

func (s *PostService) GetPost(ctx context.Context, postID string) (*postPort.PostDTO, error) {
	p, err := s.PostRepository.FindByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	return toPostDTO(p), nil
}

// DeletePost removes the post permanently, comments and likes included.
// Only the post's author may delete it; retrying after success yields
// ErrPostNotFound.
func (s *PostService) DeletePost(ctx context.Context, callerID, postID string) error {
	return s.PostRepository.Delete(ctx, postID, callerID)
}

// LikePost prepends the caller's like. The store rejects the write when
// the caller already appears in the likes array, so two racing likes
// from the same user can never produce a duplicate entry.
func (s *PostService) LikePost(ctx context.Context, callerID, postID string) ([]postPort.LikeDTO, error) {
	caller, err := primitive.ObjectIDFromHex(callerID)
	if err != nil {
		return nil, fmt.Errorf("invalid caller id %q: %w", callerID, err)
	}

	updated, err := s.PostRepository.AddLike(ctx, postID, postEntity.Like{User: caller})
	if err != nil {
		return nil, err
	}
	return toLikeDTOs(updated.Likes), nil
}

// UnlikePost removes the caller's like entry, failing with ErrNotLiked
// when no such entry exists.
func (s *PostService) UnlikePost(ctx context.Context, callerID, postID string) ([]postPort.LikeDTO, error) {
	updated, err := s.PostRepository.RemoveLike(ctx, postID, callerID)
	if err != nil {
		return nil, err
	}
	return toLikeDTOs(updated.Likes), nil
}

// AddComment prepends a comment carrying the caller's profile snapshot.
func (s *PostService) AddComment(ctx context.Context, callerID, postID, text string) ([]postPort.CommentDTO, error) {
	if strings.TrimSpace(text) == "" {
		return nil, postPort.ErrEmptyText
	}

	profile, err := s.UserDirectory.FindProfile(ctx, callerID)
	if err != nil {
		return nil, err
	}
	author, err := primitive.ObjectIDFromHex(callerID)
	if err != nil {
		return nil, fmt.Errorf("invalid caller id %q: %w", callerID, err)
	}

	c := postEntity.Comment{
		ID:           uuid.Must(uuid.NewV4()).String(),
		Author:       author,
		AuthorName:   profile.Name,
		AuthorAvatar: profile.Avatar,
		Text:         text,
		CreatedAt:    time.Now().UTC(),
	}

	updated, err := s.PostRepository.AddComment(ctx, postID, c)
	if err != nil {
		return nil, err
	}
	return toCommentDTOs(updated.Comments), nil
}

// DeleteComment removes the comment matching commentID. Only the
// comment's own author may remove it; the parent post's author has no
// say here.
func (s *PostService) DeleteComment(ctx context.Context, callerID, postID, commentID string) ([]postPort.CommentDTO, error) {
	updated, err := s.PostRepository.RemoveComment(ctx, postID, commentID, callerID)
	if err != nil {
		return nil, err
	}
	return toCommentDTOs(updated.Comments), nil
}

func toPostDTO(p *postEntity.Post) *postPort.PostDTO {
	return &postPort.PostDTO{
		ID:           p.ID.Hex(),
		Author:       p.Author.Hex(),
		AuthorName:   p.AuthorName,
		AuthorAvatar: p.AuthorAvatar,
		Text:         p.Text,
		CreatedAt:    p.CreatedAt.Format(time.RFC3339),
		Likes:        toLikeDTOs(p.Likes),
		Comments:     toCommentDTOs(p.Comments),
	}
}

func toLikeDTOs(likes []postEntity.Like) []postPort.LikeDTO {
	dtos := make([]postPort.LikeDTO, 0, len(likes))
	for _, l := range likes {
		dtos = append(dtos, postPort.LikeDTO{User: l.User.Hex()})
	}
	return dtos
}

func toCommentDTOs(comments []postEntity.Comment) []postPort.CommentDTO {
	dtos := make([]postPort.CommentDTO, 0, len(comments))
	for _, c := range comments {
		dtos = append(dtos, postPort.CommentDTO{
			ID:           c.ID,
			Author:       c.Author.Hex(),
			AuthorName:   c.AuthorName,
			AuthorAvatar: c.AuthorAvatar,
			Text:         c.Text,
			CreatedAt:    c.CreatedAt.Format(time.RFC3339),
		})
	}
	return dtos
}
