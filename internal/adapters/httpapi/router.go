package httpapi

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"ripple/internal/adapters/httpapi/middleware"
	postPort "ripple/internal/ports/post"
	ratelimitPort "ripple/internal/ports/ratelimit"
	userPort "ripple/internal/ports/user"
)

// UserUseCase is the inbound port the user controller needs.
type UserUseCase interface {
	LoginUser(ctx context.Context, username, password string) (*userPort.LoginResponse, error)
	RegisterUser(ctx context.Context, username, name, avatar, password string) (*userPort.UserDTO, error)
}

// PostUseCase is the inbound port the post controller needs.
type PostUseCase interface {
	CreatePost(ctx context.Context, callerID, text string) (*postPort.PostDTO, error)
	ListPosts(ctx context.Context) ([]*postPort.PostDTO, error)
	GetPost(ctx context.Context, postID string) (*postPort.PostDTO, error)
	DeletePost(ctx context.Context, callerID, postID string) error
	LikePost(ctx context.Context, callerID, postID string) ([]postPort.LikeDTO, error)
	UnlikePost(ctx context.Context, callerID, postID string) ([]postPort.LikeDTO, error)
	AddComment(ctx context.Context, callerID, postID, text string) ([]postPort.CommentDTO, error)
	DeleteComment(ctx context.Context, callerID, postID, commentID string) ([]postPort.CommentDTO, error)
}

// SetupRoutes wires controllers and middleware; use cases and the auth
// secret are injected from the composition root.
func SetupRoutes(
	userUC UserUseCase,
	postUC PostUseCase,
	jwtKey []byte,
	limiter ratelimitPort.Limiter,
	writeLimit int,
	writeWindow time.Duration,
	logger *zap.Logger,
) *gin.Engine {
	r := gin.Default()
	uc := NewUserController(userUC)
	pc := NewPostController(postUC, logger)

	auth := middleware.JWTAuthMiddleware(jwtKey)
	throttle := middleware.RateLimit(limiter, writeLimit, writeWindow, logger)

	// Registration and login stay outside the auth gate.
	r.POST("/register", uc.RegisterUser)
	r.POST("/login", uc.LoginUser)

	r.GET("/posts", auth, pc.ListPosts)
	r.GET("/posts/:id", auth, pc.GetPost)
	r.POST("/posts", auth, throttle, pc.CreatePost)
	r.DELETE("/posts/:id", auth, throttle, pc.DeletePost)
	r.PUT("/posts/like/:id", auth, throttle, pc.LikePost)
	r.PUT("/posts/unlike/:id", auth, throttle, pc.UnlikePost)
	r.POST("/posts/comment/:id", auth, throttle, pc.AddComment)
	r.DELETE("/posts/comment/:id/:commentId", auth, throttle, pc.DeleteComment)

	return r
}
