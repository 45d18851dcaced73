package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	postPort "ripple/internal/ports/post"
	userPort "ripple/internal/ports/user"
)

type PostController struct {
	pc     PostUseCase
	logger *zap.Logger
}

func NewPostController(pc PostUseCase, logger *zap.Logger) *PostController {
	return &PostController{pc: pc, logger: logger}
}

func (ctl *PostController) CreatePost(c *gin.Context) {
	var req struct {
		Text string `json:"text" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "text is required"})
		return
	}

	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "user not found in context"})
		return
	}

	res, err := ctl.pc.CreatePost(c.Request.Context(), userID.(string), req.Text)
	if err != nil {
		ctl.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (ctl *PostController) ListPosts(c *gin.Context) {
	res, err := ctl.pc.ListPosts(c.Request.Context())
	if err != nil {
		ctl.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (ctl *PostController) GetPost(c *gin.Context) {
	res, err := ctl.pc.GetPost(c.Request.Context(), c.Param("id"))
	if err != nil {
		ctl.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"post": res})
}

func (ctl *PostController) DeletePost(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "user not found in context"})
		return
	}

	if err := ctl.pc.DeletePost(c.Request.Context(), userID.(string), c.Param("id")); err != nil {
		ctl.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "post removed"})
}

func (ctl *PostController) LikePost(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "user not found in context"})
		return
	}

	likes, err := ctl.pc.LikePost(c.Request.Context(), userID.(string), c.Param("id"))
	if err != nil {
		ctl.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, likes)
}

func (ctl *PostController) UnlikePost(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "user not found in context"})
		return
	}

	likes, err := ctl.pc.UnlikePost(c.Request.Context(), userID.(string), c.Param("id"))
	if err != nil {
		ctl.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, likes)
}

func (ctl *PostController) AddComment(c *gin.Context) {
	var req struct {
		Text string `json:"text" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "text is required"})
		return
	}

	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "user not found in context"})
		return
	}

	comments, err := ctl.pc.AddComment(c.Request.Context(), userID.(string), c.Param("id"), req.Text)
	if err != nil {
		ctl.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, comments)
}

func (ctl *PostController) DeleteComment(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "user not found in context"})
		return
	}

	comments, err := ctl.pc.DeleteComment(c.Request.Context(), userID.(string), c.Param("id"), c.Param("commentId"))
	if err != nil {
		ctl.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, comments)
}

// writeError maps domain errors to the response contract. Anything not
// in the taxonomy is a storage failure: logged with full detail, leaked
// to the caller as a generic message.
func (ctl *PostController) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, postPort.ErrEmptyText):
		c.JSON(http.StatusBadRequest, gin.H{"message": "text is required"})
	case errors.Is(err, postPort.ErrAlreadyLiked):
		c.JSON(http.StatusBadRequest, gin.H{"message": "post already liked"})
	case errors.Is(err, postPort.ErrNotLiked):
		c.JSON(http.StatusBadRequest, gin.H{"message": "post has not yet been liked"})
	case errors.Is(err, postPort.ErrPostNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "post not found"})
	case errors.Is(err, postPort.ErrCommentNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "comment does not exist"})
	case errors.Is(err, postPort.ErrNotOwner):
		c.JSON(http.StatusUnauthorized, gin.H{"message": "user not authorized"})
	case errors.Is(err, userPort.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "user not found"})
	default:
		ctl.logger.Error("post operation failed", zap.String("path", c.FullPath()), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "something went wrong"})
	}
}
