package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	blogUC "github.com/sachin22-web/sachin-portfolio/internal/application/usecase/blog"
	"github.com/sachin22-web/sachin-portfolio/pkg/apperror"
	"github.com/sachin22-web/sachin-portfolio/pkg/logger"
)

type BlogHandler struct {
	blogUseCase *blogUC.UseCase
	logger      logger.Logger
}

func NewBlogHandler(uc *blogUC.UseCase, log logger.Logger) *BlogHandler {
	return &BlogHandler{
		blogUseCase: uc,
		logger:      log,
	}
}

func (h *BlogHandler) CreateBlog(c *gin.Context) {
	var req CreateBlogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid request data", err))
		return
	}

	b, err := h.blogUseCase.Create(c.Request.Context(), blogUC.CreateInput{
		Title:         req.Title,
		Slug:          req.Slug,
		Excerpt:       req.Excerpt,
		Content:       req.Content,
		FeaturedImage: req.FeaturedImage,
		Author:        req.Author,
		Category:      req.Category,
		Tags:          req.Tags,
		IsPublished:   req.IsPublished,
	})
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, b)
}

func (h *BlogHandler) UpdateBlog(c *gin.Context) {
	blogID, err := uuid.Parse(c.Param("ref"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid blog ID", err))
		return
	}
	var req UpdateBlogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid request data", err))
		return
	}

	b, err := h.blogUseCase.Update(c.Request.Context(), blogUC.UpdateInput{
		BlogID:        blogID,
		Title:         req.Title,
		Slug:          req.Slug,
		Excerpt:       req.Excerpt,
		Content:       req.Content,
		FeaturedImage: req.FeaturedImage,
		Author:        req.Author,
		Category:      req.Category,
		Tags:          req.Tags,
		IsPublished:   req.IsPublished,
	})
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, b)
}

func (h *BlogHandler) DeleteBlog(c *gin.Context) {
	blogID, err := uuid.Parse(c.Param("ref"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid blog ID", err))
		return
	}
	if err := h.blogUseCase.Delete(c.Request.Context(), blogID); err != nil {
		c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}

// GetBlog is the admin read: ID or slug, no view counting.
func (h *BlogHandler) GetBlog(c *gin.Context) {
	b, err := h.blogUseCase.Get(c.Request.Context(), c.Param("ref"))
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// GetPublicBlog serves the public detail page and bumps the view counter.
func (h *BlogHandler) GetPublicBlog(c *gin.Context) {
	b, err := h.blogUseCase.GetPublic(c.Request.Context(), c.Param("slug"))
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, b)
}

func (h *BlogHandler) ListBlogs(c *gin.Context) {
	h.listBlogs(c, false)
}

func (h *BlogHandler) ListPublicBlogs(c *gin.Context) {
	h.listBlogs(c, true)
}

func (h *BlogHandler) listBlogs(c *gin.Context, publishedOnly bool) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	blogs, err := h.blogUseCase.List(c.Request.Context(), blogUC.ListInput{
		PublishedOnly: publishedOnly,
		Limit:         limit,
		Offset:        offset,
	})
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"blogs": blogs})
}
