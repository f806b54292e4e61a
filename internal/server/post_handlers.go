package server

import (
	"inkwell/internal/models"
	"inkwell/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetPosts handles GET /api/posts
// @Summary List published posts
// @Description Get a page of published posts with the total count
// @Tags posts
// @Produce json
// @Param page query int false "Page number (1-indexed)" default(1)
// @Param limit query int false "Page size" default(10)
// @Success 200 {object} service.PostList
// @Router /posts [get]
func (s *Server) GetPosts(c *fiber.Ctx) error {
	p := parsePagination(c)

	list, err := s.postService.ListPosts(c.UserContext(), p.Limit, p.Offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// GetPost handles GET /api/posts/:id
// @Summary Get a post by ID
// @Description Get a single post with categories and approved comments. Counts a view.
// @Tags posts
// @Produce json
// @Param id path int true "Post ID"
// @Success 200 {object} service.PostView
// @Failure 404 {object} models.ErrorResponse
// @Router /posts/{id} [get]
func (s *Server) GetPost(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	post, err := s.postService.GetPost(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(post)
}

// GetPostBySlug handles GET /api/posts/slug/:slug
// @Summary Get a post by slug
// @Description Get a single post addressed by its slug. Counts a view.
// @Tags posts
// @Produce json
// @Param slug path string true "Post slug"
// @Success 200 {object} service.PostView
// @Failure 404 {object} models.ErrorResponse
// @Router /posts/slug/{slug} [get]
func (s *Server) GetPostBySlug(c *fiber.Ctx) error {
	slug := c.Params("slug")
	if slug == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid slug"))
	}

	post, err := s.postService.GetPostBySlug(c.UserContext(), slug)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(post)
}

// GetAuthorPosts handles GET /api/posts/author/:authorId
// @Summary List posts by author
// @Description Get an author's posts, drafts included, newest first
// @Tags posts
// @Produce json
// @Param authorId path int true "Author ID"
// @Param page query int false "Page number (1-indexed)" default(1)
// @Param limit query int false "Page size" default(10)
// @Success 200 {array} service.PostView
// @Router /posts/author/{authorId} [get]
func (s *Server) GetAuthorPosts(c *fiber.Ctx) error {
	authorID, err := s.parseID(c, "authorId")
	if err != nil {
		return nil
	}
	p := parsePagination(c)

	posts, err := s.postService.GetAuthorPosts(c.UserContext(), authorID, p.Limit, p.Offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(posts)
}

// GetCategoryPosts handles GET /api/posts/category/:categoryId
// @Summary List published posts in a category
// @Tags posts
// @Produce json
// @Param categoryId path int true "Category ID"
// @Param page query int false "Page number (1-indexed)" default(1)
// @Param limit query int false "Page size" default(10)
// @Success 200 {array} service.PostView
// @Failure 404 {object} models.ErrorResponse
// @Router /posts/category/{categoryId} [get]
func (s *Server) GetCategoryPosts(c *fiber.Ctx) error {
	categoryID, err := s.parseID(c, "categoryId")
	if err != nil {
		return nil
	}
	p := parsePagination(c)

	posts, err := s.postService.GetCategoryPosts(c.UserContext(), categoryID, p.Limit, p.Offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(posts)
}

// CreatePost handles POST /api/posts
// @Summary Create a post
// @Description Create a new post; the slug is derived from the title
// @Tags posts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body object{title=string,content=string,excerpt=string,featured_image=string,is_published=bool,category_ids=[]int} true "Post"
// @Success 201 {object} service.PostView
// @Failure 400 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Router /posts [post]
func (s *Server) CreatePost(c *fiber.Ctx) error {
	var req struct {
		Title         string `json:"title"`
		Content       string `json:"content"`
		Excerpt       string `json:"excerpt"`
		FeaturedImage string `json:"featured_image"`
		IsPublished   bool   `json:"is_published"`
		CategoryIDs   []uint `json:"category_ids"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	post, err := s.postService.CreatePost(c.UserContext(), service.CreatePostInput{
		AuthorID:      currentUserID(c),
		Title:         req.Title,
		Content:       req.Content,
		Excerpt:       req.Excerpt,
		FeaturedImage: req.FeaturedImage,
		IsPublished:   req.IsPublished,
		CategoryIDs:   req.CategoryIDs,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(post)
}

// UpdatePost handles PUT /api/posts/:id
// @Summary Update a post
// @Description Update a post the caller owns; a changed title recomputes the slug
// @Tags posts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Post ID"
// @Param request body object{title=string,content=string,excerpt=string,featured_image=string,is_published=bool,category_ids=[]int} true "Fields to update"
// @Success 200 {object} service.PostView
// @Failure 403 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Router /posts/{id} [put]
func (s *Server) UpdatePost(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		Title         *string `json:"title"`
		Content       *string `json:"content"`
		Excerpt       *string `json:"excerpt"`
		FeaturedImage *string `json:"featured_image"`
		IsPublished   *bool   `json:"is_published"`
		CategoryIDs   *[]uint `json:"category_ids"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	post, err := s.postService.UpdatePost(c.UserContext(), service.UpdatePostInput{
		UserID:        currentUserID(c),
		PostID:        id,
		Title:         req.Title,
		Content:       req.Content,
		Excerpt:       req.Excerpt,
		FeaturedImage: req.FeaturedImage,
		IsPublished:   req.IsPublished,
		CategoryIDs:   req.CategoryIDs,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(post)
}

// DeletePost handles DELETE /api/posts/:id
// @Summary Delete a post
// @Description Delete a post the caller owns, along with its comments and category links
// @Tags posts
// @Produce json
// @Security BearerAuth
// @Param id path int true "Post ID"
// @Success 200 {object} object{message=string}
// @Failure 403 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /posts/{id} [delete]
func (s *Server) DeletePost(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.postService.DeletePost(c.UserContext(), service.DeletePostInput{
		UserID: currentUserID(c),
		PostID: id,
	}); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Post deleted"})
}
