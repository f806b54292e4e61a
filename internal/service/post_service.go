package service

import (
	"context"
	"time"

	"inkwell/internal/models"
	"inkwell/internal/repository"
	"inkwell/internal/slug"
)

const (
	maxTitleLen   = 250
	maxContentLen = 100000
	maxExcerptLen = 500
)

type PostService struct {
	postRepo     repository.PostRepository
	categoryRepo repository.CategoryRepository
}

type CreatePostInput struct {
	AuthorID      uint
	Title         string
	Content       string
	Excerpt       string
	FeaturedImage string
	IsPublished   bool
	CategoryIDs   []uint
}

type UpdatePostInput struct {
	UserID        uint
	PostID        uint
	Title         *string
	Content       *string
	Excerpt       *string
	FeaturedImage *string
	IsPublished   *bool
	// CategoryIDs, when present, replaces the whole category set.
	CategoryIDs *[]uint
}

type DeletePostInput struct {
	UserID uint
	PostID uint
}

func NewPostService(postRepo repository.PostRepository, categoryRepo repository.CategoryRepository) *PostService {
	return &PostService{
		postRepo:     postRepo,
		categoryRepo: categoryRepo,
	}
}

func (s *PostService) CreatePost(ctx context.Context, in CreatePostInput) (*PostView, error) {
	if in.Title == "" {
		return nil, models.NewValidationError("Title is required")
	}
	if len(in.Title) > maxTitleLen {
		return nil, models.NewValidationError("Title too long (max 250 characters)")
	}
	if in.Content == "" {
		return nil, models.NewValidationError("Content is required")
	}
	if len(in.Content) > maxContentLen {
		return nil, models.NewValidationError("Content too long (max 100000 characters)")
	}
	if len(in.Excerpt) > maxExcerptLen {
		return nil, models.NewValidationError("Excerpt too long (max 500 characters)")
	}

	postSlug := slug.Generate(in.Title)
	if postSlug == "" {
		return nil, models.NewValidationError("Title must contain at least one alphanumeric character")
	}

	taken, err := s.postRepo.SlugExists(ctx, postSlug, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, models.NewConflictError("A post with this slug already exists")
	}

	post := &models.Post{
		Title:         in.Title,
		Slug:          postSlug,
		Content:       in.Content,
		Excerpt:       in.Excerpt,
		FeaturedImage: in.FeaturedImage,
		IsPublished:   in.IsPublished,
		AuthorID:      in.AuthorID,
	}
	if in.IsPublished {
		now := time.Now()
		post.PublishedAt = &now
	}

	if err := s.postRepo.Create(ctx, post, in.CategoryIDs); err != nil {
		// The pre-check races with concurrent writers; the unique index is
		// the real guard.
		if repository.IsUniqueViolation(err) {
			return nil, models.NewConflictError("A post with this slug already exists")
		}
		return nil, err
	}

	created, err := s.postRepo.GetByID(ctx, post.ID)
	if err != nil {
		return nil, err
	}
	return ComposePost(created), nil
}

// ListPosts returns one page of published posts, newest created first,
// along with the total count of published posts.
func (s *PostService) ListPosts(ctx context.Context, limit, offset int) (*PostList, error) {
	posts, total, err := s.postRepo.ListPublished(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	return &PostList{Posts: ComposePosts(posts), Total: total}, nil
}

// GetPost returns a post by id and counts the read. The returned view
// carries the incremented view count.
func (s *PostService) GetPost(ctx context.Context, id uint) (*PostView, error) {
	post, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, models.NewNotFoundError("Post", id)
		}
		return nil, err
	}
	if err := s.postRepo.IncrementViews(ctx, post.ID); err != nil {
		return nil, err
	}
	post.Views++
	return ComposePost(post), nil
}

// GetPostBySlug is the slug-addressed read path; it counts the read too.
func (s *PostService) GetPostBySlug(ctx context.Context, postSlug string) (*PostView, error) {
	post, err := s.postRepo.GetBySlug(ctx, postSlug)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, models.NewNotFoundError("Post", postSlug)
		}
		return nil, err
	}
	if err := s.postRepo.IncrementViews(ctx, post.ID); err != nil {
		return nil, err
	}
	post.Views++
	return ComposePost(post), nil
}

// GetAuthorPosts lists an author's posts, drafts included, newest first.
func (s *PostService) GetAuthorPosts(ctx context.Context, authorID uint, limit, offset int) ([]*PostView, error) {
	posts, err := s.postRepo.ListByAuthor(ctx, authorID, limit, offset)
	if err != nil {
		return nil, err
	}
	return ComposePosts(posts), nil
}

// GetCategoryPosts lists published posts in a category.
func (s *PostService) GetCategoryPosts(ctx context.Context, categoryID uint, limit, offset int) ([]*PostView, error) {
	if _, err := s.categoryRepo.GetByID(ctx, categoryID); err != nil {
		if repository.IsNotFound(err) {
			return nil, models.NewNotFoundError("Category", categoryID)
		}
		return nil, err
	}
	posts, err := s.postRepo.ListPublishedByCategory(ctx, categoryID, limit, offset)
	if err != nil {
		return nil, err
	}
	return ComposePosts(posts), nil
}

func (s *PostService) UpdatePost(ctx context.Context, in UpdatePostInput) (*PostView, error) {
	post, err := s.postRepo.GetByID(ctx, in.PostID)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, models.NewNotFoundError("Post", in.PostID)
		}
		return nil, err
	}

	if post.AuthorID != in.UserID {
		return nil, models.NewForbiddenError("You can only update your own posts")
	}

	if in.Title != nil && *in.Title != post.Title {
		if *in.Title == "" {
			return nil, models.NewValidationError("Title cannot be empty")
		}
		if len(*in.Title) > maxTitleLen {
			return nil, models.NewValidationError("Title too long (max 250 characters)")
		}
		newSlug := slug.Generate(*in.Title)
		if newSlug == "" {
			return nil, models.NewValidationError("Title must contain at least one alphanumeric character")
		}
		if newSlug != post.Slug {
			taken, err := s.postRepo.SlugExists(ctx, newSlug, post.ID)
			if err != nil {
				return nil, err
			}
			if taken {
				return nil, models.NewConflictError("A post with this slug already exists")
			}
			post.Slug = newSlug
		}
		post.Title = *in.Title
	}
	if in.Content != nil {
		if *in.Content == "" {
			return nil, models.NewValidationError("Content cannot be empty")
		}
		if len(*in.Content) > maxContentLen {
			return nil, models.NewValidationError("Content too long (max 100000 characters)")
		}
		post.Content = *in.Content
	}
	if in.Excerpt != nil {
		if len(*in.Excerpt) > maxExcerptLen {
			return nil, models.NewValidationError("Excerpt too long (max 500 characters)")
		}
		post.Excerpt = *in.Excerpt
	}
	if in.FeaturedImage != nil {
		post.FeaturedImage = *in.FeaturedImage
	}
	if in.IsPublished != nil {
		// PublishedAt is set exactly once, on the first publish. Unpublishing
		// keeps the original timestamp.
		if *in.IsPublished && !post.IsPublished && post.PublishedAt == nil {
			now := time.Now()
			post.PublishedAt = &now
		}
		post.IsPublished = *in.IsPublished
	}

	var categoryIDs []uint
	replaceCategories := false
	if in.CategoryIDs != nil {
		categoryIDs = *in.CategoryIDs
		replaceCategories = true
	}

	// Save carries the preloaded associations; strip them so GORM only
	// writes the posts row, the join table is managed explicitly.
	post.Author = models.User{}
	post.Categories = nil
	post.Comments = nil

	if err := s.postRepo.Update(ctx, post, categoryIDs, replaceCategories); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, models.NewConflictError("A post with this slug already exists")
		}
		return nil, err
	}

	updated, err := s.postRepo.GetByID(ctx, post.ID)
	if err != nil {
		return nil, err
	}
	return ComposePost(updated), nil
}

func (s *PostService) DeletePost(ctx context.Context, in DeletePostInput) error {
	post, err := s.postRepo.GetByID(ctx, in.PostID)
	if err != nil {
		if repository.IsNotFound(err) {
			return models.NewNotFoundError("Post", in.PostID)
		}
		return err
	}

	if post.AuthorID != in.UserID {
		return models.NewForbiddenError("You can only delete your own posts")
	}

	return s.postRepo.Delete(ctx, in.PostID)
}
