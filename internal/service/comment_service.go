package service

import (
	"context"

	"inkwell/internal/models"
	"inkwell/internal/repository"
)

const maxCommentLen = 2000

type CommentService struct {
	commentRepo repository.CommentRepository
	postRepo    repository.PostRepository
}

type CreateCommentInput struct {
	AuthorID uint
	PostID   uint
	Content  string
}

type UpdateCommentInput struct {
	UserID     uint
	CommentID  uint
	Content    *string
	IsApproved *bool
}

type DeleteCommentInput struct {
	UserID    uint
	CommentID uint
}

func NewCommentService(commentRepo repository.CommentRepository, postRepo repository.PostRepository) *CommentService {
	return &CommentService{
		commentRepo: commentRepo,
		postRepo:    postRepo,
	}
}

func (s *CommentService) CreateComment(ctx context.Context, in CreateCommentInput) (*models.Comment, error) {
	if in.Content == "" {
		return nil, models.NewValidationError("Content is required")
	}
	if len(in.Content) > maxCommentLen {
		return nil, models.NewValidationError("Content too long (max 2000 characters)")
	}

	if _, err := s.postRepo.GetByID(ctx, in.PostID); err != nil {
		if repository.IsNotFound(err) {
			return nil, models.NewNotFoundError("Post", in.PostID)
		}
		return nil, err
	}

	comment := &models.Comment{
		Content:    in.Content,
		IsApproved: true,
		AuthorID:   in.AuthorID,
		PostID:     in.PostID,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// ListComments returns the approved comments of a post, newest first.
func (s *CommentService) ListComments(ctx context.Context, postID uint) ([]*models.Comment, error) {
	if _, err := s.postRepo.GetByID(ctx, postID); err != nil {
		if repository.IsNotFound(err) {
			return nil, models.NewNotFoundError("Post", postID)
		}
		return nil, err
	}
	comments, err := s.commentRepo.ListApprovedByPost(ctx, postID)
	if err != nil {
		return nil, err
	}
	if comments == nil {
		comments = make([]*models.Comment, 0)
	}
	return comments, nil
}

func (s *CommentService) UpdateComment(ctx context.Context, in UpdateCommentInput) (*models.Comment, error) {
	comment, err := s.commentRepo.GetByID(ctx, in.CommentID)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, models.NewNotFoundError("Comment", in.CommentID)
		}
		return nil, err
	}

	// Ownership is exact author equality; nobody else may touch a comment.
	if comment.AuthorID != in.UserID {
		return nil, models.NewForbiddenError("You can only update your own comments")
	}

	if in.Content != nil {
		if *in.Content == "" {
			return nil, models.NewValidationError("Content cannot be empty")
		}
		if len(*in.Content) > maxCommentLen {
			return nil, models.NewValidationError("Content too long (max 2000 characters)")
		}
		comment.Content = *in.Content
	}

	if in.IsApproved != nil {
		comment.IsApproved = *in.IsApproved
	}

	comment.Author = models.User{}
	comment.Post = nil

	if err := s.commentRepo.Update(ctx, comment); err != nil {
		return nil, err
	}
	return s.commentRepo.GetByID(ctx, comment.ID)
}

// DeleteComment removes a comment. Only the comment's author may delete it.
func (s *CommentService) DeleteComment(ctx context.Context, in DeleteCommentInput) error {
	comment, err := s.commentRepo.GetByID(ctx, in.CommentID)
	if err != nil {
		if repository.IsNotFound(err) {
			return models.NewNotFoundError("Comment", in.CommentID)
		}
		return err
	}

	if comment.AuthorID != in.UserID {
		return models.NewForbiddenError("You can only delete your own comments")
	}

	return s.commentRepo.Delete(ctx, in.CommentID)
}
