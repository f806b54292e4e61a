package service

import (
	"context"

	"inkwell/internal/models"
	"inkwell/internal/repository"
	"inkwell/internal/slug"
)

const (
	maxCategoryNameLen = 100
	maxDescriptionLen  = 1000
)

type CategoryService struct {
	categoryRepo repository.CategoryRepository
}

type CreateCategoryInput struct {
	Name        string
	Description string
	Color       string
}

type UpdateCategoryInput struct {
	CategoryID  uint
	Name        *string
	Description *string
	Color       *string
}

func NewCategoryService(categoryRepo repository.CategoryRepository) *CategoryService {
	return &CategoryService{categoryRepo: categoryRepo}
}

func (s *CategoryService) CreateCategory(ctx context.Context, in CreateCategoryInput) (*models.Category, error) {
	if in.Name == "" {
		return nil, models.NewValidationError("Name is required")
	}
	if len(in.Name) > maxCategoryNameLen {
		return nil, models.NewValidationError("Name too long (max 100 characters)")
	}
	if len(in.Description) > maxDescriptionLen {
		return nil, models.NewValidationError("Description too long (max 1000 characters)")
	}

	categorySlug := slug.Generate(in.Name)
	if categorySlug == "" {
		return nil, models.NewValidationError("Name must contain at least one alphanumeric character")
	}

	// A category conflicts when another row holds either the name or the slug.
	taken, err := s.categoryRepo.NameOrSlugExists(ctx, in.Name, categorySlug, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, models.NewConflictError("A category with this name or slug already exists")
	}

	category := &models.Category{
		Name:        in.Name,
		Slug:        categorySlug,
		Description: in.Description,
		Color:       in.Color,
	}
	if err := s.categoryRepo.Create(ctx, category); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, models.NewConflictError("A category with this name or slug already exists")
		}
		return nil, err
	}
	return category, nil
}

// GetCategory returns the category with its published posts.
func (s *CategoryService) GetCategory(ctx context.Context, id uint) (*CategoryView, error) {
	category, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, models.NewNotFoundError("Category", id)
		}
		return nil, err
	}
	return ComposeCategory(category), nil
}

// GetCategoryBySlug is the slug-addressed read path.
func (s *CategoryService) GetCategoryBySlug(ctx context.Context, categorySlug string) (*CategoryView, error) {
	category, err := s.categoryRepo.GetBySlug(ctx, categorySlug)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, models.NewNotFoundError("Category", categorySlug)
		}
		return nil, err
	}
	return ComposeCategory(category), nil
}

func (s *CategoryService) ListCategories(ctx context.Context) ([]*models.Category, error) {
	categories, err := s.categoryRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	if categories == nil {
		categories = make([]*models.Category, 0)
	}
	return categories, nil
}

func (s *CategoryService) UpdateCategory(ctx context.Context, in UpdateCategoryInput) (*models.Category, error) {
	category, err := s.categoryRepo.GetByID(ctx, in.CategoryID)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, models.NewNotFoundError("Category", in.CategoryID)
		}
		return nil, err
	}

	if in.Name != nil && *in.Name != category.Name {
		if *in.Name == "" {
			return nil, models.NewValidationError("Name cannot be empty")
		}
		if len(*in.Name) > maxCategoryNameLen {
			return nil, models.NewValidationError("Name too long (max 100 characters)")
		}
		newSlug := slug.Generate(*in.Name)
		if newSlug == "" {
			return nil, models.NewValidationError("Name must contain at least one alphanumeric character")
		}
		taken, err := s.categoryRepo.NameOrSlugExists(ctx, *in.Name, newSlug, category.ID)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, models.NewConflictError("A category with this name or slug already exists")
		}
		category.Name = *in.Name
		category.Slug = newSlug
	}
	if in.Description != nil {
		if len(*in.Description) > maxDescriptionLen {
			return nil, models.NewValidationError("Description too long (max 1000 characters)")
		}
		category.Description = *in.Description
	}
	if in.Color != nil {
		category.Color = *in.Color
	}

	category.Posts = nil

	if err := s.categoryRepo.Update(ctx, category); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, models.NewConflictError("A category with this name or slug already exists")
		}
		return nil, err
	}
	return category, nil
}

func (s *CategoryService) DeleteCategory(ctx context.Context, id uint) error {
	if _, err := s.categoryRepo.GetByID(ctx, id); err != nil {
		if repository.IsNotFound(err) {
			return models.NewNotFoundError("Category", id)
		}
		return err
	}
	return s.categoryRepo.Delete(ctx, id)
}
