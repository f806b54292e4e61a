package service

import (
	"context"
	"errors"
	"testing"

	"inkwell/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// postRepoStub is a stub for repository.PostRepository.
type postRepoStub struct {
	createFn                  func(context.Context, *models.Post, []uint) error
	getByIDFn                 func(context.Context, uint) (*models.Post, error)
	getBySlugFn               func(context.Context, string) (*models.Post, error)
	listPublishedFn           func(context.Context, int, int) ([]*models.Post, int64, error)
	listByAuthorFn            func(context.Context, uint, int, int) ([]*models.Post, error)
	listPublishedByCategoryFn func(context.Context, uint, int, int) ([]*models.Post, error)
	slugExistsFn              func(context.Context, string, uint) (bool, error)
	updateFn                  func(context.Context, *models.Post, []uint, bool) error
	incrementViewsFn          func(context.Context, uint) error
	deleteFn                  func(context.Context, uint) error
}

func (s *postRepoStub) Create(ctx context.Context, post *models.Post, categoryIDs []uint) error {
	return s.createFn(ctx, post, categoryIDs)
}
func (s *postRepoStub) GetByID(ctx context.Context, id uint) (*models.Post, error) {
	return s.getByIDFn(ctx, id)
}
func (s *postRepoStub) GetBySlug(ctx context.Context, slug string) (*models.Post, error) {
	return s.getBySlugFn(ctx, slug)
}
func (s *postRepoStub) ListPublished(ctx context.Context, limit, offset int) ([]*models.Post, int64, error) {
	return s.listPublishedFn(ctx, limit, offset)
}
func (s *postRepoStub) ListByAuthor(ctx context.Context, authorID uint, limit, offset int) ([]*models.Post, error) {
	return s.listByAuthorFn(ctx, authorID, limit, offset)
}
func (s *postRepoStub) ListPublishedByCategory(ctx context.Context, categoryID uint, limit, offset int) ([]*models.Post, error) {
	return s.listPublishedByCategoryFn(ctx, categoryID, limit, offset)
}
func (s *postRepoStub) SlugExists(ctx context.Context, slug string, excludeID uint) (bool, error) {
	return s.slugExistsFn(ctx, slug, excludeID)
}
func (s *postRepoStub) Update(ctx context.Context, post *models.Post, categoryIDs []uint, replaceCategories bool) error {
	return s.updateFn(ctx, post, categoryIDs, replaceCategories)
}
func (s *postRepoStub) IncrementViews(ctx context.Context, id uint) error {
	return s.incrementViewsFn(ctx, id)
}
func (s *postRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}

func noopPostRepo() *postRepoStub {
	return &postRepoStub{
		createFn:        func(_ context.Context, _ *models.Post, _ []uint) error { return nil },
		getByIDFn:       func(_ context.Context, _ uint) (*models.Post, error) { return &models.Post{}, nil },
		getBySlugFn:     func(_ context.Context, _ string) (*models.Post, error) { return &models.Post{}, nil },
		listPublishedFn: func(_ context.Context, _, _ int) ([]*models.Post, int64, error) { return nil, 0, nil },
		listByAuthorFn:  func(_ context.Context, _ uint, _, _ int) ([]*models.Post, error) { return nil, nil },
		listPublishedByCategoryFn: func(_ context.Context, _ uint, _, _ int) ([]*models.Post, error) {
			return nil, nil
		},
		slugExistsFn:     func(_ context.Context, _ string, _ uint) (bool, error) { return false, nil },
		updateFn:         func(_ context.Context, _ *models.Post, _ []uint, _ bool) error { return nil },
		incrementViewsFn: func(_ context.Context, _ uint) error { return nil },
		deleteFn:         func(_ context.Context, _ uint) error { return nil },
	}
}

// categoryRepoStub is a stub for repository.CategoryRepository.
type categoryRepoStub struct {
	createFn           func(context.Context, *models.Category) error
	getByIDFn          func(context.Context, uint) (*models.Category, error)
	getBySlugFn        func(context.Context, string) (*models.Category, error)
	listFn             func(context.Context) ([]*models.Category, error)
	nameOrSlugExistsFn func(context.Context, string, string, uint) (bool, error)
	updateFn           func(context.Context, *models.Category) error
	deleteFn           func(context.Context, uint) error
}

func (s *categoryRepoStub) Create(ctx context.Context, category *models.Category) error {
	return s.createFn(ctx, category)
}
func (s *categoryRepoStub) GetByID(ctx context.Context, id uint) (*models.Category, error) {
	return s.getByIDFn(ctx, id)
}
func (s *categoryRepoStub) GetBySlug(ctx context.Context, slug string) (*models.Category, error) {
	return s.getBySlugFn(ctx, slug)
}
func (s *categoryRepoStub) List(ctx context.Context) ([]*models.Category, error) {
	return s.listFn(ctx)
}
func (s *categoryRepoStub) NameOrSlugExists(ctx context.Context, name, slug string, excludeID uint) (bool, error) {
	return s.nameOrSlugExistsFn(ctx, name, slug, excludeID)
}
func (s *categoryRepoStub) Update(ctx context.Context, category *models.Category) error {
	return s.updateFn(ctx, category)
}
func (s *categoryRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}

func noopCategoryRepo() *categoryRepoStub {
	return &categoryRepoStub{
		createFn:           func(_ context.Context, _ *models.Category) error { return nil },
		getByIDFn:          func(_ context.Context, _ uint) (*models.Category, error) { return &models.Category{}, nil },
		getBySlugFn:        func(_ context.Context, _ string) (*models.Category, error) { return &models.Category{}, nil },
		listFn:             func(_ context.Context) ([]*models.Category, error) { return nil, nil },
		nameOrSlugExistsFn: func(_ context.Context, _, _ string, _ uint) (bool, error) { return false, nil },
		updateFn:           func(_ context.Context, _ *models.Category) error { return nil },
		deleteFn:           func(_ context.Context, _ uint) error { return nil },
	}
}

// commentRepoStub is a stub for repository.CommentRepository.
type commentRepoStub struct {
	createFn             func(context.Context, *models.Comment) error
	getByIDFn            func(context.Context, uint) (*models.Comment, error)
	listApprovedByPostFn func(context.Context, uint) ([]*models.Comment, error)
	updateFn             func(context.Context, *models.Comment) error
	deleteFn             func(context.Context, uint) error
}

func (s *commentRepoStub) Create(ctx context.Context, comment *models.Comment) error {
	return s.createFn(ctx, comment)
}
func (s *commentRepoStub) GetByID(ctx context.Context, id uint) (*models.Comment, error) {
	return s.getByIDFn(ctx, id)
}
func (s *commentRepoStub) ListApprovedByPost(ctx context.Context, postID uint) ([]*models.Comment, error) {
	return s.listApprovedByPostFn(ctx, postID)
}
func (s *commentRepoStub) Update(ctx context.Context, comment *models.Comment) error {
	return s.updateFn(ctx, comment)
}
func (s *commentRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}

func noopCommentRepo() *commentRepoStub {
	return &commentRepoStub{
		createFn:             func(_ context.Context, _ *models.Comment) error { return nil },
		getByIDFn:            func(_ context.Context, _ uint) (*models.Comment, error) { return &models.Comment{}, nil },
		listApprovedByPostFn: func(_ context.Context, _ uint) ([]*models.Comment, error) { return nil, nil },
		updateFn:             func(_ context.Context, _ *models.Comment) error { return nil },
		deleteFn:             func(_ context.Context, _ uint) error { return nil },
	}
}

// userRepoStub is a stub for repository.UserRepository.
type userRepoStub struct {
	createFn                  func(context.Context, *models.User) error
	getByIDFn                 func(context.Context, uint) (*models.User, error)
	getByIDWithPostsFn        func(context.Context, uint) (*models.User, error)
	getByEmailFn              func(context.Context, string) (*models.User, error)
	getByUsernameFn           func(context.Context, string) (*models.User, error)
	existsByUsernameOrEmailFn func(context.Context, string, string) (bool, error)
	listFn                    func(context.Context, int, int) ([]*models.User, error)
	updateFn                  func(context.Context, *models.User) error
	deleteFn                  func(context.Context, uint) error
}

func (s *userRepoStub) Create(ctx context.Context, user *models.User) error {
	return s.createFn(ctx, user)
}
func (s *userRepoStub) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.getByIDFn(ctx, id)
}
func (s *userRepoStub) GetByIDWithPosts(ctx context.Context, id uint) (*models.User, error) {
	return s.getByIDWithPostsFn(ctx, id)
}
func (s *userRepoStub) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.getByEmailFn(ctx, email)
}
func (s *userRepoStub) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return s.getByUsernameFn(ctx, username)
}
func (s *userRepoStub) ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error) {
	return s.existsByUsernameOrEmailFn(ctx, username, email)
}
func (s *userRepoStub) List(ctx context.Context, limit, offset int) ([]*models.User, error) {
	return s.listFn(ctx, limit, offset)
}
func (s *userRepoStub) Update(ctx context.Context, user *models.User) error {
	return s.updateFn(ctx, user)
}
func (s *userRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}

func noopUserRepo() *userRepoStub {
	return &userRepoStub{
		createFn:                  func(_ context.Context, _ *models.User) error { return nil },
		getByIDFn:                 func(_ context.Context, _ uint) (*models.User, error) { return &models.User{}, nil },
		getByIDWithPostsFn:        func(_ context.Context, _ uint) (*models.User, error) { return &models.User{}, nil },
		getByEmailFn:              func(_ context.Context, _ string) (*models.User, error) { return nil, nil },
		getByUsernameFn:           func(_ context.Context, _ string) (*models.User, error) { return nil, nil },
		existsByUsernameOrEmailFn: func(_ context.Context, _, _ string) (bool, error) { return false, nil },
		listFn:                    func(_ context.Context, _, _ int) ([]*models.User, error) { return nil, nil },
		updateFn:                  func(_ context.Context, _ *models.User) error { return nil },
		deleteFn:                  func(_ context.Context, _ uint) error { return nil },
	}
}

// assertAppError asserts that err is an AppError with the given code.
func assertAppError(t *testing.T, err error, code string) {
	t.Helper()
	require.Error(t, err)
	var appErr *models.AppError
	require.True(t, errors.As(err, &appErr), "expected AppError, got %T: %v", err, err)
	assert.Equal(t, code, appErr.Code)
}

func assertValidationError(t *testing.T, err error) {
	t.Helper()
	assertAppError(t, err, models.CodeValidation)
}

func assertConflictError(t *testing.T, err error) {
	t.Helper()
	assertAppError(t, err, models.CodeConflict)
}

func assertForbiddenError(t *testing.T, err error) {
	t.Helper()
	assertAppError(t, err, models.CodeForbidden)
}

func assertNotFoundError(t *testing.T, err error) {
	t.Helper()
	assertAppError(t, err, models.CodeNotFound)
}
