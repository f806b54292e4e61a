// Package seed provides helpers to create demo data for the application
// database. These helpers are intended for development and testing only.
package seed

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"inkwell/internal/models"
	"inkwell/internal/slug"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Options configuration for the seeder
type Options struct {
	NumUsers    int
	NumPosts    int
	ShouldClean bool
}

// defaultCategories are always present after seeding so the frontend has a
// stable taxonomy to browse.
var defaultCategories = []models.Category{
	{Name: "Technology", Slug: "technology", Description: "Posts about technology and programming", Color: "#007BFF"},
	{Name: "Lifestyle", Slug: "lifestyle", Description: "Lifestyle and personal development", Color: "#28A745"},
	{Name: "Travel", Slug: "travel", Description: "Travel guides and experiences", Color: "#FFC107"},
	{Name: "Food", Slug: "food", Description: "Recipes and restaurant reviews", Color: "#DC3545"},
	{Name: "Health", Slug: "health", Description: "Health and wellness topics", Color: "#17A2B8"},
}

// Seeder populates the database with demo data.
type Seeder struct {
	db  *gorm.DB
	rnd *rand.Rand
}

// NewSeeder creates a Seeder bound to the provided Gorm DB.
func NewSeeder(db *gorm.DB) *Seeder {
	gofakeit.Seed(time.Now().UnixNano())
	return &Seeder{
		db:  db,
		rnd: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Seed populates the database with demo users, categories, posts and comments.
func (s *Seeder) Seed(opts Options) error {
	log.Printf("Starting database seeding with %d users and %d posts...", opts.NumUsers, opts.NumPosts)

	if opts.ShouldClean {
		if err := s.ClearAll(); err != nil {
			return fmt.Errorf("failed to clear existing data: %w", err)
		}
	}

	users, err := s.createUsers(opts.NumUsers)
	if err != nil {
		return fmt.Errorf("failed to create users: %w", err)
	}
	log.Printf("%d demo users created", len(users))

	categories, err := s.createCategories()
	if err != nil {
		return fmt.Errorf("failed to create categories: %w", err)
	}
	log.Printf("%d categories available", len(categories))

	posts, err := s.createPosts(users, categories, opts.NumPosts)
	if err != nil {
		return fmt.Errorf("failed to create posts: %w", err)
	}
	log.Printf("%d posts created", len(posts))

	numComments, err := s.createComments(users, posts)
	if err != nil {
		return fmt.Errorf("failed to create comments: %w", err)
	}
	log.Printf("%d comments created", numComments)

	log.Println("Seeding complete")
	return nil
}

// ClearAll removes all seeded rows in dependency order.
func (s *Seeder) ClearAll() error {
	tables := []string{"comments", "post_categories", "posts", "categories", "users"}
	for _, table := range tables {
		if err := s.db.Exec("DELETE FROM " + table).Error; err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}
	return nil
}

func (s *Seeder) createUsers(n int) ([]*models.User, error) {
	if n <= 0 {
		n = 10
	}

	// All demo accounts share the same password so any of them can be used
	// to log in during development.
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	users := make([]*models.User, 0, n)

	// A predictable first account for manual testing.
	admin := &models.User{
		Username:  "demo",
		Email:     "demo@inkwell.dev",
		Password:  string(hash),
		FirstName: "Demo",
		LastName:  "Writer",
		Bio:       "The resident demo account.",
		IsActive:  true,
	}
	if err := s.db.Create(admin).Error; err != nil {
		return nil, err
	}
	users = append(users, admin)

	for i := 1; i < n; i++ {
		user := &models.User{
			Username:  fmt.Sprintf("%s%d", gofakeit.Username(), gofakeit.Number(100, 999)),
			Email:     gofakeit.Email(),
			Password:  string(hash),
			FirstName: gofakeit.FirstName(),
			LastName:  gofakeit.LastName(),
			Bio:       gofakeit.Sentence(12),
			Avatar:    fmt.Sprintf("https://i.pravatar.cc/150?u=%s", gofakeit.UUID()),
			IsActive:  true,
		}
		if err := s.db.Create(user).Error; err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, nil
}

func (s *Seeder) createCategories() ([]*models.Category, error) {
	categories := make([]*models.Category, 0, len(defaultCategories))
	for i := range defaultCategories {
		category := defaultCategories[i]
		// Idempotent when categories already exist from a previous run.
		if err := s.db.Where("slug = ?", category.Slug).
			FirstOrCreate(&category).Error; err != nil {
			return nil, err
		}
		categories = append(categories, &category)
	}
	return categories, nil
}

func (s *Seeder) createPosts(users []*models.User, categories []*models.Category, n int) ([]*models.Post, error) {
	if n <= 0 {
		n = 30
	}

	posts := make([]*models.Post, 0, n)
	for i := 0; i < n; i++ {
		author := users[s.rnd.Intn(len(users))]
		title := gofakeit.Sentence(s.rnd.Intn(5) + 4)
		content := gofakeit.Paragraph(3, 5, 12, "\n\n")

		post := &models.Post{
			Title:       title,
			Slug:        fmt.Sprintf("%s-%d", slug.Generate(title), i),
			Content:     content,
			Excerpt:     gofakeit.Sentence(15),
			IsPublished: s.rnd.Intn(10) < 8, // ~80% published
			Views:       int64(s.rnd.Intn(500)),
			AuthorID:    author.ID,
		}

		// Realistic created_at spread over the last 90 days.
		daysBack := s.rnd.Intn(90)
		hoursBack := s.rnd.Intn(24)
		post.CreatedAt = time.Now().
			Add(-time.Duration(daysBack)*24*time.Hour - time.Duration(hoursBack)*time.Hour)

		if post.IsPublished {
			publishedAt := post.CreatedAt.Add(time.Duration(s.rnd.Intn(48)) * time.Hour)
			post.PublishedAt = &publishedAt
			post.FeaturedImage = fmt.Sprintf("https://picsum.photos/seed/%s/1200/630", gofakeit.UUID())
		}

		if err := s.db.Create(post).Error; err != nil {
			return nil, err
		}

		// One to three categories per post.
		numCats := s.rnd.Intn(3) + 1
		picked := s.rnd.Perm(len(categories))[:numCats]
		for _, ci := range picked {
			link := models.PostCategory{PostID: post.ID, CategoryID: categories[ci].ID}
			if err := s.db.Create(&link).Error; err != nil {
				return nil, err
			}
		}

		posts = append(posts, post)
	}
	return posts, nil
}

func (s *Seeder) createComments(users []*models.User, posts []*models.Post) (int, error) {
	total := 0
	for _, post := range posts {
		if !post.IsPublished {
			continue
		}
		numComments := s.rnd.Intn(6)
		for i := 0; i < numComments; i++ {
			comment := &models.Comment{
				Content:    gofakeit.Sentence(s.rnd.Intn(15) + 5),
				IsApproved: s.rnd.Intn(10) < 9, // a few held for moderation
				AuthorID:   users[s.rnd.Intn(len(users))].ID,
				PostID:     post.ID,
			}
			comment.CreatedAt = post.CreatedAt.Add(time.Duration(s.rnd.Intn(72)+1) * time.Hour)
			if err := s.db.Create(comment).Error; err != nil {
				return total, err
			}
			total++
		}
	}
	return total, nil
}
