// Package service contains the business logic for posts, categories,
// comments and users.
package service

import (
	"inkwell/internal/models"
)

// PostView is the composed API shape of a post: the post row plus its
// flattened categories and the approved comment thread.
type PostView struct {
	*models.Post
	Categories []models.Category `json:"categories"`
	Comments   []models.Comment  `json:"comments"`
}

// PostList is a page of published posts together with the total count of
// published posts, so clients can paginate.
type PostList struct {
	Posts []*PostView `json:"posts"`
	Total int64       `json:"total"`
}

// CategoryView is a category plus its published posts.
type CategoryView struct {
	*models.Category
	Posts []*PostView `json:"posts"`
}

// UserView is a user profile plus their posts.
type UserView struct {
	*models.User
	Posts []*PostView `json:"posts"`
}

// ComposePost flattens the join rows into plain categories. Comments are
// whatever the repository preloaded (the approved thread, newest first).
func ComposePost(post *models.Post) *PostView {
	categories := make([]models.Category, 0, len(post.Categories))
	for _, link := range post.Categories {
		categories = append(categories, link.Category)
	}
	comments := post.Comments
	if comments == nil {
		comments = make([]models.Comment, 0)
	}
	return &PostView{Post: post, Categories: categories, Comments: comments}
}

// ComposePosts maps ComposePost over a slice.
func ComposePosts(posts []*models.Post) []*PostView {
	views := make([]*PostView, 0, len(posts))
	for _, p := range posts {
		views = append(views, ComposePost(p))
	}
	return views
}

// ComposeCategory flattens the category's join rows into post views.
func ComposeCategory(category *models.Category) *CategoryView {
	posts := make([]*PostView, 0, len(category.Posts))
	for _, link := range category.Posts {
		if link.Post == nil {
			continue
		}
		posts = append(posts, ComposePost(link.Post))
	}
	return &CategoryView{Category: category, Posts: posts}
}

// ComposeUser pairs a user with their composed posts.
func ComposeUser(user *models.User) *UserView {
	posts := make([]*PostView, 0, len(user.Posts))
	for i := range user.Posts {
		posts = append(posts, ComposePost(&user.Posts[i]))
	}
	return &UserView{User: user, Posts: posts}
}
