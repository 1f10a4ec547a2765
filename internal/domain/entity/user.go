// Package entity defines the core domain entities and validation logic for the application.
// It contains the blog records (User, Post) and the news records (NewsSource, NewsItem),
// along with their declarative field constraints and domain-specific errors.
package entity

// User is a blog author.
type User struct {
	ID      int64  `json:"id"`
	Name    string `json:"name" validate:"required,min=1,max=30"`
	Surname string `json:"surname" validate:"required,min=1,max=30"`
	Age     int    `json:"age" validate:"min=1,max=119"`
}
