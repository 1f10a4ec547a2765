package entity

// Post is a blog entry written by a User.
// AuthorID is a plain foreign key; the author is never loaded as an object graph.
type Post struct {
	ID       int64  `json:"id"`
	Title    string `json:"title" validate:"required,min=1,max=100"`
	Body     string `json:"body" validate:"required,min=1,max=1000"`
	AuthorID int64  `json:"author_id" validate:"min=1"`
}
