// Package post serves the blog's /posts and /search endpoints and the greeting.
package post

import "newsblog/internal/domain/entity"

type DTO struct {
	ID       int64  `json:"id" example:"1"`
	Title    string `json:"title" example:"Post 1"`
	Body     string `json:"body" example:"1. Lorem ipsum dolor sit amet"`
	AuthorID int64  `json:"author_id" example:"1"`
}

type CreateRequest struct {
	Title    string `json:"title" example:"Post 1"`
	Body     string `json:"body" example:"1. Lorem ipsum dolor sit amet"`
	AuthorID int64  `json:"author_id" example:"1"`
}

func toDTO(p *entity.Post) DTO {
	return DTO{ID: p.ID, Title: p.Title, Body: p.Body, AuthorID: p.AuthorID}
}

func toDTOs(posts []*entity.Post) []DTO {
	out := make([]DTO, 0, len(posts))
	for _, p := range posts {
		out = append(out, toDTO(p))
	}
	return out
}
