// Package user serves the blog's /users endpoints.
package user

import "newsblog/internal/domain/entity"

type DTO struct {
	ID      int64  `json:"id" example:"1"`
	Name    string `json:"name" example:"Ivan"`
	Surname string `json:"surname" example:"Ivanov"`
	Age     int    `json:"age" example:"17"`
}

type CreateRequest struct {
	Name    string `json:"name" example:"Ivan"`
	Surname string `json:"surname" example:"Ivanov"`
	Age     int    `json:"age" example:"17"`
}

func toDTO(u *entity.User) DTO {
	return DTO{ID: u.ID, Name: u.Name, Surname: u.Surname, Age: u.Age}
}
