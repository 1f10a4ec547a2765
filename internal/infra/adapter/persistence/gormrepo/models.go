// Package gormrepo provides GORM-backed implementations of the blog repositories.
package gormrepo

import "newsblog/internal/domain/entity"

type userModel struct {
	ID      int64  `gorm:"primaryKey"`
	Name    string `gorm:"size:30;not null"`
	Surname string `gorm:"size:30;not null"`
	Age     int    `gorm:"not null"`
}

func (userModel) TableName() string { return "users" }

// Author only declares the posts.author_id foreign key for AutoMigrate. It is
// never preloaded; reads go through AuthorID.
type postModel struct {
	ID       int64      `gorm:"primaryKey"`
	Title    string     `gorm:"size:100;not null"`
	Body     string     `gorm:"size:1000;not null"`
	AuthorID int64      `gorm:"not null;index"`
	Author   *userModel `gorm:"foreignKey:AuthorID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}

func (postModel) TableName() string { return "posts" }

// Models lists the tables managed by AutoMigrate, parents first.
func Models() []any {
	return []any{&userModel{}, &postModel{}}
}

func (m *userModel) toEntity() *entity.User {
	return &entity.User{ID: m.ID, Name: m.Name, Surname: m.Surname, Age: m.Age}
}

func (m *postModel) toEntity() *entity.Post {
	return &entity.Post{ID: m.ID, Title: m.Title, Body: m.Body, AuthorID: m.AuthorID}
}
