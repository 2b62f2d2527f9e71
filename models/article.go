package models

import (
	"time"
)

type ArticleStatus string

const (
	ArticleDraft     ArticleStatus = "draft"
	ArticlePublished ArticleStatus = "published"
)

type Article struct {
	ID          uint          `json:"id" gorm:"primaryKey"`
	Title       string        `json:"title" gorm:"not null"`
	Description *string       `json:"description"`
	Author      *string       `json:"author"`
	ContentURL  *string       `json:"content_url"`
	PhotoURL    *string       `json:"photo_url"`
	Status      ArticleStatus `json:"status" gorm:"size:20;not null;default:'draft'"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}
