package services

import (
	"errors"

	"quizbox/models"

	"gorm.io/gorm"
)

type ArticleService struct {
	db *gorm.DB
}

func NewArticleService(db *gorm.DB) *ArticleService {
	return &ArticleService{db: db}
}

type CreateArticleRequest struct {
	Title       string  `json:"title" binding:"required"`
	Description *string `json:"description"`
	Author      *string `json:"author"`
	ContentURL  *string `json:"content_url"`
	PhotoURL    *string `json:"photo_url"`
}

// ListArticles returns published articles only; drafts stay invisible.
func (s *ArticleService) ListArticles() ([]models.Article, error) {
	var articles []models.Article
	err := s.db.Where("status = ?", models.ArticlePublished).
		Order("id").Find(&articles).Error
	return articles, err
}

// GetArticle returns a published article or ErrArticleNotFound; a draft is
// indistinguishable from a missing article.
func (s *ArticleService) GetArticle(articleID uint) (*models.Article, error) {
	var article models.Article
	err := s.db.Where("id = ? AND status = ?", articleID, models.ArticlePublished).
		First(&article).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrArticleNotFound
		}
		return nil, err
	}
	return &article, nil
}

// CreateArticle always starts the article as a draft, whatever the input.
func (s *ArticleService) CreateArticle(req *CreateArticleRequest) (*models.Article, error) {
	article := models.Article{
		Title:       req.Title,
		Description: req.Description,
		Author:      req.Author,
		ContentURL:  req.ContentURL,
		PhotoURL:    req.PhotoURL,
		Status:      models.ArticleDraft,
	}
	if err := s.db.Create(&article).Error; err != nil {
		return nil, err
	}
	return &article, nil
}
