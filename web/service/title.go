package service

import (
	"streamd/caching"
	"streamd/database"
	"streamd/database/model"
	"streamd/util/common"

	"gorm.io/gorm"
)

// TitleService is the catalog store. Titles are created by the seed
// command only; the HTTP surface is read-only.
type TitleService struct {
	db    *gorm.DB
	cache *caching.TitleCache
}

func NewTitleService(db *gorm.DB) *TitleService {
	return &TitleService{
		db:    db,
		cache: caching.NewTitleCache(),
	}
}

func (s *TitleService) Get(id int) (*model.Title, error) {
	if title, ok := s.cache.Get(id); ok {
		return title, nil
	}

	title := &model.Title{}
	err := s.db.First(title, id).Error
	if database.IsNotFound(err) {
		return nil, common.NotFoundf("title %d", id)
	} else if err != nil {
		return nil, err
	}

	s.cache.Set(title)
	return title, nil
}

func (s *TitleService) List() ([]model.Title, error) {
	titles := make([]model.Title, 0)
	err := s.db.Order("id").Find(&titles).Error
	if err != nil {
		return nil, err
	}
	return titles, nil
}

// Search matches the title column case-insensitively against the given
// substring. An empty query matches everything.
func (s *TitleService) Search(query string) ([]model.Title, error) {
	titles := make([]model.Title, 0)
	err := s.db.
		Where("LOWER(title) LIKE LOWER(?)", "%"+query+"%").
		Order("id").
		Find(&titles).Error
	if err != nil {
		return nil, err
	}
	return titles, nil
}

func (s *TitleService) Create(title, synopsis string) (*model.Title, error) {
	t := &model.Title{
		Title:    title,
		Synopsis: synopsis,
	}
	if err := s.db.Create(t).Error; err != nil {
		return nil, err
	}
	return t, nil
}

func (s *TitleService) Count() (int64, error) {
	var count int64
	err := s.db.Model(&model.Title{}).Count(&count).Error
	return count, err
}
