package service

import (
	"time"

	"streamd/database/model"
	"streamd/util/common"

	"gorm.io/gorm"
)

// HistoryService is the append-only viewing-history ledger. Recording
// the same (user, title) pair twice creates two entries.
type HistoryService struct {
	db *gorm.DB
}

func NewHistoryService(db *gorm.DB) *HistoryService {
	return &HistoryService{db: db}
}

// Record appends a viewing event. Both referents must exist; on any
// failure no row is created.
func (s *HistoryService) Record(userId, titleId int) (*model.ViewingHistory, error) {
	entry := &model.ViewingHistory{
		UserId:    userId,
		TitleId:   titleId,
		WatchedAt: time.Now(),
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := requireExists(tx, &model.User{}, userId, "user"); err != nil {
			return err
		}
		if err := requireExists(tx, &model.Title{}, titleId, "title"); err != nil {
			return err
		}
		return tx.Create(entry).Error
	})
	if err != nil {
		return nil, err
	}
	return entry, nil
}

// ListByUser returns the user's viewing history, newest first.
func (s *HistoryService) ListByUser(userId int) ([]model.ViewingHistory, error) {
	if err := requireExists(s.db, &model.User{}, userId, "user"); err != nil {
		return nil, err
	}

	entries := make([]model.ViewingHistory, 0)
	err := s.db.
		Where("user_id = ?", userId).
		Order("id DESC").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

func (s *HistoryService) Count() (int64, error) {
	var count int64
	err := s.db.Model(&model.ViewingHistory{}).Count(&count).Error
	return count, err
}

// requireExists checks that a row of the given model with the given id
// exists, returning ErrNotFound otherwise.
func requireExists(tx *gorm.DB, m any, id int, kind string) error {
	var count int64
	err := tx.Model(m).Where("id = ?", id).Count(&count).Error
	if err != nil {
		return err
	}
	if count == 0 {
		return common.NotFoundf("%s %d", kind, id)
	}
	return nil
}
