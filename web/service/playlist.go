package service

import (
	"streamd/database"
	"streamd/database/model"
	"streamd/util/common"

	"gorm.io/gorm"
)

// PlaylistService manages user-owned ordered collections of titles.
type PlaylistService struct {
	db *gorm.DB
}

func NewPlaylistService(db *gorm.DB) *PlaylistService {
	return &PlaylistService{db: db}
}

func (s *PlaylistService) Create(userId int, name string) (*model.Playlist, error) {
	playlist := &model.Playlist{
		Name:   name,
		UserId: userId,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := requireExists(tx, &model.User{}, userId, "user"); err != nil {
			return err
		}
		return tx.Create(playlist).Error
	})
	if err != nil {
		return nil, err
	}
	return playlist, nil
}

// AddTitle appends a title to a playlist. The association is persisted
// with the next free position, starting at 1.
func (s *PlaylistService) AddTitle(playlistId, titleId int) (*model.PlaylistTitle, error) {
	entry := &model.PlaylistTitle{
		PlaylistId: playlistId,
		TitleId:    titleId,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := requireExists(tx, &model.Playlist{}, playlistId, "playlist"); err != nil {
			return err
		}
		if err := requireExists(tx, &model.Title{}, titleId, "title"); err != nil {
			return err
		}

		var maxPosition int
		err := tx.Model(&model.PlaylistTitle{}).
			Where("playlist_id = ?", playlistId).
			Select("COALESCE(MAX(position), 0)").
			Scan(&maxPosition).Error
		if err != nil {
			return err
		}

		entry.Position = maxPosition + 1
		return tx.Create(entry).Error
	})
	if err != nil {
		return nil, err
	}
	return entry, nil
}

// Get returns a playlist and its entries in position order.
func (s *PlaylistService) Get(playlistId int) (*model.Playlist, []model.PlaylistTitle, error) {
	playlist := &model.Playlist{}
	err := s.db.First(playlist, playlistId).Error
	if database.IsNotFound(err) {
		return nil, nil, common.NotFoundf("playlist %d", playlistId)
	} else if err != nil {
		return nil, nil, err
	}

	entries := make([]model.PlaylistTitle, 0)
	err = s.db.
		Where("playlist_id = ?", playlistId).
		Order("position").
		Find(&entries).Error
	if err != nil {
		return nil, nil, err
	}
	return playlist, entries, nil
}
