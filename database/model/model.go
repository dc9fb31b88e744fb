// Package model defines the persisted entities of the streamd catalog,
// credential, history and playlist stores.
package model

import "time"

type User struct {
	Id           int    `json:"id" gorm:"primaryKey;autoIncrement"`
	Username     string `json:"username" gorm:"uniqueIndex;not null"`
	Email        string `json:"email" gorm:"uniqueIndex;not null"`
	PasswordHash string `json:"-" gorm:"column:password_hash;not null"`
}

type Title struct {
	Id       int    `json:"id" gorm:"primaryKey;autoIncrement"`
	Title    string `json:"title" gorm:"not null"`
	Synopsis string `json:"synopsis" gorm:"not null"`
}

// ViewingHistory is an append-only log: repeated watches of the same
// title create new rows.
type ViewingHistory struct {
	Id        int       `json:"id" gorm:"primaryKey;autoIncrement"`
	UserId    int       `json:"user_id" gorm:"index;not null"`
	TitleId   int       `json:"title_id" gorm:"index;not null"`
	WatchedAt time.Time `json:"watched_at"`
}

type Playlist struct {
	Id     int    `json:"id" gorm:"primaryKey;autoIncrement"`
	Name   string `json:"name" gorm:"not null"`
	UserId int    `json:"user_id" gorm:"index;not null"`
}

// PlaylistTitle associates a title with a playlist. Position is the add
// order within the playlist, starting at 1.
type PlaylistTitle struct {
	Id         int `json:"id" gorm:"primaryKey;autoIncrement"`
	PlaylistId int `json:"playlist_id" gorm:"index;not null"`
	TitleId    int `json:"title_id" gorm:"not null"`
	Position   int `json:"position" gorm:"not null"`
}
