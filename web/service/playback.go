package service

import (
	"time"

	"streamd/config"
	"streamd/util/common"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const ticketTTL = 4 * time.Hour

// PlaybackTicket is what a client presents to the stream tier. The
// token is an HS256 JWT carrying the title id and session id.
type PlaybackTicket struct {
	TitleId   int    `json:"title_id"`
	SessionId string `json:"session_id"`
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expires_at"`
}

// PlaybackService validates playback requests against the catalog and
// issues signed playback tickets.
type PlaybackService struct {
	titleService *TitleService
}

func NewPlaybackService(titleService *TitleService) *PlaybackService {
	return &PlaybackService{titleService: titleService}
}

func (s *PlaybackService) Start(titleId int) (*PlaybackTicket, error) {
	title, err := s.titleService.Get(titleId)
	if err != nil {
		return nil, err
	}

	sessionId := uuid.NewString()
	expiresAt := time.Now().Add(ticketTTL)

	claims := jwt.MapClaims{
		"title_id": title.Id,
		"sid":      sessionId,
		"exp":      expiresAt.Unix(),
		"iat":      time.Now().Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte(config.GetTicketSecret()))
	if err != nil {
		return nil, err
	}

	return &PlaybackTicket{
		TitleId:   title.Id,
		SessionId: sessionId,
		Token:     token,
		ExpiresAt: expiresAt.Unix(),
	}, nil
}

// ParseTicket verifies a playback token and returns the title id it was
// issued for.
func (s *PlaybackService) ParseTicket(token string) (int, error) {
	parsed, err := jwt.Parse(token, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, common.NewErrorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(config.GetTicketSecret()), nil
	})
	if err != nil {
		return 0, err
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok || !parsed.Valid {
		return 0, common.NewError("invalid playback token")
	}
	titleId, ok := claims["title_id"].(float64)
	if !ok {
		return 0, common.NewError("playback token has no title id")
	}
	return int(titleId), nil
}
