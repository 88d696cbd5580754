package model

import "github.com/golang-jwt/jwt/v5"

// Session - данные игрока после создания комнаты или входа
type Session struct {
	RoomID      string
	PlayerID    string
	AccessToken string
}

type PlayerClaims struct {
	RoomID   string `json:"room_id"`
	PlayerID string `json:"player_id"`
	jwt.RegisteredClaims
}
