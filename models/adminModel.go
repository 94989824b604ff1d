package models

// LoginData is the admin login payload. There are no shopper accounts;
// the one admin identity is configured through the environment.
type LoginData struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}
