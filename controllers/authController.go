package controllers

import (
	"log"
	"net/http"
	"os"
	"time"

	"github.com/fabihanawal/98hns/models"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const (
	// Standard response messages
	msgInvalidInput          = "invalid input"
	msgInvalidCredentials    = "invalid username or password"
	msgFailedToGenerateToken = "failed to generate token"
	msgAdminNotConfigured    = "admin login is not configured"
)

func sendJSONResponse(ctx *gin.Context, status int, data gin.H) {
	ctx.JSON(status, data)
}

func sendErrorResponse(ctx *gin.Context, status int, message string) {
	sendJSONResponse(ctx, status, gin.H{"message": message})
}

func comparePasswords(hashedPassword, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
}

func generateAdminJWT(username string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"username": username,
		"role":     "admin",
		"iat":      time.Now().Unix(),
		"exp":      time.Now().Add(time.Hour * 24).Unix(),
	})

	jwtSecret := os.Getenv("JWT_SECRET")
	return token.SignedString([]byte(jwtSecret))
}

// Login checks the credentials against the single admin identity from
// the environment and issues a short-lived admin token. The gate is
// entirely external to the cart and booking logic.
func Login(ctx *gin.Context) {
	var loginData models.LoginData
	if err := ctx.ShouldBindJSON(&loginData); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	adminUsername := os.Getenv("ADMIN_USERNAME")
	adminPasswordHash := os.Getenv("ADMIN_PASSWORD_HASH")
	if adminUsername == "" || adminPasswordHash == "" {
		log.Println("ADMIN_USERNAME or ADMIN_PASSWORD_HASH is not set")
		sendErrorResponse(ctx, http.StatusInternalServerError, msgAdminNotConfigured)
		return
	}

	if loginData.Username != adminUsername {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidCredentials)
		return
	}

	if err := comparePasswords(adminPasswordHash, loginData.Password); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidCredentials)
		return
	}

	tokenString, err := generateAdminJWT(loginData.Username)
	if err != nil {
		log.Println("JWT generation error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgFailedToGenerateToken)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"token": tokenString})
}
