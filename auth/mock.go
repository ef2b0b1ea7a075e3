// Package auth implements the demo authentication layer. There is no real
// identity provider: sign-in and sign-up fabricate a user, persist the
// session and hand back a JWT. Guests get the same treatment with a
// short-lived identity.
package auth

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/HA2345567/buttonhaus/middleware"
	"github.com/HA2345567/buttonhaus/models"
	"github.com/HA2345567/buttonhaus/store"
)

const tokenTTL = 24 * time.Hour

type SignInRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type SignUpRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Name     string `json:"name" binding:"required"`
}

// POST /auth/signin
func SignIn(sessions *store.AuthStore, jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req SignInRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		user := models.User{
			UID:         fmt.Sprintf("user_%d", time.Now().UnixMilli()),
			Email:       req.Email,
			DisplayName: displayNameFromEmail(req.Email),
			Role:        "user",
			CreatedAt:   time.Now(),
		}
		sessions.Put(user)

		respondWithToken(c, user, jwtSecret)
	}
}

// POST /auth/signup
func SignUp(sessions *store.AuthStore, jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req SignUpRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		user := models.User{
			UID:         fmt.Sprintf("user_%d", time.Now().UnixMilli()),
			Email:       req.Email,
			DisplayName: req.Name,
			Role:        "user",
			CreatedAt:   time.Now(),
		}
		sessions.Put(user)

		respondWithToken(c, user, jwtSecret)
	}
}

// POST /auth/guest
func CreateGuestUser(sessions *store.AuthStore, jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		guestID := "guest_" + generateRandomString(16)

		user := models.User{
			UID:         guestID,
			DisplayName: "Guest",
			Role:        "guest",
			CreatedAt:   time.Now(),
		}
		sessions.Put(user)

		respondWithToken(c, user, jwtSecret)
	}
}

// POST /user/signout
func SignOut(sessions *store.AuthStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		sessions.Delete(userID)
		c.JSON(http.StatusOK, gin.H{"message": "Signed out"})
	}
}

// GET /user/me
func CurrentUser(sessions *store.AuthStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		user, found := sessions.Get(userID)
		if !found {
			c.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
			return
		}
		c.JSON(http.StatusOK, user)
	}
}

func respondWithToken(c *gin.Context, user models.User, jwtSecret string) {
	expiresAt := time.Now().Add(tokenTTL)
	token, err := issueToken(user, jwtSecret, expiresAt)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Token generation failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user":       user,
		"token":      token,
		"expires_at": expiresAt,
	})
}

func issueToken(user models.User, secret string, expiresAt time.Time) (string, error) {
	claims := jwt.MapClaims{
		"user_id": user.UID,
		"role":    user.Role,
		"exp":     expiresAt.Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

func displayNameFromEmail(email string) string {
	if at := strings.Index(email, "@"); at > 0 {
		return email[:at]
	}
	return email
}

func generateRandomString(n int) string {
	bytes := make([]byte, n)
	if _, err := rand.Read(bytes); err != nil {
		return "rand_guest"
	}
	return hex.EncodeToString(bytes)
}
