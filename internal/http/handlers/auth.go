package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"ebus/internal/domain/models"
	"ebus/internal/http/middleware"
	"ebus/internal/repositories"
	"ebus/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

const tokenTTL = 24 * time.Hour

// AuthHandler owns users and tokens. The booking core never touches it;
// it only consumes the user id carried in the token.
type AuthHandler struct {
	Users     repositories.UserRepo
	JWTSecret []byte
}

// AuthUser is the user payload returned by auth endpoints.
type AuthUser struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// POST /api/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Email == "" || strings.TrimSpace(req.Password) == "" {
		respondError(c, http.StatusBadRequest, "validation_error", "email and password are required")
		return
	}

	if _, err := h.Users.FindByEmail(c.Request.Context(), req.Email); err == nil {
		respondError(c, http.StatusConflict, "conflict", "email already registered")
		return
	} else if !errors.Is(err, mongo.ErrNoDocuments) {
		respondError(c, http.StatusInternalServerError, "internal_error", "failed to check user")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "internal_error", "failed to hash password")
		return
	}

	user, err := h.Users.Insert(c.Request.Context(), models.User{
		Name:         strings.TrimSpace(req.Name),
		Email:        req.Email,
		PasswordHash: string(hash),
		CreatedAt:    utils.NowUTC(),
	})
	if err != nil {
		respondError(c, http.StatusInternalServerError, "internal_error", "failed to save user")
		return
	}

	token, err := h.signToken(user.ID.Hex())
	if err != nil {
		respondError(c, http.StatusInternalServerError, "internal_error", "failed to create token")
		return
	}

	utils.LogEvent(middleware.GetRequestID(c), "auth", "register", "user_id="+user.ID.Hex())
	c.JSON(http.StatusCreated, gin.H{"token": token, "user": toAuthUser(user)})
}

// POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	user, err := h.Users.FindByEmail(c.Request.Context(), req.Email)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			respondError(c, http.StatusUnauthorized, "unauthorized", "wrong email or password")
			return
		}
		respondError(c, http.StatusInternalServerError, "internal_error", "failed to query user")
		return
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		respondError(c, http.StatusUnauthorized, "unauthorized", "wrong email or password")
		return
	}

	token, err := h.signToken(user.ID.Hex())
	if err != nil {
		respondError(c, http.StatusInternalServerError, "internal_error", "failed to create token")
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token, "user": toAuthUser(user)})
}

// GET /api/auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	user, err := h.Users.FindByID(c.Request.Context(), middleware.GetUserID(c))
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			respondError(c, http.StatusUnauthorized, "unauthorized", "unknown user")
			return
		}
		respondError(c, http.StatusInternalServerError, "internal_error", "failed to load user")
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": toAuthUser(user)})
}

func (h *AuthHandler) signToken(userID string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": userID,
		"exp":     time.Now().Add(tokenTTL).Unix(),
	})
	return token.SignedString(h.JWTSecret)
}

func toAuthUser(u models.User) AuthUser {
	return AuthUser{ID: u.ID.Hex(), Name: u.Name, Email: u.Email}
}
