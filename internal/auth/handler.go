package auth

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/melodia-school/melodia-back/internal/config"
	"github.com/melodia-school/melodia-back/internal/db"
	"github.com/melodia-school/melodia-back/pkg/response"
)

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type tokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	Email        string `json:"email"`
}

// LoginHandler godoc
// @Summary      Staff login
// @Description  Exchanges staff credentials for an access/refresh token pair
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  loginRequest  true  "Credentials"
// @Success      200   {object}  response.Body
// @Failure      401   {object}  response.Body
// @Router       /auth/login [post]
func LoginHandler(cfg *config.Config, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req loginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			response.BadRequest(c, "invalid request")
			return
		}

		staff, err := db.GetStaffByEmail(context.Background(), req.Email)
		if err != nil {
			response.Unauthorized(c, "invalid credentials")
			return
		}
		if bcrypt.CompareHashAndPassword([]byte(staff.PasswordHash), []byte(req.Password)) != nil {
			response.Unauthorized(c, "invalid credentials")
			return
		}

		access, refresh, err := IssueTokens(cfg, staff.Email)
		if err != nil {
			logger.Error("sign tokens", zap.Error(err))
			response.Internal(c, "could not issue tokens")
			return
		}
		response.OK(c, tokenPair{AccessToken: access, RefreshToken: refresh, Email: staff.Email})
	}
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// RefreshHandler godoc
// @Summary      Refresh tokens
// @Description  Exchanges a valid refresh token for a new token pair
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  refreshRequest  true  "Refresh token"
// @Success      200   {object}  response.Body
// @Failure      401   {object}  response.Body
// @Router       /auth/refresh [post]
func RefreshHandler(cfg *config.Config, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req refreshRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			response.BadRequest(c, "missing refresh token")
			return
		}

		token, err := jwt.Parse(req.RefreshToken, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(cfg.JWT.Secret), nil
		})
		if err != nil || !token.Valid {
			response.Unauthorized(c, "invalid refresh token")
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok || claims["type"] != "refresh" {
			response.Unauthorized(c, "invalid refresh token type")
			return
		}
		email, ok := claims["email"].(string)
		if !ok {
			response.Unauthorized(c, "invalid claims")
			return
		}

		access, refresh, err := IssueTokens(cfg, email)
		if err != nil {
			logger.Error("sign tokens", zap.Error(err))
			response.Internal(c, "could not issue tokens")
			return
		}
		response.OK(c, tokenPair{AccessToken: access, RefreshToken: refresh, Email: email})
	}
}

// HashPassword is used by the staff bootstrap path.
func HashPassword(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
