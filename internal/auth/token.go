package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/melodia-school/melodia-back/internal/config"
)

// IssueTokens creates the short-lived access token and the long-lived
// refresh token for a staff member.
func IssueTokens(cfg *config.Config, email string) (access, refresh string, err error) {
	secret := []byte(cfg.JWT.Secret)

	accessClaims := jwt.MapClaims{
		"email": email,
		"exp":   time.Now().Add(time.Duration(cfg.JWT.AccessExpireMin) * time.Minute).Unix(),
	}
	access, err = jwt.NewWithClaims(jwt.SigningMethodHS256, accessClaims).SignedString(secret)
	if err != nil {
		return "", "", err
	}

	refreshClaims := jwt.MapClaims{
		"email": email,
		"exp":   time.Now().Add(time.Duration(cfg.JWT.RefreshExpireHours) * time.Hour).Unix(),
		"type":  "refresh",
	}
	refresh, err = jwt.NewWithClaims(jwt.SigningMethodHS256, refreshClaims).SignedString(secret)
	if err != nil {
		return "", "", err
	}
	return access, refresh, nil
}
