package auth

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"github.com/melodia-school/melodia-back/internal/config"
	"github.com/melodia-school/melodia-back/internal/db"
	"github.com/melodia-school/melodia-back/pkg/response"
)

var googleOauthConfig *oauth2.Config

func InitGoogle(cfg *config.Config) {
	googleOauthConfig = &oauth2.Config{
		RedirectURL:  cfg.Google.RedirectURL,
		ClientID:     cfg.Google.ClientID,
		ClientSecret: cfg.Google.ClientSecret,
		Scopes: []string{
			"openid",
			"https://www.googleapis.com/auth/userinfo.email",
		},
		Endpoint: google.Endpoint,
	}
}

// GoogleLoginHandler godoc
// @Summary      Sign in with Google
// @Description  Redirects to the Google consent screen
// @Tags         auth
// @Router       /auth/google/login [get]
func GoogleLoginHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		url := googleOauthConfig.AuthCodeURL("state")
		c.Redirect(http.StatusTemporaryRedirect, url)
	}
}

// GoogleCallbackHandler exchanges the OAuth code, resolves the Google
// account's email and issues tokens. The email must already belong to a
// staff row: Google sign-in never creates accounts.
func GoogleCallbackHandler(cfg *config.Config, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		code := c.Query("code")
		token, err := googleOauthConfig.Exchange(context.Background(), code)
		if err != nil {
			response.BadRequest(c, "failed to exchange token")
			return
		}

		resp, err := http.Get("https://www.googleapis.com/oauth2/v2/userinfo?access_token=" + token.AccessToken)
		if err != nil {
			response.BadRequest(c, "failed to get user info")
			return
		}
		defer resp.Body.Close()

		var userInfo struct {
			Email string `json:"email"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&userInfo); err != nil {
			response.BadRequest(c, "failed to parse user info")
			return
		}

		staff, err := db.GetStaffByEmail(context.Background(), userInfo.Email)
		if err != nil {
			logger.Warn("google sign-in for unknown staff", zap.String("email", userInfo.Email))
			response.Unauthorized(c, "no staff account for this Google account")
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
