package middleware

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Savin-AS94/hw05-final/utils"
)

// Authenticate resolves the requester from the auth cookie or a Bearer
// header and stashes the claims on the context. Anonymous requests pass
// through untouched; guarding is LoginRequired's job.
func Authenticate(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := ""
		if cookie, err := c.Cookie(utils.AuthCookie); err == nil {
			token = cookie
		} else if header := c.GetHeader("Authorization"); header != "" {
			parts := strings.SplitN(header, " ", 2)
			if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
				token = parts[1]
			}
		}

		if token != "" {
			if claims := utils.ParseToken(token, secret); claims != nil {
				c.Set(string(utils.UserContextKey), claims)
			}
		}

		c.Next()
	}
}

// LoginRequired bounces anonymous requests to the login page, preserving the
// intended destination in the next parameter.
func LoginRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if utils.GetUser(c) == nil {
			next := url.QueryEscape(c.Request.URL.RequestURI())
			c.Redirect(http.StatusFound, "/auth/login/?next="+next)
			c.Abort()
			return
		}
		c.Next()
	}
}
