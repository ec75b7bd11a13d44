package controllers

import (
	"net/http"
	"regexp"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"github.com/Savin-AS94/hw05-final/models"
	"github.com/Savin-AS94/hw05-final/repository"
	"github.com/Savin-AS94/hw05-final/utils"
)

type AuthController struct {
	Users     *repository.UserRepo
	JWTSecret string
}

func NewAuthController(users *repository.UserRepo, secret string) *AuthController {
	return &AuthController{Users: users, JWTSecret: secret}
}

var usernamePattern = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9_]{2,29}$`)

type signupRequest struct {
	Username  string `form:"username" json:"username" binding:"required"`
	Email     string `form:"email" json:"email" binding:"required,email"`
	Password  string `form:"password" json:"password" binding:"required,min=6"`
	FirstName string `form:"first_name" json:"first_name"`
	LastName  string `form:"last_name" json:"last_name"`
}

func (ac *AuthController) Signup(c *gin.Context) {
	var input signupRequest
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !usernamePattern.MatchString(input.Username) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "username must start with a letter and contain only letters, numbers and underscores"})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not hash password"})
		return
	}

	user := models.User{
		Username:  input.Username,
		Email:     input.Email,
		Password:  string(hash),
		FirstName: input.FirstName,
		LastName:  input.LastName,
	}
	if err := ac.Users.Create(&user); err != nil {
		if err == repository.ErrDuplicate {
			c.JSON(http.StatusBadRequest, gin.H{"error": "username or email already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create user"})
		return
	}

	log.Info().Str("username", user.Username).Msg("user registered")
	c.JSON(http.StatusCreated, gin.H{"user": user})
}

// LoginForm is where unauthenticated requests land; it echoes the intended
// destination so a client can come back after logging in.
func (ac *AuthController) LoginForm(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"form": gin.H{"username": "", "password": ""},
		"next": c.Query("next"),
	})
}

type loginRequest struct {
	Username string `form:"username" json:"username" binding:"required"`
	Password string `form:"password" json:"password" binding:"required"`
}

// Login checks credentials and starts a session: the signed token goes into
// the auth cookie and into the response body for header-based clients.
func (ac *AuthController) Login(c *gin.Context) {
	var input loginRequest
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := ac.Users.ByUsername(input.Username)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}

	token, err := utils.GenerateToken(user.ID, user.Username, ac.JWTSecret)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not generate token"})
		return
	}

	c.SetCookie(utils.AuthCookie, token, 7*24*60*60, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{
		"token_type":   "Bearer",
		"access_token": token,
		"user":         user,
	})
}

func (ac *AuthController) Logout(c *gin.Context) {
	c.SetCookie(utils.AuthCookie, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}

type passwordChangeRequest struct {
	OldPassword string `form:"old_password" json:"old_password" binding:"required"`
	NewPassword string `form:"new_password" json:"new_password" binding:"required,min=6"`
}

func (ac *AuthController) PasswordChange(c *gin.Context) {
	claims := utils.GetUser(c)

	var input passwordChangeRequest
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := ac.Users.Get(claims.UserID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "error fetching user"})
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.OldPassword)); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "old password is incorrect"})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not hash password"})
		return
	}
	if err := ac.Users.UpdatePassword(user.ID, string(hash)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to change password"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "password changed"})
}
