package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"

	"github.com/Savin-AS94/hw05-final/cache"
	"github.com/Savin-AS94/hw05-final/controllers"
	"github.com/Savin-AS94/hw05-final/events"
	"github.com/Savin-AS94/hw05-final/middleware"
	"github.com/Savin-AS94/hw05-final/repository"
	"github.com/Savin-AS94/hw05-final/storage"
)

// Deps carries everything the handlers need; main assembles it once.
type Deps struct {
	DB         *gorm.DB
	JWTSecret  string
	PageSize   int
	CacheTTL   time.Duration
	Cache      cache.Store
	Images     storage.ImageStore
	Events     *events.Publisher
	AdminToken string
	MediaRoot  string
}

func SetupRoutes(r *gin.Engine, d Deps) {
	posts := repository.NewPostRepo(d.DB)
	users := repository.NewUserRepo(d.DB)
	groups := repository.NewGroupRepo(d.DB)
	comments := repository.NewCommentRepo(d.DB)
	follows := repository.NewFollowRepo(d.DB)

	postController := controllers.NewPostController(posts, groups, comments, d.Images, d.Events, d.PageSize)
	profileController := controllers.NewProfileController(users, posts, follows, d.Events, d.PageSize)
	authController := controllers.NewAuthController(users, d.JWTSecret)
	adminController := controllers.NewAdminController(d.Cache, d.AdminToken)

	r.Use(middleware.CountRequests())
	r.Use(middleware.Authenticate(d.JWTSecret))

	// Anonymous-allowed pages. The index is the only cached page, mirroring
	// the fixed 20-second response cache the site always had.
	r.GET("/", middleware.PageCache(d.Cache, d.CacheTTL), postController.Index)
	r.GET("/group/:slug/", postController.GroupPosts)
	r.GET("/profile/:username/", profileController.Profile)
	r.GET("/posts/:id/", postController.PostDetail)

	protected := r.Group("", middleware.LoginRequired())
	{
		protected.GET("/create/", postController.CreateForm)
		protected.POST("/create/", postController.Create)
		protected.GET("/posts/:id/edit/", postController.EditForm)
		protected.POST("/posts/:id/edit/", postController.Edit)
		protected.GET("/posts/:id/delete/", postController.Delete)
		protected.POST("/posts/:id/delete/", postController.Delete)
		protected.POST("/posts/:id/comment/", postController.AddComment)
		protected.GET("/follow/", profileController.FollowIndex)
		protected.GET("/profile/:username/follow/", profileController.Follow)
		protected.GET("/profile/:username/unfollow/", profileController.Unfollow)
	}

	auth := r.Group("/auth")
	{
		auth.POST("/signup/", authController.Signup)
		auth.GET("/login/", authController.LoginForm)
		auth.POST("/login/", authController.Login)
		auth.POST("/logout/", authController.Logout)
		auth.POST("/password_change/", middleware.LoginRequired(), authController.PasswordChange)
	}

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.DELETE("/internal/cache/", adminController.FlushCache)

	if d.MediaRoot != "" {
		r.Static("/media", d.MediaRoot)
	}
}
