package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/Savin-AS94/hw05-final/events"
	"github.com/Savin-AS94/hw05-final/models"
	"github.com/Savin-AS94/hw05-final/pagination"
	"github.com/Savin-AS94/hw05-final/repository"
	"github.com/Savin-AS94/hw05-final/utils"
)

type ProfileController struct {
	Users    *repository.UserRepo
	Posts    *repository.PostRepo
	Follows  *repository.FollowRepo
	Events   *events.Publisher
	PageSize int
}

func NewProfileController(users *repository.UserRepo, posts *repository.PostRepo,
	follows *repository.FollowRepo, publisher *events.Publisher, pageSize int) *ProfileController {
	return &ProfileController{
		Users:    users,
		Posts:    posts,
		Follows:  follows,
		Events:   publisher,
		PageSize: pageSize,
	}
}

// Profile shows an author's paginated posts, their total post count and
// whether the requester already follows them (false for anonymous).
func (pfc *ProfileController) Profile(c *gin.Context) {
	author, ok := pfc.loadAuthor(c)
	if !ok {
		return
	}

	posts, err := pfc.Posts.ByAuthor(author.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "error fetching posts"})
		return
	}
	page := pagination.Paginate(posts, pagination.ParsePage(c.Query("page")), pfc.PageSize)

	following := false
	if user := utils.GetUser(c); user != nil {
		following, _ = pfc.Follows.Exists(user.UserID, author.ID)
	}

	c.JSON(http.StatusOK, gin.H{
		"author":     author,
		"posts":      page.Items,
		"pagination": page,
		"post_count": page.TotalItems,
		"following":  following,
	})
}

// FollowIndex is the requester's curated feed: posts by every author they
// follow, newest first.
func (pfc *ProfileController) FollowIndex(c *gin.Context) {
	user := utils.GetUser(c)

	posts, err := pfc.Posts.ByFollowed(user.UserID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "error fetching feed"})
		return
	}

	page := pagination.Paginate(posts, pagination.ParsePage(c.Query("page")), pfc.PageSize)
	c.JSON(http.StatusOK, gin.H{
		"title":      "Posts by authors you follow",
		"posts":      page.Items,
		"pagination": page,
	})
}

// Follow subscribes the requester to the author. Self-follow is a silent
// no-op; repeating the action never creates a second row.
func (pfc *ProfileController) Follow(c *gin.Context) {
	user := utils.GetUser(c)
	author, ok := pfc.loadAuthor(c)
	if !ok {
		return
	}

	if author.ID != user.UserID {
		if err := pfc.Follows.Create(user.UserID, author.ID); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to follow"})
			return
		}
		pfc.Events.UserFollowed(user.UserID, author.ID)
		log.Info().Str("user", user.Username).Str("author", author.Username).Msg("followed")
	}

	c.Redirect(http.StatusFound, "/profile/"+author.Username+"/")
}

// Unfollow drops the subscription if it exists and redirects either way.
func (pfc *ProfileController) Unfollow(c *gin.Context) {
	user := utils.GetUser(c)
	author, ok := pfc.loadAuthor(c)
	if !ok {
		return
	}

	if err := pfc.Follows.Delete(user.UserID, author.ID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to unfollow"})
		return
	}
	c.Redirect(http.StatusFound, "/profile/"+author.Username+"/")
}

func (pfc *ProfileController) loadAuthor(c *gin.Context) (*models.User, bool) {
	user, err := pfc.Users.ByUsername(c.Param("username"))
	if err == repository.ErrNotFound {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return nil, false
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "error fetching user"})
		return nil, false
	}
	return user, true
}
