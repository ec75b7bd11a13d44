package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/Savin-AS94/hw05-final/events"
	"github.com/Savin-AS94/hw05-final/forms"
	"github.com/Savin-AS94/hw05-final/metrics"
	"github.com/Savin-AS94/hw05-final/models"
	"github.com/Savin-AS94/hw05-final/pagination"
	"github.com/Savin-AS94/hw05-final/repository"
	"github.com/Savin-AS94/hw05-final/storage"
	"github.com/Savin-AS94/hw05-final/utils"
)

type PostController struct {
	Posts    *repository.PostRepo
	Groups   *repository.GroupRepo
	Comments *repository.CommentRepo
	Images   storage.ImageStore
	Events   *events.Publisher
	PageSize int
}

func NewPostController(posts *repository.PostRepo, groups *repository.GroupRepo,
	comments *repository.CommentRepo, images storage.ImageStore,
	publisher *events.Publisher, pageSize int) *PostController {
	return &PostController{
		Posts:    posts,
		Groups:   groups,
		Comments: comments,
		Images:   images,
		Events:   publisher,
		PageSize: pageSize,
	}
}

// Index lists all posts, newest first.
func (pc *PostController) Index(c *gin.Context) {
	posts, err := pc.Posts.All()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "error fetching posts"})
		return
	}

	page := pagination.Paginate(posts, pagination.ParsePage(c.Query("page")), pc.PageSize)
	c.JSON(http.StatusOK, gin.H{
		"title":      "Latest updates on the site",
		"posts":      page.Items,
		"pagination": page,
	})
}

// GroupPosts lists a group's posts, 404 on unknown slug.
func (pc *PostController) GroupPosts(c *gin.Context) {
	group, err := pc.Groups.BySlug(c.Param("slug"))
	if err == repository.ErrNotFound {
		c.JSON(http.StatusNotFound, gin.H{"error": "group not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "error fetching group"})
		return
	}

	posts, err := pc.Posts.ByGroup(group.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "error fetching posts"})
		return
	}

	page := pagination.Paginate(posts, pagination.ParsePage(c.Query("page")), pc.PageSize)
	c.JSON(http.StatusOK, gin.H{
		"group":      group,
		"posts":      page.Items,
		"pagination": page,
	})
}

// PostDetail shows one post with its comments, the author's post count and
// an empty comment form.
func (pc *PostController) PostDetail(c *gin.Context) {
	post, ok := pc.loadPost(c)
	if !ok {
		return
	}

	comments, err := pc.Comments.ByPost(post.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "error fetching comments"})
		return
	}
	postCount, _ := pc.Posts.CountByAuthor(post.AuthorID)

	c.JSON(http.StatusOK, gin.H{
		"post":       post,
		"comments":   comments,
		"post_count": postCount,
		"form":       gin.H{"text": ""},
	})
}

// CreateForm renders the empty post form.
func (pc *PostController) CreateForm(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"form": gin.H{"text": "", "group_id": nil, "image": nil},
	})
}

// Create validates the submission, assigns the acting user as author and
// redirects to their profile.
func (pc *PostController) Create(c *gin.Context) {
	user := utils.GetUser(c)

	form, errs := forms.BindPostForm(c)
	if errs == nil {
		errs = forms.Errors{}
	}
	if form.GroupID != nil {
		if _, err := pc.Groups.Get(*form.GroupID); err != nil {
			errs["group_id"] = "unknown group"
		}
	}
	if len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"form": gin.H{"text": form.Text}, "errors": errs})
		return
	}

	imagePath := ""
	if form.Image != nil {
		path, err := pc.saveImage(form)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"errors": forms.Errors{"image": err.Error()}})
			return
		}
		imagePath = path
	}

	post := models.Post{
		Text:     form.Text,
		AuthorID: user.UserID,
		GroupID:  form.GroupID,
		Image:    imagePath,
	}
	if err := pc.Posts.Create(&post); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create post"})
		return
	}

	metrics.PostsCreated.Inc()
	pc.Events.PostCreated(&post, user.Username)
	log.Info().Uint("post_id", post.ID).Str("author", user.Username).Msg("post created")

	c.Redirect(http.StatusFound, "/profile/"+user.Username+"/")
}

// EditForm renders the prefilled form; any requester other than the author
// is sent to the post's detail page without an error.
func (pc *PostController) EditForm(c *gin.Context) {
	post, ok := pc.loadPost(c)
	if !ok {
		return
	}
	if post.AuthorID != utils.GetUser(c).UserID {
		c.Redirect(http.StatusFound, postDetailURL(post.ID))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"form":    gin.H{"text": post.Text, "group_id": post.GroupID, "image": post.Image},
		"is_edit": true,
	})
}

// Edit applies the author's changes and redirects to the detail page.
func (pc *PostController) Edit(c *gin.Context) {
	post, ok := pc.loadPost(c)
	if !ok {
		return
	}
	if post.AuthorID != utils.GetUser(c).UserID {
		c.Redirect(http.StatusFound, postDetailURL(post.ID))
		return
	}

	form, errs := forms.BindPostForm(c)
	if errs == nil {
		errs = forms.Errors{}
	}
	if form.GroupID != nil {
		if _, err := pc.Groups.Get(*form.GroupID); err != nil {
			errs["group_id"] = "unknown group"
		}
	}
	if len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"form": gin.H{"text": form.Text}, "errors": errs, "is_edit": true})
		return
	}

	post.Text = form.Text
	post.GroupID = form.GroupID
	if form.Image != nil {
		path, err := pc.saveImage(form)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"errors": forms.Errors{"image": err.Error()}})
			return
		}
		post.Image = path
	}

	if err := pc.Posts.Update(post); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update post"})
		return
	}
	c.Redirect(http.StatusFound, postDetailURL(post.ID))
}

// Delete removes the author's own post; anyone else gets a forbidden page.
func (pc *PostController) Delete(c *gin.Context) {
	user := utils.GetUser(c)
	post, ok := pc.loadPost(c)
	if !ok {
		return
	}
	if post.AuthorID != user.UserID {
		c.JSON(http.StatusForbidden, gin.H{"error": "you can only delete your own posts"})
		return
	}

	if err := pc.Posts.Delete(post.ID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete post"})
		return
	}
	log.Info().Uint("post_id", post.ID).Str("author", user.Username).Msg("post deleted")
	c.Redirect(http.StatusFound, "/profile/"+user.Username+"/")
}

// AddComment validates the comment and attaches it to the post. Invalid
// submissions come back with field errors instead of being dropped.
func (pc *PostController) AddComment(c *gin.Context) {
	user := utils.GetUser(c)
	post, ok := pc.loadPost(c)
	if !ok {
		return
	}

	form, errs := forms.BindCommentForm(c)
	if len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"errors": errs})
		return
	}

	comment := models.Comment{
		Text:     form.Text,
		PostID:   post.ID,
		AuthorID: user.UserID,
	}
	if err := pc.Comments.Create(&comment); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to add comment"})
		return
	}
	c.Redirect(http.StatusFound, postDetailURL(post.ID))
}

func (pc *PostController) loadPost(c *gin.Context) (*models.Post, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "post not found"})
		return nil, false
	}
	post, err := pc.Posts.Get(uint(id))
	if err == repository.ErrNotFound {
		c.JSON(http.StatusNotFound, gin.H{"error": "post not found"})
		return nil, false
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "error fetching post"})
		return nil, false
	}
	return post, true
}

func (pc *PostController) saveImage(form *forms.PostForm) (string, error) {
	ext, err := storage.ExtensionFor(form.Image.Header.Get("Content-Type"))
	if err != nil {
		return "", err
	}

	src, err := form.Image.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	key := "posts/" + uuid.New().String() + ext
	return pc.Images.Save(key, src, form.Image.Header.Get("Content-Type"))
}

func postDetailURL(id uint) string {
	return "/posts/" + strconv.FormatUint(uint64(id), 10) + "/"
}
