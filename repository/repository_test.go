package repository

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Savin-AS94/hw05-final/config"
	"github.com/Savin-AS94/hw05-final/models"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// One connection keeps the in-memory database and its pragmas alive.
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.Exec("PRAGMA foreign_keys = ON").Error)

	require.NoError(t, config.Migrate(db))
	return db
}

func newUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()
	user := &models.User{
		Username: username,
		Email:    username + "@example.com",
		Password: "hash",
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func newPost(t *testing.T, db *gorm.DB, author *models.User, text string, group *models.Group) *models.Post {
	t.Helper()
	post := &models.Post{Text: text, AuthorID: author.ID}
	if group != nil {
		post.GroupID = &group.ID
	}
	require.NoError(t, db.Create(post).Error)
	return post
}

func TestFollowCreateIsIdempotent(t *testing.T) {
	db := testDB(t)
	follows := NewFollowRepo(db)
	user := newUser(t, db, "reader")
	author := newUser(t, db, "writer")

	require.NoError(t, follows.Create(user.ID, author.ID))
	require.NoError(t, follows.Create(user.ID, author.ID))

	var n int64
	require.NoError(t, db.Model(&models.Follow{}).Count(&n).Error)
	assert.Equal(t, int64(1), n)

	exists, err := follows.Exists(user.ID, author.ID)
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestFollowDeleteIsNoOpWhenAbsent(t *testing.T) {
	db := testDB(t)
	follows := NewFollowRepo(db)
	user := newUser(t, db, "reader")
	author := newUser(t, db, "writer")

	require.NoError(t, follows.Delete(user.ID, author.ID))

	require.NoError(t, follows.Create(user.ID, author.ID))
	require.NoError(t, follows.Delete(user.ID, author.ID))

	exists, err := follows.Exists(user.ID, author.ID)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestPostListingsNewestFirst(t *testing.T) {
	db := testDB(t)
	posts := NewPostRepo(db)
	author := newUser(t, db, "writer")

	old := &models.Post{Text: "old", AuthorID: author.ID, PubDate: time.Now().Add(-time.Hour)}
	require.NoError(t, db.Create(old).Error)
	fresh := &models.Post{Text: "fresh", AuthorID: author.ID, PubDate: time.Now()}
	require.NoError(t, db.Create(fresh).Error)

	all, err := posts.All()
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "fresh", all[0].Text)
	assert.Equal(t, "old", all[1].Text)
	assert.Equal(t, "writer", all[0].Author.Username)
}

func TestPostFeedsByGroupAuthorAndFollowed(t *testing.T) {
	db := testDB(t)
	posts := NewPostRepo(db)
	follows := NewFollowRepo(db)

	writer := newUser(t, db, "writer")
	other := newUser(t, db, "other")
	reader := newUser(t, db, "reader")

	group := &models.Group{Title: "Go", Slug: "go"}
	require.NoError(t, db.Create(group).Error)

	grouped := newPost(t, db, writer, "grouped", group)
	newPost(t, db, writer, "loose", nil)
	newPost(t, db, other, "foreign", nil)

	byGroup, err := posts.ByGroup(group.ID)
	require.NoError(t, err)
	require.Len(t, byGroup, 1)
	assert.Equal(t, grouped.ID, byGroup[0].ID)

	byAuthor, err := posts.ByAuthor(writer.ID)
	require.NoError(t, err)
	assert.Len(t, byAuthor, 2)

	require.NoError(t, follows.Create(reader.ID, writer.ID))
	feed, err := posts.ByFollowed(reader.ID)
	require.NoError(t, err)
	require.Len(t, feed, 2)
	for _, p := range feed {
		assert.Equal(t, writer.ID, p.AuthorID)
	}
}

func TestGroupDeleteKeepsPosts(t *testing.T) {
	db := testDB(t)
	posts := NewPostRepo(db)
	writer := newUser(t, db, "writer")

	group := &models.Group{Title: "Go", Slug: "go"}
	require.NoError(t, db.Create(group).Error)
	post := newPost(t, db, writer, "survives", group)

	require.NoError(t, db.Delete(&models.Group{}, group.ID).Error)

	got, err := posts.Get(post.ID)
	require.NoError(t, err)
	assert.Nil(t, got.GroupID)

	all, err := posts.All()
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestAuthorDeleteCascades(t *testing.T) {
	db := testDB(t)
	posts := NewPostRepo(db)
	writer := newUser(t, db, "writer")
	commenter := newUser(t, db, "commenter")

	post := newPost(t, db, writer, "doomed", nil)
	comment := &models.Comment{Text: "me too", PostID: post.ID, AuthorID: commenter.ID}
	require.NoError(t, db.Create(comment).Error)

	require.NoError(t, db.Delete(&models.User{}, writer.ID).Error)

	_, err := posts.Get(post.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	var comments int64
	require.NoError(t, db.Model(&models.Comment{}).Count(&comments).Error)
	assert.Equal(t, int64(0), comments)
}

func TestCommenterDeleteRemovesTheirComments(t *testing.T) {
	db := testDB(t)
	posts := NewPostRepo(db)
	writer := newUser(t, db, "writer")
	commenter := newUser(t, db, "commenter")

	post := newPost(t, db, writer, "stays", nil)
	comment := &models.Comment{Text: "bye", PostID: post.ID, AuthorID: commenter.ID}
	require.NoError(t, db.Create(comment).Error)

	require.NoError(t, db.Delete(&models.User{}, commenter.ID).Error)

	got, err := posts.Get(post.ID)
	require.NoError(t, err)
	assert.Equal(t, "stays", got.Text)

	var comments int64
	require.NoError(t, db.Model(&models.Comment{}).Count(&comments).Error)
	assert.Equal(t, int64(0), comments)
}

func TestPostUpdateDetachesGroup(t *testing.T) {
	db := testDB(t)
	posts := NewPostRepo(db)
	writer := newUser(t, db, "writer")

	group := &models.Group{Title: "Go", Slug: "go"}
	require.NoError(t, db.Create(group).Error)
	created := newPost(t, db, writer, "grouped", group)

	// Load through Get so the Group association is populated, the way the
	// edit handler sees the post.
	post, err := posts.Get(created.ID)
	require.NoError(t, err)
	require.NotNil(t, post.Group)

	post.GroupID = nil
	require.NoError(t, posts.Update(post))

	got, err := posts.Get(created.ID)
	require.NoError(t, err)
	assert.Nil(t, got.GroupID, "update must persist the group detachment")

	byGroup, err := posts.ByGroup(group.ID)
	require.NoError(t, err)
	assert.Empty(t, byGroup)
}

func TestPostDeleteRemovesComments(t *testing.T) {
	db := testDB(t)
	posts := NewPostRepo(db)
	comments := NewCommentRepo(db)
	writer := newUser(t, db, "writer")

	post := newPost(t, db, writer, "with comments", nil)
	require.NoError(t, comments.Create(&models.Comment{Text: "first", PostID: post.ID, AuthorID: writer.ID}))

	require.NoError(t, posts.Delete(post.ID))

	left, err := comments.ByPost(post.ID)
	require.NoError(t, err)
	assert.Empty(t, left)
}

func TestPostUpdateKeepsPubDate(t *testing.T) {
	db := testDB(t)
	posts := NewPostRepo(db)
	writer := newUser(t, db, "writer")

	published := time.Date(2023, 5, 1, 12, 0, 0, 0, time.UTC)
	post := &models.Post{Text: "before", AuthorID: writer.ID, PubDate: published}
	require.NoError(t, db.Create(post).Error)

	post.Text = "after"
	require.NoError(t, posts.Update(post))

	got, err := posts.Get(post.ID)
	require.NoError(t, err)
	assert.Equal(t, "after", got.Text)
	assert.True(t, got.PubDate.Equal(published))
}

func TestUserUniqueUsername(t *testing.T) {
	db := testDB(t)
	users := NewUserRepo(db)

	require.NoError(t, users.Create(&models.User{Username: "dup", Email: "a@example.com", Password: "x"}))
	err := users.Create(&models.User{Username: "dup", Email: "b@example.com", Password: "x"})
	assert.ErrorIs(t, err, ErrDuplicate)
}

func TestGroupBySlug(t *testing.T) {
	db := testDB(t)
	groups := NewGroupRepo(db)

	require.NoError(t, groups.Create(&models.Group{Title: "Go", Slug: "go"}))

	got, err := groups.BySlug("go")
	require.NoError(t, err)
	assert.Equal(t, "Go", got.Title)

	_, err = groups.BySlug("missing")
	assert.ErrorIs(t, err, ErrNotFound)
}
