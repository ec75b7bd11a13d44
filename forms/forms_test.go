package forms

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func formContext(t *testing.T, values url.Values) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, err := http.NewRequest(http.MethodPost, "/", strings.NewReader(values.Encode()))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	c.Request = req
	return c
}

func TestPostFormRequiresText(t *testing.T) {
	form := &PostForm{Text: "   "}
	errs := form.Validate()
	assert.Contains(t, errs, "text")

	form = &PostForm{Text: "hello"}
	assert.Empty(t, form.Validate())
}

func TestBindPostForm(t *testing.T) {
	c := formContext(t, url.Values{"text": {"a new post"}, "group_id": {"3"}})
	form, errs := BindPostForm(c)
	require.Nil(t, errs)
	assert.Equal(t, "a new post", form.Text)
	require.NotNil(t, form.GroupID)
	assert.Equal(t, uint(3), *form.GroupID)
	assert.Nil(t, form.Image)
}

func TestBindPostFormEmptyText(t *testing.T) {
	c := formContext(t, url.Values{"text": {""}})
	_, errs := BindPostForm(c)
	require.NotNil(t, errs)
	assert.Contains(t, errs, "text")
}

func TestBindPostFormBadGroupID(t *testing.T) {
	c := formContext(t, url.Values{"text": {"fine"}, "group_id": {"not-a-number"}})
	_, errs := BindPostForm(c)
	require.NotNil(t, errs)
	assert.Contains(t, errs, "group_id")
}

func TestBindCommentFormMalformedBody(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, err := http.NewRequest(http.MethodPost, "/", strings.NewReader("not a multipart body"))
	require.NoError(t, err)
	// Multipart without a boundary cannot be parsed; that must come back as
	// a field error, not a silent pass.
	req.Header.Set("Content-Type", "multipart/form-data")
	c.Request = req

	_, errs := BindCommentForm(c)
	require.NotNil(t, errs)
	assert.Contains(t, errs, "text")
}

func TestBindCommentForm(t *testing.T) {
	c := formContext(t, url.Values{"text": {"nice post"}})
	form, errs := BindCommentForm(c)
	require.Nil(t, errs)
	assert.Equal(t, "nice post", form.Text)

	c = formContext(t, url.Values{"text": {"  "}})
	_, errs = BindCommentForm(c)
	require.NotNil(t, errs)
	assert.Contains(t, errs, "text")
}
