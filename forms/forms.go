// Package forms validates and extracts post/comment submissions. Forms know
// nothing about the acting user, the caller assigns authorship.
package forms

import (
	"mime/multipart"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

// Errors maps a field name to its validation message.
type Errors map[string]string

// PostForm carries a post submission. Image and group are optional.
type PostForm struct {
	Text    string
	GroupID *uint
	Image   *multipart.FileHeader
}

// BindPostForm reads a multipart/form-urlencoded submission off the request.
// A malformed group_id is reported as a field error, not a bind failure.
func BindPostForm(c *gin.Context) (*PostForm, Errors) {
	form := &PostForm{Text: c.PostForm("text")}
	errs := Errors{}

	if raw := c.PostForm("group_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			errs["group_id"] = "group reference must be a number"
		} else {
			gid := uint(id)
			form.GroupID = &gid
		}
	}

	if file, err := c.FormFile("image"); err == nil {
		form.Image = file
	}

	if verrs := form.Validate(); len(verrs) > 0 {
		for k, v := range verrs {
			errs[k] = v
		}
	}
	if len(errs) > 0 {
		return form, errs
	}
	return form, nil
}

func (f *PostForm) Validate() Errors {
	errs := Errors{}
	if strings.TrimSpace(f.Text) == "" {
		errs["text"] = "text is required"
	}
	return errs
}

// CommentForm carries a comment submission. The target post and the author
// are assigned by the handler.
type CommentForm struct {
	Text string `form:"text" json:"text"`
}

func BindCommentForm(c *gin.Context) (*CommentForm, Errors) {
	form := &CommentForm{}
	if err := c.ShouldBind(form); err != nil {
		return form, Errors{"text": "could not read submission"}
	}
	if errs := form.Validate(); len(errs) > 0 {
		return form, errs
	}
	return form, nil
}

func (f *CommentForm) Validate() Errors {
	errs := Errors{}
	if strings.TrimSpace(f.Text) == "" {
		errs["text"] = "text is required"
	}
	return errs
}
