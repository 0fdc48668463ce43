package web

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"bloghub/internal/auth"
	"bloghub/internal/gravatar"
	"bloghub/internal/post"
	"bloghub/models"
)

// commentView is a comment joined with its author for display.
type commentView struct {
	Text      string
	Author    string
	AvatarURL string
}

func (app *App) home(c *gin.Context) {
	posts, err := app.Posts.All()
	if err != nil {
		// the listing never fails visibly; an empty blog is shown instead
		app.ErrorLog.Printf("failed to list posts: %v", err)
		posts = nil
	}

	c.HTML(http.StatusOK, "index.html", app.pageData(c, gin.H{"posts": posts}))
}

func (app *App) showPost(c *gin.Context) {
	p, ok := app.lookupPost(c)
	if !ok {
		return
	}
	app.renderPost(c, p, "")
}

func (app *App) addComment(c *gin.Context) {
	p, ok := app.lookupPost(c)
	if !ok {
		return
	}

	// form validation comes before the auth gate; an invalid submission
	// just brings the page back, whoever sent it
	text := strings.TrimSpace(c.PostForm("comment"))
	if text == "" {
		app.renderPost(c, p, "Comment cannot be empty.")
		return
	}

	if auth.CurrentUser(c) == nil {
		setFlash(c, "You need to login to comment.")
		c.Redirect(http.StatusSeeOther, "/login")
		return
	}

	if _, err := app.Comments.Create(c.Request.Context(), p.ID, text); err != nil {
		app.serverError(c, err)
		return
	}

	// same page again, with the new comment visible
	app.renderPost(c, p, "")
}

func (app *App) newPostForm(c *gin.Context) {
	c.HTML(http.StatusOK, "make-post.html", app.pageData(c, gin.H{"editing": false}))
}

func (app *App) createPost(c *gin.Context) {
	in, formErr := bindPostInput(c)
	if formErr == "" {
		_, err := app.Posts.Create(c.Request.Context(), in)
		switch {
		case errors.Is(err, post.ErrDuplicateTitle):
			formErr = "A post with that title already exists."
		case err != nil:
			app.serverError(c, err)
			return
		default:
			c.Redirect(http.StatusSeeOther, "/")
			return
		}
	}

	c.HTML(http.StatusOK, "make-post.html", app.pageData(c, gin.H{
		"editing":   false,
		"formError": formErr,
		"formData":  in,
	}))
}

func (app *App) editPostForm(c *gin.Context) {
	p, ok := app.lookupPost(c)
	if !ok {
		return
	}

	c.HTML(http.StatusOK, "make-post.html", app.pageData(c, gin.H{
		"editing": true,
		"postID":  p.ID,
		"formData": post.Input{
			Title:    p.Title,
			Subtitle: p.Subtitle,
			Body:     p.Body,
			ImgURL:   p.ImgURL,
		},
	}))
}

func (app *App) updatePost(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		app.notFound(c)
		return
	}

	in, formErr := bindPostInput(c)
	if formErr == "" {
		_, err = app.Posts.Update(id, in)
		switch {
		case errors.Is(err, post.ErrNotFound):
			app.notFound(c)
			return
		case errors.Is(err, post.ErrDuplicateTitle):
			formErr = "A post with that title already exists."
		case err != nil:
			app.serverError(c, err)
			return
		default:
			c.Redirect(http.StatusSeeOther, fmt.Sprintf("/post/%d", id))
			return
		}
	}

	c.HTML(http.StatusOK, "make-post.html", app.pageData(c, gin.H{
		"editing":   true,
		"postID":    id,
		"formError": formErr,
		"formData":  in,
	}))
}

func (app *App) deletePost(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		app.notFound(c)
		return
	}

	err = app.Posts.Delete(id)
	if err != nil && !errors.Is(err, post.ErrNotFound) {
		app.serverError(c, err)
		return
	}
	// deleting a post that is already gone is a no-op

	c.Redirect(http.StatusSeeOther, "/")
}

// lookupPost resolves the :id route param to a post, rendering a 404 page
// and returning ok=false when it cannot.
func (app *App) lookupPost(c *gin.Context) (*models.BlogPost, bool) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		app.notFound(c)
		return nil, false
	}

	p, err := app.Posts.ByID(id)
	if errors.Is(err, post.ErrNotFound) {
		app.notFound(c)
		return nil, false
	}
	if err != nil {
		app.serverError(c, err)
		return nil, false
	}

	return p, true
}

func (app *App) renderPost(c *gin.Context, p *models.BlogPost, formError string) {
	comments, err := app.Comments.ByPost(p.ID)
	if err != nil {
		app.serverError(c, err)
		return
	}

	views := make([]commentView, 0, len(comments))
	for _, cm := range comments {
		v := commentView{Text: cm.Text, Author: "unknown"}
		if author, err := app.Users.ByID(cm.AuthorID); err == nil {
			v.Author = author.Name
			v.AvatarURL = gravatar.URL(author.Email)
		}
		views = append(views, v)
	}

	c.HTML(http.StatusOK, "post.html", app.pageData(c, gin.H{
		"post":      p,
		"comments":  views,
		"formError": formError,
	}))
}

// bindPostInput reads the post form fields and reports a validation
// message when a required one is missing.
func bindPostInput(c *gin.Context) (post.Input, string) {
	in := post.Input{
		Title:    strings.TrimSpace(c.PostForm("title")),
		Subtitle: strings.TrimSpace(c.PostForm("subtitle")),
		Body:     strings.TrimSpace(c.PostForm("body")),
		ImgURL:   strings.TrimSpace(c.PostForm("img_url")),
	}

	if in.Title == "" || in.Subtitle == "" || in.Body == "" || in.ImgURL == "" {
		return in, "All fields are required."
	}
	return in, ""
}
