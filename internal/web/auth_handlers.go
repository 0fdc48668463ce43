package web

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"bloghub/internal/auth"
	"bloghub/internal/user"
	"bloghub/models"
)

func (app *App) showRegister(c *gin.Context) {
	c.HTML(http.StatusOK, "register.html", app.pageData(c, nil))
}

func (app *App) register(c *gin.Context) {
	email := strings.TrimSpace(c.PostForm("email"))
	name := strings.TrimSpace(c.PostForm("name"))
	password := c.PostForm("password")

	if email == "" || name == "" || password == "" {
		c.HTML(http.StatusOK, "register.html", app.pageData(c, gin.H{
			"formError": "All fields are required.",
			"formData":  gin.H{"email": email, "name": name},
		}))
		return
	}

	u, err := app.Users.Register(email, password, name)
	if errors.Is(err, user.ErrEmailTaken) {
		setFlash(c, "You've already signed up with that email, log in instead!")
		c.Redirect(http.StatusSeeOther, "/login")
		return
	}
	if err != nil {
		app.serverError(c, err)
		return
	}

	app.InfoLog.Printf("Registered user %q (ID %d)", u.Email, u.ID)

	// auto-login the fresh account
	if err := app.startSession(c, u); err != nil {
		app.ErrorLog.Printf("Failed to start session for user %d: %v", u.ID, err)
		c.Redirect(http.StatusSeeOther, "/login")
		return
	}

	setFlash(c, "Logged in successfully.")
	c.Redirect(http.StatusSeeOther, "/")
}

func (app *App) showLogin(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", app.pageData(c, nil))
}

func (app *App) login(c *gin.Context) {
	email := strings.TrimSpace(c.PostForm("email"))
	password := c.PostForm("password")

	u, err := app.Users.Authenticate(email, password)
	if err != nil {
		if errors.Is(err, user.ErrInvalidCredentials) {
			// no reason disclosed, the form just comes back
			c.HTML(http.StatusOK, "login.html", app.pageData(c, gin.H{
				"formData": gin.H{"email": email},
			}))
			return
		}
		app.serverError(c, err)
		return
	}

	if err := app.startSession(c, u); err != nil {
		app.serverError(c, err)
		return
	}

	app.InfoLog.Printf("Login successful for user %q (ID %d)", u.Email, u.ID)
	c.Redirect(http.StatusSeeOther, "/")
}

func (app *App) logout(c *gin.Context) {
	auth.ClearSessionCookie(c)
	c.Redirect(http.StatusSeeOther, "/")
}

func (app *App) startSession(c *gin.Context, u *models.User) error {
	token, err := auth.IssueToken(u.ID)
	if err != nil {
		return err
	}
	auth.SetSessionCookie(c, token)
	return nil
}
