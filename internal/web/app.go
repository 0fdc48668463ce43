package web

import (
	"log"
	"net/http"
	"os"
	"strconv"

	"github.com/gin-gonic/gin"

	"bloghub/internal/auth"
	"bloghub/internal/comment"
	"bloghub/internal/post"
	"bloghub/internal/user"
)

type App struct {
	Users    user.Store
	Posts    post.Store
	Comments comment.Store

	InfoLog  *log.Logger
	ErrorLog *log.Logger
}

func NewApp(users user.Store, posts post.Store, comments comment.Store) *App {
	return &App{
		Users:    users,
		Posts:    posts,
		Comments: comments,
		InfoLog:  log.New(os.Stdout, "INFO\t", log.Ldate|log.Ltime),
		ErrorLog: log.New(os.Stderr, "ERROR\t", log.Ldate|log.Ltime|log.Lshortfile),
	}
}

// pageData builds the template data every page shares: the resolved
// identity and the pending flash notice, plus page-specific extras.
func (app *App) pageData(c *gin.Context, extra gin.H) gin.H {
	u := auth.CurrentUser(c)
	data := gin.H{
		"loggedIn": u != nil,
		"flash":    popFlash(c),
	}
	if u != nil {
		data["currentUser"] = u
	}
	for k, v := range extra {
		data[k] = v
	}
	return data
}

func (app *App) notFound(c *gin.Context) {
	c.HTML(http.StatusNotFound, "error.html", gin.H{"error": "page not found"})
}

func (app *App) serverError(c *gin.Context, err error) {
	app.ErrorLog.Printf("%s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	c.HTML(http.StatusInternalServerError, "error.html", gin.H{"error": "something went wrong"})
}

func parseID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
