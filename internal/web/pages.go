package web

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (app *App) about(c *gin.Context) {
	c.HTML(http.StatusOK, "about.html", app.pageData(c, nil))
}

func (app *App) contact(c *gin.Context) {
	c.HTML(http.StatusOK, "contact.html", app.pageData(c, nil))
}
