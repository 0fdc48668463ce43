package web

import (
	"github.com/gin-gonic/gin"

	"bloghub/internal/auth"
)

// Register mounts all routes on the engine. Session restore runs on every
// request; the post management routes sit behind the admin guard.
func (app *App) Register(r *gin.Engine) {
	r.Use(auth.Middleware(app.Users))

	r.GET("/", app.home)

	r.GET("/register", app.showRegister)
	r.POST("/register", app.register)
	r.GET("/login", app.showLogin)
	r.POST("/login", app.login)
	r.GET("/logout", app.logout)

	r.GET("/post/:id", app.showPost)
	r.POST("/post/:id", app.addComment)

	r.GET("/about", app.about)
	r.GET("/contact", app.contact)

	admin := r.Group("/", auth.RequireAdmin())
	admin.GET("/new-post", app.newPostForm)
	admin.POST("/new-post", app.createPost)
	admin.GET("/edit-post/:id", app.editPostForm)
	admin.POST("/edit-post/:id", app.updatePost)
	admin.GET("/delete/:id", app.deletePost)
}
