package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"

	"bloghub/internal/comment"
	"bloghub/internal/config"
	"bloghub/internal/post"
	"bloghub/internal/storage/memory"
	"bloghub/internal/storage/sqlite"
	"bloghub/internal/user"
	"bloghub/internal/web"
)

func main() {
	storageType := flag.String("storage", "sqlite", "storage backend: sqlite or memory")
	templates := flag.String("templates", "web/templates/*.html", "glob of HTML templates")
	staticDir := flag.String("static", "web/static", "directory of static assets")
	flag.Parse()

	config.LoadEnv()
	// fail fast: sessions cannot be issued without the signing secret
	config.GetEnv("JWT_SECRET")

	var userStore user.Store
	var postStore post.Store
	var commentStore comment.Store

	switch *storageType {
	case "sqlite":
		if err := sqlite.InitDB(config.GetEnvDefault("DB_PATH", "blog.db")); err != nil {
			log.Fatalf("failed to open database: %v", err)
		}
		if err := sqlite.Migrate(); err != nil {
			log.Fatalf("failed to migrate database: %v", err)
		}

		userStore = sqlite.NewUserSqliteStorage()
		postStore = sqlite.NewPostSqliteStorage()
		commentStore = sqlite.NewCommentSqliteStorage()

	case "memory":
		log.Println("Using in-memory storage; data is lost on shutdown")
		cs := memory.NewCommentMemoryStorage()
		userStore = memory.NewUserMemoryStorage()
		postStore = memory.NewPostMemoryStorage(cs)
		commentStore = cs

	default:
		log.Fatalf("unknown storage type: %s", *storageType)
	}

	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()
	r.LoadHTMLGlob(*templates)
	r.Static("/static", *staticDir)

	app := web.NewApp(userStore, postStore, commentStore)
	app.Register(r)

	port := config.GetEnvDefault("PORT", "8080")
	server := &http.Server{
		Addr:    ":" + port,
		Handler: r,
	}

	go func() {
		log.Printf("Server listening on http://localhost:%s/", port)
		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down...")

	if *storageType == "sqlite" {
		if err := sqlite.CloseDB(); err != nil {
			log.Printf("failed to close database: %v", err)
		}
	}

	if err := server.Shutdown(context.Background()); err != nil {
		log.Fatalf("server shutdown failed: %v", err)
	}

	log.Println("Server stopped cleanly")
}
