package router

import (
	"time"

	v1 "blogapi/api/v1"
	"blogapi/config"
	"blogapi/internal/auth"
	"blogapi/middleware"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Handlers bundles everything the route table needs.
type Handlers struct {
	Auth       *v1.AuthAPI
	Category   *v1.CategoryAPI
	Tag        *v1.TagAPI
	Post       *v1.PostAPI
	FriendLink *v1.FriendLinkAPI
	Media      *v1.MediaAPI
	Config     *v1.ConfigAPI
	Dashboard  *v1.DashboardAPI
	Session    *auth.SessionManager
}

// InitRouter wires the three route surfaces: /api/auth for the account
// lifecycle, /api/admin behind the auth middleware, and /api/blog for
// public reads. Uploaded files are served statically under /uploads.
func InitRouter(h *Handlers) *gin.Engine {
	r := gin.Default()

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.Static("/uploads", config.GlobalConfig.Upload.Path)

	authGroup := r.Group("/api/auth")
	{
		authGroup.POST("/register", h.Auth.Register)
		loginLimiter := middleware.LoginRateLimiter(config.RedisClient, 5, time.Minute)
		authGroup.POST("/login", loginLimiter, h.Auth.Login)
		authGroup.POST("/logout", h.Auth.Logout)
		authGroup.GET("/me", middleware.AuthMiddleware(h.Session), h.Auth.Me)
	}

	admin := r.Group("/api/admin")
	admin.Use(middleware.AuthMiddleware(h.Session))
	{
		admin.GET("/dashboard/stats", h.Dashboard.GetStats)

		admin.POST("/posts", h.Post.Create)
		admin.GET("/posts", h.Post.GetPage)
		admin.GET("/posts/:id", h.Post.GetByID)
		admin.PUT("/posts/:id", h.Post.Update)
		admin.DELETE("/posts/:id", h.Post.Delete)

		admin.POST("/categories", h.Category.Create)
		admin.GET("/categories", h.Category.GetPage)
		admin.GET("/categories/:id", h.Category.GetByID)
		admin.PUT("/categories/:id", h.Category.Update)
		admin.DELETE("/categories/:id", h.Category.Delete)

		admin.POST("/tags", h.Tag.Create)
		admin.GET("/tags", h.Tag.GetPage)
		admin.GET("/tags/:id", h.Tag.GetByID)
		admin.PUT("/tags/:id", h.Tag.Update)
		admin.DELETE("/tags/:id", h.Tag.Delete)

		admin.POST("/links", h.FriendLink.Create)
		admin.GET("/links", h.FriendLink.GetAll)
		admin.GET("/links/page", h.FriendLink.GetPage)
		admin.GET("/links/:id", h.FriendLink.GetByID)
		admin.PUT("/links/:id", h.FriendLink.Update)
		admin.DELETE("/links/:id", h.FriendLink.Delete)

		admin.POST("/media/upload", h.Media.Upload)
		admin.GET("/media", h.Media.GetPage)
		admin.GET("/media/recent", h.Media.GetRecent)
		admin.GET("/media/:id", h.Media.GetByID)
		admin.DELETE("/media/:id", h.Media.Delete)

		admin.GET("/config", h.Config.Get)
		admin.POST("/config", h.Config.Save)
		admin.GET("/config/site", h.Config.GetSite)
		admin.PUT("/config/site", h.Config.SaveSite)
	}

	blog := r.Group("/api/blog")
	{
		blog.GET("/posts", h.Post.PublicGetPage)
		blog.GET("/posts/slug/:slug", h.Post.GetBySlug)
		blog.POST("/posts/:id/view", h.Post.IncrementView)
		blog.GET("/posts/tag/:id", h.Post.PublicGetPageByTag)

		blog.GET("/categories", h.Category.GetAll)
		blog.GET("/categories/slug/:slug", h.Category.GetBySlug)
		blog.GET("/tags", h.Tag.GetAll)
		blog.GET("/tags/slug/:slug", h.Tag.GetBySlug)
		blog.GET("/links", h.FriendLink.GetVisible)
		blog.GET("/config/site", h.Config.GetSite)
	}

	return r
}
