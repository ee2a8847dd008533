package router

import (
	"log/slog"
	"net/http"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/polkiloo/bakery/internal/config"
	pkgAuth "github.com/polkiloo/bakery/internal/pkg/auth"
	"github.com/polkiloo/bakery/internal/server/http/dto"
	"github.com/polkiloo/bakery/internal/server/http/handlers"
	"github.com/polkiloo/bakery/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.BakeryFacade, signer pkgAuth.Signer, cfg *config.Config, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.MaxMultipartMemory = cfg.MaxUploadSize

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	if len(cfg.AllowedOrigins) > 0 {
		engine.Use(middleware.CORS(cfg.AllowedOrigins))
	}
	engine.Use(middleware.DecompressRequest(cfg.MaxUploadSize))
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	cookie := middleware.NewSessionCookie(signer, cfg.SessionTTL)
	engine.Use(middleware.LoadSession(facade, cookie))

	productHandler := handlers.NewProductHandler(facade, cfg.MaxUploadSize)
	orderHandler := handlers.NewOrderHandler(facade)
	authHandler := handlers.NewAuthHandler(facade, cookie)

	engine.GET("/products", productHandler.List)
	engine.POST("/order", orderHandler.Place)
	engine.POST("/login", authHandler.Login)
	engine.GET("/check-auth", authHandler.CheckAuth)

	admin := engine.Group("")
	admin.Use(middleware.RequireAdmin(facade))
	admin.POST("/add-product", productHandler.Add)
	admin.POST("/edit-product/:id", productHandler.Edit)
	admin.DELETE("/delete-product/:id", productHandler.Delete)
	admin.GET("/orders", orderHandler.List)
	admin.POST("/update-order/:id", orderHandler.UpdateStatus)
	admin.GET("/export-orders", orderHandler.Export)

	engine.StaticFS("/uploads", newFilesOnly(cfg.UploadDir))
	engine.NoRoute(staticFiles(cfg.PublicDir))

	return engine
}

// staticFiles serves the storefront assets for any unmatched GET or HEAD request.
func staticFiles(dir string) gin.HandlerFunc {
	files := http.FileServer(newFilesOnly(dir))
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead {
			c.JSON(http.StatusNotFound, dto.MessageResponse{Message: "Not found"})
			return
		}
		files.ServeHTTP(c.Writer, c.Request)
	}
}
