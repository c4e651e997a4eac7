package router

import (
	"blogapp/controllers"
	"blogapp/middlewares"
	"blogapp/repositories"
	"blogapp/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis"
	"gorm.io/gorm"
)

// SetupRouter wires repositories, services and controllers onto the gin
// engine. Tests pass an in-memory database, a nil cache and a no-op notifier
// through the same path the production bootstrap uses.
func SetupRouter(
	db *gorm.DB,
	cache *redis.Client,
	notifier services.Notifier,
	uploader *services.ImageClient,
) *gin.Engine {
	articleRepo := repositories.NewArticleRepository(db)
	userRepo := repositories.NewUserRepository(db)
	likeRepo := repositories.NewLikeRepository(db)
	commentRepo := repositories.NewCommentRepository(db)
	paymentRepo := repositories.NewPaymentRepository(db)

	likeService := services.NewLikeService(likeRepo, cache)

	authCtl := controllers.NewAuthController(userRepo)
	articleCtl := controllers.NewArticleController(articleRepo, paymentRepo, uploader)
	likeCtl := controllers.NewLikeController(likeService, articleRepo)
	commentCtl := controllers.NewCommentController(commentRepo, userRepo, notifier)
	paymentCtl := controllers.NewPaymentController(paymentRepo)

	r := gin.Default()
	r.Use(cors.Default())

	api := r.Group("/api")

	auth := api.Group("/auth")
	{
		auth.POST("/register", authCtl.Register)
		auth.POST("/login", authCtl.Login)
	}

	api.POST("/articles",
		middlewares.AuthMiddleware(), middlewares.ValidateArticle(), middlewares.ValidatePrice(),
		articleCtl.Create)
	api.GET("/articles", articleCtl.List)
	api.GET("/articles/search", articleCtl.Search)
	api.GET("/articles/rank", likeCtl.Top)
	api.GET("/articles/list/categories", articleCtl.Categories)
	api.GET("/articles/:slug",
		middlewares.OptionalAuth(), middlewares.ArticleExists(articleRepo),
		articleCtl.Get)
	api.PUT("/articles/:slug",
		middlewares.AuthMiddleware(), middlewares.ValidateArticle(), middlewares.ValidatePrice(),
		middlewares.ArticleExists(articleRepo), middlewares.CheckCount(),
		articleCtl.Edit)
	api.DELETE("/articles/:slug",
		middlewares.AuthMiddleware(), middlewares.ArticleExists(articleRepo),
		articleCtl.Delete)

	api.POST("/articles/:slug/like",
		middlewares.AuthMiddleware(), middlewares.ArticleExists(articleRepo),
		likeCtl.Toggle)
	api.GET("/articles/:slug/likes",
		middlewares.ArticleExists(articleRepo),
		likeCtl.Likes)

	api.POST("/articles/:slug/comments",
		middlewares.AuthMiddleware(), middlewares.ArticleExists(articleRepo),
		commentCtl.CreateComment)
	api.GET("/articles/:slug/comments",
		middlewares.ArticleExists(articleRepo),
		commentCtl.GetComments)
	api.POST("/articles/:slug/comments/:id",
		middlewares.AuthMiddleware(), middlewares.ArticleExists(articleRepo),
		middlewares.CommentExists(commentRepo),
		commentCtl.CreateReply)
	api.DELETE("/articles/:slug/comments/:id",
		middlewares.AuthMiddleware(),
		commentCtl.DeleteComment)

	api.POST("/articles/:slug/purchase",
		middlewares.AuthMiddleware(), middlewares.ArticleExists(articleRepo),
		paymentCtl.Purchase)

	return r
}
