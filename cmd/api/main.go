package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"foodgram/internal/config"
	"foodgram/internal/database"
	"foodgram/internal/domain/cart"
	"foodgram/internal/domain/catalog"
	"foodgram/internal/domain/favorite"
	"foodgram/internal/domain/recipe"
	"foodgram/internal/domain/shortlink"
	"foodgram/internal/domain/subscription"
	"foodgram/internal/domain/user"
	"foodgram/internal/middleware"
	jwtsvc "foodgram/internal/pkg/jwt"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseDSN)
	if err != nil {
		log.Fatal(err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal(err)
	}

	userRepo := user.NewRepository(db)
	catalogRepo := catalog.NewRepository(db)
	recipeRepo := recipe.NewRepository(db)
	favoriteRepo := favorite.NewRepository(db)
	cartRepo := cart.NewRepository(db)
	subscriptionRepo := subscription.NewRepository(db)
	shortlinkRepo := shortlink.NewRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL)

	userService := user.NewService(userRepo, j, subscriptionRepo)
	recipeService := recipe.NewService(recipeRepo, catalogRepo, favoriteRepo, cartRepo, subscriptionRepo)
	favoriteService := favorite.NewService(favoriteRepo, recipeRepo)
	cartService := cart.NewService(cartRepo, recipeRepo, userRepo)
	subscriptionService := subscription.NewService(subscriptionRepo, userRepo, recipeRepo)
	shortlinkService := shortlink.NewService(shortlinkRepo, recipeRepo, cfg.BaseURL)

	userHandler := user.NewHandler(userService)
	catalogHandler := catalog.NewHandler(catalogRepo)
	recipeHandler := recipe.NewHandler(recipeService)
	favoriteHandler := favorite.NewHandler(favoriteService)
	cartHandler := cart.NewHandler(cartService)
	subscriptionHandler := subscription.NewHandler(subscriptionService)
	shortlinkHandler := shortlink.NewHandler(shortlinkService)

	r := gin.Default()
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorLogger())

	shortlinkHandler.RegisterRedirect(r)

	api := r.Group("/api")
	{
		// public reads carry the viewer identity when a token is present so
		// per-user flags (is_favorited, is_subscribed, ...) can be resolved
		public := api.Group("/")
		public.Use(middleware.OptionalAuth(j))
		{
			userHandler.RegisterRoutes(public)
			catalogHandler.RegisterRoutes(public)
			recipeHandler.RegisterRoutes(public)
			shortlinkHandler.RegisterRoutes(public)
		}

		protected := api.Group("/")
		protected.Use(middleware.RequireAuth(j))
		{
			userHandler.RegisterProtectedRoutes(protected)
			recipeHandler.RegisterProtectedRoutes(protected)
			favoriteHandler.RegisterRoutes(protected)
			cartHandler.RegisterRoutes(protected)
			subscriptionHandler.RegisterRoutes(protected)
		}
	}

	if err := r.Run(cfg.ListenAddr); err != nil {
		log.Fatal(err)
	}
}
