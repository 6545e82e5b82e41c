package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/lmittmann/tint"

	"github.com/Sari-Dot/Myquiz/internal/config"
	"github.com/Sari-Dot/Myquiz/internal/database"
	"github.com/Sari-Dot/Myquiz/internal/handlers"
	"github.com/Sari-Dot/Myquiz/internal/kv"
	"github.com/Sari-Dot/Myquiz/internal/repository"
	"github.com/Sari-Dot/Myquiz/internal/service"
	"github.com/Sari-Dot/Myquiz/internal/session"
	"github.com/Sari-Dot/Myquiz/internal/token"
)

func main() {
	slog.SetDefault(slog.New(tint.NewHandler(os.Stderr, nil)))

	// 1. Configuration and external connections
	cfg := config.Load()
	database.InitRedis(cfg)

	// 2. Storage, repos, auth plumbing
	store := kv.NewRedisStore(database.RedisClient)
	adminRepo := repository.NewAdminRepository(store)
	questionRepo := repository.NewQuestionRepository(store)

	codec := token.NewCodec(cfg.AdminSecret)
	cache := session.NewCache(session.DefaultCacheSize)
	resolver := session.NewResolver(
		&session.SignedStrategy{Codec: codec},
		&session.CacheStrategy{Cache: cache},
		&session.StoreStrategy{Sessions: adminRepo, Cache: cache},
	)

	// 3. Services and handlers
	authService := service.NewAuthService(adminRepo, codec, resolver, cfg.AdminUsername, cfg.AdminPassword)
	questionService := service.NewQuestionService(questionRepo)
	quizHandlers := handlers.NewQuizHandlers(authService, questionService, codec)

	// Ensure the default admin exists before taking traffic (idempotent)
	if _, err := authService.EnsureDefaultAdmin(context.Background()); err != nil {
		slog.Error("Failed to ensure default admin", "err", err)
		os.Exit(1)
	}

	// 4. Create a new Fiber instance
	app := fiber.New(fiber.Config{
		AppName: "QuizProtocol_v1",
	})

	// 5. Middleware for better observability
	app.Use(logger.New())  // Logs every request to console
	app.Use(recover.New()) // Prevents the app from crashing on panics
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Content-Type, Authorization, " + handlers.AdminTokenHeader,
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
	}))

	// 6. Route Definitions
	app.Get("/health", quizHandlers.HandleHealth)

	admin := app.Group("/admin")
	admin.Post("/init", quizHandlers.HandleAdminInit)
	// Per-IP rate limiting on login to slow down credential guessing
	admin.Post("/login", limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Minute,
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"success": false,
				"error":   "Too many login attempts. Please try again later.",
			})
		},
	}), quizHandlers.HandleAdminLogin)
	admin.Get("/verify", quizHandlers.HandleAdminVerify)
	admin.Post("/logout", quizHandlers.HandleAdminLogout)
	admin.Post("/seed", quizHandlers.RequireAdmin, quizHandlers.HandleSeedQuestions)
	admin.Post("/debug/verify-token", quizHandlers.HandleDebugVerifyToken)

	questions := app.Group("/questions")
	questions.Get("/", quizHandlers.HandleListQuestions)
	questions.Get("/:id", quizHandlers.HandleGetQuestion)
	questions.Post("/", quizHandlers.RequireAdmin, quizHandlers.HandleCreateQuestion)
	questions.Put("/:id", quizHandlers.RequireAdmin, quizHandlers.HandleUpdateQuestion)
	questions.Delete("/:id", quizHandlers.RequireAdmin, quizHandlers.HandleDeleteQuestion)

	// 7. Start the server
	log.Fatal(app.Listen(":" + cfg.Port))
}
