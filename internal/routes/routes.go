package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	"github.com/mvcarvalho/daily-diet-api/internal/handlers"
)

func Setup(
	app *fiber.App,
	guard fiber.Handler,
	userHandler *handlers.UserHandler,
	mealHandler *handlers.MealHandler,
	healthHandler *handlers.HealthHandler,
) {
	// General rate limiter: 60 req/min per IP
	app.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	app.Get("/health", healthHandler.Check)

	// Registration mints session tokens, so it gets a stricter bucket:
	// 10 req/min per IP
	registerLimiter := limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	})

	user := app.Group("/user")
	user.Post("/", registerLimiter, userHandler.Create)
	user.Get("/", guard, userHandler.List)
	user.Delete("/:id", guard, userHandler.Delete)

	// Every snack route is session-guarded, including create and update.
	snack := app.Group("/snack", guard)
	snack.Post("/", mealHandler.Create)
	snack.Get("/", mealHandler.List)
	snack.Get("/metrics", mealHandler.Metrics)
	snack.Get("/:id", mealHandler.Get)
	snack.Put("/:id", mealHandler.Update)
	snack.Delete("/:id", mealHandler.Delete)
}
