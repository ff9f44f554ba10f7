package routes

import (
	"fmt"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/vershina/sportclub/internal/config"
	"github.com/vershina/sportclub/internal/handlers"
	"github.com/vershina/sportclub/internal/middleware"
	"github.com/vershina/sportclub/internal/repository"
	"github.com/vershina/sportclub/internal/services"
	"github.com/vershina/sportclub/web"
	"go.uber.org/zap"
)

// Handlers is everything the router mounts.
type Handlers struct {
	Public   *handlers.PublicHandler
	Contact  *handlers.ContactHandler
	Coaches  *handlers.AdminCoachHandler
	Services *handlers.AdminServiceHandler
	News     *handlers.AdminNewsHandler
	Courses  *handlers.AdminCourseHandler
}

func RegisterRoutes(app *fiber.App, cfg *config.Config, db *pgxpool.Pool, logger *zap.Logger) error {
	coachRepo := repository.NewCoachRepository(db)
	serviceRepo := repository.NewServiceRepository(db)
	newsRepo := repository.NewNewsRepository(db)
	courseRepo := repository.NewCourseRepository(db)

	media, err := services.NewMediaStorageFromConfig(cfg, logger)
	if err != nil {
		return fmt.Errorf("init media storage: %w", err)
	}
	mail, err := services.NewMailService(cfg)
	if err != nil {
		return fmt.Errorf("init mail: %w", err)
	}
	if !mail.Configured() {
		logger.Info("smtp is not configured, contact mails will be skipped")
	}

	coachService := services.NewCoachService(coachRepo, media)
	serviceCatalog := services.NewServiceCatalog(serviceRepo)
	newsService := services.NewNewsService(newsRepo, media)
	courseService := services.NewCourseService(courseRepo)

	assets, err := web.Assets()
	if err != nil {
		return err
	}

	Mount(app, cfg, Handlers{
		Public:   handlers.NewPublicHandler(coachService, serviceCatalog, newsService, courseService),
		Contact:  handlers.NewContactHandler(mail, logger),
		Coaches:  handlers.NewAdminCoachHandler(coachService),
		Services: handlers.NewAdminServiceHandler(serviceCatalog),
		News:     handlers.NewAdminNewsHandler(newsService),
		Courses:  handlers.NewAdminCourseHandler(courseService),
	}, assets)
	return nil
}

// Mount wires middleware and routes onto app.
func Mount(app *fiber.App, cfg *config.Config, h Handlers, assets http.FileSystem) {
	app.Use(middleware.SecurityHeaders())
	app.Use(middleware.EncryptedCookies(cfg.SessionSecret))

	app.Static("/static", cfg.StaticDir)
	app.Use("/assets", filesystem.New(filesystem.Config{
		Root:   assets,
		MaxAge: 86400,
	}))

	app.Get("/health", handlers.Health)
	app.Get("/", h.Public.Home)
	app.Get("/ski-resort.html", h.Public.SkiResort)
	app.Get("/gym.html", h.Public.Gym)
	app.Get("/news", h.Public.NewsList)
	app.Get("/news/:id", h.Public.NewsDetail)
	app.Get("/courses", h.Public.Courses)
	app.Get("/contacts.html", h.Public.Contacts)
	app.Get("/thank-you.html", h.Public.ThankYou)
	app.Post("/submit", h.Contact.SubmitLead)
	app.Post("/submit-contact", h.Contact.SubmitContact)

	admin := app.Group("/admin", middleware.AdminRequired(cfg.AdminUser, cfg.AdminPassword))
	admin.Get("", handlers.AdminRoot)

	coaches := admin.Group("/coaches")
	coaches.Get("", h.Coaches.List)
	coaches.Get("/list", h.Coaches.List)
	coaches.Get("/add", h.Coaches.New)
	coaches.Post("/add", h.Coaches.Create)
	coaches.Get("/edit/:id", h.Coaches.Edit)
	coaches.Post("/edit/:id", h.Coaches.Update)
	coaches.Post("/delete/:id", h.Coaches.Delete)

	offers := admin.Group("/services")
	offers.Get("", h.Services.List)
	offers.Get("/list", h.Services.List)
	offers.Get("/add", h.Services.New)
	offers.Post("/add", h.Services.Create)
	offers.Get("/edit/:id", h.Services.Edit)
	offers.Post("/edit/:id", h.Services.Update)
	offers.Post("/delete/:id", h.Services.Delete)

	news := admin.Group("/news")
	news.Get("", h.News.List)
	news.Get("/list", h.News.List)
	news.Get("/add", h.News.New)
	news.Post("/add", h.News.Create)
	news.Get("/edit/:id", h.News.Edit)
	news.Post("/edit/:id", h.News.Update)
	news.Post("/delete/:id", h.News.Delete)

	courses := admin.Group("/courses")
	courses.Get("", h.Courses.List)
	courses.Get("/list", h.Courses.List)
	courses.Get("/add", h.Courses.New)
	courses.Post("/add", h.Courses.Create)
	courses.Get("/edit/:id", h.Courses.Edit)
	courses.Post("/edit/:id", h.Courses.Update)
	courses.Post("/delete/:id", h.Courses.Delete)
}
