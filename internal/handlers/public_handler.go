package handlers

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/vershina/sportclub/internal/models"
)

const homeNewsCount = 3

type sectionCoaches interface {
	ListBySection(ctx context.Context, section models.Section) ([]models.Coach, error)
}

type sectionServices interface {
	ListBySection(ctx context.Context, section models.Section) ([]models.Service, error)
}

type newsReader interface {
	Latest(ctx context.Context, limit int) ([]models.NewsArticle, error)
	Page(ctx context.Context, page, limit int) ([]models.NewsArticle, int, error)
	Get(ctx context.Context, id int64) (*models.NewsArticle, error)
}

type courseLister interface {
	List(ctx context.Context) ([]models.Course, error)
}

// PublicHandler serves the marketing pages.
type PublicHandler struct {
	coaches sectionCoaches
	catalog sectionServices
	news    newsReader
	courses courseLister
}

func NewPublicHandler(coaches sectionCoaches, catalog sectionServices, news newsReader, courses courseLister) *PublicHandler {
	return &PublicHandler{
		coaches: coaches,
		catalog: catalog,
		news:    news,
		courses: courses,
	}
}

func (h *PublicHandler) Home(c *fiber.Ctx) error {
	latest, err := h.news.Latest(c.Context(), homeNewsCount)
	if err != nil {
		return err
	}
	return c.Render("index", fiber.Map{
		"Title":      "Главная",
		"LatestNews": latest,
	}, "layouts/main")
}

func (h *PublicHandler) SkiResort(c *fiber.Ctx) error {
	return h.facility(c, models.SectionSki, "ski-resort", "Горнолыжная база")
}

func (h *PublicHandler) Gym(c *fiber.Ctx) error {
	return h.facility(c, models.SectionGym, "gym", "Тренажерный и батутный зал")
}

func (h *PublicHandler) facility(c *fiber.Ctx, section models.Section, view, title string) error {
	coaches, err := h.coaches.ListBySection(c.Context(), section)
	if err != nil {
		return err
	}
	offers, err := h.catalog.ListBySection(c.Context(), section)
	if err != nil {
		return err
	}
	return c.Render(view, fiber.Map{
		"Title":    title,
		"Section":  section,
		"Coaches":  coaches,
		"Services": offers,
	}, "layouts/main")
}

func (h *PublicHandler) NewsList(c *fiber.Ctx) error {
	page := parsePositiveInt(c.Query("page"), 1)
	limit := parsePositiveInt(c.Query("limit"), defaultPageLimit)
	if limit > maxPageLimit {
		limit = maxPageLimit
	}

	articles, total, err := h.news.Page(c.Context(), page, limit)
	if err != nil {
		return err
	}
	return c.Render("news_list", fiber.Map{
		"Title":      "Все новости и акции",
		"Articles":   articles,
		"Pagination": buildPaginationMeta(page, limit, total),
	}, "layouts/main")
}

func (h *PublicHandler) NewsDetail(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	article, err := h.news.Get(c.Context(), id)
	if err != nil {
		return notFoundOr(err)
	}
	return c.Render("news_detail", fiber.Map{
		"Title":   article.Title,
		"Article": article,
	}, "layouts/main")
}

func (h *PublicHandler) Courses(c *fiber.Ctx) error {
	courses, err := h.courses.List(c.Context())
	if err != nil {
		return err
	}
	return c.Render("courses", fiber.Map{
		"Title":   "Видеокурсы",
		"Courses": courses,
	}, "layouts/main")
}

func (h *PublicHandler) Contacts(c *fiber.Ctx) error {
	return c.Render("contacts", fiber.Map{"Title": "Контакты"}, "layouts/main")
}

func (h *PublicHandler) ThankYou(c *fiber.Ctx) error {
	return c.Render("thank_you", fiber.Map{"Title": "Спасибо!"}, "layouts/main")
}

func Health(c *fiber.Ctx) error {
	return c.SendString("ok")
}
