package handlers

import (
	"context"
	"mime/multipart"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/vershina/sportclub/internal/models"
	"github.com/vershina/sportclub/internal/services"
)

type newsAdminService interface {
	List(ctx context.Context) ([]models.NewsArticle, error)
	Get(ctx context.Context, id int64) (*models.NewsArticle, error)
	Create(ctx context.Context, form services.NewsForm, image *multipart.FileHeader) (*models.NewsArticle, error)
	Update(ctx context.Context, id int64, form services.NewsForm, image *multipart.FileHeader) (*models.NewsArticle, error)
	Delete(ctx context.Context, id int64) error
}

type AdminNewsHandler struct {
	news newsAdminService
}

func NewAdminNewsHandler(news newsAdminService) *AdminNewsHandler {
	return &AdminNewsHandler{news: news}
}

const newsListPath = "/admin/news"

func (h *AdminNewsHandler) List(c *fiber.Ctx) error {
	articles, err := h.news.List(c.Context())
	if err != nil {
		return err
	}
	return renderAdmin(c, "admin/news_list", fiber.Map{
		"Title":    "Управление новостями",
		"Articles": articles,
	})
}

func (h *AdminNewsHandler) New(c *fiber.Ctx) error {
	return renderAdmin(c, "admin/news_form", newsFormData("Добавить новость", "/admin/news/add", services.NewsForm{}, nil))
}

func (h *AdminNewsHandler) Create(c *fiber.Ctx) error {
	form := newsFormFromRequest(c)
	if _, err := h.news.Create(c.Context(), form, optionalFile(c, "image_file")); err != nil {
		if message, ok := validationMessage(err); ok {
			return renderInvalid(c, "admin/news_form", newsFormData("Ошибка: заполните поля", "/admin/news/add", form, nil), message)
		}
		return err
	}
	return redirectWithFlash(c, newsListPath, "news-created")
}

func (h *AdminNewsHandler) Edit(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	article, err := h.news.Get(c.Context(), id)
	if err != nil {
		return notFoundOr(err)
	}
	form := services.NewsForm{Title: article.Title, Content: article.Content}
	return renderAdmin(c, "admin/news_form", newsFormData("Редактировать новость", newsEditPath(id), form, article))
}

func (h *AdminNewsHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	form := newsFormFromRequest(c)
	if _, err := h.news.Update(c.Context(), id, form, optionalFile(c, "image_file")); err != nil {
		if message, ok := validationMessage(err); ok {
			article, getErr := h.news.Get(c.Context(), id)
			if getErr != nil {
				return notFoundOr(getErr)
			}
			return renderInvalid(c, "admin/news_form", newsFormData("Редактировать новость", newsEditPath(id), form, article), message)
		}
		return notFoundOr(err)
	}
	return redirectWithFlash(c, newsListPath, "news-updated")
}

func (h *AdminNewsHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	if err := h.news.Delete(c.Context(), id); err != nil {
		return notFoundOr(err)
	}
	return redirectWithFlash(c, newsListPath, "news-deleted")
}

func newsEditPath(id int64) string {
	return "/admin/news/edit/" + strconv.FormatInt(id, 10)
}

func newsFormFromRequest(c *fiber.Ctx) services.NewsForm {
	return services.NewsForm{
		Title:   c.FormValue("title"),
		Content: c.FormValue("content"),
	}
}

func newsFormData(title, action string, form services.NewsForm, article *models.NewsArticle) fiber.Map {
	return fiber.Map{
		"Title":      title,
		"FormAction": action,
		"Form":       form,
		"Article":    article,
	}
}
