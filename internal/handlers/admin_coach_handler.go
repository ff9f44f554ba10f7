package handlers

import (
	"context"
	"mime/multipart"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/vershina/sportclub/internal/models"
	"github.com/vershina/sportclub/internal/services"
)

type coachAdminService interface {
	List(ctx context.Context) ([]models.Coach, error)
	Get(ctx context.Context, id int64) (*models.Coach, error)
	Create(ctx context.Context, form services.CoachForm, photo *multipart.FileHeader) (*models.Coach, error)
	Update(ctx context.Context, id int64, form services.CoachForm, photo *multipart.FileHeader) (*models.Coach, error)
	Delete(ctx context.Context, id int64) error
}

type AdminCoachHandler struct {
	coaches coachAdminService
}

func NewAdminCoachHandler(coaches coachAdminService) *AdminCoachHandler {
	return &AdminCoachHandler{coaches: coaches}
}

const coachesListPath = "/admin/coaches"

func (h *AdminCoachHandler) List(c *fiber.Ctx) error {
	coaches, err := h.coaches.List(c.Context())
	if err != nil {
		return err
	}
	return renderAdmin(c, "admin/coaches_list", fiber.Map{
		"Title":   "Управление тренерами",
		"Coaches": coaches,
	})
}

func (h *AdminCoachHandler) New(c *fiber.Ctx) error {
	return renderAdmin(c, "admin/coach_form", coachFormData("Добавить нового тренера", "/admin/coaches/add", services.CoachForm{}, nil))
}

func (h *AdminCoachHandler) Create(c *fiber.Ctx) error {
	form := coachFormFromRequest(c)
	if _, err := h.coaches.Create(c.Context(), form, optionalFile(c, "photo_file")); err != nil {
		if message, ok := validationMessage(err); ok {
			return renderInvalid(c, "admin/coach_form", coachFormData("Ошибка: заполните поля", "/admin/coaches/add", form, nil), message)
		}
		return err
	}
	return redirectWithFlash(c, coachesListPath, "coach-created")
}

func (h *AdminCoachHandler) Edit(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	coach, err := h.coaches.Get(c.Context(), id)
	if err != nil {
		return notFoundOr(err)
	}
	return renderAdmin(c, "admin/coach_form", coachFormData("Редактировать тренера", coachEditPath(id), coachFormFromModel(coach), coach))
}

func (h *AdminCoachHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	form := coachFormFromRequest(c)
	if _, err := h.coaches.Update(c.Context(), id, form, optionalFile(c, "photo_file")); err != nil {
		if message, ok := validationMessage(err); ok {
			coach, getErr := h.coaches.Get(c.Context(), id)
			if getErr != nil {
				return notFoundOr(getErr)
			}
			return renderInvalid(c, "admin/coach_form", coachFormData("Редактировать тренера", coachEditPath(id), form, coach), message)
		}
		return notFoundOr(err)
	}
	return redirectWithFlash(c, coachesListPath, "coach-updated")
}

func (h *AdminCoachHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	if err := h.coaches.Delete(c.Context(), id); err != nil {
		return notFoundOr(err)
	}
	return redirectWithFlash(c, coachesListPath, "coach-deleted")
}

func coachEditPath(id int64) string {
	return "/admin/coaches/edit/" + strconv.FormatInt(id, 10)
}

func coachFormFromRequest(c *fiber.Ctx) services.CoachForm {
	return services.CoachForm{
		Name:           c.FormValue("name"),
		Experience:     c.FormValue("experience"),
		Specialization: c.FormValue("specialization"),
		Section:        c.FormValue("section"),
	}
}

func coachFormFromModel(coach *models.Coach) services.CoachForm {
	return services.CoachForm{
		Name:           coach.Name,
		Experience:     deref(coach.Experience),
		Specialization: deref(coach.Specialization),
		Section:        string(coach.Section),
	}
}

func coachFormData(title, action string, form services.CoachForm, coach *models.Coach) fiber.Map {
	return fiber.Map{
		"Title":      title,
		"FormAction": action,
		"Form":       form,
		"Coach":      coach,
		"Sections":   models.Sections,
	}
}

func deref(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}
