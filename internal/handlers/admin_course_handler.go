package handlers

import (
	"context"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/vershina/sportclub/internal/models"
	"github.com/vershina/sportclub/internal/services"
)

type courseAdminService interface {
	List(ctx context.Context) ([]models.Course, error)
	Get(ctx context.Context, id int64) (*models.Course, error)
	Create(ctx context.Context, form services.CourseForm) (*models.Course, error)
	Update(ctx context.Context, id int64, form services.CourseForm) (*models.Course, error)
	Delete(ctx context.Context, id int64) error
}

type AdminCourseHandler struct {
	courses courseAdminService
}

func NewAdminCourseHandler(courses courseAdminService) *AdminCourseHandler {
	return &AdminCourseHandler{courses: courses}
}

const coursesListPath = "/admin/courses"

func (h *AdminCourseHandler) List(c *fiber.Ctx) error {
	courses, err := h.courses.List(c.Context())
	if err != nil {
		return err
	}
	return renderAdmin(c, "admin/courses_list", fiber.Map{
		"Title":   "Управление курсами",
		"Courses": courses,
	})
}

func (h *AdminCourseHandler) New(c *fiber.Ctx) error {
	return renderAdmin(c, "admin/course_form", courseFormData("Добавить курс", "/admin/courses/add", services.CourseForm{}))
}

func (h *AdminCourseHandler) Create(c *fiber.Ctx) error {
	form := courseFormFromRequest(c)
	if _, err := h.courses.Create(c.Context(), form); err != nil {
		if message, ok := validationMessage(err); ok {
			return renderInvalid(c, "admin/course_form", courseFormData("Ошибка: заполните обязательные поля", "/admin/courses/add", form), message)
		}
		return err
	}
	return redirectWithFlash(c, coursesListPath, "course-created")
}

func (h *AdminCourseHandler) Edit(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	course, err := h.courses.Get(c.Context(), id)
	if err != nil {
		return notFoundOr(err)
	}
	form := services.CourseForm{
		Title:       course.Title,
		YoutubeID:   course.YoutubeID,
		Description: deref(course.Description),
	}
	return renderAdmin(c, "admin/course_form", courseFormData("Редактировать курс", courseEditPath(id), form))
}

func (h *AdminCourseHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	form := courseFormFromRequest(c)
	if _, err := h.courses.Update(c.Context(), id, form); err != nil {
		if message, ok := validationMessage(err); ok {
			return renderInvalid(c, "admin/course_form", courseFormData("Редактировать курс", courseEditPath(id), form), message)
		}
		return notFoundOr(err)
	}
	return redirectWithFlash(c, coursesListPath, "course-updated")
}

func (h *AdminCourseHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	if err := h.courses.Delete(c.Context(), id); err != nil {
		return notFoundOr(err)
	}
	return redirectWithFlash(c, coursesListPath, "course-deleted")
}

func courseEditPath(id int64) string {
	return "/admin/courses/edit/" + strconv.FormatInt(id, 10)
}

func courseFormFromRequest(c *fiber.Ctx) services.CourseForm {
	return services.CourseForm{
		Title:       c.FormValue("title"),
		YoutubeID:   c.FormValue("youtube_id"),
		Description: c.FormValue("description"),
	}
}

func courseFormData(title, action string, form services.CourseForm) fiber.Map {
	return fiber.Map{
		"Title":      title,
		"FormAction": action,
		"Form":       form,
	}
}
