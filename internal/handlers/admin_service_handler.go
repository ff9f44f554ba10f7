package handlers

import (
	"context"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/vershina/sportclub/internal/models"
	"github.com/vershina/sportclub/internal/services"
)

type serviceAdminCatalog interface {
	ListBySection(ctx context.Context, section models.Section) ([]models.Service, error)
	Get(ctx context.Context, id int64) (*models.Service, error)
	Create(ctx context.Context, form services.ServiceForm) (*models.Service, error)
	Update(ctx context.Context, id int64, form services.ServiceForm) (*models.Service, error)
	Delete(ctx context.Context, id int64) error
}

type AdminServiceHandler struct {
	catalog serviceAdminCatalog
}

func NewAdminServiceHandler(catalog serviceAdminCatalog) *AdminServiceHandler {
	return &AdminServiceHandler{catalog: catalog}
}

const servicesListPath = "/admin/services"

// List groups the services by section.
func (h *AdminServiceHandler) List(c *fiber.Ctx) error {
	ski, err := h.catalog.ListBySection(c.Context(), models.SectionSki)
	if err != nil {
		return err
	}
	gym, err := h.catalog.ListBySection(c.Context(), models.SectionGym)
	if err != nil {
		return err
	}
	return renderAdmin(c, "admin/services_list", fiber.Map{
		"Title":       "Управление услугами",
		"ServicesSki": ski,
		"ServicesGym": gym,
	})
}

func (h *AdminServiceHandler) New(c *fiber.Ctx) error {
	return renderAdmin(c, "admin/service_form", serviceFormData("Добавить услугу", "/admin/services/add", services.ServiceForm{}))
}

func (h *AdminServiceHandler) Create(c *fiber.Ctx) error {
	form := serviceFormFromRequest(c)
	if _, err := h.catalog.Create(c.Context(), form); err != nil {
		if message, ok := validationMessage(err); ok {
			return renderInvalid(c, "admin/service_form", serviceFormData("Ошибка: проверьте поля", "/admin/services/add", form), message)
		}
		return err
	}
	return redirectWithFlash(c, servicesListPath, "service-created")
}

func (h *AdminServiceHandler) Edit(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	service, err := h.catalog.Get(c.Context(), id)
	if err != nil {
		return notFoundOr(err)
	}
	return renderAdmin(c, "admin/service_form", serviceFormData("Редактировать услугу", serviceEditPath(id), serviceFormFromModel(service)))
}

func (h *AdminServiceHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	form := serviceFormFromRequest(c)
	if _, err := h.catalog.Update(c.Context(), id, form); err != nil {
		if message, ok := validationMessage(err); ok {
			return renderInvalid(c, "admin/service_form", serviceFormData("Редактировать услугу", serviceEditPath(id), form), message)
		}
		return notFoundOr(err)
	}
	return redirectWithFlash(c, servicesListPath, "service-updated")
}

func (h *AdminServiceHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	if err := h.catalog.Delete(c.Context(), id); err != nil {
		return notFoundOr(err)
	}
	return redirectWithFlash(c, servicesListPath, "service-deleted")
}

func serviceEditPath(id int64) string {
	return "/admin/services/edit/" + strconv.FormatInt(id, 10)
}

func serviceFormFromRequest(c *fiber.Ctx) services.ServiceForm {
	return services.ServiceForm{
		Name:        c.FormValue("name"),
		Description: c.FormValue("description"),
		Price:       c.FormValue("price"),
		Duration:    c.FormValue("duration"),
		Section:     c.FormValue("section"),
	}
}

func serviceFormFromModel(service *models.Service) services.ServiceForm {
	return services.ServiceForm{
		Name:        service.Name,
		Description: deref(service.Description),
		Price:       strconv.FormatFloat(service.Price, 'f', 2, 64),
		Duration:    deref(service.Duration),
		Section:     string(service.Section),
	}
}

func serviceFormData(title, action string, form services.ServiceForm) fiber.Map {
	return fiber.Map{
		"Title":      title,
		"FormAction": action,
		"Form":       form,
		"Sections":   models.Sections,
	}
}
