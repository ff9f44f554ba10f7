package handlers

import "github.com/gofiber/fiber/v2"

const adminLayout = "layouts/admin"

func renderAdmin(c *fiber.Ctx, view string, data fiber.Map) error {
	if _, ok := data["Flash"]; !ok {
		data["Flash"] = popFlash(c)
	}
	return c.Render(view, data, adminLayout)
}

// renderInvalid re-renders a form with the submitted values and the
// validation message.
func renderInvalid(c *fiber.Ctx, view string, data fiber.Map, message string) error {
	data["Error"] = message
	data["Flash"] = ""
	return c.Status(fiber.StatusOK).Render(view, data, adminLayout)
}

func AdminRoot(c *fiber.Ctx) error {
	return c.Redirect("/admin/coaches", fiber.StatusFound)
}
