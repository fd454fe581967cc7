package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Vijaybattula26/gemini-ats/web"
)

// Index serves the single-page screening UI.
// @Summary Web UI
// @Tags    ui
// @Produce html
// @Success 200 {string} string
// @Router  / [get]
func Index(c *fiber.Ctx) error {
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.Send(web.IndexHTML)
}
