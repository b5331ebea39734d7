package rayid

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// HeaderName is the header carrying the request's ray id in and out.
const HeaderName = "X-Ray-ID"

// New returns a middleware that ensures every request carries a ray id.
// An incoming id is reused so traces can span services; otherwise a fresh
// uuid is generated. The id lands in c.Locals("ray_id") and the response
// header.
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		rid := c.Get(HeaderName)
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Locals("ray_id", rid)
		c.Set(HeaderName, rid)
		return c.Next()
	}
}
