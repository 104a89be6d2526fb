package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const PlayerIDHeader = "X-Player-ID"

// EnsurePlayerID stores the caller's player id in Locals("playerID"). The id
// comes from the X-Player-ID header or the playerId query parameter; when
// neither is present a fresh one is issued and echoed back in the header.
func EnsurePlayerID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if c.Locals("playerID") != nil {
			return c.Next()
		}

		playerID := c.Get(PlayerIDHeader)
		if playerID == "" {
			playerID = c.Query("playerId")
		}
		if playerID == "" {
			playerID = uuid.New().String()
		}

		c.Set(PlayerIDHeader, playerID)
		c.Locals("playerID", playerID)
		return c.Next()
	}
}
