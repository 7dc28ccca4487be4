package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"reviewdb-backend/internal/shared/response"
)

// Recovery turns panics into 500 responses; the process never dies on a
// single bad request.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				log.Error().
					Str("request_id", c.GetString("request_id")).
					Interface("error", err).
					Msg("panic recovered")

				response.InternalServerError(c, "internal server error")
				c.Abort()
			}
		}()

		c.Next()
	}
}
