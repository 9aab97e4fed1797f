package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/creditfix/credit-repair-api/internal/core/domain"
)

// envelope is the response shape for every entity read: the payload plus the
// provenance tag, so clients can tell live data from degraded data.
type envelope struct {
	Data   any    `json:"data"`
	Source string `json:"source"`
}

// resultJSON renders a service result with its provenance tag.
func resultJSON[T any](c echo.Context, status int, r domain.Result[T]) error {
	return c.JSON(status, envelope{Data: r.Data, Source: string(r.Source)})
}
