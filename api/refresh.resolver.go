package api

import (
	"errors"
	"findash/internal/domain"
	"io"

	"github.com/gin-gonic/gin"
)

type refreshRequest struct {
	Period *string `json:"period"`
}

// refresh runs the pipeline synchronously and publishes the result.
// Group failures are part of the 200 response, not an error status.
func (m ApiHandler) refresh(c *gin.Context) {
	var requestBody refreshRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil && !errors.Is(err, io.EOF) {
		returnErrorJsonCode(err, c, 400)
		return
	}

	period := m.Period
	if requestBody.Period != nil {
		p, err := domain.ParsePeriod(*requestBody.Period)
		if err != nil {
			returnErrorJsonCode(err, c, 400)
			return
		}
		period = p
	}

	result := m.Refresher.Refresh(c.Request.Context(), period)
	m.Store.Put(result)

	c.JSON(200, result)
}
