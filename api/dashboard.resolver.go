package api

import (
	"bytes"
	"errors"
	"findash/internal/app"

	"github.com/gin-gonic/gin"
)

var errNoRefresh = errors.New("no refresh has completed yet")

func (m ApiHandler) latest(c *gin.Context) (*app.RefreshResult, bool) {
	result, ok := m.Store.Latest()
	if !ok {
		returnErrorJsonCode(errNoRefresh, c, 404)
		return nil, false
	}
	return result, true
}

func (m ApiHandler) dashboard(c *gin.Context) {
	result, ok := m.latest(c)
	if !ok {
		return
	}
	c.JSON(200, result)
}

func (m ApiHandler) dashboardTables(c *gin.Context) {
	result, ok := m.latest(c)
	if !ok {
		return
	}
	c.JSON(200, result.Tables())
}

func (m ApiHandler) timeSeriesCsv(c *gin.Context) {
	result, ok := m.latest(c)
	if !ok {
		return
	}
	if result.Portfolio == nil {
		returnErrorJsonCode(errors.New("portfolio metrics missing from latest refresh"), c, 404)
		return
	}

	out := bytes.Buffer{}
	if err := result.WriteTimeSeriesCsv(&out); err != nil {
		returnErrorJsonCode(err, c, 500)
		return
	}

	c.Data(200, "text/csv", out.Bytes())
}
