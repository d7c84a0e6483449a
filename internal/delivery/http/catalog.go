package http

import (
	"net/http"

	"strategy-scanner/internal/catalog"
	"strategy-scanner/internal/dto"
	"strategy-scanner/internal/quicklist"

	"github.com/labstack/echo/v4"
)

func (h *HttpAPIHandler) SetupCatalog(base *echo.Group) {
	base.GET("/strategies", h.listStrategies)
	base.GET("/quicklists/:market", h.getQuickList)
}

func (h *HttpAPIHandler) listStrategies(c echo.Context) error {
	return c.JSON(http.StatusOK, dto.NewSuccessResponse("ok", catalog.List()))
}

func (h *HttpAPIHandler) getQuickList(c echo.Context) error {
	market := dto.Market(c.Param("market"))
	list, ok := quicklist.ForMarket(market)
	if !ok {
		return c.JSON(http.StatusNotFound, dto.NewBaseResponse(http.StatusNotFound, dto.ErrUnknownMarket.Error(), nil))
	}
	return c.JSON(http.StatusOK, dto.NewSuccessResponse("ok", list))
}

func (h *HttpAPIHandler) health(c echo.Context) error {
	return c.JSON(http.StatusOK, dto.NewSuccessResponse("healthy", map[string]interface{}{
		"service": "strategy-scanner",
		"engine":  h.service.EngineProbe.Status(),
	}))
}
