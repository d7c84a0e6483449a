package http

import (
	"fmt"
	"io"
	"net/http"

	"strategy-scanner/internal/dto"

	"github.com/labstack/echo/v4"
)

func (h *HttpAPIHandler) SetupScan(base *echo.Group) {
	base.Any("/scan", h.scanProxy)
}

// scanProxy relays POST bodies to the scan engine verbatim and the engine's
// status and body back. Every other verb is refused before any forwarding.
func (h *HttpAPIHandler) scanProxy(c echo.Context) error {
	req := c.Request()
	if req.Method != http.MethodPost {
		c.Response().Header().Set(echo.HeaderAllow, http.MethodPost)
		return c.String(http.StatusMethodNotAllowed, fmt.Sprintf("Method %s Not Allowed", req.Method))
	}

	ctx := req.Context()
	body, err := io.ReadAll(req.Body)
	if err != nil {
		return c.JSON(http.StatusBadRequest, dto.NewBadRequestResponse("failed to read request body"))
	}

	relay, err := h.service.ScanService.Relay(ctx, body)
	if relay == nil {
		return c.JSON(http.StatusBadGateway, dto.NewBaseResponse(http.StatusBadGateway, err.Error(), nil))
	}

	contentType := relay.ContentType
	if contentType == "" {
		contentType = echo.MIMEApplicationJSON
	}
	return c.Blob(relay.StatusCode, contentType, relay.Body)
}
