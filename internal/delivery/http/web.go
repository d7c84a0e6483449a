package http

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"
	"net/url"
	"time"

	"strategy-scanner/internal/catalog"
	"strategy-scanner/internal/composer"
	"strategy-scanner/internal/dto"
	"strategy-scanner/internal/quicklist"
	"strategy-scanner/internal/render"
	"strategy-scanner/pkg/common"
	"strategy-scanner/pkg/logger"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

//go:embed templates/*.html
var templateFS embed.FS

var pages = template.Must(template.ParseFS(templateFS, "templates/*.html"))

type marketOption struct {
	Value    dto.Market
	Label    string
	Selected bool
}

type scannerPage struct {
	StrategyName string
	Action       string
	Markets      []marketOption
	QuickList    dto.QuickList
	HasQuickList bool
	Symbols      string
	Phase        string
	Failed       bool
	Reason       string
	Headers      []string
	Rows         []render.Row
}

// SetupWeb registers the catalog page and the scanner view. GET mounts a
// fresh view; the POST actions edit it and render the result directly.
func (h *HttpAPIHandler) SetupWeb() {
	h.echo.GET("/", h.catalogPage)

	strategies := h.echo.Group("/strategies/:id")
	strategies.GET("", h.scannerPage)
	strategies.POST("/market", h.changeMarket)
	strategies.POST("/quicklist", h.applyQuickList)
	strategies.POST("/scan", h.submitScan)
}

func (h *HttpAPIHandler) catalogPage(c echo.Context) error {
	return h.page(c, http.StatusOK, "catalog", map[string]interface{}{
		"Strategies": catalog.List(),
	})
}

func (h *HttpAPIHandler) scannerPage(c echo.Context) error {
	sessionID := h.sessionID(c)
	strategyID := c.Param("id")

	h.service.SessionService.Reset(sessionID, strategyID)
	view := h.service.SessionService.View(sessionID, strategyID)
	return h.renderScanner(c, strategyID, view)
}

func (h *HttpAPIHandler) changeMarket(c echo.Context) error {
	form := new(dto.MarketForm)
	if err := c.Bind(form); err != nil {
		return c.JSON(http.StatusBadRequest, dto.NewBadRequestResponse("invalid request body"))
	}
	if err := h.validator.Struct(form); err != nil {
		return c.JSON(http.StatusBadRequest, dto.NewBadRequestResponse(err.Error()))
	}

	view := h.view(c)
	view.SetMarket(form.Market)
	return h.renderScanner(c, c.Param("id"), view)
}

func (h *HttpAPIHandler) applyQuickList(c echo.Context) error {
	view := h.view(c)
	if _, ok := view.ApplyQuickList(); !ok {
		return c.JSON(http.StatusBadRequest, dto.NewBadRequestResponse(dto.ErrUnknownMarket.Error()))
	}
	return h.renderScanner(c, c.Param("id"), view)
}

func (h *HttpAPIHandler) submitScan(c echo.Context) error {
	form := new(dto.ScanForm)
	if err := c.Bind(form); err != nil {
		return c.JSON(http.StatusBadRequest, dto.NewBadRequestResponse("invalid request body"))
	}

	view := h.view(c)
	view.SetSymbols(form.Symbols)
	h.service.ScanService.Submit(c.Request().Context(), view)
	return h.renderScanner(c, c.Param("id"), view)
}

func (h *HttpAPIHandler) view(c echo.Context) *composer.Composer {
	return h.service.SessionService.View(h.sessionID(c), c.Param("id"))
}

func (h *HttpAPIHandler) renderScanner(c echo.Context, strategyID string, view *composer.Composer) error {
	snap := view.Snapshot()

	data := scannerPage{
		StrategyName: snap.StrategyName,
		Action:       "/strategies/" + url.PathEscape(strategyID),
		Symbols:      snap.Symbols,
		Phase:        snap.State.Phase.String(),
		Failed:       snap.State.Phase == composer.PhaseFailed,
		Reason:       snap.State.Reason,
		Headers:      render.Headers,
		Rows:         h.renderer.Rows(snap.State.Results),
	}
	for _, m := range dto.GetMarketList() {
		data.Markets = append(data.Markets, marketOption{Value: m, Label: m.Label(), Selected: m == snap.Market})
	}
	data.QuickList, data.HasQuickList = quicklist.ForMarket(snap.Market)

	return h.page(c, http.StatusOK, "scanner", data)
}

func (h *HttpAPIHandler) page(c echo.Context, status int, name string, data interface{}) error {
	var buf bytes.Buffer
	if err := pages.ExecuteTemplate(&buf, name, data); err != nil {
		h.log.ErrorContext(c.Request().Context(), "Failed to render page",
			logger.StringField("page", name),
			logger.ErrorField(err),
		)
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to render page")
	}
	return c.HTMLBlob(status, buf.Bytes())
}

// sessionID returns the browser's scanner session, issuing one when absent.
func (h *HttpAPIHandler) sessionID(c echo.Context) string {
	if cookie, err := c.Cookie(common.COOKIE_SCANNER_SESSION); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	id := uuid.NewString()
	c.SetCookie(&http.Cookie{
		Name:     common.COOKIE_SCANNER_SESSION,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(h.sessionLifetime().Seconds()),
	})
	// later calls in the same request must see the new id
	c.Request().AddCookie(&http.Cookie{Name: common.COOKIE_SCANNER_SESSION, Value: id})
	return id
}

func (h *HttpAPIHandler) sessionLifetime() time.Duration {
	if h.cfg.Cache.DefaultExpiration > 0 {
		return h.cfg.Cache.DefaultExpiration
	}
	return 30 * time.Minute
}
