package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/davetran/wayfare/internal/pkg/cache"
	"github.com/davetran/wayfare/internal/pkg/logger"
	"github.com/davetran/wayfare/internal/utils"
	"github.com/davetran/wayfare/services/quotes"
)

// QuoteHandler handles HTTP requests for quote operations
type QuoteHandler struct {
	quoteUC  quotes.QuoteUC
	cache    cache.Cache
	validate *validator.Validate
}

// NewQuoteHandler creates a new quote HTTP handler. The cache is
// optional; a nil cache disables response caching.
func NewQuoteHandler(quoteUC quotes.QuoteUC, responseCache cache.Cache) *QuoteHandler {
	return &QuoteHandler{
		quoteUC:  quoteUC,
		cache:    responseCache,
		validate: validator.New(),
	}
}

// RegisterRoutes wires the handler into the echo router
func (h *QuoteHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", h.Health)
	e.GET("/routes", h.GetRoutes)
	e.POST("/routes", h.PostRoutes)
	e.GET("/geocode", h.Geocode)
	e.GET("/transit", h.GetTransitDirections)
	e.GET("/transit/summary", h.GetTransitSummary)
}

// routeRequest is the origin/destination pair accepted by the quote
// endpoints
type routeRequest struct {
	Origin      string `json:"origin" query:"origin" validate:"required,min=3,max=200"`
	Destination string `json:"destination" query:"destination" validate:"required,min=3,max=200"`
}

// Health reports service liveness
func (h *QuoteHandler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok", "service": "quotes"})
}

// GetRoutes aggregates routes and pricing for a query-string trip
func (h *QuoteHandler) GetRoutes(c echo.Context) error {
	req := routeRequest{
		Origin:      c.QueryParam("origin"),
		Destination: c.QueryParam("destination"),
	}
	return h.aggregate(c, req)
}

// PostRoutes aggregates routes and pricing for a JSON-body trip
func (h *QuoteHandler) PostRoutes(c echo.Context) error {
	var req routeRequest
	if err := c.Bind(&req); err != nil {
		logger.Error("Failed to bind request", logger.ErrorField(err))
		return utils.BadRequestResponse(c, "invalid request body")
	}
	return h.aggregate(c, req)
}

func (h *QuoteHandler) aggregate(c echo.Context, req routeRequest) error {
	req.Origin = utils.SanitizeAddress(req.Origin)
	req.Destination = utils.SanitizeAddress(req.Destination)

	if err := h.validate.Struct(req); err != nil {
		return utils.BadRequestResponse(c, "origin and destination must be between 3 and 200 characters")
	}

	cacheKey := cache.Key("routes", req.Origin, req.Destination)
	if body, ok := h.cacheGet(c, cacheKey); ok {
		return c.JSONBlob(http.StatusOK, body)
	}

	quote, err := h.quoteUC.Aggregate(c.Request().Context(), req.Origin, req.Destination)
	if err != nil {
		logger.Error("Failed to aggregate quotes",
			logger.String("origin", req.Origin),
			logger.String("destination", req.Destination),
			logger.ErrorField(err))
		return utils.BadRequestResponse(c, err.Error())
	}

	return h.cachedSuccess(c, cacheKey, "Quotes aggregated successfully", quote)
}

// Geocode resolves a free-text address to coordinates
func (h *QuoteHandler) Geocode(c echo.Context) error {
	address := utils.SanitizeAddress(c.QueryParam("address"))

	req := struct {
		Address string `validate:"required,min=3,max=200"`
	}{Address: address}
	if err := h.validate.Struct(req); err != nil {
		return utils.BadRequestResponse(c, "address must be between 3 and 200 characters")
	}

	point, err := h.quoteUC.GeocodeAddress(c.Request().Context(), address)
	if err != nil {
		logger.Error("Failed to geocode address",
			logger.String("address", address),
			logger.ErrorField(err))
		return utils.BadRequestResponse(c, err.Error())
	}
	if point == nil {
		return utils.NotFoundResponse(c, "address could not be resolved")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Address resolved", point)
}

// GetTransitDirections returns processed transit route alternatives
func (h *QuoteHandler) GetTransitDirections(c echo.Context) error {
	req := routeRequest{
		Origin:      utils.SanitizeAddress(c.QueryParam("origin")),
		Destination: utils.SanitizeAddress(c.QueryParam("destination")),
	}
	if err := h.validate.Struct(req); err != nil {
		return utils.BadRequestResponse(c, "origin and destination must be between 3 and 200 characters")
	}
	departureTime := c.QueryParam("departure_time")

	cacheKey := cache.Key("transit", req.Origin, req.Destination, departureTime)
	if body, ok := h.cacheGet(c, cacheKey); ok {
		return c.JSONBlob(http.StatusOK, body)
	}

	directions, err := h.quoteUC.TransitDirections(c.Request().Context(), req.Origin, req.Destination, departureTime)
	if err != nil {
		logger.Error("Failed to get transit directions",
			logger.String("origin", req.Origin),
			logger.String("destination", req.Destination),
			logger.ErrorField(err))
		return utils.BadRequestResponse(c, err.Error())
	}

	return h.cachedSuccess(c, cacheKey, "Transit directions retrieved", directions)
}

// GetTransitSummary returns the best transit route digest
func (h *QuoteHandler) GetTransitSummary(c echo.Context) error {
	req := routeRequest{
		Origin:      utils.SanitizeAddress(c.QueryParam("origin")),
		Destination: utils.SanitizeAddress(c.QueryParam("destination")),
	}
	if err := h.validate.Struct(req); err != nil {
		return utils.BadRequestResponse(c, "origin and destination must be between 3 and 200 characters")
	}

	summary, err := h.quoteUC.TransitSummary(c.Request().Context(), req.Origin, req.Destination)
	if err != nil {
		logger.Error("Failed to get transit summary",
			logger.String("origin", req.Origin),
			logger.String("destination", req.Destination),
			logger.ErrorField(err))
		return utils.BadRequestResponse(c, err.Error())
	}

	return utils.SuccessResponse(c, http.StatusOK, "Transit summary retrieved", summary)
}

func (h *QuoteHandler) cacheGet(c echo.Context, key string) ([]byte, bool) {
	if h.cache == nil {
		return nil, false
	}
	value, ok := h.cache.Get(c.Request().Context(), key)
	if !ok {
		return nil, false
	}
	return []byte(value), true
}

// cachedSuccess renders the standard success envelope and stores the
// rendered body so cache hits replay the exact same response
func (h *QuoteHandler) cachedSuccess(c echo.Context, key, message string, data interface{}) error {
	envelope := utils.Response{
		Success: true,
		Message: message,
		Data:    data,
	}
	if h.cache != nil {
		if body, err := json.Marshal(envelope); err == nil {
			h.cache.Set(c.Request().Context(), key, string(body))
		}
	}
	return c.JSON(http.StatusOK, envelope)
}
