package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/AngelRosadoWTF/examenapi-angel/internal/pkg/logging"
	"github.com/AngelRosadoWTF/examenapi-angel/internal/purchases/domain"
	"github.com/gin-gonic/gin"
)

const (
	PurchaseIdKey = "id"

	healthMessage = "Purchases API OK"
)

var routePrefixes = []string{"/purchases", "/api/purchases"}

type PurchaseHandler struct {
	commander domain.PurchaseCommander
	querier   domain.PurchaseQuerier
	logger    logging.Logger
}

func NewPurchaseHandler(commander domain.PurchaseCommander, querier domain.PurchaseQuerier, logger logging.Logger) *PurchaseHandler {
	return &PurchaseHandler{
		commander: commander,
		querier:   querier,
		logger:    logger,
	}
}

func (h *PurchaseHandler) RegisterRoutes(router gin.IRouter) {
	router.GET("/", h.Health)

	for _, prefix := range routePrefixes {
		purchases := router.Group(prefix)
		{
			purchases.GET("", h.ListPurchases)
			purchases.POST("", h.CreatePurchase)
			purchases.GET("/:"+PurchaseIdKey, h.GetPurchase)
			purchases.PUT("/:"+PurchaseIdKey, h.UpdatePurchase)
			purchases.DELETE("/:"+PurchaseIdKey, h.DeletePurchase)
		}
	}
}

func (h *PurchaseHandler) Health(c *gin.Context) {
	c.String(http.StatusOK, healthMessage)
}

func (h *PurchaseHandler) CreatePurchase(c *gin.Context) {
	var body purchaseRequestBody

	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	id, err := h.commander.CreatePurchase(c.Request.Context(), body.toPayload())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": id, "message": "Purchase created"})
}

func (h *PurchaseHandler) UpdatePurchase(c *gin.Context) {
	purchaseId, ok := purchaseIdParam(c)
	if !ok {
		return
	}

	var body purchaseRequestBody

	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	err := h.commander.UpdatePurchase(c.Request.Context(), purchaseId, body.toPayload())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Purchase updated"})
}

func (h *PurchaseHandler) DeletePurchase(c *gin.Context) {
	purchaseId, ok := purchaseIdParam(c)
	if !ok {
		return
	}

	err := h.commander.DeletePurchase(c.Request.Context(), purchaseId)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Purchase deleted"})
}

func (h *PurchaseHandler) GetPurchase(c *gin.Context) {
	purchaseId, ok := purchaseIdParam(c)
	if !ok {
		return
	}

	view, err := h.querier.GetPurchase(c.Request.Context(), purchaseId)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, newPurchaseResponse(view))
}

func (h *PurchaseHandler) ListPurchases(c *gin.Context) {
	views, err := h.querier.ListPurchases(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]purchaseResponse, 0, len(views))
	for _, view := range views {
		resp = append(resp, newPurchaseResponse(view))
	}

	c.JSON(http.StatusOK, resp)
}

func purchaseIdParam(c *gin.Context) (int, bool) {
	purchaseId, err := strconv.Atoi(c.Param(PurchaseIdKey))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid purchase id"})
		return 0, false
	}

	return purchaseId, true
}

func (h *PurchaseHandler) handleError(c *gin.Context, err error) {
	var (
		validationErr *domain.ValidationError
		productErr    *domain.ProductNotFoundError
		userErr       *domain.UserNotFoundError
		stockErr      *domain.InsufficientStockError
		notFoundErr   *domain.PurchaseNotFoundError
		completedErr  *domain.PurchaseCompletedError
	)

	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Error()})
	case errors.As(err, &productErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": productErr.Error()})
	case errors.As(err, &userErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": userErr.Error()})
	case errors.As(err, &stockErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": stockErr.Error()})
	case errors.As(err, &notFoundErr):
		c.JSON(http.StatusNotFound, gin.H{"error": notFoundErr.Error()})
	case errors.As(err, &completedErr):
		c.JSON(http.StatusConflict, gin.H{"error": completedErr.Error()})
	default:
		h.logger.Error("request failed", "method", c.Request.Method, "path", c.Request.URL.Path, "error", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
