// Package web exposes the dosing engine over HTTP.
package web

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"gardenpip/catalog"
	"gardenpip/dosing"
	"gardenpip/schedule"
)

type Handler struct {
	cat   *catalog.Catalog
	store schedule.Store
}

func nowUTC() time.Time {
	return time.Now().UTC()
}

// NewHandler builds a handler over a loaded catalog and a schedule store.
func NewHandler(cat *catalog.Catalog, store schedule.Store) *Handler {
	return &Handler{cat: cat, store: store}
}

// Routes wires the API onto a gin engine with the default middleware.
func (h *Handler) Routes() *gin.Engine {
	r := gin.Default()
	h.Register(r)
	return r
}

// Register attaches the routes to an existing engine (used by tests to run
// without gin's default middleware).
func (h *Handler) Register(r *gin.Engine) {
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	api := r.Group("/api")
	api.GET("/catalog", h.CatalogIndex())
	api.POST("/calculate", h.Calculate())
	api.GET("/schedule", h.Schedule())
}

// productIndex is the selector-population view of one product.
type productIndex struct {
	Manufacturer string   `json:"manufacturer"`
	Series       string   `json:"series"`
	Stages       []string `json:"stages"`
	Units        []string `json:"units"`
}

//
// --------------------------------------------------
// GET /api/catalog
// --------------------------------------------------
//

func (h *Handler) CatalogIndex() gin.HandlerFunc {
	return func(c *gin.Context) {
		products := make([]productIndex, 0, len(h.cat.Nutrients))
		for i := range h.cat.Nutrients {
			p := &h.cat.Nutrients[i]
			products = append(products, productIndex{
				Manufacturer: p.Manufacturer,
				Series:       p.Series,
				Stages:       p.StageNames(),
				Units:        p.UnitSystems(),
			})
		}
		c.JSON(http.StatusOK, gin.H{
			"products":    products,
			"categories":  h.cat.Categories(),
			"supplements": h.cat.SupplementNames(),
		})
	}
}

//
// --------------------------------------------------
// POST /api/calculate
// --------------------------------------------------
//

func (h *Handler) Calculate() gin.HandlerFunc {
	return func(c *gin.Context) {
		var sel dosing.Selection
		if err := c.ShouldBindJSON(&sel); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}

		result, err := dosing.Calculate(h.cat, sel)
		if err != nil {
			c.JSON(statusFor(err), gin.H{"error": err.Error()})
			return
		}

		entry := schedule.NewEntry(sel, result, nowUTC())
		if err := h.store.Append(entry); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to log schedule entry"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"lines": result.Lines,
			"doses": result.Doses,
			"entry": entry,
		})
	}
}

//
// --------------------------------------------------
// GET /api/schedule
// --------------------------------------------------
//

func (h *Handler) Schedule() gin.HandlerFunc {
	return func(c *gin.Context) {
		entries, err := h.store.All()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if entries == nil {
			entries = []schedule.Entry{}
		}
		c.JSON(http.StatusOK, gin.H{"entries": entries})
	}
}

// statusFor maps dosing validation errors onto HTTP statuses: missing
// catalog entities are 404, bad selection fields are 400, anything else is
// a 500.
func statusFor(err error) int {
	switch {
	case errors.Is(err, dosing.ErrUnknownProduct), errors.Is(err, dosing.ErrUnknownStage):
		return http.StatusNotFound
	case errors.Is(err, dosing.ErrUnknownCategory), errors.Is(err, dosing.ErrUnknownUnit), errors.Is(err, dosing.ErrInvalidVolume):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
