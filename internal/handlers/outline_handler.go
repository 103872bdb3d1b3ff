package handlers

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/mghazyfawazh/outlines/internal/catalog"
	"github.com/mghazyfawazh/outlines/internal/export"
	"github.com/mghazyfawazh/outlines/internal/models"
	"github.com/mghazyfawazh/outlines/internal/outline"
	"github.com/mghazyfawazh/outlines/internal/repo"
	"github.com/mghazyfawazh/outlines/internal/weekgrid"
)

type Catalog interface {
	Options(ctx context.Context, path []string) ([]models.Option, error)
	Raw(ctx context.Context, path []string) ([]byte, error)
	Outline(ctx context.Context, path []string) (*models.Outline, error)
}

type Store interface {
	Insert(ctx context.Context, s *models.SavedOutline) error
	FindAll(ctx context.Context) ([]models.SavedOutline, error)
	FindByUUID(ctx context.Context, uuid string) (*models.SavedOutline, error)
	UpdateByUUID(ctx context.Context, uuid string, update bson.M) error
	DeleteByUUID(ctx context.Context, uuid string) error
}

type Handler struct {
	Catalog Catalog
	Store   Store
	Policy  weekgrid.DuplicatePolicy
	Now     func() time.Time
}

func NewHandler(c Catalog, s Store, policy weekgrid.DuplicatePolicy) *Handler {
	return &Handler{Catalog: c, Store: s, Policy: policy, Now: time.Now}
}

// upstreamStatus maps a catalog failure to the status we answer with.
func upstreamStatus(err error) int {
	var se *catalog.StatusError
	if errors.As(err, &se) && se.Code == http.StatusNotFound {
		return http.StatusNotFound
	}
	return http.StatusBadGateway
}

// ListCatalog godoc
// @Summary      List a catalog level
// @Description  Lists the options (years, terms, departments, courses or sections) under a path.
// @Tags         catalog
// @Produce      json
// @Param        path  query     string  false  "slash separated path, e.g. 2024/fall"
// @Success      200   {array}   models.Option
// @Failure      502   {object}  map[string]string
// @Security     ApiKeyAuth
// @Router       /catalog [get]
func (h *Handler) ListCatalog(c *gin.Context) {
	opts, err := h.Catalog.Options(c.Request.Context(), catalog.SplitPath(c.Query("path")))
	if err != nil {
		c.JSON(upstreamStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, opts)
}

// Grid godoc
// @Summary      Week grid of a section
// @Description  Fetches a section outline and lays its weekly meetings out on a Mon..Fri grid.
// @Tags         grid
// @Produce      json,application/yaml,text/plain
// @Param        path    query  string  true   "section path, e.g. 2024/fall/cmpt/120/d100"
// @Param        format  query  string  false  "json (default), pjson, yaml, text or xlsx"
// @Success      200
// @Success      204  "section has no weekly meetings"
// @Failure      400  {object}  map[string]string
// @Failure      422  {object}  map[string]string
// @Security     ApiKeyAuth
// @Router       /grid [get]
func (h *Handler) Grid(c *gin.Context) {
	path := catalog.SplitPath(c.Query("path"))
	if len(path) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "path required"})
		return
	}
	conv, err := export.New(c.DefaultQuery("format", "json"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	o, err := h.Catalog.Outline(c.Request.Context(), path)
	if err != nil {
		c.JSON(outlineStatus(err), gin.H{"error": err.Error()})
		return
	}
	if g, ok := h.buildGrid(c, o); ok {
		writeGrid(c, g, conv)
	}
}

// outlineStatus is upstreamStatus, except that a listing or an undecodable
// document at the path is the caller's mistake.
func outlineStatus(err error) int {
	if errors.Is(err, outline.ErrNotEnoughData) || errors.Is(err, outline.ErrDecode) {
		return http.StatusBadRequest
	}
	return upstreamStatus(err)
}

// buildGrid answers the request itself unless it returns a grid.
func (h *Handler) buildGrid(c *gin.Context, o *models.Outline) (*weekgrid.Grid, bool) {
	g, err := outline.Grid(o, h.Policy)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return nil, false
	}
	if g == nil {
		c.Status(http.StatusNoContent)
		return nil, false
	}
	return g, true
}

func writeGrid(c *gin.Context, g *weekgrid.Grid, conv export.Converter) {
	var buf bytes.Buffer
	if err := conv.Write(&buf, g); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Data(http.StatusOK, conv.ContentType(), buf.Bytes())
}

// Save godoc
// @Summary      Save a section outline
// @Tags         saved
// @Accept       json
// @Produce      json
// @Param        body  body      saveRequest  true  "section path"
// @Success      201   {object}  models.SavedOutline
// @Failure      400   {object}  map[string]string
// @Security     ApiKeyAuth
// @Router       /saved [post]
func (h *Handler) Save(c *gin.Context) {
	var in saveRequest
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	path := catalog.SplitPath(in.Path)
	if len(path) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "path required"})
		return
	}
	raw, err := h.Catalog.Raw(c.Request.Context(), path)
	if err != nil {
		c.JSON(upstreamStatus(err), gin.H{"error": err.Error()})
		return
	}
	s, err := outline.NewSaved(path, raw, h.Now().UTC())
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.Store.Insert(c.Request.Context(), s); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, s)
}

type saveRequest struct {
	Path string `json:"path" binding:"required"`
}

// GetAll godoc
// @Summary  List saved outlines
// @Tags     saved
// @Produce  json
// @Success  200  {array}  models.SavedOutline
// @Security ApiKeyAuth
// @Router   /saved [get]
func (h *Handler) GetAll(c *gin.Context) {
	rows, err := h.Store.FindAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, rows)
}

// GetByUUID godoc
// @Summary  Get a saved outline
// @Tags     saved
// @Produce  json
// @Param    uuid  path      string  true  "saved outline id"
// @Success  200   {object}  models.SavedOutline
// @Failure  404   {object}  map[string]string
// @Security ApiKeyAuth
// @Router   /saved/{uuid} [get]
func (h *Handler) GetByUUID(c *gin.Context) {
	row, ok := h.find(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, row)
}

// Refresh godoc
// @Summary      Refresh a saved outline
// @Description  Fetches the section again and replaces the stored document.
// @Tags         saved
// @Produce      json
// @Param        uuid  path      string  true  "saved outline id"
// @Success      200   {object}  models.SavedOutline
// @Failure      404   {object}  map[string]string
// @Failure      502   {object}  map[string]string
// @Security     ApiKeyAuth
// @Router       /saved/{uuid} [put]
func (h *Handler) Refresh(c *gin.Context) {
	row, ok := h.find(c)
	if !ok {
		return
	}
	raw, err := h.Catalog.Raw(c.Request.Context(), catalog.SplitPath(row.Path))
	if err != nil {
		c.JSON(upstreamStatus(err), gin.H{"error": err.Error()})
		return
	}
	fresh, err := outline.NewSaved(catalog.SplitPath(row.Path), raw, h.Now().UTC())
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	update := bson.M{
		"outline_path": fresh.OutlinePath,
		"name":         fresh.Name,
		"title":        fresh.Title,
		"document":     fresh.Document,
		"updated_at":   fresh.CreatedAt,
	}
	if err := h.Store.UpdateByUUID(c.Request.Context(), row.UUID, update); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	row.OutlinePath, row.Name, row.Title, row.Document = fresh.OutlinePath, fresh.Name, fresh.Title, fresh.Document
	row.UpdatedAt = &fresh.CreatedAt
	c.JSON(http.StatusOK, row)
}

// Delete godoc
// @Summary  Delete a saved outline
// @Tags     saved
// @Param    uuid  path  string  true  "saved outline id"
// @Success  200
// @Failure  404  {object}  map[string]string
// @Security ApiKeyAuth
// @Router   /saved/{uuid} [delete]
func (h *Handler) Delete(c *gin.Context) {
	if err := h.Store.DeleteByUUID(c.Request.Context(), c.Param("uuid")); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "deleted"})
}

// ExportSchedule godoc
// @Summary  Download the week grid of a saved outline
// @Tags     saved
// @Produce  application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param    uuid  path  string  true  "saved outline id"
// @Success  200
// @Success  204  "outline has no weekly meetings"
// @Failure  404  {object}  map[string]string
// @Failure  422  {object}  map[string]string
// @Security ApiKeyAuth
// @Router   /saved/{uuid}/schedule.xlsx [get]
func (h *Handler) ExportSchedule(c *gin.Context) {
	row, ok := h.find(c)
	if !ok {
		return
	}
	o, err := outline.Parse([]byte(row.Document))
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}
	g, ok := h.buildGrid(c, o)
	if !ok {
		return
	}
	name := row.Name
	if name == "" {
		name = "schedule"
	}
	c.Header("Content-Disposition", `attachment; filename="`+strings.ReplaceAll(strings.ToLower(name), " ", "_")+`.xlsx"`)
	writeGrid(c, g, export.XLSXConverter{})
}

func (h *Handler) find(c *gin.Context) (*models.SavedOutline, bool) {
	row, err := h.Store.FindByUUID(c.Request.Context(), c.Param("uuid"))
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return nil, false
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return nil, false
	}
	return row, true
}
