package handler

import (
	"fmt"
	"net/http"

	"creator-paygate/internal/adapter/http/dto"
	"creator-paygate/internal/adapter/http/middleware"
	"creator-paygate/internal/core/ports"
	"creator-paygate/internal/x402"
	"creator-paygate/pkg/apperror"
	"creator-paygate/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ContentHandler handles the gated content endpoints.
type ContentHandler struct {
	gateSvc    ports.GateService
	contentSvc ports.ContentService
}

// NewContentHandler creates a new ContentHandler.
func NewContentHandler(gateSvc ports.GateService, contentSvc ports.ContentService) *ContentHandler {
	return &ContentHandler{gateSvc: gateSvc, contentSvc: contentSvc}
}

// Get handles GET /content/:id — the gated read.
func (h *ContentHandler) Get(c *gin.Context) {
	h.serve(c, false)
}

// Download handles GET /content/:id/download — the gated read with an
// attachment disposition, for file content only.
func (h *ContentHandler) Download(c *gin.Context) {
	h.serve(c, true)
}

func (h *ContentHandler) serve(c *gin.Context, asAttachment bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.ErrInvalidContentID())
		return
	}

	res, err := h.gateSvc.Access(c.Request.Context(), ports.AccessRequest{
		ContentID:     id,
		Method:        c.Request.Method,
		PaymentHeader: c.GetHeader(x402.PaymentHeader),
		RequireFile:   asAttachment,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	if res.Relay != nil {
		response.Relay(c, res.Relay.Status, res.Relay.Headers, res.Relay.Body)
		return
	}

	content := res.Content
	if content.IsFile() {
		disposition := "inline"
		if asAttachment {
			disposition = "attachment"
		}
		c.Header("Content-Disposition", fmt.Sprintf("%s; filename=%q", disposition, content.FileName))
		if res.Message != "" {
			c.Header("X-Payment-Message", res.Message)
		}
		contentType := content.ContentType
		if contentType == "" {
			contentType = "application/octet-stream"
		}
		c.Data(http.StatusOK, contentType, res.Payload)
		return
	}

	c.JSON(http.StatusOK, dto.NewArticleResponse(content, res.Message))
}

// GetMeta handles GET /content/:id/meta — the public, ungated metadata.
func (h *ContentHandler) GetMeta(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.ErrInvalidContentID())
		return
	}

	content, err := h.contentSvc.GetMeta(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.NewContentMetaResponse(content))
}

// UpdatePayee handles PATCH /content/:id/payee (JWT-authenticated).
func (h *ContentHandler) UpdatePayee(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.ErrInvalidContentID())
		return
	}

	var req dto.UpdatePayeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.ErrInvalidPayee())
		return
	}

	creatorID, ok := creatorIDFromContext(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	content, err := h.contentSvc.UpdatePayee(c.Request.Context(), id, creatorID, req.PayeeAddress)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.NewContentMetaResponse(content))
}

// ListMine handles GET /content (JWT-authenticated). It returns the metadata
// of everything the authenticated creator has published.
func (h *ContentHandler) ListMine(c *gin.Context) {
	creatorID, ok := creatorIDFromContext(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	items, err := h.contentSvc.ListByCreator(c.Request.Context(), creatorID)
	if err != nil {
		response.Error(c, err)
		return
	}

	out := make([]dto.ContentMetaResponse, 0, len(items))
	for i := range items {
		out = append(out, dto.NewContentMetaResponse(&items[i]))
	}
	response.OK(c, out)
}

func creatorIDFromContext(c *gin.Context) (uuid.UUID, bool) {
	v, exists := c.Get(middleware.CtxCreatorID)
	if !exists {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok
}
