package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/resumeforge/resumeforge/server/internal/publish"
	"github.com/resumeforge/resumeforge/server/pkg/logger"
)

// GenerateHandler implements the resume URL endpoint: POST validates and
// claims a username, GET answers availability checks while typing.
type GenerateHandler struct {
	publicURL string
	registry  *publish.Registry
}

// NewGenerateHandler creates the handler. publicURL is the base under which
// generated resume URLs live; registry may be backed by a nil Redis client.
func NewGenerateHandler(publicURL string, registry *publish.Registry) *GenerateHandler {
	return &GenerateHandler{publicURL: strings.TrimRight(publicURL, "/"), registry: registry}
}

// Register routes under /api/generate
func (h *GenerateHandler) Register(r *gin.Engine) {
	r.POST("/api/generate", h.Generate)
	r.GET("/api/generate", h.CheckAvailability)
}

type generateRequest struct {
	Username   string          `json:"username"`
	ResumeData json.RawMessage `json:"resumeData"`
}

// Generate validates the username and the resumeData shape, then claims the
// name and returns the public URL. Validation failures are 400 with
// structured field/message pairs; anything unexpected is a logged 500 with
// a generic message.
func (h *GenerateHandler) Generate(c *gin.Context) {
	var req generateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON body"})
		return
	}

	details := publish.ValidateUsername(req.Username)
	if len(req.ResumeData) == 0 {
		details = append(details, publish.FieldError{Field: "resumeData", Message: "Resume data is required"})
	} else {
		schemaErrs, err := publish.ValidateResumeData(req.ResumeData)
		if err != nil {
			logger.Errorf("generate: resume data validation failed to run: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}
		details = append(details, schemaErrs...)
	}
	if len(details) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": details})
		return
	}

	if publish.Reserved(req.Username) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Username is reserved"})
		return
	}

	ok, err := h.registry.Claim(c.Request.Context(), req.Username)
	if err != nil {
		logger.Errorf("generate: username claim failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Username is already taken"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"url":      h.publicURL + "/" + req.Username,
		"username": req.Username,
		"message":  "Resume URL generated successfully",
	})
}

// CheckAvailability answers GET ?username= checks. Format failures never
// produce an error status here; the UI polls this on every keystroke and a
// malformed name is just "not available".
func (h *GenerateHandler) CheckAvailability(c *gin.Context) {
	username := c.Query("username")
	if username == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Username is required"})
		return
	}

	if errs := publish.ValidateUsername(username); len(errs) > 0 {
		c.JSON(http.StatusOK, gin.H{"available": false, "username": username, "error": errs[0].Message})
		return
	}

	available := !publish.Reserved(username)
	if available {
		claimed, err := h.registry.Claimed(c.Request.Context(), username)
		if err != nil {
			logger.Errorf("generate: availability check failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}
		available = !claimed
	}

	c.JSON(http.StatusOK, gin.H{"available": available, "username": username})
}
