package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/resumeforge/resumeforge/server/internal/resume"
	"github.com/resumeforge/resumeforge/server/internal/sessions"
)

// ResumeHandler exposes editing sessions over HTTP: one session per browser
// tab, each holding its own document store and form controllers.
type ResumeHandler struct {
	svc *sessions.Service
}

func NewResumeHandler(svc *sessions.Service) *ResumeHandler {
	return &ResumeHandler{svc: svc}
}

// Register routes under /api/sessions
func (h *ResumeHandler) Register(r *gin.Engine) {
	s := r.Group("/api/sessions")
	s.POST("", h.CreateSession)
	s.GET("/:id", h.GetSnapshot)
	s.DELETE("/:id", h.DeleteSession)
	s.POST("/:id/reset", h.Reset)
	s.PUT("/:id/template", h.SetTemplate)
	s.GET("/:id/errors", h.AllErrors)
	s.GET("/:id/preview", h.Preview)

	s.PATCH("/:id/personal", h.PatchPersonal)
	s.POST("/:id/personal/blur", h.BlurPersonal)

	s.POST("/:id/experience", h.AddExperience)
	s.PATCH("/:id/experience/:entryID", h.PatchExperience)
	s.POST("/:id/experience/:entryID/blur", h.BlurExperience)
	s.DELETE("/:id/experience/:entryID", h.RemoveExperience)

	s.POST("/:id/education", h.AddEducation)
	s.PATCH("/:id/education/:entryID", h.PatchEducation)
	s.POST("/:id/education/:entryID/blur", h.BlurEducation)
	s.DELETE("/:id/education/:entryID", h.RemoveEducation)

	s.POST("/:id/skills", h.AddSkill)
	s.PATCH("/:id/skills/:entryID", h.PatchSkill)
	s.POST("/:id/skills/:entryID/blur", h.BlurSkill)
	s.DELETE("/:id/skills/:entryID", h.RemoveSkill)
}

// session resolves the :id path param, answering 404 for unknown or
// expired ids.
func (h *ResumeHandler) session(c *gin.Context) *sessions.Session {
	sess := h.svc.Get(c.Param("id"))
	if sess == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
	}
	return sess
}

type blurRequest struct {
	Field resume.Field `json:"field" binding:"required"`
}

func (h *ResumeHandler) CreateSession(c *gin.Context) {
	sess := h.svc.Create()
	c.JSON(http.StatusCreated, gin.H{"id": sess.ID})
}

func (h *ResumeHandler) GetSnapshot(c *gin.Context) {
	sess := h.session(c)
	if sess == nil {
		return
	}
	c.JSON(http.StatusOK, sess.Store.Snapshot())
}

func (h *ResumeHandler) DeleteSession(c *gin.Context) {
	h.svc.Delete(c.Param("id"))
	c.Status(http.StatusNoContent)
}

func (h *ResumeHandler) Reset(c *gin.Context) {
	sess := h.session(c)
	if sess == nil {
		return
	}
	sess.Store.Reset()
	c.JSON(http.StatusOK, sess.Store.Snapshot())
}

func (h *ResumeHandler) SetTemplate(c *gin.Context) {
	sess := h.session(c)
	if sess == nil {
		return
	}
	var req struct {
		Template resume.TemplateID `json:"template" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !sess.Store.SetTemplate(req.Template) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown template: " + string(req.Template)})
		return
	}
	c.JSON(http.StatusOK, sess.Store.Snapshot())
}

// AllErrors returns every recorded validation message, grouped by section.
func (h *ResumeHandler) AllErrors(c *gin.Context) {
	sess := h.session(c)
	if sess == nil {
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"personalInfo": sess.Personal.Errors(),
		"experience":   sess.Experience.All(),
		"education":    sess.Education.All(),
		"skills":       sess.Skills.All(),
	})
}

func (h *ResumeHandler) Preview(c *gin.Context) {
	sess := h.session(c)
	if sess == nil {
		return
	}
	html, err := sess.Preview.HTML()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.Header("Content-Type", "text/html; charset=utf-8")
	c.String(http.StatusOK, html)
}

func (h *ResumeHandler) PatchPersonal(c *gin.Context) {
	sess := h.session(c)
	if sess == nil {
		return
	}
	var patch resume.PersonalInfoPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	sess.Personal.Change(patch)
	c.JSON(http.StatusOK, sess.Store.Snapshot())
}

func (h *ResumeHandler) BlurPersonal(c *gin.Context) {
	sess := h.session(c)
	if sess == nil {
		return
	}
	var req blurRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	sess.Personal.Blur(req.Field)
	c.JSON(http.StatusOK, gin.H{"errors": sess.Personal.Errors()})
}

func (h *ResumeHandler) AddExperience(c *gin.Context) {
	sess := h.session(c)
	if sess == nil {
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": sess.Experience.Add()})
}

func (h *ResumeHandler) PatchExperience(c *gin.Context) {
	sess := h.session(c)
	if sess == nil {
		return
	}
	var patch resume.ExperiencePatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	sess.Experience.Change(c.Param("entryID"), patch)
	c.JSON(http.StatusOK, sess.Store.Snapshot())
}

func (h *ResumeHandler) BlurExperience(c *gin.Context) {
	sess := h.session(c)
	if sess == nil {
		return
	}
	var req blurRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	id := c.Param("entryID")
	sess.Experience.Blur(id, req.Field)
	c.JSON(http.StatusOK, gin.H{"errors": sess.Experience.Errors(id)})
}

func (h *ResumeHandler) RemoveExperience(c *gin.Context) {
	sess := h.session(c)
	if sess == nil {
		return
	}
	sess.Experience.Remove(c.Param("entryID"))
	c.JSON(http.StatusOK, sess.Store.Snapshot())
}

func (h *ResumeHandler) AddEducation(c *gin.Context) {
	sess := h.session(c)
	if sess == nil {
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": sess.Education.Add()})
}

func (h *ResumeHandler) PatchEducation(c *gin.Context) {
	sess := h.session(c)
	if sess == nil {
		return
	}
	var patch resume.EducationPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	sess.Education.Change(c.Param("entryID"), patch)
	c.JSON(http.StatusOK, sess.Store.Snapshot())
}

func (h *ResumeHandler) BlurEducation(c *gin.Context) {
	sess := h.session(c)
	if sess == nil {
		return
	}
	var req blurRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	id := c.Param("entryID")
	sess.Education.Blur(id, req.Field)
	c.JSON(http.StatusOK, gin.H{"errors": sess.Education.Errors(id)})
}

func (h *ResumeHandler) RemoveEducation(c *gin.Context) {
	sess := h.session(c)
	if sess == nil {
		return
	}
	sess.Education.Remove(c.Param("entryID"))
	c.JSON(http.StatusOK, sess.Store.Snapshot())
}

func (h *ResumeHandler) AddSkill(c *gin.Context) {
	sess := h.session(c)
	if sess == nil {
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": sess.Skills.Add()})
}

func (h *ResumeHandler) PatchSkill(c *gin.Context) {
	sess := h.session(c)
	if sess == nil {
		return
	}
	var patch resume.SkillPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	sess.Skills.Change(c.Param("entryID"), patch)
	c.JSON(http.StatusOK, sess.Store.Snapshot())
}

func (h *ResumeHandler) BlurSkill(c *gin.Context) {
	sess := h.session(c)
	if sess == nil {
		return
	}
	var req blurRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	id := c.Param("entryID")
	sess.Skills.Blur(id, req.Field)
	c.JSON(http.StatusOK, gin.H{"errors": sess.Skills.Errors(id)})
}

func (h *ResumeHandler) RemoveSkill(c *gin.Context) {
	sess := h.session(c)
	if sess == nil {
		return
	}
	sess.Skills.Remove(c.Param("entryID"))
	c.JSON(http.StatusOK, sess.Store.Snapshot())
}
