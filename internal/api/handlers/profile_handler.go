package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tailorhq/resume-tailor/internal/models"
	"github.com/tailorhq/resume-tailor/internal/services"
	"github.com/tailorhq/resume-tailor/internal/utils"
)

type ProfileHandler struct {
	svc services.ProfileService
}

func NewProfileHandler(svc services.ProfileService) *ProfileHandler {
	return &ProfileHandler{svc: svc}
}

// Me returns the stored base resume. A user with no profile yet gets
// success with null data, not a 404 — the dashboard treats both the same.
func (h *ProfileHandler) Me(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	p, err := h.svc.GetMe(c.Request.Context(), userID)
	if err != nil {
		writeError(c, err)
		return
	}
	if p == nil {
		c.JSON(http.StatusOK, Envelope{Success: true, Data: nil})
		return
	}

	writeData(c, http.StatusOK, p)
}

type SaveProfileRequest struct {
	ResumeContent *models.ResumeContent `json:"resume_content"`
	RawText       string                `json:"rawText"`
}

func (h *ProfileHandler) Save(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req SaveProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "ProfileHandler.Save", "invalid request body", err))
		return
	}

	content := req.ResumeContent
	if content == nil && req.RawText != "" {
		content = &models.ResumeContent{RawText: req.RawText}
	}
	if content == nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "ProfileHandler.Save", "resume content is required", nil))
		return
	}

	p, err := h.svc.Save(c.Request.Context(), userID, content)
	if err != nil {
		writeError(c, err)
		return
	}

	writeData(c, http.StatusOK, p)
}
