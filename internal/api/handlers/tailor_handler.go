package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tailorhq/resume-tailor/internal/models"
	"github.com/tailorhq/resume-tailor/internal/services"
	"github.com/tailorhq/resume-tailor/internal/utils"
)

type TailorHandler struct {
	svc services.TailorService
}

func NewTailorHandler(svc services.TailorService) *TailorHandler {
	return &TailorHandler{svc: svc}
}

// TailorRequest carries either a stored job reference or an inline job, and
// optionally an inline resume. With no resume fields the stored profile
// resume is used.
type TailorRequest struct {
	JobDescriptionID string `json:"jobDescriptionId"`

	Title        string   `json:"title"`
	Company      string   `json:"company"`
	Description  string   `json:"description"`
	Requirements []string `json:"requirements"`

	ResumeContent *models.ResumeContent `json:"resumeContent"`
	RawText       string                `json:"rawText"`
}

func (h *TailorHandler) Tailor(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req TailorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "TailorHandler.Tailor", "invalid request body", err))
		return
	}

	in := services.TailorInput{
		JobDescriptionID: req.JobDescriptionID,
		Resume:           req.ResumeContent,
		RawText:          req.RawText,
	}
	if req.JobDescriptionID == "" {
		in.Job = &models.JobDescription{
			Title:        req.Title,
			Company:      req.Company,
			Description:  req.Description,
			Requirements: req.Requirements,
		}
	}

	result, err := h.svc.Tailor(c.Request.Context(), userID, in)
	if err != nil {
		writeError(c, err)
		return
	}

	writeData(c, http.StatusOK, result)
}

func (h *TailorHandler) History(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	results, err := h.svc.History(c.Request.Context(), userID)
	if err != nil {
		writeError(c, err)
		return
	}

	writeData(c, http.StatusOK, results)
}
