package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tailorhq/resume-tailor/internal/models"
	"github.com/tailorhq/resume-tailor/internal/services"
	"github.com/tailorhq/resume-tailor/internal/utils"
)

type JobHandler struct {
	svc services.JobService
}

func NewJobHandler(svc services.JobService) *JobHandler {
	return &JobHandler{svc: svc}
}

type CreateJobRequest struct {
	Title        string   `json:"title" binding:"required"`
	Company      string   `json:"company" binding:"required"`
	Description  string   `json:"description" binding:"required"`
	Requirements []string `json:"requirements"`
	Keywords     []string `json:"keywords"`
}

func (h *JobHandler) Create(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req CreateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "JobHandler.Create", "title, company, and description are required", err))
		return
	}

	job, err := h.svc.Create(c.Request.Context(), userID, &models.JobDescription{
		Title:        req.Title,
		Company:      req.Company,
		Description:  req.Description,
		Requirements: req.Requirements,
		Keywords:     req.Keywords,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	writeData(c, http.StatusCreated, job)
}

func (h *JobHandler) List(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	jobs, err := h.svc.List(c.Request.Context(), userID)
	if err != nil {
		writeError(c, err)
		return
	}

	writeData(c, http.StatusOK, jobs)
}
