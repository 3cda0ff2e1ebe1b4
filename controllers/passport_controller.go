// controllers/passport_controller.go
package controllers

import (
	"time"

	"github.com/amrit073/NEPGA/entity"
	"github.com/amrit073/NEPGA/pkg/resp"
	"github.com/amrit073/NEPGA/services"
	"github.com/gin-gonic/gin"
)

type PassportController struct{ Service *services.ApplicationService }

func NewPassportController(s *services.ApplicationService) *PassportController {
	return &PassportController{Service: s}
}

// ===== Request DTO =====
type SubmitApplicationReq struct {
	FullName          string  `json:"full_name" binding:"required"`
	DateOfBirth       string  `json:"date_of_birth" binding:"required"`
	Gender            string  `json:"gender" binding:"required"`
	Address           string  `json:"address" binding:"required"`
	Phone             string  `json:"phone" binding:"required"`
	Email             string  `json:"email" binding:"required"`
	CitizenshipNumber string  `json:"citizenship_number" binding:"required"`
	EmergencyContact  *string `json:"emergency_contact"`
	PassportType      string  `json:"passport_type"`
	AdditionalNotes   *string `json:"additional_notes"`
}

// ===== Response DTO =====
type ApplicationStatusResp struct {
	ApplicationID  string        `json:"application_id"`
	SubmissionDate string        `json:"submission_date"`
	Status         entity.Status `json:"status"`
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

func statusResp(app *entity.Application) ApplicationStatusResp {
	return ApplicationStatusResp{
		ApplicationID:  app.ApplicationID,
		SubmissionDate: formatTime(app.SubmissionDate),
		Status:         app.Status,
	}
}

// POST /api/passport
func (ctl *PassportController) Submit(c *gin.Context) {
	var req SubmitApplicationReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	app, err := ctl.Service.Submit(c.Request.Context(), services.SubmitInput{
		FullName:          req.FullName,
		DateOfBirth:       req.DateOfBirth,
		Gender:            req.Gender,
		Address:           req.Address,
		Phone:             req.Phone,
		Email:             req.Email,
		CitizenshipNumber: req.CitizenshipNumber,
		EmergencyContact:  req.EmergencyContact,
		PassportType:      req.PassportType,
		AdditionalNotes:   req.AdditionalNotes,
	})
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, statusResp(app))
}

// GET /api/passport/:id
func (ctl *PassportController) Status(c *gin.Context) {
	app, err := ctl.Service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, statusResp(app))
}
