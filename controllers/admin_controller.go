package controllers

import (
	"strconv"

	"github.com/amrit073/NEPGA/entity"
	"github.com/amrit073/NEPGA/pkg/resp"
	"github.com/amrit073/NEPGA/services"
	"github.com/gin-gonic/gin"
)

type AdminController struct {
	Auth         *services.AuthService
	Applications *services.ApplicationService
}

func NewAdminController(auth *services.AuthService, apps *services.ApplicationService) *AdminController {
	return &AdminController{Auth: auth, Applications: apps}
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginResp struct {
	Token     string `json:"token"`
	TokenType string `json:"token_type"`
	ExpiresAt string `json:"expires_at"`
}

type StatusUpdateReq struct {
	Status string `json:"status" binding:"required"`
}

type ApplicationListItem struct {
	ApplicationID  string        `json:"application_id"`
	FullName       string        `json:"full_name"`
	SubmissionDate string        `json:"submission_date"`
	PassportType   string        `json:"passport_type"`
	Status         entity.Status `json:"status"`
}

type ApplicationListResp struct {
	Applications []ApplicationListItem `json:"applications"`
	Total        int64                 `json:"total"`
	Page         int                   `json:"page"`
	Limit        int                   `json:"limit"`
}

type ApplicationDetailResp struct {
	ApplicationID     string        `json:"application_id"`
	FullName          string        `json:"full_name"`
	DateOfBirth       string        `json:"date_of_birth"`
	Gender            string        `json:"gender"`
	Address           string        `json:"address"`
	Phone             string        `json:"phone"`
	Email             string        `json:"email"`
	CitizenshipNumber string        `json:"citizenship_number"`
	EmergencyContact  *string       `json:"emergency_contact"`
	PassportType      string        `json:"passport_type"`
	AdditionalNotes   *string       `json:"additional_notes"`
	SubmissionDate    string        `json:"submission_date"`
	Status            entity.Status `json:"status"`
}

// POST /api/admin/login
func (ac *AdminController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		// a malformed body is just another failed login
		resp.Unauthorized(c, "Incorrect username or password")
		return
	}

	token, expiresAt, err := ac.Auth.Login(req.Username, req.Password)
	if err != nil {
		resp.Unauthorized(c, "Incorrect username or password")
		return
	}
	resp.OK(c, LoginResp{Token: token, TokenType: "bearer", ExpiresAt: formatTime(expiresAt)})
}

// GET /api/admin/applications?page=&limit=
func (ac *AdminController) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(services.DefaultPageLimit)))

	p, err := ac.Applications.List(c.Request.Context(), page, limit)
	if err != nil {
		resp.Error(c, err)
		return
	}

	items := make([]ApplicationListItem, 0, len(p.Items))
	for _, a := range p.Items {
		items = append(items, ApplicationListItem{
			ApplicationID:  a.ApplicationID,
			FullName:       a.FullName,
			SubmissionDate: formatTime(a.SubmissionDate),
			PassportType:   a.PassportType,
			Status:         a.Status,
		})
	}
	resp.OK(c, ApplicationListResp{Applications: items, Total: p.Total, Page: p.Page, Limit: p.Limit})
}

// GET /api/admin/applications/:id
func (ac *AdminController) Detail(c *gin.Context) {
	a, err := ac.Applications.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, ApplicationDetailResp{
		ApplicationID:     a.ApplicationID,
		FullName:          a.FullName,
		DateOfBirth:       a.DateOfBirth,
		Gender:            a.Gender,
		Address:           a.Address,
		Phone:             a.Phone,
		Email:             a.Email,
		CitizenshipNumber: a.CitizenshipNumber,
		EmergencyContact:  a.EmergencyContact,
		PassportType:      a.PassportType,
		AdditionalNotes:   a.AdditionalNotes,
		SubmissionDate:    formatTime(a.SubmissionDate),
		Status:            a.Status,
	})
}

// PUT /api/admin/applications/:id/status
func (ac *AdminController) UpdateStatus(c *gin.Context) {
	var req StatusUpdateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "Invalid status")
		return
	}

	if _, err := ac.Applications.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "Status updated successfully"})
}

// GET /api/admin/summary
func (ac *AdminController) Summary(c *gin.Context) {
	counts, err := ac.Applications.Summary(c.Request.Context())
	if err != nil {
		resp.Error(c, err)
		return
	}

	var total int64
	byStatus := make(gin.H, len(counts))
	for s, n := range counts {
		byStatus[s.String()] = n
		total += n
	}
	resp.OK(c, gin.H{"total": total, "by_status": byStatus})
}
