package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/roni9843/sonakanda-backend/internal/application"
	"github.com/roni9843/sonakanda-backend/internal/domain/entity"
	"github.com/roni9843/sonakanda-backend/internal/interface/middleware"
	"github.com/roni9843/sonakanda-backend/pkg/response"
	"github.com/roni9843/sonakanda-backend/pkg/validation"
)

type AuthHandler struct {
	Svc    *application.Service
	Logger *logrus.Logger
}

func NewAuthHandler(svc *application.Service, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{Svc: svc, Logger: logger}
}

type registerRequest struct {
	NameEN       string `json:"name_en" binding:"required"`
	NIDNumber    string `json:"nid_number" binding:"required"`
	MobileNumber string `json:"mobile_number" binding:"required"`
	Password     string `json:"password" binding:"required"`

	NameBN                string `json:"name_bn"`
	DateOfBirth           string `json:"date_of_birth"`
	EmergencyMobileNumber string `json:"emergency_mobile_number"`
	BloodGroup            string `json:"blood_group"`
	FatherName            string `json:"father_name"`
	MotherName            string `json:"mother_name"`
	SchoolOrCollegeName   string `json:"school_or_college_name"`
	CurrentProfession     string `json:"current_profession"`

	Birthplace       *entity.Birthplace       `json:"birthplace"`
	PermanentAddress *entity.PermanentAddress `json:"permanent_address"`
}

func (r *registerRequest) toInput() application.RegisterInput {
	return application.RegisterInput{
		NameEN:                r.NameEN,
		NIDNumber:             r.NIDNumber,
		MobileNumber:          r.MobileNumber,
		Password:              r.Password,
		NameBN:                r.NameBN,
		DateOfBirth:           r.DateOfBirth,
		EmergencyMobileNumber: r.EmergencyMobileNumber,
		BloodGroup:            r.BloodGroup,
		FatherName:            r.FatherName,
		MotherName:            r.MotherName,
		SchoolOrCollegeName:   r.SchoolOrCollegeName,
		CurrentProfession:     r.CurrentProfession,
		Birthplace:            r.Birthplace,
		PermanentAddress:      r.PermanentAddress,
	}
}

type loginRequest struct {
	MobileNumber string `json:"mobile_number" binding:"required"`
	Password     string `json:"password" binding:"required"`
}

// Register handles POST /api/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Missing required fields", validation.ToDetails(err))
		return
	}

	u, err := h.Svc.Register(c.Request.Context(), req.toInput())
	if err != nil {
		var conflict *application.ConflictError
		if errors.As(err, &conflict) {
			response.Error(c, http.StatusConflict, "User already exists with provided credentials", conflict.Fields())
			return
		}
		h.Logger.WithError(err).Error("register failed")
		response.Error(c, http.StatusInternalServerError, "Failed to register user", nil)
		return
	}

	response.Success(c, http.StatusCreated, "User registered successfully", u.PublicView())
}

// Login handles POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "mobile_number and password are required", validation.ToDetails(err))
		return
	}

	token, _, u, err := h.Svc.Login(c.Request.Context(), req.MobileNumber, req.Password)
	if err != nil {
		if errors.Is(err, application.ErrInvalidCredentials) {
			response.Error(c, http.StatusUnauthorized, "Invalid credentials", nil)
			return
		}
		h.Logger.WithError(err).Error("login failed")
		response.Error(c, http.StatusInternalServerError, "Failed to login user", nil)
		return
	}

	response.Success(c, http.StatusOK, "Login successful", gin.H{
		"token": token,
		"user":  u.PublicView(),
	})
}

// Profile handles GET /api/auth/profile. The auth gate has already verified
// the token; existence is re-checked here because the user may be gone.
func (h *AuthHandler) Profile(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	if uid == "" {
		response.Error(c, http.StatusUnauthorized, "Unauthorized", nil)
		return
	}

	u, err := h.Svc.GetProfile(c.Request.Context(), uid)
	if err != nil {
		if errors.Is(err, application.ErrUserNotFound) {
			response.Error(c, http.StatusNotFound, "User not found", nil)
			return
		}
		h.Logger.WithError(err).WithField("user_id", uid).Error("fetch profile failed")
		response.Error(c, http.StatusInternalServerError, "Failed to fetch profile", nil)
		return
	}

	response.Success(c, http.StatusOK, "Profile fetched successfully", u.PublicView())
}
