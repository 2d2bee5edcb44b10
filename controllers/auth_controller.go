package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/muhammadnuman-eng/shawarmabackend/pkg/resp"
	"github.com/muhammadnuman-eng/shawarmabackend/services"
	"github.com/muhammadnuman-eng/shawarmabackend/utils"
)

type AuthController struct{ Svc *services.AuthService }

func NewAuthController(s *services.AuthService) *AuthController { return &AuthController{Svc: s} }

type registerReq struct {
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=6"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	PhoneNumber string `json:"phoneNumber"`
}

func (h *AuthController) Register(c *gin.Context) {
	var req registerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	user, err := h.Svc.Register(req.Email, req.Password, req.FirstName, req.LastName, req.PhoneNumber)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.Created(c, user)
}

type loginReq struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (h *AuthController) Login(c *gin.Context) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	token, user, err := h.Svc.Login(req.Email, req.Password)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, gin.H{"token": token, "user": user})
}

func (h *AuthController) Me(c *gin.Context) {
	user, err := h.Svc.GetProfile(utils.CurrentUserID(c))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, user)
}
