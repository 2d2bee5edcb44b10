package controllers

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/muhammadnuman-eng/shawarmabackend/entity"
	"github.com/muhammadnuman-eng/shawarmabackend/pkg/resp"
	"github.com/muhammadnuman-eng/shawarmabackend/repository"
	"github.com/muhammadnuman-eng/shawarmabackend/services"
)

type AdminController struct {
	OrderSvc  *services.OrderService
	Settings  *services.SettingService
	OrderRepo *repository.OrderRepository
	PromoRepo *repository.PromoRepository
}

func NewAdminController(
	orderSvc *services.OrderService,
	settings *services.SettingService,
	orderRepo *repository.OrderRepository,
	promoRepo *repository.PromoRepository,
) *AdminController {
	return &AdminController{OrderSvc: orderSvc, Settings: settings, OrderRepo: orderRepo, PromoRepo: promoRepo}
}

// GET /admin/orders
func (h *AdminController) Orders(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	rows, total, err := h.OrderRepo.ListOrders(c.Query("status"), page, limit)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"orders": rows, "total": total, "page": page, "limit": limit})
}

// POST /admin/orders/:id/status — operational state-machine entry point
func (h *AdminController) UpdateOrderStatus(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var body struct {
		Status  string `json:"status" binding:"required"`
		Message string `json:"message"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if err := h.OrderSvc.Transition(uint(id), strings.ToLower(body.Status), body.Message); err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, gin.H{"orderId": id, "status": strings.ToLower(body.Status)})
}

type createPromoReq struct {
	Code           string   `json:"code" binding:"required"`
	DiscountType   string   `json:"discountType" binding:"required,oneof=percentage fixed"`
	DiscountValue  float64  `json:"discountValue" binding:"required,gt=0"`
	MinOrderAmount float64  `json:"minOrderAmount"`
	MaxDiscount    *float64 `json:"maxDiscount"`
	UsageLimit     *int     `json:"usageLimit"`
}

// POST /admin/promotions
func (h *AdminController) CreatePromo(c *gin.Context) {
	var req createPromoReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	promo := entity.PromoCode{
		Code:           req.Code,
		DiscountType:   req.DiscountType,
		DiscountValue:  req.DiscountValue,
		MinOrderAmount: req.MinOrderAmount,
		MaxDiscount:    req.MaxDiscount,
		UsageLimit:     req.UsageLimit,
		IsActive:       true,
	}
	if err := h.PromoRepo.Create(&promo); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, promo)
}

// GET /admin/settings/registration
func (h *AdminController) RegistrationSetting(c *gin.Context) {
	enabled, err := h.Settings.RegistrationEnabled()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"registrationEnabled": enabled})
}

// PUT /admin/settings/registration
func (h *AdminController) SetRegistrationSetting(c *gin.Context) {
	var body struct {
		Enabled *bool `json:"enabled" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if err := h.Settings.SetRegistrationEnabled(*body.Enabled); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"registrationEnabled": *body.Enabled})
}
