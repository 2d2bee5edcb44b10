package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/muhammadnuman-eng/shawarmabackend/pkg/resp"
	"github.com/muhammadnuman-eng/shawarmabackend/services"
	"github.com/muhammadnuman-eng/shawarmabackend/utils"
)

type OrderController struct{ Svc *services.OrderService }

func NewOrderController(s *services.OrderService) *OrderController { return &OrderController{Svc: s} }

// POST /orders
func (h *OrderController) Create(c *gin.Context) {
	uid := utils.CurrentUserID(c)

	var req services.CreateOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	out, err := h.Svc.Create(uid, &req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.Created(c, out)
}

// GET /orders
func (h *OrderController) ListForMe(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	items, err := h.Svc.ListForUser(uid, c.Query("status"), limit)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, gin.H{"orders": items})
}

// GET /orders/:id — order + tracking history
func (h *OrderController) Detail(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	id, _ := strconv.Atoi(c.Param("id"))

	out, err := h.Svc.DetailForUser(uid, uint(id))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, out)
}

// POST /orders/:id/cancel
func (h *OrderController) Cancel(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	id, _ := strconv.Atoi(c.Param("id"))

	var body struct {
		Reason string `json:"reason" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if err := h.Svc.Cancel(uint(id), uid, body.Reason); err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "Order cancelled successfully", "orderId": id, "status": "cancelled"})
}

// GET /orders/:id/track
func (h *OrderController) Track(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	id, _ := strconv.Atoi(c.Param("id"))

	out, err := h.Svc.Track(uid, uint(id))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, out)
}

// POST /orders/:id/reorder
func (h *OrderController) Reorder(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	id, _ := strconv.Atoi(c.Param("id"))

	out, err := h.Svc.Reorder(uid, uint(id))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.Created(c, out)
}
