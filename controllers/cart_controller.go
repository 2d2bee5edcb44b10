package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/muhammadnuman-eng/shawarmabackend/pkg/resp"
	"github.com/muhammadnuman-eng/shawarmabackend/services"
	"github.com/muhammadnuman-eng/shawarmabackend/utils"
)

type CartController struct {
	Svc   *services.CartService
	Promo *services.PromoService
}

func NewCartController(s *services.CartService, p *services.PromoService) *CartController {
	return &CartController{Svc: s, Promo: p}
}

// GET /cart
func (h *CartController) Get(c *gin.Context) {
	uid := utils.CurrentUserID(c)

	lines, breakdown, err := h.Svc.Get(uid)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	b := breakdown.Rounded()
	resp.OK(c, gin.H{
		"items":         lines,
		"subtotal":      b.Subtotal,
		"deliveryFee":   b.DeliveryFee,
		"platformFee":   b.PlatformFee,
		"gst":           b.GST,
		"promoDiscount": b.PromoDiscount,
		"total":         b.Total,
	})
}

// POST /cart
func (h *CartController) Add(c *gin.Context) {
	uid := utils.CurrentUserID(c)

	var req services.AddToCartIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	line, err := h.Svc.Add(uid, &req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.Created(c, line)
}

// PUT /cart/:id — quantity ≤ 0 removes the line
func (h *CartController) UpdateQuantity(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	id, _ := strconv.Atoi(c.Param("id"))

	var body struct {
		Quantity int `json:"quantity" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	out, err := h.Svc.UpdateQuantity(uid, uint(id), body.Quantity)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	if out.Removed {
		resp.OK(c, gin.H{"message": "Item removed from cart"})
		return
	}
	resp.OK(c, out)
}

// DELETE /cart/:id
func (h *CartController) Remove(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	id, _ := strconv.Atoi(c.Param("id"))

	if err := h.Svc.Remove(uid, uint(id)); err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "Item removed from cart successfully"})
}

// DELETE /cart
func (h *CartController) Clear(c *gin.Context) {
	uid := utils.CurrentUserID(c)

	if err := h.Svc.Clear(uid); err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "Cart cleared successfully"})
}

// POST /cart/promo — evaluation only, no redemption
func (h *CartController) ApplyPromo(c *gin.Context) {
	uid := utils.CurrentUserID(c)

	var body struct {
		PromoCode string `json:"promoCode" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	lines, err := h.Svc.CartPriceLines(uid)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	res, err := h.Promo.Evaluate(body.PromoCode, h.Svc.Pricing.Subtotal(lines))
	if err != nil {
		writeServiceError(c, err)
		return
	}

	resp.OK(c, gin.H{
		"promoCode":     res.Promo.Code,
		"discount":      utils.Round2(res.Discount),
		"discountType":  res.Promo.DiscountType,
		"discountValue": res.Promo.DiscountValue,
		"message":       "Promo code applied successfully",
	})
}
