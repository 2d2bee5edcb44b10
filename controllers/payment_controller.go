package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/muhammadnuman-eng/shawarmabackend/pkg/resp"
	"github.com/muhammadnuman-eng/shawarmabackend/services"
	"github.com/muhammadnuman-eng/shawarmabackend/utils"
)

type PaymentController struct{ Svc *services.PaymentService }

func NewPaymentController(s *services.PaymentService) *PaymentController {
	return &PaymentController{Svc: s}
}

// POST /payment/process
func (h *PaymentController) Process(c *gin.Context) {
	uid := utils.CurrentUserID(c)

	var req services.ProcessPaymentIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	txn, err := h.Svc.Process(uid, &req)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	resp.OK(c, gin.H{
		"paymentId":     txn.ID,
		"orderId":       txn.OrderID,
		"status":        txn.Status,
		"amount":        utils.Round2(txn.Amount),
		"paymentMethod": txn.PaymentMethod,
		"transactionId": txn.TxnRef,
		"paidAt":        txn.CreatedAt,
	})
}
