package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/muhammadnuman-eng/shawarmabackend/entity"
	"github.com/muhammadnuman-eng/shawarmabackend/pkg/resp"
	"github.com/muhammadnuman-eng/shawarmabackend/repository"
	"github.com/muhammadnuman-eng/shawarmabackend/utils"
)

type AddressController struct{ Repo *repository.AddressRepository }

func NewAddressController(r *repository.AddressRepository) *AddressController {
	return &AddressController{Repo: r}
}

// GET /addresses
func (h *AddressController) List(c *gin.Context) {
	rows, err := h.Repo.ListForUser(utils.CurrentUserID(c))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"addresses": rows})
}

type createAddressReq struct {
	Name      string  `json:"name" binding:"required"`
	Address   string  `json:"address" binding:"required"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	IsDefault bool    `json:"isDefault"`
	Type      string  `json:"type"`
}

// POST /addresses
func (h *AddressController) Create(c *gin.Context) {
	var req createAddressReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if req.Type == "" {
		req.Type = "home"
	}

	a := entity.Address{
		UserID:    utils.CurrentUserID(c),
		Name:      req.Name,
		Address:   req.Address,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		IsDefault: req.IsDefault,
		Type:      req.Type,
	}
	if err := h.Repo.Create(&a); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, a)
}
