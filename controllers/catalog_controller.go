package controllers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/muhammadnuman-eng/shawarmabackend/pkg/resp"
	"github.com/muhammadnuman-eng/shawarmabackend/repository"
	"gorm.io/gorm"
)

// read-only catalog surface; no computation beyond filtering
type CatalogController struct{ Repo *repository.CatalogRepository }

func NewCatalogController(r *repository.CatalogRepository) *CatalogController {
	return &CatalogController{Repo: r}
}

func (h *CatalogController) Categories(c *gin.Context) {
	cats, err := h.Repo.ListCategories()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"categories": cats})
}

func (h *CatalogController) Products(c *gin.Context) {
	var categoryID *uint
	if v := c.Query("categoryId"); v != "" {
		if id, err := strconv.Atoi(v); err == nil {
			u := uint(id)
			categoryID = &u
		}
	}

	products, err := h.Repo.ListProducts(categoryID)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"products": products})
}

func (h *CatalogController) ProductDetail(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	product, err := h.Repo.GetProduct(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "product not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, product)
}
