package services

import (
	"encoding/json"
	"errors"

	"github.com/muhammadnuman-eng/shawarmabackend/entity"
	"github.com/muhammadnuman-eng/shawarmabackend/repository"
	"gorm.io/gorm"
)

type CartService struct {
	DB          *gorm.DB
	CartRepo    *repository.CartRepository
	CatalogRepo *repository.CatalogRepository
	Pricing     *PricingCalculator
}

func NewCartService(db *gorm.DB, cr *repository.CartRepository, catr *repository.CatalogRepository, pricing *PricingCalculator) *CartService {
	return &CartService{DB: db, CartRepo: cr, CatalogRepo: catr, Pricing: pricing}
}

// AddOnIn is one add-on attached to a cart line.
type AddOnIn struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

type AddToCartIn struct {
	ProductID      uint           `json:"productId" binding:"required"`
	Quantity       int            `json:"quantity"`
	Customizations map[string]any `json:"customizations"`
	AddOns         []AddOnIn      `json:"addOns"`
}

type CartLineOut struct {
	ID             uint           `json:"id"`
	ProductID      uint           `json:"productId"`
	ProductName    string         `json:"productName"`
	Price          float64        `json:"price"`
	Quantity       int            `json:"quantity"`
	Image          string         `json:"image"`
	Customizations map[string]any `json:"customizations"`
	AddOns         []AddOnIn      `json:"addOns"`
}

// Add appends a new line. Identical product+customization combinations are
// NOT merged; each add creates its own line.
func (s *CartService) Add(userID uint, in *AddToCartIn) (*CartLineOut, error) {
	if in.Quantity <= 0 {
		in.Quantity = 1
	}

	product, err := s.CatalogRepo.GetProduct(in.ProductID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	if !product.IsAvailable {
		return nil, ErrProductUnavail
	}

	item := &entity.CartItem{
		UserID:    userID,
		ProductID: product.ID,
		Quantity:  in.Quantity,
	}
	if len(in.Customizations) > 0 {
		raw, _ := json.Marshal(in.Customizations)
		item.Customizations = string(raw)
	}
	if len(in.AddOns) > 0 {
		raw, _ := json.Marshal(in.AddOns)
		item.AddOns = string(raw)
	}

	if err := s.CartRepo.Create(item); err != nil {
		return nil, err
	}

	return &CartLineOut{
		ID:             item.ID,
		ProductID:      product.ID,
		ProductName:    product.Name,
		Price:          product.Price,
		Quantity:       item.Quantity,
		Image:          product.Image,
		Customizations: in.Customizations,
		AddOns:         in.AddOns,
	}, nil
}

type UpdateQtyOut struct {
	Removed   bool    `json:"removed"`
	ID        uint    `json:"id,omitempty"`
	Quantity  int     `json:"quantity,omitempty"`
	Price     float64 `json:"price,omitempty"`
	LineTotal float64 `json:"lineTotal,omitempty"`
}

// UpdateQuantity sets a new quantity; anything ≤ 0 removes the line and
// reports a "removed" result instead of persisting a non-positive quantity.
func (s *CartService) UpdateQuantity(userID, itemID uint, quantity int) (*UpdateQtyOut, error) {
	item, err := s.CartRepo.GetForUser(userID, itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCartItemNotFound
		}
		return nil, err
	}

	if quantity <= 0 {
		err := s.DB.Transaction(func(tx *gorm.DB) error {
			_, err := s.CartRepo.Delete(tx, userID, itemID)
			return err
		})
		if err != nil {
			return nil, err
		}
		return &UpdateQtyOut{Removed: true}, nil
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.UpdateQuantity(tx, itemID, quantity)
	})
	if err != nil {
		return nil, err
	}

	return &UpdateQtyOut{
		ID:        item.ID,
		Quantity:  quantity,
		Price:     item.Product.Price,
		LineTotal: item.Product.Price * float64(quantity),
	}, nil
}

func (s *CartService) Remove(userID, itemID uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		affected, err := s.CartRepo.Delete(tx, userID, itemID)
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrCartItemNotFound
		}
		return nil
	})
}

func (s *CartService) Clear(userID uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.Clear(tx, userID)
	})
}

// Get reads the cart with live catalog prices and a computed breakdown.
// promoDiscount is zero here; discounts are evaluated separately and only
// snapshotted at order creation.
func (s *CartService) Get(userID uint) ([]CartLineOut, PriceBreakdown, error) {
	items, err := s.CartRepo.ListForUser(userID)
	if err != nil {
		return nil, PriceBreakdown{}, err
	}

	lines := make([]CartLineOut, 0, len(items))
	priceLines := make([]PriceLine, 0, len(items))
	for _, it := range items {
		if it.Product.ID == 0 {
			// product removed from catalog since the line was added
			continue
		}
		out := CartLineOut{
			ID:          it.ID,
			ProductID:   it.ProductID,
			ProductName: it.Product.Name,
			Price:       it.Product.Price,
			Quantity:    it.Quantity,
			Image:       it.Product.Image,
		}
		if it.Customizations != "" {
			_ = json.Unmarshal([]byte(it.Customizations), &out.Customizations)
		}
		if it.AddOns != "" {
			_ = json.Unmarshal([]byte(it.AddOns), &out.AddOns)
		}
		lines = append(lines, out)
		priceLines = append(priceLines, PriceLine{
			UnitPrice:  it.Product.Price,
			Quantity:   it.Quantity,
			AddOnTotal: addOnTotal(out.AddOns),
		})
	}

	return lines, s.Pricing.Breakdown(priceLines, 0), nil
}

// CartPriceLines converts the stored cart into calculator input.
func (s *CartService) CartPriceLines(userID uint) ([]PriceLine, error) {
	items, err := s.CartRepo.ListForUser(userID)
	if err != nil {
		return nil, err
	}
	lines := make([]PriceLine, 0, len(items))
	for _, it := range items {
		if it.Product.ID == 0 {
			continue
		}
		var addOns []AddOnIn
		if it.AddOns != "" {
			_ = json.Unmarshal([]byte(it.AddOns), &addOns)
		}
		lines = append(lines, PriceLine{
			UnitPrice:  it.Product.Price,
			Quantity:   it.Quantity,
			AddOnTotal: addOnTotal(addOns),
		})
	}
	return lines, nil
}

func addOnTotal(addOns []AddOnIn) float64 {
	total := 0.0
	for _, a := range addOns {
		qty := a.Quantity
		if qty <= 0 {
			qty = 1
		}
		total += a.Price * float64(qty)
	}
	return total
}
