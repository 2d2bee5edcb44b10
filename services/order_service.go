package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/muhammadnuman-eng/shawarmabackend/entity"
	"github.com/muhammadnuman-eng/shawarmabackend/pkg/notify"
	"github.com/muhammadnuman-eng/shawarmabackend/repository"
	"gorm.io/gorm"
)

// TotalTolerance is the epsilon for comparing a client-submitted total
// against the server-side computation. Anything beyond it is rejected;
// client monetary fields are never the source of truth.
const TotalTolerance = 0.01

type OrderService struct {
	DB          *gorm.DB
	Repo        *repository.OrderRepository
	CatalogRepo *repository.CatalogRepository
	AddrRepo    *repository.AddressRepository
	UserRepo    *repository.UserRepository
	Promo       *PromoService
	Pricing     *PricingCalculator
	Notifier    notify.Sender

	SystemUserEmail   string
	EstimatedDelivery time.Duration
}

func NewOrderService(
	db *gorm.DB,
	repo *repository.OrderRepository,
	catalogRepo *repository.CatalogRepository,
	addrRepo *repository.AddressRepository,
	userRepo *repository.UserRepository,
	promo *PromoService,
	pricing *PricingCalculator,
	notifier notify.Sender,
	systemUserEmail string,
	estimatedDelivery time.Duration,
) *OrderService {
	return &OrderService{
		DB: db, Repo: repo, CatalogRepo: catalogRepo, AddrRepo: addrRepo, UserRepo: userRepo,
		Promo: promo, Pricing: pricing, Notifier: notifier,
		SystemUserEmail: systemUserEmail, EstimatedDelivery: estimatedDelivery,
	}
}

// ----- DTOs -----

type OrderItemIn struct {
	ProductID      uint           `json:"productId" binding:"required"`
	Quantity       int            `json:"quantity" binding:"required,min=1"`
	Customizations map[string]any `json:"customizations"`
	AddOns         []AddOnIn      `json:"addOns"`
}

type CreateOrderReq struct {
	Items         []OrderItemIn `json:"items" binding:"required,min=1"`
	AddressID     *uint         `json:"addressId"`
	DeliveryType  string        `json:"deliveryType"`
	PaymentMethod string        `json:"paymentMethod"`
	PromoCode     string        `json:"promoCode"`
	Note          string        `json:"note"`

	// client-computed figures; accepted on the wire, validated, never trusted
	Subtotal      float64 `json:"subtotal"`
	DeliveryFee   float64 `json:"deliveryFee"`
	PlatformFee   float64 `json:"platformFee"`
	GST           float64 `json:"gst"`
	PromoDiscount float64 `json:"promoDiscount"`
	Total         float64 `json:"total"`
}

type OrderItemOut struct {
	ID             uint           `json:"id"`
	ProductID      *uint          `json:"productId,omitempty"`
	ProductName    string         `json:"productName"`
	Quantity       int            `json:"quantity"`
	Price          float64        `json:"price"`
	Customizations map[string]any `json:"customizations,omitempty"`
	AddOns         []AddOnIn      `json:"addOns,omitempty"`
}

type TrackingOut struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Message   string    `json:"message"`
}

type OrderOut struct {
	ID                    uint             `json:"id"`
	OrderNumber           string           `json:"orderNumber"`
	Status                string           `json:"status"`
	Items                 []OrderItemOut   `json:"items"`
	Address               *entity.Address  `json:"address,omitempty"`
	DeliveryType          string           `json:"deliveryType"`
	PaymentMethod         string           `json:"paymentMethod"`
	PaymentStatus         string           `json:"paymentStatus"`
	PromoCode             string           `json:"promoCode,omitempty"`
	Breakdown             PriceBreakdown   `json:"breakdown"`
	Note                  string           `json:"note,omitempty"`
	CreatedAt             time.Time        `json:"createdAt"`
	EstimatedDeliveryTime *time.Time       `json:"estimatedDeliveryTime,omitempty"`
	Tracking              []TrackingOut    `json:"tracking,omitempty"`
	DroppedItems          []string         `json:"droppedItems,omitempty"`
}

// resolvedLine is an order line after catalog resolution, with its snapshot
// fields ready to persist.
type resolvedLine struct {
	productID      uint
	name           string
	unitPrice      float64
	quantity       int
	additionalData string
	addOnTotal     float64
}

// ----- Create -----

// Create runs the full order pipeline: address resolution, product
// resolution, server-side pricing, order-number allocation, snapshot
// persistence, promo redemption and the initial tracking event — all fee
// figures recomputed server-side and checked against the client's claim.
func (s *OrderService) Create(userID uint, req *CreateOrderReq) (*OrderOut, error) {
	if len(req.Items) == 0 {
		return nil, ErrEmptyOrder
	}
	if req.DeliveryType == "" {
		req.DeliveryType = entity.DeliveryTypeDelivery
	}

	address, err := s.resolveAddress(userID, req.AddressID, req.DeliveryType)
	if err != nil {
		return nil, err
	}

	lines, err := s.resolveLines(req.Items)
	if err != nil {
		return nil, err
	}

	breakdown, promo, err := s.price(lines, req.PromoCode)
	if err != nil {
		return nil, err
	}

	// reject a client total that disagrees with our own computation
	if req.Total != 0 && math.Abs(req.Total-breakdown.Total) > TotalTolerance {
		return nil, fmt.Errorf("%w: submitted %.2f, computed %.2f", ErrTotalMismatch, req.Total, breakdown.Total)
	}

	out, err := s.persistOrder(userID, req, address, lines, breakdown, promo, nil)
	if err != nil {
		return nil, err
	}

	s.notifyOrderPlaced(userID, out.OrderNumber)
	return out, nil
}

// resolveAddress maps (addressId, deliveryType) onto the order's address
// reference. Pickup ids resolve against the system-owned pool; a missing id
// means an order without a saved location, which is allowed.
func (s *OrderService) resolveAddress(userID uint, addressID *uint, deliveryType string) (*entity.Address, error) {
	if addressID == nil {
		return nil, nil
	}

	var (
		addr *entity.Address
		err  error
	)
	if deliveryType == entity.DeliveryTypePickup {
		addr, err = s.AddrRepo.GetPickup(*addressID, s.SystemUserEmail)
	} else {
		addr, err = s.AddrRepo.GetForUser(userID, *addressID)
	}
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAddressNotFound
		}
		return nil, err
	}
	return addr, nil
}

// resolveLines resolves every referenced product; any missing product fails
// the whole creation (no partial orders), naming the offending id so the
// client can reconcile its cart.
func (s *OrderService) resolveLines(items []OrderItemIn) ([]resolvedLine, error) {
	lines := make([]resolvedLine, 0, len(items))
	for _, it := range items {
		product, err := s.CatalogRepo.GetProduct(it.ProductID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fmt.Errorf("%w: %d", ErrProductNotFound, it.ProductID)
			}
			return nil, err
		}

		qty := it.Quantity
		if qty <= 0 {
			qty = 1
		}
		line := resolvedLine{
			productID:  product.ID,
			name:       product.Name,
			unitPrice:  product.Price,
			quantity:   qty,
			addOnTotal: addOnTotal(it.AddOns),
		}
		if len(it.Customizations) > 0 || len(it.AddOns) > 0 {
			raw, _ := json.Marshal(map[string]any{
				"customizations": it.Customizations,
				"addOns":         it.AddOns,
			})
			line.additionalData = string(raw)
		}
		lines = append(lines, line)
	}
	return lines, nil
}

func (s *OrderService) price(lines []resolvedLine, promoCode string) (PriceBreakdown, *PromoResult, error) {
	priceLines := make([]PriceLine, 0, len(lines))
	for _, l := range lines {
		priceLines = append(priceLines, PriceLine{UnitPrice: l.unitPrice, Quantity: l.quantity, AddOnTotal: l.addOnTotal})
	}

	var promo *PromoResult
	discount := 0.0
	if promoCode != "" {
		subtotal := s.Pricing.Subtotal(priceLines)
		res, err := s.Promo.Evaluate(promoCode, subtotal)
		if err != nil {
			return PriceBreakdown{}, nil, err
		}
		promo = res
		discount = res.Discount
	}

	return s.Pricing.Breakdown(priceLines, discount), promo, nil
}

// persistOrder writes the order, its line snapshots, the initial tracking
// event and the promo redemption in one transaction. A duplicate order
// number triggers one internal retry before surfacing a conflict.
func (s *OrderService) persistOrder(
	userID uint,
	req *CreateOrderReq,
	address *entity.Address,
	lines []resolvedLine,
	breakdown PriceBreakdown,
	promo *PromoResult,
	dropped []string,
) (*OrderOut, error) {
	var order entity.Order

	attempt := func() error {
		return s.DB.Transaction(func(tx *gorm.DB) error {
			now := time.Now().UTC()
			number, err := s.Repo.NextOrderNumber(tx, now)
			if err != nil {
				return err
			}

			eta := now.Add(s.EstimatedDelivery)
			order = entity.Order{
				OrderNumber:           number,
				UserID:                userID,
				DeliveryType:          req.DeliveryType,
				PaymentMethod:         req.PaymentMethod,
				PaymentStatus:         entity.PaymentPending,
				PromoDiscount:         breakdown.PromoDiscount,
				Subtotal:              breakdown.Subtotal,
				DeliveryFee:           breakdown.DeliveryFee,
				PlatformFee:           breakdown.PlatformFee,
				GST:                   breakdown.GST,
				Total:                 breakdown.Total,
				Status:                entity.OrderPending,
				Note:                  req.Note,
				EstimatedDeliveryTime: &eta,
			}
			if address != nil {
				order.AddressID = &address.ID
			}
			if promo != nil {
				order.PromoCode = promo.Promo.Code
			}

			if err := s.Repo.CreateOrder(tx, &order); err != nil {
				return err
			}

			for _, l := range lines {
				pid := l.productID
				oi := entity.OrderItem{
					OrderID:        order.ID,
					ProductID:      &pid,
					ItemName:       l.name,
					Quantity:       l.quantity,
					UnitPrice:      l.unitPrice,
					AdditionalData: l.additionalData,
				}
				if err := s.Repo.CreateOrderItem(tx, &oi); err != nil {
					return err
				}
			}

			if err := s.Repo.CreateTracking(tx, &entity.OrderTracking{
				OrderID: order.ID,
				Status:  entity.OrderPending,
				Message: "Order placed",
			}); err != nil {
				return err
			}

			// redemption commits or rolls back together with the order
			if promo != nil {
				if err := s.Promo.Redeem(tx, promo.Promo.ID); err != nil {
					return err
				}
			}
			return nil
		})
	}

	err := attempt()
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		err = attempt()
	}
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrOrderNumberTaken
		}
		return nil, err
	}

	out := s.toOrderOut(&order, address, lines)
	out.DroppedItems = dropped
	return out, nil
}

func (s *OrderService) toOrderOut(order *entity.Order, address *entity.Address, lines []resolvedLine) *OrderOut {
	items := make([]OrderItemOut, 0, len(lines))
	for _, l := range lines {
		pid := l.productID
		items = append(items, OrderItemOut{
			ProductID:   &pid,
			ProductName: l.name,
			Quantity:    l.quantity,
			Price:       l.unitPrice,
		})
	}
	return &OrderOut{
		ID:            order.ID,
		OrderNumber:   order.OrderNumber,
		Status:        order.Status,
		Items:         items,
		Address:       address,
		DeliveryType:  order.DeliveryType,
		PaymentMethod: order.PaymentMethod,
		PaymentStatus: order.PaymentStatus,
		PromoCode:     order.PromoCode,
		Breakdown: PriceBreakdown{
			Subtotal:      order.Subtotal,
			DeliveryFee:   order.DeliveryFee,
			PlatformFee:   order.PlatformFee,
			GST:           order.GST,
			PromoDiscount: order.PromoDiscount,
			Total:         order.Total,
		}.Rounded(),
		Note:                  order.Note,
		CreatedAt:             order.CreatedAt,
		EstimatedDeliveryTime: order.EstimatedDeliveryTime,
	}
}

func (s *OrderService) notifyOrderPlaced(userID uint, orderNumber string) {
	if s.Notifier == nil {
		return
	}
	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		return
	}
	// best effort; a failed confirmation never fails the order
	notify.BestEffort(s.Notifier, user.Email, "Order "+orderNumber+" placed",
		"Your order "+orderNumber+" has been received.")
}

// ----- Read -----

func (s *OrderService) ListForUser(userID uint, status string, limit int) ([]repository.OrderSummary, error) {
	return s.Repo.ListOrdersForUser(userID, status, limit)
}

func (s *OrderService) DetailForUser(userID, orderID uint) (*OrderOut, error) {
	order, err := s.Repo.GetOrderForUser(userID, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}

	items := make([]OrderItemOut, 0, len(order.Items))
	for _, it := range order.Items {
		out := OrderItemOut{
			ID:          it.ID,
			ProductID:   it.ProductID,
			ProductName: it.ItemName,
			Quantity:    it.Quantity,
			Price:       it.UnitPrice,
		}
		if it.AdditionalData != "" {
			var extra struct {
				Customizations map[string]any `json:"customizations"`
				AddOns         []AddOnIn      `json:"addOns"`
			}
			if json.Unmarshal([]byte(it.AdditionalData), &extra) == nil {
				out.Customizations = extra.Customizations
				out.AddOns = extra.AddOns
			}
		}
		items = append(items, out)
	}

	var address *entity.Address
	if order.AddressID != nil {
		var a entity.Address
		if err := s.DB.First(&a, *order.AddressID).Error; err == nil {
			address = &a
		}
	}

	tracking, err := s.Repo.GetTracking(order.ID)
	if err != nil {
		return nil, err
	}
	trackingOut := make([]TrackingOut, 0, len(tracking))
	for _, t := range tracking {
		trackingOut = append(trackingOut, TrackingOut{Status: t.Status, Timestamp: t.CreatedAt, Message: t.Message})
	}

	return &OrderOut{
		ID:            order.ID,
		OrderNumber:   order.OrderNumber,
		Status:        order.Status,
		Items:         items,
		Address:       address,
		DeliveryType:  order.DeliveryType,
		PaymentMethod: order.PaymentMethod,
		PaymentStatus: order.PaymentStatus,
		PromoCode:     order.PromoCode,
		Breakdown: PriceBreakdown{
			Subtotal:      order.Subtotal,
			DeliveryFee:   order.DeliveryFee,
			PlatformFee:   order.PlatformFee,
			GST:           order.GST,
			PromoDiscount: order.PromoDiscount,
			Total:         order.Total,
		}.Rounded(),
		Note:                  order.Note,
		CreatedAt:             order.CreatedAt,
		EstimatedDeliveryTime: order.EstimatedDeliveryTime,
		Tracking:              trackingOut,
	}, nil
}

type TrackOut struct {
	OrderID          uint          `json:"orderId"`
	Status           string        `json:"status"`
	EstimatedArrival *time.Time    `json:"estimatedArrival,omitempty"`
	Tracking         []TrackingOut `json:"tracking"`
}

func (s *OrderService) Track(userID, orderID uint) (*TrackOut, error) {
	order, err := s.Repo.GetOrderForUser(userID, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}

	rows, err := s.Repo.GetTracking(order.ID)
	if err != nil {
		return nil, err
	}
	tracking := make([]TrackingOut, 0, len(rows))
	for _, t := range rows {
		tracking = append(tracking, TrackingOut{Status: t.Status, Timestamp: t.CreatedAt, Message: t.Message})
	}

	return &TrackOut{
		OrderID:          order.ID,
		Status:           order.Status,
		EstimatedArrival: order.EstimatedDeliveryTime,
		Tracking:         tracking,
	}, nil
}

// ----- Reorder -----

// Reorder creates a fresh order from a prior one through the same creation
// path. Products are re-resolved against the current catalog: lines whose
// product has since been deleted are dropped (and reported by name) rather
// than failing the whole reorder, and pricing is recomputed at current
// prices rather than copied from the old snapshot.
func (s *OrderService) Reorder(userID, orderID uint) (*OrderOut, error) {
	old, err := s.Repo.GetOrderForUser(userID, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}

	var (
		lines   []resolvedLine
		dropped []string
	)
	for _, it := range old.Items {
		if it.ProductID == nil {
			dropped = append(dropped, it.ItemName)
			continue
		}
		product, err := s.CatalogRepo.GetProduct(*it.ProductID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				dropped = append(dropped, it.ItemName)
				continue
			}
			return nil, err
		}

		var addOns []AddOnIn
		if it.AdditionalData != "" {
			var extra struct {
				AddOns []AddOnIn `json:"addOns"`
			}
			_ = json.Unmarshal([]byte(it.AdditionalData), &extra)
			addOns = extra.AddOns
		}
		lines = append(lines, resolvedLine{
			productID:      product.ID,
			name:           product.Name,
			unitPrice:      product.Price,
			quantity:       it.Quantity,
			additionalData: it.AdditionalData,
			addOnTotal:     addOnTotal(addOns),
		})
	}

	if len(lines) == 0 {
		return nil, ErrEmptyOrder
	}

	var address *entity.Address
	if old.AddressID != nil {
		addr, err := s.resolveAddress(userID, old.AddressID, old.DeliveryType)
		if err == nil {
			address = addr
		}
	}

	req := &CreateOrderReq{
		DeliveryType:  old.DeliveryType,
		PaymentMethod: old.PaymentMethod,
	}
	breakdown, _, err := s.price(lines, "")
	if err != nil {
		return nil, err
	}

	out, err := s.persistOrder(userID, req, address, lines, breakdown, nil, dropped)
	if err != nil {
		return nil, err
	}

	s.notifyOrderPlaced(userID, out.OrderNumber)
	return out, nil
}
