package services

import "github.com/muhammadnuman-eng/shawarmabackend/utils"

// PriceLine is one cart/order line as the calculator sees it.
type PriceLine struct {
	UnitPrice float64
	Quantity  int
	// add-on price×quantity sum for the line
	AddOnTotal float64
}

// PriceBreakdown is the fee/total structure snapshotted into orders.
// Invariants: total = subtotal + deliveryFee + platformFee + gst - promoDiscount
// and gst = rate * (subtotal + deliveryFee + platformFee - promoDiscount).
type PriceBreakdown struct {
	Subtotal      float64 `json:"subtotal"`
	DeliveryFee   float64 `json:"deliveryFee"`
	PlatformFee   float64 `json:"platformFee"`
	GST           float64 `json:"gst"`
	PromoDiscount float64 `json:"promoDiscount"`
	Total         float64 `json:"total"`
}

// Rounded returns a copy with every field at 2 decimal places, for
// serialization. Internal math stays unrounded so rounding error does not
// compound across subtotal → gst → total.
func (b PriceBreakdown) Rounded() PriceBreakdown {
	return PriceBreakdown{
		Subtotal:      utils.Round2(b.Subtotal),
		DeliveryFee:   utils.Round2(b.DeliveryFee),
		PlatformFee:   utils.Round2(b.PlatformFee),
		GST:           utils.Round2(b.GST),
		PromoDiscount: utils.Round2(b.PromoDiscount),
		Total:         utils.Round2(b.Total),
	}
}

// PricingCalculator is pure arithmetic over its inputs; eligibility policy
// (whether a discount may apply at all) belongs to the promo engine. It does
// not clamp: a discount larger than subtotal+fees would drive gst and total
// negative, so callers validate before invoking.
type PricingCalculator struct {
	DeliveryFee float64
	PlatformFee float64
	GSTRate     float64
}

func NewPricingCalculator(deliveryFee, platformFee, gstRate float64) *PricingCalculator {
	return &PricingCalculator{DeliveryFee: deliveryFee, PlatformFee: platformFee, GSTRate: gstRate}
}

func (p *PricingCalculator) Subtotal(lines []PriceLine) float64 {
	subtotal := 0.0
	for _, l := range lines {
		subtotal += l.UnitPrice*float64(l.Quantity) + l.AddOnTotal
	}
	return subtotal
}

func (p *PricingCalculator) Breakdown(lines []PriceLine, promoDiscount float64) PriceBreakdown {
	subtotal := p.Subtotal(lines)
	gst := p.GSTRate * (subtotal + p.DeliveryFee + p.PlatformFee - promoDiscount)
	total := subtotal + p.DeliveryFee + p.PlatformFee + gst - promoDiscount
	return PriceBreakdown{
		Subtotal:      subtotal,
		DeliveryFee:   p.DeliveryFee,
		PlatformFee:   p.PlatformFee,
		GST:           gst,
		PromoDiscount: promoDiscount,
		Total:         total,
	}
}

// MaxDiscountable is the ceiling a discount can reach before the total
// would go negative.
func (p *PricingCalculator) MaxDiscountable(subtotal float64) float64 {
	return subtotal + p.DeliveryFee + p.PlatformFee
}
