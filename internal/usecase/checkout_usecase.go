package usecase

import (
	"context"
	"errors"
	"log"

	"sitebill/internal/usecase/interfaces"
)

var (
	ErrCheckoutGatewayNotConfigured = errors.New("checkout gateway not configured")
	ErrInvalidCheckoutQuantity      = errors.New("invalid checkout quantity")
	ErrInvalidCheckoutPrice         = errors.New("invalid checkout unit price")
)

const (
	defaultCheckoutTitle = "Pagamento de assinatura"
	// R$ 1,00, the sandbox-friendly default used by test environments.
	defaultCheckoutPriceCents = 100
)

// ICheckoutUseCase creates hosted checkout sessions with the external
// payment provider. Recording the resulting payment fact is a separate flow;
// the billing engine only ever sees Payments.

type ICheckoutUseCase interface {
	CreatePreference(ctx context.Context, title string, quantity int, unitPriceCents int64) (string, error)
}

type CheckoutUseCase struct {
	gateway interfaces.ICheckoutGateway
}

var _ ICheckoutUseCase = (*CheckoutUseCase)(nil)

func NewCheckoutUseCase(gateway interfaces.ICheckoutGateway) *CheckoutUseCase {
	return &CheckoutUseCase{gateway: gateway}
}

// CreatePreference creates a checkout preference and returns its init point
// URL. Zero-value inputs fall back to the sandbox defaults; negative ones
// are rejected.
func (u *CheckoutUseCase) CreatePreference(ctx context.Context, title string, quantity int, unitPriceCents int64) (string, error) {
	if u.gateway == nil {
		return "", ErrCheckoutGatewayNotConfigured
	}
	if quantity < 0 {
		return "", ErrInvalidCheckoutQuantity
	}
	if unitPriceCents < 0 {
		return "", ErrInvalidCheckoutPrice
	}

	if title == "" {
		title = defaultCheckoutTitle
	}
	if quantity == 0 {
		quantity = 1
	}
	if unitPriceCents == 0 {
		unitPriceCents = defaultCheckoutPriceCents
	}

	log.Printf("[checkout][usecase] create preference title=%q quantity=%d unit_price_cents=%d", title, quantity, unitPriceCents)
	return u.gateway.CreatePreference(ctx, interfaces.CheckoutPreference{
		Title:          title,
		Quantity:       quantity,
		UnitPriceCents: unitPriceCents,
	})
}
