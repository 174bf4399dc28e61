package interfaces

import "context"

// CheckoutPreference is the provider-agnostic shape of a hosted checkout
// request. Money here is integer cents; the gateway converts to whatever
// unit the provider expects.

type CheckoutPreference struct {
	Title          string
	Quantity       int
	UnitPriceCents int64
}

// ICheckoutGateway abstracts external checkout providers (e.g. Mercado
// Pago). It returns the hosted checkout URL the client is redirected to.
//
// The billing engine never calls this: checkout is an API-layer collaborator
// and recorded payments flow back as plain Payment facts.

type ICheckoutGateway interface {
	CreatePreference(ctx context.Context, pref CheckoutPreference) (initPointURL string, err error)
}
