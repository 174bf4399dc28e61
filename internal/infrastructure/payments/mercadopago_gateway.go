package payments

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"sitebill/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/preference"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
var ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")
var ErrMissingInitPoint = errors.New("mercado pago returned no checkout url")

// MercadoPagoGateway creates hosted checkout preferences on Mercado Pago and
// returns their init point URL. Mock mode skips the SDK entirely so local
// environments can run without an access token.

type MercadoPagoGateway struct {
	client   preference.Client
	mockMode bool
}

var _ interfaces.ICheckoutGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(accessToken string) (*MercadoPagoGateway, error) {
	if isPaymentGatewayMockEnabled() {
		log.Printf("[payment][gateway] mock mode enabled")
		return &MercadoPagoGateway{mockMode: true}, nil
	}

	if accessToken == "" {
		log.Printf("[payment][gateway] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		log.Printf("[payment][gateway] failed creating sdk config err=%v", err)
		return nil, err
	}
	log.Printf("[payment][gateway] Mercado Pago client initialized")

	return &MercadoPagoGateway{client: preference.NewClient(cfg)}, nil
}

func (g *MercadoPagoGateway) CreatePreference(ctx context.Context, pref interfaces.CheckoutPreference) (string, error) {
	if g != nil && g.mockMode {
		url := fmt.Sprintf("https://sandbox.mercadopago.com.br/checkout/v1/redirect?pref_id=mock-%d", time.Now().UTC().UnixNano())
		log.Printf("[payment][gateway] mock preference created init_point=%s", url)
		return url, nil
	}

	if g == nil || g.client == nil {
		log.Printf("[payment][gateway] gateway not configured")
		return "", ErrMercadoPagoGatewayNotConfigured
	}
	log.Printf("[payment][gateway] create preference title=%q quantity=%d unit_price_cents=%d", pref.Title, pref.Quantity, pref.UnitPriceCents)

	req := preference.Request{
		Items: []preference.ItemRequest{
			{
				Title:      pref.Title,
				Quantity:   pref.Quantity,
				CurrencyID: "BRL",
				UnitPrice:  float64(pref.UnitPriceCents) / 100,
			},
		},
		BackURLs: &preference.BackURLsRequest{
			Success: getenvDefault("MP_SUCCESS_URL", "http://localhost:3000/cliente?status=success"),
			Failure: getenvDefault("MP_FAILURE_URL", "http://localhost:3000/cliente?status=failure"),
			Pending: getenvDefault("MP_PENDING_URL", "http://localhost:3000/cliente?status=pending"),
		},
	}

	resp, err := g.client.Create(ctx, req)
	if err != nil {
		log.Printf("[payment][gateway] sdk create failed err=%v", err)
		return "", err
	}

	initPoint := resp.InitPoint
	if initPoint == "" {
		initPoint = resp.SandboxInitPoint
	}
	if initPoint == "" {
		log.Printf("[payment][gateway] preference %s carries no init point", resp.ID)
		return "", ErrMissingInitPoint
	}
	log.Printf("[payment][gateway] preference created id=%s", resp.ID)

	return initPoint, nil
}

func isPaymentGatewayMockEnabled() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
