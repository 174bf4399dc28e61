package usecase

import (
	"context"
	"errors"
	"testing"

	"sitebill/internal/usecase/interfaces"
	mock_interfaces "sitebill/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestCheckoutUseCase_CreatePreference(t *testing.T) {
	t.Run("gateway not configured", func(t *testing.T) {
		uc := NewCheckoutUseCase(nil)
		if _, err := uc.CreatePreference(context.Background(), "", 0, 0); !errors.Is(err, ErrCheckoutGatewayNotConfigured) {
			t.Fatalf("expected ErrCheckoutGatewayNotConfigured, got %v", err)
		}
	})

	t.Run("rejects negative inputs", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := NewCheckoutUseCase(mock_interfaces.NewMockICheckoutGateway(ctrl))

		if _, err := uc.CreatePreference(context.Background(), "x", -1, 100); !errors.Is(err, ErrInvalidCheckoutQuantity) {
			t.Fatalf("expected ErrInvalidCheckoutQuantity, got %v", err)
		}
		if _, err := uc.CreatePreference(context.Background(), "x", 1, -100); !errors.Is(err, ErrInvalidCheckoutPrice) {
			t.Fatalf("expected ErrInvalidCheckoutPrice, got %v", err)
		}
	})

	t.Run("zero values fall back to defaults", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockICheckoutGateway(ctrl)

		gateway.EXPECT().CreatePreference(gomock.Any(), interfaces.CheckoutPreference{
			Title:          defaultCheckoutTitle,
			Quantity:       1,
			UnitPriceCents: defaultCheckoutPriceCents,
		}).Return("https://mp.example/init/abc", nil)

		got, err := NewCheckoutUseCase(gateway).CreatePreference(context.Background(), "", 0, 0)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != "https://mp.example/init/abc" {
			t.Fatalf("unexpected init point: %q", got)
		}
	})

	t.Run("explicit values pass through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockICheckoutGateway(ctrl)

		gateway.EXPECT().CreatePreference(gomock.Any(), interfaces.CheckoutPreference{
			Title:          "Mensalidade Julho",
			Quantity:       2,
			UnitPriceCents: 9900,
		}).Return("https://mp.example/init/xyz", nil)

		if _, err := NewCheckoutUseCase(gateway).CreatePreference(context.Background(), "Mensalidade Julho", 2, 9900); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("gateway error propagates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockICheckoutGateway(ctrl)

		boom := errors.New("provider rejected request")
		gateway.EXPECT().CreatePreference(gomock.Any(), gomock.Any()).Return("", boom)

		if _, err := NewCheckoutUseCase(gateway).CreatePreference(context.Background(), "x", 1, 100); !errors.Is(err, boom) {
			t.Fatalf("expected gateway error, got %v", err)
		}
	})
}
