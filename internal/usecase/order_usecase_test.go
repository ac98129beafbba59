package usecase

import (
	"context"
	"errors"
	"testing"

	"eolia_backend/internal/domain/entities"
	mock_interfaces "eolia_backend/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type orderMocks struct {
	orders   *mock_interfaces.MockIOrderRepository
	dossiers *mock_interfaces.MockIDossierRepository
	events   *mock_interfaces.MockIDossierEventRepository
}

func newOrderUseCaseForTest(t *testing.T) (*OrderUseCase, orderMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	m := orderMocks{
		orders:   mock_interfaces.NewMockIOrderRepository(ctrl),
		dossiers: mock_interfaces.NewMockIDossierRepository(ctrl),
		events:   mock_interfaces.NewMockIDossierEventRepository(ctrl),
	}
	return NewOrderUseCase(m.orders, m.dossiers, m.events), m
}

func checkoutInput() CreateOrderInput {
	return CreateOrderInput{
		Type: entities.OrderTypeStandard,
		Items: []entities.OrderItem{
			{ProductID: "turbine-6kw", Name: "Eolia 6", Quantity: 1, Price: 14900, PowerKwc: 6, Category: entities.CategoryTurbine},
		},
		ShippingAddress: entities.ShippingAddress{
			FirstName:    "Jeanne",
			LastName:     "Martin",
			Email:        "Jeanne.Martin@example.fr",
			AddressLine1: "4 rue du Moulin",
			PostalCode:   "44000",
			City:         "Nantes",
			Country:      "FR",
		},
		PaymentIntentID: "pi_123",
		TotalAmount:     14900,
	}
}

func TestOrderUseCase_CreateOrder_Validation(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*CreateOrderInput)
		want   error
	}{
		{"invalid type", func(in *CreateOrderInput) { in.Type = "subscription" }, ErrInvalidOrderType},
		{"no items", func(in *CreateOrderInput) { in.Items = nil }, ErrMissingItems},
		{"no payment intent", func(in *CreateOrderInput) { in.PaymentIntentID = "  " }, ErrMissingPaymentIntent},
		{"incomplete address", func(in *CreateOrderInput) { in.ShippingAddress.City = "" }, ErrMissingShippingAddress},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			uc, _ := newOrderUseCaseForTest(t)
			in := checkoutInput()
			tc.mutate(&in)
			_, err := uc.CreateOrder(context.Background(), ownerPrincipal(), in)
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}

	t.Run("anonymous checkout without email", func(t *testing.T) {
		uc, _ := newOrderUseCaseForTest(t)
		in := checkoutInput()
		in.ShippingAddress.Email = " "
		_, err := uc.CreateOrder(context.Background(), entities.Principal{Role: entities.RoleClient}, in)
		if !errors.Is(err, ErrMissingIdentity) {
			t.Fatalf("expected ErrMissingIdentity, got %v", err)
		}
	})

	t.Run("power cap", func(t *testing.T) {
		uc, _ := newOrderUseCaseForTest(t)
		in := checkoutInput()
		in.Items = []entities.OrderItem{
			{ProductID: "turbine-10kw", Quantity: 4, PowerKwc: 10, Category: entities.CategoryTurbine},
		}
		_, err := uc.CreateOrder(context.Background(), ownerPrincipal(), in)
		if !errors.Is(err, ErrPowerLimitExceeded) {
			t.Fatalf("expected ErrPowerLimitExceeded, got %v", err)
		}
	})
}

func TestOrderUseCase_CreateOrder_Identity(t *testing.T) {
	t.Run("authenticated subject owns the order", func(t *testing.T) {
		uc, m := newOrderUseCaseForTest(t)
		m.orders.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, o entities.Order) (entities.Order, error) {
				if o.UserID != "user-1" {
					t.Fatalf("expected user-1, got %s", o.UserID)
				}
				if o.Status != "pending" || o.OrderID == "" || o.CreatedAt.IsZero() {
					t.Fatalf("unexpected order: %+v", o)
				}
				return o, nil
			})
		m.dossiers.EXPECT().CreateBatch(gomock.Any(), gomock.Any()).Return(nil)
		m.events.EXPECT().Append(gomock.Any(), gomock.Any()).Return(entities.DossierEvent{}, nil)

		if _, err := uc.CreateOrder(context.Background(), ownerPrincipal(), checkoutInput()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("guest identity derived from lowercased email", func(t *testing.T) {
		uc, m := newOrderUseCaseForTest(t)
		m.orders.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, o entities.Order) (entities.Order, error) {
				if o.UserID != "guest_jeanne.martin@example.fr" {
					t.Fatalf("unexpected guest id: %s", o.UserID)
				}
				return o, nil
			})
		m.dossiers.EXPECT().CreateBatch(gomock.Any(), gomock.Any()).Return(nil)
		m.events.EXPECT().Append(gomock.Any(), gomock.Any()).Return(entities.DossierEvent{}, nil)

		if _, err := uc.CreateOrder(context.Background(), entities.Principal{Role: entities.RoleClient}, checkoutInput()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestOrderUseCase_CreateOrder_DossierDerivation(t *testing.T) {
	t.Run("full package derives four dossiers with initial events", func(t *testing.T) {
		uc, m := newOrderUseCaseForTest(t)
		in := checkoutInput()
		in.Items = append(in.Items,
			entities.OrderItem{ProductID: "install", Quantity: 1, Category: entities.CategoryInstallation},
			entities.OrderItem{ProductID: "paperwork", Quantity: 1, Category: entities.CategoryAdministrative},
		)

		m.orders.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, o entities.Order) (entities.Order, error) { return o, nil })
		m.dossiers.EXPECT().CreateBatch(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, dossiers []entities.Dossier) error {
				if len(dossiers) != 4 {
					t.Fatalf("expected 4 dossiers, got %d", len(dossiers))
				}
				if dossiers[0].Type != entities.DossierTypeShipping || dossiers[3].Type != entities.DossierTypeInstallation {
					t.Fatalf("unexpected derivation order: %+v", dossiers)
				}
				return nil
			})
		m.events.EXPECT().Append(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, ev entities.DossierEvent) (entities.DossierEvent, error) {
				if ev.EventType != entities.EventStatusChanged || ev.Source != entities.EventSourceSystem {
					t.Fatalf("unexpected initial event: %+v", ev)
				}
				if ev.Data["message"] != "Dossier created" {
					t.Fatalf("unexpected event data: %+v", ev.Data)
				}
				return ev, nil
			}).Times(4)

		if _, err := uc.CreateOrder(context.Background(), ownerPrincipal(), in); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("dossier batch failure does not fail the paid checkout", func(t *testing.T) {
		uc, m := newOrderUseCaseForTest(t)
		m.orders.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, o entities.Order) (entities.Order, error) { return o, nil })
		m.dossiers.EXPECT().CreateBatch(gomock.Any(), gomock.Any()).Return(errors.New("dynamo down"))
		// no events when the batch never landed

		order, err := uc.CreateOrder(context.Background(), ownerPrincipal(), checkoutInput())
		if err != nil {
			t.Fatalf("checkout must survive dossier failure: %v", err)
		}
		if order.OrderID == "" {
			t.Fatalf("expected created order, got %+v", order)
		}
	})

	t.Run("no derivable items skips dossier creation", func(t *testing.T) {
		uc, m := newOrderUseCaseForTest(t)
		in := checkoutInput()
		in.Items = []entities.OrderItem{{ProductID: "gift-card", Quantity: 1}}

		m.orders.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, o entities.Order) (entities.Order, error) { return o, nil })

		if _, err := uc.CreateOrder(context.Background(), ownerPrincipal(), in); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestOrderUseCase_GetOrder(t *testing.T) {
	t.Run("empty id", func(t *testing.T) {
		uc, _ := newOrderUseCaseForTest(t)
		_, err := uc.GetOrder(context.Background(), ownerPrincipal(), " ")
		if !errors.Is(err, ErrInvalidOrderID) {
			t.Fatalf("expected ErrInvalidOrderID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		uc, m := newOrderUseCaseForTest(t)
		m.orders.EXPECT().GetByID(gomock.Any(), "ord-1").Return(entities.Order{}, nil)
		_, err := uc.GetOrder(context.Background(), ownerPrincipal(), "ord-1")
		if !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
	})

	t.Run("forbidden for other client", func(t *testing.T) {
		uc, m := newOrderUseCaseForTest(t)
		m.orders.EXPECT().GetByID(gomock.Any(), "ord-1").Return(ownedOrder(), nil)
		_, err := uc.GetOrder(context.Background(), entities.Principal{SubjectID: "intruder", Role: entities.RoleClient}, "ord-1")
		if !errors.Is(err, ErrForbidden) {
			t.Fatalf("expected ErrForbidden, got %v", err)
		}
	})

	t.Run("owner success", func(t *testing.T) {
		uc, m := newOrderUseCaseForTest(t)
		m.orders.EXPECT().GetByID(gomock.Any(), "ord-1").Return(ownedOrder(), nil)
		order, err := uc.GetOrder(context.Background(), ownerPrincipal(), " ord-1 ")
		if err != nil || order.OrderID != "ord-1" {
			t.Fatalf("unexpected result err=%v order=%+v", err, order)
		}
	})
}
