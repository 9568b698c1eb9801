package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/designershaven/marketplace-api/internal/domain/entity"
)

func newOrderFixture() (*OrderService, *fakeOrderRepo) {
	products := newFakeProductRepo(
		&entity.Product{ID: "p-1", OwnerEmail: sellerEmail, Title: "Silk Scarf", PriceCents: 1000},
		&entity.Product{ID: "p-2", OwnerEmail: otherEmail, Title: "Wool Coat", PriceCents: 42000},
	)
	orders := newFakeOrderRepo()
	return NewOrderService(orders, products, nil, testLogger()), orders
}

func TestPlaceOrderSnapshotsProducts(t *testing.T) {
	svc, orders := newOrderFixture()

	o, err := svc.PlaceOrder(context.Background(), buyerEmail, []OrderLine{
		{ProductID: "p-1", Quantity: 2},
		{ProductID: "p-2", Quantity: 1},
	})
	require.NoError(t, err)

	assert.Equal(t, buyerEmail, o.UserEmail)
	assert.Equal(t, int64(44000), o.TotalCents)
	require.Len(t, o.Items, 2)
	assert.Equal(t, "Silk Scarf", o.Items[0].Title)
	assert.Equal(t, sellerEmail, o.Items[0].OwnerEmail)
	assert.Equal(t, int64(1000), o.Items[0].PriceCents)
	assert.Equal(t, 2, o.Items[0].Quantity)

	stored, err := orders.ListAll()
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, o.ID, stored[0].ID)
}

func TestPlaceOrderSnapshotSurvivesProductEdit(t *testing.T) {
	svc, orders := newOrderFixture()
	ctx := context.Background()

	_, err := svc.PlaceOrder(ctx, buyerEmail, []OrderLine{{ProductID: "p-1", Quantity: 1}})
	require.NoError(t, err)

	// Reprice the product after the sale; the stored order keeps the old price.
	p, err := svc.Products.GetByID("p-1")
	require.NoError(t, err)
	p.PriceCents = 9900

	stored, err := orders.ListAll()
	require.NoError(t, err)
	assert.Equal(t, int64(1000), stored[0].Items[0].PriceCents)
	assert.Equal(t, int64(1000), stored[0].TotalCents)
}

func TestPlaceOrderEmptyRejected(t *testing.T) {
	svc, _ := newOrderFixture()

	_, err := svc.PlaceOrder(context.Background(), buyerEmail, nil)
	assert.ErrorIs(t, err, ErrEmptyOrder)
}

func TestPlaceOrderInvalidQuantity(t *testing.T) {
	svc, _ := newOrderFixture()

	_, err := svc.PlaceOrder(context.Background(), buyerEmail, []OrderLine{{ProductID: "p-1", Quantity: 0}})
	assert.ErrorIs(t, err, ErrInvalidQuantity)
}

func TestPlaceOrderUnknownProduct(t *testing.T) {
	svc, orders := newOrderFixture()

	_, err := svc.PlaceOrder(context.Background(), buyerEmail, []OrderLine{{ProductID: "p-missing", Quantity: 1}})
	assert.ErrorIs(t, err, ErrProductNotFound)

	stored, err := orders.ListAll()
	require.NoError(t, err)
	assert.Empty(t, stored)
}
