package clients

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"storefront/internal/domain"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const productsJSON = `[
  {"id":1,"name":"Coke","price":"2.500","description":"Cold drink","img":"http://img/coke.png","categories":[1],"available":true,"best_seller":true},
  {"id":2,"name":"Ceviche","price":"12.500","description":"Fresh fish","img":"http://img/ceviche.png","categories":[3,4],"available":false,"best_seller":false}
]`

func newTestClient(t *testing.T, handler http.HandlerFunc) (CatalogClient, *test.Hook) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	logger, hook := test.NewNullLogger()
	return NewCatalogHTTPClient(srv.URL+"/", time.Second, logger), hook
}

func TestListProducts(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/products", r.URL.Path)
		assert.Equal(t, http.MethodGet, r.Method)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(productsJSON))
	})

	products, err := client.ListProducts(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 2)

	assert.Equal(t, domain.Product{
		ID:          1,
		Name:        "Coke",
		Price:       "2.500",
		Description: "Cold drink",
		Img:         "http://img/coke.png",
		Categories:  []int{1},
		Available:   true,
		BestSeller:  true,
	}, products[0])
	assert.Equal(t, []int{3, 4}, products[1].Categories)
	assert.False(t, products[1].Available)
}

func TestGetCart(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/cart", r.URL.Path)
		_, _ = w.Write([]byte(`[{"id":1,"name":"Coke","price":"2.500"},{"id":1,"name":"Coke","price":"2.500"}]`))
	})

	cart, err := client.GetCart(context.Background())
	require.NoError(t, err)
	assert.Len(t, cart, 2)
}

func TestGetCart_NullBodyIsEmpty(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`null`))
	})

	cart, err := client.GetCart(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, cart)
	assert.Empty(t, cart)
}

func TestListProducts_UnexpectedStatus(t *testing.T) {
	client, hook := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})

	_, err := client.ListProducts(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnexpectedStatus)
	assert.Contains(t, err.Error(), "500")
	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, logrus.ErrorLevel, hook.LastEntry().Level)
}

func TestListProducts_DecodeError(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"not":"an array"}`))
	})

	_, err := client.ListProducts(context.Background())
	assert.ErrorContains(t, err, "failed to decode catalog response")
}

func TestListProducts_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	logger, _ := test.NewNullLogger()
	client := NewCatalogHTTPClient(url, time.Second, logger)

	_, err := client.ListProducts(context.Background())
	assert.ErrorContains(t, err, "failed to communicate with catalog api")
}

func TestListProducts_HonoursContext(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.ListProducts(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
