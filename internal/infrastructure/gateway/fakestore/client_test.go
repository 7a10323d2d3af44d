package fakestore

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/your-org/storefront/internal/config"
	"github.com/your-org/storefront/internal/domain/catalog"
)

func testClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := &config.Config{
		Gateway: config.GatewayConfig{
			BaseURL: srv.URL,
			Timeout: 2 * time.Second,
		},
	}
	return NewClient(cfg), srv
}

func TestListProducts(t *testing.T) {
	client, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/products" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"id":1,"title":"Backpack","price":109.95,"description":"d","category":"men's clothing","image":"https://img/1.png","rating":{"rate":3.9,"count":120}}
		]`))
	}))

	products, err := client.ListProducts(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(products) != 1 {
		t.Fatalf("expected 1 product, got %d", len(products))
	}

	p := products[0]
	if p.ID != 1 || p.Title != "Backpack" {
		t.Fatalf("unexpected product: %+v", p)
	}
	if want := decimal.NewFromFloat(109.95); !p.Price.Equal(want) {
		t.Fatalf("expected price %s, got %s", want, p.Price)
	}
	if p.Rating.Rate != 3.9 || p.Rating.Count != 120 {
		t.Fatalf("unexpected rating: %+v", p.Rating)
	}
}

func TestGetProduct(t *testing.T) {
	t.Run("unknown id -> ErrProductNotFound", func(t *testing.T) {
		client, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// The backend answers 200 with an empty body for unknown ids
			w.WriteHeader(http.StatusOK)
		}))

		_, err := client.GetProduct(context.Background(), 999)
		if !errors.Is(err, catalog.ErrProductNotFound) {
			t.Fatalf("expected ErrProductNotFound, got %v", err)
		}
	})
}

func TestErrorClassification(t *testing.T) {
	t.Run("non-2xx wraps ErrRemoteRejected", func(t *testing.T) {
		client, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))

		_, err := client.ListProducts(context.Background())
		if !errors.Is(err, catalog.ErrRemoteRejected) {
			t.Fatalf("expected ErrRemoteRejected, got %v", err)
		}
	})

	t.Run("unreachable backend wraps ErrRemoteUnavailable", func(t *testing.T) {
		client, srv := testClient(t, http.NewServeMux())
		srv.Close()

		_, err := client.ListProducts(context.Background())
		if !errors.Is(err, catalog.ErrRemoteUnavailable) {
			t.Fatalf("expected ErrRemoteUnavailable, got %v", err)
		}
	})
}

func TestCreateCart(t *testing.T) {
	client, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/carts" {
			t.Fatalf("unexpected request %s %s", r.Method, r.URL.Path)
		}

		var dto cartDTO
		if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
			t.Fatalf("failed to decode request: %v", err)
		}
		if len(dto.Products) != 1 || dto.Products[0].ProductID != 1 || dto.Products[0].Quantity != 2 {
			t.Fatalf("unexpected wire lines: %+v", dto.Products)
		}
		if _, err := time.Parse(dateLayout, dto.Date); err != nil {
			t.Fatalf("date not ISO-8601: %q", dto.Date)
		}

		dto.ID = 11
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(dto)
	}))

	cart := catalog.RemoteCart{
		UserID: 1,
		Date:   time.Now(),
		Lines:  []catalog.RemoteCartLine{{ProductID: 1, Quantity: 2}},
	}

	confirmed, err := client.CreateCart(context.Background(), cart)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if confirmed.ID != 11 {
		t.Fatalf("expected server-assigned id 11, got %d", confirmed.ID)
	}
	if len(confirmed.Lines) != 1 || confirmed.Lines[0].Quantity != 2 {
		t.Fatalf("unexpected confirmed lines: %+v", confirmed.Lines)
	}
}

func TestUpdateCart(t *testing.T) {
	client, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut || r.URL.Path != "/carts/11" {
			t.Fatalf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":11,"userId":1,"date":"2024-03-02T00:00:00.000Z","products":[{"productId":1,"quantity":5}]}`))
	}))

	cart := catalog.RemoteCart{
		ID:     11,
		UserID: 1,
		Lines:  []catalog.RemoteCartLine{{ProductID: 1, Quantity: 5}},
	}

	confirmed, err := client.UpdateCart(context.Background(), cart)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if confirmed.Lines[0].Quantity != 5 {
		t.Fatalf("expected quantity 5, got %d", confirmed.Lines[0].Quantity)
	}
	if confirmed.Date.IsZero() {
		t.Fatal("expected parsed cart date")
	}
}

func TestDeleteCart(t *testing.T) {
	var called bool
	client, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete || r.URL.Path != "/carts/7" {
			t.Fatalf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		called = true
		w.WriteHeader(http.StatusOK)
	}))

	if err := client.DeleteCart(context.Background(), 7); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !called {
		t.Fatal("expected delete request to be sent")
	}
}
