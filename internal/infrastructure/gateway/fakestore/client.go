// internal/infrastructure/gateway/fakestore/client.go
package fakestore

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/shopspring/decimal"
	"github.com/your-org/storefront/internal/config"
	"github.com/your-org/storefront/internal/domain/catalog"
)

// dateLayout is the ISO-8601 layout the backend uses for cart dates
const dateLayout = "2006-01-02T15:04:05.000Z07:00"

// Client is the HTTP implementation of the catalog gateway against a
// FakeStore-style REST backend. Every request is bounded by the
// configured timeout; the core never blocks indefinitely on it.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

var _ catalog.Gateway = (*Client)(nil)

// NewClient creates a new gateway client
func NewClient(cfg *config.Config) *Client {
	return &Client{
		baseURL: cfg.Gateway.BaseURL,
		httpClient: &http.Client{
			Timeout: cfg.Gateway.Timeout,
		},
	}
}

// productDTO mirrors the backend's product resource
type productDTO struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Image       string  `json:"image"`
	Rating      struct {
		Rate  float64 `json:"rate"`
		Count int     `json:"count"`
	} `json:"rating"`
}

func (d productDTO) toDomain() catalog.Product {
	return catalog.Product{
		ID:          d.ID,
		Title:       d.Title,
		Price:       decimal.NewFromFloat(d.Price),
		Description: d.Description,
		Category:    d.Category,
		Image:       d.Image,
		Rating: catalog.Rating{
			Rate:  d.Rating.Rate,
			Count: d.Rating.Count,
		},
	}
}

// cartDTO mirrors the backend's cart resource: product ids and
// quantities only, no product details.
type cartDTO struct {
	ID       int64         `json:"id"`
	UserID   int64         `json:"userId"`
	Date     string        `json:"date"`
	Products []cartLineDTO `json:"products"`
}

type cartLineDTO struct {
	ProductID int64 `json:"productId"`
	Quantity  int   `json:"quantity"`
}

func (d cartDTO) toDomain() catalog.RemoteCart {
	date, err := time.Parse(dateLayout, d.Date)
	if err != nil {
		// Some deployments omit the fractional seconds
		date, _ = time.Parse(time.RFC3339, d.Date)
	}

	lines := make([]catalog.RemoteCartLine, len(d.Products))
	for i, line := range d.Products {
		lines[i] = catalog.RemoteCartLine{
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
		}
	}

	return catalog.RemoteCart{
		ID:     d.ID,
		UserID: d.UserID,
		Date:   date,
		Lines:  lines,
	}
}

func cartToDTO(c catalog.RemoteCart) cartDTO {
	lines := make([]cartLineDTO, len(c.Lines))
	for i, line := range c.Lines {
		lines[i] = cartLineDTO{
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
		}
	}

	date := c.Date
	if date.IsZero() {
		date = time.Now()
	}

	return cartDTO{
		ID:       c.ID,
		UserID:   c.UserID,
		Date:     date.UTC().Format(dateLayout),
		Products: lines,
	}
}

// ListProducts fetches the full catalog
func (c *Client) ListProducts(ctx context.Context) ([]catalog.Product, error) {
	var dtos []productDTO
	if err := c.do(ctx, http.MethodGet, "/products", nil, &dtos); err != nil {
		return nil, err
	}

	products := make([]catalog.Product, len(dtos))
	for i, dto := range dtos {
		products[i] = dto.toDomain()
	}
	return products, nil
}

// GetProduct fetches a single product by id
func (c *Client) GetProduct(ctx context.Context, id int64) (catalog.Product, error) {
	var dto productDTO
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/products/%d", id), nil, &dto); err != nil {
		return catalog.Product{}, err
	}

	// The backend answers 200 with an empty body for unknown ids
	if dto.ID == 0 {
		return catalog.Product{}, catalog.ErrProductNotFound
	}

	return dto.toDomain(), nil
}

// ListCategories fetches all product categories
func (c *Client) ListCategories(ctx context.Context) ([]string, error) {
	var categories []string
	if err := c.do(ctx, http.MethodGet, "/products/categories", nil, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

// ListProductsByCategory fetches all products of one category
func (c *Client) ListProductsByCategory(ctx context.Context, category string) ([]catalog.Product, error) {
	var dtos []productDTO
	path := "/products/category/" + url.PathEscape(category)
	if err := c.do(ctx, http.MethodGet, path, nil, &dtos); err != nil {
		return nil, err
	}

	products := make([]catalog.Product, len(dtos))
	for i, dto := range dtos {
		products[i] = dto.toDomain()
	}
	return products, nil
}

// GetCart fetches a remote cart by id
func (c *Client) GetCart(ctx context.Context, id int64) (catalog.RemoteCart, error) {
	var dto cartDTO
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/carts/%d", id), nil, &dto); err != nil {
		return catalog.RemoteCart{}, err
	}
	return dto.toDomain(), nil
}

// ListUserCarts fetches all carts of one user
func (c *Client) ListUserCarts(ctx context.Context, userID int64) ([]catalog.RemoteCart, error) {
	var dtos []cartDTO
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/carts/user/%d", userID), nil, &dtos); err != nil {
		return nil, err
	}

	carts := make([]catalog.RemoteCart, len(dtos))
	for i, dto := range dtos {
		carts[i] = dto.toDomain()
	}
	return carts, nil
}

// CreateCart persists a new cart; the backend assigns the id
func (c *Client) CreateCart(ctx context.Context, cart catalog.RemoteCart) (catalog.RemoteCart, error) {
	var dto cartDTO
	if err := c.do(ctx, http.MethodPost, "/carts", cartToDTO(cart), &dto); err != nil {
		return catalog.RemoteCart{}, err
	}

	confirmed := dto.toDomain()
	// The backend echoes the submitted lines but may omit them in the
	// response; fall back to what was sent.
	if len(confirmed.Lines) == 0 && len(cart.Lines) > 0 {
		confirmed.Lines = cart.Lines
	}
	return confirmed, nil
}

// UpdateCart replaces the remote cart's line set
func (c *Client) UpdateCart(ctx context.Context, cart catalog.RemoteCart) (catalog.RemoteCart, error) {
	var dto cartDTO
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/carts/%d", cart.ID), cartToDTO(cart), &dto); err != nil {
		return catalog.RemoteCart{}, err
	}

	confirmed := dto.toDomain()
	if confirmed.ID == 0 {
		confirmed.ID = cart.ID
	}
	if len(confirmed.Lines) == 0 && len(cart.Lines) > 0 {
		confirmed.Lines = cart.Lines
	}
	return confirmed, nil
}

// DeleteCart deletes a remote cart
func (c *Client) DeleteCart(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/carts/%d", id), nil, nil)
}

// do performs one request against the backend and classifies failures:
// transport errors wrap ErrRemoteUnavailable, non-2xx answers wrap
// ErrRemoteRejected with the status attached.
func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %s %s: %v", catalog.ErrRemoteUnavailable, method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%w: %s %s: status %d", catalog.ErrRemoteRejected, method, path, resp.StatusCode)
	}

	if out == nil {
		return nil
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: %s %s: reading body: %v", catalog.ErrRemoteUnavailable, method, path, err)
	}

	// Unknown resources come back as 200 with "null"
	if len(bytes.TrimSpace(data)) == 0 || bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil
	}

	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to decode response from %s %s: %w", method, path, err)
	}

	return nil
}
