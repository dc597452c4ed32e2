package clients

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"storefront/internal/domain"

	"github.com/sirupsen/logrus"
)

var ErrUnexpectedStatus = errors.New("catalog api returned unexpected status")

// CatalogClient reads the product catalog and the stored cart from the
// catalog API.
type CatalogClient interface {
	ListProducts(ctx context.Context) ([]domain.Product, error)
	GetCart(ctx context.Context) ([]domain.Product, error)
}

type catalogHTTPClient struct {
	baseURL string
	client  *http.Client
	log     *logrus.Logger
}

func NewCatalogHTTPClient(baseURL string, timeout time.Duration, logger *logrus.Logger) CatalogClient {
	return &catalogHTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		client: &http.Client{
			Timeout: timeout,
		},
		log: logger,
	}
}

func (c *catalogHTTPClient) ListProducts(ctx context.Context) ([]domain.Product, error) {
	products, err := c.getProducts(ctx, "/products")
	if err != nil {
		return nil, fmt.Errorf("failed to load products: %w", err)
	}
	c.log.Infof("CatalogClient: Loaded %d products", len(products))
	return products, nil
}

func (c *catalogHTTPClient) GetCart(ctx context.Context) ([]domain.Product, error) {
	cart, err := c.getProducts(ctx, "/cart")
	if err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}
	c.log.Infof("CatalogClient: Loaded cart with %d items", len(cart))
	return cart, nil
}

func (c *catalogHTTPClient) getProducts(ctx context.Context, path string) ([]domain.Product, error) {
	url := c.baseURL + path
	c.log.Debugf("CatalogClient: Requesting %s", url)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		c.log.Errorf("CatalogClient: Failed to create request for %s: %v", url, err)
		return nil, fmt.Errorf("failed to create catalog request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		c.log.Errorf("CatalogClient: Failed to execute request for %s: %v", url, err)
		return nil, fmt.Errorf("failed to communicate with catalog api: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		c.log.Errorf("CatalogClient: Request for %s failed with status %d. Response body: %s", url, resp.StatusCode, string(bodyBytes))
		return nil, fmt.Errorf("%w: %d for %s", ErrUnexpectedStatus, resp.StatusCode, path)
	}

	var products []domain.Product
	if err := json.NewDecoder(resp.Body).Decode(&products); err != nil {
		c.log.Errorf("CatalogClient: Failed to decode response for %s: %v", url, err)
		return nil, fmt.Errorf("failed to decode catalog response: %w", err)
	}
	if products == nil {
		products = []domain.Product{}
	}
	return products, nil
}
