package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/harsha-legends/nutri-vision-sub000/models"
)

const offDefaultBaseURL = "https://world.openfoodfacts.org"

// OpenFoodFactsService talks to the Open Food Facts REST API for barcode
// lookups and free-text search. Results are mapped straight into catalog
// FoodItems with per-serving nutrition.
type OpenFoodFactsService struct {
	BaseURL string
	Client  *http.Client
}

func NewOpenFoodFactsService() *OpenFoodFactsService {
	return &OpenFoodFactsService{
		BaseURL: os.Getenv("OFF_BASE_URL"),
		Client:  &http.Client{Timeout: 12 * time.Second},
	}
}

type offProduct struct {
	Code        string                 `json:"code"`
	ProductName string                 `json:"product_name"`
	Categories  string                 `json:"categories"`
	ImageURL    string                 `json:"image_url"`
	Nutriments  map[string]interface{} `json:"nutriments"`
}

type offProductResponse struct {
	Status  int        `json:"status"`
	Product offProduct `json:"product"`
}

type offSearchResponse struct {
	Products []offProduct `json:"products"`
}

func (s *OpenFoodFactsService) base() string {
	b := strings.TrimRight(strings.TrimSpace(s.BaseURL), "/")
	if b == "" {
		return offDefaultBaseURL
	}
	return b
}

// LookupBarcode fetches one product by barcode.
func (s *OpenFoodFactsService) LookupBarcode(ctx context.Context, barcode string) (*models.FoodItem, error) {
	u := fmt.Sprintf("%s/api/v2/product/%s.json", s.base(), url.PathEscape(barcode))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("create openfoodfacts request: %w", err)
	}
	req.Header.Set("User-Agent", "nutri-vision/1.0")

	resp, err := s.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute openfoodfacts request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read openfoodfacts response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("openfoodfacts request failed with status %d", resp.StatusCode)
	}

	var parsed offProductResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("decode openfoodfacts response: %w", err)
	}
	if parsed.Status != 1 || parsed.Product.ProductName == "" {
		return nil, fmt.Errorf("no openfoodfacts product found for barcode %q", barcode)
	}

	item := productToFoodItem(parsed.Product)
	item.Barcode = barcode
	return &item, nil
}

// Search runs a free-text product search, returning up to limit items.
func (s *OpenFoodFactsService) Search(ctx context.Context, query string, limit int) ([]models.FoodItem, error) {
	if limit <= 0 {
		limit = 10
	}
	u := fmt.Sprintf(
		"%s/cgi/search.pl?search_terms=%s&search_simple=1&action=process&json=1&page_size=%d",
		s.base(), url.QueryEscape(query), limit,
	)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("create openfoodfacts search request: %w", err)
	}
	req.Header.Set("User-Agent", "nutri-vision/1.0")

	resp, err := s.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute openfoodfacts search: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read openfoodfacts search response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("openfoodfacts search failed with status %d", resp.StatusCode)
	}

	var parsed offSearchResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("decode openfoodfacts search response: %w", err)
	}

	items := make([]models.FoodItem, 0, len(parsed.Products))
	for _, p := range parsed.Products {
		if p.ProductName == "" {
			continue
		}
		item := productToFoodItem(p)
		item.Barcode = p.Code
		items = append(items, item)
	}
	return items, nil
}

func productToFoodItem(p offProduct) models.FoodItem {
	category := p.Categories
	if i := strings.Index(category, ","); i >= 0 {
		category = strings.TrimSpace(category[:i])
	}
	return models.FoodItem{
		Name:     strings.TrimSpace(p.ProductName),
		Category: category,
		Image:    p.ImageURL,
		Source:   "openfoodfacts",
		Calories: nutrientValue(p.Nutriments, "energy-kcal"),
		Protein:  nutrientValue(p.Nutriments, "proteins"),
		Carbs:    nutrientValue(p.Nutriments, "carbohydrates"),
		Fats:     nutrientValue(p.Nutriments, "fat"),
		Fiber:    nutrientValue(p.Nutriments, "fiber"),
		Sugar:    nutrientValue(p.Nutriments, "sugars"),
	}
}

// nutrientValue prefers the per-serving figure and falls back to per-100g.
// OFF mixes numbers and strings in the nutriments map.
func nutrientValue(nutriments map[string]interface{}, key string) float64 {
	for _, k := range []string{key + "_serving", key + "_100g", key} {
		if raw, ok := nutriments[k]; ok {
			switch v := raw.(type) {
			case float64:
				return v
			case string:
				if f, err := strconv.ParseFloat(v, 64); err == nil {
					return f
				}
			case json.Number:
				if f, err := v.Float64(); err == nil {
					return f
				}
			}
		}
	}
	return 0
}
