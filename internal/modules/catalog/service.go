package catalog

import (
	"context"
	"fmt"
	"math/rand"
	"sort"
	"strings"

	"github.com/google/uuid"
)

// Service defines catalog business logic.
type Service interface {
	ListProducts(ctx context.Context) ([]Product, error)
	GetProduct(ctx context.Context, id string) (*Product, error)
	Search(ctx context.Context, q SearchQuery) ([]Product, error)
	CreateProduct(ctx context.Context, req ProductRequest) (*Product, error)
	UpdateProduct(ctx context.Context, id string, req ProductRequest) (*Product, error)
	DeleteProduct(ctx context.Context, id string) error
	ListCategories(ctx context.Context) ([]string, error)
	AddCategory(ctx context.Context, name string) ([]string, error)
	DeleteCategory(ctx context.Context, name string) ([]string, error)
}

// ProductRequest holds the admin-editable fields of a product.
type ProductRequest struct {
	Name        string   `json:"name"`
	Category    string   `json:"category"`
	Price       float64  `json:"price"`
	Description string   `json:"description"`
	Ingredients []string `json:"ingredients"`
	Images      []string `json:"images"`
	Video       string   `json:"video"`
	Stock       int      `json:"stock"`
}

type service struct{ repo Repository }

func NewService(repo Repository) Service { return &service{repo: repo} }

func (s *service) ListProducts(ctx context.Context) ([]Product, error) {
	return s.repo.List(ctx)
}

func (s *service) GetProduct(ctx context.Context, id string) (*Product, error) {
	products, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range products {
		if products[i].ID == id {
			return &products[i], nil
		}
	}
	return nil, fmt.Errorf("product %s not found", id)
}

func (s *service) Search(ctx context.Context, q SearchQuery) ([]Product, error) {
	products, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	needle := strings.ToLower(q.Query)
	var result []Product
	for _, p := range products {
		if q.Category != "" && q.Category != "All" && p.Category != q.Category {
			continue
		}
		if needle != "" && !strings.Contains(strings.ToLower(p.Name), needle) {
			continue
		}
		result = append(result, p)
	}

	switch q.Sort {
	case SortPriceLow:
		sort.SliceStable(result, func(i, j int) bool { return result[i].Price < result[j].Price })
	case SortPriceHigh:
		sort.SliceStable(result, func(i, j int) bool { return result[i].Price > result[j].Price })
	case SortRating:
		sort.SliceStable(result, func(i, j int) bool { return result[i].Rating > result[j].Rating })
	}
	return result, nil
}

func (s *service) CreateProduct(ctx context.Context, req ProductRequest) (*Product, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	products, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	p := Product{
		ID:          uuid.NewString(),
		Name:        req.Name,
		Category:    req.Category,
		Price:       req.Price,
		Description: req.Description,
		Ingredients: cleanIngredients(req.Ingredients),
		Image:       req.Images[0],
		Images:      req.Images,
		Video:       req.Video,
		Rating:      5,
		Reviews:     0,
		Stock:       req.Stock,
		SKU:         GenerateSKU(),
	}

	if _, err := s.ensureCategory(ctx, req.Category); err != nil {
		return nil, err
	}
	if err := s.repo.ReplaceAll(ctx, append([]Product{p}, products...)); err != nil {
		return nil, err
	}
	return &p, nil
}

// UpdateProduct replaces the full record keyed by id; the SKU is retained.
func (s *service) UpdateProduct(ctx context.Context, id string, req ProductRequest) (*Product, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	products, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	var updated *Product
	for i := range products {
		if products[i].ID != id {
			continue
		}
		products[i].Name = req.Name
		products[i].Category = req.Category
		products[i].Price = req.Price
		products[i].Description = req.Description
		products[i].Ingredients = cleanIngredients(req.Ingredients)
		products[i].Image = req.Images[0]
		products[i].Images = req.Images
		products[i].Video = req.Video
		products[i].Stock = req.Stock
		updated = &products[i]
		break
	}
	if updated == nil {
		return nil, fmt.Errorf("product %s not found", id)
	}
	if _, err := s.ensureCategory(ctx, req.Category); err != nil {
		return nil, err
	}
	if err := s.repo.ReplaceAll(ctx, products); err != nil {
		return nil, err
	}
	return updated, nil
}

// DeleteProduct removes the product from the catalog only. Cart and order
// items hold snapshots, so historical records are untouched.
func (s *service) DeleteProduct(ctx context.Context, id string) error {
	products, err := s.repo.List(ctx)
	if err != nil {
		return err
	}
	kept := products[:0]
	for _, p := range products {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	return s.repo.ReplaceAll(ctx, kept)
}

func (s *service) ListCategories(ctx context.Context) ([]string, error) {
	return s.repo.ListCategories(ctx)
}

func (s *service) AddCategory(ctx context.Context, name string) ([]string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("category name is required")
	}
	return s.ensureCategory(ctx, name)
}

func (s *service) DeleteCategory(ctx context.Context, name string) ([]string, error) {
	if name == "All" {
		return nil, fmt.Errorf(`the "All" category cannot be removed`)
	}
	categories, err := s.repo.ListCategories(ctx)
	if err != nil {
		return nil, err
	}
	kept := categories[:0]
	for _, c := range categories {
		if c != name {
			kept = append(kept, c)
		}
	}
	if err := s.repo.ReplaceCategories(ctx, kept); err != nil {
		return nil, err
	}
	return kept, nil
}

// ensureCategory appends name to the open category list if it is new.
func (s *service) ensureCategory(ctx context.Context, name string) ([]string, error) {
	categories, err := s.repo.ListCategories(ctx)
	if err != nil {
		return nil, err
	}
	for _, c := range categories {
		if c == name {
			return categories, nil
		}
	}
	categories = append(categories, name)
	if err := s.repo.ReplaceCategories(ctx, categories); err != nil {
		return nil, err
	}
	return categories, nil
}

func validateRequest(req ProductRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return fmt.Errorf("product name is required")
	}
	if req.Category == "" {
		return fmt.Errorf("category is required")
	}
	if len(req.Images) == 0 {
		return fmt.Errorf("at least one image is required")
	}
	if req.Price < 0 {
		return fmt.Errorf("price cannot be negative")
	}
	return nil
}

func cleanIngredients(in []string) []string {
	out := make([]string, 0, len(in))
	for _, i := range in {
		if t := strings.TrimSpace(i); t != "" {
			out = append(out, t)
		}
	}
	return out
}

const skuAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// GenerateSKU returns a LUM-XXXX-XXXX identifier from a fixed alphanumeric
// alphabet.
func GenerateSKU() string {
	segment := func() string {
		b := make([]byte, 4)
		for i := range b {
			b[i] = skuAlphabet[rand.Intn(len(skuAlphabet))]
		}
		return string(b)
	}
	return fmt.Sprintf("LUM-%s-%s", segment(), segment())
}
