package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/leaflane/storefront-platform/internal/api/middleware"
	"github.com/leaflane/storefront-platform/internal/errors"
	"github.com/leaflane/storefront-platform/internal/models"
	repository "github.com/leaflane/storefront-platform/internal/repositories"
)

// CheckoutDispatcher is the external collaborator the cart hands a finished
// order to; the cart itself performs no checkout logic.
type CheckoutDispatcher interface {
	Submit(ctx context.Context, order *models.CheckoutOrder) error
}

type CartService interface {
	Summary(ctx context.Context, sessionID string) (*models.CartSummary, error)
	AddUnit(ctx context.Context, sessionID, productID string) (*models.CartSummary, error)
	RemoveUnit(ctx context.Context, sessionID, productID string) (*models.CartSummary, error)
	Checkout(ctx context.Context, sessionID string) (*models.CheckoutOrder, error)
}

type cartService struct {
	carts      *SessionCartStore
	products   repository.ProductRepository
	dispatcher CheckoutDispatcher
}

func NewCartService(carts *SessionCartStore, products repository.ProductRepository, dispatcher CheckoutDispatcher) CartService {
	return &cartService{carts: carts, products: products, dispatcher: dispatcher}
}

// AddUnit never fails on the cart side; unknown product IDs are tolerated
// and simply resolve to a 0-price line in the summary.
func (s *cartService) AddUnit(ctx context.Context, sessionID, productID string) (*models.CartSummary, error) {

	cart := s.carts.GetOrCreate(sessionID)
	cart.AddUnit(productID)

	return s.Summary(ctx, sessionID)
}

func (s *cartService) RemoveUnit(ctx context.Context, sessionID, productID string) (*models.CartSummary, error) {

	cart := s.carts.GetOrCreate(sessionID)
	cart.RemoveUnit(productID)

	return s.Summary(ctx, sessionID)
}

// Summary re-joins the cart's quantities against a fresh product snapshot
// fetched by ID, so lines keep their prices even after their products have
// scrolled out of the currently displayed catalog page. A product the store
// no longer resolves contributes 0.
func (s *cartService) Summary(ctx context.Context, sessionID string) (*models.CartSummary, error) {

	cart := s.carts.GetOrCreate(sessionID)
	lines := cart.Lines()

	ids := make([]string, 0, len(lines))
	for _, line := range lines {
		ids = append(ids, line.ProductID)
	}

	snapshot, err := s.products.GetProductsByIDs(ctx, ids)
	if err != nil {
		return nil, errors.DatabaseError("Failed to resolve cart products").WithError(err)
	}

	byID := make(map[string]*models.Product, len(snapshot))
	for _, product := range snapshot {
		byID[product.ID.String()] = product
	}

	views := make([]models.CartLineView, 0, len(lines))

	for _, line := range lines {
		view := models.CartLineView{ProductID: line.ProductID, Quantity: line.Quantity}

		if product, ok := byID[line.ProductID]; ok {
			view.Product = product
			view.LineTotal = product.Price * int64(line.Quantity)
		}

		views = append(views, view)
	}

	return &models.CartSummary{
		SessionID: sessionID,
		Lines:     views,
		ItemCount: cart.ItemCount(),
		Total:     cart.Total(snapshot),
	}, nil
}

// Checkout builds the ordered handoff payload and submits it to the external
// checkout collaborator. Lines whose product no longer resolves are dropped
// from the payload; they would contribute 0 anyway.
func (s *cartService) Checkout(ctx context.Context, sessionID string) (*models.CheckoutOrder, error) {

	logger := middleware.LoggerFromContext(ctx)

	summary, err := s.Summary(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if summary.ItemCount == 0 {
		return nil, errors.ValidationError("Cart is empty").WithReason("empty_cart")
	}

	if s.dispatcher == nil {
		return nil, errors.ConfigurationError("Checkout endpoint is not configured").WithReason("missing_env")
	}

	order := &models.CheckoutOrder{
		SessionID:   sessionID,
		ItemCount:   summary.ItemCount,
		Total:       summary.Total,
		SubmittedAt: time.Now(),
	}

	for _, line := range summary.Lines {
		if line.Product == nil {
			logger.Warn("Dropping unresolvable cart line from checkout", slog.String("product_id", line.ProductID))
			continue
		}

		order.Lines = append(order.Lines, models.CheckoutLine{
			Product:  *line.Product,
			Quantity: line.Quantity,
			Subtotal: line.LineTotal,
		})
	}

	if err := s.dispatcher.Submit(ctx, order); err != nil {
		return nil, errors.ThirdPartyError("Checkout handoff failed").WithError(err)
	}

	return order, nil
}
