package service

import (
	"context"
	"log/slog"
	"slices"

	"github.com/aaravmahajanofficial/food-delivery-storefront/internal/api/middleware"
	"github.com/aaravmahajanofficial/food-delivery-storefront/internal/cart"
	"github.com/aaravmahajanofficial/food-delivery-storefront/internal/errors"
	"github.com/aaravmahajanofficial/food-delivery-storefront/internal/modal"
	"github.com/aaravmahajanofficial/food-delivery-storefront/internal/models"
	"github.com/aaravmahajanofficial/food-delivery-storefront/internal/session"
	"github.com/google/uuid"
)

type CartService interface {
	GetCart(ctx context.Context, sessionID uuid.UUID) (*cart.Summary, error)
	CreatePack(ctx context.Context, sessionID uuid.UUID) (*cart.Summary, error)
	RemovePack(ctx context.Context, sessionID uuid.UUID, packID string) (*cart.Summary, error)
	SetActivePack(ctx context.Context, sessionID uuid.UUID, packID string) (*cart.Summary, error)
	AddItem(ctx context.Context, sessionID uuid.UUID, req *models.AddCartItemRequest) (*cart.Summary, error)
	UpdateQuantity(ctx context.Context, sessionID uuid.UUID, packID, itemID string, quantity int) (*cart.Summary, error)
	RemoveItem(ctx context.Context, sessionID uuid.UUID, packID, itemID string) (*cart.Summary, error)
	ClearCart(ctx context.Context, sessionID uuid.UUID) (*cart.Summary, error)
}

type cartService struct {
	sessions SessionService
}

func NewCartService(sessions SessionService) CartService {
	return &cartService{sessions: sessions}
}

func (s *cartService) GetCart(ctx context.Context, sessionID uuid.UUID) (*cart.Summary, error) {

	sess, err := s.sessions.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	summary := sess.Cart.Summary()
	return &summary, nil
}

// mutate applies fn to the session cart and returns the recomputed summary.
func (s *cartService) mutate(ctx context.Context, sessionID uuid.UUID, fn func(*session.Session) error) (*cart.Summary, error) {

	sess, err := s.sessions.UpdateSession(ctx, sessionID, fn)
	if err != nil {
		return nil, err
	}

	summary := sess.Cart.Summary()
	return &summary, nil
}

func requirePack(c *cart.Cart, packID string) (cart.Pack, error) {
	pack, ok := c.Pack(packID)
	if !ok {
		return cart.Pack{}, errors.NotFoundError("Pack not found")
	}
	return pack, nil
}

func requireItem(c *cart.Cart, packID, itemID string) error {
	pack, err := requirePack(c, packID)
	if err != nil {
		return err
	}
	if !slices.ContainsFunc(pack.Items, func(i cart.Item) bool { return i.ID == itemID }) {
		return errors.NotFoundError("Item not found in pack")
	}
	return nil
}

func (s *cartService) CreatePack(ctx context.Context, sessionID uuid.UUID) (*cart.Summary, error) {
	return s.mutate(ctx, sessionID, func(sess *session.Session) error {
		sess.Cart.CreatePack()
		return nil
	})
}

func (s *cartService) RemovePack(ctx context.Context, sessionID uuid.UUID, packID string) (*cart.Summary, error) {
	return s.mutate(ctx, sessionID, func(sess *session.Session) error {
		if _, err := requirePack(sess.Cart, packID); err != nil {
			return err
		}
		sess.Cart.RemovePack(packID)
		return nil
	})
}

func (s *cartService) SetActivePack(ctx context.Context, sessionID uuid.UUID, packID string) (*cart.Summary, error) {
	return s.mutate(ctx, sessionID, func(sess *session.Session) error {
		if _, err := requirePack(sess.Cart, packID); err != nil {
			return err
		}
		sess.Cart.SetActivePack(packID)
		return nil
	})
}

// AddItem refuses items from a second vendor unless the caller asked to
// replace the cart. A refusal opens the vendor-mismatch modal and is saved.
func (s *cartService) AddItem(ctx context.Context, sessionID uuid.UUID, req *models.AddCartItemRequest) (*cart.Summary, error) {

	logger := middleware.LoggerFromContext(ctx)

	item := cart.Item{
		ID:       req.ID,
		Name:     req.Name,
		Price:    req.Price,
		Quantity: req.Quantity,
		Image:    req.Image,
		VendorID: req.VendorID,
	}

	var mismatch bool

	summary, err := s.mutate(ctx, sessionID, func(sess *session.Session) error {
		packID := req.PackID
		if packID != "" {
			if _, err := requirePack(sess.Cart, packID); err != nil {
				return err
			}
		}

		vendors := sess.Cart.Vendors()
		if item.VendorID != "" && len(vendors) > 0 && !slices.Contains(vendors, item.VendorID) {
			if !req.ReplaceCart {
				mismatch = true
				return sess.Modal.Open(modal.VendorMismatch, modal.Props{
					"currentVendor":   vendors[0],
					"requestedVendor": item.VendorID,
					"item":            item,
				})
			}

			logger.Info("Replacing cart for a different vendor", slog.String("vendorId", item.VendorID))
			sess.Cart.Clear()
			packID = ""
		}

		if packID != "" {
			sess.Cart.AddItem(packID, item)
		} else {
			sess.Cart.AddToActivePack(item)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if mismatch {
		return nil, errors.ConflictError("Your cart has items from another vendor. Clear it to add this item.")
	}

	return summary, nil
}

func (s *cartService) UpdateQuantity(ctx context.Context, sessionID uuid.UUID, packID, itemID string, quantity int) (*cart.Summary, error) {
	return s.mutate(ctx, sessionID, func(sess *session.Session) error {
		if err := requireItem(sess.Cart, packID, itemID); err != nil {
			return err
		}
		sess.Cart.UpdateQuantity(packID, itemID, quantity)
		return nil
	})
}

func (s *cartService) RemoveItem(ctx context.Context, sessionID uuid.UUID, packID, itemID string) (*cart.Summary, error) {
	return s.mutate(ctx, sessionID, func(sess *session.Session) error {
		if err := requireItem(sess.Cart, packID, itemID); err != nil {
			return err
		}
		sess.Cart.RemoveItem(packID, itemID)
		return nil
	})
}

func (s *cartService) ClearCart(ctx context.Context, sessionID uuid.UUID) (*cart.Summary, error) {
	return s.mutate(ctx, sessionID, func(sess *session.Session) error {
		sess.Cart.Clear()
		return nil
	})
}
