package service

import (
	"context"

	"github.com/aaravmahajanofficial/food-delivery-storefront/internal/errors"
	"github.com/aaravmahajanofficial/food-delivery-storefront/internal/modal"
	"github.com/aaravmahajanofficial/food-delivery-storefront/internal/models"
	"github.com/aaravmahajanofficial/food-delivery-storefront/internal/session"
	"github.com/google/uuid"
)

type ModalService interface {
	GetModal(ctx context.Context, sessionID uuid.UUID) (*models.ModalResponse, error)
	OpenModal(ctx context.Context, sessionID uuid.UUID, req *models.OpenModalRequest) (*models.ModalResponse, error)
	CloseModal(ctx context.Context, sessionID uuid.UUID) (*models.ModalResponse, error)
}

type modalService struct {
	sessions SessionService
}

func NewModalService(sessions SessionService) ModalService {
	return &modalService{sessions: sessions}
}

func toModalResponse(state modal.State) *models.ModalResponse {
	t, props := state.Current()
	return &models.ModalResponse{Type: string(t), Props: props, IsOpen: state.IsOpen()}
}

func (s *modalService) GetModal(ctx context.Context, sessionID uuid.UUID) (*models.ModalResponse, error) {

	sess, err := s.sessions.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	return toModalResponse(sess.Modal), nil
}

func (s *modalService) OpenModal(ctx context.Context, sessionID uuid.UUID, req *models.OpenModalRequest) (*models.ModalResponse, error) {

	t := modal.Type(req.Type)
	if !t.Valid() {
		return nil, errors.AddValidationError("type", "is not a known modal")
	}

	sess, err := s.sessions.UpdateSession(ctx, sessionID, func(sess *session.Session) error {
		return sess.Modal.Open(t, req.Props)
	})
	if err != nil {
		return nil, err
	}

	return toModalResponse(sess.Modal), nil
}

func (s *modalService) CloseModal(ctx context.Context, sessionID uuid.UUID) (*models.ModalResponse, error) {

	sess, err := s.sessions.UpdateSession(ctx, sessionID, func(sess *session.Session) error {
		sess.Modal.Close()
		return nil
	})
	if err != nil {
		return nil, err
	}

	return toModalResponse(sess.Modal), nil
}
