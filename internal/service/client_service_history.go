// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-gym-client/internal/adapter"
	"github.com/MKhiriev/go-gym-client/internal/app"
	"github.com/MKhiriev/go-gym-client/internal/logger"
	"github.com/MKhiriev/go-gym-client/models"
)

type clientHistoryService struct {
	session SessionManager
	adapter adapter.ServerAdapter
	logger  *logger.Logger
}

// NewClientHistoryService returns a [ClientHistoryService].
func NewClientHistoryService(session SessionManager, serverAdapter adapter.ServerAdapter, logger *logger.Logger) ClientHistoryService {
	return &clientHistoryService{session: session, adapter: serverAdapter, logger: logger}
}

func (h *clientHistoryService) List(ctx context.Context) ([]models.HistoryByDay, error) {
	if !h.session.IsAuthenticated() {
		return nil, ErrNotSignedIn
	}

	days, err := h.adapter.History(ctx)
	if err != nil {
		return nil, mapAdapterError(err)
	}
	return days, nil
}

func (h *clientHistoryService) Register(ctx context.Context, exerciseID models.ID) error {
	if strings.TrimSpace(exerciseID.String()) == "" {
		return &app.Error{Kind: app.KindValidation, Field: "id", Message: "Choose an exercise.", Err: ErrEmptyExerciseID}
	}
	if !h.session.IsAuthenticated() {
		return ErrNotSignedIn
	}

	if err := h.adapter.RegisterHistory(ctx, exerciseID); err != nil {
		return mapAdapterError(err)
	}

	h.logger.Info().Str("func", "clientHistoryService.Register").Str("exercise_id", exerciseID.String()).Msg("exercise registered")
	return nil
}
