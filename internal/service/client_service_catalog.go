// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-gym-client/internal/adapter"
	"github.com/MKhiriev/go-gym-client/internal/app"
	"github.com/MKhiriev/go-gym-client/models"
)

type clientCatalogService struct {
	session SessionManager
	adapter adapter.ServerAdapter
}

// NewClientCatalogService returns a [ClientCatalogService]. Every call except
// the URL helpers requires a signed-in session.
func NewClientCatalogService(session SessionManager, serverAdapter adapter.ServerAdapter) ClientCatalogService {
	return &clientCatalogService{session: session, adapter: serverAdapter}
}

func (c *clientCatalogService) Groups(ctx context.Context) ([]string, error) {
	if !c.session.IsAuthenticated() {
		return nil, ErrNotSignedIn
	}

	groups, err := c.adapter.Groups(ctx)
	if err != nil {
		return nil, mapAdapterError(err)
	}
	return groups, nil
}

func (c *clientCatalogService) ExercisesByGroup(ctx context.Context, group string) ([]models.Exercise, error) {
	group = strings.TrimSpace(group)
	if group == "" {
		return nil, &app.Error{Kind: app.KindValidation, Field: "group", Message: "Choose a muscle group.", Err: ErrEmptyGroup}
	}
	if !c.session.IsAuthenticated() {
		return nil, ErrNotSignedIn
	}

	exercises, err := c.adapter.ExercisesByGroup(ctx, group)
	if err != nil {
		return nil, mapAdapterError(err)
	}
	return exercises, nil
}

func (c *clientCatalogService) Exercise(ctx context.Context, id models.ID) (models.Exercise, error) {
	if strings.TrimSpace(id.String()) == "" {
		return models.Exercise{}, &app.Error{Kind: app.KindValidation, Field: "id", Message: "Choose an exercise.", Err: ErrEmptyExerciseID}
	}
	if !c.session.IsAuthenticated() {
		return models.Exercise{}, ErrNotSignedIn
	}

	exercise, err := c.adapter.Exercise(ctx, id)
	if err != nil {
		return models.Exercise{}, mapAdapterError(err)
	}
	return exercise, nil
}

func (c *clientCatalogService) DemoURL(exercise models.Exercise) string {
	return c.adapter.MediaURL(models.MediaExerciseDemo, exercise.Demo)
}

func (c *clientCatalogService) ThumbURL(exercise models.Exercise) string {
	return c.adapter.MediaURL(models.MediaExerciseThumb, exercise.Thumb)
}
