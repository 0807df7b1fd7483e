// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"testing"

	"github.com/MKhiriev/go-gym-client/internal/logger"
	"github.com/MKhiriev/go-gym-client/internal/mock"
	"github.com/MKhiriev/go-gym-client/internal/validators"
	"github.com/MKhiriev/go-gym-client/models"
	"go.uber.org/mock/gomock"
)

var testUser = models.User{ID: "1", Name: "Ana Maria", Email: "a@b.com"}

type deps struct {
	session *mock.MockSessionManager
	adapter *mock.MockServerAdapter
}

func newDeps(t *testing.T) deps {
	t.Helper()
	ctrl := gomock.NewController(t)
	return deps{
		session: mock.NewMockSessionManager(ctrl),
		adapter: mock.NewMockServerAdapter(ctrl),
	}
}

func (d deps) auth() *clientAuthService {
	return NewClientAuthService(d.session, d.adapter, validators.NewFormValidator(), logger.Nop()).(*clientAuthService)
}

func (d deps) catalog() *clientCatalogService {
	return NewClientCatalogService(d.session, d.adapter).(*clientCatalogService)
}

func (d deps) history() *clientHistoryService {
	return NewClientHistoryService(d.session, d.adapter, logger.Nop()).(*clientHistoryService)
}

func (d deps) profile() *clientProfileService {
	return NewClientProfileService(d.session, d.adapter, validators.NewFormValidator(), logger.Nop()).(*clientProfileService)
}
