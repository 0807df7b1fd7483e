// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-gym-client/internal/adapter"
	"github.com/MKhiriev/go-gym-client/internal/config"
	"github.com/MKhiriev/go-gym-client/internal/logger"
	"github.com/MKhiriev/go-gym-client/internal/validators"
)

type ClientServices struct {
	AuthService     ClientAuthService
	CatalogService  ClientCatalogService
	HistoryService  ClientHistoryService
	ProfileService  ClientProfileService
	TokenRefresher  TokenRefresher
	TokenRefreshJob ClientTokenRefreshJob
}

func NewClientServices(session SessionManager, serverAdapter adapter.ServerAdapter, workersCfg config.ClientWorkers, logger *logger.Logger) *ClientServices {
	validator := validators.NewFormValidator()
	refresher := NewTokenRefresher(session, serverAdapter, workersCfg.RefreshLeeway, logger)

	return &ClientServices{
		AuthService:     NewClientAuthService(session, serverAdapter, validator, logger),
		CatalogService:  NewClientCatalogService(session, serverAdapter),
		HistoryService:  NewClientHistoryService(session, serverAdapter, logger),
		ProfileService:  NewClientProfileService(session, serverAdapter, validator, logger),
		TokenRefresher:  refresher,
		TokenRefreshJob: NewTokenRefreshJob(refresher, workersCfg.RefreshInterval),
	}
}
