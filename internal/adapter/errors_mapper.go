// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-gym-client/internal/app"
	"github.com/MKhiriev/go-gym-client/models"
	"github.com/go-resty/resty/v2"
)

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))

	var sentinel error
	switch resp.StatusCode() {
	case http.StatusBadRequest:
		sentinel = ErrBadRequest
	case http.StatusUnauthorized:
		sentinel = ErrUnauthorized
	case http.StatusForbidden:
		sentinel = ErrForbidden
	case http.StatusNotFound:
		sentinel = ErrNotFound
	case http.StatusConflict:
		sentinel = ErrConflict
	case http.StatusRequestEntityTooLarge:
		sentinel = ErrPayloadTooLarge
	case http.StatusBadGateway:
		sentinel = ErrBadGateway
	case http.StatusInternalServerError:
		sentinel = ErrInternalServerError
	default:
		if body == "" {
			body = http.StatusText(resp.StatusCode())
		}
		sentinel = fmt.Errorf("%w: http %d", ErrUnexpectedStatus, resp.StatusCode())
	}

	cause := fmt.Errorf("%w: %s", sentinel, body)

	// the API answers {"status":"error","message":"..."}
	var errResp models.ErrorResponse
	if err := json.Unmarshal(resp.Body(), &errResp); err == nil && errResp.Message != "" {
		return app.NewApplicationError(errResp.Message, cause)
	}

	return cause
}

// mapTransportError classifies a failure to obtain a response at all.
func mapTransportError(op string, err error) error {
	return app.NewConnectivityError(fmt.Errorf("%s request: %w", op, err))
}

// isTokenRejection reports whether err is a 401 telling that the access token
// expired or is invalid, i.e. one that a refresh can cure.
func isTokenRejection(err error) bool {
	if !errors.Is(err, ErrUnauthorized) {
		return false
	}

	var appErr *app.Error
	if !errors.As(err, &appErr) {
		return false
	}

	return appErr.Message == app.MsgTokenExpired || appErr.Message == app.MsgTokenInvalid
}
