// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/go-gym-client/internal/adapter"
	"github.com/MKhiriev/go-gym-client/internal/logger"
	"github.com/MKhiriev/go-gym-client/internal/validators"
	"github.com/MKhiriev/go-gym-client/models"
)

type clientProfileService struct {
	session   SessionManager
	adapter   adapter.ServerAdapter
	validator validators.Validator
	logger    *logger.Logger
}

// NewClientProfileService returns a [ClientProfileService].
func NewClientProfileService(session SessionManager, serverAdapter adapter.ServerAdapter, validator validators.Validator, logger *logger.Logger) ClientProfileService {
	return &clientProfileService{session: session, adapter: serverAdapter, validator: validator, logger: logger}
}

// Update sends the new name, and the new password if the form changes it.
// When the API accepted the change but the session cannot persist the new
// name, the updated user is returned together with the storage error.
func (p *clientProfileService) Update(ctx context.Context, form models.ProfileForm) (models.User, error) {
	user, ok := p.session.User()
	if !ok {
		return models.User{}, ErrNotSignedIn
	}
	if err := p.validator.Validate(ctx, form); err != nil {
		return models.User{}, err
	}

	req := models.ProfileUpdateRequest{Name: strings.TrimSpace(form.Name)}
	if form.ChangesPassword() {
		req.Password = form.Password
		req.OldPassword = form.OldPassword
	}

	if err := p.adapter.UpdateProfile(ctx, req); err != nil {
		return models.User{}, mapAdapterError(err)
	}

	user.Name = req.Name
	return user, p.session.UpdateUserProfile(ctx, user)
}

// UploadAvatar uploads the image as "<user name>.<ext>" in lower case.
func (p *clientProfileService) UploadAvatar(ctx context.Context, path string) (models.User, error) {
	user, ok := p.session.User()
	if !ok {
		return models.User{}, ErrNotSignedIn
	}

	file := models.AvatarFile{Path: path}
	if strings.TrimSpace(path) != "" {
		info, err := os.Stat(path)
		if err != nil {
			return models.User{}, fmt.Errorf("%w: %w", ErrAvatarUnreadable, err)
		}
		if info.IsDir() {
			return models.User{}, fmt.Errorf("%w: %s is a directory", ErrAvatarUnreadable, path)
		}
		file.Size = info.Size()
	}
	if err := p.validator.Validate(ctx, file); err != nil {
		return models.User{}, err
	}

	file.ContentType, _ = validators.AvatarContentType(path)
	file.Name = avatarFileName(user, path)

	updated, err := p.adapter.UploadAvatar(ctx, file)
	if err != nil {
		return models.User{}, mapAdapterError(err)
	}

	p.logger.Info().
		Str("func", "clientProfileService.UploadAvatar").
		Str("user_id", user.ID.String()).
		Str("avatar", updated.Avatar).
		Msg("avatar uploaded")

	user.Avatar = updated.Avatar
	return user, p.session.UpdateUserProfile(ctx, user)
}

func (p *clientProfileService) AvatarURL(user models.User) string {
	return p.adapter.MediaURL(models.MediaAvatar, user.Avatar)
}

func avatarFileName(user models.User, path string) string {
	name := strings.TrimSpace(user.Name)
	if name == "" {
		name = "avatar"
	}
	return strings.ToLower(name + filepath.Ext(path))
}
