// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/go-gym-client/internal/adapter"
	"github.com/MKhiriev/go-gym-client/internal/app"
	"github.com/MKhiriev/go-gym-client/internal/validators"
	"github.com/MKhiriev/go-gym-client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func writeImage(t *testing.T, name string, size int) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, make([]byte, size), 0o600))
	return path
}

// ── Update ───────────────────────────────────────────────────────────────────

func TestClientProfileService_Update_NameOnly(t *testing.T) {
	d := newDeps(t)
	ctx := context.Background()

	want := testUser
	want.Name = "Bia"

	gomock.InOrder(
		d.session.EXPECT().User().Return(testUser, true),
		d.adapter.EXPECT().UpdateProfile(ctx, models.ProfileUpdateRequest{Name: "Bia"}).Return(nil),
		d.session.EXPECT().UpdateUserProfile(ctx, want).Return(nil),
	)

	got, err := d.profile().Update(ctx, models.ProfileForm{Name: " Bia "})

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestClientProfileService_Update_WithPassword(t *testing.T) {
	d := newDeps(t)

	d.session.EXPECT().User().Return(testUser, true)
	d.adapter.EXPECT().UpdateProfile(gomock.Any(), models.ProfileUpdateRequest{
		Name:        "Ana Maria",
		Password:    "secret2",
		OldPassword: "secret1",
	}).Return(nil)
	d.session.EXPECT().UpdateUserProfile(gomock.Any(), testUser).Return(nil)

	_, err := d.profile().Update(context.Background(), models.ProfileForm{
		Name:            "Ana Maria",
		OldPassword:     "secret1",
		Password:        "secret2",
		PasswordConfirm: "secret2",
	})
	assert.NoError(t, err)
}

func TestClientProfileService_Update_Errors(t *testing.T) {
	t.Run("not signed in", func(t *testing.T) {
		d := newDeps(t)
		d.session.EXPECT().User().Return(models.User{}, false)

		_, err := d.profile().Update(context.Background(), models.ProfileForm{Name: "B"})
		assert.ErrorIs(t, err, ErrNotSignedIn)
	})

	t.Run("invalid form", func(t *testing.T) {
		d := newDeps(t)
		d.session.EXPECT().User().Return(testUser, true)

		_, err := d.profile().Update(context.Background(), models.ProfileForm{Name: ""})
		assert.ErrorIs(t, err, validators.ErrNameRequired)
	})

	t.Run("server rejects old password", func(t *testing.T) {
		d := newDeps(t)
		d.session.EXPECT().User().Return(testUser, true)
		d.adapter.EXPECT().UpdateProfile(gomock.Any(), gomock.Any()).
			Return(app.NewApplicationError("A senha antiga não confere.", adapter.ErrBadRequest))

		_, err := d.profile().Update(context.Background(), models.ProfileForm{
			Name: "B", OldPassword: "wrong1", Password: "secret2", PasswordConfirm: "secret2",
		})
		assert.Equal(t, "A senha antiga não confere.", app.Message(err, app.MsgProfileFailed))
	})

	t.Run("storage failure keeps the update", func(t *testing.T) {
		d := newDeps(t)
		d.session.EXPECT().User().Return(testUser, true)
		d.adapter.EXPECT().UpdateProfile(gomock.Any(), gomock.Any()).Return(nil)
		d.session.EXPECT().UpdateUserProfile(gomock.Any(), gomock.Any()).Return(app.NewStorageError(errors.New("disk")))

		got, err := d.profile().Update(context.Background(), models.ProfileForm{Name: "B"})
		assert.Equal(t, app.KindStorage, app.KindOf(err))
		assert.Equal(t, "B", got.Name)
	})
}

// ── UploadAvatar ─────────────────────────────────────────────────────────────

func TestClientProfileService_UploadAvatar(t *testing.T) {
	d := newDeps(t)
	ctx := context.Background()
	path := writeImage(t, "IMG_001.PNG", 1024)

	withAvatar := testUser
	withAvatar.Avatar = "abc-ana maria.png"

	gomock.InOrder(
		d.session.EXPECT().User().Return(testUser, true),
		d.adapter.EXPECT().UploadAvatar(ctx, models.AvatarFile{
			Path:        path,
			Name:        "ana maria.png",
			ContentType: "image/png",
			Size:        1024,
		}).Return(models.User{ID: "1", Avatar: "abc-ana maria.png"}, nil),
		d.session.EXPECT().UpdateUserProfile(ctx, withAvatar).Return(nil),
	)

	got, err := d.profile().UploadAvatar(ctx, path)

	require.NoError(t, err)
	assert.Equal(t, withAvatar, got)
}

func TestClientProfileService_UploadAvatar_Rejected(t *testing.T) {
	tests := []struct {
		name string
		path func(t *testing.T) string
		want error
	}{
		{"missing file", func(t *testing.T) string { return filepath.Join(t.TempDir(), "nope.png") }, ErrAvatarUnreadable},
		{"directory", func(t *testing.T) string { return t.TempDir() }, ErrAvatarUnreadable},
		{"empty path", func(t *testing.T) string { return "" }, validators.ErrAvatarPathRequired},
		{"not an image", func(t *testing.T) string { return writeImage(t, "notes.txt", 10) }, validators.ErrAvatarNotImage},
		{"too large", func(t *testing.T) string { return writeImage(t, "big.jpg", validators.MaxAvatarSize+1) }, validators.ErrAvatarTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newDeps(t)
			d.session.EXPECT().User().Return(testUser, true)

			_, err := d.profile().UploadAvatar(context.Background(), tt.path(t))
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestClientProfileService_UploadAvatar_ServerTooLarge(t *testing.T) {
	d := newDeps(t)
	d.session.EXPECT().User().Return(testUser, true)
	d.adapter.EXPECT().UploadAvatar(gomock.Any(), gomock.Any()).Return(models.User{}, adapter.ErrPayloadTooLarge)

	_, err := d.profile().UploadAvatar(context.Background(), writeImage(t, "me.jpg", 10))

	assert.ErrorIs(t, err, ErrAvatarRejected)
}

func TestClientProfileService_UploadAvatar_FileVanished(t *testing.T) {
	d := newDeps(t)
	d.session.EXPECT().User().Return(testUser, true)
	d.adapter.EXPECT().UploadAvatar(gomock.Any(), gomock.Any()).
		Return(models.User{}, fmt.Errorf("%w: %w", adapter.ErrFileUnreadable, os.ErrNotExist))

	_, err := d.profile().UploadAvatar(context.Background(), writeImage(t, "me.jpg", 10))

	assert.ErrorIs(t, err, ErrAvatarUnreadable)
	assert.NotEqual(t, app.KindConnectivity, app.KindOf(err))
}

func TestClientProfileService_UploadAvatar_NotSignedIn(t *testing.T) {
	d := newDeps(t)
	d.session.EXPECT().User().Return(models.User{}, false)

	_, err := d.profile().UploadAvatar(context.Background(), "me.png")
	assert.ErrorIs(t, err, ErrNotSignedIn)
}

func TestClientProfileService_AvatarURL(t *testing.T) {
	d := newDeps(t)
	user := models.User{Avatar: "a.png"}
	d.adapter.EXPECT().MediaURL(models.MediaAvatar, "a.png").Return("http://api/avatar/a.png")

	assert.Equal(t, "http://api/avatar/a.png", d.profile().AvatarURL(user))
}

func TestAvatarFileName(t *testing.T) {
	assert.Equal(t, "ana maria.jpeg", avatarFileName(models.User{Name: "Ana Maria"}, "/x/photo.JPEG"))
	assert.Equal(t, "avatar.png", avatarFileName(models.User{}, "p.png"))
}
