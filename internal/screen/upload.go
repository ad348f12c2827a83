package screen

import (
	"context"
	"io"

	"go.uber.org/zap"
)

type ProfileActions interface {
	SendProfileResume(ctx context.Context, pdf []byte)
	SendProfilePicture(ctx context.Context, picture []byte)
}

// Uploader turns picked files into profile uploads.
type Uploader struct {
	resolver ContentResolver
	profile  ProfileActions
	logger   *zap.Logger
}

func NewUploader(resolver ContentResolver, profile ProfileActions, logger *zap.Logger) *Uploader {
	return &Uploader{resolver: resolver, profile: profile, logger: logger.Named("profile_screen")}
}

// SendProfileResume uploads the document at locator. An empty locator means the
// picker was dismissed and nothing happens.
func (u *Uploader) SendProfileResume(ctx context.Context, locator string) bool {
	return u.send(ctx, "resume", locator, u.profile.SendProfileResume)
}

// SendProfilePicture uploads the image at locator. An empty locator means the
// picker was dismissed and nothing happens.
func (u *Uploader) SendProfilePicture(ctx context.Context, locator string) bool {
	return u.send(ctx, "picture", locator, u.profile.SendProfilePicture)
}

// send reports whether the bytes were forwarded.
func (u *Uploader) send(ctx context.Context, what, locator string, forward func(context.Context, []byte)) bool {
	if locator == "" {
		return false
	}

	content, err := u.read(ctx, locator)
	if err != nil {
		u.logger.Error("failed to read picked file",
			zap.String("upload", what),
			zap.String("locator", locator),
			zap.Error(err))
		return false
	}

	forward(ctx, content)
	return true
}

func (u *Uploader) read(ctx context.Context, locator string) ([]byte, error) {
	stream, err := u.resolver.OpenInputStream(ctx, locator)
	if err != nil {
		return nil, err
	}
	if stream == nil {
		return nil, nil
	}
	defer stream.Close()

	return io.ReadAll(stream)
}
