package auth

import (
	"context"
	"testing"

	domainerrors "opinator/internal/domain/errors"

	"github.com/stretchr/testify/assert"
)

func TestContextIdentitySource_CurrentSubject(t *testing.T) {
	source := NewContextIdentitySource()

	ctx := WithSubject(context.Background(), "a@x.io")
	subject, err := source.CurrentSubject(ctx)
	assert.NoError(t, err)
	assert.Equal(t, "a@x.io", subject)
}

func TestContextIdentitySource_MissingIdentity(t *testing.T) {
	source := NewContextIdentitySource()

	subject, err := source.CurrentSubject(context.Background())
	assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
	assert.Empty(t, subject)
}

func TestContextIdentitySource_EmptySubjectTreatedAsMissing(t *testing.T) {
	source := NewContextIdentitySource()

	ctx := WithSubject(context.Background(), "")
	_, err := source.CurrentSubject(ctx)
	assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
}
