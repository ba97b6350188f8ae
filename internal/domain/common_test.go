package domain

import (
	"testing"

	"github.com/adventboard/backend/pkg/crypto"
	"github.com/adventboard/backend/pkg/errorx"
	"github.com/stretchr/testify/require"
)

var testPasswordParams = crypto.PasswordParams{
	Memory:      1024,
	Iterations:  1,
	Parallelism: 1,
	SaltLength:  16,
	KeyLength:   32,
}

func requireErrorCode(t *testing.T, err error, code errorx.Code) {
	t.Helper()

	var errx errorx.Error
	require.ErrorAs(t, err, &errx)
	require.Equal(t, code, errx.Code, errx.Message)
}
