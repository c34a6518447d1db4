package common_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Veraticus/mentat/internal/common"
)

func TestStoreError(t *testing.T) {
	cause := errors.New("disk I/O error")
	err := common.StoreError("save memory", cause)

	assert.ErrorIs(t, err, common.ErrStoreUnavailable)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "save memory")
}

func TestUserError(t *testing.T) {
	cause := errors.New("no such file")
	err := common.NewUserError("could not read invoice file", cause)

	var userErr *common.UserError
	require.ErrorAs(t, err, &userErr)
	assert.Equal(t, "could not read invoice file", userErr.UserMessage)
	assert.ErrorIs(t, err, cause)
}
