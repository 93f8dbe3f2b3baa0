package mocat_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cassite-go/mocat/pkg/mocat"
)

func TestErrorString(t *testing.T) {
	require.Equal(t, "file not found", mocat.ErrorString(mocat.ErrFileNotFound))
	require.Equal(t, "invalid format", mocat.ErrorString(mocat.ErrInvalidFormat))
	require.Equal(t, "", mocat.ErrorString(nil))
}
