package catalog

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEscapeLike(t *testing.T) {
	require.Equal(t, `50\%\_off`, escapeLike(`50%_off`))
	require.Equal(t, `c:\\temp`, escapeLike(`c:\temp`))
	require.Equal(t, "desk lamp", escapeLike("desk lamp"))
	require.Equal(t, "", escapeLike(""))
}
