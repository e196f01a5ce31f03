package expense

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFilter(t *testing.T) {
	f, err := NewFilter("2026-08", "Food")
	require.NoError(t, err)
	assert.Equal(t, "2026-08", f.Month)
	assert.Equal(t, "Food", f.Category)

	f, err = NewFilter("", "")
	require.NoError(t, err)
	assert.Equal(t, Filter{}, f)
}

func TestNewFilterRejectsMalformedMonth(t *testing.T) {
	for _, bad := range []string{"2026", "08-2026", "2026-13", "2026-8", "garbage"} {
		_, err := NewFilter(bad, "")
		assert.ErrorIs(t, err, ErrBadMonth, "month %q", bad)
	}
}
