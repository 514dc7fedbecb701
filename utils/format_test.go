package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormat_DecorateText(t *testing.T) {
	assert.Equal(t, DefaultColor+"msg", DecorateText("msg", DefaultMessage))
	assert.Equal(t, StatusColor+"msg"+DefaultColor, DecorateText("msg", StatusMessage))
	assert.Equal(t, SuccessColor+"msg"+DefaultColor, DecorateText("msg", SuccessMessage))
	assert.Equal(t, ErrorColor+"msg"+DefaultColor, DecorateText("msg", ErrorMessage))
	assert.Equal(t, "msg", DecorateText("msg", MessageType(42)))
}

func TestFormat_FormatTime(t *testing.T) {
	testCases := []struct {
		d    time.Duration
		want string
	}{
		{0, "0.00s"},
		{1500 * time.Millisecond, "1.50s"},
		{time.Minute + 2500*time.Millisecond, "1m 2.50s"},
		{2*time.Hour + 3*time.Minute + 4*time.Second, "2h 3m 4.00s"},
		{26*time.Hour + 5*time.Minute, "1d 2h 5m 0.00s"},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.want, FormatTime(tc.d), tc.d.String())
	}
}
