package helper_test

import (
	"testing"

	"nizami_cinema/helper"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyPromoCodeCaseInsensitive(t *testing.T) {
	for _, code := range []string{"NIZAMI10", "nizami10", "NiZaMi10", "  nizami10  "} {
		total, err := helper.ApplyPromoCode(90, code)
		require.NoError(t, err, "code %q", code)
		assert.Equal(t, 81.0, total, "code %q", code)
	}
}

func TestApplyPromoCodeRoundsToNearestInt(t *testing.T) {
	// 45 * 0.9 = 40.5, rounds up
	total, err := helper.ApplyPromoCode(45, "NIZAMI10")
	require.NoError(t, err)
	assert.Equal(t, 41.0, total)

	total, err = helper.ApplyPromoCode(15, "NIZAMI10")
	require.NoError(t, err)
	assert.Equal(t, 14.0, total)
}

func TestApplyPromoCodeInvalid(t *testing.T) {
	total, err := helper.ApplyPromoCode(90, "NIZAMI20")
	assert.ErrorIs(t, err, helper.ErrPromoInvalid)
	assert.Equal(t, 90.0, total)
}

func TestApplyPromoCodeRequired(t *testing.T) {
	for _, code := range []string{"", "   "} {
		total, err := helper.ApplyPromoCode(90, code)
		assert.ErrorIs(t, err, helper.ErrPromoRequired)
		assert.Equal(t, 90.0, total)
	}
}
