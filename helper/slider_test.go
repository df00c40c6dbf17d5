package helper_test

import (
	"testing"

	"nizami_cinema/helper"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdvanceSliderWraps(t *testing.T) {
	helper.SetSliderLength(4)
	require.NoError(t, helper.SetSliderIndex(0))

	helper.AdvanceSlider()
	assert.Equal(t, 1, helper.SliderIndex())

	require.NoError(t, helper.SetSliderIndex(3))
	helper.AdvanceSlider()
	assert.Equal(t, 0, helper.SliderIndex())
}

func TestSetSliderIndexBounds(t *testing.T) {
	helper.SetSliderLength(4)

	assert.NoError(t, helper.SetSliderIndex(3))
	assert.ErrorIs(t, helper.SetSliderIndex(4), helper.ErrSlideOutOfRange)
	assert.ErrorIs(t, helper.SetSliderIndex(-1), helper.ErrSlideOutOfRange)
	assert.Equal(t, 3, helper.SliderIndex())
}

func TestSetSliderLengthClampsIndex(t *testing.T) {
	helper.SetSliderLength(6)
	require.NoError(t, helper.SetSliderIndex(5))

	helper.SetSliderLength(3)
	assert.Equal(t, 2, helper.SliderIndex())

	helper.SetSliderLength(0)
	assert.Equal(t, 0, helper.SliderIndex())

	// zero-length slider never advances
	helper.AdvanceSlider()
	assert.Equal(t, 0, helper.SliderIndex())
}
