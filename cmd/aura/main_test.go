package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goaura/aura"
	"github.com/goaura/aura/interop/interoptest"
)

func TestParseHSL(t *testing.T) {
	c, err := parseHSL("0", "1", "0.441921")
	require.NoError(t, err)
	assert.Equal(t, aura.HSL{H: 0, S: 1, L: 0.441921}, c)

	_, err = parseHSL("red", "1", "1")
	assert.ErrorContains(t, err, `"red"`)
}

func TestSetEffect(t *testing.T) {
	fake := interoptest.New()
	fake.EffectIDs = []string{"7"}
	fake.EffectNames = []string{"Rainbow"}
	dev := aura.Open(fake)

	require.NoError(t, setEffect(dev, "Rainbow"))
	assert.Equal(t, []string{"SetEffect(7)", "Apply"}, fake.Calls)

	var notFound *aura.EffectNotFoundError
	assert.ErrorAs(t, setEffect(dev, "Strobe"), &notFound)
	assert.Error(t, setEffect(dev, ""))
}
