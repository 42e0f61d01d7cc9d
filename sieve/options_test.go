package sieve

import (
	"testing"

	"github.com/forestrie/go-primesieve/sievetesting"
	"github.com/stretchr/testify/assert"
)

func TestNewOptions(t *testing.T) {
	o := NewOptions()
	assert.Nil(t, o.Logger())
	assert.Equal(t, uint64(0), o.InitialLimit())

	tc := sievetesting.NewTestContext(t, sievetesting.TestConfig{TestLabelPrefix: "TestNewOptions"})
	o = NewOptions(WithLogger(tc.GetLog()), WithInitialLimit(64), WithInitialLimit(128))
	assert.NotNil(t, o.Logger())
	assert.Equal(t, uint64(128), o.InitialLimit())
}
