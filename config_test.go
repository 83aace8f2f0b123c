package push3

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigValidateDefaultIsValid(t *testing.T) {
	assert.NoError(t, DefaultConfig().Validate())
}

func TestConfigValidateRejectsInvertedIntBounds(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MinRandomInteger, cfg.MaxRandomInteger = 10, -10
	err := cfg.Validate()
	assert.Error(t, err)
	var ce ConfigError
	assert.ErrorAs(t, err, &ce)
	assert.Equal(t, "RandomInteger", ce.Field)
}

func TestConfigValidateRejectsInvertedFloatBounds(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MinRandomFloat, cfg.MaxRandomFloat = 1.0, -1.0
	assert.Error(t, cfg.Validate())
}

func TestConfigValidateRejectsOutOfRangeERCProbability(t *testing.T) {
	cfg := DefaultConfig()
	cfg.NewERCNameProbability = 1.5
	assert.Error(t, cfg.Validate())

	cfg.NewERCNameProbability = -0.1
	assert.Error(t, cfg.Validate())
}

func TestConfigValidateRejectsNegativeLimits(t *testing.T) {
	cfg := DefaultConfig()
	cfg.EvalPushLimit = -1
	assert.Error(t, cfg.Validate())

	cfg = DefaultConfig()
	cfg.MaxPointsInProgram = -1
	assert.Error(t, cfg.Validate())

	cfg = DefaultConfig()
	cfg.MaxStackDepth = -1
	assert.Error(t, cfg.Validate())
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	s, err := New(WithRandomIntBounds(10, -10))
	assert.Nil(t, s)
	assert.Error(t, err)
	var ce ConfigError
	assert.ErrorAs(t, err, &ce)
	assert.Equal(t, "RandomInteger", ce.Field)
}

func TestNewAcceptsValidConfig(t *testing.T) {
	s, err := New()
	assert.NoError(t, err)
	assert.NotNil(t, s)
}
