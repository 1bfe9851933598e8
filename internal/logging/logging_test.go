package logging

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestSetup(t *testing.T) {
	prev := logrus.GetLevel()
	t.Cleanup(func() { logrus.SetLevel(prev) })

	assert.NoError(t, Setup("debug"))
	assert.Equal(t, logrus.DebugLevel, logrus.GetLevel())

	assert.Error(t, Setup("loud"))
	assert.Equal(t, logrus.DebugLevel, logrus.GetLevel())
}
