package keelzap_test

import (
	"testing"

	"github.com/keelbase/keel-go/keelnum"
	"github.com/keelbase/keel-go/keelzap"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zapcore"
)

func TestToZap(t *testing.T) {
	assert.Equal(t, zapcore.InfoLevel, keelzap.ToZap(keelnum.Info))
	assert.Equal(t, zapcore.WarnLevel, keelzap.ToZap(keelnum.Warning))
	assert.Equal(t, zapcore.ErrorLevel, keelzap.ToZap(keelnum.Error))
	assert.Equal(t, zapcore.FatalLevel, keelzap.ToZap(keelnum.Fatal))

	assert.Equal(t, zapcore.InfoLevel, keelzap.ToZap(keelnum.Severity(-1)), "normalized low")
	assert.Equal(t, zapcore.ErrorLevel, keelzap.ToZap(keelnum.Severity(99)),
		"out-of-range input must never map to FatalLevel")
}

func TestFromZap(t *testing.T) {
	assert.Equal(t, keelnum.Info, keelzap.FromZap(zapcore.DebugLevel), "debug collapses to Info")
	assert.Equal(t, keelnum.Info, keelzap.FromZap(zapcore.InfoLevel))
	assert.Equal(t, keelnum.Warning, keelzap.FromZap(zapcore.WarnLevel))
	assert.Equal(t, keelnum.Error, keelzap.FromZap(zapcore.ErrorLevel))
	assert.Equal(t, keelnum.Fatal, keelzap.FromZap(zapcore.DPanicLevel))
	assert.Equal(t, keelnum.Fatal, keelzap.FromZap(zapcore.PanicLevel))
	assert.Equal(t, keelnum.Fatal, keelzap.FromZap(zapcore.FatalLevel))
}

func TestRoundTrip(t *testing.T) {
	for _, s := range keelnum.Severities() {
		assert.Equal(t, s, keelzap.FromZap(keelzap.ToZap(s)), s.String())
	}
}
