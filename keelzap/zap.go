// keelzap maps keel severities onto zap's level domain so that emitters
// built on go.uber.org/zap agree with the rest of the keel ecosystem.
// Note that the domains don't match exactly: zap's Debug becomes Info and
// DPanic/Panic collapse into Fatal.
package keelzap

import (
	"go.uber.org/zap/zapcore"

	"github.com/keelbase/keel-go/keelnum"
)

// ToZap converts a keel severity to the corresponding zap level. The
// input is normalized first, so an out-of-range severity can never come
// back as zapcore.FatalLevel.
func ToZap(s keelnum.Severity) zapcore.Level {
	switch keelnum.Normalize(s) {
	case keelnum.Info:
		return zapcore.InfoLevel
	case keelnum.Warning:
		return zapcore.WarnLevel
	case keelnum.Fatal:
		return zapcore.FatalLevel
	default:
		return zapcore.ErrorLevel
	}
}

// FromZap converts a zap level to the nearest keel severity.
func FromZap(l zapcore.Level) keelnum.Severity {
	switch {
	case l <= zapcore.InfoLevel:
		return keelnum.Info
	case l == zapcore.WarnLevel:
		return keelnum.Warning
	case l == zapcore.ErrorLevel:
		return keelnum.Error
	default:
		return keelnum.Fatal
	}
}
