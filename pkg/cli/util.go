package cli

import (
	"io"

	"github.com/gookit/color"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"pyramid/pkg/engine/logging"
	"pyramid/pkg/engine/terminal"
	"pyramid/pkg/game/locale"
	"pyramid/pkg/game/renderer"
)

// MustBindPFlag attempts to bind a specific key to a pflag (as used by cobra) and panics
// if the binding fails with a non-nil error.
func MustBindPFlag(v *viper.Viper, key string, flag *pflag.Flag) {
	if err := v.BindPFlag(key, flag); err != nil {
		panic("failed to bind pflag: " + err.Error())
	}
}

// setup applies the shared flags: it builds the logger, selects the
// message catalog and prepares a renderer for out. The returned func
// flushes the logger and restores the color setting.
func setup(v *viper.Viper, out io.Writer) (*zap.Logger, *renderer.Renderer, func(), error) {
	logger, err := logging.NewLogger(v.GetString(logFormatFlag), v.GetString(logLevelFlag))
	if err != nil {
		return nil, nil, nil, err
	}

	lang := locale.Init(v.GetString(langFlag))
	logger.Debug("locale selected", zap.String("lang", lang))

	colorEnabled := color.Enable
	if v.GetBool(noColorFlag) || !terminal.IsTerminal(out) {
		color.Enable = false
	}
	done := func() {
		_ = logger.Sync()
		color.Enable = colorEnabled
	}

	r := renderer.New()
	r.Init()
	r.SetWidth(terminal.GetWidth(out))
	return logger, r, done, nil
}
