package browser

import (
	"context"

	"github.com/wrenlabs/shortcuts/internal/logger"
)

// SettingsLog is a SettingsPresenter that records the presentation
// request in the log. The daemon has no UI surface to push, so showing
// the VPN purchase/renewal settings reduces to announcing it.
type SettingsLog struct {
	logger logger.Logger
}

func NewSettingsLog(log logger.Logger) *SettingsLog {
	return &SettingsLog{logger: log}
}

func (p *SettingsLog) ShowVPNSettings(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	p.logger.Info("presenting vpn settings surface")
	return nil
}
