package templates

import (
	"context"

	"github.com/SonnyAu/palate-website/config"
	"go.uber.org/fx"
)

func ProvideTemplatesService(cfg *config.Config) *Service {
	return New(&cfg.Templates)
}

var Module = fx.Options(
	fx.Provide(ProvideTemplatesService),
	fx.Invoke(func(lc fx.Lifecycle, svc *Service) {
		lc.Append(fx.Hook{
			OnStart: func(ctx context.Context) error {
				return svc.LoadTemplates()
			},
		})
	}),
)
