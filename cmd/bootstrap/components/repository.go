package components

import (
	"storefront-cart/internal/infra/repository"
	"storefront-cart/internal/usecase"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		fx.Annotate(
			repository.NewCartSnapshotRepository,
			fx.As(new(usecase.SnapshotRepository)),
		),
	),
)
