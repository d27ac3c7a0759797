package components

import (
	"staybook/internal/handler"
	"staybook/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewCatalogHandler,
		api.NewBookingHandler,
		api.NewReviewHandler,
		api.NewUserHandler,
	),
	fx.Invoke(handler.NewRouter),
)
