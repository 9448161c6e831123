package dashboard_fx

import (
	"go.uber.org/fx"
	"travelcms/internal/repositories"
	"travelcms/internal/services"
)

// Both constructors already return the interfaces their consumers ask for.
var Module = fx.Provide(repositories.NewDashboardRepository, services.NewDashboardService)
