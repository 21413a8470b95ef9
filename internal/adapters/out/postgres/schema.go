package postgres

import (
	"routetrail/internal/adapters/out/postgres/loadingrepo"
	"routetrail/internal/adapters/out/postgres/refdata"
	"routetrail/internal/adapters/out/postgres/routeplanrepo"
	"routetrail/internal/adapters/out/postgres/routepointrepo"
	"routetrail/internal/adapters/out/postgres/statuslogrepo"

	"gorm.io/gorm"
)

// Models lists every table the service reads or writes, reference data first.
func Models() []any {
	return []any{
		&refdata.DriverDTO{},
		&refdata.VehicleDTO{},
		&refdata.AddressDTO{},
		&refdata.StoreDTO{},
		&refdata.LoadingPlaceDTO{},
		&routeplanrepo.RoutePlanDTO{},
		&routepointrepo.RoutePointDTO{},
		&loadingrepo.LoadingDTO{},
		&statuslogrepo.StatusLogDTO{},
	}
}

// Migrate creates or updates the schema.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(Models()...)
}
