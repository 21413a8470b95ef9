package ports

import (
	"context"

	"routetrail/internal/core/domain/model/kernel"
)

// Address is a reference address as the core sees it.
type Address struct {
	ID  kernel.UUID
	Raw string
	Geo *kernel.GeoPoint
}

// ReferenceDirectory reads reference data maintained outside the core.
// Lookups of unknown identifiers fail with errs.ErrObjectNotFound.
type ReferenceDirectory interface {
	// VehicleExists fails with errs.ErrObjectNotFound for an unknown vehicle.
	VehicleExists(ctx context.Context, id kernel.UUID) error
	Address(ctx context.Context, id kernel.UUID) (Address, error)
	// StoreAddress returns the address of the store.
	StoreAddress(ctx context.Context, storeID kernel.UUID) (Address, error)
	LoadingPlaceExists(ctx context.Context, id kernel.UUID) error
}
