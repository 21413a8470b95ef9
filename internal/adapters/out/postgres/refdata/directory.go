package refdata

import (
	"context"

	"routetrail/internal/adapters/out/postgres/pgshared"
	"routetrail/internal/core/domain/model/kernel"
	"routetrail/internal/core/ports"
	"routetrail/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormReferenceDirectory implements ports.ReferenceDirectory using GORM.
type GormReferenceDirectory struct {
	db *gorm.DB
}

func NewGormReferenceDirectory(db *gorm.DB) *GormReferenceDirectory {
	return &GormReferenceDirectory{db: db}
}

func (d *GormReferenceDirectory) VehicleExists(ctx context.Context, id kernel.UUID) error {
	return d.exists(ctx, &VehicleDTO{}, "vehicle", id)
}

func (d *GormReferenceDirectory) LoadingPlaceExists(ctx context.Context, id kernel.UUID) error {
	return d.exists(ctx, &LoadingPlaceDTO{}, "loading place", id)
}

func (d *GormReferenceDirectory) Address(ctx context.Context, id kernel.UUID) (ports.Address, error) {
	if err := id.Validate(); err != nil {
		return ports.Address{}, err
	}

	var dto AddressDTO
	if err := d.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		return ports.Address{}, pgshared.NotFound(err, "address", id)
	}

	return toAddress(dto)
}

func (d *GormReferenceDirectory) StoreAddress(ctx context.Context, storeID kernel.UUID) (ports.Address, error) {
	if err := storeID.Validate(); err != nil {
		return ports.Address{}, err
	}

	var store StoreDTO
	if err := d.db.WithContext(ctx).First(&store, "id = ?", storeID.Bytes()).Error; err != nil {
		return ports.Address{}, pgshared.NotFound(err, "store", storeID)
	}
	if store.AddressID == nil {
		return ports.Address{}, errs.NewObjectNotFoundError("store address", storeID.String())
	}

	addressID, err := kernel.UUIDFromBytes(store.AddressID[:])
	if err != nil {
		return ports.Address{}, err
	}
	return d.Address(ctx, addressID)
}

func (d *GormReferenceDirectory) exists(ctx context.Context, model any, resource string, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	var count int64
	if err := d.db.WithContext(ctx).Model(model).Where("id = ?", id.Bytes()).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return errs.NewObjectNotFoundError(resource, id.String())
	}
	return nil
}

func toAddress(dto AddressDTO) (ports.Address, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return ports.Address{}, err
	}

	geo, err := dto.Geo.ToGeo()
	if err != nil {
		return ports.Address{}, err
	}

	return ports.Address{ID: id, Raw: dto.Raw, Geo: geo}, nil
}
