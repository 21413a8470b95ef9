// Package refdata reads the reference tables the core depends on but never
// writes: vehicles, drivers, addresses, stores and loading places.
package refdata

import (
	"routetrail/internal/adapters/out/postgres/pgshared"

	"github.com/google/uuid"
)

type DriverDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	FirstName string
	LastName  string
}

func (DriverDTO) TableName() string {
	return "drivers"
}

type VehicleDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	PlateNumber string    `gorm:"uniqueIndex"`
	Model       string
	OwnerID     *uuid.UUID `gorm:"type:uuid;index"`
}

func (VehicleDTO) TableName() string {
	return "vehicles"
}

type AddressDTO struct {
	ID  uuid.UUID `gorm:"type:uuid;primaryKey"`
	Raw string
	Geo pgshared.GeoDTO `gorm:"embedded"`
}

func (AddressDTO) TableName() string {
	return "addresses"
}

type StoreDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string
	AddressID *uuid.UUID `gorm:"type:uuid"`
}

func (StoreDTO) TableName() string {
	return "stores"
}

type LoadingPlaceDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string
	AddressID *uuid.UUID `gorm:"type:uuid"`
}

func (LoadingPlaceDTO) TableName() string {
	return "loading_places"
}
