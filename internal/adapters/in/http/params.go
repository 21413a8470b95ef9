package http

import (
	"routetrail/internal/core/application/usecases/commands"
	"routetrail/internal/core/domain/model/kernel"
	"routetrail/internal/generated/servers"
	"routetrail/internal/pkg/errs"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

// ownerCheck restricts a command to the vehicle named in the X-Vehicle-Id
// header. Without the header the caller is trusted with every vehicle.
func ownerCheck(header *servers.VehicleHeader) (commands.OwnerCheck, error) {
	if header == nil {
		return nil, nil
	}
	vehicleID, err := toKernelUUID("X-Vehicle-Id", *header)
	if err != nil {
		return nil, err
	}

	return func(owner kernel.UUID) bool {
		return owner.IsEqual(vehicleID)
	}, nil
}

func toKernelUUID(name string, id openapi_types.UUID) (kernel.UUID, error) {
	out, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return out, nil
}

func toOptionalKernelUUID(name string, id *openapi_types.UUID) (*kernel.UUID, error) {
	if id == nil {
		return nil, nil
	}
	out, err := toKernelUUID(name, *id)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func toGeo(lat, lng *float64) (*kernel.GeoPoint, error) {
	return kernel.NewOptionalGeoPoint(lat, lng)
}

func valueOf(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
