package queries

import (
	"errors"

	"routetrail/internal/core/domain/model/kernel"
	"routetrail/internal/core/domain/model/ledger"
	"routetrail/internal/core/domain/model/status"
	"routetrail/internal/pkg/guard"
)

var ErrGetStatusLogQueryIsNotConstructed = errors.New(
	"GetStatusLogQuery must be created via NewGetStatusLogQuery constructor",
)

// GetStatusLogQuery reads the ledger of one route point or loading.
type GetStatusLogQuery struct {
	ref ledger.EntityRef

	guard guard.ConstructorGuard
}

func NewGetStatusLogQuery(kind status.Kind, entityID kernel.UUID) (GetStatusLogQuery, error) {
	ref, err := ledger.NewEntityRef(kind, entityID)
	if err != nil {
		return GetStatusLogQuery{}, err
	}
	return GetStatusLogQuery{ref: ref, guard: guard.NewConstructorGuard()}, nil
}

func (q GetStatusLogQuery) Validate() error {
	return q.guard.Validate(ErrGetStatusLogQueryIsNotConstructed)
}

func (q GetStatusLogQuery) Ref() ledger.EntityRef {
	return q.ref
}

type GetStatusLogQueryResponse struct {
	Ref     ledger.EntityRef
	Entries []*ledger.Entry
}
