package commands

import (
	"errors"
	"strings"
	"time"

	"routetrail/internal/core/domain/model/kernel"
	"routetrail/internal/core/domain/model/status"
	"routetrail/internal/pkg/errs"
	"routetrail/internal/pkg/guard"
)

var ErrRecordStatusCommandIsNotConstructed = errors.New(
	"RecordStatusCommand must be created via NewRecordPointStatusCommand, " +
		"NewRecordLoadingStatusCommand or NewRecordStatusCommand",
)

// StatusReport is a status change as reported by the driver app.
type StatusReport struct {
	Status string
	// Timestamp defaults to the time the command is handled.
	Timestamp *time.Time
	Geo       *kernel.GeoPoint
	Note      string
}

// RecordStatusCommand appends one entry to the ledger of a route point or a
// loading. Without an explicit kind the entity is looked up as a route point
// first, then as a loading.
type RecordStatusCommand struct { //nolint:recvcheck //using for validation
	entityID   kernel.UUID
	kind       *status.Kind
	report     StatusReport
	ownerCheck OwnerCheck

	guard guard.ConstructorGuard
}

func NewRecordPointStatusCommand(pointID kernel.UUID, report StatusReport) (RecordStatusCommand, error) {
	kind := status.KindRoutePoint
	return newRecordStatusCommand(pointID, &kind, report)
}

func NewRecordLoadingStatusCommand(loadingID kernel.UUID, report StatusReport) (RecordStatusCommand, error) {
	kind := status.KindLoading
	return newRecordStatusCommand(loadingID, &kind, report)
}

// NewRecordStatusCommand leaves the kind to be resolved from the identifier.
func NewRecordStatusCommand(entityID kernel.UUID, report StatusReport) (RecordStatusCommand, error) {
	return newRecordStatusCommand(entityID, nil, report)
}

func newRecordStatusCommand(
	entityID kernel.UUID,
	kind *status.Kind,
	report StatusReport,
) (RecordStatusCommand, error) {
	cmd := RecordStatusCommand{
		kind:  kind,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setEntityID(entityID),
		cmd.setReport(report),
	); err != nil {
		return RecordStatusCommand{}, err
	}

	return cmd, nil
}

func (c RecordStatusCommand) WithOwnerCheck(check OwnerCheck) RecordStatusCommand {
	c.ownerCheck = check
	return c
}

func (c RecordStatusCommand) Validate() error {
	return c.guard.Validate(ErrRecordStatusCommandIsNotConstructed)
}

func (c RecordStatusCommand) EntityID() kernel.UUID {
	return c.entityID
}

// Kind is nil when the entity kind is resolved from the identifier.
func (c RecordStatusCommand) Kind() *status.Kind {
	return c.kind
}

func (c RecordStatusCommand) Report() StatusReport {
	return c.report
}

func (c RecordStatusCommand) OwnerCheck() OwnerCheck {
	return c.ownerCheck
}

func (c *RecordStatusCommand) setEntityID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.entityID = id
	return nil
}

func (c *RecordStatusCommand) setReport(report StatusReport) error {
	if strings.TrimSpace(report.Status) == "" {
		return errs.NewValueIsRequiredError("status")
	}
	if report.Geo != nil {
		if err := report.Geo.Validate(); err != nil {
			return err
		}
	}
	c.report = report
	return nil
}
