package http

import (
	"routetrail/internal/core/application/usecases/commands"
	"routetrail/internal/core/application/usecases/queries"
	"routetrail/internal/core/domain/model/kernel"
	"routetrail/internal/core/domain/model/ledger"
	"routetrail/internal/core/domain/model/loading"
	"routetrail/internal/core/domain/model/point"
	"routetrail/internal/core/domain/services"
	"routetrail/internal/generated/servers"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

func geoFields(geo *kernel.GeoPoint) (*float64, *float64) {
	if geo == nil {
		return nil, nil
	}
	lat, lng := geo.Lat(), geo.Lng()
	return &lat, &lng
}

func optionalID(id *kernel.UUID) *openapi_types.UUID {
	if id == nil {
		return nil
	}
	out := id.Bytes()
	return &out
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func toStatusEntry(entry *ledger.Entry) servers.StatusEntry {
	lat, lng := geoFields(entry.Geo())
	return servers.StatusEntry{
		Id:         entry.ID().Bytes(),
		Seq:        entry.Seq(),
		EntityType: servers.EntityKind(entry.Ref().Kind.String()),
		EntityId:   entry.Ref().ID.Bytes(),
		Status:     entry.Status().String(),
		Timestamp:  entry.Timestamp(),
		Latitude:   lat,
		Longitude:  lng,
		Note:       optionalString(entry.Note()),
	}
}

func toStatusRecord(result commands.RecordStatusResult) servers.StatusRecord {
	record := servers.StatusRecord{Entry: toStatusEntry(result.Entry)}
	if result.Point != nil {
		p := toRoutePoint(result.Point)
		record.Point = &p
	}
	if result.Loading != nil {
		l := toLoading(result.Loading)
		record.Loading = &l
	}
	return record
}

func toTimelineEvent(event services.TimelineEvent) servers.TimelineEvent {
	lat, lng := geoFields(event.Geo)
	return servers.TimelineEvent{
		Id:         event.EntryID.Bytes(),
		Seq:        event.Seq,
		EntityType: servers.EntityKind(event.EntityKind.String()),
		EntityId:   event.EntityID.Bytes(),
		Status:     event.Status.String(),
		Timestamp:  event.Timestamp,
		Latitude:   lat,
		Longitude:  lng,
		Note:       optionalString(event.Note),
		Label:      event.Label,
	}
}

func toRoutePoint(p *point.RoutePoint) servers.RoutePoint {
	details := p.Details()
	lat, lng := geoFields(details.Geo)
	return servers.RoutePoint{
		Id:              p.ID().Bytes(),
		RoutePlanId:     p.RoutePlanID().Bytes(),
		Order:           p.Order(),
		Doc:             details.Doc,
		Payment:         details.Payment.StringFixed(2),
		Counterparty:    details.Counterparty,
		AddressId:       optionalID(details.AddressID),
		StoreId:         optionalID(details.StoreID),
		Latitude:        lat,
		Longitude:       lng,
		ArrivalTime:     p.ArrivalTime(),
		DepartureTime:   p.DepartureTime(),
		DurationMinutes: p.DurationMinutes(),
		Note:            details.Note,
		Status:          p.Status().String(),
	}
}

func toLoading(l *loading.Loading) servers.Loading {
	details := l.Details()
	lat, lng := geoFields(details.Geo)
	return servers.Loading{
		Id:             l.ID().Bytes(),
		RoutePlanId:    l.RoutePlanID().Bytes(),
		LoadingPlaceId: optionalID(details.LoadingPlaceID),
		StartTime:      details.StartTime,
		EndTime:        details.EndTime,
		DocNumber:      details.DocNumber,
		Volume:         details.Volume,
		Weight:         details.Weight,
		Note:           details.Note,
		Latitude:       lat,
		Longitude:      lng,
		Status:         l.Status().String(),
	}
}

func toRoutePlan(view queries.GetRoutePlanQueryResponse) servers.RoutePlan {
	planID := view.ID.Bytes()
	plan := servers.RoutePlan{
		Id:        planID,
		VehicleId: view.VehicleID.Bytes(),
		Date:      openapi_types.Date{Time: view.Date},
		Status:    view.Status,
		StartTime: view.StartTime,
		EndTime:   view.EndTime,
		Notes:     view.Notes,
		Points:    make([]servers.RoutePoint, 0, len(view.Points)),
		Loadings:  make([]servers.Loading, 0, len(view.Loadings)),
	}

	for _, p := range view.Points {
		lat, lng := geoFields(p.Geo)
		plan.Points = append(plan.Points, servers.RoutePoint{
			Id:              p.ID.Bytes(),
			RoutePlanId:     planID,
			Order:           p.Order,
			Doc:             p.Doc,
			Payment:         p.Payment.StringFixed(2),
			Counterparty:    p.Counterparty,
			AddressId:       optionalID(p.AddressID),
			Address:         optionalString(p.Address),
			StoreId:         optionalID(p.StoreID),
			StoreName:       optionalString(p.StoreName),
			Latitude:        lat,
			Longitude:       lng,
			ArrivalTime:     p.ArrivalTime,
			DepartureTime:   p.DepartureTime,
			DurationMinutes: p.DurationMinutes,
			Note:            p.Note,
			Status:          p.Status,
		})
	}

	for _, l := range view.Loadings {
		lat, lng := geoFields(l.Geo)
		plan.Loadings = append(plan.Loadings, servers.Loading{
			Id:               l.ID.Bytes(),
			RoutePlanId:      planID,
			LoadingPlaceId:   optionalID(l.LoadingPlaceID),
			LoadingPlaceName: optionalString(l.LoadingPlaceName),
			StartTime:        l.StartTime,
			EndTime:          l.EndTime,
			DocNumber:        l.DocNumber,
			Volume:           l.Volume,
			Weight:           l.Weight,
			Note:             l.Note,
			Latitude:         lat,
			Longitude:        lng,
			Status:           l.Status,
		})
	}

	return plan
}

func toRoutePlanList(resp queries.ListRoutePlansQueryResponse) servers.RoutePlanList {
	out := servers.RoutePlanList{
		Plans:       make([]servers.RoutePlanSummary, 0, len(resp.Plans)),
		TotalPlans:  resp.TotalPlans,
		TotalPoints: resp.TotalPoints,
	}
	for _, plan := range resp.Plans {
		out.Plans = append(out.Plans, servers.RoutePlanSummary{
			Id:          plan.ID.Bytes(),
			Date:        openapi_types.Date{Time: plan.Date},
			Status:      plan.Status,
			VehicleId:   plan.VehicleID.Bytes(),
			PlateNumber: plan.PlateNumber,
			DriverId:    optionalID(plan.DriverID),
			DriverName:  plan.DriverName,
			PointsCount: plan.PointsCount,
		})
	}
	return out
}

func toRollups(in []services.Rollup) []servers.Rollup {
	out := make([]servers.Rollup, 0, len(in))
	for _, r := range in {
		out = append(out, servers.Rollup{
			Id:                   r.ID.Bytes(),
			Name:                 r.Name,
			TotalPoints:          r.TotalPoints,
			CompletedPoints:      r.CompletedPoints,
			CompletionPercentage: r.CompletionPercentage,
			AvgDurationMinutes:   r.AvgDurationMinutes,
		})
	}
	return out
}

func toStatistics(resp queries.GetStatisticsQueryResponse) servers.Statistics {
	report := resp.Report
	counts := make(map[string]int, len(report.Points.StatusCounts))
	for s, n := range report.Points.StatusCounts {
		counts[s.String()] = n
	}

	out := servers.Statistics{
		StartDate: openapi_types.Date{Time: resp.Start},
		EndDate:   openapi_types.Date{Time: resp.End},
		Points: servers.PointsSummary{
			TotalPoints:  report.Points.TotalPoints,
			InProgress:   report.Points.InProgress,
			Remaining:    report.Points.Remaining,
			StatusCounts: counts,
		},
		AvgDurationMinutes: report.AvgDurationMinutes,
		Drivers:            toRollups(report.Drivers),
		Vehicles:           toRollups(report.Vehicles),
		Total: servers.TotalSummary{
			TotalPoints:          report.Total.TotalPoints,
			CompletedPoints:      report.Total.CompletedPoints,
			CompletionPercentage: report.Total.CompletionPercentage,
			TotalPayment:         report.Total.TotalPayment.StringFixed(2),
			AvgDurationMinutes:   report.Total.AvgDurationMinutes,
		},
	}
	if road := report.LongestRoad; road != nil {
		out.LongestRoad = &servers.RoadHighlight{
			PointId:           road.PointID.Bytes(),
			Address:           road.Address,
			TravelTimeSeconds: road.TravelTimeSeconds,
		}
	}
	if service := report.LongestService; service != nil {
		out.LongestService = &servers.ServiceHighlight{
			PointId:         service.PointID.Bytes(),
			Address:         service.Address,
			DurationMinutes: service.DurationMinutes,
		}
	}
	return out
}
