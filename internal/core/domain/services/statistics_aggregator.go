package services

import (
	"math"
	"time"

	"routetrail/internal/core/domain/model/kernel"
	"routetrail/internal/core/domain/model/status"

	"github.com/shopspring/decimal"
)

// PointFact is what the aggregator needs to know about one point whose plan
// falls in the report range.
type PointFact struct {
	PointID         kernel.UUID
	VehicleID       kernel.UUID
	DriverID        *kernel.UUID
	Address         string
	Payment         decimal.Decimal
	ArrivalTime     *time.Time
	DepartureTime   *time.Time
	DurationMinutes *int
	// LatestStatus is the status of the newest ledger entry, nil for a point
	// that was never recorded.
	LatestStatus *status.Status
}

// Party is a driver or a vehicle that gets its own roll-up line.
type Party struct {
	ID   kernel.UUID
	Name string
}

type StatisticsReport struct {
	Points             PointsSummary
	LongestRoad        *RoadHighlight
	LongestService     *ServiceHighlight
	AvgDurationMinutes float64
	Drivers            []Rollup
	Vehicles           []Rollup
	Total              TotalSummary
}

// PointsSummary counts points by the status of their newest ledger entry.
type PointsSummary struct {
	TotalPoints  int
	InProgress   int
	Remaining    int
	StatusCounts map[status.Status]int
}

type RoadHighlight struct {
	PointID           kernel.UUID
	Address           string
	TravelTimeSeconds float64
}

type ServiceHighlight struct {
	PointID         kernel.UUID
	Address         string
	DurationMinutes int
}

type Rollup struct {
	ID                   kernel.UUID
	Name                 string
	TotalPoints          int
	CompletedPoints      int
	CompletionPercentage float64
	AvgDurationMinutes   float64
}

type TotalSummary struct {
	TotalPoints          int
	CompletedPoints      int
	CompletionPercentage float64
	TotalPayment         decimal.Decimal
	AvgDurationMinutes   float64
}

// StatisticsAggregator computes the range report from point facts.
//
// Rules:
//   - status counts and the total summary only see points with at least one
//     ledger entry, counted once by their newest status
//   - in progress is en_route plus arrived, remaining is planned plus skipped
//   - the longest road is the largest gap between arrival and departure
//   - averages only cover points with a duration
//   - every driver and vehicle gets a line, even without points
type StatisticsAggregator struct{}

func NewStatisticsAggregator() StatisticsAggregator {
	return StatisticsAggregator{}
}

func (StatisticsAggregator) Aggregate(facts []PointFact, drivers, vehicles []Party) StatisticsReport {
	report := StatisticsReport{
		Points: PointsSummary{StatusCounts: make(map[status.Status]int)},
		Total:  TotalSummary{TotalPayment: decimal.Zero},
	}
	for _, s := range status.KindRoutePoint.Vocabulary() {
		report.Points.StatusCounts[s] = 0
	}

	var overall durationMean
	byDriver := make(map[kernel.UUID]*tally)
	byVehicle := make(map[kernel.UUID]*tally)

	for _, f := range facts {
		overall.add(f.DurationMinutes)
		report.LongestRoad = longerRoad(report.LongestRoad, f)
		report.LongestService = longerService(report.LongestService, f)

		completed := f.LatestStatus != nil && *f.LatestStatus == status.Completed
		if f.DriverID != nil {
			tallyFor(byDriver, *f.DriverID).add(f, completed)
		}
		tallyFor(byVehicle, f.VehicleID).add(f, completed)

		if f.LatestStatus == nil {
			continue
		}
		report.Points.StatusCounts[*f.LatestStatus]++
		report.Total.TotalPoints++
		report.Total.TotalPayment = report.Total.TotalPayment.Add(f.Payment)
		if completed {
			report.Total.CompletedPoints++
		}
	}

	counts := report.Points.StatusCounts
	for _, n := range counts {
		report.Points.TotalPoints += n
	}
	report.Points.InProgress = counts[status.EnRoute] + counts[status.Arrived]
	report.Points.Remaining = counts[status.Planned] + counts[status.Skipped]

	report.AvgDurationMinutes = overall.value()
	report.Total.AvgDurationMinutes = overall.value()
	report.Total.CompletionPercentage = percentage(report.Total.CompletedPoints, report.Total.TotalPoints)

	report.Drivers = rollups(drivers, byDriver)
	report.Vehicles = rollups(vehicles, byVehicle)

	return report
}

type durationMean struct {
	sum   int
	count int
}

func (m *durationMean) add(minutes *int) {
	if minutes == nil {
		return
	}
	m.sum += *minutes
	m.count++
}

func (m durationMean) value() float64 {
	if m.count == 0 {
		return 0
	}
	return float64(m.sum) / float64(m.count)
}

type tally struct {
	total     int
	completed int
	duration  durationMean
}

func (t *tally) add(f PointFact, completed bool) {
	t.total++
	if completed {
		t.completed++
	}
	t.duration.add(f.DurationMinutes)
}

func tallyFor(m map[kernel.UUID]*tally, id kernel.UUID) *tally {
	t, ok := m[id]
	if !ok {
		t = &tally{}
		m[id] = t
	}
	return t
}

func rollups(parties []Party, tallies map[kernel.UUID]*tally) []Rollup {
	out := make([]Rollup, 0, len(parties))
	for _, p := range parties {
		r := Rollup{ID: p.ID, Name: p.Name}
		if t, ok := tallies[p.ID]; ok {
			r.TotalPoints = t.total
			r.CompletedPoints = t.completed
			r.CompletionPercentage = percentage(t.completed, t.total)
			r.AvgDurationMinutes = t.duration.value()
		}
		out = append(out, r)
	}
	return out
}

func percentage(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(part) / float64(total) * 100
}

func longerRoad(best *RoadHighlight, f PointFact) *RoadHighlight {
	if f.ArrivalTime == nil || f.DepartureTime == nil {
		return best
	}
	seconds := math.Abs(f.DepartureTime.Sub(*f.ArrivalTime).Seconds())
	if best != nil && best.TravelTimeSeconds >= seconds {
		return best
	}
	return &RoadHighlight{PointID: f.PointID, Address: f.Address, TravelTimeSeconds: seconds}
}

func longerService(best *ServiceHighlight, f PointFact) *ServiceHighlight {
	if f.DurationMinutes == nil {
		return best
	}
	if best != nil && best.DurationMinutes >= *f.DurationMinutes {
		return best
	}
	return &ServiceHighlight{PointID: f.PointID, Address: f.Address, DurationMinutes: *f.DurationMinutes}
}
