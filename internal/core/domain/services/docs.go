// Package services holds the domain services of the route tracker: logic that
// spans several entities or works on collections of them rather than on a
// single aggregate.
//
// The package includes:
//   - OrderIndex: plans the collision-free writes that insert or move a point
//   - StatusRecorder: validates a status change and mirrors it onto its entity
//   - TimelineMerger: merges the ledgers of one plan into one chronological feed
//   - StatisticsAggregator: rolls point facts up into a range report
//
// All services are pure. Loading the inputs and persisting the results is left
// to the application layer, inside one unit of work.
package services
