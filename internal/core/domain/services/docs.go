// Package services provides domain services that span several aggregates of
// the tracking system.
//
// The package includes:
//   - Reconciler: decides how a spreadsheet import changes the set of active
//     orders, given what is already tracked and what is already archived
package services
