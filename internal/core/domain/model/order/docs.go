// Package order models an actively tracked delivery order (a "seguimiento").
//
// An Order is keyed by a business identifier taken from the source spreadsheet:
// the purchase order number, or the sales order number when the purchase order
// is blank (see DeriveIdentifier). Spreadsheet attributes live in Details and
// are refreshed on every import, while status, notes, block membership and the
// checklist are owned by staff and survive imports.
//
// Key business rules:
//   - The identifier is never blank
//   - Status is one of the six workflow states; new orders start in Pendiente
//   - Orders in a block share their status (enforced by the UpdateStatus command)
//   - Delivery dates are ISO dates or the literal "Por Asignar"
package order
