// Package kernel holds the identifier primitive shared by the portal directory
// and anything else in the tracking domain that needs an opaque, generated id.
//
// Tracked orders are keyed by their business identifier (purchase order or
// sales order) and relational rows by integer ids, so UUID is used only where
// the stored data carries generated ids: portal clients and portals.
package kernel
