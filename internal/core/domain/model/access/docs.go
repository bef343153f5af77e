// Package access models who may see and change tracked orders.
//
// Two independent controls apply:
//   - Permissions gate actions (change status, archive, group, ...). A super
//     user implicitly holds every permission.
//   - Channels gate visibility. A normal user only sees orders whose channel
//     is in their allowed list; a super user sees every channel.
package access
