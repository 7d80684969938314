// Package domain contains the core entities of the rapor CLI:
// report types, interview sessions, indexed chunks and feedback records.
// Entities carry no behaviour beyond simple derived values; business
// logic lives in the services layer.
package domain
