// Package courier provides the Courier entity: a delivery agent referenced,
// never owned, by pickup requests. Couriers carry contact and vehicle
// metadata plus an active/inactive flag; only active couriers can be chosen
// when an admin approves a pickup request.
package courier
