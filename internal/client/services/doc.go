// Package services contains the application services of the roster client:
// the session service owning the bearer-token lifecycle, the roster service
// caching server roster state, and the gate consulted before every mutating
// action.
//
// All state is owned by a single service instance and mutated only through
// its methods. Services are safe for concurrent use; the roster snapshot is
// replaced atomically under a lock so readers never observe a partial update.
package services
