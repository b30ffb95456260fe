// Package shopcart is an in-memory shopping cart with strict input
// validation, immutable identity fields, and defensive copies on every read
// path.
//
// A Catalog maps item names to fixed-point unit prices and never changes
// after construction. A Cart is bound to one customer ID and one Catalog;
// every mutation validates its arguments and checks catalog membership
// before touching stored state, so a failed call leaves the cart exactly as
// it was. All failures are returned as errors wrapping the sentinels in
// errors.go; nothing is logged, swallowed, or retried internally.
//
// A Catalog, being immutable after construction, may be shared between carts
// and goroutines freely. Mutating a single Cart from multiple goroutines is
// not supported; callers needing that must serialize access themselves.
package shopcart
