// Package sizing decides how aggressively an extracted clip is re-encoded and
// whether the result saved enough space to be worth keeping.
package sizing
