//go:build timespandebug

package timespan

// debugAssertNormalized aborts when an internal constructor is handed a
// denormalized value. Reaching this indicates a bug in this package,
// never a caller error, so it is compiled in only with the
// "timespandebug" build tag.
func debugAssertNormalized(d Duration) {
	if err := d.validate(); err != nil {
		panic(err)
	}
}
