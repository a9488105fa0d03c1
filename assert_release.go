//go:build !timespandebug

package timespan

func debugAssertNormalized(Duration) {}
