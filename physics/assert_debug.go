//go:build !release

package physics

const debugAssertions = true
