//go:build mathx_soft

package mathx

// forceSoft is set by the mathx_soft build tag.
const forceSoft = true
