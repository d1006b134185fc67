//go:build !mathx_soft

package mathx

const forceSoft = false
