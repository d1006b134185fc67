//go:build !amd64 && !arm64

package mathx

func init() {
	// Other architectures (wasm, riscv64, 32-bit arm with softfloat, ...)
	// always use the soft kernel so results match across embedded targets.
	setSoftMode()
}
