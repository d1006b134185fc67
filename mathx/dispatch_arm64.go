//go:build arm64

package mathx

import "golang.org/x/sys/cpu"

func init() {
	if forceSoft || SoftEnv() {
		setSoftMode()
		return
	}

	// Note: cpu.ARM64.HasFP is always true for ARMv8-A application cores.
	// We check it anyway so kernels that hide the FPU get the soft path.
	if cpu.ARM64.HasFP {
		setHostMode()
	} else {
		setSoftMode()
	}
}
