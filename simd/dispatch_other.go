//go:build !amd64 && !arm64

package simd

// selectKernels always returns the SWAR tier on architectures without a
// vector kernel.
func selectKernels(bool) kernels {
	return scalarKernels
}
