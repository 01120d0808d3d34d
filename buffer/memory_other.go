//go:build !linux

package buffer

func systemMemory() uint64 {
	return 0
}
