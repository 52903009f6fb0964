//go:build windows

package engine

import (
	"fmt"
	"os"
	"path/filepath"
	"syscall"
	"unsafe"
)

// SetDllDirectoryW so the backend can find its runtime dependencies
// (onnxruntime and friends) sitting next to it.
func openLibrary(path string) (uintptr, error) {
	dir := filepath.Dir(path)
	k32 := syscall.NewLazyDLL("kernel32.dll")
	procSetDllDirectoryW := k32.NewProc("SetDllDirectoryW")
	ptr, err := syscall.UTF16PtrFromString(dir)
	if err != nil {
		return 0, err
	}
	ret, _, callErr := procSetDllDirectoryW.Call(uintptr(unsafe.Pointer(ptr)))
	if ret == 0 {
		old := os.Getenv("PATH")
		_ = os.Setenv("PATH", dir+";"+old)
		if callErr != nil && callErr != syscall.Errno(0) {
			return 0, fmt.Errorf("SetDllDirectoryW failed: %v", callErr)
		}
	}
	handle, err := syscall.LoadLibrary(path)
	if err != nil {
		return 0, fmt.Errorf("load %s failed: %w", path, err)
	}
	return uintptr(handle), nil
}
