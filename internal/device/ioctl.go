package device

import (
	"unsafe"

	"golang.org/x/sys/unix"
)

// absInfo mirrors struct input_absinfo from <linux/input.h>.
type absInfo struct {
	Value      int32
	Minimum    int32
	Maximum    int32
	Fuzz       int32
	Flat       int32
	Resolution int32
}

// Linux _IOC request encoding, from <asm-generic/ioctl.h>.
const (
	iocNRBits   = 8
	iocTypeBits = 8
	iocSizeBits = 14

	iocNRShift   = 0
	iocTypeShift = iocNRShift + iocNRBits
	iocSizeShift = iocTypeShift + iocTypeBits
	iocDirShift  = iocSizeShift + iocSizeBits

	iocWrite = 1
)

func ioc(dir, typ, nr, size uint32) uintptr {
	return uintptr((dir << iocDirShift) | (typ << iocTypeShift) | (nr << iocNRShift) | (size << iocSizeShift))
}

// eviocsAbs builds EVIOCSABS(code), i.e. _IOW('E', 0xc0 + code, struct
// input_absinfo), the request that rewrites one axis's parameters inside
// the kernel driver.
func eviocsAbs(code uint16) uintptr {
	return ioc(iocWrite, 'E', 0xc0+uint32(code), uint32(unsafe.Sizeof(absInfo{})))
}

// setAbsInfo pushes new axis parameters into the driver behind fd.
func setAbsInfo(fd int, code uint16, info *absInfo) error {
	_, _, errno := unix.Syscall(unix.SYS_IOCTL, uintptr(fd), eviocsAbs(code), uintptr(unsafe.Pointer(info)))
	if errno != 0 {
		return errno
	}
	return nil
}
