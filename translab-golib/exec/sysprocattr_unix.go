// +build !windows

package exec

import "syscall"

var sysProcAttr *syscall.SysProcAttr

var detachedSysProcAttr = &syscall.SysProcAttr{
	Setsid: true,
}
