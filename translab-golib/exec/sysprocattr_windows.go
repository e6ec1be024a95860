// +build windows

package exec

import "syscall"

var sysProcAttr = &syscall.SysProcAttr{
	HideWindow: true,
}

var detachedSysProcAttr = &syscall.SysProcAttr{
	HideWindow:    true,
	CreationFlags: syscall.CREATE_NEW_PROCESS_GROUP,
}
