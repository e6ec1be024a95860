package exec

import "os/exec"

// Cmd is os/exec.Cmd
type Cmd = exec.Cmd

// LookPath is os/exec.LookPath
var LookPath = exec.LookPath

// Command is os/exec.Command, but prevents Windows from opening a Window
func Command(name string, arg ...string) *Cmd {
	cmd := exec.Command(name, arg...)
	cmd.SysProcAttr = sysProcAttr
	return cmd
}

// DetachedCommand is Command, but the resulting process is placed in its own
// session so it survives the caller exiting. Start it with Cmd.Start and do
// not Wait.
func DetachedCommand(name string, arg ...string) *Cmd {
	cmd := exec.Command(name, arg...)
	cmd.SysProcAttr = detachedSysProcAttr
	return cmd
}
