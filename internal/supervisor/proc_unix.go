//go:build !windows

package supervisor

import (
	"os/exec"
	"syscall"
)

// setProcessGroup places the runner in its own process group so a kill
// reaches any children it forks.
func setProcessGroup(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
}

// killProcessGroup SIGKILLs the runner's process group. Errors are
// swallowed: the process may already have exited.
func killProcessGroup(cmd *exec.Cmd) {
	if cmd.Process == nil {
		return
	}
	_ = syscall.Kill(-cmd.Process.Pid, syscall.SIGKILL)
}

// killStrayRunners pattern-kills simulate processes that outlived their
// tracking entry, e.g. after a server restart. Best effort.
func killStrayRunners() {
	_ = exec.Command("pkill", "-9", "-f", "onboarding_agent simulate").Run()
}
