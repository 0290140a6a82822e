//go:build windows

package supervisor

import "os/exec"

// Windows has no process groups in the unix sense; spawned runners are
// killed individually and strays are left to exit on their own.

func setProcessGroup(_ *exec.Cmd) {}

func killProcessGroup(cmd *exec.Cmd) {
	if cmd.Process == nil {
		return
	}
	_ = cmd.Process.Kill()
}

func killStrayRunners() {}
