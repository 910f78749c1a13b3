package osutil

import (
	"os"
	"os/exec"
	"runtime"

	"github.com/kballard/go-shellquote"
	"github.com/mattn/go-isatty"
)

const (
	Windows = "windows"
	Darwin  = "darwin"
)

type exitCode int

const (
	ExitOK    exitCode = 0
	ExitError exitCode = 1
)

const (
	DirPermission  = 0o755
	FilePermission = 0o644
)

// Interactive reports whether stdin and stdout are both terminals.
func Interactive() bool {
	return isTerminal(os.Stdin.Fd()) && isTerminal(os.Stdout.Fd())
}

func isTerminal(fd uintptr) bool {
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// Editor returns the command used to edit text files.
func Editor() string {
	defaultEditor := "nano"

	if runtime.GOOS == Windows {
		defaultEditor = "C:\\Windows\\system32\\notepad.exe"
	}

	for _, v := range []string{os.Getenv("VISUAL"), os.Getenv("EDITOR")} {
		if v != "" {
			return v
		}
	}

	return defaultEditor
}

// Command parses a shell command line into an *exec.Cmd. It returns nil if the
// line is empty.
func Command(line string) (*exec.Cmd, error) {
	args, err := shellquote.Split(line)
	if err != nil {
		return nil, err
	}

	if len(args) == 0 {
		return nil, nil
	}

	return exec.Command(args[0], args[1:]...), nil
}
