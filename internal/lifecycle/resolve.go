package lifecycle

import (
	"os"
	"os/exec"
	"path/filepath"
)

// ResolveLauncher locates the runtime launcher binary and returns its
// absolute path. A sibling of the running executable wins over PATH so a
// bundled launcher is preferred. Missing launcher is a precondition
// failure: install must not touch any state without it.
func ResolveLauncher(name string) (string, error) {
	if filepath.IsAbs(name) {
		if st, err := os.Stat(name); err == nil && !st.IsDir() {
			return name, nil
		}
		return "", &PreconditionError{Dependency: name, Hint: "install it before running install"}
	}

	if exePath, err := os.Executable(); err == nil {
		candidate := filepath.Join(filepath.Dir(exePath), name)
		if st, err := os.Stat(candidate); err == nil && !st.IsDir() {
			return candidate, nil
		}
	}

	if p, err := exec.LookPath(name); err == nil {
		if abs, err := filepath.Abs(p); err == nil {
			return abs, nil
		}
		return p, nil
	}

	return "", &PreconditionError{
		Dependency: name,
		Hint:       "install it and make sure it is on PATH",
	}
}
