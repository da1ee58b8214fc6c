// Package platform maps the running host onto the target triples the oav
// release archives are published for.
package platform

import (
	"runtime"

	"github.com/pkg/errors"
)

// Triple is a canonical {arch}-{platform} pair used in release asset names.
type Triple struct {
	Arch     string
	Platform string
}

func (t Triple) String() string {
	return t.Arch + "-" + t.Platform
}

// supported is the closed set of triples with published archives. A kernel
// and machine that map individually but compose to anything outside this set
// must still be rejected.
var supported = map[Triple]bool{
	{Arch: "x86_64", Platform: "apple-darwin"}:      true,
	{Arch: "aarch64", Platform: "apple-darwin"}:     true,
	{Arch: "x86_64", Platform: "unknown-linux-gnu"}: true,
}

// Resolve maps a kernel name and machine architecture, as a host reports
// them, to a supported target triple.
func Resolve(kernel, machine string) (Triple, error) {
	var t Triple

	switch kernel {
	case "Darwin":
		t.Platform = "apple-darwin"
	case "Linux":
		t.Platform = "unknown-linux-gnu"
	default:
		return Triple{}, errors.Errorf("unsupported OS: %s", kernel)
	}

	switch machine {
	case "x86_64":
		t.Arch = "x86_64"
	case "arm64", "aarch64":
		t.Arch = "aarch64"
	default:
		return Triple{}, errors.Errorf("unsupported architecture: %s", machine)
	}

	if !supported[t] {
		return Triple{}, errors.Errorf("no prebuilt archive for %s", t)
	}

	return t, nil
}

// Detect resolves the triple for the current process.
func Detect() (Triple, error) {
	return Resolve(Kernel(), Machine())
}

// Kernel reports the host kernel name the way uname -s would.
func Kernel() string {
	switch runtime.GOOS {
	case "darwin":
		return "Darwin"
	case "linux":
		return "Linux"
	default:
		return runtime.GOOS
	}
}

// Machine reports the machine architecture the way uname -m would.
func Machine() string {
	switch runtime.GOARCH {
	case "amd64":
		return "x86_64"
	case "arm64":
		return "arm64"
	default:
		return runtime.GOARCH
	}
}
