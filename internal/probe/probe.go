// Package probe inspects the host for the capabilities system installation needs.
package probe

import (
	"os"
	"os/exec"
	"runtime"

	"github.com/alexisbeaulieu97/solverboot/internal/model"
)

// DefaultAptDir is the directory whose presence marks a Debian/Ubuntu package manager.
const DefaultAptDir = "/etc/apt"

// Probe answers platform and privilege questions. All fields are optional;
// zero values read the real host. Both queries are side-effect free.
type Probe struct {
	GOOS     string
	AptDir   string
	Stat     func(name string) (os.FileInfo, error)
	LookPath func(file string) (string, error)
	Geteuid  func() int
}

// New returns a Probe bound to the running host.
func New() *Probe {
	return &Probe{}
}

// Platform reports the OS family and whether apt tooling is present.
func (p *Probe) Platform() model.PlatformInfo {
	goos := p.goos()
	info := model.PlatformInfo{OSFamily: model.OSOther, GOOS: goos}
	if goos != "linux" {
		return info
	}

	info.OSFamily = model.OSLinux
	info.HasAptTooling = p.hasApt()
	return info
}

// Privilege reports whether the effective user is root.
func (p *Probe) Privilege() model.PrivilegeContext {
	euid := p.geteuid()
	return model.PrivilegeContext{IsElevated: euid == 0, EUID: euid}
}

func (p *Probe) hasApt() bool {
	stat := p.Stat
	if stat == nil {
		stat = os.Stat
	}
	dir := p.AptDir
	if dir == "" {
		dir = DefaultAptDir
	}
	if info, err := stat(dir); err != nil || !info.IsDir() {
		return false
	}

	lookPath := p.LookPath
	if lookPath == nil {
		lookPath = exec.LookPath
	}
	_, err := lookPath("apt-get")
	return err == nil
}

func (p *Probe) goos() string {
	if p.GOOS != "" {
		return p.GOOS
	}
	return runtime.GOOS
}

func (p *Probe) geteuid() int {
	if p.Geteuid != nil {
		return p.Geteuid()
	}
	// -1 on Windows, which never counts as elevated here
	return os.Geteuid()
}
