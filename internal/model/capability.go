package model

// OSFamily is the coarse operating system classification used for install gating.
type OSFamily string

const (
	// OSLinux is any Linux kernel host.
	OSLinux OSFamily = "linux"
	// OSOther covers every host that is not Linux.
	OSOther OSFamily = "other"
)

// PlatformInfo is immutable once probed for the process lifetime.
type PlatformInfo struct {
	OSFamily      OSFamily
	GOOS          string
	HasAptTooling bool
}

// SupportsApt reports whether system packages can be installed automatically.
func (p PlatformInfo) SupportsApt() bool {
	return p.OSFamily == OSLinux && p.HasAptTooling
}

// PrivilegeContext is immutable once probed.
type PrivilegeContext struct {
	IsElevated bool
	EUID       int
}
