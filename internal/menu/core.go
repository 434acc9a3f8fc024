package menu

import (
	"fmt"

	"github.com/atomicstack/menuctl/internal/settings"
)

// NoCoreLabel is shown in the core title when nothing is loaded.
const NoCoreLabel = "No Core"

// CoreInfo names a core and its version.
type CoreInfo struct {
	Name    string
	Version string
}

// CoreSource supplies the active core. MenuCoreInfo is the transient
// override and reports false when none is set; SystemCoreInfo is the
// persistent fallback.
type CoreSource interface {
	MenuCoreInfo() (CoreInfo, bool)
	SystemCoreInfo() CoreInfo
}

// CoreTitle formats "{version} - {core name} {core version}" for the header.
func (e *Entries) CoreTitle(limit int) (string, error) {
	if e == nil || !e.settings.Bool(settings.ShowCoreName) {
		return "", ErrCoreTitleDisabled
	}
	name, version := e.coreInfo()
	return clip(fmt.Sprintf("%s - %s %s", e.version, name, version), limit), nil
}

func (e *Entries) coreInfo() (string, string) {
	var (
		override CoreInfo
		system   CoreInfo
		ok       bool
	)
	if e.core != nil {
		override, ok = e.core.MenuCoreInfo()
		system = e.core.SystemCoreInfo()
	}
	name := ""
	if ok {
		name = override.Name
	}
	if name == "" {
		name = system.Name
	}
	if name == "" {
		name = NoCoreLabel
	}
	version := ""
	if ok {
		version = override.Version
	}
	if version == "" {
		version = system.Version
	}
	return name, version
}
