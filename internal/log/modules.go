// Package log provides module-scoped structured logging for the emulator
// core, gating debug-level output per subsystem so a caller can turn on
// verbose tracing for, say, the mapper alone without drowning in CPU noise.
package log

import "gopkg.in/Sirupsen/logrus.v0"

type Level uint8

const (
	DebugLevel Level = iota
	InfoLevel
	WarnLevel
	ErrorLevel
	FatalLevel
	PanicLevel
)

type ModuleMask uint64
type Module uint

const ModuleMaskAll ModuleMask = 0xFFFFFFFFFFFFFFFF

const (
	ModEmu Module = iota + 1
	ModCPU
	ModPPU
	ModBus
	ModMapper
	ModInput

	endStandardMods
)

var modCount = endStandardMods

var modDebugMask ModuleMask

var modNames = []string{
	"<error>", "emu", "cpu", "ppu", "bus", "mapper", "input",
}

// ModuleNames returns the names of all registered modules, in registration
// order, skipping the reserved zero entry.
func ModuleNames() []string {
	return append([]string(nil), modNames[1:]...)
}

func ModuleByName(name string) (Module, bool) {
	for idx, s := range modNames {
		if s == name {
			return Module(idx), true
		}
	}
	return Module(0), false
}

func EnableDebugModules(mask ModuleMask) { modDebugMask |= mask }
func DisableDebugModules(mask ModuleMask) { modDebugMask &^= mask }
func Disable()                            { modDebugMask = 0 }

func (mod Module) Mask() ModuleMask { return 1 << ModuleMask(mod) }

func (mod Module) Enabled(level Level) bool {
	return level >= WarnLevel || modDebugMask&mod.Mask() != 0
}

func (mod Module) entry() *logrus.Entry {
	return logrus.StandardLogger().WithField("mod", modNames[mod])
}

func (mod Module) Debugf(format string, args ...any) {
	if mod.Enabled(DebugLevel) {
		mod.entry().Debugf(format, args...)
	}
}

func (mod Module) Infof(format string, args ...any) {
	if mod.Enabled(InfoLevel) {
		mod.entry().Infof(format, args...)
	}
}

func (mod Module) Warnf(format string, args ...any) {
	if mod.Enabled(WarnLevel) {
		mod.entry().Warnf(format, args...)
	}
}

func (mod Module) Errorf(format string, args ...any) {
	if mod.Enabled(ErrorLevel) {
		mod.entry().Errorf(format, args...)
	}
}

func (mod Module) Fatalf(format string, args ...any) {
	mod.entry().Fatalf(format, args...)
}
