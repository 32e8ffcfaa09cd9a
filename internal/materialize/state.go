package materialize

// State is a stage of a materialization run.
type State int

const (
	GuardCheck State = iota
	BaseScaffold
	DependencyInstall
	ConfigEmit
	TemplateOverlay
	ThemePatch
	Done
	Aborted
)

func (s State) String() string {
	switch s {
	case GuardCheck:
		return "guard-check"
	case BaseScaffold:
		return "base-scaffold"
	case DependencyInstall:
		return "dependency-install"
	case ConfigEmit:
		return "config-emit"
	case TemplateOverlay:
		return "template-overlay"
	case ThemePatch:
		return "theme-patch"
	case Done:
		return "done"
	case Aborted:
		return "aborted"
	}
	return "unknown"
}

// Terminal reports whether s ends a run.
func (s State) Terminal() bool {
	return s == Done || s == Aborted
}
