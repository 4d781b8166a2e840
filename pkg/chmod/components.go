package chmod

import "path/filepath"

type componentKind int

const (
	componentRoot componentKind = iota
	componentPrefix
	componentCurDir
	componentParentDir
	componentName
)

// component is one step of a decomposed path. Only componentName and
// componentPrefix carry a name.
type component struct {
	kind componentKind
	name string
}

// splitComponents decomposes a path into its components without any
// normalization: ".." and "." survive so the OS, not this package,
// decides what they resolve to. Repeated and trailing separators
// collapse, matching what a whole-path syscall would see.
func splitComponents(path string) []component {
	var comps []component

	if vol := filepath.VolumeName(path); vol != "" {
		comps = append(comps, component{kind: componentPrefix, name: vol})
		path = path[len(vol):]
	}
	if len(path) > 0 && path[0] == '/' {
		comps = append(comps, component{kind: componentRoot})
	}

	start := -1
	for i := 0; i <= len(path); i++ {
		if i < len(path) && path[i] != '/' {
			if start < 0 {
				start = i
			}
			continue
		}
		if start < 0 {
			continue
		}
		switch seg := path[start:i]; seg {
		case ".":
			comps = append(comps, component{kind: componentCurDir})
		case "..":
			comps = append(comps, component{kind: componentParentDir})
		default:
			comps = append(comps, component{kind: componentName, name: seg})
		}
		start = -1
	}
	return comps
}
