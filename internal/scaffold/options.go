package scaffold

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"makeabet/internal/chain"
)

// DefaultProjectName is offered when the user does not pass a directory.
const DefaultProjectName = "makeabet-app"

// PackageManager is the JavaScript package manager the generated repo uses.
type PackageManager string

const (
	PNPM PackageManager = "pnpm"
	NPM  PackageManager = "npm"
	Yarn PackageManager = "yarn"
)

// PackageManagers lists the supported managers in prompt order.
var PackageManagers = []PackageManager{PNPM, NPM, Yarn}

// Valid reports whether pm is one of PackageManagers.
func (pm PackageManager) Valid() bool {
	for _, p := range PackageManagers {
		if p == pm {
			return true
		}
	}
	return false
}

// Spec is the corepack "packageManager" field for the generated package.json.
func (pm PackageManager) Spec() string {
	switch pm {
	case Yarn:
		return "yarn@1.22.22"
	case NPM:
		return "npm@10.9.2"
	default:
		return "pnpm@9.15.4"
	}
}

// InstallCommand is the command that installs the workspace dependencies.
func (pm PackageManager) InstallCommand() string {
	return string(pm) + " install"
}

// RunCommand runs a package.json script.
func (pm PackageManager) RunCommand(script string) string {
	return string(pm) + " run " + script
}

// Options drives one scaffold run.
type Options struct {
	ProjectName           string
	IncludeMerchantModule bool
	TargetChain           string
	PackageManager        PackageManager
}

var (
	ErrEmptyProjectName  = errors.New("project name is required")
	ErrUnknownChain      = errors.New("unknown target chain")
	ErrUnknownPackageMgr = errors.New("unknown package manager")
)

// Validate checks the options before anything touches the filesystem.
func (o Options) Validate() error {
	if strings.TrimSpace(o.ProjectName) == "" {
		return ErrEmptyProjectName
	}
	if !chain.IsScaffoldTarget(o.TargetChain) {
		return fmt.Errorf("%w %q (want one of %s)", ErrUnknownChain, o.TargetChain,
			strings.Join(chain.ScaffoldTargetKeys(), " | "))
	}
	if !o.PackageManager.Valid() {
		return fmt.Errorf("%w %q (want pnpm | npm | yarn)", ErrUnknownPackageMgr, o.PackageManager)
	}
	return nil
}

// PackageName is the npm-safe name derived from the project directory.
func (o Options) PackageName() string {
	name := strings.ToLower(filepath.Base(filepath.Clean(o.ProjectName)))
	return strings.ReplaceAll(name, " ", "-")
}
