package scaffold

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
	"text/template"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"makeabet/internal/chain"
	"makeabet/internal/store"
)

// ErrTargetNotEmpty is returned when the target directory already has entries.
var ErrTargetNotEmpty = errors.New("target directory is not empty, please choose another folder")

// templateSuffix marks files rendered through text/template.
const templateSuffix = ".tmpl"

// MerchantPaths are removed from the copy when the merchant module is off.
var MerchantPaths = []string{
	"apps/web/src/modules/merchant",
	"apps/api/src/modules/merchant",
	"docs/templates/merchant-room.md",
}

// Generator copies a template tree into a new project directory.
type Generator struct {
	Template fs.FS  // tree to copy; defaults to the embedded monorepo
	WorkDir  string // base for relative project names; defaults to the process cwd
	Log      *zap.Logger
}

// Result describes a finished scaffold.
type Result struct {
	Dir      string   // absolute project directory
	Files    int      // template files copied
	EnvFiles []string // .env.example files written, relative to Dir
}

// templateData is what *.tmpl files see.
type templateData struct {
	Options
	Name               string
	Chain              chain.Metadata
	PackageManagerSpec string
	InstallCommand     string
	DevCommand         string
}

// Run validates opts and generates the project. Nothing is written when the
// target directory is non-empty.
func (g *Generator) Run(ctx context.Context, opts Options) (Result, error) {
	if err := opts.Validate(); err != nil {
		return Result{}, err
	}
	log := g.Log
	if log == nil {
		log = zap.NewNop()
	}

	dir, err := g.targetDir(opts.ProjectName)
	if err != nil {
		return Result{}, err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return Result{}, fmt.Errorf("create target directory: %w", err)
	}
	empty, err := isDirectoryEmpty(dir)
	if err != nil {
		return Result{}, fmt.Errorf("inspect target directory: %w", err)
	}
	if !empty {
		return Result{}, fmt.Errorf("%s: %w", dir, ErrTargetNotEmpty)
	}

	tmpl := g.Template
	if tmpl == nil {
		tmpl = Monorepo()
	}
	data := templateData{
		Options:            opts,
		Name:               opts.PackageName(),
		Chain:              chain.Resolve(opts.TargetChain),
		PackageManagerSpec: opts.PackageManager.Spec(),
		InstallCommand:     opts.PackageManager.InstallCommand(),
		DevCommand:         opts.PackageManager.RunCommand("dev"),
	}

	n, err := copyTree(ctx, tmpl, dir, data)
	if err != nil {
		return Result{}, fmt.Errorf("copy template: %w", err)
	}
	log.Debug("template copied", zap.String("dir", dir), zap.Int("files", n))

	envs, err := store.WriteEnvFiles(dir, EnvExamples(opts))
	if err != nil {
		return Result{}, fmt.Errorf("write config files: %w", err)
	}

	if !opts.IncludeMerchantModule {
		if err := removeMerchantAssets(ctx, dir); err != nil {
			return Result{}, fmt.Errorf("remove merchant module: %w", err)
		}
		log.Debug("merchant module removed", zap.Strings("paths", MerchantPaths))
	}

	return Result{Dir: dir, Files: n, EnvFiles: envs}, nil
}

func (g *Generator) targetDir(name string) (string, error) {
	if filepath.IsAbs(name) {
		return filepath.Clean(name), nil
	}
	base := g.WorkDir
	if base == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", err
		}
		base = wd
	}
	return filepath.Abs(filepath.Join(base, name))
}

// isDirectoryEmpty treats a missing directory as empty.
func isDirectoryEmpty(dir string) (bool, error) {
	entries, err := os.ReadDir(dir)
	if errors.Is(err, os.ErrNotExist) {
		return true, nil
	}
	if err != nil {
		return false, err
	}
	return len(entries) == 0, nil
}

// copyTree copies every regular file of src into dst, rendering *.tmpl files.
func copyTree(ctx context.Context, src fs.FS, dst string, data templateData) (int, error) {
	files := 0
	err := fs.WalkDir(src, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		target := filepath.Join(dst, filepath.FromSlash(p))
		if d.IsDir() {
			return os.MkdirAll(target, 0o755)
		}
		if !d.Type().IsRegular() {
			return nil
		}

		b, err := fs.ReadFile(src, p)
		if err != nil {
			return err
		}
		if strings.HasSuffix(p, templateSuffix) {
			b, err = render(p, b, data)
			if err != nil {
				return err
			}
			target = strings.TrimSuffix(target, templateSuffix)
		}
		if err := os.WriteFile(target, b, 0o644); err != nil {
			return err
		}
		files++
		return nil
	})
	return files, err
}

func render(name string, b []byte, data templateData) ([]byte, error) {
	t, err := template.New(path.Base(name)).Option("missingkey=error").Parse(string(b))
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", name, err)
	}
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("render %s: %w", name, err)
	}
	return buf.Bytes(), nil
}

// removeMerchantAssets deletes MerchantPaths under dir; missing paths are fine.
func removeMerchantAssets(ctx context.Context, dir string) error {
	g, _ := errgroup.WithContext(ctx)
	for _, rel := range MerchantPaths {
		full := filepath.Join(dir, filepath.FromSlash(rel))
		g.Go(func() error {
			return os.RemoveAll(full)
		})
	}
	return g.Wait()
}

// NextSteps lists the shell commands to run after a successful scaffold.
func NextSteps(opts Options) []string {
	return []string{
		"cd " + opts.ProjectName,
		opts.PackageManager.InstallCommand(),
		opts.PackageManager.RunCommand("dev"),
	}
}
