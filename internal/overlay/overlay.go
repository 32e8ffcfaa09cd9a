package overlay

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/otiai10/copy"

	"github.com/skeletonlabs/create-skeleton-app/internal/generate"
	"github.com/skeletonlabs/create-skeleton-app/internal/options"
)

// Dirs are the template directories copied into the project, in order.
var Dirs = []string{"src", "static"}

// AppHTMLFile is the page shell whose body tag carries the theme.
const AppHTMLFile = "src/app.html"

// themeImport matches the stylesheet import written by generate.ThemeImport,
// capturing everything around the theme name.
var themeImport = regexp.MustCompile(`(?m)^(\s*import\s+['"]@brainandbones/skeleton/themes/theme-)[A-Za-z0-9-]+(\.css['"];?)`)

// bodyTag matches a bare body tag or one already carrying a data-theme.
var bodyTag = regexp.MustCompile(`<body(\s+data-theme="[^"]*")?>`)

// Apply copies the src and static directories of template id from fsys over
// root. Existing files are overwritten and others are left alone. A missing
// directory in the template is skipped. It returns the copied files as
// slash-separated paths relative to root.
func Apply(ctx context.Context, root string, fsys fs.FS, id string) ([]string, error) {
	if _, err := fs.Stat(fsys, id); err != nil {
		return nil, fmt.Errorf("template %q: %w", id, err)
	}

	var files []string
	for _, dir := range Dirs {
		if err := ctx.Err(); err != nil {
			return files, err
		}
		src := path.Join(id, dir)
		info, err := fs.Stat(fsys, src)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return files, fmt.Errorf("reading template %s: %w", src, err)
		}
		if !info.IsDir() {
			continue
		}

		err = fs.WalkDir(fsys, src, func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.IsDir() {
				files = append(files, strings.TrimPrefix(p, id+"/"))
			}
			return nil
		})
		if err != nil {
			return files, fmt.Errorf("listing template %s: %w", src, err)
		}

		opts := copy.Options{
			FS:                fsys,
			PermissionControl: copy.AddPermission(0o200),
		}
		if err := copy.Copy(src, filepath.Join(root, dir), opts); err != nil {
			return files, fmt.Errorf("copying template %s: %w", src, err)
		}
	}
	return files, nil
}

// PatchTheme rewrites the theme stylesheet import in the root layout to
// theme and returns how many import lines it changed. Only the theme name
// inside a matching import line is replaced; every other byte is kept.
func PatchTheme(root string, theme options.Theme) (int, error) {
	file := filepath.Join(root, filepath.FromSlash(generate.LayoutFile))
	content, err := os.ReadFile(file)
	if err != nil {
		return 0, fmt.Errorf("reading layout: %w", err)
	}

	n := len(themeImport.FindAllIndex(content, -1))
	if n == 0 {
		return 0, nil
	}
	patched := themeImport.ReplaceAll(content, []byte("${1}"+string(theme)+"${2}"))
	if err := writeKeepMode(file, patched); err != nil {
		return 0, err
	}
	return n, nil
}

// PatchBody sets data-theme on the body tag of src/app.html. It reports
// false when the file has no body tag to patch.
func PatchBody(root string, theme options.Theme) (bool, error) {
	file := filepath.Join(root, filepath.FromSlash(AppHTMLFile))
	content, err := os.ReadFile(file)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("reading app.html: %w", err)
	}

	loc := bodyTag.FindIndex(content)
	if loc == nil {
		return false, nil
	}
	tag := fmt.Sprintf(`<body data-theme="%s">`, theme)
	patched := make([]byte, 0, len(content)+len(tag))
	patched = append(patched, content[:loc[0]]...)
	patched = append(patched, tag...)
	patched = append(patched, content[loc[1]:]...)
	if err := writeKeepMode(file, patched); err != nil {
		return false, err
	}
	return true, nil
}

func writeKeepMode(file string, data []byte) error {
	mode := os.FileMode(0o644)
	if info, err := os.Stat(file); err == nil {
		mode = info.Mode().Perm()
	}
	if err := os.WriteFile(file, data, mode); err != nil {
		return fmt.Errorf("writing %s: %w", file, err)
	}
	return nil
}
