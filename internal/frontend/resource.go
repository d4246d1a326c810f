package frontend

import (
	"fmt"
	"go/build"
	"go/importer"
	"go/token"
	"go/types"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"

	"astdump/internal/diag"
)

// DefaultToolchain is the compiled-in toolchain executable path, resolved at
// build time to the toolchain used to build this program. Override:
//
//	go build -ldflags "-X astdump/internal/frontend.DefaultToolchain=/usr/local/go/bin/go"
var DefaultToolchain = ""

// ResolveToolchain picks the toolchain executable used for resource
// discovery. An explicit path wins, then the compiled-in default, then the
// first "go" on $PATH. The executable is never run to parse anything; it
// only anchors the resource root.
func ResolveToolchain(explicit string) (string, error) {
	for _, candidate := range []string{explicit, DefaultToolchain} {
		if candidate == "" {
			continue
		}
		if _, err := os.Stat(candidate); err != nil {
			return "", &ToolchainError{Path: candidate, Code: diag.ToolchainNotFound, Err: err}
		}
		return candidate, nil
	}
	path, err := exec.LookPath("go")
	if err != nil {
		return "", &ToolchainError{Code: diag.ToolchainNotFound, Err: err}
	}
	return path, nil
}

// ResourceRoot derives the toolchain's bundled-source root from the
// executable path: the binary is installed at <root>/bin/<exe>. Symlinked
// executables are followed first. When the derived root carries no source
// tree (distribution shims), the running toolchain's own root is used
// instead.
func ResourceRoot(toolchain string) (string, error) {
	resolved, err := filepath.EvalSymlinks(toolchain)
	if err != nil {
		resolved = toolchain
	}
	abs, err := filepath.Abs(resolved)
	if err != nil {
		return "", &ToolchainError{Path: toolchain, Code: diag.ToolchainNoRoot, Err: err}
	}
	root := filepath.Dir(filepath.Dir(abs))
	if hasSourceTree(root) {
		return root, nil
	}
	if rt := runtime.GOROOT(); rt != "" && hasSourceTree(rt) {
		return rt, nil
	}
	return "", &ToolchainError{
		Path: toolchain,
		Code: diag.ToolchainNoRoot,
		Err:  fmt.Errorf("no bundled source tree under %s", root),
	}
}

func hasSourceTree(root string) bool {
	st, err := os.Stat(filepath.Join(root, "src", "fmt"))
	return err == nil && st.IsDir()
}

// newResourceImporter binds import resolution to the resource root. The
// root is installed into the build context before the importer is created;
// one process performs one invocation, so the global is safe here.
func newResourceImporter(fset *token.FileSet, root string) types.Importer {
	build.Default.GOROOT = root
	return importer.ForCompiler(fset, "source", nil)
}
