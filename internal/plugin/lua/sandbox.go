package lua

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	lua "github.com/yuin/gopher-lua"
)

// Sandbox restricts Lua execution to safe operations.
type Sandbox struct {
	L *lua.LState

	output      io.Writer
	searchPaths []string
}

// NewSandbox creates a new sandbox for the Lua state.
func NewSandbox(L *lua.LState, output io.Writer, searchPaths []string) *Sandbox {
	return &Sandbox{
		L:           L,
		output:      output,
		searchPaths: searchPaths,
	}
}

// Install sets up the sandbox restrictions.
func (s *Sandbox) Install() {
	// Remove functions that load code from outside the search paths.
	for _, name := range []string{"dofile", "loadfile", "load", "loadstring"} {
		s.L.SetGlobal(name, lua.LNil)
	}

	s.installPrint()
	s.installPackagePath()
}

// installPrint replaces print with one that writes to the sandbox output.
func (s *Sandbox) installPrint() {
	s.L.SetGlobal("print", s.L.NewFunction(func(L *lua.LState) int {
		top := L.GetTop()
		parts := make([]string, top)
		for i := 1; i <= top; i++ {
			parts[i-1] = L.ToStringMeta(L.Get(i)).String()
		}
		fmt.Fprintln(s.output, strings.Join(parts, "\t"))
		return 0
	}))
}

// installPackagePath limits require to the configured directories.
func (s *Sandbox) installPackagePath() {
	pkg, ok := s.L.GetGlobal("package").(*lua.LTable)
	if !ok {
		return
	}

	patterns := make([]string, 0, len(s.searchPaths))
	for _, dir := range s.searchPaths {
		patterns = append(patterns, filepath.Join(dir, "?.lua"))
	}
	s.L.SetField(pkg, "path", lua.LString(strings.Join(patterns, ";")))
	s.L.SetField(pkg, "cpath", lua.LString(""))
}
