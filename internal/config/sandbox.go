package config

import (
	lua "github.com/yuin/gopher-lua"
)

// sandboxLibs are the only standard libraries opened for launcher config files.
// os, io, package and debug are never loaded.
var sandboxLibs = []struct {
	name string
	open lua.LGFunction
}{
	{lua.BaseLibName, lua.OpenBase},
	{lua.TabLibName, lua.OpenTable},
	{lua.StringLibName, lua.OpenString},
	{lua.MathLibName, lua.OpenMath},
}

// baseLoaders are the base-library functions that read, compile or load code.
var baseLoaders = []string{"require", "module", "dofile", "loadfile", "load", "loadstring"}

// newSandboxedVM creates a Lua VM with only the safe libraries opened.
func newSandboxedVM() *lua.LState {
	L := lua.NewState(lua.Options{SkipOpenLibs: true})

	for _, lib := range sandboxLibs {
		L.Push(L.NewFunction(lib.open))
		L.Push(lua.LString(lib.name))
		L.Call(1, 0)
	}

	for _, name := range baseLoaders {
		L.SetGlobal(name, lua.LNil)
	}

	return L
}
