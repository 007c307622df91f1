package util

import "strings"

// ShortPackageName extracts the package name from a fully qualified function name
// as reported by runtime.FuncForPC, e.g.
// "github.com/acme/store/cache.TestGet.func1" -> "cache".
func ShortPackageName(funcName string) string {
	if funcName == "" {
		return ""
	}

	// Drop the import path prefix, keeping "pkg.Func..."
	if idx := strings.LastIndex(funcName, "/"); idx != -1 {
		funcName = funcName[idx+1:]
	}

	if idx := strings.Index(funcName, "."); idx != -1 {
		return funcName[:idx]
	}

	return funcName
}

// QualifiedName joins a package name and a test name the way benchmark reports
// label them ("pkg.TestName"). An empty package yields the bare test name.
func QualifiedName(pkg, name string) string {
	if pkg == "" {
		return name
	}
	return pkg + "." + name
}
