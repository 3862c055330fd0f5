//go:build !wasm

package liteorm

// Ormc generates liteorm schema declarations from model structs. It scans
// model.go and models.go files under a root directory and writes a
// <file>_orm.go next to each one holding a MustDefine call per struct, its
// column-name descriptor and the child loaders of its relations.
type Ormc struct {
	logFn   func(messages ...any)
	rootDir string
}

// NewOrmc returns a generator rooted at the working directory.
func NewOrmc() *Ormc {
	return &Ormc{rootDir: "."}
}

// SetLog receives skipped-field and skipped-struct warnings.
// Without it they are dropped.
func (o *Ormc) SetLog(fn func(messages ...any)) {
	o.logFn = fn
}

// SetRootDir sets the directory Run walks. vendor, .git and testdata
// directories are never entered.
func (o *Ormc) SetRootDir(dir string) {
	o.rootDir = dir
}

func (o *Ormc) log(messages ...any) {
	if o.logFn != nil {
		o.logFn(messages...)
	}
}
