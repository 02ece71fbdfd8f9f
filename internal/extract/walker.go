package extract

import (
	"fmt"
	"log"

	"github.com/gobwas/glob"

	"github.com/mvp-joe/project-lexicon/internal/typedoc"
)

// Result is one extraction run's output: records in pre-order traversal
// sequence plus the warnings collected along the way. Excluded counts
// subtrees skipped by an exclude pattern, not nodes skipped by failure.
type Result struct {
	Records  []*Record
	Warnings []string
	Excluded int
}

// Walker traverses a declaration tree depth-first in pre-order, extracting
// one record per node. A node whose extraction fails is reported as a
// warning and skipped together with its subtree; the walk continues with
// its siblings.
type Walker struct {
	extractor Extractor
	excludes  []glob.Glob
	logf      func(format string, args ...any)
	progress  func(node *typedoc.Declaration)
}

// Option configures a Walker.
type Option func(*Walker)

// WithExcludeGlobs skips any node whose full path matches one of the
// patterns, subtree included. Use CompileExcludes to build the globs.
func WithExcludeGlobs(globs ...glob.Glob) Option {
	return func(w *Walker) {
		w.excludes = append(w.excludes, globs...)
	}
}

// WithLogger replaces the warning logger. Passing nil silences warnings;
// they remain available on the Result.
func WithLogger(logf func(format string, args ...any)) Option {
	return func(w *Walker) {
		w.logf = logf
	}
}

// WithProgress invokes fn after each successfully extracted node.
func WithProgress(fn func(node *typedoc.Declaration)) Option {
	return func(w *Walker) {
		w.progress = fn
	}
}

// NewWalker builds a walker around the given extractor.
func NewWalker(extractor Extractor, opts ...Option) *Walker {
	w := &Walker{
		extractor: extractor,
		logf:      log.Printf,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// CompileExcludes compiles path exclude patterns.
func CompileExcludes(patterns []string) ([]glob.Glob, error) {
	globs := make([]glob.Glob, 0, len(patterns))
	for _, p := range patterns {
		g, err := glob.Compile(p)
		if err != nil {
			return nil, fmt.Errorf("invalid exclude pattern %q: %w", p, err)
		}
		globs = append(globs, g)
	}
	return globs, nil
}

// Walk extracts every declaration under the document root. The root itself
// is the container, not a record; its children start with an empty
// ancestor path and the root as parent.
func (w *Walker) Walk(doc *typedoc.Document) *Result {
	res := &Result{}
	if doc == nil {
		return res
	}
	root := &doc.Declaration
	anc := Ancestry{Parent: root}
	if root.Kind.IsModuleLike() {
		anc.Module = root
	}
	for _, child := range root.Children {
		w.walkNode(child, anc, res)
	}
	return res
}

func (w *Walker) walkNode(node *typedoc.Declaration, anc Ancestry, res *Result) {
	if node == nil {
		return
	}

	fullPath := node.Name
	if anc.Path != "" {
		fullPath = anc.Path + "." + node.Name
	}
	for _, g := range w.excludes {
		if g.Match(fullPath) {
			res.Excluded++
			return
		}
	}

	rec, err := w.safeExtract(node, anc)
	if err != nil {
		w.warnf(res, "failed to extract %q: %v", node.Name, err)
		return
	}
	res.Records = append(res.Records, rec)
	if w.progress != nil {
		w.progress(node)
	}

	childAnc := Ancestry{Path: rec.FullPath, Parent: node, Module: anc.Module}
	if node.Kind.IsModuleLike() {
		childAnc.Module = node
	}
	for _, child := range node.Children {
		w.walkNode(child, childAnc, res)
	}
}

// safeExtract converts extractor panics into errors so one malformed node
// cannot abort the run.
func (w *Walker) safeExtract(node *typedoc.Declaration, anc Ancestry) (rec *Record, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return w.extractor.Extract(node, anc)
}

func (w *Walker) warnf(res *Result, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	res.Warnings = append(res.Warnings, msg)
	if w.logf != nil {
		w.logf("Warning: %s", msg)
	}
}
