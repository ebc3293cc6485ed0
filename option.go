// Copyright IBM Corp. 2023, 2025
// SPDX-License-Identifier: MPL-2.0

package jars

import (
	"sort"
	"strings"
)

// metaInfDir is the directory holding the manifest and signatures of a jar.
const metaInfDir = "META-INF"

// MatchMode defines how the target and extension filters of an [Option]
// are combined.
type MatchMode int

const (
	// MatchAll accepts an entry only if it passes both filters. A filter
	// without values passes every entry.
	MatchAll MatchMode = iota

	// MatchAny accepts an entry if it passes at least one filter. Because a
	// filter without values passes every entry, setting only targets (or
	// only extensions) has no filtering effect in this mode.
	MatchAny
)

// String returns the name of the mode.
func (m MatchMode) String() string {
	switch m {
	case MatchAll:
		return "all"
	case MatchAny:
		return "any"
	default:
		return "unknown"
	}
}

// ExtensionMode defines how the extension of an entry is compared against
// the registered extensions.
type ExtensionMode int

const (
	// ExtensionExact requires the text after the last dot to equal a
	// registered extension.
	ExtensionExact ExtensionMode = iota

	// ExtensionSuffix requires the text after the last dot to end with a
	// registered extension, so "ass" matches "Object.class".
	ExtensionSuffix
)

// String returns the name of the mode.
func (m ExtensionMode) String() string {
	switch m {
	case ExtensionExact:
		return "exact"
	case ExtensionSuffix:
		return "suffix"
	default:
		return "unknown"
	}
}

// Option defines which entries of an archive are extracted. An Option is
// immutable and safe for concurrent use. Use [Builder] to create one, or
// [DefaultOption] to extract everything.
type Option struct {
	targets       map[string]struct{}
	extensions    map[string]struct{}
	matchMode     MatchMode
	extensionMode ExtensionMode
}

// DefaultOption returns an [Option] without any target or extension, which
// accepts every file entry of an archive.
func DefaultOption() Option {
	return Builder().Build()
}

// Targets returns the registered path prefixes in sorted order.
func (o Option) Targets() []string {
	return sortedKeys(o.targets)
}

// Extensions returns the registered extensions in sorted order.
func (o Option) Extensions() []string {
	return sortedKeys(o.extensions)
}

// MatchMode returns how the target and extension filters are combined.
func (o Option) MatchMode() MatchMode {
	return o.matchMode
}

// ExtensionMode returns how extensions are compared.
func (o Option) ExtensionMode() ExtensionMode {
	return o.extensionMode
}

// TargetMatch reports whether name starts with any registered target. The
// comparison is a plain string prefix check without regard to path
// segments, so the target "java/la" matches "java/lang/Object.class".
// It returns true if no target is registered.
func (o Option) TargetMatch(name string) bool {
	if len(o.targets) == 0 {
		return true
	}
	for target := range o.targets {
		if strings.HasPrefix(name, target) {
			return true
		}
	}
	return false
}

// ExtMatch reports whether the extension of name, which is everything after
// the last dot, matches any registered extension. A name without a dot
// never matches. It returns true if no extension is registered.
func (o Option) ExtMatch(name string) bool {
	if len(o.extensions) == 0 {
		return true
	}
	i := strings.LastIndexByte(name, '.')
	if i < 0 {
		return false
	}
	ext := name[i+1:]
	if o.extensionMode == ExtensionExact {
		_, ok := o.extensions[ext]
		return ok
	}
	for e := range o.extensions {
		if strings.HasSuffix(ext, e) {
			return true
		}
	}
	return false
}

// Match reports whether an entry with the given name is extracted.
func (o Option) Match(name string) bool {
	if o.matchMode == MatchAny {
		return o.TargetMatch(name) || o.ExtMatch(name)
	}
	return o.TargetMatch(name) && o.ExtMatch(name)
}

// OptionBuilder accumulates targets and extensions for an [Option]. An
// OptionBuilder is consumed by [OptionBuilder.Build]; using it afterwards
// panics.
type OptionBuilder struct {
	targets       map[string]struct{}
	extensions    map[string]struct{}
	matchMode     MatchMode
	extensionMode ExtensionMode
	built         bool
}

// Builder creates an empty [OptionBuilder]. Building it right away results
// in an [Option] that accepts every entry.
func Builder() *OptionBuilder {
	return &OptionBuilder{
		targets:    make(map[string]struct{}),
		extensions: make(map[string]struct{}),
	}
}

// checkUsable panics if b has already been built.
func (b *OptionBuilder) checkUsable() {
	if b.built {
		panic("jars: OptionBuilder used after Build")
	}
}

// KeepMetaInfo adds the META-INF directory to the targets.
func (b *OptionBuilder) KeepMetaInfo() *OptionBuilder {
	return b.Target(metaInfDir)
}

// Target adds a path prefix, e.g. "java/lang". Entries are extracted if
// their path starts with any target. Adding a target twice has no effect.
func (b *OptionBuilder) Target(target string) *OptionBuilder {
	b.checkUsable()
	b.targets[target] = struct{}{}
	return b
}

// Targets adds multiple path prefixes, see [OptionBuilder.Target].
func (b *OptionBuilder) Targets(targets ...string) *OptionBuilder {
	for _, t := range targets {
		b.Target(t)
	}
	return b
}

// Ext adds a file extension, e.g. "class". A leading dot is removed. Adding
// an extension twice has no effect.
func (b *OptionBuilder) Ext(ext string) *OptionBuilder {
	b.checkUsable()
	b.extensions[strings.TrimPrefix(ext, ".")] = struct{}{}
	return b
}

// Exts adds multiple file extensions, see [OptionBuilder.Ext].
func (b *OptionBuilder) Exts(exts ...string) *OptionBuilder {
	for _, e := range exts {
		b.Ext(e)
	}
	return b
}

// MatchAny switches to [MatchAny], which extracts an entry if it matches a
// target or an extension.
func (b *OptionBuilder) MatchAny() *OptionBuilder {
	b.checkUsable()
	b.matchMode = MatchAny
	return b
}

// ExtensionSuffix switches to [ExtensionSuffix] comparison of extensions.
func (b *OptionBuilder) ExtensionSuffix() *OptionBuilder {
	b.checkUsable()
	b.extensionMode = ExtensionSuffix
	return b
}

// Legacy selects [MatchAny] and [ExtensionSuffix], the permissive legacy
// matching.
func (b *OptionBuilder) Legacy() *OptionBuilder {
	return b.MatchAny().ExtensionSuffix()
}

// Build finalizes the builder into an immutable [Option].
func (b *OptionBuilder) Build() Option {
	b.checkUsable()
	b.built = true
	o := Option{
		targets:       b.targets,
		extensions:    b.extensions,
		matchMode:     b.matchMode,
		extensionMode: b.extensionMode,
	}
	b.targets, b.extensions = nil, nil
	return o
}

// sortedKeys returns the keys of set in ascending order.
func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
