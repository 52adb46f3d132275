package catalog

// AliasTable resolves informal or standards-body names (e.g. "316L", "UNS
// S31603", "HY-80") to the canonical common name used as the key into every
// other table in this package. It is itself loaded from
// materials_aliases.csv rather than hardcoded, so a new alloy's aliases can
// be added without a code change (spec.md Design Notes §9 supplement).
type AliasTable map[string]string

// Resolve normalizes alias and looks it up. It tries the alias table first,
// then falls back to treating the input as already canonical — this lets
// Resolve double as the single normalization point callers use before every
// catalog lookup.
func (a AliasTable) Resolve(name string) (canonical string, ok bool) {
	key := normalizeKey(name)
	if canon, found := a[key]; found {
		return canon, true
	}
	return key, false
}
