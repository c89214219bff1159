// Package alias tracks named credential profiles and decides which one to
// activate next.
//
// A Directory holds the ordered alias names, a fingerprint per alias of the
// token last stored under it, and the alias most recently activated. Tokens
// themselves never enter a Directory; they live in the keychain and are
// recognised here only by fingerprint.
package alias

import (
	"crypto/sha256"
	"encoding/hex"
	"slices"
	"strings"

	"github.com/cockroachdb/errors"
)

// FingerprintLen is the number of hex characters kept from the SHA-256
// digest. Persisted fingerprints depend on it.
const FingerprintLen = 16

var (
	// ErrInsufficientAliases is returned when cycling with fewer than two aliases.
	ErrInsufficientAliases = errors.New("need at least 2 aliases to cycle")
	// ErrIdenticalNames is returned when renaming an alias to itself.
	ErrIdenticalNames = errors.New("from and to alias are identical")
	// ErrAliasExists is returned when a rename target is already taken.
	ErrAliasExists = errors.New("alias already exists")
	// ErrEmptyName is returned for blank alias names.
	ErrEmptyName = errors.New("alias name is empty")
)

// Directory is the alias table persisted between invocations.
//
// Fingerprint keys are always a subset of Aliases, and LastUsed is either
// empty or one of Aliases.
type Directory struct {
	Aliases      []string          `yaml:"aliases"`
	Fingerprints map[string]string `yaml:"fingerprints"`
	LastUsed     string            `yaml:"last_used_alias,omitempty"`
}

// Fingerprint returns a short, stable tag for a token. It is meant for local
// recognition only and must not be used to authenticate anything.
func Fingerprint(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])[:FingerprintLen]
}

// Has reports whether name is a known alias.
func (d *Directory) Has(name string) bool {
	return slices.Contains(d.Aliases, name)
}

// Ensure appends name to the cycle order if it is not already present.
func (d *Directory) Ensure(name string) {
	if !d.Has(name) {
		d.Aliases = append(d.Aliases, name)
	}
}

// Record stores the fingerprint of token under name, adding name to the
// directory if needed.
func (d *Directory) Record(name, token string) {
	d.Ensure(name)
	if d.Fingerprints == nil {
		d.Fingerprints = make(map[string]string)
	}
	d.Fingerprints[name] = Fingerprint(strings.TrimSpace(token))
}

// Resolve returns the alias whose recorded fingerprint matches the active
// token. Surrounding whitespace on the token is ignored. ok is false when
// nothing matches, which is an ordinary outcome.
func (d *Directory) Resolve(activeToken string) (name string, ok bool) {
	fp := Fingerprint(strings.TrimSpace(activeToken))
	// Walk in cycle order so the answer is stable if two aliases share a token.
	for _, a := range d.Aliases {
		if d.Fingerprints[a] == fp {
			return a, true
		}
	}
	for a, v := range d.Fingerprints {
		if v == fp {
			return a, true
		}
	}
	return "", false
}

// ChooseNext picks the alias that follows current in aliases. An empty
// current selects the first alias. A current that is not in aliases is
// treated as if it sat at index 0, so cycling still moves forward after an
// out-of-band rename or removal.
func ChooseNext(aliases []string, current string) (string, error) {
	if len(aliases) < 2 {
		return "", errors.WithHint(ErrInsufficientAliases, "add more with 'set <alias>'")
	}
	if current == "" {
		return aliases[0], nil
	}
	idx := slices.Index(aliases, current)
	if idx < 0 {
		// TODO: an unknown current lands on the second alias; revisit whether
		// it should restart from the first one instead.
		idx = 0
	}
	return aliases[(idx+1)%len(aliases)], nil
}

// CheckRename validates a rename without changing anything.
func (d *Directory) CheckRename(from, to string) error {
	if from == "" || to == "" {
		return ErrEmptyName
	}
	if from == to {
		return ErrIdenticalNames
	}
	if d.Has(to) {
		return errors.Wrapf(ErrAliasExists, "alias %q", to)
	}
	return nil
}

// Rename gives alias from the name to, keeping its position in the cycle
// order, its fingerprint and its last-used mark. If from is missing from the
// order, to is appended. Callers migrate the keychain entry first.
func (d *Directory) Rename(from, to string) error {
	if err := d.CheckRename(from, to); err != nil {
		return err
	}

	if idx := slices.Index(d.Aliases, from); idx >= 0 {
		d.Aliases[idx] = to
	} else {
		d.Aliases = append(d.Aliases, to)
	}

	if fp, ok := d.Fingerprints[from]; ok {
		delete(d.Fingerprints, from)
		d.Fingerprints[to] = fp
	}

	if d.LastUsed == from {
		d.LastUsed = to
	}
	return nil
}

// Delete drops name and everything keyed by it. Deleting an unknown alias
// is a no-op.
func (d *Directory) Delete(name string) {
	d.Aliases = slices.DeleteFunc(d.Aliases, func(a string) bool { return a == name })
	delete(d.Fingerprints, name)
	if d.LastUsed == name {
		d.LastUsed = ""
	}
}

// Normalize repairs a directory that violates its invariants, for example
// after a hand edit of the config file. It returns a description of each
// repair made.
func (d *Directory) Normalize() []string {
	var fixes []string

	seen := make(map[string]bool, len(d.Aliases))
	kept := d.Aliases[:0]
	for _, a := range d.Aliases {
		switch {
		case a == "":
			fixes = append(fixes, "dropped empty alias")
		case seen[a]:
			fixes = append(fixes, "dropped duplicate alias "+a)
		default:
			seen[a] = true
			kept = append(kept, a)
		}
	}
	d.Aliases = kept

	for a := range d.Fingerprints {
		if !seen[a] {
			delete(d.Fingerprints, a)
			fixes = append(fixes, "dropped fingerprint for unknown alias "+a)
		}
	}

	if d.LastUsed != "" && !seen[d.LastUsed] {
		fixes = append(fixes, "cleared unknown last used alias "+d.LastUsed)
		d.LastUsed = ""
	}
	return fixes
}
