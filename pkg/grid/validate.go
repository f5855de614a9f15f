package grid

import (
	"slices"

	apperr "github.com/newjenk/gridsystem/pkg/errors"
)

// Issue is one validation finding for an attribute key.
type Issue struct {
	Key string
	Err *apperr.Error
}

func (i Issue) Error() string { return i.Key + ": " + i.Err.Message }

// Validate checks attrs against the domains the editor controls allow. It is
// the editor-control layer's contract, not the engine's: Emit and Resolve
// accept anything. Issues are returned in key order of k.Keys, with unknown
// keys last in sorted order. SupportKeys are always accepted.
func Validate(k *Kind, attrs Attributes) []Issue {
	var issues []Issue
	known := append(k.Keys(), SupportKeys...)

	for _, key := range k.Flags {
		if err := apperr.ValidateFlag(key, attrs[key]); err != nil {
			issues = append(issues, Issue{Key: key, Err: err.(*apperr.Error)})
		}
	}
	for _, bp := range Breakpoints() {
		if k.Visibility {
			key := k.VisibilityKeys[bp]
			if err := apperr.ValidateFlag(key, attrs[key]); err != nil {
				issues = append(issues, Issue{Key: key, Err: err.(*apperr.Error)})
			}
		}
		for _, p := range k.Properties {
			key := p.Keys[bp]
			v := attrs.Lookup(key)
			if !v.IsSet() {
				continue
			}
			if err := validateToken(p.Domain, v.Token()); err != nil {
				issues = append(issues, Issue{Key: key, Err: err})
			}
		}
	}

	var unknown []string
	for key := range attrs {
		if !slices.Contains(known, key) {
			unknown = append(unknown, key)
		}
	}
	slices.Sort(unknown)
	for _, key := range unknown {
		issues = append(issues, Issue{Key: key, Err: apperr.UnknownAttribute(key, known)})
	}
	return issues
}

func validateToken(d Domain, tok string) *apperr.Error {
	var err error
	switch d {
	case DomainSize:
		err = apperr.ValidateColumnSize(tok)
	case DomainOffset:
		err = apperr.ValidateOffset(tok)
	case DomainOrder:
		err = apperr.ValidateOrder(tok)
	case DomainAlignItems:
		err = apperr.ValidateAlignItems(tok)
	case DomainJustifyContent:
		err = apperr.ValidateJustifyContent(tok)
	case DomainPadding:
		err = apperr.ValidatePadding(tok)
	}
	if err == nil {
		return nil
	}
	return err.(*apperr.Error)
}
