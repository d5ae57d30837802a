package logos

import "fmt"

// AgreementError is a data record, not a control-flow error: the
// agreement validator never fails, it only reports mismatches.
type AgreementError struct {
	Source  string
	Target  string
	Details string
}

func (e AgreementError) Error() string {
	return fmt.Sprintf("%s / %s: %s", e.Source, e.Target, e.Details)
}

// CheckAgreement runs the two agreement passes spec.md §4.5 describes
// over store: subject-verb number/person agreement, and modifier-head
// number agreement. Gender and case are the parser's responsibility
// (via agrees); this is a cross-check for what the parser's local
// decisions can still let through, such as a plural subject attached to
// a singular verb.
func CheckAgreement(store *Store) []AgreementError {
	var errs []AgreementError

	store.EachWithSyntax(func(id EntityID, text string, _ LemmaId, _ bool, flags MorphFlags, syn Syntax) {
		headFlags := store.Flags(syn.Head)
		headText := store.Text(syn.Head)

		switch syn.Role {
		case RoleSubject:
			if num := flags.Mask(NumberMask); num != 0 && headFlags.Mask(NumberMask) != 0 && num != headFlags.Mask(NumberMask) {
				errs = append(errs, AgreementError{Source: text, Target: headText, Details: "Number mismatch"})
			}
			if per := flags.Mask(PersonMask); per != 0 && headFlags.Mask(PersonMask) != 0 && per != headFlags.Mask(PersonMask) {
				errs = append(errs, AgreementError{Source: text, Target: headText, Details: "Person mismatch"})
			}

		case RoleModifier:
			if num := flags.Mask(NumberMask); num != 0 && headFlags.Mask(NumberMask) != 0 && num != headFlags.Mask(NumberMask) {
				errs = append(errs, AgreementError{Source: text, Target: headText, Details: "Number mismatch"})
			}
		}
	})

	return errs
}
