package course

import "fmt"

// AddRequisite records rc as a requisite of kind for the target course tc.
// A later call for the same pair replaces the kind.
func AddRequisite(rc, tc Item, kind Requisite) error {
	if rc == nil || tc == nil {
		return ErrNilCourse
	}
	tc.base().setRequisite(rc.ID(), kind)

	return nil
}

// AddRequisites records rcs[i] as a kinds[i] requisite of tc.
func AddRequisites(rcs []Item, tc Item, kinds []Requisite) error {
	if len(rcs) != len(kinds) {
		return fmt.Errorf("%w: %d courses, %d kinds", ErrLengthMismatch, len(rcs), len(kinds))
	}
	for i, rc := range rcs {
		if err := AddRequisite(rc, tc, kinds[i]); err != nil {
			return err
		}
	}

	return nil
}

// DeleteRequisite removes rc as a requisite of tc.
func DeleteRequisite(rc, tc Item) error {
	if rc == nil || tc == nil {
		return ErrNilCourse
	}
	if !tc.base().deleteRequisite(rc.ID()) {
		return fmt.Errorf("%w: %s is not a requisite of %s", ErrRequisiteNotFound, rc.ID(), tc.ID())
	}

	return nil
}

// SetRequisiteByID records requisite id as a kind-requisite of tc. Loaders use
// it to wire requisites before the requisite course object exists.
func SetRequisiteByID(tc Item, id string, kind Requisite) error {
	if tc == nil {
		return ErrNilCourse
	}
	tc.base().setRequisite(id, kind)

	return nil
}

// DeleteRequisiteByID removes requisite id from tc.
func DeleteRequisiteByID(tc Item, id string) error {
	if tc == nil {
		return ErrNilCourse
	}
	if !tc.base().deleteRequisite(id) {
		return fmt.Errorf("%w: %s is not a requisite of %s", ErrRequisiteNotFound, id, tc.ID())
	}

	return nil
}
