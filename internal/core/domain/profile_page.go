package domain

import "fmt"

// PageStatus is the lifecycle state of a mounted profile page.
type PageStatus string

const (
	PageUnmounted    PageStatus = ""
	PageLoading      PageStatus = "loading"
	PageLoaded       PageStatus = "loaded"
	PageUnauthorized PageStatus = "unauthorized"
	PageError        PageStatus = "error"
)

// pageTransitions defines the allowed state machine transitions.
// Unauthorized and Error are terminal for the mount.
var pageTransitions = map[PageStatus][]PageStatus{
	PageUnmounted: {PageLoading, PageUnauthorized},
	PageLoading:   {PageLoaded, PageError, PageUnauthorized},
}

// CanTransitionTo reports whether a transition from s to next is valid.
func (s PageStatus) CanTransitionTo(next PageStatus) bool {
	for _, allowed := range pageTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Terminal reports whether the page can no longer change status.
func (s PageStatus) Terminal() bool {
	return s == PageUnauthorized || s == PageError
}

// EditState holds the in-progress edit of a single field. A zero Field means
// the page is viewing.
type EditState struct {
	Field Field  `json:"field,omitempty"`
	Value string `json:"value,omitempty"`
}

func (e EditState) Active() bool { return e.Field != "" }

// ProfilePage is the state of one profile page mount: the held copy of the
// profile plus the edit state. Generation increases on every edit-mode change
// and on every issued save, so responses to anything but the latest save can
// be told apart and dropped.
type ProfilePage struct {
	ProfileID  UserID       `json:"profile_id"`
	Status     PageStatus   `json:"status"`
	Profile    *UserProfile `json:"profile,omitempty"`
	Edit       EditState    `json:"edit"`
	Generation uint64       `json:"generation"`
	SaveError  string       `json:"save_error,omitempty"`
}

// PendingSave is a save captured from the page before the network call.
type PendingSave struct {
	Field      Field
	Value      string
	Generation uint64
}

func NewProfilePage(id UserID) *ProfilePage {
	return &ProfilePage{ProfileID: ParseUserID(string(id))}
}

func (p *ProfilePage) transition(next PageStatus) error {
	if !p.Status.CanTransitionTo(next) {
		return fmt.Errorf("%w (from %q to %q)", ErrInvalidTransition, p.Status, next)
	}
	p.Status = next
	return nil
}

// Deny marks the mount as rejected by the access guard.
func (p *ProfilePage) Deny() error { return p.transition(PageUnauthorized) }

// StartLoading marks the guarded GET as in flight.
func (p *ProfilePage) StartLoading() error { return p.transition(PageLoading) }

// Fail marks the load as failed. The profile stays nil.
func (p *ProfilePage) Fail() error { return p.transition(PageError) }

// Load stores the fetched profile and enters Viewing.
func (p *ProfilePage) Load(profile UserProfile) error {
	if err := p.transition(PageLoaded); err != nil {
		return err
	}
	p.Profile = &profile
	p.Edit = EditState{}
	return nil
}

// Editing returns the field in edit mode, if any.
func (p *ProfilePage) Editing() (Field, bool) {
	return p.Edit.Field, p.Edit.Active()
}

// DisplayValue is what the page shows for f: always the held copy, never the
// unsaved edit buffer.
func (p *ProfilePage) DisplayValue(f Field) string {
	return p.Profile.Value(f)
}

// BeginEdit enters edit mode for f, seeding the buffer with the current value.
// Any edit in progress on another field is abandoned unsaved.
func (p *ProfilePage) BeginEdit(f Field) error {
	if p.Status != PageLoaded {
		return ErrProfileNotLoaded
	}
	if !f.Editable() {
		return fmt.Errorf("%w: %s", ErrFieldNotEditable, f)
	}
	p.Edit = EditState{Field: f, Value: p.Profile.Value(f)}
	p.SaveError = ""
	p.Generation++
	return nil
}

// Input replaces the edit buffer. Nothing is persisted.
func (p *ProfilePage) Input(v string) error {
	if !p.Edit.Active() {
		return ErrNotEditing
	}
	p.Edit.Value = v
	return nil
}

// Cancel leaves edit mode and discards the buffer. The held copy is untouched.
func (p *ProfilePage) Cancel() {
	if !p.Edit.Active() {
		return
	}
	p.Edit = EditState{}
	p.SaveError = ""
	p.Generation++
}

// PrepareSave captures the field and buffer for a save request and issues it
// a fresh generation, so only the most recently issued save can apply.
func (p *ProfilePage) PrepareSave() (PendingSave, error) {
	if p.Status != PageLoaded {
		return PendingSave{}, ErrProfileNotLoaded
	}
	if !p.Edit.Active() {
		return PendingSave{}, ErrNotEditing
	}
	p.Generation++
	return PendingSave{Field: p.Edit.Field, Value: p.Edit.Value, Generation: p.Generation}, nil
}

func (p *ProfilePage) current(s PendingSave) bool {
	return s.Generation == p.Generation && p.Edit.Field == s.Field
}

// ApplySave merges a successful save into the held copy and returns to
// Viewing with an empty buffer. A save superseded by a later edit-mode change
// or a later save is rejected with ErrStaleResponse.
func (p *ProfilePage) ApplySave(s PendingSave) error {
	if !p.current(s) {
		return ErrStaleResponse
	}
	if err := p.Profile.Set(s.Field, s.Value); err != nil {
		return err
	}
	p.Edit = EditState{}
	p.SaveError = ""
	p.Generation++
	return nil
}

// RejectSave records a failed save. The page stays in edit mode on the same
// field and nothing is reverted.
func (p *ProfilePage) RejectSave(s PendingSave, message string) error {
	if !p.current(s) {
		return ErrStaleResponse
	}
	p.SaveError = message
	return nil
}
