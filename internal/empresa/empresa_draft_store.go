package empresa

import (
	"reflect"
	"sync"

	empresaerrors "mi-ciec/internal/empresa/errors"
)

type DraftState string

const (
	StateEmpty                 DraftState = "empty"
	StateDirty                 DraftState = "dirty"
	StateSubmitting            DraftState = "submitting"
	StateDiscardConfirmPending DraftState = "discard_confirm_pending"
)

// DraftStore holds the single in-flight creation draft for the whole process.
// It survives navigation: closing the creation drawer does not clear it, only
// a successful save or a confirmed discard does.
type DraftStore struct {
	mu           sync.Mutex
	draft        Draft
	state        DraftState
	discardCount uint64
	drawerOpen   bool
	activePath   string
	editingPath  string
}

func NewDraftStore() *DraftStore {
	return &DraftStore{state: StateEmpty}
}

func (s *DraftStore) Snapshot() DraftSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return DraftSnapshot{
		Draft:        s.draft,
		State:        s.state,
		DrawerOpen:   s.drawerOpen,
		DiscardCount: s.discardCount,
	}
}

// Form returns a copy of the current form for merge-patching.
func (s *DraftStore) Form() FormData {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.draft.Form
}

// SetForm replaces the form and recomputes the Empty/Dirty state. Ignored
// while a submit or a discard confirmation is in flight.
func (s *DraftStore) SetForm(form FormData) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == StateSubmitting || s.state == StateDiscardConfirmPending {
		return empresaerrors.ErrSubmitInProgress
	}

	s.draft.Form = form
	if s.state == StateEmpty && s.isDirtyLocked() {
		s.editingPath = s.activePath
	}
	s.recomputeLocked()
	return nil
}

// StageLogo stores the file bytes without uploading; the upload happens on
// save so an abandoned draft never leaves an orphan object behind.
func (s *DraftStore) StageLogo(data []byte, contentType string, preview string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == StateSubmitting || s.state == StateDiscardConfirmPending {
		return empresaerrors.ErrSubmitInProgress
	}

	s.draft.LogoData = data
	s.draft.LogoContentType = contentType
	s.draft.LogoPreview = &preview
	if s.state == StateEmpty {
		s.editingPath = s.activePath
	}
	s.recomputeLocked()
	return nil
}

func (s *DraftStore) ClearLogo() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == StateSubmitting || s.state == StateDiscardConfirmPending {
		return empresaerrors.ErrSubmitInProgress
	}

	s.draft.LogoData = nil
	s.draft.LogoContentType = ""
	s.draft.LogoPreview = nil
	s.recomputeLocked()
	return nil
}

// BeginSubmit moves Dirty to Submitting and hands back the draft to persist.
// A second save while one is in flight is refused.
func (s *DraftStore) BeginSubmit() (Draft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch s.state {
	case StateSubmitting:
		return Draft{}, empresaerrors.ErrSubmitInProgress
	case StateEmpty:
		return Draft{}, empresaerrors.ErrDraftEmpty
	case StateDiscardConfirmPending:
		return Draft{}, empresaerrors.ErrNoDiscardPending
	}
	s.state = StateSubmitting
	return s.draft, nil
}

// FinishSubmit resolves the Submitting state: success resets everything
// (including the drawer), failure preserves the draft for correction.
func (s *DraftStore) FinishSubmit(success bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateSubmitting {
		return
	}
	if success {
		s.resetLocked()
		s.drawerOpen = false
		return
	}
	s.state = StateDirty
}

// RequestDiscard asks to throw the draft away. A dirty draft is not cleared
// until the discard is confirmed; an empty one has nothing to confirm.
func (s *DraftStore) RequestDiscard() (DraftState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch s.state {
	case StateSubmitting:
		return s.state, empresaerrors.ErrSubmitInProgress
	case StateEmpty:
		s.drawerOpen = false
		return s.state, nil
	case StateDiscardConfirmPending:
		return s.state, nil
	}
	s.state = StateDiscardConfirmPending
	return s.state, nil
}

func (s *DraftStore) ConfirmDiscard() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateDiscardConfirmPending {
		return empresaerrors.ErrNoDiscardPending
	}
	s.resetLocked()
	s.drawerOpen = false
	s.discardCount++
	return nil
}

func (s *DraftStore) CancelDiscard() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateDiscardConfirmPending {
		return empresaerrors.ErrNoDiscardPending
	}
	s.state = StateDirty
	return nil
}

func (s *DraftStore) DiscardCount() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.discardCount
}

func (s *DraftStore) OpenDrawer() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.drawerOpen = true
	s.editingPath = s.activePath
}

func (s *DraftStore) CloseDrawer() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.drawerOpen = false
}

// SetActivePath records the navigation context. Leaving the context where a
// dirty draft was started force-closes the drawer but keeps the draft.
func (s *DraftStore) SetActivePath(path string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.activePath = path
	if s.state == StateDirty && path != s.editingPath {
		s.drawerOpen = false
	}
}

func (s *DraftStore) resetLocked() {
	s.draft = Draft{}
	s.state = StateEmpty
	s.editingPath = ""
}

func (s *DraftStore) isDirtyLocked() bool {
	return !reflect.DeepEqual(s.draft, Draft{})
}

func (s *DraftStore) recomputeLocked() {
	if s.isDirtyLocked() {
		s.state = StateDirty
	} else {
		s.state = StateEmpty
	}
}
