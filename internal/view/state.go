/*
Package view holds the state machines behind the tracker screens.

List screens move through loading, idle and submitting, with an error phase reachable from
loading and submitting. Dialogs are closed, open for create, or open for edit. The state
types have unexported fields, so only the transitions in this package can change them and
combinations such as "submitting before anything was loaded" cannot be built.

Views never show raw errors: they keep a fixed message for the user and log the cause.
*/
package view

import (
	"context"
	"errors"
)

// ErrNotLoaded is returned when a mutation is attempted before the list was loaded once.
var ErrNotLoaded = errors.New("view: list not loaded")

// ErrBusy is returned when a mutation is attempted while another one is in flight.
var ErrBusy = errors.New("view: a change is already being saved")

// Phase is the position of a list view in its lifecycle.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseLoading
	PhaseSubmitting
	PhaseError
)

func (p Phase) String() string {
	switch p {
	case PhaseLoading:
		return "loading"
	case PhaseSubmitting:
		return "submitting"
	case PhaseError:
		return "error"
	default:
		return "idle"
	}
}

// ListState is a snapshot of a list view. The zero value is idle and not yet loaded.
type ListState[T any] struct {
	phase  Phase
	items  []T
	loaded bool
	err    string
}

func (s ListState[T]) Phase() Phase { return s.phase }

// Items returns a copy of the last successfully loaded items.
func (s ListState[T]) Items() []T {
	out := make([]T, len(s.items))
	copy(out, s.items)
	return out
}

// Loaded reports whether a load has succeeded at least once.
func (s ListState[T]) Loaded() bool { return s.loaded }

// Err is the user-facing message of the error phase, or "".
func (s ListState[T]) Err() string { return s.err }

func (s *ListState[T]) startLoading() {
	s.phase, s.err = PhaseLoading, ""
}

func (s *ListState[T]) succeed(items []T) {
	s.phase, s.items, s.loaded, s.err = PhaseIdle, items, true, ""
}

// settle returns to idle after a mutation without touching the items.
func (s *ListState[T]) settle() {
	s.phase, s.err = PhaseIdle, ""
}

// fail keeps the previous items so a failed request never loses what was shown.
func (s *ListState[T]) fail(msg string) {
	s.phase, s.err = PhaseError, msg
}

func (s *ListState[T]) startSubmitting() error {
	if !s.loaded {
		return ErrNotLoaded
	}
	if s.phase == PhaseSubmitting {
		return ErrBusy
	}
	s.phase, s.err = PhaseSubmitting, ""
	return nil
}

// DialogMode says whether the form dialog is shown and for what.
type DialogMode int

const (
	DialogClosed DialogMode = iota
	DialogCreate
	DialogEdit
)

func (m DialogMode) String() string {
	switch m {
	case DialogCreate:
		return "open-create"
	case DialogEdit:
		return "open-edit"
	default:
		return "closed"
	}
}

// Dialog is a snapshot of a form dialog. EditingID is set only in DialogEdit.
type Dialog[F any] struct {
	mode      DialogMode
	editingID string
	form      F
}

func (d Dialog[F]) Mode() DialogMode  { return d.mode }
func (d Dialog[F]) EditingID() string { return d.editingID }
func (d Dialog[F]) Form() F           { return d.form }
func (d Dialog[F]) Open() bool        { return d.mode != DialogClosed }

func (d *Dialog[F]) openCreate(form F) {
	d.mode, d.editingID, d.form = DialogCreate, "", form
}

func (d *Dialog[F]) openEdit(id string, form F) {
	d.mode, d.editingID, d.form = DialogEdit, id, form
}

func (d *Dialog[F]) close() {
	var zero F
	d.mode, d.editingID, d.form = DialogClosed, "", zero
}

// Confirmer asks the user to approve a destructive action.
type Confirmer interface {
	Confirm(ctx context.Context, prompt string) bool
}

// ConfirmFunc adapts a function to Confirmer.
type ConfirmFunc func(ctx context.Context, prompt string) bool

func (f ConfirmFunc) Confirm(ctx context.Context, prompt string) bool { return f(ctx, prompt) }

// saveMessage prefers the server's message for failed saves.
func saveMessage(remote string) string {
	if remote != "" {
		return remote
	}
	return MsgSaveFailed
}
