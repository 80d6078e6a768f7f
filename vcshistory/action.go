// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathmacros

package vcshistory

import (
	"context"
	"fmt"

	"github.com/woozymasta/pathmacros/internal/logger"
)

var log = logger.GetLogger("vcshistory")

// Action shows file history for the revision of the single selected change.
type Action struct {
	services Services
}

// NewAction creates action resolving collaborators through services.
func NewAction(services Services) *Action {
	return &Action{services: services}
}

// Update computes visibility and enablement for the event.
func (a *Action) Update(ev Event) Presentation {
	visible := a.isVisible(ev)
	return Presentation{
		Visible: visible,
		Enabled: visible && a.isEnabled(ev),
	}
}

// Perform shows the history.
//
// The log-based provider is preferred when it can show the file; otherwise the VCS
// helper is used with the VCS's revision-aware provider.
func (a *Action) Perform(ctx context.Context, ev Event) error {
	if ev.Project == nil {
		return fmt.Errorf("%w: no project", ErrMissingData)
	}

	vcs := a.findVCS(ev.Project, ev.VCSName)
	if vcs == nil {
		return fmt.Errorf("%w: vcs %q not found", ErrMissingData, ev.VCSName)
	}

	file, revision, ok := a.fileAndRevision(ev)
	if !ok {
		return fmt.Errorf("%w: expected exactly one change with content", ErrMissingData)
	}

	if a.canShowLogHistory(ev.Project, file) {
		log.Debugf("Showing log history of %s at %s", file, revision)
		return a.services.LogHistoryProvider().ShowFileHistory(ctx, ev.Project, file, string(revision))
	}

	provider, ok := vcs.HistoryProvider().(RevisionHistoryProvider)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnsupportedProvider, vcs.Name())
	}

	helper := a.services.Helper(ev.Project)
	if helper == nil {
		return ErrNoHelper
	}

	log.Debugf("Showing %s history of %s at %s", vcs.Name(), file, revision)
	return helper.ShowFileHistory(ctx, provider, file, vcs, revision)
}

// isVisible requires a live project, a helper and a VCS with revision-aware history.
func (a *Action) isVisible(ev Event) bool {
	if ev.Project == nil || ev.Project.Disposed() {
		return false
	}

	if a.services.Helper(ev.Project) == nil {
		return false
	}

	vcs := a.findVCS(ev.Project, ev.VCSName)
	if vcs == nil {
		return false
	}

	_, ok := vcs.HistoryProvider().(RevisionHistoryProvider)
	return ok
}

// isEnabled requires a file and revision derivable from the selection.
func (a *Action) isEnabled(ev Event) bool {
	_, _, ok := a.fileAndRevision(ev)
	return ok
}

// fileAndRevision derives the target of the single selected change.
//
// Deleted files use the revision before deletion; when the log view can show the
// file, an explicitly selected revision takes precedence.
func (a *Action) fileAndRevision(ev Event) (FilePath, RevisionNumber, bool) {
	if len(ev.SelectedChanges) != 1 {
		return "", "", false
	}

	change := ev.SelectedChanges[0]
	content := change.After
	if change.Type == ChangeDeleted {
		content = change.Before
	}

	if content == nil {
		return "", "", false
	}

	if change.Type != ChangeDeleted {
		return content.File, content.Number, true
	}

	if ev.Project == nil || !a.canShowLogHistory(ev.Project, content.File) || ev.RevisionNumber == "" {
		return content.File, content.Number, true
	}

	return content.File, ev.RevisionNumber, true
}

// canShowLogHistory reports whether the log-based provider handles path.
func (a *Action) canShowLogHistory(project Project, path FilePath) bool {
	provider := a.services.LogHistoryProvider()
	return provider != nil && provider.CanShowFileHistory(project, path)
}

// findVCS resolves VCS by name, empty name means none.
func (a *Action) findVCS(project Project, name string) VCS {
	if name == "" {
		return nil
	}

	return a.services.FindVCS(project, name)
}
