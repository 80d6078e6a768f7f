// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathmacros

// Package vcshistory implements the "show history for revision" action of a change list.
//
// The action only dispatches: history rendering is done by a log-based history provider
// when it can handle the file, otherwise by the VCS helper using the VCS's own provider.
package vcshistory

import "context"

// FilePath is a slash-separated path of a versioned file.
type FilePath string

// RevisionNumber identifies a revision, empty means absent.
type RevisionNumber string

// ChangeType is the kind of a change list entry.
type ChangeType uint8

const (
	// ChangeModified is an edited file.
	ChangeModified ChangeType = iota
	// ChangeNew is an added file.
	ChangeNew
	// ChangeDeleted is a removed file.
	ChangeDeleted
	// ChangeMoved is a renamed or moved file.
	ChangeMoved
)

// ContentRevision is one side of a change.
type ContentRevision struct {
	File   FilePath       `json:"file" yaml:"file"`
	Number RevisionNumber `json:"number" yaml:"number"`
}

// Change is one selected change list entry.
type Change struct {
	// Before is nil for new files.
	Before *ContentRevision `json:"before,omitempty" yaml:"before,omitempty"`
	// After is nil for deleted files.
	After *ContentRevision `json:"after,omitempty" yaml:"after,omitempty"`
	Type  ChangeType       `json:"type" yaml:"type"`
}

// Project is the owner of VCS configuration.
type Project interface {
	Name() string
	Disposed() bool
}

// HistoryProvider supplies file history of one VCS.
type HistoryProvider interface {
	VCSName() string
}

// RevisionHistoryProvider is a HistoryProvider able to start history at a revision.
type RevisionHistoryProvider interface {
	HistoryProvider
	LastRevision(ctx context.Context, path FilePath) (RevisionNumber, error)
}

// VCS is one configured version control system.
type VCS interface {
	Name() string
	// HistoryProvider returns nil when the VCS has no history support.
	HistoryProvider() HistoryProvider
}

// Helper shows VCS-specific history views.
type Helper interface {
	ShowFileHistory(ctx context.Context, provider RevisionHistoryProvider, path FilePath, vcs VCS, revision RevisionNumber) error
}

// LogHistoryProvider shows history from the unified VCS log.
type LogHistoryProvider interface {
	CanShowFileHistory(project Project, path FilePath) bool
	ShowFileHistory(ctx context.Context, project Project, path FilePath, revision string) error
}

// Services looks up collaborators of the action. Every method may return nil.
type Services interface {
	FindVCS(project Project, name string) VCS
	Helper(project Project) Helper
	LogHistoryProvider() LogHistoryProvider
}

// Event is the data context of one action invocation.
type Event struct {
	// Project is nil outside of a project.
	Project Project
	// VCSName names the VCS of the selected changes.
	VCSName string
	// RevisionNumber is the revision selected in the view, if any.
	RevisionNumber RevisionNumber
	// SelectedChanges are the selected change list entries.
	SelectedChanges []Change
}

// Presentation is the computed state of the action.
type Presentation struct {
	Visible bool
	Enabled bool
}
