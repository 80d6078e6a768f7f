// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathmacros

package vcshistory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

type fakeProject struct {
	name     string
	disposed bool
}

func (p *fakeProject) Name() string   { return p.name }
func (p *fakeProject) Disposed() bool { return p.disposed }

type plainProvider struct{}

func (plainProvider) VCSName() string { return "svn" }

type revisionProvider struct{}

func (revisionProvider) VCSName() string { return "git" }

func (revisionProvider) LastRevision(context.Context, FilePath) (RevisionNumber, error) {
	return "HEAD", nil
}

type fakeVCS struct {
	provider HistoryProvider
	name     string
}

func (v *fakeVCS) Name() string                     { return v.name }
func (v *fakeVCS) HistoryProvider() HistoryProvider { return v.provider }

type helperCall struct {
	path     FilePath
	revision RevisionNumber
	vcs      string
}

type fakeHelper struct {
	calls []helperCall
}

func (h *fakeHelper) ShowFileHistory(_ context.Context, _ RevisionHistoryProvider, path FilePath, vcs VCS, revision RevisionNumber) error {
	h.calls = append(h.calls, helperCall{path: path, revision: revision, vcs: vcs.Name()})
	return nil
}

type logCall struct {
	path     FilePath
	revision string
}

type fakeLogProvider struct {
	calls []logCall
	show  bool
}

func (l *fakeLogProvider) CanShowFileHistory(Project, FilePath) bool { return l.show }

func (l *fakeLogProvider) ShowFileHistory(_ context.Context, _ Project, path FilePath, revision string) error {
	l.calls = append(l.calls, logCall{path: path, revision: revision})
	return nil
}

type fakeServices struct {
	vcs    map[string]VCS
	helper *fakeHelper
	log    *fakeLogProvider
}

func (s *fakeServices) FindVCS(_ Project, name string) VCS {
	v, ok := s.vcs[name]
	if !ok {
		return nil
	}
	return v
}

func (s *fakeServices) Helper(Project) Helper {
	if s.helper == nil {
		return nil
	}
	return s.helper
}

func (s *fakeServices) LogHistoryProvider() LogHistoryProvider {
	if s.log == nil {
		return nil
	}
	return s.log
}

func newServices() *fakeServices {
	return &fakeServices{
		vcs: map[string]VCS{
			"git": &fakeVCS{name: "git", provider: revisionProvider{}},
			"svn": &fakeVCS{name: "svn", provider: plainProvider{}},
			"cvs": &fakeVCS{name: "cvs"},
		},
		helper: &fakeHelper{},
	}
}

func modified(path FilePath, rev RevisionNumber) Change {
	return Change{
		Type:   ChangeModified,
		Before: &ContentRevision{File: path, Number: "base"},
		After:  &ContentRevision{File: path, Number: rev},
	}
}

func deleted(path FilePath, rev RevisionNumber) Change {
	return Change{
		Type:   ChangeDeleted,
		Before: &ContentRevision{File: path, Number: rev},
	}
}

func TestActionUpdateVisibility(t *testing.T) {
	t.Parallel()

	project := &fakeProject{name: "demo"}
	change := []Change{modified("src/a.go", "r2")}

	tests := []struct {
		mutate func(*fakeServices)
		ev     Event
		name   string
		want   Presentation
	}{
		{
			name: "enabled",
			ev:   Event{Project: project, VCSName: "git", SelectedChanges: change},
			want: Presentation{Visible: true, Enabled: true},
		},
		{
			name: "no project",
			ev:   Event{VCSName: "git", SelectedChanges: change},
		},
		{
			name: "disposed project",
			ev:   Event{Project: &fakeProject{disposed: true}, VCSName: "git", SelectedChanges: change},
		},
		{
			name:   "no helper",
			ev:     Event{Project: project, VCSName: "git", SelectedChanges: change},
			mutate: func(s *fakeServices) { s.helper = nil },
		},
		{
			name: "empty vcs name",
			ev:   Event{Project: project, SelectedChanges: change},
		},
		{
			name: "unknown vcs",
			ev:   Event{Project: project, VCSName: "hg", SelectedChanges: change},
		},
		{
			name: "plain provider",
			ev:   Event{Project: project, VCSName: "svn", SelectedChanges: change},
		},
		{
			name: "no provider",
			ev:   Event{Project: project, VCSName: "cvs", SelectedChanges: change},
		},
		{
			name: "no selection",
			ev:   Event{Project: project, VCSName: "git"},
			want: Presentation{Visible: true},
		},
		{
			name: "two selected",
			ev: Event{Project: project, VCSName: "git", SelectedChanges: []Change{
				modified("a", "1"), modified("b", "2"),
			}},
			want: Presentation{Visible: true},
		},
		{
			name: "new change without after",
			ev: Event{Project: project, VCSName: "git", SelectedChanges: []Change{
				{Type: ChangeNew},
			}},
			want: Presentation{Visible: true},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			services := newServices()
			if tt.mutate != nil {
				tt.mutate(services)
			}

			require.Equal(t, tt.want, NewAction(services).Update(tt.ev))
		})
	}
}

func TestActionPerformUsesHelper(t *testing.T) {
	t.Parallel()

	services := newServices()
	action := NewAction(services)

	err := action.Perform(context.Background(), Event{
		Project:         &fakeProject{name: "demo"},
		VCSName:         "git",
		SelectedChanges: []Change{modified("src/a.go", "r2")},
	})
	require.NoError(t, err)
	require.Equal(t, []helperCall{{path: "src/a.go", revision: "r2", vcs: "git"}}, services.helper.calls)
}

func TestActionPerformPrefersLogProvider(t *testing.T) {
	t.Parallel()

	services := newServices()
	services.log = &fakeLogProvider{show: true}
	action := NewAction(services)

	err := action.Perform(context.Background(), Event{
		Project:         &fakeProject{name: "demo"},
		VCSName:         "git",
		SelectedChanges: []Change{modified("src/a.go", "r2")},
	})
	require.NoError(t, err)
	require.Equal(t, []logCall{{path: "src/a.go", revision: "r2"}}, services.log.calls)
	require.Empty(t, services.helper.calls)
}

func TestActionPerformDeletedFile(t *testing.T) {
	t.Parallel()

	project := &fakeProject{name: "demo"}
	ev := Event{
		Project:         project,
		VCSName:         "git",
		RevisionNumber:  "r9",
		SelectedChanges: []Change{deleted("old.go", "r5")},
	}

	t.Run("helper keeps before revision", func(t *testing.T) {
		t.Parallel()

		services := newServices()
		services.log = &fakeLogProvider{}
		require.NoError(t, NewAction(services).Perform(context.Background(), ev))
		require.Equal(t, []helperCall{{path: "old.go", revision: "r5", vcs: "git"}}, services.helper.calls)
	})

	t.Run("log provider uses selected revision", func(t *testing.T) {
		t.Parallel()

		services := newServices()
		services.log = &fakeLogProvider{show: true}
		require.NoError(t, NewAction(services).Perform(context.Background(), ev))
		require.Equal(t, []logCall{{path: "old.go", revision: "r9"}}, services.log.calls)
	})

	t.Run("log provider without selected revision", func(t *testing.T) {
		t.Parallel()

		services := newServices()
		services.log = &fakeLogProvider{show: true}
		noRev := ev
		noRev.RevisionNumber = ""
		require.NoError(t, NewAction(services).Perform(context.Background(), noRev))
		require.Equal(t, []logCall{{path: "old.go", revision: "r5"}}, services.log.calls)
	})
}

func TestActionPerformErrors(t *testing.T) {
	t.Parallel()

	project := &fakeProject{name: "demo"}
	change := []Change{modified("src/a.go", "r2")}

	tests := []struct {
		mutate func(*fakeServices)
		want   error
		ev     Event
		name   string
	}{
		{name: "no project", ev: Event{VCSName: "git", SelectedChanges: change}, want: ErrMissingData},
		{name: "unknown vcs", ev: Event{Project: project, VCSName: "hg", SelectedChanges: change}, want: ErrMissingData},
		{name: "no selection", ev: Event{Project: project, VCSName: "git"}, want: ErrMissingData},
		{name: "plain provider", ev: Event{Project: project, VCSName: "svn", SelectedChanges: change}, want: ErrUnsupportedProvider},
		{
			name:   "no helper",
			ev:     Event{Project: project, VCSName: "git", SelectedChanges: change},
			mutate: func(s *fakeServices) { s.helper = nil },
			want:   ErrNoHelper,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			services := newServices()
			if tt.mutate != nil {
				tt.mutate(services)
			}

			require.ErrorIs(t, NewAction(services).Perform(context.Background(), tt.ev), tt.want)
		})
	}
}
