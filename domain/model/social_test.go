package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(s string) *string { return &s }

func TestTargetRefResolve(t *testing.T) {
	tests := []struct {
		name     string
		ref      TargetRef
		wantKind TargetKind
		wantID   string
		wantErr  bool
	}{
		{"discussion", TargetRef{DiscussionID: ptr("d-1")}, TargetDiscussion, "d-1", false},
		{"camera", TargetRef{CameraID: ptr("c-1")}, TargetCamera, "c-1", false},
		{"comment", TargetRef{CommentID: ptr("cm-1")}, TargetComment, "cm-1", false},
		{"none set", TargetRef{}, "", "", true},
		{"two set", TargetRef{DiscussionID: ptr("d-1"), CameraID: ptr("c-1")}, "", "", true},
		{"all set", TargetRef{DiscussionID: ptr("d-1"), CameraID: ptr("c-1"), CommentID: ptr("cm-1")}, "", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kind, id, err := tt.ref.Resolve()
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantKind, kind)
			assert.Equal(t, tt.wantID, id)
		})
	}
}

func TestDiscussionPublicAliasesBody(t *testing.T) {
	d := Discussion{ID: "d-1", Body: "the text", Title: "t"}
	p := d.Public()
	assert.Equal(t, "the text", p.Content)
	assert.Equal(t, "d-1", p.ID)
}
