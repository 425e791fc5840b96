package paths_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dataferry/dataferry/internal/paths"
)

func TestEmbedID(t *testing.T) {
	id := uuid.MustParse("11111111-2222-3333-4444-555555555555")

	tests := []struct {
		name     string
		filename string
		want     string
	}{
		{
			name:     "simple extension",
			filename: "spikes.npy",
			want:     "spikes.11111111-2222-3333-4444-555555555555.npy",
		},
		{
			name:     "dotted stem keeps all leading parts",
			filename: "spikes.times.npy",
			want:     "spikes.times.11111111-2222-3333-4444-555555555555.npy",
		},
		{
			name:     "no extension appends id",
			filename: "README",
			want:     "README.11111111-2222-3333-4444-555555555555",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, paths.EmbedID(tt.filename, id))
		})
	}
}

func TestEmbedID_Idempotent(t *testing.T) {
	// Embedding twice with the same id must equal embedding once,
	// for arbitrary filenames and ids.
	for range 50 {
		id := uuid.New()
		name := fmt.Sprintf("file-%s.%s", uuid.NewString()[:8], "bin")

		once := paths.EmbedID(name, id)
		twice := paths.EmbedID(once, id)
		require.Equal(t, once, twice)
		assert.True(t, strings.Contains(once, id.String()))
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"alf/probe00/spikes.npy", "alf/probe00/spikes.npy"},
		{"alf//probe00///spikes.npy", "alf/probe00/spikes.npy"},
		{`alf\probe00\spikes.npy`, "alf/probe00/spikes.npy"},
		{"/alf/spikes.npy", "alf/spikes.npy"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, paths.Normalize(tt.in))
	}
}

func TestResolve(t *testing.T) {
	id := uuid.MustParse("aaaaaaaa-bbbb-cccc-dddd-eeeeeeeeeeee")

	t.Run("personal repository keeps bare filename", func(t *testing.T) {
		got := paths.Resolve("/mnt/acquisition", "subject/2026-01-01/spikes.npy", id, false)
		assert.Equal(t, "/mnt/acquisition/subject/2026-01-01/spikes.npy", got)
	})

	t.Run("authoritative repository embeds dataset id", func(t *testing.T) {
		got := paths.Resolve("data", "subject/2026-01-01/spikes.npy", id, true)
		assert.Equal(t,
			"/data/subject/2026-01-01/spikes.aaaaaaaa-bbbb-cccc-dddd-eeeeeeeeeeee.npy",
			got)
	})

	t.Run("empty root", func(t *testing.T) {
		got := paths.Resolve("", "spikes.npy", id, false)
		assert.Equal(t, "/spikes.npy", got)
	})

	t.Run("duplicate separators collapsed", func(t *testing.T) {
		got := paths.Resolve("/data//repo/", "a//b\\c.npy", id, false)
		assert.Equal(t, "/data/repo/a/b/c.npy", got)
	})

	t.Run("resolve is idempotent under re-embedding", func(t *testing.T) {
		first := paths.Resolve("/data", "a/b.npy", id, true)
		again := paths.Resolve("/data", strings.TrimPrefix(first, "/data/"), id, true)
		assert.Equal(t, first, again)
	})
}
