package snippet

import "testing"

func testRegistry() Registry {
	return Registry{
		{Description: "list files", Command: "ls -la", Tags: []string{"files"}},
		{Description: "list files by size", Command: "du -sh * | sort -h", Tags: []string{"files", "list"}},
		{Description: "show date", Command: "date"},
	}
}

func TestFilterByTags(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		tags []string
		want []string
	}{
		{
			name: "no tags returns everything",
			tags: nil,
			want: []string{"list files", "list files by size", "show date"},
		},
		{
			name: "single tag",
			tags: []string{"files"},
			want: []string{"list files", "list files by size"},
		},
		{
			name: "multiple tags require all of them",
			tags: []string{"files", "list"},
			want: []string{"list files by size"},
		},
		{
			name: "unknown tag matches nothing",
			tags: []string{"network"},
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := testRegistry().FilterByTags(tt.tags).Descriptions()
			if len(got) != len(tt.want) {
				t.Fatalf("FilterByTags(%v) = %v, want %v", tt.tags, got, tt.want)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("FilterByTags(%v)[%d] = %q, want %q", tt.tags, i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestFindByDescription(t *testing.T) {
	t.Parallel()

	reg := testRegistry()

	s, ok := reg.FindByDescription("show date")
	if !ok {
		t.Fatal("FindByDescription did not find existing snippet")
	}
	if s.Command != "date" {
		t.Errorf("Command = %q, want %q", s.Command, "date")
	}

	if _, ok := reg.FindByDescription("Show Date"); ok {
		t.Error("FindByDescription is case-sensitive, should not match different case")
	}

	if _, ok := reg.FindByDescription("missing"); ok {
		t.Error("FindByDescription found a snippet that does not exist")
	}
}
