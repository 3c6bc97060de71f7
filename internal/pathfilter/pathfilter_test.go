package pathfilter

import (
	"slices"
	"testing"
)

func TestNew_ReturnsNilWithoutCriteria(t *testing.T) {
	tests := []struct {
		name       string
		extensions []string
		opts       []Option
	}{
		{"nil extensions", nil, nil},
		{"empty extensions", []string{}, nil},
		{"only blanks", []string{"", " ", "."}, nil},
		{"blank exclude", nil, []Option{WithExclude("", "  ")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if f := New(tt.extensions, tt.opts...); f != nil {
				t.Errorf("New(%q) = %+v, want nil", tt.extensions, f)
			}
		})
	}
}

func TestNew_NormalizesExtensions(t *testing.T) {
	f := New([]string{"md", ".txt", "md", " go "})
	want := []string{"md", "txt", "go"}
	if got := f.Extensions(); !slices.Equal(got, want) {
		t.Errorf("Extensions() = %q, want %q", got, want)
	}
}

func TestFilter_Matches(t *testing.T) {
	f := New([]string{"md"})

	tests := []struct {
		name string
		want bool
	}{
		{"file1.md", true},
		{"notes.draft.md", true},
		{"file1.txt", false},
		{"file1", false},
		{"file1.MD", false},
		{".md", false},
		{"readme.md.bak", false},
		{"trailing.", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := f.Matches(tt.name); got != tt.want {
				t.Errorf("Matches(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

func TestFilter_NilMatchesEverything(t *testing.T) {
	var f *Filter

	for _, name := range []string{"file1", "file1.txt", ".bashrc", "a.md"} {
		t.Run(name, func(t *testing.T) {
			if !f.Matches(name) {
				t.Errorf("Matches(%q) = false, want true", name)
			}
			if f.Excluded(name, false) {
				t.Errorf("Excluded(%q) = true, want false", name)
			}
		})
	}

	if got := f.Extensions(); got != nil {
		t.Errorf("Extensions() = %q, want nil", got)
	}
}

func TestFilter_ExcludeOnlyMatchesAllNames(t *testing.T) {
	f := New(nil, WithExclude(".git/**"))
	if f == nil {
		t.Fatal("New() = nil, want filter with exclude patterns")
	}
	if !f.Matches("file1") {
		t.Error("Matches(\"file1\") = false, want true")
	}
}

func TestExtension(t *testing.T) {
	tests := []struct {
		name   string
		want   string
		wantOK bool
	}{
		{"file1.md", "md", true},
		{"archive.tar.gz", "gz", true},
		{"file1", "", false},
		{".bashrc", "", false},
		{"..hidden", "hidden", true},
		{"trailing.", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Extension(tt.name)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("Extension(%q) = (%q, %v), want (%q, %v)", tt.name, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestFromArgs(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want []string
	}{
		{"no args", nil, nil},
		{"single pair", []string{"-e", "md"}, []string{"md"}},
		{"several pairs", []string{"-e", "md", "-e", "txt"}, []string{"md", "txt"}},
		{"unpaired trailing flag", []string{"-e", "md", "-e"}, []string{"md"}},
		{"out of position flag", []string{"x", "-e", "md", "y"}, nil},
		{"unknown flag pair", []string{"-x", "md", "-e", "go"}, []string{"go"}},
		{"lone value", []string{"md"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FromArgs(tt.args); !slices.Equal(got, tt.want) {
				t.Errorf("FromArgs(%q) = %q, want %q", tt.args, got, tt.want)
			}
		})
	}
}

func TestFilter_Excluded(t *testing.T) {
	f := New(nil, WithExclude(".git/**", "node_modules/**", "*.tmp", "drafts/?/**"))

	tests := []struct {
		path  string
		isDir bool
		want  bool
	}{
		{".git", true, true},
		{".git/config", false, true},
		{".git", false, false},
		{"node_modules/pkg/index.js", false, true},
		{"scratch.tmp", false, true},
		{"notes/scratch.tmp", false, false},
		{"drafts/a/one.md", false, true},
		{"drafts/ab/one.md", false, false},
		{"notes/keep.md", false, false},
		{"notes\\scratch.tmp", false, false},
		{".git\\objects\\abc", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := f.Excluded(tt.path, tt.isDir); got != tt.want {
				t.Errorf("Excluded(%q, %v) = %v, want %v", tt.path, tt.isDir, got, tt.want)
			}
		})
	}
}

func TestFilter_ExcludeRegexSpecialCharacters(t *testing.T) {
	f := New(nil, WithExclude("notes/(archived)/**", "[inbox]/*.md", "C++/**"))

	tests := []struct {
		path string
		want bool
	}{
		{"notes/(archived)/old.md", true},
		{"notes/archived/old.md", false},
		{"[inbox]/task.md", true},
		{"i/task.md", false},
		{"C++/notes.md", true},
		{"CC/notes.md", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := f.Excluded(tt.path, false); got != tt.want {
				t.Errorf("Excluded(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}
