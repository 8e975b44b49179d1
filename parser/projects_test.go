package parser

import "testing"

func TestProjectName(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"bookA/page/0001.xml", "bookA"},
		{"export/bookB/page/0001.xml", "bookB"},
		{"bookC/0001.xml", "bookC"},
		{"0001.xml", "0001.xml"},
		{"page/0001.xml", "page"}, // "page" at index 0 has no parent
	}

	for _, tt := range tests {
		if got := ProjectName(tt.path); got != tt.want {
			t.Errorf("ProjectName(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestGroupProjects(t *testing.T) {
	files := []string{
		"bookA/page/0001.xml",
		"bookA/page/0002.xml",
		"bookA/images/0001.jpg", // not XML
		"bookB/0001.xml",
		"bookA/mets.xml",           // platform metadata
		"bookA/METS.XML",           // case-insensitive metadata
		"bookB/metadata.xml",       // platform metadata
		"__MACOSX/bookA/0001.xml",  // archive artifact
		"bookA/page/._0001.xml",    // resource fork
		"bookA/.hidden/thumb.jpeg", // hidden non-XML
	}

	groups := GroupProjects(files)

	if len(groups) != 2 {
		t.Fatalf("got %d projects, want 2: %v", len(groups), groups)
	}
	if got := groups["bookA"]; len(got) != 2 {
		t.Errorf("bookA = %v, want the two page files", got)
	}
	if got := groups["bookB"]; len(got) != 1 || got[0] != "bookB/0001.xml" {
		t.Errorf("bookB = %v", got)
	}
}

func TestIsMetadataFile(t *testing.T) {
	if !IsMetadataFile("a/b/Mets.xml") {
		t.Error("Mets.xml should be metadata")
	}
	if IsMetadataFile("a/b/page.xml") {
		t.Error("page.xml is not metadata")
	}
}

func TestIsHiddenFile(t *testing.T) {
	hidden := []string{
		"__MACOSX/x/y.xml",
		"a/._y.xml",
		"._y.xml",
		"a/.thumbs/img.jpg",
	}
	for _, p := range hidden {
		if !IsHiddenFile(p) {
			t.Errorf("IsHiddenFile(%q) = false, want true", p)
		}
	}

	if IsHiddenFile("a/b/0001.xml") {
		t.Error("regular file flagged hidden")
	}
}
