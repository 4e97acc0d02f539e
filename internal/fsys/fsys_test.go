package fsys

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, root, rel, content string) {
	t.Helper()
	path := filepath.Join(root, rel)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestOSLister_ListDocuments(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "naming/tables.md", "x")
	writeFile(t, root, "naming/deep/fields.md", "x")
	writeFile(t, root, "README.md", "x")
	writeFile(t, root, "naming/code-samples.md", "x")
	writeFile(t, root, "naming/notes.txt", "x")

	lister := &OSLister{Root: root}
	paths, err := lister.ListDocuments(context.Background())
	if err != nil {
		t.Fatalf("ListDocuments() error: %v", err)
	}

	want := []string{"naming/deep/fields.md", "naming/tables.md"}
	if len(paths) != len(want) {
		t.Fatalf("ListDocuments() = %v, want %v", paths, want)
	}
	for i := range want {
		if paths[i] != want[i] {
			t.Errorf("paths[%d] = %q, want %q", i, paths[i], want[i])
		}
	}
}

func TestOSLister_MissingRoot(t *testing.T) {
	lister := &OSLister{Root: filepath.Join(t.TempDir(), "missing")}

	if _, err := lister.ListDocuments(context.Background()); err == nil {
		t.Fatal("ListDocuments() error = nil, want missing root error")
	}
}

func TestOSContentReader_ReadDocument(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "naming/tables.md", "---\ntitle: Hi\n---\n")

	reader := &OSContentReader{Root: root}
	content, err := reader.ReadDocument(context.Background(), "naming/tables.md")
	if err != nil {
		t.Fatalf("ReadDocument() error: %v", err)
	}
	if content != "---\ntitle: Hi\n---\n" {
		t.Errorf("ReadDocument() = %q", content)
	}
}

func TestOSContentReader_MissingFile(t *testing.T) {
	reader := &OSContentReader{Root: t.TempDir()}

	if _, err := reader.ReadDocument(context.Background(), "gone.md"); err == nil {
		t.Fatal("ReadDocument() error = nil, want not-exist error")
	}
}
