package ingest

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

const buttonTSX = `/**
 * Displays a button or a component that looks like a button.
 */
import * as React from "react"

interface ButtonProps {
  variant: string
  size: string
  asChild?: boolean
}

function Button({ variant, size }: ButtonProps) {
  return (
    <button className="inline-flex items-center justify-center rounded-md text-sm" />
  )
}

export { Button }
`

func writeRegistry(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
			t.Fatalf("failed to write %s: %v", name, err)
		}
	}
	return dir
}

func TestParseShadcnRegistry(t *testing.T) {
	dir := writeRegistry(t, map[string]string{
		"button.tsx": buttonTSX,
		"notes.md":   "not a component",
	})

	components := parseShadcnRegistry(dir)
	if len(components) != 1 {
		t.Fatalf("parseShadcnRegistry() returned %d components, want 1", len(components))
	}

	c := components[0]
	if c.Name != "button" {
		t.Errorf("Name = %q, want %q", c.Name, "button")
	}
	if c.Description != "Displays a button or a component that looks like a button." {
		t.Errorf("Description = %q", c.Description)
	}

	wantProps := []string{"variant", "size", "asChild?"}
	if !reflect.DeepEqual(c.Props, wantProps) {
		t.Errorf("Props = %v, want %v", c.Props, wantProps)
	}

	wantClasses := []string{"inline-flex", "items-center", "justify-center", "rounded-md", "text-sm"}
	if !reflect.DeepEqual(c.TailwindClasses, wantClasses) {
		t.Errorf("TailwindClasses = %v, want %v", c.TailwindClasses, wantClasses)
	}
}

func TestParseShadcnRegistry_MissingDir(t *testing.T) {
	if got := parseShadcnRegistry(filepath.Join(t.TempDir(), "missing")); got != nil {
		t.Errorf("parseShadcnRegistry(missing dir) = %v, want nil", got)
	}
}

func TestParseShadcnRegistry_NoJSDoc(t *testing.T) {
	dir := writeRegistry(t, map[string]string{
		"badge.tsx": `function Badge() { return <span className="rounded-full" /> }`,
	})

	components := parseShadcnRegistry(dir)
	if len(components) != 1 {
		t.Fatalf("parseShadcnRegistry() returned %d components, want 1", len(components))
	}
	if components[0].Description != "badge component" {
		t.Errorf("Description = %q, want fallback %q", components[0].Description, "badge component")
	}
}

func TestDedupComponents(t *testing.T) {
	all := []ShadcnComponent{
		{Name: "button", Description: "first"},
		{Name: "button", Description: "second"},
		{Name: "card", Description: "card"},
	}

	got := dedupComponents(all)
	if len(got) != 2 {
		t.Fatalf("dedupComponents() returned %d, want 2", len(got))
	}
	if got[0].Description != "first" {
		t.Errorf("dedupComponents() kept %q, want first-seen", got[0].Description)
	}
}

func TestExtractTailwindClasses_SkipsUppercase(t *testing.T) {
	code := `<div className="Flex p-4 MyClass gap-2" />`
	got := extractTailwindClasses(code)
	want := []string{"p-4", "gap-2"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("extractTailwindClasses() = %v, want %v", got, want)
	}
}
