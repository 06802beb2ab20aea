// Package manifest patches the scripts table of a generated project's
// package.json. Top-level keys other than "scripts" are loaded as raw JSON so
// they round-trip byte-for-byte at the value level; only the scripts table is
// decoded and rewritten.
//
// Writes are atomic: the new content goes to a .tmp file in the same
// directory, then os.Rename replaces the target in a single call.
package manifest

import (
	"encoding/json"
	"fmt"
	"os"
)

// PatchScripts reads the package.json at path, applies set and remove to its
// scripts table, and rewrites the file with stable 2-space indentation.
//
// Entries in set are merged in, overriding existing commands of the same
// name. Entries in remove are deleted if present. All other script keys and
// all other top-level manifest keys are preserved. A manifest without a
// scripts table gets one if set is non-empty.
func PatchScripts(path string, set map[string]string, remove []string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read manifest: %w", err)
	}

	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("parse manifest %s: %w", path, err)
	}

	scripts := map[string]string{}
	if raw, ok := doc["scripts"]; ok {
		if err := json.Unmarshal(raw, &scripts); err != nil {
			return fmt.Errorf("parse manifest scripts table: %w", err)
		}
	}

	for name, cmd := range set {
		scripts[name] = cmd
	}
	for _, name := range remove {
		delete(scripts, name)
	}

	scriptsJSON, err := json.Marshal(scripts)
	if err != nil {
		return fmt.Errorf("marshal scripts table: %w", err)
	}
	doc["scripts"] = scriptsJSON

	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal manifest: %w", err)
	}
	out = append(out, '\n')

	return atomicWrite(path, out)
}

// atomicWrite writes data to path by first writing to path+".tmp",
// then calling os.Rename to replace the final target atomically.
func atomicWrite(path string, data []byte) error {
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write temp file %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp) // best-effort cleanup on rename failure
		return fmt.Errorf("rename %s -> %s: %w", tmp, path, err)
	}
	return nil
}
