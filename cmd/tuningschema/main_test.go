package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func TestSchemaCoversEverySection(t *testing.T) {
	schema := buildSchema()
	if schema.Properties == nil {
		t.Fatal("schema has no properties")
	}
	for _, name := range []string{"player", "slam", "slash", "burst", "boss", "missile", "arena", "sim"} {
		if _, ok := schema.Properties.Get(name); !ok {
			t.Errorf("schema is missing section %q", name)
		}
	}
	if len(schema.Required) != 0 {
		t.Errorf("required = %v, want every section optional", schema.Required)
	}
}

func TestWriteSchema(t *testing.T) {
	out := filepath.Join(t.TempDir(), "nested", "tuning.schema.json")
	if err := writeSchema(out, buildSchema()); err != nil {
		t.Fatalf("writeSchema: %v", err)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read schema: %v", err)
	}
	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("schema is not valid JSON: %v", err)
	}
	if doc["title"] != "Boss Fight Tuning" {
		t.Errorf("title = %v", doc["title"])
	}
	if _, err := os.Stat(out + ".tmp"); !os.IsNotExist(err) {
		t.Errorf("temp file left behind: %v", err)
	}
}
