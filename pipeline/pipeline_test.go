package pipeline

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/rushteam/famkit/core"
)

type addNode struct {
	id  string
	err error
}

func (n *addNode) Name() string { return "test.add" }
func (n *addNode) Kind() Kind   { return KindRecall }

func (n *addNode) Process(
	_ context.Context,
	_ *core.MatchContext,
	cands []*core.Candidate,
) ([]*core.Candidate, error) {
	if n.err != nil {
		return nil, n.err
	}
	return append(cands, core.NewCandidate(n.id, core.SourceProvider)), nil
}

func TestPipeline_Run(t *testing.T) {
	p := &Pipeline{Nodes: []Node{&addNode{id: "a"}, &addNode{id: "b"}}}
	out, err := p.Run(context.Background(), &core.MatchContext{}, nil)
	if err != nil {
		t.Fatalf("Run error: %v", err)
	}
	if len(out) != 2 || out[0].ID != "a" || out[1].ID != "b" {
		t.Errorf("got %v", out)
	}
}

func TestPipeline_Run_StopsOnError(t *testing.T) {
	boom := errors.New("boom")
	p := &Pipeline{Nodes: []Node{&addNode{id: "a"}, &addNode{err: boom}, &addNode{id: "c"}}}
	out, err := p.Run(context.Background(), &core.MatchContext{}, nil)
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want boom", err)
	}
	if out != nil {
		t.Errorf("got %v, want nil on error", out)
	}
}

func TestLoadFromYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pipeline.yaml")
	content := `
pipeline:
  name: family_match
  nodes:
    - type: normalize.metadata
    - type: rank.factors
      config:
        concurrency: 4
        weights:
          age: 0.25
    - type: rerank.diversity
      config:
        limit: 5
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFromYAML(path)
	if err != nil {
		t.Fatalf("LoadFromYAML error: %v", err)
	}
	if cfg.Pipeline.Name != "family_match" {
		t.Errorf("Name = %q", cfg.Pipeline.Name)
	}
	if len(cfg.Pipeline.Nodes) != 3 {
		t.Fatalf("got %d nodes", len(cfg.Pipeline.Nodes))
	}
	if cfg.Pipeline.Nodes[1].Type != "rank.factors" {
		t.Errorf("node type = %q", cfg.Pipeline.Nodes[1].Type)
	}
	if cfg.Pipeline.Nodes[1].Config["concurrency"] != 4 {
		t.Errorf("concurrency = %v", cfg.Pipeline.Nodes[1].Config["concurrency"])
	}

	if _, err := LoadFromYAML(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing file should error")
	}
}

func TestLoadFromJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pipeline.json")
	content := `{"pipeline":{"name":"family_match","nodes":[{"type":"rerank.topn","config":{"n":3}}]}}`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFromJSON(path)
	if err != nil {
		t.Fatalf("LoadFromJSON error: %v", err)
	}
	if len(cfg.Pipeline.Nodes) != 1 || cfg.Pipeline.Nodes[0].Type != "rerank.topn" {
		t.Errorf("got %+v", cfg.Pipeline)
	}
}

func TestNodeFactory(t *testing.T) {
	f := NewNodeFactory()
	f.Register("test.add", func(cfg map[string]any) (Node, error) {
		id, _ := cfg["id"].(string)
		return &addNode{id: id}, nil
	})

	node, err := f.Build("test.add", map[string]any{"id": "x"})
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}
	if node.Name() != "test.add" {
		t.Errorf("Name = %q", node.Name())
	}

	if _, err := f.Build("nope", nil); err == nil {
		t.Error("unknown type should error")
	}
}

func TestConfig_BuildPipeline(t *testing.T) {
	f := NewNodeFactory()
	f.Register("test.add", func(map[string]any) (Node, error) { return &addNode{id: "a"}, nil })

	var cfg Config
	cfg.Pipeline.Nodes = []NodeConfig{{Type: "test.add"}, {Type: "test.add"}}
	p, err := cfg.BuildPipeline(f)
	if err != nil {
		t.Fatalf("BuildPipeline error: %v", err)
	}
	if len(p.Nodes) != 2 {
		t.Errorf("got %d nodes", len(p.Nodes))
	}

	cfg.Pipeline.Nodes = append(cfg.Pipeline.Nodes, NodeConfig{Type: "nope"})
	if _, err := cfg.BuildPipeline(f); err == nil {
		t.Error("unknown node type should fail the build")
	}
}
