package recall

import (
	"context"
	"errors"
	"testing"

	"github.com/rushteam/famkit/core"
)

type fakeEmbedder struct {
	err  error
	last string
}

func (f *fakeEmbedder) Embed(_ context.Context, text string) ([]float64, error) {
	f.last = text
	if f.err != nil {
		return nil, f.err
	}
	return []float64{0.1, 0.2, 0.3}, nil
}

type fakeVectorService struct {
	err     error
	hits    []core.SearchHit
	lastReq *core.VectorSearchRequest
}

func (f *fakeVectorService) Search(_ context.Context, req *core.VectorSearchRequest) (*core.VectorSearchResult, error) {
	f.lastReq = req
	if f.err != nil {
		return nil, f.err
	}
	return &core.VectorSearchResult{Hits: f.hits}, nil
}

func (f *fakeVectorService) Close() error { return nil }

func TestVectorNode_Process(t *testing.T) {
	svc := &fakeVectorService{hits: []core.SearchHit{
		{ID: "h1", Score: 0.92, Source: core.SourceProvider, Payload: map[string]any{"name": "Studio A"}},
		{ID: "h2", Score: 0.80, Source: core.SourceEvent},
	}}
	emb := &fakeEmbedder{}
	n := &VectorNode{Embedder: emb, Service: svc, Collection: "activities"}

	mctx := &core.MatchContext{
		Family: &core.FamilyProfile{Children: []core.Child{{Age: 7, Interests: []string{"art"}}}},
	}
	mctx.SetParam("limit", 5)

	out, err := n.Process(context.Background(), mctx, nil)
	if err != nil {
		t.Fatalf("Process error: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("got %d candidates, want 2", len(out))
	}
	if out[0].ID != "h1" || out[0].VectorSimilarity != 0.92 {
		t.Errorf("first candidate = %+v", out[0])
	}
	if out[0].Payload["name"] != "Studio A" {
		t.Error("payload must be carried through")
	}
	if _, ok := out[0].Labels["recall_source"]; !ok {
		t.Error("recall_source label missing")
	}
	if svc.lastReq.Collection != "activities" {
		t.Errorf("Collection = %q", svc.lastReq.Collection)
	}
	if svc.lastReq.TopK != 15 {
		t.Errorf("TopK = %d, want limit*3", svc.lastReq.TopK)
	}
	if q, ok := mctx.Param("query").(string); !ok || q == "" || q != emb.last {
		t.Errorf("query param = %q, embedded %q", q, emb.last)
	}
}

func TestVectorNode_FilterPushdown(t *testing.T) {
	svc := &fakeVectorService{}
	n := &VectorNode{Embedder: &fakeEmbedder{}, Service: svc}
	mctx := &core.MatchContext{
		Filters: &core.SearchFilters{
			Categories:    []string{"art"},
			Neighborhoods: []string{"Mission"},
			MaxPrice:      50,
		},
	}
	if _, err := n.Process(context.Background(), mctx, nil); err != nil {
		t.Fatalf("Process error: %v", err)
	}
	f := svc.lastReq.Filters
	if f == nil {
		t.Fatal("filters not pushed down")
	}
	if f["max_price"] != 50.0 {
		t.Errorf("max_price = %v", f["max_price"])
	}
	if cats, ok := f["categories"].([]string); !ok || len(cats) != 1 || cats[0] != "art" {
		t.Errorf("categories = %v", f["categories"])
	}
}

func TestVectorNode_Errors(t *testing.T) {
	tests := []struct {
		name     string
		node     *VectorNode
		wantCode string
	}{
		{
			"missing dependencies",
			&VectorNode{},
			core.ErrorCodeUnavailable,
		},
		{
			"embed failure",
			&VectorNode{Embedder: &fakeEmbedder{err: errors.New("model down")}, Service: &fakeVectorService{}},
			core.ErrorCodeSearchUnavailable,
		},
		{
			"search failure",
			&VectorNode{Embedder: &fakeEmbedder{}, Service: &fakeVectorService{err: errors.New("index down")}},
			core.ErrorCodeSearchUnavailable,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.node.Process(context.Background(), &core.MatchContext{}, nil)
			if err == nil {
				t.Fatal("want error")
			}
			de := core.GetDomainError(err)
			if de == nil || de.Code != tt.wantCode {
				t.Errorf("error = %v, want code %s", err, tt.wantCode)
			}
		})
	}
}

func TestVectorNode_EmptyResult(t *testing.T) {
	n := &VectorNode{Embedder: &fakeEmbedder{}, Service: &fakeVectorService{}}
	out, err := n.Process(context.Background(), &core.MatchContext{}, nil)
	if err != nil {
		t.Fatalf("Process error: %v", err)
	}
	if len(out) != 0 {
		t.Errorf("got %v, want empty", out)
	}
}
