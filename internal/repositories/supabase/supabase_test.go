package supabase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"path"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	supa "github.com/nedpals/supabase-go"

	"github.com/yoockh/jobboard/internal/models"
	"github.com/yoockh/jobboard/internal/utils"
)

// fakePostgREST answers the subset of PostgREST the repositories use:
// eq filters, limit, insert (object or array) and patch, always returning
// the affected rows.
type fakePostgREST struct {
	mu     sync.Mutex
	tables map[string][]map[string]any
	fail   bool
}

func newFakePostgREST() *fakePostgREST {
	return &fakePostgREST{tables: map[string][]map[string]any{}}
}

func (f *fakePostgREST) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	if f.fail {
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = io.WriteString(w, `{"message":"upstream unavailable","code":"PGRST000"}`)
		return
	}

	table := path.Base(r.URL.Path)
	q := r.URL.Query()

	switch r.Method {
	case http.MethodGet:
		rows := f.match(table, q)
		if s := q.Get("limit"); s != "" {
			if n, err := strconv.Atoi(s); err == nil && n < len(rows) {
				rows = rows[:n]
			}
		}
		writeRows(w, rows)
	case http.MethodPost:
		body, _ := io.ReadAll(r.Body)
		var rows []map[string]any
		if err := json.Unmarshal(body, &rows); err != nil {
			var one map[string]any
			if err := json.Unmarshal(body, &one); err != nil {
				w.WriteHeader(http.StatusBadRequest)
				return
			}
			rows = []map[string]any{one}
		}
		f.tables[table] = append(f.tables[table], rows...)
		w.WriteHeader(http.StatusCreated)
		writeRows(w, rows)
	case http.MethodPatch:
		var patch map[string]any
		_ = json.NewDecoder(r.Body).Decode(&patch)
		rows := f.match(table, q)
		for _, row := range rows {
			for k, v := range patch {
				row[k] = v
			}
		}
		writeRows(w, rows)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (f *fakePostgREST) match(table string, q map[string][]string) []map[string]any {
	var out []map[string]any
	for _, row := range f.tables[table] {
		ok := true
		for col, vals := range q {
			if col == "select" || col == "limit" || col == "offset" || col == "order" {
				continue
			}
			want := strings.TrimPrefix(vals[0], "eq.")
			if fmt.Sprint(row[col]) != want {
				ok = false
				break
			}
		}
		if ok {
			out = append(out, row)
		}
	}
	return out
}

func writeRows(w http.ResponseWriter, rows []map[string]any) {
	if rows == nil {
		rows = []map[string]any{}
	}
	_ = json.NewEncoder(w).Encode(rows)
}

func newTestClient(t *testing.T) (*supa.Client, *fakePostgREST) {
	t.Helper()
	fake := newFakePostgREST()
	srv := httptest.NewServer(fake)
	t.Cleanup(srv.Close)
	return supa.CreateClient(srv.URL, "test-anon-key"), fake
}

func TestProfileRepo_LookupInsertUpdate(t *testing.T) {
	client, _ := newTestClient(t)
	repo := NewProfileRepo(client)
	ctx := context.Background()

	if _, err := repo.GetByUserID(ctx, "user-1"); !errors.Is(err, utils.ErrNotFound) {
		t.Fatalf("GetByUserID on empty table: got %v, want ErrNotFound", err)
	}

	p := models.NewDefaultProfile(models.Identity{UserID: "user-1", Email: "ada@example.com", FullName: "Ada"})
	p.ID = "profile-1"
	p.UpdatedAt = time.Now().UTC()
	if err := repo.Insert(ctx, p); err != nil {
		t.Fatalf("Insert: %v", err)
	}

	got, err := repo.GetByUserID(ctx, "user-1")
	if err != nil {
		t.Fatalf("GetByUserID: %v", err)
	}
	if got.Email != "ada@example.com" || got.ExperienceLevel != models.LevelEntry {
		t.Errorf("unexpected profile %+v", got)
	}

	edited := got.Clone()
	edited.FullName = "Ada Lovelace"
	edited.AddSkill("Go")
	if err := repo.UpdateByUserID(ctx, "user-1", edited.UpdateColumns(time.Now().UTC())); err != nil {
		t.Fatalf("UpdateByUserID: %v", err)
	}

	got, err = repo.GetByUserID(ctx, "user-1")
	if err != nil {
		t.Fatalf("GetByUserID after update: %v", err)
	}
	if got.FullName != "Ada Lovelace" || len(got.Skills) != 1 || got.Skills[0] != "Go" {
		t.Errorf("update not applied: %+v", got)
	}
	if got.Email != "ada@example.com" {
		t.Errorf("email changed to %q", got.Email)
	}

	if err := repo.UpdateByUserID(ctx, "user-2", edited.UpdateColumns(time.Now())); !errors.Is(err, utils.ErrNotFound) {
		t.Errorf("UpdateByUserID for unknown user: got %v, want ErrNotFound", err)
	}
}

func TestCompanyRepo_ListLimit(t *testing.T) {
	client, _ := newTestClient(t)
	repo := NewCompanyRepo(client)
	ctx := context.Background()

	err := repo.InsertMany(ctx, []models.Company{
		{ID: "c1", Name: "TechCorp Solutions"},
		{ID: "c2", Name: "GreenEnergy Inc"},
	})
	if err != nil {
		t.Fatalf("InsertMany: %v", err)
	}

	one, err := repo.List(ctx, 1)
	if err != nil {
		t.Fatalf("List(1): %v", err)
	}
	if len(one) != 1 {
		t.Errorf("List(1) returned %d rows", len(one))
	}

	all, err := repo.List(ctx, 0)
	if err != nil {
		t.Fatalf("List(0): %v", err)
	}
	if len(all) != 2 || all[0].ID != "c1" || all[1].ID != "c2" {
		t.Errorf("List(0) = %+v", all)
	}
}

func TestApplicationRepo_NullCoverLetter(t *testing.T) {
	client, fake := newTestClient(t)
	repo := NewApplicationRepo(client)

	a := &models.Application{ID: "a1", JobID: "j1", UserID: "u1", Status: models.StatusPending, AppliedAt: time.Now().UTC()}
	if err := repo.Insert(context.Background(), a); err != nil {
		t.Fatalf("Insert: %v", err)
	}

	stored := fake.tables[applicationsTable][0]
	v, present := stored["cover_letter"]
	if !present || v != nil {
		t.Errorf("cover_letter stored as %#v (present=%v), want JSON null", v, present)
	}
}

func TestRepos_GatewayFault(t *testing.T) {
	client, fake := newTestClient(t)
	fake.fail = true
	ctx := context.Background()

	_, err := NewProfileRepo(client).GetByUserID(ctx, "user-1")
	if err == nil || errors.Is(err, utils.ErrNotFound) {
		t.Fatalf("expected gateway fault distinct from not-found, got %v", err)
	}

	if _, err := NewCompanyRepo(client).List(ctx, 1); err == nil {
		t.Error("expected error from companies list")
	}
}

func TestExecute_CancelledContext(t *testing.T) {
	client, _ := newTestClient(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := NewJobRepo(client).List(ctx, 1); !errors.Is(err, context.Canceled) {
		t.Errorf("got %v, want context.Canceled", err)
	}
}

func TestExecute_DeadlineDuringRequest(t *testing.T) {
	slow := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, "[]")
	}))
	t.Cleanup(slow.Close)
	client := supa.CreateClient(slow.URL, "test-anon-key")

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, err := NewProfileRepo(client).GetByUserID(ctx, "user-1")
	elapsed := time.Since(start)

	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("err = %v, want context.DeadlineExceeded", err)
	}
	if errors.Is(err, utils.ErrNotFound) {
		t.Error("expired request must not read as not found")
	}
	if elapsed > time.Second {
		t.Errorf("request took %v, deadline was ignored", elapsed)
	}
}
