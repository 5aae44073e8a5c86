package client_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/goliatone/go-formtemplate/pkg/client"
	"github.com/goliatone/go-formtemplate/pkg/template"
)

func validDoc() *template.Template {
	return &template.Template{
		Title: template.LocalizedText{EN: "Oil Check", AR: "فحص الزيت"},
		Sections: []template.Section{
			{
				ID:    "section_1",
				Label: template.LocalizedText{EN: "Fryers", AR: "المقالي"},
				Fields: []template.Field{
					{Key: "fryer_id", Label: template.LocalizedText{EN: "Fryer", AR: "القلاية"}},
				},
			},
		},
	}
}

func wrap(t *testing.T, doc *template.Template) []byte {
	t.Helper()
	body, err := json.Marshal(map[string]any{"data": doc})
	if err != nil {
		t.Fatalf("marshal envelope: %v", err)
	}
	return body
}

func TestGetUnwrapsEnvelopeAndNormalizes(t *testing.T) {
	stored := validDoc()
	stored.ID = "abc123"

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/form-templates/abc123" {
			t.Fatalf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		_, _ = w.Write(wrap(t, stored))
	}))
	defer srv.Close()

	c, err := client.New(srv.URL)
	if err != nil {
		t.Fatalf("new client: %v", err)
	}

	got, err := c.Get(context.Background(), "abc123")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.ID != "abc123" {
		t.Fatalf("id = %q", got.ID)
	}
	if got.Sections[0].Visible == nil || !*got.Sections[0].Visible {
		t.Fatalf("fetched document not normalized")
	}
	if got.TemplateDepartment != template.DepartmentAll {
		t.Fatalf("templateDepartment = %q", got.TemplateDepartment)
	}
}

func TestListUnwrapsEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/form-templates" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		body, _ := json.Marshal(map[string]any{"data": []*template.Template{validDoc(), validDoc()}})
		_, _ = w.Write(body)
	}))
	defer srv.Close()

	c, _ := client.New(srv.URL)
	docs, err := c.List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(docs) != 2 {
		t.Fatalf("got %d documents", len(docs))
	}
}

func TestCreateSendsNormalizedDocument(t *testing.T) {
	var received template.Template

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/form-templates" {
			t.Fatalf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Fatalf("content type = %q", ct)
		}
		if err := json.NewDecoder(r.Body).Decode(&received); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		received.ID = "new-id"
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write(wrap(t, &received))
	}))
	defer srv.Close()

	c, _ := client.New(srv.URL)
	got, err := c.Create(context.Background(), validDoc())
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if got.ID != "new-id" {
		t.Fatalf("id = %q", got.ID)
	}
	if len(received.Departments) != 1 || received.Departments[0] != template.DepartmentAll {
		t.Fatalf("departments not projected before save: %v", received.Departments)
	}
	if len(received.Layout.SectionOrder) != 1 {
		t.Fatalf("sectionOrder missing from payload")
	}
}

func TestCreateRejectsInvalidWithoutRequest(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatalf("invalid document reached the network")
	}))
	defer srv.Close()

	c, _ := client.New(srv.URL)
	doc := validDoc()
	doc.Title.AR = ""

	_, err := c.Create(context.Background(), doc)
	if !errors.Is(err, client.ErrInvalid) {
		t.Fatalf("err = %v, want ErrInvalid", err)
	}
	var verr *client.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("err does not carry a *ValidationError")
	}
	if verr.Errors["title.ar"] == "" {
		t.Fatalf("missing title.ar message: %v", verr.Errors)
	}
}

func TestUpdateRequiresID(t *testing.T) {
	c, _ := client.New("http://localhost:0")
	if _, err := c.Update(context.Background(), validDoc()); err == nil {
		t.Fatalf("expected error for missing id")
	}
}

func TestUpdateHitsDocumentPath(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut || r.URL.Path != "/form-templates/abc123" {
			t.Fatalf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		var doc template.Template
		_ = json.NewDecoder(r.Body).Decode(&doc)
		_, _ = w.Write(wrap(t, &doc))
	}))
	defer srv.Close()

	c, _ := client.New(srv.URL)
	doc := validDoc()
	doc.ID = "abc123"
	if _, err := c.Update(context.Background(), doc); err != nil {
		t.Fatalf("update: %v", err)
	}
}

func TestStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "not found", http.StatusNotFound)
	}))
	defer srv.Close()

	c, _ := client.New(srv.URL)
	_, err := c.Get(context.Background(), "missing")

	var serr *client.StatusError
	if !errors.As(err, &serr) {
		t.Fatalf("err = %v, want *StatusError", err)
	}
	if serr.Code != http.StatusNotFound {
		t.Fatalf("code = %d", serr.Code)
	}
}

func TestDelete(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete || r.URL.Path != "/form-templates/abc123" {
			t.Fatalf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c, _ := client.New(srv.URL)
	if err := c.Delete(context.Background(), "abc123"); err != nil {
		t.Fatalf("delete: %v", err)
	}
}
