package github

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	apierr "github.com/UraniumCorporation/maiar-audit/pkg/errors"
)

const repoPayload = `{
	"name": "plugin-terminal",
	"full_name": "UraniumCorporation/plugin-terminal",
	"owner": {"login": "UraniumCorporation"},
	"stargazers_count": 42,
	"description": "A terminal plugin for the Maiar agent framework",
	"topics": ["maiar", "plugin"],
	"updated_at": "2026-02-01T10:00:00Z",
	"private": false
}`

func TestFetchRepository(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/repos/UraniumCorporation/plugin-terminal" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if got := r.Header.Get("Accept"); got != "application/vnd.github.v3+json" {
			t.Errorf("Accept = %q, want v3 media type", got)
		}
		fmt.Fprint(w, repoPayload)
	}))
	defer server.Close()

	client := NewClient("", time.Second)
	client.baseURL = server.URL

	repo, err := client.FetchRepository(context.Background(), "UraniumCorporation", "plugin-terminal")
	if err != nil {
		t.Fatalf("FetchRepository() error: %v", err)
	}

	if repo.Name != "plugin-terminal" {
		t.Errorf("Name = %q", repo.Name)
	}
	if repo.Owner.Login != "UraniumCorporation" {
		t.Errorf("Owner.Login = %q", repo.Owner.Login)
	}
	if repo.FullName != "UraniumCorporation/plugin-terminal" {
		t.Errorf("FullName = %q", repo.FullName)
	}
	if repo.Stars != 42 {
		t.Errorf("Stars = %d, want 42", repo.Stars)
	}
	if repo.Private {
		t.Error("Private = true, want false")
	}
	if repo.UpdatedAt == nil || !repo.UpdatedAt.Equal(time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)) {
		t.Errorf("UpdatedAt = %v", repo.UpdatedAt)
	}
}

func TestFetchRepositoryNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		fmt.Fprint(w, `{"message":"Not Found"}`)
	}))
	defer server.Close()

	client := NewClient("", time.Second)
	client.baseURL = server.URL

	_, err := client.FetchRepository(context.Background(), "nobody", "nothing")
	if !apierr.Is(err, apierr.ErrCodeNotFound) {
		t.Errorf("FetchRepository() code = %q, want NOT_FOUND", apierr.GetCode(err))
	}
}

func TestFetchTopics(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/repos/UraniumCorporation/plugin-terminal/topics" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if got := r.Header.Get("Accept"); got != topicsAcceptHeader {
			t.Errorf("Accept = %q, topics endpoint requires the preview media type", got)
		}
		fmt.Fprint(w, `{"names": ["maiar", "plugin", "terminal"]}`)
	}))
	defer server.Close()

	client := NewClient("", time.Second)
	client.baseURL = server.URL

	topics, err := client.FetchTopics(context.Background(), "UraniumCorporation", "plugin-terminal")
	if err != nil {
		t.Fatalf("FetchTopics() error: %v", err)
	}
	if len(topics) != 3 || topics[0] != "maiar" {
		t.Errorf("FetchTopics() = %v", topics)
	}
}

func TestCanonicalURL(t *testing.T) {
	got := CanonicalURL("acme", "plugin-x")
	want := "https://github.com/acme/plugin-x"
	if got != want {
		t.Errorf("CanonicalURL() = %q, want %q", got, want)
	}
}
