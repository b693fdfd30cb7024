package northpass

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/danstoll/Northpass-PP-sub000/internal/domain/lms"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := NewClient(&Config{
		BaseURL:    srv.URL,
		APIKey:     "test-key",
		MaxRetries: 2,
		RetryDelay: time.Millisecond,
	}, zap.NewNop())
	require.NoError(t, err)
	return client, srv
}

func TestClient_GetAllUsers(t *testing.T) {
	t.Run("follows pagination and parses memberships", func(t *testing.T) {
		var srv *httptest.Server
		mux := http.NewServeMux()
		mux.HandleFunc("/v2/people", func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "test-key", r.Header.Get("X-Api-Key"))
			if r.URL.Query().Get("page[number]") == "2" {
				fmt.Fprint(w, `{"data":[{"type":"people","id":"u2","attributes":{"email":"b@acme.com","deactivated_at":"2026-01-01"}}],"links":{}}`)
				return
			}
			fmt.Fprintf(w, `{"data":[{"type":"people","id":"u1","attributes":{"email":"a@acme.com","first_name":"Ann"},"relationships":{"groups":{"data":[{"type":"groups","id":"g1"}]}}}],"links":{"next":"%s/v2/people?page[number]=2"}}`, srv.URL)
		})
		client, server := newTestClient(t, mux)
		srv = server

		users, err := client.GetAllUsers(context.Background())

		require.NoError(t, err)
		require.Len(t, users, 2)
		assert.Equal(t, "u1", users[0].ID)
		assert.True(t, users[0].Active)
		assert.True(t, users[0].MemberOf("g1"))
		assert.False(t, users[1].Active)
	})

	t.Run("retries server errors before succeeding", func(t *testing.T) {
		calls := 0
		mux := http.NewServeMux()
		mux.HandleFunc("/v2/people", func(w http.ResponseWriter, r *http.Request) {
			calls++
			if calls == 1 {
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			fmt.Fprint(w, `{"data":[],"links":{}}`)
		})
		client, _ := newTestClient(t, mux)

		_, err := client.GetAllUsers(context.Background())

		require.NoError(t, err)
		assert.Equal(t, 2, calls)
	})

	t.Run("maps auth failures", func(t *testing.T) {
		mux := http.NewServeMux()
		mux.HandleFunc("/v2/people", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			fmt.Fprint(w, `{"errors":[{"status":"401","title":"Unauthorized"}]}`)
		})
		client, _ := newTestClient(t, mux)

		_, err := client.GetAllUsers(context.Background())

		assert.ErrorIs(t, err, lms.ErrAuthFailed)
	})
}

func TestClient_CreatePerson(t *testing.T) {
	t.Run("creates a new person", func(t *testing.T) {
		mux := http.NewServeMux()
		mux.HandleFunc("/v2/people", func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, http.MethodPost, r.Method)
			var req createPersonRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, "a@acme.com", req.Data.Attributes.Email)

			w.WriteHeader(http.StatusCreated)
			fmt.Fprint(w, `{"data":{"type":"people","id":"u1","attributes":{"email":"a@acme.com"}}}`)
		})
		client, _ := newTestClient(t, mux)

		result, err := client.CreatePerson(context.Background(), lms.CreatePersonInput{
			Email: "a@acme.com", FirstName: "Ann",
		})

		require.NoError(t, err)
		assert.Equal(t, "u1", result.UserID)
		assert.False(t, result.AlreadyExists)
	})

	t.Run("duplicate email resolves the existing person", func(t *testing.T) {
		mux := http.NewServeMux()
		mux.HandleFunc("/v2/people", func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodPost {
				w.WriteHeader(http.StatusConflict)
				fmt.Fprint(w, `{"errors":[{"status":"409","detail":"email has already been taken"}]}`)
				return
			}
			assert.Equal(t, "a@acme.com", r.URL.Query().Get("filter[email]"))
			fmt.Fprint(w, `{"data":[{"type":"people","id":"u1","attributes":{"email":"a@acme.com"}}],"links":{}}`)
		})
		client, _ := newTestClient(t, mux)

		result, err := client.CreatePerson(context.Background(), lms.CreatePersonInput{Email: "a@acme.com"})

		require.NoError(t, err)
		assert.Equal(t, "u1", result.UserID)
		assert.True(t, result.AlreadyExists)
	})

	t.Run("empty email is rejected locally", func(t *testing.T) {
		client, _ := newTestClient(t, http.NewServeMux())

		_, err := client.CreatePerson(context.Background(), lms.CreatePersonInput{})

		assert.ErrorIs(t, err, lms.ErrInvalidPerson)
	})
}

func TestClient_Groups(t *testing.T) {
	t.Run("create group", func(t *testing.T) {
		mux := http.NewServeMux()
		mux.HandleFunc("/v2/groups", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusCreated)
			fmt.Fprint(w, `{"data":{"type":"groups","id":"g1","attributes":{"name":"ptr_Acme"}}}`)
		})
		client, _ := newTestClient(t, mux)

		group, err := client.CreateGroup(context.Background(), "ptr_Acme", "")

		require.NoError(t, err)
		assert.Equal(t, "g1", group.ID)
		assert.Equal(t, "ptr_Acme", group.Name)
	})

	t.Run("duplicate group name", func(t *testing.T) {
		mux := http.NewServeMux()
		mux.HandleFunc("/v2/groups", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusConflict)
		})
		client, _ := newTestClient(t, mux)

		_, err := client.CreateGroup(context.Background(), "ptr_Acme", "")

		assert.ErrorIs(t, err, lms.ErrGroupExists)
	})

	t.Run("rename group", func(t *testing.T) {
		mux := http.NewServeMux()
		mux.HandleFunc("/v2/groups/g1", func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, http.MethodPatch, r.Method)
			w.WriteHeader(http.StatusOK)
		})
		client, _ := newTestClient(t, mux)

		require.NoError(t, client.UpdateGroupName(context.Background(), "g1", "ptr_Acme Corp"))
	})
}

func TestClient_Memberships(t *testing.T) {
	t.Run("add member", func(t *testing.T) {
		mux := http.NewServeMux()
		mux.HandleFunc("/v2/groups/g1/relationships/people", func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, http.MethodPost, r.Method)
			var req membershipRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			require.Len(t, req.Data, 1)
			assert.Equal(t, "u1", req.Data[0].ID)
			w.WriteHeader(http.StatusNoContent)
		})
		client, _ := newTestClient(t, mux)

		require.NoError(t, client.AddUserToGroup(context.Background(), "g1", "u1"))
	})

	t.Run("already a member", func(t *testing.T) {
		mux := http.NewServeMux()
		mux.HandleFunc("/v2/groups/g1/relationships/people", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusConflict)
		})
		client, _ := newTestClient(t, mux)

		err := client.AddUserToGroup(context.Background(), "g1", "u1")

		assert.ErrorIs(t, err, lms.ErrAlreadyMember)
	})

	t.Run("unknown group", func(t *testing.T) {
		mux := http.NewServeMux()
		mux.HandleFunc("/v2/groups/missing/relationships/people", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		})
		client, _ := newTestClient(t, mux)

		err := client.RemoveUserFromGroup(context.Background(), "missing", "u1")

		assert.ErrorIs(t, err, lms.ErrGroupNotFound)
	})
}

func TestClient_DeactivateUser(t *testing.T) {
	t.Run("deactivates", func(t *testing.T) {
		mux := http.NewServeMux()
		mux.HandleFunc("/v2/people/u1", func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, http.MethodDelete, r.Method)
			w.WriteHeader(http.StatusNoContent)
		})
		client, _ := newTestClient(t, mux)

		require.NoError(t, client.DeactivateUser(context.Background(), "u1"))
	})

	t.Run("unknown user", func(t *testing.T) {
		mux := http.NewServeMux()
		mux.HandleFunc("/v2/people/ghost", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		})
		client, _ := newTestClient(t, mux)

		err := client.DeactivateUser(context.Background(), "ghost")

		assert.ErrorIs(t, err, lms.ErrUserNotFound)
	})
}
