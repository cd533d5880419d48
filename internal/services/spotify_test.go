package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dmwalker/trackpipe/internal/shared"
)

const playlistTracksBody = `{
  "items": [
    {
      "added_at": "2024-06-01T10:00:00Z",
      "track": {
        "id": "songA",
        "name": "Song A",
        "duration_ms": 201000,
        "popularity": 64,
        "external_urls": {"spotify": "https://open.spotify.com/track/songA"},
        "album": {
          "id": "albumX",
          "name": "Album X",
          "release_date": "2021-03-05",
          "total_tracks": 12,
          "external_urls": {"spotify": "https://open.spotify.com/album/albumX"},
          "artists": [{"id": "art1", "name": "First Artist", "external_urls": {"spotify": "https://open.spotify.com/artist/art1"}}]
        },
        "artists": [{"id": "art1", "name": "First Artist", "external_urls": {"spotify": "https://open.spotify.com/artist/art1"}}]
      }
    },
    {"added_at": "2024-06-02T10:00:00Z", "track": null}
  ],
  "total": 2,
  "limit": 100,
  "offset": 0,
  "next": null
}`

// newTestService wires a SpotifyService at an httptest server, skipping the
// token exchange.
func newTestService(serverURL string) *SpotifyService {
	srv, _ := NewSpotifyService(map[string]string{
		"client_id":     "test_client_id",
		"client_secret": "test_client_secret",
		"token_url":     serverURL + "/token",
	})
	srv.httpClient = http.DefaultClient
	srv.baseURL = serverURL
	return srv
}

func TestSpotifyService(t *testing.T) {
	t.Run("NewSpotifyService", func(t *testing.T) {
		t.Run("With Valid Credentials", func(t *testing.T) {
			srv, err := NewSpotifyService(map[string]string{
				"client_id":     "test_client_id",
				"client_secret": "test_client_secret",
			})
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if srv.Name() != "Spotify" {
				t.Errorf("expected service name 'Spotify', got %s", srv.Name())
			}
		})

		t.Run("Missing Client ID", func(t *testing.T) {
			_, err := NewSpotifyService(map[string]string{"client_secret": "x"})
			if !errors.Is(err, shared.ErrMissingCredentials) {
				t.Errorf("expected ErrMissingCredentials, got %v", err)
			}
		})

		t.Run("Missing Client Secret", func(t *testing.T) {
			_, err := NewSpotifyService(map[string]string{"client_id": "x"})
			if !errors.Is(err, shared.ErrMissingCredentials) {
				t.Errorf("expected ErrMissingCredentials, got %v", err)
			}
		})
	})

	t.Run("PlaylistTracks", func(t *testing.T) {
		t.Run("Parses Page", func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path != "/playlists/pl123/tracks" {
					t.Errorf("unexpected path: %s", r.URL.Path)
				}
				w.Header().Set("Content-Type", "application/json")
				fmt.Fprint(w, playlistTracksBody)
			}))
			defer server.Close()

			page, err := newTestService(server.URL).PlaylistTracks(context.Background(), "pl123")
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}

			if len(page.Items) != 2 {
				t.Fatalf("expected 2 items, got %d", len(page.Items))
			}

			first := page.Items[0]
			if first.Track == nil {
				t.Fatal("expected first item to carry a track")
			}
			if first.Track.ID != "songA" || first.Track.Album.ID != "albumX" {
				t.Errorf("unexpected track: %+v", first.Track)
			}
			if first.Track.Album.Artists[0].ID != "art1" {
				t.Errorf("unexpected album artists: %+v", first.Track.Album.Artists)
			}
			if first.AddedAt != "2024-06-01T10:00:00Z" {
				t.Errorf("unexpected added_at: %s", first.AddedAt)
			}

			if page.Items[1].Track != nil {
				t.Error("expected null track to decode as nil")
			}
		})

		t.Run("Missing Playlist ID", func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				t.Error("no request expected")
			}))
			defer server.Close()

			_, err := newTestService(server.URL).PlaylistTracks(context.Background(), "")
			if !errors.Is(err, shared.ErrMissingArgument) {
				t.Errorf("expected ErrMissingArgument, got %v", err)
			}
		})

		t.Run("Not Found", func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusNotFound)
			}))
			defer server.Close()

			_, err := newTestService(server.URL).PlaylistTracks(context.Background(), "missing")
			if !errors.Is(err, shared.ErrPlaylistNotFound) {
				t.Errorf("expected ErrPlaylistNotFound, got %v", err)
			}
		})

		t.Run("Server Error", func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			}))
			defer server.Close()

			_, err := newTestService(server.URL).PlaylistTracks(context.Background(), "pl123")
			if !errors.Is(err, shared.ErrAPIRequest) {
				t.Errorf("expected ErrAPIRequest, got %v", err)
			}
		})

		t.Run("Malformed Body", func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				fmt.Fprint(w, "{not json")
			}))
			defer server.Close()

			if _, err := newTestService(server.URL).PlaylistTracks(context.Background(), "pl123"); err == nil {
				t.Error("expected decode error")
			}
		})
	})
}
