package main

import (
	"encoding/json"
	"flag"
	"io/fs"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"gameloader/internal/digest"
	"gameloader/internal/domain"
)

const manifestFileName = "manifest.json"

type gameStore struct {
	mu    sync.RWMutex
	root  string
	games map[domain.GameDate]domain.Manifest
}

// loadStore walks root and builds a manifest for every <root>/<date> dir.
func loadStore(root string) (*gameStore, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, err
	}

	gs := &gameStore{root: root, games: make(map[domain.GameDate]domain.Manifest)}
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		date, err := domain.ParseGameDate(e.Name())
		if err != nil {
			continue
		}
		m, err := buildManifest(filepath.Join(root, e.Name()), date)
		if err != nil {
			return nil, err
		}
		gs.games[date] = m
	}
	return gs, nil
}

// buildManifest hashes every file under dir. A manifest.json left over from a
// loader install is not served as an asset; its title is reused when present.
func buildManifest(dir string, date domain.GameDate) (domain.Manifest, error) {
	m := domain.Manifest{Date: date, Title: date.String()}
	if fi, err := os.Stat(dir); err == nil {
		m.CreatedAt = fi.ModTime()
	}

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		name := filepath.ToSlash(rel)

		if name == manifestFileName {
			var stored domain.Manifest
			if b, err := os.ReadFile(path); err == nil && json.Unmarshal(b, &stored) == nil && stored.Title != "" {
				m.Title = stored.Title
			}
			return nil
		}

		sum, err := digest.File(path)
		if err != nil {
			return err
		}
		fi, err := d.Info()
		if err != nil {
			return err
		}
		m.Files = append(m.Files, domain.FileEntry{
			Name:      name,
			SizeBytes: fi.Size(),
			Digest:    sum,
		})
		return nil
	})
	if err != nil {
		return domain.Manifest{}, err
	}
	sort.Slice(m.Files, func(i, j int) bool { return m.Files[i].Name < m.Files[j].Name })
	return m, nil
}

func (gs *gameStore) list() []domain.Game {
	gs.mu.RLock()
	defer gs.mu.RUnlock()

	games := make([]domain.Game, 0, len(gs.games))
	for _, m := range gs.games {
		games = append(games, m.Game())
	}
	sort.Slice(games, func(i, j int) bool { return games[i].Date < games[j].Date })
	return games
}

func (gs *gameStore) manifest(date domain.GameDate) (domain.Manifest, bool) {
	gs.mu.RLock()
	defer gs.mu.RUnlock()
	m, ok := gs.games[date]
	return m, ok
}

// hasFile reports whether name is an asset of the build for date. Only names
// present in the manifest are ever served.
func (gs *gameStore) hasFile(date domain.GameDate, name string) bool {
	m, ok := gs.manifest(date)
	if !ok {
		return false
	}
	for _, f := range m.Files {
		if f.Name == name {
			return true
		}
	}
	return false
}

func main() {
	root := flag.String("root", ".", "directory of game builds (<root>/<date>/...)")
	addr := flag.String("addr", ":8080", "listen address")
	flag.Parse()

	gs, err := loadStore(*root)
	if err != nil {
		log.Fatalf("load games from %s: %v", *root, err)
	}

	http.HandleFunc("/games", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(gs.list())
	})

	http.HandleFunc("/games/", func(w http.ResponseWriter, r *http.Request) {
		rest := strings.TrimPrefix(r.URL.Path, "/games/")
		dateStr, tail, _ := strings.Cut(rest, "/")
		date := domain.GameDate(dateStr)

		switch {
		case tail == "manifest":
			m, ok := gs.manifest(date)
			if !ok {
				http.Error(w, "not found", http.StatusNotFound)
				return
			}
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(m)

		case strings.HasPrefix(tail, "files/"):
			name := strings.TrimPrefix(tail, "files/")
			if !gs.hasFile(date, name) {
				http.Error(w, "not found", http.StatusNotFound)
				return
			}
			http.ServeFile(w, r, filepath.Join(gs.root, dateStr, filepath.FromSlash(name)))

		default:
			http.Error(w, "not found", http.StatusNotFound)
		}
	})

	log.Printf("gamesrv serving %d games from %s on %s", len(gs.games), *root, *addr)
	log.Fatal(http.ListenAndServe(*addr, logRequests(http.DefaultServeMux)))
}

// logRequests is a lightweight access log.
func logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		log.Printf("%s %s %d %s %s", r.Method, r.URL.Path, rec.status, r.RemoteAddr, time.Since(start))
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}
