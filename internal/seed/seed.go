// Package seed loads demo users, boards and lists through the services, so
// seeded data obeys the same rules as data created over HTTP.
package seed

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	apperrors "kanban/internal/errors"
	"kanban/internal/model"
	"kanban/internal/service"
)

// Fixture is the JSON document accepted by Load.
type Fixture struct {
	Users []User `json:"users"`
}

// User is a seeded account and the boards it owns.
type User struct {
	Username string  `json:"username"`
	Email    string  `json:"email"`
	Password string  `json:"password"`
	Boards   []Board `json:"boards"`
}

// Board is a seeded board with its lists in display order.
type Board struct {
	Title         string   `json:"title"`
	Visibility    string   `json:"visibility"`
	BackgroundImg string   `json:"backgroundImg"`
	Lists         []string `json:"lists"`
}

// Stats summarises a seeding run.
type Stats struct {
	UsersCreated  int
	UsersExisting int
	Boards        int
	Lists         int
}

// Load reads a fixture from a local path or an http(s) URL.
func Load(ctx context.Context, src string) (*Fixture, error) {
	var body io.ReadCloser
	if strings.HasPrefix(src, "http://") || strings.HasPrefix(src, "https://") {
		ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
		defer cancel()
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, src, nil)
		if err != nil {
			return nil, fmt.Errorf("build request: %w", err)
		}
		resp, err := http.DefaultClient.Do(req)
		if err != nil {
			return nil, fmt.Errorf("fetch fixture: %w", err)
		}
		if resp.StatusCode != http.StatusOK {
			resp.Body.Close()
			return nil, fmt.Errorf("fetch fixture: status %d", resp.StatusCode)
		}
		body = resp.Body
	} else {
		f, err := os.Open(src)
		if err != nil {
			return nil, fmt.Errorf("open fixture: %w", err)
		}
		body = f
	}
	defer body.Close()

	var fixture Fixture
	if err := json.NewDecoder(body).Decode(&fixture); err != nil {
		return nil, fmt.Errorf("parse fixture: %w", err)
	}
	return &fixture, nil
}

// Seeder writes fixtures through the services.
type Seeder struct {
	auth   service.AuthService
	boards service.BoardService
	lists  service.ListService
}

// New creates a seeder.
func New(auth service.AuthService, boards service.BoardService, lists service.ListService) *Seeder {
	return &Seeder{auth: auth, boards: boards, lists: lists}
}

// Run seeds every user of f. Existing users are signed in with the fixture
// password and get the boards added again.
func (s *Seeder) Run(ctx context.Context, f *Fixture) (Stats, error) {
	var stats Stats
	for _, u := range f.Users {
		result, err := s.auth.Register(ctx, service.RegisterInput{
			Username:        u.Username,
			Email:           u.Email,
			Password:        u.Password,
			ConfirmPassword: u.Password,
		})
		switch {
		case err == nil:
			stats.UsersCreated++
		case errors.Is(err, apperrors.ErrConflict):
			if result, err = s.auth.Login(ctx, u.Email, u.Password); err != nil {
				return stats, fmt.Errorf("sign in %s: %w", u.Email, err)
			}
			stats.UsersExisting++
		default:
			return stats, fmt.Errorf("register %s: %w", u.Email, err)
		}

		for _, b := range u.Boards {
			board, err := s.boards.Create(ctx, result.User.ID, service.CreateBoardInput{
				Title:         b.Title,
				Visibility:    model.Visibility(strings.ToUpper(b.Visibility)),
				BackgroundImg: b.BackgroundImg,
			})
			if err != nil {
				return stats, fmt.Errorf("create board %q: %w", b.Title, err)
			}
			stats.Boards++

			for _, name := range b.Lists {
				if _, err := s.lists.Create(ctx, result.User.ID, name, board.ID); err != nil {
					return stats, fmt.Errorf("create list %q: %w", name, err)
				}
				stats.Lists++
			}
		}
	}
	return stats, nil
}
