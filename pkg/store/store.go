// Package store archives optimizer runs so long-path mazes and the seed
// packets that reproduce them survive process restarts.
//
// Two backends are available:
//   - memory: in-process storage for development, testing, and the CLI
//   - mongo: MongoDB-backed storage for server deployments
//
// # Usage
//
// Create a store and save a run:
//
//	st := store.NewMemoryStore()
//	run := store.NewRun(result)
//	if err := st.Put(ctx, run); err != nil {
//	    return err
//	}
//
// For production:
//
//	st, err := store.NewMongoStore(ctx, store.MongoConfig{
//	    URI:      "mongodb://localhost:27017",
//	    Database: "mazeforge",
//	})
package store

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/matzehuels/mazeforge/pkg/maze"
	"github.com/matzehuels/mazeforge/pkg/optimize"
)

// ErrNotFound is returned when a run does not exist.
var ErrNotFound = errors.New("run not found")

// Run is one archived optimizer result.
type Run struct {
	// ID is a UUID assigned at creation.
	ID string `json:"id" bson:"_id"`

	// CreatedAt is the archive timestamp.
	CreatedAt time.Time `json:"created_at" bson:"created_at"`

	// Width and Height are the maze dimensions searched.
	Width  int `json:"width" bson:"width"`
	Height int `json:"height" bson:"height"`

	// Length is the best solution length found.
	Length int `json:"length" bson:"length"`

	// SeedPacket reproduces the best maze via the generator.
	SeedPacket []int `json:"seed_packet" bson:"seed_packet"`

	// Links is the best maze's link set in "x,y-x,y" textual form.
	Links []string `json:"links" bson:"links"`
}

// NewRun builds a Run from an optimizer result with a fresh UUID.
func NewRun(res *optimize.Result) *Run {
	links := res.Maze.Links()
	out := make([]string, len(links))
	for i, l := range links {
		out[i] = l.String()
	}
	return &Run{
		ID:         uuid.NewString(),
		CreatedAt:  time.Now().UTC(),
		Width:      res.Maze.Width,
		Height:     res.Maze.Height,
		Length:     res.Length,
		SeedPacket: append([]int(nil), res.SeedPacket...),
		Links:      out,
	}
}

// Maze reconstructs the archived maze from its dimensions and link set.
func (r *Run) Maze() (*maze.Maze, error) {
	m, err := maze.New(r.Width, r.Height)
	if err != nil {
		return nil, err
	}
	for _, s := range r.Links {
		l, err := maze.ParseLink(s)
		if err != nil {
			return nil, err
		}
		m.AddLink(l.A, l.B)
	}
	return m, nil
}

// Store is the interface for run archive backends.
type Store interface {
	// Put saves a run.
	Put(ctx context.Context, run *Run) error

	// Get retrieves a run by ID. Returns ErrNotFound if absent.
	Get(ctx context.Context, id string) (*Run, error)

	// List returns runs sorted newest first, capped at limit.
	// A non-positive limit returns all runs.
	List(ctx context.Context, limit int) ([]*Run, error)

	// Close releases backend resources.
	Close(ctx context.Context) error
}
