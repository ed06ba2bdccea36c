package loader

import (
	"bytes"
	"embed"
	"fmt"
	"os"
	"strings"
	"time"

	"gamereviews/internal/codec"
	"gamereviews/internal/domain"
)

//go:embed fixtures/*.yaml
var fixtures embed.FS

// Dataset is a complete set of seed records
type Dataset struct {
	Version    string            `yaml:"version" json:"version"`
	Categories []domain.Category `yaml:"categories" json:"categories"`
	Users      []domain.User     `yaml:"users" json:"users"`
	Reviews    []ReviewYAML      `yaml:"reviews" json:"reviews"`
	Comments   []CommentYAML     `yaml:"comments" json:"comments"`
}

// ReviewYAML represents a review in a fixture file
type ReviewYAML struct {
	Title        string    `yaml:"title" json:"title"`
	Designer     string    `yaml:"designer" json:"designer"`
	Owner        string    `yaml:"owner" json:"owner"`
	ReviewImgURL string    `yaml:"review_img_url" json:"review_img_url"`
	ReviewBody   string    `yaml:"review_body" json:"review_body"`
	Category     string    `yaml:"category" json:"category"`
	CreatedAt    time.Time `yaml:"created_at" json:"created_at"`
	Votes        int       `yaml:"votes" json:"votes"`
}

// CommentYAML represents a comment in a fixture file.
// Review holds the title of the review the comment belongs to.
type CommentYAML struct {
	Body      string    `yaml:"body" json:"body"`
	Votes     int       `yaml:"votes" json:"votes"`
	Author    string    `yaml:"author" json:"author"`
	Review    string    `yaml:"review" json:"review"`
	CreatedAt time.Time `yaml:"created_at" json:"created_at"`
}

// Fixture loads one of the embedded datasets by name ("test", "development")
func Fixture(name string) (*Dataset, error) {
	data, err := fixtures.ReadFile("fixtures/" + name + ".yaml")
	if err != nil {
		return nil, fmt.Errorf("unknown fixture %q", name)
	}
	return ParseYAML(data)
}

// Load resolves a seed source: an embedded fixture name or a file path
func Load(source string) (*Dataset, error) {
	if IsFixtureName(source) {
		return Fixture(source)
	}
	return LoadFile(source)
}

// IsFixtureName reports whether source names an embedded fixture rather
// than a file
func IsFixtureName(source string) bool {
	return !strings.ContainsAny(source, "/\\.")
}

// LoadFile loads a dataset from a YAML or JSON file, chosen by extension
func LoadFile(path string) (*Dataset, error) {
	c, err := codec.ForPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	return Parse(data, c)
}

// ParseYAML parses and validates a dataset from YAML bytes
func ParseYAML(data []byte) (*Dataset, error) {
	return Parse(data, codec.NewYAMLCodec())
}

// Parse decodes and validates a dataset
func Parse(data []byte, c codec.Codec) (*Dataset, error) {
	var ds Dataset
	if err := c.Decode(bytes.NewReader(data), &ds); err != nil {
		return nil, err
	}

	if err := ds.Validate(); err != nil {
		return nil, err
	}

	return &ds, nil
}

// Validate checks that every reference in the dataset resolves
func (ds *Dataset) Validate() error {
	categories := make(map[string]bool, len(ds.Categories))
	for _, c := range ds.Categories {
		if c.Slug == "" {
			return fmt.Errorf("category with empty slug")
		}
		if categories[c.Slug] {
			return fmt.Errorf("duplicate category %q", c.Slug)
		}
		categories[c.Slug] = true
	}

	users := make(map[string]bool, len(ds.Users))
	for _, u := range ds.Users {
		if u.Username == "" {
			return fmt.Errorf("user with empty username")
		}
		if users[u.Username] {
			return fmt.Errorf("duplicate user %q", u.Username)
		}
		users[u.Username] = true
	}

	titles := make(map[string]bool, len(ds.Reviews))
	for i, r := range ds.Reviews {
		if r.Title == "" {
			return fmt.Errorf("review %d: empty title", i+1)
		}
		if titles[r.Title] {
			return fmt.Errorf("duplicate review title %q", r.Title)
		}
		if !categories[r.Category] {
			return fmt.Errorf("review %q: unknown category %q", r.Title, r.Category)
		}
		if !users[r.Owner] {
			return fmt.Errorf("review %q: unknown owner %q", r.Title, r.Owner)
		}
		titles[r.Title] = true
	}

	for i, c := range ds.Comments {
		if !titles[c.Review] {
			return fmt.Errorf("comment %d: unknown review %q", i+1, c.Review)
		}
		if !users[c.Author] {
			return fmt.Errorf("comment %d: unknown author %q", i+1, c.Author)
		}
	}

	return nil
}

// CommentCounts returns the number of comments per review title
func (ds *Dataset) CommentCounts() map[string]int {
	counts := make(map[string]int, len(ds.Reviews))
	for _, c := range ds.Comments {
		counts[c.Review]++
	}
	return counts
}
