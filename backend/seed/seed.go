// Package seed loads the practice curriculum and writes it to the store.
package seed

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"io"
	"strings"

	"khelkhatm/backend/models"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var defaultCatalog []byte

const defaultTopic = "General"

type QuestionEntry struct {
	Title string `yaml:"title"`
	Link  string `yaml:"link,omitempty"`
}

type TopicEntry struct {
	Name      string          `yaml:"name"`
	Questions []QuestionEntry `yaml:"questions"`
}

type PhaseEntry struct {
	Name   string       `yaml:"name"`
	Topics []TopicEntry `yaml:"topics"`
}

type SubjectEntry struct {
	Name   string   `yaml:"name"`
	Topics []string `yaml:"topics"`
}

type Catalog struct {
	Subjects []SubjectEntry `yaml:"subjects"`
	Phases   []PhaseEntry   `yaml:"phases"`
}

// Store is the part of the repository seeding writes through.
type Store interface {
	ResetCatalog(ctx context.Context) error
	CreateQuestions(ctx context.Context, questions []models.Question) error
	CreateConcepts(ctx context.Context, concepts []models.Concept) error
}

func Load(r io.Reader) (*Catalog, error) {
	var c Catalog
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}

	for _, p := range c.Phases {
		if strings.TrimSpace(p.Name) == "" {
			return nil, fmt.Errorf("parse catalog: phase without a name")
		}
		for _, t := range p.Topics {
			for _, q := range t.Questions {
				if strings.TrimSpace(q.Title) == "" {
					return nil, fmt.Errorf("parse catalog: question without a title in %s", p.Name)
				}
			}
		}
	}
	return &c, nil
}

// Default returns the embedded curriculum.
func Default() (*Catalog, error) {
	return Load(bytes.NewReader(defaultCatalog))
}

// Questions flattens the catalog into TODO questions in file order.
func (c *Catalog) Questions() []models.Question {
	var out []models.Question
	for _, p := range c.Phases {
		for _, t := range p.Topics {
			topic := strings.TrimSpace(t.Name)
			if topic == "" {
				topic = defaultTopic
			}
			for _, q := range t.Questions {
				question := models.Question{
					Title:  strings.TrimSpace(q.Title),
					Phase:  strings.TrimSpace(p.Name),
					Topic:  topic,
					Status: models.StatusTodo,
				}
				if link := strings.TrimSpace(q.Link); link != "" {
					question.Link = &link
				}
				out = append(out, question)
			}
		}
	}
	return out
}

func (c *Catalog) Concepts() []models.Concept {
	var out []models.Concept
	for _, s := range c.Subjects {
		for _, topic := range s.Topics {
			out = append(out, models.Concept{
				Subject: s.Name,
				Topic:   topic,
				Status:  models.StatusTodo,
			})
		}
	}
	return out
}

type Result struct {
	Questions int
	Concepts  int
}

// Apply replaces every question and concept with the catalog's entries.
func Apply(ctx context.Context, store Store, c *Catalog) (Result, error) {
	if err := store.ResetCatalog(ctx); err != nil {
		return Result{}, fmt.Errorf("reset catalog: %w", err)
	}

	concepts := c.Concepts()
	if err := store.CreateConcepts(ctx, concepts); err != nil {
		return Result{}, fmt.Errorf("seed concepts: %w", err)
	}

	questions := c.Questions()
	if err := store.CreateQuestions(ctx, questions); err != nil {
		return Result{}, fmt.Errorf("seed questions: %w", err)
	}

	return Result{Questions: len(questions), Concepts: len(concepts)}, nil
}
