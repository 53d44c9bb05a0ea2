// Package vocabulary holds the static registry of job categories, their
// keyword sets and weights. It drives both skill extraction and job
// classification and is immutable once built.
package vocabulary

import (
	"fmt"

	"github.com/jonathan/skill-match/internal/parsing"
)

// Category is one job category of the vocabulary.
type Category struct {
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Keywords    []string `json:"keywords"`
	Weight      float64  `json:"weight"`
}

// Vocabulary is an ordered, read-only set of categories. It is safe for
// concurrent use.
type Vocabulary struct {
	categories []Category
	index      map[string]int
	keywords   []string
}

// New builds a vocabulary from categories in declaration order. Keywords are
// normalized and deduplicated per category; a keyword may belong to several
// categories.
func New(categories []Category) (*Vocabulary, error) {
	if len(categories) == 0 {
		return nil, &ConfigurationError{Source: "categories", Message: "vocabulary has no categories"}
	}

	v := &Vocabulary{
		categories: make([]Category, 0, len(categories)),
		index:      make(map[string]int, len(categories)),
	}
	seenKeyword := make(map[string]bool)

	for _, c := range categories {
		if c.Name == "" {
			return nil, &ConfigurationError{Source: "categories", Message: "category name is empty"}
		}
		if _, dup := v.index[c.Name]; dup {
			return nil, &ConfigurationError{Source: c.Name, Message: "duplicate category"}
		}
		if c.Weight < 1.0 {
			return nil, &ConfigurationError{
				Source:  c.Name,
				Message: fmt.Sprintf("weight %.2f is below 1.0", c.Weight),
			}
		}

		keywords := make([]string, 0, len(c.Keywords))
		inCategory := make(map[string]bool, len(c.Keywords))
		for _, raw := range c.Keywords {
			kw := parsing.NormalizeText(raw)
			if kw == "" {
				return nil, &ConfigurationError{
					Source:  c.Name,
					Message: fmt.Sprintf("keyword %q is empty after normalization", raw),
				}
			}
			if inCategory[kw] {
				continue
			}
			inCategory[kw] = true
			keywords = append(keywords, kw)

			if !seenKeyword[kw] {
				seenKeyword[kw] = true
				v.keywords = append(v.keywords, kw)
			}
		}

		v.index[c.Name] = len(v.categories)
		v.categories = append(v.categories, Category{
			Name:        c.Name,
			Description: c.Description,
			Keywords:    keywords,
			Weight:      c.Weight,
		})
	}

	return v, nil
}

// MustNew is like New but panics on error. It is intended for static tables.
func MustNew(categories []Category) *Vocabulary {
	v, err := New(categories)
	if err != nil {
		panic(err)
	}
	return v
}

// Categories returns a copy of the categories in declaration order.
func (v *Vocabulary) Categories() []Category {
	out := make([]Category, len(v.categories))
	for i, c := range v.categories {
		out[i] = c
		out[i].Keywords = append([]string(nil), c.Keywords...)
	}
	return out
}

// Category looks up a category by name.
func (v *Vocabulary) Category(name string) (Category, bool) {
	i, ok := v.index[name]
	if !ok {
		return Category{}, false
	}
	c := v.categories[i]
	c.Keywords = append([]string(nil), c.Keywords...)
	return c, true
}

// Keywords returns every distinct keyword across all categories, in order of
// first declaration.
func (v *Vocabulary) Keywords() []string {
	return append([]string(nil), v.keywords...)
}

// Len returns the number of categories.
func (v *Vocabulary) Len() int {
	return len(v.categories)
}
