// Package search finds tasks on a board by title.
package search

import (
	"regexp"

	"github.com/example/taskboard/internal/models"
)

// Compile turns a query into a case-insensitive pattern. Queries that are not
// valid regular expressions are matched literally.
func Compile(query string) *regexp.Regexp {
	re, err := regexp.Compile("(?i)" + query)
	if err != nil {
		return regexp.MustCompile("(?i)" + regexp.QuoteMeta(query))
	}
	return re
}

// Titles returns every task whose title matches query, in group order and
// then task order. An empty query matches every task.
func Titles(b *models.Board, query string) []models.Task {
	if b == nil {
		return nil
	}
	re := Compile(query)

	var res []models.Task
	for _, g := range b.Groups {
		for _, t := range g.Tasks {
			if re.MatchString(t.Title) {
				res = append(res, t.Clone())
			}
		}
	}
	return res
}
