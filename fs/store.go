// Package fs provides file-based storage for downloaded articles.
package fs

import (
	"context"
	"os"
	"path/filepath"
	"strconv"

	"github.com/fwojciec/easynews"
)

// File name suffixes of the persisted article files.
const (
	HTMLSuffix       = ".html"
	DictionarySuffix = ".dic.js"
	MarkdownSuffix   = ".md"
)

const tempSuffix = ".tmp"

// HTMLPath returns the path of an article's rendered HTML document.
// Example: root/2023-11-15/1.html
func HTMLPath(root, date string, priority int) string {
	return articlePath(root, date, priority, HTMLSuffix)
}

// DictionaryPath returns the path of an article's dictionary file.
func DictionaryPath(root, date string, priority int) string {
	return articlePath(root, date, priority, DictionarySuffix)
}

// MarkdownPath returns the path of an article's Markdown reading copy.
func MarkdownPath(root, date string, priority int) string {
	return articlePath(root, date, priority, MarkdownSuffix)
}

func articlePath(root, date string, priority int, suffix string) string {
	return filepath.Join(root, date, strconv.Itoa(priority)+suffix)
}

// Ensure Store implements easynews.ArticleStore at compile time.
var _ easynews.ArticleStore = (*Store)(nil)

// Store writes articles below a root directory, one directory per date.
//
// Files of one article are staged as .tmp siblings and renamed into place
// only after every staged write succeeded. Concurrent stores on the same
// root are not coordinated.
type Store struct {
	root string
}

// NewStore creates a new Store rooted at root.
func NewStore(root string) *Store {
	return &Store{root: root}
}

// Root returns the root directory.
func (s *Store) Root() string {
	return s.root
}

// EnsureDate creates the directory for the date, including the root.
func (s *Store) EnsureDate(ctx context.Context, date string) error {
	if err := checkDate(date); err != nil {
		return err
	}
	return os.MkdirAll(filepath.Join(s.root, date), 0755)
}

// checkDate rejects dates that would not name a single directory directly
// below the root.
func checkDate(date string) error {
	if date == "" {
		return easynews.Errorf(easynews.EINVALID, "date required")
	}
	if err := easynews.ValidateDate(date); err != nil {
		return err
	}
	if !filepath.IsLocal(date) || filepath.Base(date) != date {
		return easynews.Errorf(easynews.EINVALID, "date %q escapes the archive root", date)
	}
	return nil
}

type stagedFile struct {
	final string
	temp  string
	data  []byte
}

// SaveArticle writes the HTML document, the dictionary and, when present,
// the Markdown copy of an article.
func (s *Store) SaveArticle(ctx context.Context, date string, a *easynews.Article, files easynews.ArticleFiles) (*easynews.SavedPaths, error) {
	if err := checkDate(date); err != nil {
		return nil, err
	}
	if err := a.Validate(); err != nil {
		return nil, err
	}

	paths := &easynews.SavedPaths{
		HTML:       HTMLPath(s.root, date, a.Priority),
		Dictionary: DictionaryPath(s.root, date, a.Priority),
	}
	staged := []stagedFile{
		{final: paths.HTML, data: []byte(files.HTML)},
		{final: paths.Dictionary, data: files.Dictionary},
	}
	if files.Markdown != "" {
		paths.Markdown = MarkdownPath(s.root, date, a.Priority)
		staged = append(staged, stagedFile{final: paths.Markdown, data: []byte(files.Markdown)})
	}

	for i := range staged {
		staged[i].temp = staged[i].final + tempSuffix
		if err := os.WriteFile(staged[i].temp, staged[i].data, 0644); err != nil {
			removeTemps(staged[:i+1])
			return nil, err
		}
	}

	for i, f := range staged {
		if err := os.Rename(f.temp, f.final); err != nil {
			removeTemps(staged[i:])
			return nil, err
		}
	}

	return paths, nil
}

func removeTemps(files []stagedFile) {
	for _, f := range files {
		_ = os.Remove(f.temp)
	}
}
