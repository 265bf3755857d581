package fs

import (
	"bytes"
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/viant/afs"
	"github.com/viant/afs/file"
	"github.com/viant/afs/url"
	"github.com/viant/lockor/resolver"
	"github.com/viant/lockor/service/dao"
	"gopkg.in/yaml.v3"
)

// Service implements term-result storage on top of an abstract file system.
// Each term is stored as a single YAML document under the base URL, which
// makes results portable across runs and inspectable with a text editor.
type Service struct {
	fs      afs.Service
	baseURL string
	mux     sync.Mutex
}

var _ dao.Service[int, resolver.Result] = (*Service)(nil)

func (s *Service) resultURL(term int) string {
	return url.Join(s.baseURL, fmt.Sprintf("term%04d.yaml", term))
}

// Save uploads the term result as YAML.
func (s *Service) Save(ctx context.Context, r *resolver.Result) error {
	if r == nil {
		return dao.ErrNilEntity
	}
	if r.Term < 0 {
		return dao.ErrInvalidID
	}
	data, err := yaml.Marshal(r)
	if err != nil {
		return fmt.Errorf("failed to marshal term %v result: %w", r.Term, err)
	}

	s.mux.Lock()
	defer s.mux.Unlock()
	return s.fs.Upload(ctx, s.resultURL(r.Term), file.DefaultFileOsMode, bytes.NewReader(data))
}

// Load downloads and decodes a term result, or returns dao.ErrNotFound.
func (s *Service) Load(ctx context.Context, term int) (*resolver.Result, error) {
	if term < 0 {
		return nil, dao.ErrInvalidID
	}
	URL := s.resultURL(term)
	if ok, _ := s.fs.Exists(ctx, URL); !ok {
		return nil, dao.ErrNotFound
	}
	data, err := s.fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to download %v: %w", URL, err)
	}
	result := &resolver.Result{}
	if err := yaml.Unmarshal(data, result); err != nil {
		return nil, fmt.Errorf("failed to decode %v: %w", URL, err)
	}
	return result, nil
}

// Delete removes a stored term result.
func (s *Service) Delete(ctx context.Context, term int) error {
	if term < 0 {
		return dao.ErrInvalidID
	}
	URL := s.resultURL(term)
	if ok, _ := s.fs.Exists(ctx, URL); !ok {
		return dao.ErrNotFound
	}
	return s.fs.Delete(ctx, URL)
}

// List loads all stored term results in ascending term order.  Parameter
// filtering is not implemented for the file-system store.
func (s *Service) List(ctx context.Context, _ ...*dao.Parameter) ([]*resolver.Result, error) {
	objects, err := s.fs.List(ctx, s.baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to list %v: %w", s.baseURL, err)
	}
	var result []*resolver.Result
	for _, object := range objects {
		if object.IsDir() {
			continue
		}
		var term int
		if _, err := fmt.Sscanf(object.Name(), "term%04d.yaml", &term); err != nil {
			continue
		}
		item, err := s.Load(ctx, term)
		if err != nil {
			return nil, err
		}
		result = append(result, item)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Term < result[j].Term
	})
	return result, nil
}

// New constructor.
func New(fileService afs.Service, baseURL string) *Service {
	if fileService == nil {
		fileService = afs.New()
	}
	return &Service{fs: fileService, baseURL: baseURL}
}
