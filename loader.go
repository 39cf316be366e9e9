package yang

import (
	"bytes"
	"path/filepath"
	"sort"

	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// Loader reads collections from a directory, one document per collection,
// and keeps them keyed by collection name. A Loader is not safe for
// concurrent Load calls; reading loaded collections concurrently is.
type Loader struct {
	format      Format
	fs          afero.Fs
	logger      *zap.Logger
	collections map[string][]*Record
}

// Option configures a Loader.
type Option func(*Loader)

// WithFormat selects the document format. Default: YAML.
func WithFormat(f Format) Option {
	return func(l *Loader) {
		if f != nil {
			l.format = f
		}
	}
}

// WithFs replaces the filesystem. Default: the OS filesystem.
func WithFs(fs afero.Fs) Option {
	return func(l *Loader) {
		if fs != nil {
			l.fs = fs
		}
	}
}

// WithLogger sets the logger. Default: no-op.
func WithLogger(logger *zap.Logger) Option {
	return func(l *Loader) {
		if logger != nil {
			l.logger = logger
		}
	}
}

func NewLoader(opts ...Option) *Loader {
	l := &Loader{
		format:      YAML,
		fs:          afero.NewOsFs(),
		logger:      zap.NewNop(),
		collections: map[string][]*Record{},
	}
	for _, o := range opts {
		o(l)
	}
	return l
}

// Format returns the document format in use.
func (l *Loader) Format() Format { return l.format }

// Path returns the file a collection is read from.
func (l *Loader) Path(baseDir, name string) string {
	return filepath.Join(baseDir, name+"."+l.format.Extension())
}

// Load reads every named collection from baseDir, in order. The first
// failure is returned as a *LoadError and the remaining names are skipped;
// collections loaded before it stay stored. Loading a name again replaces
// its records.
func (l *Loader) Load(baseDir string, names []string) error {
	for _, name := range names {
		if err := l.loadOne(baseDir, name); err != nil {
			l.logger.Warn("load collection failed",
				zap.String("collection", name),
				zap.Error(err))
			return err
		}
	}
	return nil
}

func (l *Loader) loadOne(baseDir, name string) error {
	path := l.Path(baseDir, name)
	data, err := afero.ReadFile(l.fs, path)
	if err != nil {
		return &LoadError{Kind: LoadIO, Collection: name, Path: path, Err: err}
	}
	records, err := DecodeRecords(l.format, bytes.NewReader(data))
	if err != nil {
		return &LoadError{Kind: LoadParse, Collection: name, Path: path, Err: err}
	}
	l.collections[name] = records
	l.logger.Debug("loaded collection",
		zap.String("collection", name),
		zap.String("path", path),
		zap.Int("records", len(records)))
	return nil
}

// Get returns the records of a loaded collection.
func (l *Loader) Get(name string) ([]*Record, bool) {
	rs, ok := l.collections[name]
	if !ok {
		return nil, false
	}
	out := make([]*Record, len(rs))
	copy(out, rs)
	return out, true
}

// Find returns the first record of a loaded collection with the given id.
func (l *Loader) Find(name string, id int64) (*Record, bool) {
	for _, r := range l.collections[name] {
		if r.ID() == id {
			return r, true
		}
	}
	return nil, false
}

// All returns every loaded collection, ordered by collection name.
func (l *Loader) All() [][]*Record {
	names := l.Names()
	out := make([][]*Record, 0, len(names))
	for _, n := range names {
		rs, _ := l.Get(n)
		out = append(out, rs)
	}
	return out
}

// Names returns the sorted names of the loaded collections.
func (l *Loader) Names() []string {
	names := make([]string, 0, len(l.collections))
	for n := range l.collections {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of loaded collections.
func (l *Loader) Len() int { return len(l.collections) }

// Finding groups the validation errors of one record of a collection.
type Finding struct {
	Collection string
	Index      int // position of the record in its collection
	Record     *Record
	Errors     ErrorInfos
}

// Validate validates every record of a loaded collection and returns one
// Finding per invalid record, in record order.
func (l *Loader) Validate(name string) ([]Finding, bool) {
	rs, ok := l.collections[name]
	if !ok {
		return nil, false
	}
	var out []Finding
	for i, r := range rs {
		es, bad := AsErrorInfos(r.Validate())
		if !bad {
			continue
		}
		out = append(out, Finding{Collection: name, Index: i, Record: r, Errors: es})
	}
	return out, true
}
