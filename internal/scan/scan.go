// Package scan runs the decoder over one or many sync-state databases.
//
// Each database is processed as one synchronous sequence on its own
// connection: validate, open, list tables, read accounts, read metas,
// decode, close. Databases share nothing, so a Scanner runs several of them
// at once; a failure on one never affects the others.
package scan

import (
	"time"

	"github.com/google/uuid"
	"github.com/spf13/afero"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/mesh-intelligence/syncparse/internal/decode"
	"github.com/mesh-intelligence/syncparse/internal/locate"
	"github.com/mesh-intelligence/syncparse/internal/sqlite"
	"github.com/mesh-intelligence/syncparse/pkg/types"
)

// Scanner processes databases. The zero value is not usable; call New.
type Scanner struct {
	fs      afero.Fs
	logger  *zap.Logger
	workers int
	loc     *time.Location
}

// Option configures a Scanner.
type Option func(*Scanner)

// WithLogger sets the diagnostic logger.
func WithLogger(l *zap.Logger) Option {
	return func(s *Scanner) { s.logger = l }
}

// WithWorkers bounds how many databases are processed at once.
func WithWorkers(n int) Option {
	return func(s *Scanner) {
		if n > 0 {
			s.workers = n
		}
	}
}

// WithLocation sets the time zone of decoded timestamps.
func WithLocation(loc *time.Location) Option {
	return func(s *Scanner) { s.loc = loc }
}

// WithFs sets the filesystem used to validate paths before opening them.
func WithFs(fs afero.Fs) Option {
	return func(s *Scanner) { s.fs = fs }
}

// New returns a Scanner with the given options applied.
func New(opts ...Option) *Scanner {
	s := &Scanner{
		fs:      afero.NewOsFs(),
		logger:  zap.NewNop(),
		workers: types.DefaultWorkers,
		loc:     time.UTC,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// newScanID generates a UUID v7 identifying one database run.
func newScanID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to UUID v4 if v7 generation fails
		return uuid.New().String()
	}
	return id.String()
}

// Database processes one database and returns its result. Errors are
// recorded in the result rather than returned.
func (s *Scanner) Database(path string) types.ScanResult {
	res := types.ScanResult{ID: newScanID(), Path: path}
	log := s.logger.With(zap.String("scan_id", res.ID), zap.String("database", path))

	set, tables, err := s.process(path, log)
	res.Tables = tables
	if err != nil {
		log.Warn("database failed", zap.Error(err))
		res.Err = err
		return res
	}

	res.Artifacts = set
	log.Info("database decoded",
		zap.Int("accounts", len(set.Accounts)),
		zap.Int("machines", len(set.Machines)),
		zap.Bool("encrypted", set.Encrypted))
	return res
}

func (s *Scanner) process(path string, log *zap.Logger) (*types.ArtifactSet, []string, error) {
	if err := locate.ValidateDatabase(s.fs, path); err != nil {
		return nil, nil, err
	}

	src, err := sqlite.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer func() {
		if err := src.Close(); err != nil {
			log.Warn("close database", zap.Error(err))
		}
	}()

	tables, err := src.CheckSchema()
	if err != nil {
		return nil, tables, err
	}
	log.Debug("schema checked", zap.Strings("tables", tables))

	accounts, err := src.Accounts()
	if err != nil {
		return nil, tables, err
	}
	records, err := src.Records()
	if err != nil {
		return nil, tables, err
	}
	log.Debug("rows read", zap.Int("accounts", len(accounts)), zap.Int("records", len(records)))

	return decode.Decode(accounts, records, s.loc), tables, nil
}

// All processes paths concurrently and returns results in the order of
// paths.
func (s *Scanner) All(paths []string) []types.ScanResult {
	results := make([]types.ScanResult, len(paths))

	var g errgroup.Group
	g.SetLimit(s.workers)
	for i, path := range paths {
		g.Go(func() error {
			results[i] = s.Database(path)
			return nil
		})
	}
	_ = g.Wait()

	return results
}
