package entrez

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio"
	"github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq/linear"
	"github.com/biogo/ncbi/entrez"

	"github.com/seqsift/seqsift/pkg/log"
	"github.com/seqsift/seqsift/pkg/record"
)

// fetchBatchSize bounds the identifier list of a single efetch request,
// per the E-utilities guidance for URL-embedded id lists.
const fetchBatchSize = 200

// Client performs search and fetch operations against the NCBI Entrez
// E-utilities through the biogo/ncbi collaborator. The collaborator owns
// every protocol concern: URL construction, XML decoding, and the
// mandated request rate. The client's responsibility is limited to
// passing validated parameters and surfacing collaborator failures as
// package-level errors.
//
// The collaborator does not thread a context through its calls, so
// cancellation is checked between delegation steps only.
type Client struct {
	cfg    Config
	logger log.Logger
}

// ClientOption configures optional Client behavior.
type ClientOption func(*Client)

// WithLogger sets the logger used for request-level diagnostics.
func WithLogger(logger log.Logger) ClientOption {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// NewClient validates cfg and returns a ready Client.
func NewClient(cfg Config, opts ...ClientOption) (*Client, error) {
	if !strings.Contains(cfg.Email, "@") {
		return nil, fmt.Errorf("%w: %q", ErrInvalidEmail, cfg.Email)
	}
	if cfg.Tool == "" {
		cfg.Tool = DefaultTool
	}
	c := &Client{cfg: cfg, logger: log.NewNoopLogger()}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Config returns the client's configuration.
func (c *Client) Config() Config {
	return c.cfg
}

// Search runs an esearch against db and returns up to retMax matching
// record identifiers, fewer or none when the query matches less.
func (c *Client) Search(ctx context.Context, db, query string, retMax int) ([]int, error) {
	if err := validateRequest(db, query, retMax); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s, err := entrez.DoSearch(db, query, c.params(retMax, ""), nil, c.cfg.Tool, c.cfg.Email)
	if err != nil {
		return nil, fmt.Errorf("entrez: search %q in %q: %w", query, db, err)
	}

	ids := s.IdList
	if len(ids) > retMax {
		ids = ids[:retMax]
	}
	c.logger.Debug("search complete",
		log.String("db", db),
		log.String("query", query),
		log.Int("matched", s.Count),
		log.Int("returned", len(ids)))
	return ids, nil
}

// Fetch retrieves the named records from db in FASTA form and parses
// them into Records. An empty id list fetches nothing; oversized lists
// are fetched in batches of fetchBatchSize.
func (c *Client) Fetch(ctx context.Context, db string, ids []int) ([]record.Record, error) {
	if db == "" {
		return nil, errors.New("entrez: database is required")
	}
	if len(ids) == 0 {
		return []record.Record{}, nil
	}

	rs := []record.Record{}
	for _, batch := range chunkIDs(ids, fetchBatchSize) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		part, err := c.fetchBatch(db, batch)
		if err != nil {
			return nil, err
		}
		rs = append(rs, part...)
	}
	c.logger.Debug("fetch complete", log.String("db", db), log.Int("records", len(rs)))
	return rs, nil
}

func (c *Client) fetchBatch(db string, ids []int) ([]record.Record, error) {
	rc, err := entrez.Fetch(db, c.params(len(ids), "fasta"), c.cfg.Tool, c.cfg.Email, nil, ids...)
	if err != nil {
		return nil, fmt.Errorf("entrez: fetch %d ids from %q: %w", len(ids), db, err)
	}
	defer rc.Close()

	return parseFASTA(rc, alphabetFor(db))
}

// SearchAndFetch composes Search and Fetch through the collaborator's
// Entrez history so the identifier list never transits twice. The result
// holds at most retMax records; anything the service returns beyond the
// cap is truncated. Duplicate identifiers pass through untouched.
func (c *Client) SearchAndFetch(ctx context.Context, db, query string, retMax int) ([]record.Record, error) {
	if err := validateRequest(db, query, retMax); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	h := &entrez.History{}
	s, err := entrez.DoSearch(db, query, c.params(retMax, ""), h, c.cfg.Tool, c.cfg.Email)
	if err != nil {
		return nil, fmt.Errorf("entrez: search %q in %q: %w", query, db, err)
	}
	if s.Count == 0 {
		c.logger.Debug("search matched nothing", log.String("db", db), log.String("query", query))
		return []record.Record{}, nil
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	rc, err := entrez.Fetch(db, c.params(retMax, "fasta"), c.cfg.Tool, c.cfg.Email, h)
	if err != nil {
		return nil, fmt.Errorf("entrez: fetch %q results from %q: %w", query, db, err)
	}
	defer rc.Close()

	rs, err := parseFASTA(rc, alphabetFor(db))
	if err != nil {
		return nil, err
	}
	if len(rs) > retMax {
		rs = rs[:retMax]
	}
	c.logger.Info("search and fetch complete",
		log.String("db", db),
		log.String("query", query),
		log.Int("matched", s.Count),
		log.Int("fetched", len(rs)))
	return rs, nil
}

// FetchRaw retrieves the named records in the given rettype (e.g. "gb")
// and returns the response body verbatim, concatenating batches when the
// id list exceeds fetchBatchSize. Both FASTA and GenBank flat files stay
// valid under concatenation. Parsing non-FASTA formats stays with the
// caller or the archive.
func (c *Client) FetchRaw(ctx context.Context, db, retType string, ids []int) ([]byte, error) {
	if db == "" {
		return nil, errors.New("entrez: database is required")
	}
	if retType == "" {
		return nil, errors.New("entrez: rettype is required")
	}
	if len(ids) == 0 {
		return []byte{}, nil
	}

	body := []byte{}
	for _, batch := range chunkIDs(ids, fetchBatchSize) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		part, err := c.fetchRawBatch(db, retType, batch)
		if err != nil {
			return nil, err
		}
		body = append(body, part...)
	}
	return body, nil
}

func (c *Client) fetchRawBatch(db, retType string, ids []int) ([]byte, error) {
	rc, err := entrez.Fetch(db, c.params(len(ids), retType), c.cfg.Tool, c.cfg.Email, nil, ids...)
	if err != nil {
		return nil, fmt.Errorf("entrez: fetch %s for %d ids from %q: %w", retType, len(ids), db, err)
	}
	defer rc.Close()

	body, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("entrez: read %s response: %w", retType, err)
	}
	return body, nil
}

// Databases lists the collections the upstream service exposes.
func (c *Client) Databases(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	info, err := entrez.DoInfo("", c.cfg.Tool, c.cfg.Email)
	if err != nil {
		return nil, fmt.Errorf("entrez: einfo: %w", err)
	}
	return info.DbList, nil
}

// params assembles the per-request parameter block. The API key rides
// along when configured; text retmode covers every rettype this client
// requests.
func (c *Client) params(retMax int, retType string) *entrez.Parameters {
	p := &entrez.Parameters{
		RetMax: retMax,
		APIKey: c.cfg.APIKey,
	}
	if retType != "" {
		p.RetType = retType
		p.RetMode = "text"
	}
	return p
}

// chunkIDs splits ids into batches of at most size elements. Order is
// preserved across batches.
func chunkIDs(ids []int, size int) [][]int {
	if size <= 0 || len(ids) <= size {
		return [][]int{ids}
	}
	batches := make([][]int, 0, (len(ids)+size-1)/size)
	for start := 0; start < len(ids); start += size {
		end := start + size
		if end > len(ids) {
			end = len(ids)
		}
		batches = append(batches, ids[start:end])
	}
	return batches
}

func validateRequest(db, query string, retMax int) error {
	if db == "" {
		return errors.New("entrez: database is required")
	}
	if query == "" {
		return errors.New("entrez: query is required")
	}
	if retMax <= 0 {
		return fmt.Errorf("entrez: retmax must be positive, got %d", retMax)
	}
	return nil
}

// alphabetFor selects the parsing alphabet for an Entrez database.
func alphabetFor(db string) alphabet.Alphabet {
	if db == "protein" {
		return alphabet.Protein
	}
	return alphabet.DNAredundant
}

// parseFASTA decodes a FASTA stream into records.
func parseFASTA(r io.Reader, alpha alphabet.Alphabet) ([]record.Record, error) {
	sc := seqio.NewScanner(fasta.NewReader(r, linear.NewSeq("", nil, alpha)))
	rs := []record.Record{}
	for sc.Next() {
		s, ok := sc.Seq().(*linear.Seq)
		if !ok {
			continue
		}
		rs = append(rs, record.FromSeq(s))
	}
	if err := sc.Error(); err != nil {
		return nil, fmt.Errorf("entrez: parse fasta: %w", err)
	}
	return rs, nil
}
