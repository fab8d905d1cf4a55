// Package fastaio reads FASTA-formatted nucleotide records, filtering each
// sequence down to the {A,C,G,T} alphabet the engine requires. Its line
// scanning follows the defline/sequence-buffer split used by
// eutils.FASTAConverter in the retrieved example pack, simplified from that
// file's tokenizer/streamer goroutine pair to a single synchronous
// bufio.Scanner pass since callers here want a fully materialized []Record,
// not a streaming channel.
package fastaio

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/pgzip"
)

// Record is one FASTA entry: its defline ID and the filtered sequence.
type Record struct {
	ID       string
	Sequence string
}

// keep reports whether b belongs to the uppercase DNA alphabet {A,C,G,T}.
// Lowercase input is upper-cased before this check; any other byte
// (ambiguity codes, gaps, whitespace) is dropped rather than rejected, since
// the engine only ever operates over {A,C,G,T}.
func keep(b byte) bool {
	switch b {
	case 'A', 'C', 'G', 'T':
		return true
	default:
		return false
	}
}

// ReadSequences parses r as FASTA text and returns one Record per defline,
// with each sequence filtered to {A,C,G,T}. A record whose filtered
// sequence is empty is dropped.
func ReadSequences(r io.Reader) ([]Record, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	var records []Record
	var id string
	var seq strings.Builder

	flush := func() {
		if seq.Len() > 0 {
			records = append(records, Record{ID: id, Sequence: seq.String()})
		}
		seq.Reset()
	}

	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		if line[0] == '>' {
			flush()
			id = strings.TrimSpace(strings.SplitN(line[1:], " ", 2)[0])
			continue
		}
		for i := 0; i < len(line); i++ {
			c := line[i]
			if c >= 'a' && c <= 'z' {
				c -= 'a' - 'A'
			}
			if keep(c) {
				seq.WriteByte(c)
			}
		}
	}
	flush()

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("fastaio: %w", err)
	}
	return records, nil
}

// Open opens path for FASTA reading, transparently decompressing it with a
// parallel gzip reader when the name ends in ".gz" — the same pattern
// eutils' poster.go uses pgzip for fast decompression of large nucleotide
// dumps.
func Open(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("fastaio: %w", err)
	}
	if !strings.HasSuffix(path, ".gz") {
		return f, nil
	}

	zr, err := pgzip.NewReader(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("fastaio: %w", err)
	}
	return &gzipFile{Reader: zr, file: f}, nil
}

// gzipFile closes both the pgzip reader and the underlying file handle.
type gzipFile struct {
	*pgzip.Reader
	file *os.File
}

func (g *gzipFile) Close() error {
	g.Reader.Close()
	return g.file.Close()
}
